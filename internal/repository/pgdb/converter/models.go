package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
// Metadata хранит сырой JSONB до разбора в типизированную проекцию.
type ProductModel struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description *string        `db:"description"`
	Thumbnail   *string        `db:"thumbnail"`
	Metadata    map[string]any `db:"metadata"`
	CreatedAt   time.Time      `db:"created_at"`
}
