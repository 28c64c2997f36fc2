package domain

import "time"

// Product описывает товар витрины.
type Product struct {
	ID          int64
	Title       string
	Description *string
	Thumbnail   *string // ключ объекта в медиахранилище
	Metadata    *Metadata
	CreatedAt   time.Time
}

func NewProduct(id int64, title string, description, thumbnail *string, metadata *Metadata, createdAt time.Time) *Product {
	return &Product{
		ID:          id,
		Title:       title,
		Description: description,
		Thumbnail:   thumbnail,
		Metadata:    metadata,
		CreatedAt:   createdAt,
	}
}

// Meta возвращает метаданные товара, подставляя пустые значения при их отсутствии.
func (p *Product) Meta() *Metadata {
	if p.Metadata == nil {
		return &Metadata{}
	}
	return p.Metadata
}
