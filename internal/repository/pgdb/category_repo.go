package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lumera-shop/catalog-backend/internal/usecase"
	"github.com/lumera-shop/catalog-backend/pkg/e"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// GetByHandle возвращает активную категорию по handle вместе с родителем.
// Неактивный родитель не попадает в хлебные крошки, сама категория при этом
// остаётся разрешимой.
func (c *CategoryRepo) GetByHandle(ctx context.Context, handle string) (*usecase.ResolvedCategory, error) {
	query := `
		SELECT cat.id, cat.name, cat.handle, parent.name, parent.handle
		FROM categories cat
		LEFT JOIN categories parent
			ON parent.id = cat.parent_id AND parent.is_active
		WHERE cat.handle = $1 AND cat.is_active
	`

	var (
		id           int64
		name         string
		catHandle    string
		parentName   *string
		parentHandle *string
	)
	err := c.pool.QueryRow(ctx, query, handle).
		Scan(&id, &name, &catHandle, &parentName, &parentHandle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var parent *usecase.ParentCategory
	if parentName != nil && parentHandle != nil {
		parent = usecase.NewParentCategory(*parentName, *parentHandle)
	}

	return usecase.NewResolvedCategory(id, name, catHandle, parent), nil
}
