package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lumera-shop/catalog-backend/internal/domain"
	"github.com/lumera-shop/catalog-backend/internal/repository/pgdb/converter"
	"github.com/lumera-shop/catalog-backend/pkg/e"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// GetIDsByCategory возвращает идентификаторы товаров категории
// в детерминированном порядке.
func (p *ProductRepo) GetIDsByCategory(ctx context.Context, categoryID int64) ([]int64, error) {
	query := `
		SELECT product_id
		FROM product_categories
		WHERE category_id = $1
		ORDER BY product_id
	`

	rows, err := p.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, id)
	}

	return result, rows.Err()
}

// GetListing возвращает строки каталога по идентификаторам одним батч-запросом,
// включая сырые метаданные JSONB.
func (p *ProductRepo) GetListing(ctx context.Context, ids []int64) ([]domain.Product, error) {
	query := `
		SELECT id, title, description, thumbnail, metadata, created_at
		FROM products
		WHERE id = ANY($1)
		ORDER BY id
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0, len(ids))
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Title, &model.Description,
			&model.Thumbnail, &model.Metadata, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// GetTags возвращает теги товаров по идентификаторам одним батч-запросом.
// Товары без тегов в результате отсутствуют.
func (p *ProductRepo) GetTags(ctx context.Context, ids []int64) (map[int64][]string, error) {
	query := `
		SELECT pt.product_id, t.value
		FROM product_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.product_id = ANY($1)
		ORDER BY pt.product_id, t.value
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64][]string)
	for rows.Next() {
		var (
			productID int64
			value     string
		)
		if err := rows.Scan(&productID, &value); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result[productID] = append(result[productID], value)
	}

	return result, rows.Err()
}
