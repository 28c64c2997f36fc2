package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lumera-shop/catalog-backend/internal/domain"
	"github.com/lumera-shop/catalog-backend/pkg/e"
)

// VariantRepo реализует репозиторий вариантов товаров поверх PostgreSQL.
type VariantRepo struct {
	pool *pgxpool.Pool
}

func NewVariantRepo(pool *pgxpool.Pool) *VariantRepo {
	return &VariantRepo{pool: pool}
}

// GetByProducts возвращает варианты товаров вместе с их опциями
// одним батч-запросом. Строки группируются по варианту в памяти.
func (v *VariantRepo) GetByProducts(ctx context.Context, ids []int64) ([]domain.Variant, error) {
	query := `
		SELECT pv.id, pv.product_id, vo.option_name, vo.option_value
		FROM product_variants pv
		JOIN variant_options vo ON vo.variant_id = pv.id
		WHERE pv.product_id = ANY($1)
		ORDER BY pv.id
	`

	rows, err := v.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	variants := make([]domain.Variant, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var (
			variantID int64
			productID int64
			option    domain.VariantOption
		)
		if err := rows.Scan(&variantID, &productID, &option.Option, &option.Value); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		i, ok := index[variantID]
		if !ok {
			i = len(variants)
			index[variantID] = i
			variants = append(variants, domain.Variant{
				ID:        variantID,
				ProductID: productID,
			})
		}
		variants[i].Options = append(variants[i].Options, option)
	}

	return variants, rows.Err()
}
