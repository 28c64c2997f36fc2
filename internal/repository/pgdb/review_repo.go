package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/lumera-shop/catalog-backend/internal/domain"
	"github.com/lumera-shop/catalog-backend/pkg/e"
)

// ReviewRepo реализует репозиторий отзывов поверх PostgreSQL.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

// GetByProducts возвращает сырые оценки отзывов по товарам одним батч-запросом.
func (r *ReviewRepo) GetByProducts(ctx context.Context, ids []int64) ([]domain.Review, error) {
	query := `
		SELECT product_id, rating
		FROM reviews
		WHERE product_id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ProductID, &review.Rating); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, review)
	}

	return result, rows.Err()
}
