package usecase

import (
	"context"
	"time"

	"github.com/lumera-shop/catalog-backend/internal/domain"
	"github.com/lumera-shop/catalog-backend/pkg/e"
)

// aggregateRatings возвращает агрегаты рейтинга для заданных товаров.
// Кэш читается насквозь: промахи и ошибки кэша деградируют до запроса
// сырых отзывов из хранилища; ошибка хранилища фатальна для запроса.
func (c *CatalogUseCase) aggregateRatings(ctx context.Context, ids []int64) (map[int64]RatingAgg, error) {
	const op = "CatalogUseCase.aggregateRatings"

	if len(ids) == 0 {
		return map[int64]RatingAgg{}, nil
	}

	cached, err := c.cacheRepo.GetRatings(ctx, ids)
	if err != nil {
		c.logger.Warnf("Rating cache lookup failed: %v", e.Wrap(op, err))
		cached = nil
	}

	result := make(map[int64]RatingAgg, len(ids))
	missing := make([]int64, 0, len(ids))
	for _, id := range ids {
		if agg, ok := cached[id]; ok {
			result[id] = agg
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		reviews, err := c.reviewRepo.GetByProducts(ctx, missing)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		fresh := AggregateReviews(missing, reviews)
		for id, agg := range fresh {
			result[id] = agg
		}

		// Фоновое пополнение кэша агрегатов
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetRatings(bgCtx, fresh); err != nil {
				c.logger.Warnf("Failed to cache rating aggregates in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return result, nil
}

// AggregateReviews группирует сырые отзывы по товарам и считает
// среднее арифметическое и количество. Товары без отзывов получают {0, 0}.
func AggregateReviews(ids []int64, reviews []domain.Review) map[int64]RatingAgg {
	sums := make(map[int64]float64, len(ids))
	counts := make(map[int64]int, len(ids))
	for _, review := range reviews {
		sums[review.ProductID] += review.Rating
		counts[review.ProductID]++
	}

	result := make(map[int64]RatingAgg, len(ids))
	for _, id := range ids {
		if n := counts[id]; n > 0 {
			result[id] = NewRatingAgg(sums[id]/float64(n), n)
		} else {
			result[id] = RatingAgg{}
		}
	}

	return result
}
