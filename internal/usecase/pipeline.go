package usecase

import (
	"context"

	"github.com/lumera-shop/catalog-backend/internal/domain"
	"github.com/lumera-shop/catalog-backend/pkg/e"
)

// Стадии фильтра только сужают набор кандидатов (монотонность):
// каждая стадия принимает текущий набор и возвращает его подмножество,
// сохраняя исходный порядок кандидатов.

// applyOptionFilter оставляет товары, у которых хотя бы один вариант
// удовлетворяет всем требуемым парам «опция → значение» одновременно.
// Данные вариантов загружаются одним батч-запросом на весь набор.
func (c *CatalogUseCase) applyOptionFilter(ctx context.Context, ids []int64, required map[string]string) ([]int64, error) {
	const op = "CatalogUseCase.applyOptionFilter"

	variants, err := c.variantRepo.GetByProducts(ctx, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	matched := make(map[int64]bool)
	for i := range variants {
		if variants[i].MatchesOptions(required) {
			matched[variants[i].ProductID] = true
		}
	}

	result := make([]int64, 0, len(matched))
	for _, id := range ids {
		if matched[id] {
			result = append(result, id)
		}
	}

	return result, nil
}

// filterByMetadata оставляет товары, у которых выполняются все равенства
// по атрибутам и цена попадает в заданный диапазон.
func filterByMetadata(products []domain.Product, filters *FilterSpec) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for i := range products {
		meta := products[i].Meta()
		if !meta.HasAttributes(filters.Attributes) {
			continue
		}
		if !meta.PriceInRange(filters.MinPrice, filters.MaxPrice) {
			continue
		}
		result = append(result, products[i])
	}

	return result
}

// filterByRating оставляет товары, у которых есть хотя бы один отзыв
// и средний рейтинг не ниже minRating. Товары без отзывов исключаются
// всегда, когда эта стадия запускается: {0, 0} означает «нет рейтинга».
func filterByRating(products []domain.Product, ratings map[int64]RatingAgg, minRating float64) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for i := range products {
		agg := ratings[products[i].ID]
		if agg.Count > 0 && agg.Avg >= minRating {
			result = append(result, products[i])
		}
	}

	return result
}
