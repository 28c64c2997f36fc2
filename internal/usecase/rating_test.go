package usecase

import (
	"testing"

	"github.com/lumera-shop/catalog-backend/internal/domain"
)

func TestAggregateReviews(t *testing.T) {
	reviews := []domain.Review{
		{ProductID: 1, Rating: 5},
		{ProductID: 1, Rating: 4},
		{ProductID: 2, Rating: 3},
	}

	aggs := AggregateReviews([]int64{1, 2, 3}, reviews)

	if agg := aggs[1]; agg.Avg != 4.5 || agg.Count != 2 {
		t.Fatalf("product 1: expected {4.5, 2}, got %+v", agg)
	}
	if agg := aggs[2]; agg.Avg != 3 || agg.Count != 1 {
		t.Fatalf("product 2: expected {3, 1}, got %+v", agg)
	}
	// Товар без отзывов получает нулевой агрегат, а не отсутствует
	if agg, ok := aggs[3]; !ok || agg.Avg != 0 || agg.Count != 0 {
		t.Fatalf("product 3: expected zero aggregate, got %+v (present: %v)", agg, ok)
	}
}

func TestFilterByRating(t *testing.T) {
	products := []domain.Product{
		testProduct(1, 100, 1), testProduct(2, 200, 2), testProduct(3, 300, 3),
	}
	ratings := map[int64]RatingAgg{
		1: NewRatingAgg(4.0, 2),
		2: NewRatingAgg(3.9, 7),
		3: {},
	}

	kept := filterByRating(products, ratings, 4.0)

	if len(kept) != 1 || kept[0].ID != 1 {
		t.Fatalf("expected only product 1 to survive, got %v", idsOf(kept))
	}
}

func TestFilterByMetadata_PriceBounds(t *testing.T) {
	products := []domain.Product{
		testProduct(1, 100, 1), testProduct(2, 250, 2), testProduct(3, 400, 3),
	}

	filters := &FilterSpec{MinPrice: int64Ptr(100), MaxPrice: int64Ptr(250)}
	kept := filterByMetadata(products, filters)

	// Границы включительные
	if len(kept) != 2 || kept[0].ID != 1 || kept[1].ID != 2 {
		t.Fatalf("expected products 1 and 2, got %v", idsOf(kept))
	}
}
