package usecase

import (
	"testing"
	"time"

	"github.com/lumera-shop/catalog-backend/internal/domain"
)

func productsFixture() []domain.Product {
	// Намеренно есть дубли цен, чтобы проверить разрешение ничьих
	return []domain.Product{
		testProduct(1, 500, 10),
		testProduct(2, 300, 50),
		testProduct(3, 500, 30),
		testProduct(4, 100, 20),
		testProduct(5, 300, 40),
	}
}

func idsOf(products []domain.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for i := range products {
		ids = append(ids, products[i].ID)
	}
	return ids
}

func TestSortProducts_PriceOrdersAreExactReverses(t *testing.T) {
	asc := productsFixture()
	desc := productsFixture()

	sortProducts(asc, SortPriceAsc, nil)
	sortProducts(desc, SortPriceDesc, nil)

	ascIDs, descIDs := idsOf(asc), idsOf(desc)
	for i := range ascIDs {
		if ascIDs[i] != descIDs[len(descIDs)-1-i] {
			t.Fatalf("price_desc is not the exact reverse of price_asc: %v vs %v", ascIDs, descIDs)
		}
	}

	// Ничьи по цене разрешаются по id по возрастанию
	want := []int64{4, 2, 5, 1, 3}
	for i, id := range want {
		if ascIDs[i] != id {
			t.Fatalf("price_asc order: expected %v, got %v", want, ascIDs)
		}
	}
}

func TestSortProducts_PopularityDefault(t *testing.T) {
	products := productsFixture()
	noRank := testProduct(6, 50, 0)
	noRank.Metadata.Popularity = nil
	products = append(products, noRank)

	sortProducts(products, SortPopularity, nil)

	ids := idsOf(products)
	want := []int64{2, 5, 3, 4, 1, 6}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("popularity order: expected %v, got %v", want, ids)
		}
	}
}

func TestSortProducts_Newest(t *testing.T) {
	products := productsFixture()
	sortProducts(products, SortNewest, nil)

	// CreatedAt растёт вместе с id в фикстуре
	ids := idsOf(products)
	want := []int64{5, 4, 3, 2, 1}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("newest order: expected %v, got %v", want, ids)
		}
	}
}

func TestSortProducts_RatingPutsUnratedLast(t *testing.T) {
	products := productsFixture()
	ratings := map[int64]RatingAgg{
		1: NewRatingAgg(4.5, 10),
		2: NewRatingAgg(4.5, 3),
		3: NewRatingAgg(5, 1),
		// товары 4 и 5 без отзывов
	}

	sortProducts(products, SortRating, ratings)

	ids := idsOf(products)
	want := []int64{3, 1, 2, 4, 5}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("rating order: expected %v, got %v", want, ids)
		}
	}
}

func TestSortProducts_Deterministic(t *testing.T) {
	now := time.Now()
	same := []domain.Product{
		{ID: 3, CreatedAt: now}, {ID: 1, CreatedAt: now}, {ID: 2, CreatedAt: now},
	}
	sortProducts(same, SortNewest, nil)

	want := []int64{3, 2, 1}
	for i, id := range want {
		if same[i].ID != id {
			t.Fatalf("tie-break by id: expected %v, got %v", want, idsOf(same))
		}
	}
}

func TestPaginate(t *testing.T) {
	products := make([]domain.Product, 0, 10)
	for i := int64(1); i <= 10; i++ {
		products = append(products, testProduct(i, i, i))
	}

	cases := []struct {
		name    string
		page    int
		size    int
		wantIDs []int64
	}{
		{"first page", 1, 4, []int64{1, 2, 3, 4}},
		{"middle page", 2, 4, []int64{5, 6, 7, 8}},
		{"short last page", 3, 4, []int64{9, 10}},
		{"beyond last", 4, 4, nil},
		{"page equals set", 1, 10, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := paginate(products, tc.page, tc.size)
			if len(page) != len(tc.wantIDs) {
				t.Fatalf("expected %d items, got %d", len(tc.wantIDs), len(page))
			}
			for i, id := range tc.wantIDs {
				if page[i].ID != id {
					t.Fatalf("expected ids %v, got %v", tc.wantIDs, idsOf(page))
				}
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 8, 0},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{16, 8, 2},
		{17, 8, 3},
	}

	for _, tc := range cases {
		if got := totalPages(tc.total, tc.size); got != tc.want {
			t.Fatalf("totalPages(%d, %d): expected %d, got %d", tc.total, tc.size, tc.want, got)
		}
	}
}
