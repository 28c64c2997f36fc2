package usecase

import (
	"sort"

	"github.com/lumera-shop/catalog-backend/internal/domain"
)

// sortProducts упорядочивает отфильтрованный набор по ключу сортировки.
// Разрешение ничьих детерминировано: одинаковый вход даёт одинаковый порядок.
// price_desc — точная инверсия компаратора price_asc, включая разрешение ничьих,
// поэтому оба порядка являются точными зеркалами друг друга.
func sortProducts(products []domain.Product, key SortKey, ratings map[int64]RatingAgg) {
	var less func(a, b *domain.Product) bool

	switch key {
	case SortPriceAsc:
		less = lessByPriceAsc
	case SortPriceDesc:
		less = func(a, b *domain.Product) bool { return lessByPriceAsc(b, a) }
	case SortNewest:
		less = lessByNewest
	case SortRating:
		less = func(a, b *domain.Product) bool { return lessByRating(a, b, ratings) }
	default:
		less = lessByPopularity
	}

	sort.Slice(products, func(i, j int) bool {
		return less(&products[i], &products[j])
	})
}

func lessByPriceAsc(a, b *domain.Product) bool {
	if pa, pb := a.Meta().Price, b.Meta().Price; pa != pb {
		return pa < pb
	}
	return a.ID < b.ID
}

func lessByNewest(a, b *domain.Product) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// lessByPopularity сортирует по рангу популярности по убыванию;
// отсутствующий ранг трактуется как самый низкий.
func lessByPopularity(a, b *domain.Product) bool {
	ra, rb := popularityRank(a), popularityRank(b)
	if ra != rb {
		return ra > rb
	}
	return a.ID < b.ID
}

// lessByRating сортирует по среднему рейтингу по убыванию. Товары без отзывов
// имеют агрегат {0, 0} и оказываются в конце: оценки строго положительны,
// поэтому любой товар с отзывами имеет среднее выше нуля.
func lessByRating(a, b *domain.Product, ratings map[int64]RatingAgg) bool {
	aggA, aggB := ratings[a.ID], ratings[b.ID]
	if aggA.Avg != aggB.Avg {
		return aggA.Avg > aggB.Avg
	}
	if aggA.Count != aggB.Count {
		return aggA.Count > aggB.Count
	}
	return a.ID < b.ID
}

func popularityRank(p *domain.Product) int64 {
	if rank := p.Meta().Popularity; rank != nil {
		return *rank
	}
	return -1 << 62
}

// paginate вырезает страницу [(page-1)*size, page*size).
// Страница за пределами выдачи — пустая страница, не ошибка.
func paginate(products []domain.Product, page, size int) []domain.Product {
	start := (page - 1) * size
	if start >= len(products) {
		return nil
	}

	end := min(start+size, len(products))
	return products[start:end]
}

// totalPages считает количество страниц выдачи: ceil(total / size).
func totalPages(total, size int) int {
	return (total + size - 1) / size
}
