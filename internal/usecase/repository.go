package usecase

import (
	"context"

	"github.com/lumera-shop/catalog-backend/internal/domain"
)

type CategoryRepository interface {
	// GetByHandle возвращает активную категорию по handle вместе с родителем.
	// Возвращает e.ErrCategoryNotFound, если категория не найдена.
	GetByHandle(ctx context.Context, handle string) (*ResolvedCategory, error)
}

type ProductRepository interface {
	GetIDsByCategory(ctx context.Context, categoryID int64) ([]int64, error)
	GetListing(ctx context.Context, ids []int64) ([]domain.Product, error)
	GetTags(ctx context.Context, ids []int64) (map[int64][]string, error)
}

type VariantRepository interface {
	GetByProducts(ctx context.Context, ids []int64) ([]domain.Variant, error)
}

type ReviewRepository interface {
	GetByProducts(ctx context.Context, ids []int64) ([]domain.Review, error)
}

type CacheRepository interface {
	GetRatings(ctx context.Context, ids []int64) (map[int64]RatingAgg, error)
	SetRatings(ctx context.Context, aggs map[int64]RatingAgg) error
}
