package usecase

import "context"

type CatalogUC interface {
	ResolveCategoryProducts(ctx context.Context, req *ResolveCategoryProductsReq) (*ResolveCategoryProductsRes, error)
}
