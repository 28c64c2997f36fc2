package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lumera-shop/catalog-backend/internal/domain"
	"github.com/lumera-shop/catalog-backend/pkg/e"
	"github.com/lumera-shop/catalog-backend/pkg/logger"
)

// CatalogUseCase реализует пайплайн выдачи товаров категории:
// резолв категории → набор кандидатов → фильтры → сортировка и пагинация → проекция.
type CatalogUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	variantRepo  VariantRepository
	reviewRepo   ReviewRepository
	cacheRepo    CacheRepository
	media        MediaInfra
	analytics    AnalyticsProducer
	logger       logger.Logger
	pageSize     int
}

func NewCatalogUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	variantRepo VariantRepository,
	reviewRepo ReviewRepository,
	cacheRepo CacheRepository,
	media MediaInfra,
	analytics AnalyticsProducer,
	logger logger.Logger,
	pageSize int,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		reviewRepo:   reviewRepo,
		cacheRepo:    cacheRepo,
		media:        media,
		analytics:    analytics,
		logger:       logger,
		pageSize:     pageSize,
	}
}

// ResolveCategoryProducts возвращает одну страницу отфильтрованной и отсортированной
// выдачи товаров категории. Неизвестный handle даёт пустую выдачу, а не ошибку;
// любая ошибка хранилища фатальна для запроса целиком — частичные результаты не возвращаются.
// Снапшот-изоляция между стадиями не гарантируется: конкурентные изменения каталога
// между стадиями одного запроса допустимы (eventual consistency).
func (c *CatalogUseCase) ResolveCategoryProducts(ctx context.Context, req *ResolveCategoryProductsReq) (*ResolveCategoryProductsRes, error) {
	const op = "CatalogUseCase.ResolveCategoryProducts"

	// Валидация данных
	if err := validateRequest(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := c.categoryRepo.GetByHandle(ctx, req.Handle)
	if err != nil {
		if errors.Is(err, e.ErrCategoryNotFound) {
			c.logger.Debugf("category handle not resolved: %s", req.Handle)
			return c.emptyResult(nil), nil
		}
		return nil, e.Wrap(op, err)
	}

	// Построение набора кандидатов по членству в категории
	ids, err := c.productRepo.GetIDsByCategory(ctx, category.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Стадия фильтра по опциям вариантов
	if req.Filters.HasOptionFilters() && len(ids) > 0 {
		ids, err = c.applyOptionFilter(ctx, ids, req.Filters.Options)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	// Пустой набор кандидатов — законное терминальное состояние, не ошибка
	if len(ids) == 0 {
		c.publishListingViewed(category, req, 0)
		return c.emptyResult(category), nil
	}

	products, err := c.productRepo.GetListing(ctx, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Стадия фильтра по метаданным и цене
	if req.Filters.HasMetadataFilters() {
		products = filterByMetadata(products, &req.Filters)
	}

	// Стадия фильтра по рейтингу
	var ratings map[int64]RatingAgg
	if req.Filters.HasRatingFilter() && len(products) > 0 {
		ratings, err = c.aggregateRatings(ctx, productIDs(products))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		products = filterByRating(products, ratings, *req.Filters.MinRating)
	}

	totalCount := len(products)
	if totalCount == 0 {
		c.publishListingViewed(category, req, 0)
		return c.emptyResult(category), nil
	}

	// Сортировка по рейтингу зависит от межтабличного агрегата, недоступного
	// как колонка, поэтому агрегаты считаются для всего отфильтрованного набора
	// до пагинации, а сортировка выполняется в памяти.
	if req.SortBy == SortRating && ratings == nil {
		ratings, err = c.aggregateRatings(ctx, productIDs(products))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	sortProducts(products, req.SortBy, ratings)
	page := paginate(products, req.Page, c.pageSize)

	// Агрегаты нужны и для отображения; если фильтр и сортировка по рейтингу
	// не запускались, достаточно агрегатов по товарам страницы.
	if ratings == nil && len(page) > 0 {
		ratings, err = c.aggregateRatings(ctx, productIDs(page))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	var tags map[int64][]string
	if len(page) > 0 {
		tags, err = c.productRepo.GetTags(ctx, productIDs(page))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	items := c.project(ctx, page, ratings, tags)

	c.publishListingViewed(category, req, totalCount)

	return &ResolveCategoryProductsRes{
		CategoryName:   category.Name,
		ParentCategory: category.Parent,
		Items:          items,
		TotalCount:     totalCount,
		TotalPages:     totalPages(totalCount, c.pageSize),
	}, nil
}

// project строит проекции товаров страницы из строк каталога,
// агрегатов рейтинга и тегов.
func (c *CatalogUseCase) project(ctx context.Context, page []domain.Product, ratings map[int64]RatingAgg, tags map[int64][]string) []ProductSummary {
	keys := make([]string, 0, len(page))
	for i := range page {
		if page[i].Thumbnail != nil && *page[i].Thumbnail != "" {
			keys = append(keys, *page[i].Thumbnail)
		}
	}
	links := c.media.ResolveThumbnails(ctx, keys)

	items := make([]ProductSummary, 0, len(page))
	for i := range page {
		product := &page[i]
		meta := product.Meta()

		thumbnail := ""
		if product.Thumbnail != nil && *product.Thumbnail != "" {
			thumbnail = links[*product.Thumbnail]
			if thumbnail == "" {
				thumbnail = *product.Thumbnail
			}
		}

		agg := ratings[product.ID]
		items = append(items, ProductSummary{
			ID:            product.ID,
			Title:         product.Title,
			Description:   product.Description,
			Thumbnail:     thumbnail,
			Price:         meta.Price,
			DiscountPrice: meta.DiscountPrice,
			Rating:        agg.Avg,
			ReviewsCount:  agg.Count,
			IsSale:        meta.IsSale,
			IsNew:         meta.IsNew,
			IsFeatured:    meta.IsFeatured,
			Tags:          tags[product.ID],
		})
	}

	return items
}

// emptyResult строит пустую страницу выдачи; category может быть nil,
// если handle не разрешился.
func (c *CatalogUseCase) emptyResult(category *ResolvedCategory) *ResolveCategoryProductsRes {
	res := &ResolveCategoryProductsRes{
		Items: make([]ProductSummary, 0),
	}
	if category != nil {
		res.CategoryName = category.Name
		res.ParentCategory = category.Parent
	}

	return res
}

// publishListingViewed отправляет аналитическое событие в фоне,
// не задерживая ответ и не влияя на его успешность.
func (c *CatalogUseCase) publishListingViewed(category *ResolvedCategory, req *ResolveCategoryProductsReq, totalCount int) {
	event := NewListingViewedEvent(uuid.NewString(), category.ID, req, totalCount)

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.analytics.PublishListingViewed(bgCtx, event); err != nil {
			c.logger.Warnf("Failed to publish listing viewed event: %v", err)
		}
	}()
}

// validateRequest проверяет корректность входных данных запроса выдачи.
func validateRequest(req *ResolveCategoryProductsReq) error {
	if req.Page < 1 {
		return e.ErrInvalidPage
	}

	if !ValidSortKey(req.SortBy) {
		return e.ErrInvalidSortKey
	}

	if req.Filters.MinRating != nil && *req.Filters.MinRating < 0 {
		return e.ErrInvalidRating
	}

	if req.Filters.MinPrice != nil && req.Filters.MaxPrice != nil && *req.Filters.MinPrice > *req.Filters.MaxPrice {
		return e.ErrInvalidPriceRange
	}

	return nil
}

// productIDs собирает идентификаторы товаров, сохраняя порядок.
func productIDs(products []domain.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for i := range products {
		ids = append(ids, products[i].ID)
	}

	return ids
}
