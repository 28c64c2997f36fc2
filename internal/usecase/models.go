package usecase

import "time"

// CATALOG USECASE

// SortKey — ключ сортировки выдачи товаров.
type SortKey string

const (
	SortPopularity SortKey = "popularity" // по умолчанию
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRating     SortKey = "rating"
	SortNewest     SortKey = "newest"
)

// ValidSortKey проверяет, что ключ сортировки входит в поддерживаемый набор.
func ValidSortKey(key SortKey) bool {
	switch key {
	case SortPopularity, SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
		return true
	default:
		return false
	}
}

// FilterSpec — заданная вызывающей стороной комбинация ограничений одного запроса:
// опции вариантов, атрибуты метаданных, диапазон цены и минимальный рейтинг.
type FilterSpec struct {
	Options    map[string]string // например "Size" -> "M"
	Attributes map[string]string // например "brand" -> "Acme"
	MinPrice   *int64            // копейки, включительно
	MaxPrice   *int64            // копейки, включительно
	MinRating  *float64
}

// HasOptionFilters сообщает, нужно ли запускать стадию фильтра по опциям вариантов.
func (f *FilterSpec) HasOptionFilters() bool {
	return len(f.Options) > 0
}

// HasMetadataFilters сообщает, нужно ли запускать стадию фильтра по метаданным и цене.
func (f *FilterSpec) HasMetadataFilters() bool {
	return len(f.Attributes) > 0 || f.MinPrice != nil || f.MaxPrice != nil
}

// HasRatingFilter сообщает, нужно ли запускать стадию фильтра по рейтингу.
func (f *FilterSpec) HasRatingFilter() bool {
	return f.MinRating != nil
}

// ResolveCategoryProductsReq — запрос выдачи товаров категории.
type ResolveCategoryProductsReq struct {
	Handle  string
	Filters FilterSpec
	SortBy  SortKey
	Page    int // нумерация с единицы
}

// ParentCategory — данные родительской категории для хлебных крошек.
type ParentCategory struct {
	Name   string
	Handle string
}

// ResolvedCategory — категория, найденная по handle, вместе с родителем.
type ResolvedCategory struct {
	ID     int64
	Name   string
	Handle string
	Parent *ParentCategory
}

// RatingAgg — агрегат рейтинга товара: среднее и количество отзывов.
// Отсутствие товара в агрегатах означает {0, 0} — «нет рейтинга», а не «ноль звёзд».
type RatingAgg struct {
	Avg   float64
	Count int
}

// ProductSummary — проекция товара для витрины.
type ProductSummary struct {
	ID            int64
	Title         string
	Description   *string
	Thumbnail     string
	Price         int64
	DiscountPrice *int64
	Rating        float64
	ReviewsCount  int
	IsSale        bool
	IsNew         bool
	IsFeatured    bool
	Tags          []string // nil, если тегов нет
}

// ResolveCategoryProductsRes — страница выдачи товаров категории.
// TotalCount всегда равен размеру отфильтрованного набора до пагинации.
type ResolveCategoryProductsRes struct {
	CategoryName   string
	ParentCategory *ParentCategory
	Items          []ProductSummary
	TotalCount     int
	TotalPages     int
}

// INFRASTRUCTURE

// ListingViewedEvent — аналитическое событие успешного показа выдачи.
type ListingViewedEvent struct {
	EventID    string    `json:"event_id"`
	CategoryID int64     `json:"category_id"`
	Handle     string    `json:"handle"`
	SortBy     SortKey   `json:"sort_by"`
	Page       int       `json:"page"`
	TotalCount int       `json:"total_count"`
	HasFilters bool      `json:"has_filters"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MAPPERS

func NewResolveCategoryProductsReq(handle string, filters FilterSpec, sortBy SortKey, page int) *ResolveCategoryProductsReq {
	return &ResolveCategoryProductsReq{
		Handle:  handle,
		Filters: filters,
		SortBy:  sortBy,
		Page:    page,
	}
}

func NewParentCategory(name, handle string) *ParentCategory {
	return &ParentCategory{
		Name:   name,
		Handle: handle,
	}
}

func NewResolvedCategory(id int64, name, handle string, parent *ParentCategory) *ResolvedCategory {
	return &ResolvedCategory{
		ID:     id,
		Name:   name,
		Handle: handle,
		Parent: parent,
	}
}

func NewRatingAgg(avg float64, count int) RatingAgg {
	return RatingAgg{
		Avg:   avg,
		Count: count,
	}
}

func NewListingViewedEvent(eventID string, categoryID int64, req *ResolveCategoryProductsReq, totalCount int) *ListingViewedEvent {
	hasFilters := req.Filters.HasOptionFilters() || req.Filters.HasMetadataFilters() || req.Filters.HasRatingFilter()

	return &ListingViewedEvent{
		EventID:    eventID,
		CategoryID: categoryID,
		Handle:     req.Handle,
		SortBy:     req.SortBy,
		Page:       req.Page,
		TotalCount: totalCount,
		HasFilters: hasFilters,
		OccurredAt: time.Now().UTC(),
	}
}
