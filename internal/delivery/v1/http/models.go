package http

import "github.com/lumera-shop/catalog-backend/internal/usecase"

// CategoryProductsResponse — страница выдачи товаров категории.
type CategoryProductsResponse struct {
	CategoryName   string                   `json:"category_name"`
	ParentCategory *ParentCategoryResponse  `json:"parent_category,omitempty"`
	Products       []ProductSummaryResponse `json:"products"`
	TotalCount     int                      `json:"total_count"`
	TotalPages     int                      `json:"total_pages"`
}

type ParentCategoryResponse struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

type ProductSummaryResponse struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Price         int64    `json:"price"`
	DiscountPrice *int64   `json:"discount_price,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewsCount  int      `json:"reviews_count"`
	IsSale        bool     `json:"is_sale"`
	IsNew         bool     `json:"is_new"`
	IsFeatured    bool     `json:"is_featured"`
	Tags          []string `json:"tags,omitempty"`
}

func NewCategoryProductsResponse(res *usecase.ResolveCategoryProductsRes) *CategoryProductsResponse {
	products := make([]ProductSummaryResponse, 0, len(res.Items))
	for _, item := range res.Items {
		products = append(products, ProductSummaryResponse{
			ID:            item.ID,
			Title:         item.Title,
			Description:   item.Description,
			Thumbnail:     item.Thumbnail,
			Price:         item.Price,
			DiscountPrice: item.DiscountPrice,
			Rating:        item.Rating,
			ReviewsCount:  item.ReviewsCount,
			IsSale:        item.IsSale,
			IsNew:         item.IsNew,
			IsFeatured:    item.IsFeatured,
			Tags:          item.Tags,
		})
	}

	var parent *ParentCategoryResponse
	if res.ParentCategory != nil {
		parent = &ParentCategoryResponse{
			Name:   res.ParentCategory.Name,
			Handle: res.ParentCategory.Handle,
		}
	}

	return &CategoryProductsResponse{
		CategoryName:   res.CategoryName,
		ParentCategory: parent,
		Products:       products,
		TotalCount:     res.TotalCount,
		TotalPages:     res.TotalPages,
	}
}
