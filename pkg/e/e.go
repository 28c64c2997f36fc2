package e

import "fmt"

var (
	// Ошибки каталога
	ErrCategoryNotFound = fmt.Errorf("category not found")

	// 400 Bad Request
	ErrInvalidPage       = fmt.Errorf("page must be a positive integer")
	ErrInvalidSortKey    = fmt.Errorf("unknown sort key")
	ErrInvalidRating     = fmt.Errorf("min rating must be non-negative")
	ErrInvalidPrice      = fmt.Errorf("invalid price value")
	ErrPricePrecision    = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidPriceRange = fmt.Errorf("min price must not exceed max price")
	ErrInvalidFilter     = fmt.Errorf("invalid filter expression")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
