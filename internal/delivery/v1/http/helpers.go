package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lumera-shop/catalog-backend/internal/usecase"
	"github.com/lumera-shop/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidPage):
		return http.StatusBadRequest, e.ErrInvalidPage.Error()
	case errors.Is(err, e.ErrInvalidSortKey):
		return http.StatusBadRequest, e.ErrInvalidSortKey.Error()
	case errors.Is(err, e.ErrInvalidRating):
		return http.StatusBadRequest, e.ErrInvalidRating.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidPriceRange):
		return http.StatusBadRequest, e.ErrInvalidPriceRange.Error()
	case errors.Is(err, e.ErrInvalidFilter):
		return http.StatusBadRequest, e.ErrInvalidFilter.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseListingRequest разбирает параметры запроса выдачи товаров категории.
// Повторяемые параметры option и attr имеют вид "Имя:Значение";
// одинаковые имена схлопываются, побеждает последнее значение.
func parseListingRequest(r *http.Request) (*usecase.ResolveCategoryProductsReq, error) {
	handle := chi.URLParam(r, "handle")
	query := r.URL.Query()

	options, err := parseKeyValuePairs(query["option"])
	if err != nil {
		return nil, err
	}

	attributes, err := parseKeyValuePairs(query["attr"])
	if err != nil {
		return nil, err
	}

	minPrice, err := parseOptionalPrice(query.Get("min_price"))
	if err != nil {
		return nil, err
	}

	maxPrice, err := parseOptionalPrice(query.Get("max_price"))
	if err != nil {
		return nil, err
	}

	minRating, err := parseOptionalRating(query.Get("min_rating"))
	if err != nil {
		return nil, err
	}

	sortBy := usecase.SortPopularity
	if raw := query.Get("sort"); raw != "" {
		sortBy = usecase.SortKey(raw)
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return nil, e.ErrInvalidPage
		}
	}

	filters := usecase.FilterSpec{
		Options:    options,
		Attributes: attributes,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		MinRating:  minRating,
	}

	return usecase.NewResolveCategoryProductsReq(handle, filters, sortBy, page), nil
}

// parseKeyValuePairs разбирает повторяемый параметр вида "Имя:Значение".
func parseKeyValuePairs(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	result := make(map[string]string, len(raw))
	for _, pair := range raw {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, e.Wrap(pair, e.ErrInvalidFilter)
		}
		result[parts[0]] = parts[1]
	}

	return result, nil
}

func parseOptionalPrice(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}

	cents, err := parsePriceToCents(s)
	if err != nil {
		return nil, err
	}

	return &cents, nil
}

func parseOptionalRating(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}

	rating, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, e.ErrInvalidRating
	}

	return &rating, nil
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (e.g. 10^9 rubles)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Enforce max value (e.g. 1 billion rubles = 100_000_000_000 cents)
	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100)) // 1B rub in cents
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision // "price must have at most 2 decimal places"
	}

	// Convert to cents: multiply by 100 and round
	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}
