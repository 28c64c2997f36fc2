package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lumera-shop/catalog-backend/internal/usecase"
	"github.com/lumera-shop/catalog-backend/pkg/e"
)

func listingRequest(t *testing.T, rawQuery string) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/categories/shoes/products?"+rawQuery, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("handle", "shoes")

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestParseListingRequest_Defaults(t *testing.T) {
	req, err := parseListingRequest(listingRequest(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Handle != "shoes" {
		t.Fatalf("expected handle shoes, got %q", req.Handle)
	}
	if req.Page != 1 {
		t.Fatalf("expected default page 1, got %d", req.Page)
	}
	if req.SortBy != usecase.SortPopularity {
		t.Fatalf("expected default sort popularity, got %q", req.SortBy)
	}
	if req.Filters.HasOptionFilters() || req.Filters.HasMetadataFilters() || req.Filters.HasRatingFilter() {
		t.Fatalf("expected no filters, got %+v", req.Filters)
	}
}

func TestParseListingRequest_FullQuery(t *testing.T) {
	query := "option=Color:Red&option=Size:M&attr=brand:Acme&min_price=100&max_price=599.99&min_rating=4&sort=price_asc&page=3"
	req, err := parseListingRequest(listingRequest(t, query))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Filters.Options["Color"] != "Red" || req.Filters.Options["Size"] != "M" {
		t.Fatalf("options parsed wrong: %+v", req.Filters.Options)
	}
	if req.Filters.Attributes["brand"] != "Acme" {
		t.Fatalf("attributes parsed wrong: %+v", req.Filters.Attributes)
	}
	if req.Filters.MinPrice == nil || *req.Filters.MinPrice != 10000 {
		t.Fatalf("expected min price 10000 cents, got %v", req.Filters.MinPrice)
	}
	if req.Filters.MaxPrice == nil || *req.Filters.MaxPrice != 59999 {
		t.Fatalf("expected max price 59999 cents, got %v", req.Filters.MaxPrice)
	}
	if req.Filters.MinRating == nil || *req.Filters.MinRating != 4 {
		t.Fatalf("expected min rating 4, got %v", req.Filters.MinRating)
	}
	if req.SortBy != usecase.SortPriceAsc {
		t.Fatalf("expected sort price_asc, got %q", req.SortBy)
	}
	if req.Page != 3 {
		t.Fatalf("expected page 3, got %d", req.Page)
	}
}

func TestParseListingRequest_DuplicateOptionLastWins(t *testing.T) {
	req, err := parseListingRequest(listingRequest(t, "option=Color:Red&option=Color:Blue"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Filters.Options["Color"] != "Blue" {
		t.Fatalf("expected last value to win, got %q", req.Filters.Options["Color"])
	}
}

func TestParseListingRequest_Errors(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  error
	}{
		{"option without value", "option=Color", e.ErrInvalidFilter},
		{"option with empty value", "option=Color:", e.ErrInvalidFilter},
		{"attr without key", "attr=:Acme", e.ErrInvalidFilter},
		{"negative price", "min_price=-5", e.ErrInvalidPrice},
		{"price too precise", "min_price=10.999", e.ErrPricePrecision},
		{"price not a number", "max_price=abc", e.ErrInvalidPrice},
		{"rating not a number", "min_rating=high", e.ErrInvalidRating},
		{"page not a number", "page=two", e.ErrInvalidPage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseListingRequest(listingRequest(t, tc.query))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"600", 60000},
		{"599.99", 59999},
		{"0", 0},
		{"0.5", 50},
	}

	for _, tc := range cases {
		got, err := parsePriceToCents(tc.in)
		if err != nil {
			t.Fatalf("parsePriceToCents(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parsePriceToCents(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestToHTTPResponse(t *testing.T) {
	if code, _ := ToHTTPResponse(e.ErrInvalidSortKey); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid sort key, got %d", code)
	}
	if code, msg := ToHTTPResponse(errors.New("pg down")); code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown error, got %d", code)
	} else if msg != e.ErrInternalServerError.Error() {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}
