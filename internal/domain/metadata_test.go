package domain

import "testing"

func TestParseMetadata(t *testing.T) {
	raw := map[string]any{
		"price":          599.99,
		"discount_price": 499.0,
		"is_sale":        true,
		"is_new":         false,
		"popularity":     42.0,
		"brand":          "Acme",
		"material":       "leather",
		"weird":          []any{"not", "a", "string"},
	}

	meta := ParseMetadata(raw)

	if meta.Price != 59999 {
		t.Fatalf("expected price 59999 cents, got %d", meta.Price)
	}
	if meta.DiscountPrice == nil || *meta.DiscountPrice != 49900 {
		t.Fatalf("expected discount price 49900 cents, got %v", meta.DiscountPrice)
	}
	if !meta.IsSale || meta.IsNew || meta.IsFeatured {
		t.Fatalf("flags parsed wrong: %+v", meta)
	}
	if meta.Popularity == nil || *meta.Popularity != 42 {
		t.Fatalf("expected popularity 42, got %v", meta.Popularity)
	}
	if meta.Attributes["brand"] != "Acme" || meta.Attributes["material"] != "leather" {
		t.Fatalf("attributes parsed wrong: %+v", meta.Attributes)
	}
	if _, ok := meta.Attributes["weird"]; ok {
		t.Fatalf("non-string residual must be dropped")
	}
}

func TestParseMetadata_IgnoresBadTypes(t *testing.T) {
	meta := ParseMetadata(map[string]any{
		"price":   "not a number",
		"is_sale": "yes",
	})

	if meta.Price != 0 || meta.IsSale {
		t.Fatalf("unexpected values from malformed metadata: %+v", meta)
	}
}

func TestParseMetadata_NegativePriceDropped(t *testing.T) {
	meta := ParseMetadata(map[string]any{"price": -10.0})
	if meta.Price != 0 {
		t.Fatalf("negative price must be dropped, got %d", meta.Price)
	}
}

func TestPriceInRange(t *testing.T) {
	low, high := int64(100), int64(250)
	meta := &Metadata{Price: 250}

	if !meta.PriceInRange(&low, &high) {
		t.Fatalf("upper bound must be inclusive")
	}
	if !meta.PriceInRange(nil, nil) {
		t.Fatalf("no bounds means always in range")
	}
	if meta.PriceInRange(nil, &low) {
		t.Fatalf("price above max must not match")
	}
}

func TestVariantMatchesOptions(t *testing.T) {
	variant := &Variant{
		ID:        1,
		ProductID: 10,
		Options: []VariantOption{
			{Option: "Color", Value: "Red"},
			{Option: "Size", Value: "M"},
		},
	}

	if !variant.MatchesOptions(map[string]string{"Color": "Red", "Size": "M"}) {
		t.Fatalf("variant must match all required pairs")
	}
	if variant.MatchesOptions(map[string]string{"Color": "Red", "Size": "L"}) {
		t.Fatalf("variant must not match with a wrong value")
	}
	// Сравнение с учётом регистра
	if variant.MatchesOptions(map[string]string{"Color": "red"}) {
		t.Fatalf("matching must be case-sensitive")
	}
	if !variant.MatchesOptions(nil) {
		t.Fatalf("empty requirements always match")
	}
}
