package cfg

import "testing"

func TestLoadKafkaCfg_MaxRetries(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("KAFKA_TOPIC", "listing-events")

	// Нулевое и отрицательное число попыток отклоняются:
	// продюсер делает хотя бы одну попытку записи
	t.Setenv("KAFKA_MAX_RETRIES", "0")
	if _, err := loadKafkaCfg(); err == nil {
		t.Fatalf("expected error for KAFKA_MAX_RETRIES=0")
	}

	t.Setenv("KAFKA_MAX_RETRIES", "-2")
	if _, err := loadKafkaCfg(); err == nil {
		t.Fatalf("expected error for negative KAFKA_MAX_RETRIES")
	}

	t.Setenv("KAFKA_MAX_RETRIES", "5")
	cfg, err := loadKafkaCfg()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxRetries != 5 {
		t.Fatalf("expected MaxRetries 5, got %d", cfg.MaxRetries)
	}
}

func TestLoadCatalogCfg_ProductsPerPage(t *testing.T) {
	cfg, err := loadCatalogCfg()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProductsPerPage != 8 {
		t.Fatalf("expected default page size 8, got %d", cfg.ProductsPerPage)
	}

	t.Setenv("PRODUCTS_PER_PAGE", "0")
	if _, err := loadCatalogCfg(); err == nil {
		t.Fatalf("expected error for PRODUCTS_PER_PAGE=0")
	}
}
