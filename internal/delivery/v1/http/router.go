package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/lumera-shop/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/lumera-shop/catalog-backend/internal/usecase"
	"github.com/lumera-shop/catalog-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)
	})
}

func registerCatalogRoutes(router chi.Router, catalogHandler *CatalogHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/{handle}/products", catalogHandler.getCategoryProducts)
	})
}
