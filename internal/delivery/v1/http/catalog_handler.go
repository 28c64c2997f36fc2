package http

import (
	"net/http"

	"github.com/lumera-shop/catalog-backend/internal/usecase"
	"github.com/lumera-shop/catalog-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// getCategoryProducts
//
//	@Summary		Выдача товаров категории
//	@Description	Возвращает страницу отфильтрованной и отсортированной выдачи товаров категории по её handle
//	@Tags			categories
//	@Produce		json
//	@Param			handle		path	string	true	"Handle категории"
//	@Param			option		query	string	false	"Фильтр по опции варианта в виде Имя:Значение, повторяемый"
//	@Param			attr		query	string	false	"Фильтр по атрибуту метаданных в виде ключ:значение, повторяемый"
//	@Param			min_price	query	number	false	"Нижняя граница цены, включительно"
//	@Param			max_price	query	number	false	"Верхняя граница цены, включительно"
//	@Param			min_rating	query	number	false	"Минимальный средний рейтинг"
//	@Param			sort		query	string	false	"Ключ сортировки: popularity, price_asc, price_desc, rating, newest"
//	@Param			page		query	integer	false	"Номер страницы, нумерация с единицы"
//	@Success		200			{object}	CategoryProductsResponse	"Страница выдачи"
//	@Failure		400			{object}	ErrorResponse				"Ошибка валидации"
//	@Failure		500			{object}	ErrorResponse				"Внутренняя ошибка"
//	@Router			/categories/{handle}/products [get]
func (h *CatalogHandler) getCategoryProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseListingRequest(r)
	if err != nil {
		h.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.catalogUsecase.ResolveCategoryProducts(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCategoryProductsResponse(res))
}
