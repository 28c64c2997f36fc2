//go:generate goverter gen github.com/lumera-shop/catalog-backend/internal/repository/redis/converter
package converter

import (
	"github.com/lumera-shop/catalog-backend/internal/usecase"
)

// RatingAggConverter преобразует агрегаты рейтинга между usecase и моделью Redis.
// goverter:converter
type RatingAggConverter interface {
	ToUseCase(model *RatingAggRedisModel) usecase.RatingAgg
	// goverter:ignore ProductID
	ToRedisModel(agg usecase.RatingAgg) RatingAggRedisModel
}
