package converter

// RatingAggRedisModel представляет закэшированный агрегат рейтинга в Redis.
// Нулевой агрегат тоже кэшируется: «нет отзывов» — валидный результат.
type RatingAggRedisModel struct {
	ProductID int64   `json:"product_id"`
	Avg       float64 `json:"avg"`
	Count     int     `json:"count"`
}
