package domain

// Review — одна оценка товара покупателем.
type Review struct {
	ProductID int64
	Rating    float64
}
