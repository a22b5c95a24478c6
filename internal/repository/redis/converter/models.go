package converter

// ProductRedisModel — представление продукта в кэше.
type ProductRedisModel struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Price     int64                `json:"price"`
	Stock     int64                `json:"stock"`
	Discounts []DiscountRedisModel `json:"discounts"`
}

type DiscountRedisModel struct {
	Quantity int64   `json:"quantity"`
	Rate     float64 `json:"rate"`
}
