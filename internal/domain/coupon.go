package domain

// DiscountType — способ применения купона.
type DiscountType string

const (
	DiscountAmount     DiscountType = "amount"
	DiscountPercentage DiscountType = "percentage"
)

// Valid сообщает, известен ли тип скидки.
func (t DiscountType) Valid() bool {
	return t == DiscountAmount || t == DiscountPercentage
}

// Coupon описывает купон. Уникальность Code не проверяется.
type Coupon struct {
	Name          string
	Code          string
	DiscountType  DiscountType
	DiscountValue float64 // Денежные единицы для amount, процентные пункты для percentage
}

func NewCoupon(name string, code string, discountType DiscountType, value float64) *Coupon {
	return &Coupon{
		Name:          name,
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: value,
	}
}

// EmptyCouponDraft возвращает черновик купона по умолчанию.
func EmptyCouponDraft() Coupon {
	return Coupon{DiscountType: DiscountPercentage}
}
