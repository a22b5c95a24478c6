package usecase

import (
	"slices"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// FormVisibility — состояние формы создания продукта.
type FormVisibility int

const (
	FormHidden FormVisibility = iota
	FormVisible
)

func (v FormVisibility) String() string {
	if v == FormVisible {
		return "visible"
	}
	return "hidden"
}

// Drafts — черновики скидки, купона и нового продукта плюс видимость формы продукта.
type Drafts struct {
	Discount    domain.DiscountTier
	Coupon      domain.Coupon
	Product     domain.ProductDraft
	ProductForm FormVisibility
}

// NewDrafts возвращает все черновики в значениях по умолчанию и скрытую форму.
func NewDrafts() Drafts {
	return Drafts{
		Discount:    domain.DiscountTier{},
		Coupon:      domain.EmptyCouponDraft(),
		Product:     domain.EmptyProductDraft(),
		ProductForm: FormHidden,
	}
}

func (d Drafts) WithDiscount(discount domain.DiscountTier) Drafts {
	d.Discount = discount
	return d
}

func (d Drafts) ResetDiscount() Drafts {
	d.Discount = domain.DiscountTier{}
	return d
}

func (d Drafts) WithCoupon(coupon domain.Coupon) Drafts {
	d.Coupon = coupon
	return d
}

func (d Drafts) ResetCoupon() Drafts {
	d.Coupon = domain.EmptyCouponDraft()
	return d
}

func (d Drafts) WithProduct(draft domain.ProductDraft) Drafts {
	draft.Discounts = slices.Clone(draft.Discounts)
	if draft.Discounts == nil {
		draft.Discounts = []domain.DiscountTier{}
	}
	d.Product = draft
	return d
}

func (d Drafts) ResetProduct() Drafts {
	d.Product = domain.EmptyProductDraft()
	return d
}

func (d Drafts) ShowProductForm() Drafts {
	d.ProductForm = FormVisible
	return d
}

func (d Drafts) HideProductForm() Drafts {
	d.ProductForm = FormHidden
	return d
}
