package http

import (
	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
)

type DiscountDTO struct {
	Quantity int64   `json:"quantity"`
	Rate     float64 `json:"rate"`
}

type ProductDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Price     int64         `json:"price"`
	Stock     int64         `json:"stock"`
	Discounts []DiscountDTO `json:"discounts"`
}

type ProductDraftDTO struct {
	Name      string        `json:"name"`
	Price     int64         `json:"price"`
	Stock     int64         `json:"stock"`
	Discounts []DiscountDTO `json:"discounts"`
}

type CouponDTO struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
}

// StateDTO — снимок состояния страницы администратора.
type StateDTO struct {
	OpenProductIDs []string        `json:"open_product_ids"`
	Editing        *ProductDTO     `json:"editing"`
	DiscountDraft  DiscountDTO     `json:"discount_draft"`
	CouponDraft    CouponDTO       `json:"coupon_draft"`
	ProductDraft   ProductDraftDTO `json:"product_draft"`
	ProductForm    string          `json:"product_form"`
}

type ProductsDTO struct {
	Products []ProductDTO `json:"products"`
	NotFound []string     `json:"not_found,omitempty"`
}

type CouponsDTO struct {
	Coupons []CouponDTO `json:"coupons"`
}

func toDiscountDTO(d domain.DiscountTier) DiscountDTO {
	return DiscountDTO{Quantity: d.Quantity, Rate: d.Rate}
}

func toArrDiscountDTO(ds []domain.DiscountTier) []DiscountDTO {
	res := make([]DiscountDTO, len(ds))
	for i, d := range ds {
		res[i] = toDiscountDTO(d)
	}
	return res
}

func toProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Discounts: toArrDiscountDTO(p.Discounts),
	}
}

func toArrProductDTO(ps []domain.Product) []ProductDTO {
	res := make([]ProductDTO, len(ps))
	for i, p := range ps {
		res[i] = toProductDTO(p)
	}
	return res
}

func toCouponDTO(c domain.Coupon) CouponDTO {
	return CouponDTO{
		Name:          c.Name,
		Code:          c.Code,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
	}
}

func toArrCouponDTO(cs []domain.Coupon) []CouponDTO {
	res := make([]CouponDTO, len(cs))
	for i, c := range cs {
		res[i] = toCouponDTO(c)
	}
	return res
}

func toStateDTO(s usecase.AdminState) StateDTO {
	var editing *ProductDTO
	if s.Editing != nil {
		p := toProductDTO(*s.Editing)
		editing = &p
	}

	return StateDTO{
		OpenProductIDs: s.OpenProductIDs,
		Editing:        editing,
		DiscountDraft:  toDiscountDTO(s.DiscountDraft),
		CouponDraft:    toCouponDTO(s.CouponDraft),
		ProductDraft: ProductDraftDTO{
			Name:      s.ProductDraft.Name,
			Price:     s.ProductDraft.Price,
			Stock:     s.ProductDraft.Stock,
			Discounts: toArrDiscountDTO(s.ProductDraft.Discounts),
		},
		ProductForm: s.ProductForm.String(),
	}
}
