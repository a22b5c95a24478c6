package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// AdminUC — операции страницы администратора, доступные поверхности отображения.
type AdminUC interface {
	Snapshot() AdminState
	IsEditing(productID string) bool

	ToggleAccordion(productID string)

	BeginEdit(product domain.Product)
	UpdateName(productID string, name string)
	UpdatePrice(productID string, price int64)
	EndEdit()

	UpdateStock(productID string, stock int64)
	SetDiscountDraft(discount domain.DiscountTier)
	AddDiscount(productID string, discount domain.DiscountTier)
	AddDraftDiscount(productID string)
	RemoveDiscount(productID string, index int)

	SetProductDraft(draft domain.ProductDraft)
	ShowProductForm()
	CancelProductForm()
	AddProduct() domain.Product

	SetCouponDraft(coupon domain.Coupon)
	AddCoupon() domain.Coupon
}

// CatalogStore — внешний владелец авторитетных списков продуктов и купонов.
// Уведомления односторонние: хранилище само сливает сущность в свою коллекцию.
type CatalogStore interface {
	ProductList() []domain.Product
	Coupons() []domain.Coupon
	OnProductUpdate(product domain.Product)
	OnProductAdd(product domain.Product)
	OnCouponAdd(coupon domain.Coupon)
}

// CatalogUC — чтение каталога для внешних потребителей.
type CatalogUC interface {
	CatalogStore
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}
