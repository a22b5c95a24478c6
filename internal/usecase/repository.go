package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// CatalogRepository хранит авторитетные списки в пределах жизни процесса.
type CatalogRepository interface {
	Products() []domain.Product
	Coupons() []domain.Coupon
	FindProducts(ids []string) []domain.Product
	UpdateProduct(product domain.Product) bool
	AddProduct(product domain.Product)
	AddCoupon(coupon domain.Coupon)
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []string) (map[string]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, ids []string) error
}
