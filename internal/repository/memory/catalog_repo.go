package memory

import (
	"sync"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// CatalogRepo хранит продукты и купоны в памяти процесса.
// Наружу отдаются только копии.
type CatalogRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	coupons  []domain.Coupon
}

func NewCatalogRepo(products []domain.Product, coupons []domain.Coupon) *CatalogRepo {
	r := &CatalogRepo{}
	for _, p := range products {
		r.products = append(r.products, p.Clone())
	}
	r.coupons = append(r.coupons, coupons...)
	return r
}

// Products возвращает снимок списка продуктов в порядке добавления.
func (r *CatalogRepo) Products() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Clone())
	}
	return out
}

func (r *CatalogRepo) Coupons() []domain.Coupon {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Coupon, len(r.coupons))
	copy(out, r.coupons)
	return out
}

// FindProducts возвращает найденные продукты в порядке ids.
func (r *CatalogRepo) FindProducts(ids []string) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if i := r.indexOf(id); i >= 0 {
			out = append(out, r.products[i].Clone())
		}
	}
	return out
}

// UpdateProduct заменяет продукт с тем же ID. Возвращает false, если такого нет.
func (r *CatalogRepo) UpdateProduct(product domain.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return false
	}
	r.products[i] = product.Clone()
	return true
}

// AddProduct добавляет продукт в конец списка; при совпадении ID запись заменяется.
func (r *CatalogRepo) AddProduct(product domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(product.ID); i >= 0 {
		r.products[i] = product.Clone()
		return
	}
	r.products = append(r.products, product.Clone())
}

func (r *CatalogRepo) AddCoupon(coupon domain.Coupon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coupons = append(r.coupons, coupon)
}

func (r *CatalogRepo) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
