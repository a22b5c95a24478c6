package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
)

// fakeCatalog ведёт себя как внешнее хранилище: сливает обновления по ID и запоминает уведомления.
type fakeCatalog struct {
	products []domain.Product
	coupons  []domain.Coupon

	updates []domain.Product
	adds    []domain.Product
	coupAdd []domain.Coupon
}

func newFakeCatalog(products ...domain.Product) *fakeCatalog {
	return &fakeCatalog{products: products}
}

func (f *fakeCatalog) ProductList() []domain.Product {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p.Clone())
	}
	return out
}

func (f *fakeCatalog) Coupons() []domain.Coupon {
	return append([]domain.Coupon(nil), f.coupons...)
}

func (f *fakeCatalog) OnProductUpdate(product domain.Product) {
	f.updates = append(f.updates, product)
	for i := range f.products {
		if f.products[i].ID == product.ID {
			f.products[i] = product.Clone()
		}
	}
}

func (f *fakeCatalog) OnProductAdd(product domain.Product) {
	f.adds = append(f.adds, product)
	f.products = append(f.products, product.Clone())
}

func (f *fakeCatalog) OnCouponAdd(coupon domain.Coupon) {
	f.coupAdd = append(f.coupAdd, coupon)
	f.coupons = append(f.coupons, coupon)
}

func (f *fakeCatalog) lastUpdate() domain.Product {
	return f.updates[len(f.updates)-1]
}

func (f *fakeCatalog) product(id string) domain.Product {
	p, _ := domain.FindProduct(f.products, id)
	return p
}

type seqIDGen struct {
	mu   sync.Mutex
	next int
}

func (g *seqIDGen) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return "p-" + strconv.Itoa(g.next)
}

type fakeRepo struct {
	mu       sync.Mutex
	products []domain.Product
	coupons  []domain.Coupon
	lookups  [][]string
}

func (r *fakeRepo) Products() []domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Product(nil), r.products...)
}

func (r *fakeRepo) Coupons() []domain.Coupon {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Coupon(nil), r.coupons...)
}

func (r *fakeRepo) FindProducts(ids []string) []domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = append(r.lookups, ids)

	var out []domain.Product
	for _, id := range ids {
		if p, ok := domain.FindProduct(r.products, id); ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *fakeRepo) UpdateProduct(product domain.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = product
			return true
		}
	}
	return false
}

func (r *fakeRepo) AddProduct(product domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, product)
}

func (r *fakeRepo) AddCoupon(coupon domain.Coupon) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coupons = append(r.coupons, coupon)
}

type fakeCache struct {
	mu      sync.Mutex
	items   map[string]domain.Product
	deleted []string
	getErr  error
	set     chan []domain.Product
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]domain.Product{}, set: make(chan []domain.Product, 8)}
}

func (c *fakeCache) GetProducts(_ context.Context, ids []string) (map[string]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	out := map[string]domain.Product{}
	for _, id := range ids {
		if p, ok := c.items[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (c *fakeCache) SetProducts(_ context.Context, products []domain.Product) error {
	c.mu.Lock()
	for _, p := range products {
		c.items[p.ID] = p
	}
	c.mu.Unlock()
	c.set <- products
	return nil
}

func (c *fakeCache) DeleteProducts(_ context.Context, ids []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.items, id)
	}
	c.deleted = append(c.deleted, ids...)
	return nil
}

type fakeOutbox struct {
	events []*OutboxEvent
	err    error
}

func (o *fakeOutbox) Enqueue(event *OutboxEvent) error {
	if o.err != nil {
		return o.err
	}
	o.events = append(o.events, event)
	return nil
}

var errCacheDown = errors.New("cache down")
