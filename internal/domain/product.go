package domain

import "slices"

// Product описывает товар каталога
type Product struct {
	ID        string
	Name      string
	Price     int64 // Цена в целых денежных единицах
	Stock     int64
	Discounts []DiscountTier
}

// DiscountTier описывает скидку от количества. Собственного идентификатора нет,
// адресуется позицией в Product.Discounts.
type DiscountTier struct {
	Quantity int64
	Rate     float64 // Доля: 0.1 = 10%
}

func NewProduct(id string, name string, price int64, stock int64, discounts []DiscountTier) *Product {
	return &Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Stock:     stock,
		Discounts: slices.Clone(discounts),
	}
}

func NewDiscountTier(quantity int64, rate float64) DiscountTier {
	return DiscountTier{Quantity: quantity, Rate: rate}
}

// Clone возвращает глубокую копию продукта.
func (p Product) Clone() Product {
	p.Discounts = slices.Clone(p.Discounts)
	return p
}

// WithStock возвращает копию продукта с новым остатком.
func (p Product) WithStock(stock int64) Product {
	c := p.Clone()
	c.Stock = stock
	return c
}

// WithDiscountAppended возвращает копию продукта с tier в конце списка скидок.
func (p Product) WithDiscountAppended(tier DiscountTier) Product {
	c := p.Clone()
	c.Discounts = append(c.Discounts, tier)
	return c
}

// WithDiscountRemoved возвращает копию продукта без скидки на позиции index.
// Индекс вне диапазона оставляет список без изменений.
func (p Product) WithDiscountRemoved(index int) Product {
	c := p.Clone()
	kept := make([]DiscountTier, 0, len(c.Discounts))
	for i, d := range c.Discounts {
		if i != index {
			kept = append(kept, d)
		}
	}
	c.Discounts = kept
	return c
}

// FindProduct ищет продукт по ID в снимке каталога.
func FindProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Product{}, false
}

// ProductDraft — новый продукт без идентификатора.
type ProductDraft struct {
	Name      string
	Price     int64
	Stock     int64
	Discounts []DiscountTier
}

// EmptyProductDraft возвращает черновик со значениями по умолчанию.
func EmptyProductDraft() ProductDraft {
	return ProductDraft{Discounts: []DiscountTier{}}
}

// WithID превращает черновик в продукт с заданным идентификатором.
func (d ProductDraft) WithID(id string) Product {
	return *NewProduct(id, d.Name, d.Price, d.Stock, d.Discounts)
}
