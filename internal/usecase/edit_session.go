package usecase

import "github.com/DRSN-tech/catalog-admin/internal/domain"

// EditSession хранит копию не более чем одного редактируемого продукта.
// Значение неизменяемо: переходы возвращают новую сессию.
type EditSession struct {
	product *domain.Product
}

// Begin заменяет сессию копией product. Несохранённая правка теряется.
func (s EditSession) Begin(product domain.Product) EditSession {
	c := product.Clone()
	return EditSession{product: &c}
}

func (s EditSession) Active() bool {
	return s.product != nil
}

// Matches сообщает, редактируется ли сейчас продукт productID.
func (s EditSession) Matches(productID string) bool {
	return s.product != nil && s.product.ID == productID
}

// Product возвращает копию редактируемого продукта.
func (s EditSession) Product() (domain.Product, bool) {
	if s.product == nil {
		return domain.Product{}, false
	}
	return s.product.Clone(), true
}

// WithName меняет имя, только если сессия принадлежит productID.
func (s EditSession) WithName(productID string, name string) EditSession {
	if !s.Matches(productID) {
		return s
	}
	c := s.product.Clone()
	c.Name = name
	return EditSession{product: &c}
}

// WithPrice меняет цену, только если сессия принадлежит productID.
func (s EditSession) WithPrice(productID string, price int64) EditSession {
	if !s.Matches(productID) {
		return s
	}
	c := s.product.Clone()
	c.Price = price
	return EditSession{product: &c}
}

// End возвращает продукт для фиксации и пустую сессию.
func (s EditSession) End() (domain.Product, bool, EditSession) {
	product, ok := s.Product()
	return product, ok, EditSession{}
}
