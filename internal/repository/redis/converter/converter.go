package converter

import "github.com/DRSN-tech/catalog-admin/internal/domain"

// ProductConverter преобразует продукты между domain и моделью кэша.
type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	if entity == nil {
		return nil
	}

	discounts := make([]DiscountRedisModel, len(entity.Discounts))
	for i, d := range entity.Discounts {
		discounts[i] = DiscountRedisModel{Quantity: d.Quantity, Rate: d.Rate}
	}

	return &ProductRedisModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Price:     entity.Price,
		Stock:     entity.Stock,
		Discounts: discounts,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductRedisModel) *domain.Product {
	if model == nil {
		return nil
	}

	discounts := make([]domain.DiscountTier, len(model.Discounts))
	for i, d := range model.Discounts {
		discounts[i] = domain.NewDiscountTier(d.Quantity, d.Rate)
	}

	return &domain.Product{
		ID:        model.ID,
		Name:      model.Name,
		Price:     model.Price,
		Stock:     model.Stock,
		Discounts: discounts,
	}
}

func (c *ProductConverterImpl) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	out := make([]ProductRedisModel, 0, len(entities))
	for i := range entities {
		out = append(out, *c.ToRedisModel(&entities[i]))
	}
	return out
}
