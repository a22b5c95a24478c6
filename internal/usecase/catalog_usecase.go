package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
)

// CatalogUseCase — авторитетный владелец списков продуктов и купонов.
// Принимает уведомления от AdminUseCase, сбрасывает кэш и ставит событие в outbox.
type CatalogUseCase struct {
	repo   CatalogRepository
	cache  CacheRepository
	outbox EventOutbox
	logger logger.Logger
}

func NewCatalogUC(repo CatalogRepository, cache CacheRepository, outbox EventOutbox, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		repo:   repo,
		cache:  cache,
		outbox: outbox,
		logger: logger,
	}
}

func (c *CatalogUseCase) ProductList() []domain.Product {
	return c.repo.Products()
}

func (c *CatalogUseCase) Coupons() []domain.Coupon {
	return c.repo.Coupons()
}

// OnProductUpdate сливает продукт в каталог по ID. Неизвестный ID игнорируется.
func (c *CatalogUseCase) OnProductUpdate(product domain.Product) {
	const op = "CatalogUseCase.OnProductUpdate"

	if !c.repo.UpdateProduct(product) {
		c.logger.Warnf("%s: product %s is not in the catalog, update dropped", op, product.ID)
		return
	}

	c.invalidate(op, product.ID)

	event, err := NewProductEvent(ProductUpdated, product)
	c.publish(op, event, err)
}

func (c *CatalogUseCase) OnProductAdd(product domain.Product) {
	const op = "CatalogUseCase.OnProductAdd"

	c.repo.AddProduct(product)
	c.invalidate(op, product.ID)

	event, err := NewProductEvent(ProductAdded, product)
	c.publish(op, event, err)
}

func (c *CatalogUseCase) OnCouponAdd(coupon domain.Coupon) {
	const op = "CatalogUseCase.OnCouponAdd"

	c.repo.AddCoupon(coupon)

	event, err := NewCouponEvent(coupon)
	c.publish(op, event, err)
}

// GetProductsInfo возвращает продукты по идентификаторам: сначала из кэша, остальное из каталога.
func (c *CatalogUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "CatalogUseCase.GetProductsInfo"

	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	// Поиск продуктов в кэше
	cached, err := c.cache.GetProducts(ctx, req.IDs)
	var nonCached []string
	if err != nil {
		nonCached = append(nonCached, req.IDs...)
	} else {
		for _, id := range req.IDs {
			if _, ok := cached[id]; !ok {
				nonCached = append(nonCached, id)
			}
		}
	}

	// Получение продуктов из каталога
	var fromRepo []domain.Product
	if len(nonCached) > 0 {
		fromRepo = c.repo.FindProducts(nonCached)

		// Фоновое добавление продуктов в кэш
		if len(fromRepo) > 0 {
			go func() {
				bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
				defer cancel()

				if err := c.cache.SetProducts(bgCtx, fromRepo); err != nil {
					c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
				}
			}()
		}
	}

	repoMap := make(map[string]domain.Product, len(fromRepo))
	for _, p := range fromRepo {
		repoMap[p.ID] = p
	}

	// Формирование результата
	result := make([]domain.Product, 0, len(req.IDs))
	notFound := make([]string, 0)
	for _, id := range req.IDs {
		if p, ok := cached[id]; ok {
			result = append(result, p)
		} else if p, ok := repoMap[id]; ok {
			result = append(result, p.Clone())
		} else {
			notFound = append(notFound, id)
		}
	}

	return NewGetProductsRes(result, notFound), nil
}

// invalidate удаляет устаревшую запись продукта из кэша.
func (c *CatalogUseCase) invalidate(op string, productID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := c.cache.DeleteProducts(ctx, []string{productID}); err != nil {
		c.logger.Warnf("Failed to delete products: %v", e.Wrap(op, err))
	}
}

func (c *CatalogUseCase) publish(op string, event *OutboxEvent, err error) {
	if err != nil {
		c.logger.Errorf(e.Wrap(op, err), "failed to build catalog event")
		return
	}

	if err := c.outbox.Enqueue(event); err != nil {
		c.logger.Warnf("catalog event %s (%s) dropped: %v", event.EventID, event.EventType, e.Wrap(op, err))
	}
}
