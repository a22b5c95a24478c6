package usecase

import (
	"slices"
	"sync"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
)

// AdminUseCase держит локальное состояние страницы администратора и фиксирует правки во внешнем каталоге.
//
// Имя и цена копятся в сессии редактирования и уходят в каталог только по EndEdit.
// Остаток и скидки фиксируются сразу, причём базой слияния служит свежий снимок каталога, а не сессия.
// После такой фиксации сессия пересеивается результатом, поэтому неотправленные
// имя и цена из прежней сессии при этом теряются.
//
// Все операции выполняются под одним мьютексом: каждая доходит до конца до начала следующей.
type AdminUseCase struct {
	mu      sync.Mutex
	catalog CatalogStore
	idGen   IDGenerator
	logger  logger.Logger

	accordion AccordionState
	session   EditSession
	drafts    Drafts
}

func NewAdminUC(catalog CatalogStore, idGen IDGenerator, logger logger.Logger) *AdminUseCase {
	return &AdminUseCase{
		catalog:   catalog,
		idGen:     idGen,
		logger:    logger,
		accordion: NewAccordionState(),
		drafts:    NewDrafts(),
	}
}

// Snapshot возвращает копию текущего состояния страницы.
func (a *AdminUseCase) Snapshot() AdminState {
	a.mu.Lock()
	defer a.mu.Unlock()

	state := AdminState{
		OpenProductIDs: a.accordion.OpenIDs(),
		DiscountDraft:  a.drafts.Discount,
		CouponDraft:    a.drafts.Coupon,
		ProductDraft:   a.drafts.Product,
		ProductForm:    a.drafts.ProductForm,
	}
	state.ProductDraft.Discounts = slices.Clone(a.drafts.Product.Discounts)
	if product, ok := a.session.Product(); ok {
		state.Editing = &product
	}

	return state
}

// IsEditing сообщает, открыт ли productID в режиме редактирования.
func (a *AdminUseCase) IsEditing(productID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.Matches(productID)
}

// ToggleAccordion раскрывает или сворачивает панель одного продукта.
func (a *AdminUseCase) ToggleAccordion(productID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accordion = a.accordion.Toggle(productID)
}

// BeginEdit начинает редактирование копии product, отбрасывая предыдущую сессию.
func (a *AdminUseCase) BeginEdit(product domain.Product) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if prev, ok := a.session.Product(); ok && prev.ID != product.ID {
		a.logger.Debugf("discarding unsaved edit of product %s", prev.ID)
	}
	a.session = a.session.Begin(product)
}

func (a *AdminUseCase) UpdateName(productID string, name string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.session.Matches(productID) {
		a.logger.Debugf("name update ignored: product %s is not being edited", productID)
		return
	}
	a.session = a.session.WithName(productID, name)
}

func (a *AdminUseCase) UpdatePrice(productID string, price int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.session.Matches(productID) {
		a.logger.Debugf("price update ignored: product %s is not being edited", productID)
		return
	}
	a.session = a.session.WithPrice(productID, price)
}

// EndEdit отправляет продукт из сессии в каталог и закрывает сессию.
func (a *AdminUseCase) EndEdit() {
	a.mu.Lock()
	defer a.mu.Unlock()

	product, ok, next := a.session.End()
	if !ok {
		return
	}

	a.catalog.OnProductUpdate(product)
	a.session = next
}

// UpdateStock сразу фиксирует новый остаток поверх авторитетного продукта.
func (a *AdminUseCase) UpdateStock(productID string, stock int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	product, ok := domain.FindProduct(a.catalog.ProductList(), productID)
	if !ok {
		a.logger.Debugf("stock update ignored: product %s not found", productID)
		return
	}

	a.commit(product.WithStock(stock))
}

func (a *AdminUseCase) SetDiscountDraft(discount domain.DiscountTier) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.drafts = a.drafts.WithDiscount(discount)
}

// AddDiscount добавляет скидку в конец списка авторитетного продукта.
// Требуется любая активная сессия редактирования, не обязательно для productID.
func (a *AdminUseCase) AddDiscount(productID string, discount domain.DiscountTier) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.addDiscount(productID, discount)
}

// AddDraftDiscount добавляет текущий черновик скидки.
func (a *AdminUseCase) AddDraftDiscount(productID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.addDiscount(productID, a.drafts.Discount)
}

func (a *AdminUseCase) addDiscount(productID string, discount domain.DiscountTier) {
	product, ok := domain.FindProduct(a.catalog.ProductList(), productID)
	if !ok || !a.session.Active() {
		a.logger.Debugf("discount add ignored: product %s found=%t, edit session active=%t", productID, ok, a.session.Active())
		return
	}

	a.commit(product.WithDiscountAppended(discount))
	a.drafts = a.drafts.ResetDiscount()
}

// RemoveDiscount удаляет скидку на позиции index в текущем авторитетном списке.
// Индекс вне диапазона список не меняет, но продукт всё равно фиксируется.
func (a *AdminUseCase) RemoveDiscount(productID string, index int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	product, ok := domain.FindProduct(a.catalog.ProductList(), productID)
	if !ok {
		a.logger.Debugf("discount removal ignored: product %s not found", productID)
		return
	}

	a.commit(product.WithDiscountRemoved(index))
}

func (a *AdminUseCase) SetProductDraft(draft domain.ProductDraft) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.drafts = a.drafts.WithProduct(draft)
}

func (a *AdminUseCase) ShowProductForm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.drafts = a.drafts.ShowProductForm()
}

func (a *AdminUseCase) CancelProductForm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.drafts = a.drafts.HideProductForm()
}

// AddProduct присваивает черновику новый идентификатор, передаёт продукт в каталог,
// сбрасывает черновик и скрывает форму.
func (a *AdminUseCase) AddProduct() domain.Product {
	a.mu.Lock()
	defer a.mu.Unlock()

	product := a.drafts.Product.WithID(a.idGen.NewID())
	a.catalog.OnProductAdd(product.Clone())
	a.drafts = a.drafts.ResetProduct().HideProductForm()

	return product
}

func (a *AdminUseCase) SetCouponDraft(coupon domain.Coupon) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.drafts = a.drafts.WithCoupon(coupon)
}

// AddCoupon передаёт черновик купона в каталог как есть и сбрасывает его.
func (a *AdminUseCase) AddCoupon() domain.Coupon {
	a.mu.Lock()
	defer a.mu.Unlock()

	coupon := a.drafts.Coupon
	a.catalog.OnCouponAdd(coupon)
	a.drafts = a.drafts.ResetCoupon()

	return coupon
}

// commit отправляет продукт в каталог и пересеивает им сессию редактирования.
func (a *AdminUseCase) commit(product domain.Product) {
	a.catalog.OnProductUpdate(product.Clone())
	a.session = a.session.Begin(product)
}
