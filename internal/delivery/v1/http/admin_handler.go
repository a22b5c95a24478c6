package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type AdminHandler struct {
	adminUC   usecase.AdminUC
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewAdminHandler(adminUC usecase.AdminUC, catalogUC usecase.CatalogUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{adminUC: adminUC, catalogUC: catalogUC, logger: logger}
}

// getState
//
//	@Summary	Состояние страницы администратора
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	StateDTO
//	@Router		/admin/state [get]
func (h *AdminHandler) getState(w http.ResponseWriter, r *http.Request) {
	h.writeState(w)
}

// toggleAccordion
//
//	@Summary	Раскрыть или свернуть панель продукта
//	@Tags		admin
//	@Produce	json
//	@Param		productID	path		string	true	"ID продукта"
//	@Success	200			{object}	StateDTO
//	@Router		/admin/accordion/{productID} [post]
func (h *AdminHandler) toggleAccordion(w http.ResponseWriter, r *http.Request) {
	h.adminUC.ToggleAccordion(chi.URLParam(r, "productID"))
	h.writeState(w)
}

// beginEdit
//
//	@Summary	Начать редактирование продукта
//	@Tags		admin
//	@Produce	json
//	@Param		productID	path		string	true	"ID продукта"
//	@Success	200			{object}	StateDTO
//	@Failure	404			{object}	ErrorResponse
//	@Router		/admin/products/{productID}/edit [post]
func (h *AdminHandler) beginEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	product, ok := domain.FindProduct(h.catalogUC.ProductList(), id)
	if !ok {
		h.logger.Warnf("%d %s: %s", http.StatusNotFound, e.ErrProductNotFound.Error(), id)
		WriteError(w, e.Wrap(id, e.ErrProductNotFound))
		return
	}

	h.adminUC.BeginEdit(product)
	h.writeState(w)
}

// updateName
//
//	@Summary	Изменить название в сессии редактирования
//	@Tags		admin
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		productID	path		string	true	"ID продукта"
//	@Param		name		formData	string	true	"Название"
//	@Success	200			{object}	StateDTO
//	@Failure	400			{object}	ErrorResponse
//	@Router		/admin/products/{productID}/name [put]
func (h *AdminHandler) updateName(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r, "name")
	if err != nil {
		h.badRequest(w, err)
		return
	}

	h.adminUC.UpdateName(chi.URLParam(r, "productID"), form["name"])
	h.writeState(w)
}

// updatePrice
//
//	@Summary	Изменить цену в сессии редактирования
//	@Tags		admin
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		productID	path		string	true	"ID продукта"
//	@Param		price		formData	integer	true	"Цена"
//	@Success	200			{object}	StateDTO
//	@Failure	400			{object}	ErrorResponse
//	@Router		/admin/products/{productID}/price [put]
func (h *AdminHandler) updatePrice(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r, "price")
	if err != nil {
		h.badRequest(w, err)
		return
	}

	price, err := parsePrice(form["price"])
	if err != nil {
		h.badRequest(w, err)
		return
	}

	h.adminUC.UpdatePrice(chi.URLParam(r, "productID"), price)
	h.writeState(w)
}

// updateStock
//
//	@Summary		Изменить остаток
//	@Description	Остаток сохраняется в каталоге сразу, без завершения редактирования
//	@Tags			admin
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			productID	path		string	true	"ID продукта"
//	@Param			stock		formData	integer	true	"Остаток"
//	@Success		200			{object}	StateDTO
//	@Failure		400			{object}	ErrorResponse
//	@Router			/admin/products/{productID}/stock [put]
func (h *AdminHandler) updateStock(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r, "stock")
	if err != nil {
		h.badRequest(w, err)
		return
	}

	stock, err := parseInteger("stock", form["stock"])
	if err != nil {
		h.badRequest(w, err)
		return
	}

	h.adminUC.UpdateStock(chi.URLParam(r, "productID"), stock)
	h.writeState(w)
}

// completeEdit
//
//	@Summary	Завершить редактирование и сохранить название и цену
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	StateDTO
//	@Router		/admin/edit/complete [post]
func (h *AdminHandler) completeEdit(w http.ResponseWriter, r *http.Request) {
	h.adminUC.EndEdit()
	h.writeState(w)
}

// setDiscountDraft
//
//	@Summary	Заполнить черновик скидки
//	@Tags		admin
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		quantity	formData	integer	true	"Минимальное количество"
//	@Param		rate		formData	number	true	"Доля скидки"
//	@Success	200			{object}	StateDTO
//	@Failure	400			{object}	ErrorResponse
//	@Router		/admin/drafts/discount [put]
func (h *AdminHandler) setDiscountDraft(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r, "quantity", "rate")
	if err != nil {
		h.badRequest(w, err)
		return
	}

	quantity, err := parseInteger("quantity", form["quantity"])
	if err != nil {
		h.badRequest(w, err)
		return
	}

	rate, err := parseFloat("rate", form["rate"])
	if err != nil {
		h.badRequest(w, err)
		return
	}

	h.adminUC.SetDiscountDraft(domain.NewDiscountTier(quantity, rate))
	h.writeState(w)
}

// addDiscount
//
//	@Summary		Добавить скидку из черновика
//	@Description	Требует активной сессии редактирования, иначе ничего не меняет
//	@Tags			admin
//	@Produce		json
//	@Param			productID	path		string	true	"ID продукта"
//	@Success		200			{object}	StateDTO
//	@Router			/admin/products/{productID}/discounts [post]
func (h *AdminHandler) addDiscount(w http.ResponseWriter, r *http.Request) {
	h.adminUC.AddDraftDiscount(chi.URLParam(r, "productID"))
	h.writeState(w)
}

// removeDiscount
//
//	@Summary	Удалить скидку по позиции
//	@Tags		admin
//	@Produce	json
//	@Param		productID	path		string	true	"ID продукта"
//	@Param		index		path		integer	true	"Позиция скидки"
//	@Success	200			{object}	StateDTO
//	@Failure	400			{object}	ErrorResponse
//	@Router		/admin/products/{productID}/discounts/{index} [delete]
func (h *AdminHandler) removeDiscount(w http.ResponseWriter, r *http.Request) {
	index, err := parseInteger("index", chi.URLParam(r, "index"))
	if err != nil {
		h.badRequest(w, e.Wrap(err.Error(), e.ErrInvalidIndex))
		return
	}

	h.adminUC.RemoveDiscount(chi.URLParam(r, "productID"), int(index))
	h.writeState(w)
}

// setProductDraft
//
//	@Summary	Заполнить черновик нового продукта
//	@Tags		admin
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		name	formData	string	true	"Название"
//	@Param		price	formData	integer	true	"Цена"
//	@Param		stock	formData	integer	true	"Остаток"
//	@Success	200		{object}	StateDTO
//	@Failure	400		{object}	ErrorResponse
//	@Router		/admin/drafts/product [put]
func (h *AdminHandler) setProductDraft(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r, "name", "price", "stock")
	if err != nil {
		h.badRequest(w, err)
		return
	}

	price, err := parsePrice(form["price"])
	if err != nil {
		h.badRequest(w, err)
		return
	}

	stock, err := parseInteger("stock", form["stock"])
	if err != nil {
		h.badRequest(w, err)
		return
	}

	draft := h.adminUC.Snapshot().ProductDraft
	draft.Name, draft.Price, draft.Stock = form["name"], price, stock

	h.adminUC.SetProductDraft(draft)
	h.writeState(w)
}

// showProductForm
//
//	@Summary	Показать форму нового продукта
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	StateDTO
//	@Router		/admin/drafts/product/show [post]
func (h *AdminHandler) showProductForm(w http.ResponseWriter, r *http.Request) {
	h.adminUC.ShowProductForm()
	h.writeState(w)
}

// cancelProductForm
//
//	@Summary	Скрыть форму нового продукта
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	StateDTO
//	@Router		/admin/drafts/product/cancel [post]
func (h *AdminHandler) cancelProductForm(w http.ResponseWriter, r *http.Request) {
	h.adminUC.CancelProductForm()
	h.writeState(w)
}

// addProduct
//
//	@Summary	Создать продукт из черновика
//	@Tags		admin
//	@Produce	json
//	@Success	201	{object}	ProductDTO
//	@Router		/admin/products [post]
func (h *AdminHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	product := h.adminUC.AddProduct()
	h.logger.Infof("product %s added", product.ID)
	WriteSuccess(w, http.StatusCreated, toProductDTO(product))
}

// setCouponDraft
//
//	@Summary	Заполнить черновик купона
//	@Tags		admin
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		name			formData	string	true	"Название"
//	@Param		code			formData	string	true	"Код"
//	@Param		discount_type	formData	string	true	"amount или percentage"
//	@Param		discount_value	formData	number	true	"Размер скидки"
//	@Success	200				{object}	StateDTO
//	@Failure	400				{object}	ErrorResponse
//	@Router		/admin/drafts/coupon [put]
func (h *AdminHandler) setCouponDraft(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r, "name", "code", "discount_type", "discount_value")
	if err != nil {
		h.badRequest(w, err)
		return
	}

	discountType, err := parseDiscountType(form["discount_type"])
	if err != nil {
		h.badRequest(w, err)
		return
	}

	value, err := parseFloat("discount_value", form["discount_value"])
	if err != nil {
		h.badRequest(w, err)
		return
	}

	h.adminUC.SetCouponDraft(*domain.NewCoupon(form["name"], form["code"], discountType, value))
	h.writeState(w)
}

// addCoupon
//
//	@Summary	Создать купон из черновика
//	@Tags		admin
//	@Produce	json
//	@Success	201	{object}	CouponDTO
//	@Router		/admin/coupons [post]
func (h *AdminHandler) addCoupon(w http.ResponseWriter, r *http.Request) {
	coupon := h.adminUC.AddCoupon()
	h.logger.Infof("coupon %q added", coupon.Code)
	WriteSuccess(w, http.StatusCreated, toCouponDTO(coupon))
}

// listProducts
//
//	@Summary		Список продуктов
//	@Description	С параметром ids продукты читаются через кэш, ненайденные ID возвращаются в not_found
//	@Tags			catalog
//	@Produce		json
//	@Param			ids	query		string	false	"ID через запятую"
//	@Success		200	{object}	ProductsDTO
//	@Failure		500	{object}	ErrorResponse
//	@Router			/admin/products [get]
func (h *AdminHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ids := parseIDs(r.URL.Query().Get("ids"))
	if len(ids) == 0 {
		WriteSuccess(w, http.StatusOK, ProductsDTO{Products: toArrProductDTO(h.catalogUC.ProductList())})
		return
	}

	res, err := h.catalogUC.GetProductsInfo(r.Context(), usecase.NewGetProductsReq(ids))
	if err != nil {
		h.logger.Errorf(err, "get products info")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ProductsDTO{
		Products: toArrProductDTO(res.Products),
		NotFound: res.NotFoundProducts,
	})
}

// listCoupons
//
//	@Summary	Список купонов
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	CouponsDTO
//	@Router		/admin/coupons [get]
func (h *AdminHandler) listCoupons(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, CouponsDTO{Coupons: toArrCouponDTO(h.catalogUC.Coupons())})
}

func (h *AdminHandler) writeState(w http.ResponseWriter) {
	WriteSuccess(w, http.StatusOK, toStateDTO(h.adminUC.Snapshot()))
}

func (h *AdminHandler) badRequest(w http.ResponseWriter, err error) {
	h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
	WriteError(w, err)
}
