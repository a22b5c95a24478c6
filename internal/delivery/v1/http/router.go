package http

import (
	_ "github.com/DRSN-tech/catalog-admin/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(adminUC usecase.AdminUC, catalogUC usecase.CatalogUC) {
	r.router.Use(middleware.RequestID, middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		adminHandler := NewAdminHandler(adminUC, catalogUC, r.logger)
		registerAdminRoutes(v1, adminHandler)
	})
}

func registerAdminRoutes(router chi.Router, h *AdminHandler) {
	router.Route("/admin", func(admin chi.Router) {
		admin.Get("/state", h.getState)
		admin.Post("/accordion/{productID}", h.toggleAccordion)
		admin.Post("/edit/complete", h.completeEdit)

		admin.Route("/products", func(pr chi.Router) {
			pr.Get("/", h.listProducts)
			pr.Post("/", h.addProduct)
			pr.Post("/{productID}/edit", h.beginEdit)
			pr.Put("/{productID}/name", h.updateName)
			pr.Put("/{productID}/price", h.updatePrice)
			pr.Put("/{productID}/stock", h.updateStock)
			pr.Post("/{productID}/discounts", h.addDiscount)
			pr.Delete("/{productID}/discounts/{index}", h.removeDiscount)
		})

		admin.Route("/drafts", func(d chi.Router) {
			d.Put("/discount", h.setDiscountDraft)
			d.Put("/coupon", h.setCouponDraft)
			d.Put("/product", h.setProductDraft)
			d.Post("/product/show", h.showProductForm)
			d.Post("/product/cancel", h.cancelProductForm)
		})

		admin.Route("/coupons", func(c chi.Router) {
			c.Get("/", h.listCoupons)
			c.Post("/", h.addCoupon)
		})
	})
}
