package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rogerio-castellano/grocery-pos/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLogger)
	r.Use(RateLimit)

	r.Route("/api", func(api chi.Router) {
		api.Get("/dashboard/stats", handlers.GetDashboardStatsHandler)

		api.Get("/products", handlers.GetProductsHandler)
		api.Post("/products", handlers.CreateProductHandler)
		api.Get("/products/search", handlers.SearchProductsHandler)
		api.Put("/products/{id}", handlers.UpdateProductHandler)
		api.Delete("/products/{id}", handlers.DeleteProductHandler)

		api.Get("/categories", handlers.GetCategoriesHandler)

		api.Post("/sales", handlers.CreateSaleHandler)
		api.Get("/sales", handlers.GetSalesHandler)
		api.Get("/sales/{id}", handlers.GetSaleByIDHandler)

		api.Get("/customers", handlers.GetCustomersHandler)
		api.Post("/customers", handlers.CreateCustomerHandler)
		api.Put("/customers/{id}", handlers.UpdateCustomerHandler)
		api.Delete("/customers/{id}", handlers.DeleteCustomerHandler)
		api.Get("/customers/{id}/history", handlers.GetCustomerHistoryHandler)

		api.Get("/transactions", handlers.GetTransactionsHandler)

		api.Get("/reports/sales", handlers.GetSalesReportHandler)
		api.Get("/reports/chart-data", handlers.GetChartDataHandler)
	})

	return r
}
