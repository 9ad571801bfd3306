// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/handlers"
	"github.com/ocastro/autoglass-mis/internal/adapters/http/middleware"
	"github.com/ocastro/autoglass-mis/internal/domain/identity"
	"github.com/ocastro/autoglass-mis/internal/platform/token"
)

// Handlers bundles the route handlers the router wires up.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Product       *handlers.ProductHandler
	Customer      *handlers.CustomerHandler
	Supplier      *handlers.SupplierHandler
	Sale          *handlers.SaleHandler
	PurchaseOrder *handlers.PurchaseOrderHandler
	User          *handlers.UserHandler
	Report        *handlers.ReportHandler
	Export        *handlers.ExportHandler
	Health        *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Global middleware is applied in the order given. Everything under /api/v1
// except auth/login requires a valid access token; user administration,
// reports, and exports additionally require the admin role.
func NewRouter(
	h Handlers,
	tokens *token.Manager,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix, unauthenticated).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))

			// Product catalog.
			r.Get("/products", h.Product.ListProducts)
			r.Post("/products", h.Product.CreateProduct)
			r.Get("/products/{id}", h.Product.GetProduct)
			r.Patch("/products/{id}", h.Product.UpdateProduct)
			r.Delete("/products/{id}", h.Product.DeleteProduct)
			r.Post("/products/{id}/stock-adjustments", h.Product.AdjustStock)

			// Customer directory.
			r.Get("/customers", h.Customer.ListCustomers)
			r.Post("/customers", h.Customer.CreateCustomer)
			r.Get("/customers/{id}", h.Customer.GetCustomer)
			r.Patch("/customers/{id}", h.Customer.UpdateCustomer)
			r.Delete("/customers/{id}", h.Customer.DeleteCustomer)

			// Supplier directory.
			r.Get("/suppliers", h.Supplier.ListSuppliers)
			r.Post("/suppliers", h.Supplier.CreateSupplier)
			r.Get("/suppliers/{id}", h.Supplier.GetSupplier)
			r.Patch("/suppliers/{id}", h.Supplier.UpdateSupplier)
			r.Delete("/suppliers/{id}", h.Supplier.DeleteSupplier)

			// Point of sale.
			r.Get("/sales", h.Sale.ListSales)
			r.Post("/sales", h.Sale.CreateSale)
			r.Get("/sales/{id}", h.Sale.GetSale)

			// Purchase orders.
			r.Get("/purchase-orders", h.PurchaseOrder.ListOrders)
			r.Post("/purchase-orders", h.PurchaseOrder.CreateOrder)
			r.Get("/purchase-orders/{id}", h.PurchaseOrder.GetOrder)
			r.Post("/purchase-orders/{id}/status", h.PurchaseOrder.UpdateStatus)

			// Admin-only surface.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(identity.RoleAdmin))

				r.Get("/users", h.User.ListUsers)
				r.Post("/users", h.User.CreateUser)
				r.Patch("/users/{id}", h.User.UpdateUser)

				r.Get("/reports/dashboard", h.Report.Dashboard)
				r.Get("/reports/sales", h.Report.SalesSummary)
				r.Get("/reports/inventory", h.Report.InventorySummary)

				r.Get("/exports/sales", h.Export.SalesExport)
				r.Get("/exports/inventory", h.Export.InventoryExport)
				r.Get("/exports/purchase-orders/{id}", h.Export.PurchaseOrderExport)
			})
		})
	})

	return r
}
