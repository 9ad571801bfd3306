package handlers

import (
	"fmt"
	"net/http"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/adapters/http/middleware"
	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/sales"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// SaleHandler handles HTTP requests for point-of-sale operations.
type SaleHandler struct {
	sales ports.SalesService
}

// NewSaleHandler creates a new SaleHandler with the given service port.
func NewSaleHandler(salesSvc ports.SalesService) *SaleHandler {
	return &SaleHandler{sales: salesSvc}
}

// ListSales handles GET /api/v1/sales. An optional limit query parameter
// caps the result count; 0 or absent means no limit.
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimitQuery(r, 0)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	listed, err := h.sales.ListSales(r.Context(), limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSaleListResponse(listed))
}

// GetSale handles GET /api/v1/sales/{id}.
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	sale, err := h.sales.GetSale(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSaleResponse(sale))
}

// CreateSale handles POST /api/v1/sales. The selling user is taken from
// the access token, never from the request body.
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("not authenticated: %w", domain.ErrUnauthorized))
		return
	}

	var req dto.CreateSaleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]sales.SaleItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = sales.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	created, err := h.sales.CreateSale(r.Context(), &sales.Sale{
		CustomerID:    req.CustomerID,
		UserID:        claims.UserID,
		PaymentMethod: sales.PaymentMethod(req.PaymentMethod),
		Items:         items,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSaleResponse(created))
}
