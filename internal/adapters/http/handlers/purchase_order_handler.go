package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/adapters/http/middleware"
	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// PurchaseOrderHandler handles HTTP requests for purchase orders.
type PurchaseOrderHandler struct {
	purchasing ports.PurchasingService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler with the given
// service port.
func NewPurchaseOrderHandler(purchasingSvc ports.PurchasingService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{purchasing: purchasingSvc}
}

// ListOrders handles GET /api/v1/purchase-orders.
func (h *PurchaseOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.purchasing.ListOrders(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPurchaseOrderListResponse(orders))
}

// GetOrder handles GET /api/v1/purchase-orders/{id}.
func (h *PurchaseOrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	order, err := h.purchasing.GetOrder(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

// CreateOrder handles POST /api/v1/purchase-orders. The ordering user is
// taken from the access token.
func (h *PurchaseOrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("not authenticated: %w", domain.ErrUnauthorized))
		return
	}

	var req dto.CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]purchasing.Item, len(req.Items))
	for i, item := range req.Items {
		items[i] = purchasing.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	draft := &purchasing.PurchaseOrder{
		SupplierID: req.SupplierID,
		UserID:     claims.UserID,
		Notes:      req.Notes,
		Items:      items,
	}
	if req.ExpectedDelivery != "" {
		// Format already validated by the request DTO.
		delivery, _ := time.Parse("2006-01-02", req.ExpectedDelivery)
		draft.ExpectedDelivery = &delivery
	}

	created, err := h.purchasing.CreateOrder(r.Context(), draft)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToPurchaseOrderResponse(created))
}

// UpdateStatus handles POST /api/v1/purchase-orders/{id}/status. Illegal
// lifecycle transitions produce a 409.
func (h *PurchaseOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.purchasing.UpdateStatus(r.Context(), id, purchasing.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPurchaseOrderResponse(updated))
}
