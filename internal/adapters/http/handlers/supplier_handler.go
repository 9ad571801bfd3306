package handlers

import (
	"net/http"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// SupplierHandler handles HTTP requests for the supplier directory.
type SupplierHandler struct {
	suppliers ports.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler with the given service port.
func NewSupplierHandler(suppliers ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// ListSuppliers handles GET /api/v1/suppliers.
func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.ListSuppliers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSupplierListResponse(suppliers))
}

// CreateSupplier handles POST /api/v1/suppliers.
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.suppliers.CreateSupplier(r.Context(), &party.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSupplierResponse(created))
}

// GetSupplier handles GET /api/v1/suppliers/{id}.
func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	supplier, err := h.suppliers.GetSupplier(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSupplierResponse(supplier))
}

// UpdateSupplier handles PATCH /api/v1/suppliers/{id}.
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateSupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current, err := h.suppliers.GetSupplier(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.ContactPerson != nil {
		current.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.Address != nil {
		current.Address = *req.Address
	}

	updated, err := h.suppliers.UpdateSupplier(r.Context(), id, current)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSupplierResponse(updated))
}

// DeleteSupplier handles DELETE /api/v1/suppliers/{id}.
func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.suppliers.DeleteSupplier(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
