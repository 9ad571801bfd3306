package handlers

import (
	"net/http"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/domain/party"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// CustomerHandler handles HTTP requests for the customer directory.
type CustomerHandler struct {
	customers ports.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler with the given service port.
func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// ListCustomers handles GET /api/v1/customers.
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCustomerListResponse(customers))
}

// CreateCustomer handles POST /api/v1/customers.
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.customers.CreateCustomer(r.Context(), &party.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCustomerResponse(created))
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	customer, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCustomerResponse(customer))
}

// UpdateCustomer handles PATCH /api/v1/customers/{id}.
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateCustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current, err := h.customers.GetCustomer(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if req.Name != nil {
		current.Name = *req.Name
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

	updated, err := h.customers.UpdateCustomer(r.Context(), id, current)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCustomerResponse(updated))
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}.
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.customers.DeleteCustomer(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
