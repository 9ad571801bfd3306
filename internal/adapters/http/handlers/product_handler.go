package handlers

import (
	"net/http"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	inventory ports.InventoryService
}

// NewProductHandler creates a new ProductHandler with the given service port.
func NewProductHandler(inventory ports.InventoryService) *ProductHandler {
	return &ProductHandler{inventory: inventory}
}

// ListProducts handles GET /api/v1/products. Supports search, category,
// and low_stock query filters.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.Filter{
		Search:   q.Get("search"),
		Category: catalog.Category(q.Get("category")),
		LowStock: q.Get("low_stock") == "true",
	}

	products, err := h.inventory.ListProducts(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductListResponse(products))
}

// CreateProduct handles POST /api/v1/products.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.inventory.CreateProduct(r.Context(), &catalog.Product{
		Name:          req.Name,
		Category:      catalog.Category(req.Category),
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		SupplierID:    req.SupplierID,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProductResponse(created))
}

// GetProduct handles GET /api/v1/products/{id}.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	product, err := h.inventory.GetProduct(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductResponse(product))
}

// UpdateProduct handles PATCH /api/v1/products/{id}. The update is applied
// on top of the current product; absent fields keep their values.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current, err := h.inventory.GetProduct(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	applyProductUpdate(current, &req)

	updated, err := h.inventory.UpdateProduct(r.Context(), id, current)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductResponse(updated))
}

// DeleteProduct handles DELETE /api/v1/products/{id}.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.inventory.DeleteProduct(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdjustStock handles POST /api/v1/products/{id}/stock-adjustments.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AdjustStockRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	adjusted, err := h.inventory.AdjustStock(r.Context(), id, req.Delta, req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductResponse(adjusted))
}

// applyProductUpdate copies the set fields of the request onto the product.
func applyProductUpdate(p *catalog.Product, req *dto.UpdateProductRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = catalog.Category(*req.Category)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.MinStockLevel != nil {
		p.MinStockLevel = *req.MinStockLevel
	}
	if req.SupplierID != nil {
		p.SupplierID = req.SupplierID
	}
}
