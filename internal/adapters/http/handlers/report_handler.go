package handlers

import (
	"net/http"

	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// ReportHandler handles HTTP requests for dashboards and report summaries.
type ReportHandler struct {
	reports ports.ReportService
}

// NewReportHandler creates a new ReportHandler with the given service port.
func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard handles GET /api/v1/reports/dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.Dashboard(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDashboardResponse(stats))
}

// SalesSummary handles GET /api/v1/reports/sales.
func (h *ReportHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.SalesSummary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSalesSummaryResponse(summary))
}

// InventorySummary handles GET /api/v1/reports/inventory.
func (h *ReportHandler) InventorySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.InventorySummary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToInventorySummaryResponse(summary))
}
