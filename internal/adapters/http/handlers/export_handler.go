package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ocastro/autoglass-mis/internal/adapters/export"
	"github.com/ocastro/autoglass-mis/internal/adapters/http/dto"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// salesExportLimit caps the number of rows in the sales export.
const salesExportLimit = 100

// ExportHandler handles HTTP requests for downloadable report documents.
type ExportHandler struct {
	reports ports.ReportService
}

// NewExportHandler creates a new ExportHandler with the given service port.
func NewExportHandler(reports ports.ReportService) *ExportHandler {
	return &ExportHandler{reports: reports}
}

// SalesExport handles GET /api/v1/exports/sales?format=pdf|xlsx|csv.
func (h *ExportHandler) SalesExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rows, err := h.reports.SalesReportRows(r.Context(), salesExportLimit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeAttachmentHeaders(w, format, format.Filename("sales-report"))
	if err := export.SalesReport(w, format, rows); err != nil {
		// Headers are already written; log and leave the body truncated.
		slog.ErrorContext(r.Context(), "failed to render sales export", slog.Any("error", err))
	}
}

// InventoryExport handles GET /api/v1/exports/inventory?format=pdf|xlsx|csv.
func (h *ExportHandler) InventoryExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	summary, err := h.reports.InventorySummary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeAttachmentHeaders(w, format, format.Filename("inventory-report"))
	if err := export.InventoryReport(w, format, summary); err != nil {
		slog.ErrorContext(r.Context(), "failed to render inventory export", slog.Any("error", err))
	}
}

// PurchaseOrderExport handles GET /api/v1/exports/purchase-orders/{id}.
// The PO document is always rendered as PDF.
func (h *ExportHandler) PurchaseOrderExport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	po, err := h.reports.OrderExport(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeAttachmentHeaders(w, export.FormatPDF, export.FormatPDF.Filename(po.Order.Number))
	if err := export.PurchaseOrder(w, po); err != nil {
		slog.ErrorContext(r.Context(), "failed to render purchase order export", slog.Any("error", err))
	}
}

// writeAttachmentHeaders sets the download headers for an export response.
func writeAttachmentHeaders(w http.ResponseWriter, format export.Format, filename string) {
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
