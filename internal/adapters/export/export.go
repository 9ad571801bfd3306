// Package export renders report data as downloadable documents: CSV,
// XLSX spreadsheets, and PDF files.
package export

import (
	"fmt"
	"io"

	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

// Format identifies a supported export encoding.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat maps a query-string value to a Format. An unknown value
// returns a *domain.ValidationError so handlers respond with 400.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPDF, FormatXLSX, FormatCSV:
		return Format(s), nil
	default:
		return "", &domain.ValidationError{Fields: map[string]string{
			"format": fmt.Sprintf("must be pdf, xlsx, or csv, got %q", s),
		}}
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Filename returns base with the format's file extension appended.
func (f Format) Filename(base string) string {
	return fmt.Sprintf("%s.%s", base, f)
}

// SalesReport renders the flattened sales rows in the requested format.
func SalesReport(w io.Writer, format Format, rows []ports.SalesReportRow) error {
	switch format {
	case FormatPDF:
		return writeSalesPDF(w, rows)
	case FormatXLSX:
		return writeSalesXLSX(w, rows)
	case FormatCSV:
		return writeSalesCSV(w, rows)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// InventoryReport renders the per-category valuation in the requested format.
func InventoryReport(w io.Writer, format Format, summary *ports.InventorySummary) error {
	switch format {
	case FormatPDF:
		return writeInventoryPDF(w, summary)
	case FormatXLSX:
		return writeInventoryXLSX(w, summary)
	case FormatCSV:
		return writeInventoryCSV(w, summary)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

const timestampLayout = "2006-01-02 15:04"
