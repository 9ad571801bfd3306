package export_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ocastro/autoglass-mis/internal/adapters/export"
	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/catalog"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
	"github.com/ocastro/autoglass-mis/internal/ports"
)

func sampleRows() []ports.SalesReportRow {
	return []ports.SalesReportRow{
		{
			SaleID:        1,
			Reference:     "S-AAAA1111",
			CustomerName:  "Walk-in",
			Amount:        249.99,
			PaymentMethod: "cash",
			CreatedAt:     time.Date(2026, 8, 24, 14, 30, 0, 0, time.UTC),
		},
		{
			SaleID:        2,
			Reference:     "S-BBBB2222",
			CustomerName:  "Ana Morales",
			Amount:        120,
			PaymentMethod: "credit",
			CreatedAt:     time.Date(2026, 8, 24, 16, 5, 0, 0, time.UTC),
		},
	}
}

func sampleInventory() *ports.InventorySummary {
	return &ports.InventorySummary{
		Categories: []ports.CategorySummary{
			{Category: catalog.CategoryGlass, ProductCount: 4, StockValue: 1200.50},
			{Category: catalog.CategoryAccessories, ProductCount: 6, StockValue: 799.50},
		},
		TotalValue: 2000,
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    export.Format
		wantErr bool
	}{
		{in: "pdf", want: export.FormatPDF},
		{in: "xlsx", want: export.FormatXLSX},
		{in: "csv", want: export.FormatCSV},
		{in: "docx", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := export.ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrValidation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatFilename(t *testing.T) {
	t.Parallel()

	if got := export.FormatXLSX.Filename("sales-report"); got != "sales-report.xlsx" {
		t.Errorf("Filename() = %q, want sales-report.xlsx", got)
	}
}

func TestSalesReport_CSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := export.SalesReport(&buf, export.FormatCSV, sampleRows()); err != nil {
		t.Fatalf("SalesReport() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV line count = %d, want 3 (header + 2 rows):\n%s", len(lines), buf.String())
	}
	if lines[0] != "ID,Reference,Customer,Amount,Payment Method,Date" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1,S-AAAA1111,Walk-in,249.99,cash,2026-08-24 14:30" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestInventoryReport_CSV_TotalRow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := export.InventoryReport(&buf, export.FormatCSV, sampleInventory()); err != nil {
		t.Fatalf("InventoryReport() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	last := lines[len(lines)-1]
	if last != "Total,,2000.00" {
		t.Errorf("total row = %q, want Total,,2000.00", last)
	}
}

func TestSalesReport_XLSX_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := export.SalesReport(&buf, export.FormatXLSX, sampleRows()); err != nil {
		t.Fatalf("SalesReport() error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Sales Report", "B2")
	if err != nil {
		t.Fatalf("GetCellValue() error: %v", err)
	}
	if got != "S-AAAA1111" {
		t.Errorf("B2 = %q, want S-AAAA1111", got)
	}

	got, err = f.GetCellValue("Sales Report", "C3")
	if err != nil {
		t.Fatalf("GetCellValue() error: %v", err)
	}
	if got != "Ana Morales" {
		t.Errorf("C3 = %q, want Ana Morales", got)
	}
}

func TestInventoryReport_XLSX_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := export.InventoryReport(&buf, export.FormatXLSX, sampleInventory()); err != nil {
		t.Fatalf("InventoryReport() error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Inventory Report", "A4")
	if err != nil {
		t.Fatalf("GetCellValue() error: %v", err)
	}
	if got != "Total" {
		t.Errorf("A4 = %q, want Total", got)
	}
}

func TestSalesReport_PDF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := export.SalesReport(&buf, export.FormatPDF, sampleRows()); err != nil {
		t.Fatalf("SalesReport() error: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestPurchaseOrder_PDF(t *testing.T) {
	t.Parallel()

	delivery := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	po := &ports.OrderExport{
		Order: purchasing.PurchaseOrder{
			ID:               1,
			Number:           "PO-0001",
			SupplierID:       5,
			TotalAmount:      500,
			Status:           purchasing.StatusApproved,
			ExpectedDelivery: &delivery,
			Notes:            "Deliver to the rear entrance.",
			Items: []purchasing.Item{
				{ProductID: 10, Quantity: 4, UnitPrice: 100, TotalPrice: 400},
				{ProductID: 11, Quantity: 2, UnitPrice: 50, TotalPrice: 100},
			},
		},
		SupplierName: "Glass Direct",
		ProductNames: map[int64]string{10: "Windshield", 11: "Wiper Blade"},
	}

	var buf bytes.Buffer
	if err := export.PurchaseOrder(&buf, po); err != nil {
		t.Fatalf("PurchaseOrder() error: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if buf.Len() < 1000 {
		t.Errorf("PDF size = %d bytes, suspiciously small", buf.Len())
	}
}
