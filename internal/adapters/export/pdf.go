package export

import (
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/ocastro/autoglass-mis/internal/ports"
)

const (
	pdfLineHeight = 7.0
	pdfFont       = "Helvetica"
)

func newReportPDF(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	return pdf
}

func pdfHeaderRow(pdf *fpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont(pdfFont, "B", 10)
	for i, label := range labels {
		pdf.CellFormat(widths[i], pdfLineHeight, label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(pdfFont, "", 10)
}

func writeSalesPDF(w io.Writer, rows []ports.SalesReportRow) error {
	pdf := newReportPDF("Sales Report")

	widths := []float64{15, 30, 45, 30, 30, 40}
	pdfHeaderRow(pdf, widths, []string{"ID", "Reference", "Customer", "Amount", "Payment", "Date"})

	for _, r := range rows {
		cells := []string{
			strconv.FormatInt(r.SaleID, 10),
			r.Reference,
			r.CustomerName,
			formatAmount(r.Amount),
			r.PaymentMethod,
			r.CreatedAt.Format(timestampLayout),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], pdfLineHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func writeInventoryPDF(w io.Writer, summary *ports.InventorySummary) error {
	pdf := newReportPDF("Inventory Report")

	widths := []float64{70, 40, 50}
	pdfHeaderRow(pdf, widths, []string{"Category", "Products", "Stock Value"})

	for _, c := range summary.Categories {
		cells := []string{
			string(c.Category),
			strconv.FormatInt(c.ProductCount, 10),
			formatAmount(c.StockValue),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], pdfLineHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont(pdfFont, "B", 10)
	pdf.CellFormat(widths[0], pdfLineHeight, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[1], pdfLineHeight, "", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[2], pdfLineHeight, formatAmount(summary.TotalValue), "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	return pdf.Output(w)
}

// PurchaseOrder renders the printable PO document.
func PurchaseOrder(w io.Writer, po *ports.OrderExport) error {
	pdf := newReportPDF("Purchase Order " + po.Order.Number)

	pdf.SetFont(pdfFont, "", 11)
	pdf.Cell(0, pdfLineHeight, "Supplier: "+po.SupplierName)
	pdf.Ln(-1)
	pdf.Cell(0, pdfLineHeight, "Status: "+po.Order.Status.String())
	pdf.Ln(-1)
	if po.Order.ExpectedDelivery != nil {
		pdf.Cell(0, pdfLineHeight, "Expected delivery: "+po.Order.ExpectedDelivery.Format("2006-01-02"))
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	widths := []float64{80, 25, 35, 35}
	pdfHeaderRow(pdf, widths, []string{"Product", "Qty", "Unit Price", "Total"})

	for _, item := range po.Order.Items {
		name := po.ProductNames[item.ProductID]
		if name == "" {
			name = "Product #" + strconv.FormatInt(item.ProductID, 10)
		}
		cells := []string{
			name,
			strconv.Itoa(item.Quantity),
			formatAmount(item.UnitPrice),
			formatAmount(item.TotalPrice),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], pdfLineHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont(pdfFont, "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], pdfLineHeight, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], pdfLineHeight, formatAmount(po.Order.TotalAmount), "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	if po.Order.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont(pdfFont, "", 10)
		pdf.MultiCell(0, pdfLineHeight, "Notes: "+po.Order.Notes, "", "L", false)
	}

	return pdf.Output(w)
}
