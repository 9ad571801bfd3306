package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ocastro/autoglass-mis/internal/ports"
)

func writeSalesCSV(w io.Writer, rows []ports.SalesReportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Reference", "Customer", "Amount", "Payment Method", "Date"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.SaleID, 10),
			r.Reference,
			r.CustomerName,
			formatAmount(r.Amount),
			r.PaymentMethod,
			r.CreatedAt.Format(timestampLayout),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeInventoryCSV(w io.Writer, summary *ports.InventorySummary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Category", "Products", "Stock Value"}); err != nil {
		return err
	}
	for _, c := range summary.Categories {
		record := []string{
			string(c.Category),
			strconv.FormatInt(c.ProductCount, 10),
			formatAmount(c.StockValue),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"Total", "", formatAmount(summary.TotalValue)}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
