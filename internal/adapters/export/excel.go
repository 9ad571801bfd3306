package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ocastro/autoglass-mis/internal/ports"
)

func writeSalesXLSX(w io.Writer, rows []ports.SalesReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := []any{"ID", "Reference", "Customer", "Amount", "Payment Method", "Date"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.SaleID, r.Reference, r.CustomerName, r.Amount, r.PaymentMethod, r.CreatedAt.Format(timestampLayout)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeInventoryXLSX(w io.Writer, summary *ports.InventorySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := []any{"Category", "Products", "Stock Value"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range summary.Categories {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{string(c.Category), c.ProductCount, c.StockValue}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	totalCell, err := excelize.CoordinatesToCellName(1, len(summary.Categories)+2)
	if err != nil {
		return err
	}
	totalRow := []any{"Total", "", summary.TotalValue}
	if err := f.SetSheetRow(sheet, totalCell, &totalRow); err != nil {
		return err
	}

	return f.Write(w)
}
