// Package export renders the reconciled product table as downloadable files.
// Column order follows the dashboard's display-column list; headers keep the
// ERP's field labels so the export opens cleanly next to the source reports.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"salesdash/internal/dataset"
	"salesdash/internal/model"

	"github.com/xuri/excelize/v2"
)

// ReconciliationTable flattens reconciled products into header + rows, with
// one quantity/subtotal column pair per period label inserted before the
// overall subtotal.
func ReconciliationTable(rows []model.ReconciledProduct, periods []string) ([]string, [][]string) {
	headers := []string{
		dataset.ColProductCode,
		dataset.ColProductName,
		dataset.ColQuantity,
		"庫存",
		"庫存差異",
		dataset.ColUnit,
		dataset.ColUnitPrice,
		"單價（數量）",
	}
	for _, p := range periods {
		headers = append(headers, p+" 數量", p+" 小計")
	}
	headers = append(headers, dataset.ColSubtotal, dataset.ColCostTotal)

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		avgPrice := ""
		if r.AverageUnitPrice != nil {
			avgPrice = r.AverageUnitPrice.StringFixed(2)
		}
		record := []string{
			r.ProductCode,
			r.ProductName,
			r.TotalQuantity.String(),
			strconv.Itoa(r.OnHand),
			r.StockDifference.String(),
			r.Unit,
			avgPrice,
			r.DerivedUnitPrice.StringFixed(2),
		}
		for _, p := range periods {
			pm := r.Periods[p]
			record = append(record, pm.Quantity.String(), pm.Subtotal.StringFixed(2))
		}
		record = append(record, r.TotalSubtotal.StringFixed(2), r.TotalCost.StringFixed(2))
		records = append(records, record)
	}
	return headers, records
}

// WriteCSV writes a UTF-8 delimited export.
func WriteCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same table as a single-sheet workbook.
func WriteXLSX(w io.Writer, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
