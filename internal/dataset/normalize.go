package dataset

import (
	"errors"
	"time"

	"salesdash/internal/model"
)

// ErrEmptyTable is returned when a source parsed as a workbook but carries no
// header row, so nothing tabular can be made of it.
var ErrEmptyTable = errors.New("table has no header row")

// NormalizeSales coerces a raw sales export into typed line items. Individual
// bad cells never fail the load; they become the column's sentinel (0 for
// sum-bearing numeric columns, missing for nullable ones, unparsed for
// dates).
func NormalizeSales(raw *RawTable) (*model.SalesTable, error) {
	if raw == nil || len(raw.Headers) == 0 {
		return nil, ErrEmptyTable
	}

	columns := presentColumns(raw,
		ColProductCode, ColProductName, ColQuantity, ColUnit, ColUnitPrice,
		ColSubtotal, ColCostTotal, ColCategory,
		ColOrderID, ColAltOrderID, ColOrderDate,
		ColCustomerID, ColCustomerName, ColDepartmentID, ColDepartmentName,
		ColInvoiceNumber,
		ColPretaxSubtotal, ColSalesTax, ColAllowance, ColPretaxDiscount,
		ColGrandTotal, ColAmountReceived, ColOrderCostTotal,
		ColGrossProfit, ColGrossMarginPct,
	)

	items := make([]model.LineItem, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		item := model.LineItem{
			ProductCode: ParseText(raw.Cell(row, ColProductCode)),
			ProductName: ParseText(raw.Cell(row, ColProductName)),
			Quantity:    ParseAmount(raw.Cell(row, ColQuantity)),
			Unit:        ParseText(raw.Cell(row, ColUnit)),
			UnitPrice:   ParseNullableAmount(raw.Cell(row, ColUnitPrice)),
			Subtotal:    ParseAmount(raw.Cell(row, ColSubtotal)),
			CostTotal:   ParseAmount(raw.Cell(row, ColCostTotal)),
			Category:    ParseText(raw.Cell(row, ColCategory)),

			OrderID:        ParseNullableText(raw.Cell(row, ColOrderID)),
			AltOrderID:     ParseNullableText(raw.Cell(row, ColAltOrderID)),
			OrderDate:      parseNullableDate(raw.Cell(row, ColOrderDate)),
			CustomerID:     ParseNullableText(raw.Cell(row, ColCustomerID)),
			CustomerName:   ParseNullableText(raw.Cell(row, ColCustomerName)),
			DepartmentID:   ParseNullableText(raw.Cell(row, ColDepartmentID)),
			DepartmentName: ParseNullableText(raw.Cell(row, ColDepartmentName)),
			InvoiceNumber:  ParseNullableText(raw.Cell(row, ColInvoiceNumber)),

			PretaxSubtotal: ParseNullableAmount(raw.Cell(row, ColPretaxSubtotal)),
			SalesTax:       ParseNullableAmount(raw.Cell(row, ColSalesTax)),
			Allowance:      ParseNullableAmount(raw.Cell(row, ColAllowance)),
			PretaxDiscount: ParseNullableAmount(raw.Cell(row, ColPretaxDiscount)),
			GrandTotal:     ParseNullableAmount(raw.Cell(row, ColGrandTotal)),
			AmountReceived: ParseNullableAmount(raw.Cell(row, ColAmountReceived)),
			OrderCostTotal: ParseNullableAmount(raw.Cell(row, ColOrderCostTotal)),
			GrossProfit:    ParseNullableAmount(raw.Cell(row, ColGrossProfit)),
			GrossMarginPct: ParsePercent(raw.Cell(row, ColGrossMarginPct)),
		}
		items = append(items, item)
	}

	return &model.SalesTable{Items: items, Columns: columns}, nil
}

// NormalizeInventory coerces a raw product/inventory snapshot. Quantity and
// cost columns default missing→0 and are truncated to integers where the
// column is integer-semantic; the margin percent keeps missing as missing.
func NormalizeInventory(raw *RawTable) (*model.InventoryTable, error) {
	if raw == nil || len(raw.Headers) == 0 {
		return nil, ErrEmptyTable
	}

	columns := presentColumns(raw,
		ColProductCode, ColProductName, ColQuantity, ColWarehouse, ColUnit,
		ColUnitCost, ColInvTotalCost, ColSafetyStock,
		ColListPrice1, ColListPrice2, ColSuggestedPrice,
		ColCategory, ColSubcategory, ColVendor, ColGrossMarginPct,
	)

	records := make([]model.InventoryRecord, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		rec := model.InventoryRecord{
			ProductCode:    ParseText(raw.Cell(row, ColProductCode)),
			ProductName:    ParseText(raw.Cell(row, ColProductName)),
			OnHand:         ParseIntQuantity(raw.Cell(row, ColQuantity)),
			Warehouse:      ParseText(raw.Cell(row, ColWarehouse)),
			Unit:           ParseText(raw.Cell(row, ColUnit)),
			UnitCost:       ParseAmount(raw.Cell(row, ColUnitCost)),
			TotalCost:      ParseAmount(raw.Cell(row, ColInvTotalCost)),
			SafetyStock:    ParseIntQuantity(raw.Cell(row, ColSafetyStock)),
			ListPrice1:     ParseAmount(raw.Cell(row, ColListPrice1)),
			ListPrice2:     ParseAmount(raw.Cell(row, ColListPrice2)),
			SuggestedPrice: ParseAmount(raw.Cell(row, ColSuggestedPrice)),
			Category:       ParseText(raw.Cell(row, ColCategory)),
			Subcategory:    ParseText(raw.Cell(row, ColSubcategory)),
			Vendor:         ParseText(raw.Cell(row, ColVendor)),
			GrossMarginPct: ParsePercent(raw.Cell(row, ColGrossMarginPct)),
		}
		records = append(records, rec)
	}

	return &model.InventoryTable{Records: records, Columns: columns}, nil
}

func parseNullableDate(s string) *time.Time {
	t, ok := ParseDate(s)
	if !ok {
		return nil
	}
	return &t
}

func presentColumns(raw *RawTable, names ...string) map[string]bool {
	cols := make(map[string]bool, len(names))
	for _, name := range names {
		if raw.HasColumn(name) {
			cols[name] = true
		}
	}
	return cols
}
