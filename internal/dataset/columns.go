// Package dataset turns raw spreadsheet tables into typed sales and inventory
// records. Source column names are the fixed Chinese labels the ERP writes
// into its Excel exports; they are not configurable.
package dataset

// Sales export columns.
const (
	ColProductCode    = "產品代號"
	ColProductName    = "產品名稱"
	ColQuantity       = "數量"
	ColUnit           = "單位"
	ColUnitPrice      = "單價"
	ColSubtotal       = "小計"
	ColCostTotal      = "成本總值"
	ColCategory       = "大類名稱"
	ColOrderID        = "銷貨單號"
	ColAltOrderID     = "訂單單號"
	ColOrderDate      = "銷貨日期"
	ColCustomerID     = "客戶代號"
	ColCustomerName   = "客戶名稱"
	ColDepartmentID   = "部門代號"
	ColDepartmentName = "部門名稱"
	ColInvoiceNumber  = "發票號碼"
	ColPretaxSubtotal = "未稅小計"
	ColSalesTax       = "營業稅"
	ColAllowance      = "折讓金額"
	ColPretaxDiscount = "稅前折價"
	ColGrandTotal     = "總計金額"
	ColAmountReceived = "實收總額"
	ColOrderCostTotal = "成本總額"
	ColGrossProfit    = "毛利"
	ColGrossMarginPct = "毛利率"
)

// Inventory snapshot columns (shared labels ColProductCode, ColProductName,
// ColQuantity, ColUnit, ColCategory and ColGrossMarginPct reused above).
const (
	ColWarehouse      = "倉庫"
	ColUnitCost       = "成本單價"
	ColInvTotalCost   = "成本總價"
	ColSafetyStock    = "安全存量"
	ColListPrice1     = "銷售單價1"
	ColListPrice2     = "銷售單價2"
	ColSuggestedPrice = "建議售價"
	ColSubcategory    = "中類名稱"
	ColVendor         = "廠商簡稱"
)

// OrderColumns are the order-level fields the Order-Context Filler propagates
// from each order's header row down to its continuation rows.
var OrderColumns = []string{
	ColOrderID, ColAltOrderID, ColOrderDate,
	ColCustomerID, ColCustomerName,
	ColDepartmentID, ColDepartmentName, ColInvoiceNumber,
	ColPretaxSubtotal, ColSalesTax, ColAllowance, ColPretaxDiscount,
	ColGrandTotal, ColAmountReceived, ColOrderCostTotal,
	ColGrossProfit, ColGrossMarginPct,
}

// RawTable is an untyped spreadsheet: one header row and string cells, the
// shape excelize hands back before any coercion.
type RawTable struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

func NewRawTable(headers []string, rows [][]string) *RawTable {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return &RawTable{Headers: headers, Rows: rows, index: idx}
}

func (t *RawTable) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the named column's value in the given row, or "" when the
// column is absent or the row is short (excelize trims trailing empty cells).
func (t *RawTable) Cell(row []string, name string) string {
	i, ok := t.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
