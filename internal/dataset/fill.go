package dataset

import (
	"time"

	"salesdash/internal/model"

	"github.com/shopspring/decimal"
)

// orderField describes one forward-fillable order-level column: its source
// label plus an accessor into a LineItem. Typed accessors keep each column's
// type intact through filling — dates stay dates, money stays money.
type orderField struct {
	col string
	ff  func(cur, row *model.LineItem)
}

func ff[T any](get func(*model.LineItem) **T) func(cur, row *model.LineItem) {
	return func(cur, row *model.LineItem) { carry(get(cur), get(row)) }
}

// carry is a single forward-fill step: a non-missing row value updates the
// running value, a missing one inherits it.
func carry[T any](cur, row **T) {
	if *row != nil {
		*cur = *row
	} else {
		*row = *cur
	}
}

var orderFields = []orderField{
	{ColOrderID, ff(func(it *model.LineItem) **string { return &it.OrderID })},
	{ColAltOrderID, ff(func(it *model.LineItem) **string { return &it.AltOrderID })},
	{ColOrderDate, ff(func(it *model.LineItem) **time.Time { return &it.OrderDate })},
	{ColCustomerID, ff(func(it *model.LineItem) **string { return &it.CustomerID })},
	{ColCustomerName, ff(func(it *model.LineItem) **string { return &it.CustomerName })},
	{ColDepartmentID, ff(func(it *model.LineItem) **string { return &it.DepartmentID })},
	{ColDepartmentName, ff(func(it *model.LineItem) **string { return &it.DepartmentName })},
	{ColInvoiceNumber, ff(func(it *model.LineItem) **string { return &it.InvoiceNumber })},
	{ColPretaxSubtotal, ff(func(it *model.LineItem) **decimal.Decimal { return &it.PretaxSubtotal })},
	{ColSalesTax, ff(func(it *model.LineItem) **decimal.Decimal { return &it.SalesTax })},
	{ColAllowance, ff(func(it *model.LineItem) **decimal.Decimal { return &it.Allowance })},
	{ColPretaxDiscount, ff(func(it *model.LineItem) **decimal.Decimal { return &it.PretaxDiscount })},
	{ColGrandTotal, ff(func(it *model.LineItem) **decimal.Decimal { return &it.GrandTotal })},
	{ColAmountReceived, ff(func(it *model.LineItem) **decimal.Decimal { return &it.AmountReceived })},
	{ColOrderCostTotal, ff(func(it *model.LineItem) **decimal.Decimal { return &it.OrderCostTotal })},
	{ColGrossProfit, ff(func(it *model.LineItem) **decimal.Decimal { return &it.GrossProfit })},
	{ColGrossMarginPct, ff(func(it *model.LineItem) **decimal.Decimal { return &it.GrossMarginPct })},
}

// FillOrderContext propagates order-header fields down to every line item of
// the order. A row with a non-missing order id starts a new order; the rows
// that follow it with a missing order id are continuation rows and inherit
// the running header values. Implemented as a single scan with explicit
// running state rather than a group-by, so behavior does not depend on
// library grouping semantics.
//
// Columns absent from the source are skipped. If the order-id column itself
// is absent there is no reliable group key, and every order-level column is
// forward-filled independently across the whole table.
//
// The input table is not mutated; the result has the same row count with only
// cell values changed.
func FillOrderContext(t *model.SalesTable) *model.SalesTable {
	items := make([]model.LineItem, len(t.Items))
	copy(items, t.Items)

	fields := make([]orderField, 0, len(orderFields))
	for _, f := range orderFields {
		if t.HasColumn(f.col) {
			fields = append(fields, f)
		}
	}

	grouped := t.HasColumn(ColOrderID)
	var cur model.LineItem
	for i := range items {
		if grouped && items[i].OrderID != nil {
			// Header row: reset the running context so values never leak
			// across order boundaries.
			cur = model.LineItem{}
		}
		for _, f := range fields {
			f.ff(&cur, &items[i])
		}
	}

	return &model.SalesTable{
		Items:       items,
		Columns:     t.Columns,
		SourceFile:  t.SourceFile,
		PeriodLabel: t.PeriodLabel,
	}
}
