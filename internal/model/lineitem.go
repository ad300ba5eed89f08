package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one normalized row of a sales invoice export: a single product
// within one order. Order-level fields are pointers because the source file
// only carries them on the first row of each order; continuation rows arrive
// with those cells empty until FillOrderContext propagates them.
type LineItem struct {
	ProductCode string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	// UnitPrice is nullable: rows without a parseable price are excluded from
	// the average unit price, not counted as zero.
	UnitPrice *decimal.Decimal
	Subtotal  decimal.Decimal
	CostTotal decimal.Decimal
	Category  string

	// Order header fields, shared by every line item of the same order.
	OrderID        *string
	AltOrderID     *string
	OrderDate      *time.Time
	CustomerID     *string
	CustomerName   *string
	DepartmentID   *string
	DepartmentName *string
	InvoiceNumber  *string

	// Order-level monetary fields.
	PretaxSubtotal *decimal.Decimal
	SalesTax       *decimal.Decimal
	Allowance      *decimal.Decimal
	PretaxDiscount *decimal.Decimal
	GrandTotal     *decimal.Decimal
	AmountReceived *decimal.Decimal
	OrderCostTotal *decimal.Decimal
	GrossProfit    *decimal.Decimal
	GrossMarginPct *decimal.Decimal

	// PeriodLabel identifies the reporting-period source file this row came
	// from. Assigned by the loader, empty in single-period mode.
	PeriodLabel string
}

// SalesTable is a normalized sales export. Columns records which source
// columns were actually present in the file so that downstream steps
// (order-context filling, aggregation) can skip absent ones instead of
// operating on zero values.
//
// Tables are treated as immutable snapshots once produced; pipeline steps
// return new tables rather than mutating in place.
type SalesTable struct {
	Items   []LineItem
	Columns map[string]bool

	// SourceFile and PeriodLabel describe where the table came from;
	// SourceModTime versions the file for cache keys.
	SourceFile    string
	SourceModTime time.Time
	PeriodLabel   string
}

// HasColumn reports whether the named source column existed in the input.
func (t *SalesTable) HasColumn(name string) bool { return t.Columns[name] }
