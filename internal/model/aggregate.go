package model

import "github.com/shopspring/decimal"

// PeriodMetrics is one reporting period's contribution to a product
// aggregate. Products absent from a period carry explicit zeros.
type PeriodMetrics struct {
	Quantity decimal.Decimal
	Subtotal decimal.Decimal
}

// ProductAggregate is one product's summed/averaged sales metrics. Derived
// fresh from line items on every request, never persisted.
type ProductAggregate struct {
	ProductCode   string
	ProductName   string
	TotalQuantity decimal.Decimal
	Unit          string
	// AverageUnitPrice is the mean of per-line unit prices; nil when no line
	// carried a parseable price.
	AverageUnitPrice *decimal.Decimal
	// DerivedUnitPrice is TotalSubtotal / TotalQuantity for positive
	// quantities and exactly 0 otherwise, so the column stays numeric and
	// sortable.
	DerivedUnitPrice decimal.Decimal
	TotalSubtotal    decimal.Decimal
	TotalCost        decimal.Decimal

	// Periods holds the per-period breakdown, keyed by period label. Empty
	// when the source items carry no period labels.
	Periods map[string]PeriodMetrics
}

// ReconciledProduct is a product aggregate joined against the inventory
// snapshot. OnHand is 0 when the product code is absent from the snapshot.
type ReconciledProduct struct {
	ProductAggregate
	OnHand int
	// StockDifference = OnHand - TotalQuantity; negative means more was sold
	// in the period than is currently on the shelf.
	StockDifference decimal.Decimal
}
