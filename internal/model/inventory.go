package model

import "github.com/shopspring/decimal"

// InventoryRecord is one normalized row of a product/inventory snapshot
// (the "BC products" export). Quantity-like columns default to 0 when the
// cell is missing or unparseable; the margin percent is the one column where
// missing must stay missing, because a 0% margin is a meaningful value.
type InventoryRecord struct {
	ProductCode    string
	ProductName    string
	OnHand         int
	Warehouse      string
	Unit           string
	UnitCost       decimal.Decimal
	TotalCost      decimal.Decimal
	SafetyStock    int
	Category       string
	Subcategory    string
	Vendor         string
	ListPrice1     decimal.Decimal
	ListPrice2     decimal.Decimal
	SuggestedPrice decimal.Decimal
	GrossMarginPct *decimal.Decimal
}

// InventoryTable is a normalized inventory snapshot.
type InventoryTable struct {
	Records []InventoryRecord
	Columns map[string]bool

	SourceFile   string
	SnapshotDate string
}

func (t *InventoryTable) HasColumn(name string) bool { return t.Columns[name] }
