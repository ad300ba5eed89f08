package dto

import "github.com/shopspring/decimal"

// InventoryQuery is bound from query string of GET /v1/inventory.
type InventoryQuery struct {
	File        string `form:"file"` // snapshot filename; empty = newest
	Category    string `form:"category"`
	Subcategory string `form:"subcategory"`
	Vendor      string `form:"vendor"`
	Stock       string `form:"stock,default=all" validate:"oneof=all in_stock insufficient out_of_stock"`
}

// UnsoldQuery is bound from query string of GET /v1/inventory/unsold.
type UnsoldQuery struct {
	File    string   `form:"file"`
	Periods []string `form:"period"`
}

type InventoryItemResponse struct {
	ProductCode    string           `json:"product_code"`
	ProductName    string           `json:"product_name"`
	OnHand         int              `json:"on_hand"`
	Warehouse      string           `json:"warehouse,omitempty"`
	Unit           string           `json:"unit"`
	UnitCost       decimal.Decimal  `json:"unit_cost"`
	TotalCost      decimal.Decimal  `json:"total_cost"`
	SafetyStock    int              `json:"safety_stock"`
	Category       string           `json:"category,omitempty"`
	Subcategory    string           `json:"subcategory,omitempty"`
	Vendor         string           `json:"vendor,omitempty"`
	ListPrice1     decimal.Decimal  `json:"list_price_1"`
	ListPrice2     decimal.Decimal  `json:"list_price_2"`
	SuggestedPrice decimal.Decimal  `json:"suggested_price"`
	GrossMarginPct *decimal.Decimal `json:"gross_margin_pct"`
}

type InventoryListResponse struct {
	Data         []InventoryItemResponse `json:"data"`
	Total        int                     `json:"total"`
	SnapshotDate string                  `json:"snapshot_date"`
	SourceFile   string                  `json:"source_file"`
}
