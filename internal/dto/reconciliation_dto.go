package dto

import "github.com/shopspring/decimal"

// ReconciliationQuery is bound from query string of GET /v1/reconciliation.
type ReconciliationQuery struct {
	Periods []string `form:"period"`
	File    string   `form:"file"` // inventory snapshot; empty = newest
	Code    string   `form:"code"`
}

// ExportQuery adds the download format to the reconciliation filters.
type ExportQuery struct {
	ReconciliationQuery
	Format string `form:"format,default=csv" validate:"oneof=csv xlsx"`
}

type ReconciledProductResponse struct {
	ProductAggregateResponse
	OnHand          int             `json:"on_hand"`
	StockDifference decimal.Decimal `json:"stock_difference"`
}

type ReconciliationResponse struct {
	Data         []ReconciledProductResponse `json:"data"`
	Periods      []string                    `json:"periods"`
	Total        int                         `json:"total"`
	SnapshotFile string                      `json:"snapshot_file"`
}
