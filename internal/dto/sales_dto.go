package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// SalesQuery is bound from query string of the /v1/sales endpoints.
// Periods selects which monthly workbooks to load; empty = every known file.
type SalesQuery struct {
	Periods []string `form:"period"`
	Code    string   `form:"code"` // case-insensitive substring match on product code
}

// ─── Response DTOs ──────────────────────────────────────────────────────────

type PeriodMetricsResponse struct {
	Quantity decimal.Decimal `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type ProductAggregateResponse struct {
	ProductCode      string                           `json:"product_code"`
	ProductName      string                           `json:"product_name"`
	TotalQuantity    decimal.Decimal                  `json:"total_quantity"`
	Unit             string                           `json:"unit"`
	AverageUnitPrice *decimal.Decimal                 `json:"average_unit_price"`
	DerivedUnitPrice decimal.Decimal                  `json:"derived_unit_price"`
	TotalSubtotal    decimal.Decimal                  `json:"total_subtotal"`
	TotalCost        decimal.Decimal                  `json:"total_cost"`
	Periods          map[string]PeriodMetricsResponse `json:"periods,omitempty"`
}

type ProductListResponse struct {
	Data    []ProductAggregateResponse `json:"data"`
	Periods []string                   `json:"periods"`
	Total   int                        `json:"total"`
}

type LineItemResponse struct {
	ProductCode  string           `json:"product_code"`
	ProductName  string           `json:"product_name"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Unit         string           `json:"unit"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal  `json:"subtotal"`
	CostTotal    decimal.Decimal  `json:"cost_total"`
	OrderID      *string          `json:"order_id"`
	OrderDate    *string          `json:"order_date"` // YYYY-MM-DD
	CustomerName *string          `json:"customer_name"`
	Period       string           `json:"period"`
}

type LineItemListResponse struct {
	Data  []LineItemResponse `json:"data"`
	Total int                `json:"total"`
}

type DailySalesResponse struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
}

type NameAmountResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type ProductMarginResponse struct {
	Name      string          `json:"name"`
	Sales     decimal.Decimal `json:"sales"`
	Profit    decimal.Decimal `json:"profit"`
	MarginPct decimal.Decimal `json:"margin_pct"`
}

type SalesSummaryResponse struct {
	Periods           []string                `json:"periods"`
	TotalSales        decimal.Decimal         `json:"total_sales"`
	TotalProfit       decimal.Decimal         `json:"total_profit"`
	OrderCount        int                     `json:"order_count"`
	AverageMarginPct  decimal.Decimal         `json:"average_margin_pct"`
	DailySales        []DailySalesResponse    `json:"daily_sales"`
	TopCustomers      []NameAmountResponse    `json:"top_customers"`
	TopProducts       []NameAmountResponse    `json:"top_products"`
	TopMarginProducts []ProductMarginResponse `json:"top_margin_products"`
}
