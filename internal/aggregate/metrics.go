package aggregate

import (
	"sort"
	"time"

	"salesdash/internal/model"

	"github.com/shopspring/decimal"
)

const topN = 10

// DailySales is one day's summed order totals.
type DailySales struct {
	Date  time.Time
	Sales decimal.Decimal
}

// NameAmount is a ranked (customer or product, sales) pair.
type NameAmount struct {
	Name   string
	Amount decimal.Decimal
}

// ProductMargin is a product's summed sales and profit with the derived
// margin percent.
type ProductMargin struct {
	Name      string
	Sales     decimal.Decimal
	Profit    decimal.Decimal
	MarginPct decimal.Decimal
}

// SalesSummary is the dashboard's headline view of a reporting period.
type SalesSummary struct {
	TotalSales       decimal.Decimal
	TotalProfit      decimal.Decimal
	OrderCount       int
	AverageMarginPct decimal.Decimal
	DailySales       []DailySales
	TopCustomers     []NameAmount
	TopProducts      []NameAmount
	TopMarginProducts []ProductMargin
}

// Summarize computes the dashboard metrics from unfilled line items: order
// totals and profit live only on header rows, so summing the nullable fields
// naturally counts each order once. Rows with unparsed dates are excluded
// from the daily trend but from nothing else.
func Summarize(items []model.LineItem) SalesSummary {
	var s SalesSummary

	orders := make(map[string]bool)
	daily := make(map[time.Time]decimal.Decimal)
	customers := make(map[string]decimal.Decimal)
	var customerOrder []string
	products := make(map[string]decimal.Decimal)
	profits := make(map[string]decimal.Decimal)
	var productOrder []string

	for _, it := range items {
		if it.GrandTotal != nil {
			s.TotalSales = s.TotalSales.Add(*it.GrandTotal)
		}
		if it.GrossProfit != nil {
			s.TotalProfit = s.TotalProfit.Add(*it.GrossProfit)
		}
		if it.OrderID != nil {
			orders[*it.OrderID] = true
		}
		if it.OrderDate != nil && it.GrandTotal != nil {
			day := it.OrderDate.Truncate(24 * time.Hour)
			daily[day] = daily[day].Add(*it.GrandTotal)
		}
		if it.CustomerName != nil && it.GrandTotal != nil {
			if _, ok := customers[*it.CustomerName]; !ok {
				customerOrder = append(customerOrder, *it.CustomerName)
			}
			customers[*it.CustomerName] = customers[*it.CustomerName].Add(*it.GrandTotal)
		}
		if it.ProductName != "" {
			if _, ok := products[it.ProductName]; !ok {
				productOrder = append(productOrder, it.ProductName)
			}
			if it.GrandTotal != nil {
				products[it.ProductName] = products[it.ProductName].Add(*it.GrandTotal)
			}
			if it.GrossProfit != nil {
				profits[it.ProductName] = profits[it.ProductName].Add(*it.GrossProfit)
			}
		}
	}

	s.OrderCount = len(orders)
	if s.TotalSales.IsPositive() {
		s.AverageMarginPct = s.TotalProfit.Div(s.TotalSales).Mul(decimal.NewFromInt(100))
	}

	for day, total := range daily {
		s.DailySales = append(s.DailySales, DailySales{Date: day, Sales: total})
	}
	sort.Slice(s.DailySales, func(i, j int) bool {
		return s.DailySales[i].Date.Before(s.DailySales[j].Date)
	})

	s.TopCustomers = topAmounts(customers, customerOrder)
	s.TopProducts = topAmounts(products, productOrder)

	for _, name := range productOrder {
		sales := products[name]
		if !sales.IsPositive() {
			continue
		}
		profit := profits[name]
		s.TopMarginProducts = append(s.TopMarginProducts, ProductMargin{
			Name:      name,
			Sales:     sales,
			Profit:    profit,
			MarginPct: profit.Div(sales).Mul(decimal.NewFromInt(100)),
		})
	}
	sort.SliceStable(s.TopMarginProducts, func(i, j int) bool {
		return s.TopMarginProducts[i].MarginPct.GreaterThan(s.TopMarginProducts[j].MarginPct)
	})
	if len(s.TopMarginProducts) > topN {
		s.TopMarginProducts = s.TopMarginProducts[:topN]
	}

	return s
}

func topAmounts(sums map[string]decimal.Decimal, order []string) []NameAmount {
	ranked := make([]NameAmount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, NameAmount{Name: name, Amount: sums[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
