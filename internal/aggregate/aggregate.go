// Package aggregate derives per-product summaries from normalized line items
// and reconciles them against inventory snapshots. Everything here is a pure
// function of its inputs: no I/O, no cached state.
package aggregate

import (
	"sort"
	"strings"

	"salesdash/internal/dataset"
	"salesdash/internal/model"

	"github.com/shopspring/decimal"
)

// Options controls product aggregation.
type Options struct {
	// CodeFilter is a case-insensitive product-code substring filter applied
	// to line items before grouping, so it changes which rows contribute to
	// the sums, not merely which output rows are shown.
	CodeFilter string
}

// Products groups line items by product code and produces one aggregate per
// product, sorted by total subtotal descending. Per group the first-seen name
// and unit are kept, quantities/subtotals/costs are summed, and the unit
// price is averaged over the rows that actually carry one.
//
// When items carry period labels, every aggregate additionally gets one
// PeriodMetrics entry per distinct label, zero-filled for periods the product
// did not appear in.
func Products(items []model.LineItem, opts Options) []model.ProductAggregate {
	items = FilterByCode(items, opts.CodeFilter)
	periods := PeriodLabels(items)

	type accum struct {
		agg        model.ProductAggregate
		priceSum   decimal.Decimal
		priceCount int64
		byPeriod   map[string]model.PeriodMetrics
	}

	byCode := make(map[string]*accum)
	var order []string

	for _, it := range items {
		if it.ProductCode == "" {
			continue
		}
		a, ok := byCode[it.ProductCode]
		if !ok {
			a = &accum{
				agg: model.ProductAggregate{
					ProductCode: it.ProductCode,
					ProductName: it.ProductName,
					Unit:        it.Unit,
				},
				byPeriod: make(map[string]model.PeriodMetrics),
			}
			byCode[it.ProductCode] = a
			order = append(order, it.ProductCode)
		}

		a.agg.TotalQuantity = a.agg.TotalQuantity.Add(it.Quantity)
		a.agg.TotalSubtotal = a.agg.TotalSubtotal.Add(it.Subtotal)
		a.agg.TotalCost = a.agg.TotalCost.Add(it.CostTotal)
		if it.UnitPrice != nil {
			a.priceSum = a.priceSum.Add(*it.UnitPrice)
			a.priceCount++
		}
		if it.PeriodLabel != "" {
			pm := a.byPeriod[it.PeriodLabel]
			pm.Quantity = pm.Quantity.Add(it.Quantity)
			pm.Subtotal = pm.Subtotal.Add(it.Subtotal)
			a.byPeriod[it.PeriodLabel] = pm
		}
	}

	result := make([]model.ProductAggregate, 0, len(order))
	for _, code := range order {
		a := byCode[code]
		if a.priceCount > 0 {
			mean := a.priceSum.Div(decimal.NewFromInt(a.priceCount))
			a.agg.AverageUnitPrice = &mean
		}
		if a.agg.TotalQuantity.IsPositive() {
			a.agg.DerivedUnitPrice = a.agg.TotalSubtotal.Div(a.agg.TotalQuantity)
		} else {
			// Exact zero sentinel keeps the column numeric and sortable.
			a.agg.DerivedUnitPrice = decimal.Zero
		}
		if len(periods) > 0 {
			a.agg.Periods = make(map[string]model.PeriodMetrics, len(periods))
			for _, p := range periods {
				a.agg.Periods[p] = a.byPeriod[p]
			}
		}
		result = append(result, a.agg)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSubtotal.GreaterThan(result[j].TotalSubtotal)
	})
	return result
}

// ProductsFromTable aggregates a normalized table, returning an empty result
// when the product-code column was absent from the source. Rendering always
// gets a well-shaped table, never an error.
func ProductsFromTable(t *model.SalesTable, opts Options) []model.ProductAggregate {
	if t == nil || !t.HasColumn(dataset.ColProductCode) {
		return []model.ProductAggregate{}
	}
	return Products(t.Items, opts)
}

// FilterByCode returns the line items whose product code contains the given
// substring, case-insensitively. Items with missing codes never match. An
// empty filter returns the input unchanged.
func FilterByCode(items []model.LineItem, substr string) []model.LineItem {
	if substr == "" {
		return items
	}
	needle := strings.ToLower(substr)
	out := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		if it.ProductCode == "" {
			continue
		}
		if strings.Contains(strings.ToLower(it.ProductCode), needle) {
			out = append(out, it)
		}
	}
	return out
}

// PeriodLabels returns the distinct period labels present in the items, in
// ascending order. Empty when no item carries a label (single-period mode).
func PeriodLabels(items []model.LineItem) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, it := range items {
		if it.PeriodLabel != "" && !seen[it.PeriodLabel] {
			seen[it.PeriodLabel] = true
			labels = append(labels, it.PeriodLabel)
		}
	}
	sort.Strings(labels)
	return labels
}
