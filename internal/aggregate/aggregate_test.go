package aggregate

import (
	"testing"

	"salesdash/internal/dataset"
	"salesdash/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func item(code, name string, qty, subtotal string, price *decimal.Decimal) model.LineItem {
	return model.LineItem{
		ProductCode: code,
		ProductName: name,
		Quantity:    d(qty),
		Subtotal:    d(subtotal),
		UnitPrice:   price,
	}
}

func TestProductsSumsAndDerivesUnitPrice(t *testing.T) {
	items := []model.LineItem{
		item("A100", "好物", "3", "300", dp("100")),
		item("A100", "好物", "5", "500", dp("100")),
	}

	aggs := Products(items, Options{})
	require.Len(t, aggs, 1)

	a := aggs[0]
	assert.Equal(t, "A100", a.ProductCode)
	assert.True(t, a.TotalQuantity.Equal(d("8")))
	assert.True(t, a.TotalSubtotal.Equal(d("800")))
	assert.True(t, a.DerivedUnitPrice.Equal(d("100")))
	require.NotNil(t, a.AverageUnitPrice)
	assert.True(t, a.AverageUnitPrice.Equal(d("100")))
}

func TestProductsAverageExcludesMissingPrices(t *testing.T) {
	items := []model.LineItem{
		item("A100", "好物", "1", "100", dp("100")),
		item("A100", "好物", "1", "200", nil),
		item("A100", "好物", "1", "300", dp("200")),
	}

	aggs := Products(items, Options{})
	require.Len(t, aggs, 1)
	require.NotNil(t, aggs[0].AverageUnitPrice)
	assert.True(t, aggs[0].AverageUnitPrice.Equal(d("150")))
}

func TestProductsNoPricedRowsMeansNoAverage(t *testing.T) {
	items := []model.LineItem{item("A100", "好物", "2", "200", nil)}

	aggs := Products(items, Options{})
	require.Len(t, aggs, 1)
	assert.Nil(t, aggs[0].AverageUnitPrice)
	// Derived price still works off the sums.
	assert.True(t, aggs[0].DerivedUnitPrice.Equal(d("100")))
}

func TestProductsZeroQuantityDerivedPriceIsZero(t *testing.T) {
	items := []model.LineItem{item("A100", "好物", "0", "250", nil)}

	aggs := Products(items, Options{})
	require.Len(t, aggs, 1)
	assert.True(t, aggs[0].DerivedUnitPrice.IsZero())
}

func TestProductsSortedBySubtotalDescending(t *testing.T) {
	items := []model.LineItem{
		item("L1", "low", "1", "10", nil),
		item("H1", "high", "1", "900", nil),
		item("M1", "mid", "1", "500", nil),
	}

	aggs := Products(items, Options{})
	require.Len(t, aggs, 3)
	assert.Equal(t, "H1", aggs[0].ProductCode)
	assert.Equal(t, "M1", aggs[1].ProductCode)
	assert.Equal(t, "L1", aggs[2].ProductCode)
}

func TestProductsCodeFilterAppliedBeforeGrouping(t *testing.T) {
	items := []model.LineItem{
		item("A100", "好物", "3", "300", nil),
		item("B200", "別物", "5", "500", nil),
		item("a100x", "好物二", "1", "50", nil),
	}

	aggs := Products(items, Options{CodeFilter: "A100"})
	require.Len(t, aggs, 2) // matching is case-insensitive substring
	total := decimal.Zero
	for _, a := range aggs {
		total = total.Add(a.TotalSubtotal)
	}
	assert.True(t, total.Equal(d("350")))
}

func TestProductsSkipsEmptyCodes(t *testing.T) {
	items := []model.LineItem{
		item("", "summary row", "0", "999", nil),
		item("A100", "好物", "1", "100", nil),
	}

	aggs := Products(items, Options{})
	require.Len(t, aggs, 1)
	assert.Equal(t, "A100", aggs[0].ProductCode)
}

func TestProductsMultiPeriodZeroFills(t *testing.T) {
	a := item("A100", "好物", "3", "300", nil)
	a.PeriodLabel = "2025-01"
	b := item("B200", "別物", "5", "500", nil)
	b.PeriodLabel = "2025-02"

	aggs := Products([]model.LineItem{a, b}, Options{})
	require.Len(t, aggs, 2)

	for _, agg := range aggs {
		require.Len(t, agg.Periods, 2)
	}
	// B200 never sold in 2025-01: explicit zeros, not a missing key.
	var b200 model.ProductAggregate
	for _, agg := range aggs {
		if agg.ProductCode == "B200" {
			b200 = agg
		}
	}
	assert.True(t, b200.Periods["2025-01"].Quantity.IsZero())
	assert.True(t, b200.Periods["2025-01"].Subtotal.IsZero())
	assert.True(t, b200.Periods["2025-02"].Subtotal.Equal(d("500")))
}

func TestProductsFromTableWithoutCodeColumn(t *testing.T) {
	table := &model.SalesTable{
		Items:   []model.LineItem{item("A100", "好物", "1", "100", nil)},
		Columns: map[string]bool{dataset.ColProductName: true},
	}

	aggs := ProductsFromTable(table, Options{})
	assert.NotNil(t, aggs)
	assert.Empty(t, aggs)

	assert.Empty(t, ProductsFromTable(nil, Options{}))
}

func TestFilterByCodeEmptyCodesNeverMatch(t *testing.T) {
	items := []model.LineItem{
		item("", "anon", "1", "10", nil),
		item("A100", "好物", "1", "100", nil),
	}
	out := FilterByCode(items, "a")
	require.Len(t, out, 1)
	assert.Equal(t, "A100", out[0].ProductCode)
}

func TestPeriodLabelsSortedDistinct(t *testing.T) {
	a := item("A", "a", "1", "1", nil)
	a.PeriodLabel = "2025-02"
	b := item("B", "b", "1", "1", nil)
	b.PeriodLabel = "2025-01"
	c := item("C", "c", "1", "1", nil)
	c.PeriodLabel = "2025-02"

	assert.Equal(t, []string{"2025-01", "2025-02"}, PeriodLabels([]model.LineItem{a, b, c}))
}
