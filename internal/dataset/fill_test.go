package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillOrderContextPropagatesHeaderToContinuationRows(t *testing.T) {
	table, err := NormalizeSales(salesRaw())
	require.NoError(t, err)

	filled := FillOrderContext(table)
	require.Len(t, filled.Items, 3)

	cont := filled.Items[1]
	require.NotNil(t, cont.OrderID)
	assert.Equal(t, "S001", *cont.OrderID)
	require.NotNil(t, cont.OrderDate)
	assert.Equal(t, day(2023, 1, 15), *cont.OrderDate)
	require.NotNil(t, cont.CustomerName)
	assert.Equal(t, "甲公司", *cont.CustomerName)
	require.NotNil(t, cont.GrandTotal)
	assert.True(t, cont.GrandTotal.Equal(decimal.NewFromInt(1000)))

	// Line-level cells are untouched: the missing unit price stays missing.
	assert.Nil(t, cont.UnitPrice)
}

func TestFillOrderContextResetsAtOrderBoundaries(t *testing.T) {
	headers := []string{ColOrderID, ColCustomerName, ColGrossMarginPct, ColProductCode}
	rows := [][]string{
		{"S001", "甲公司", "25.00", "A100"},
		{"", "", "", "B200"},
		{"S002", "乙公司", "", "C300"}, // new order without a margin value
		{"", "", "", "D400"},
	}
	table, err := NormalizeSales(NewRawTable(headers, rows))
	require.NoError(t, err)

	filled := FillOrderContext(table)

	third := filled.Items[2]
	require.NotNil(t, third.CustomerName)
	assert.Equal(t, "乙公司", *third.CustomerName)
	// S001's margin must not leak into S002.
	assert.Nil(t, third.GrossMarginPct)
	assert.Nil(t, filled.Items[3].GrossMarginPct)

	fourth := filled.Items[3]
	require.NotNil(t, fourth.OrderID)
	assert.Equal(t, "S002", *fourth.OrderID)
}

func TestFillOrderContextWithoutOrderColumnFillsForward(t *testing.T) {
	headers := []string{ColCustomerName, ColProductCode}
	rows := [][]string{
		{"甲公司", "A100"},
		{"", "B200"},
		{"乙公司", "C300"},
		{"", "D400"},
	}
	table, err := NormalizeSales(NewRawTable(headers, rows))
	require.NoError(t, err)

	filled := FillOrderContext(table)

	require.NotNil(t, filled.Items[1].CustomerName)
	assert.Equal(t, "甲公司", *filled.Items[1].CustomerName)
	require.NotNil(t, filled.Items[3].CustomerName)
	assert.Equal(t, "乙公司", *filled.Items[3].CustomerName)
}

func TestFillOrderContextDoesNotMutateInput(t *testing.T) {
	table, err := NormalizeSales(salesRaw())
	require.NoError(t, err)

	_ = FillOrderContext(table)
	assert.Nil(t, table.Items[1].OrderID)
	assert.Nil(t, table.Items[1].CustomerName)
}

func TestFillOrderContextIdempotent(t *testing.T) {
	table, err := NormalizeSales(salesRaw())
	require.NoError(t, err)

	once := FillOrderContext(table)
	twice := FillOrderContext(once)
	assert.Equal(t, once.Items, twice.Items)
}
