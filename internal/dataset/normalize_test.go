package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesRaw() *RawTable {
	headers := []string{
		ColOrderID, ColOrderDate, ColCustomerName, ColGrandTotal, ColGrossMarginPct,
		ColProductCode, ColProductName, ColQuantity, ColUnit, ColUnitPrice, ColSubtotal, ColCostTotal,
	}
	rows := [][]string{
		{"S001", "112.01.15", "甲公司", "1,000", "25.00", "A100", "好物", "3", "個", "100", "300", "210"},
		{"", "", "", "", "", "B200", "別物", "5", "盒", "", "500", "350"},
		{"S002", "2023-02-01", "乙公司", "200", "***.**", "A100", "好物", "2", "個", "100", "200", "140"},
	}
	return NewRawTable(headers, rows)
}

func TestNormalizeSales(t *testing.T) {
	table, err := NormalizeSales(salesRaw())
	require.NoError(t, err)
	require.Len(t, table.Items, 3)

	first := table.Items[0]
	require.NotNil(t, first.OrderID)
	assert.Equal(t, "S001", *first.OrderID)
	require.NotNil(t, first.OrderDate)
	assert.Equal(t, day(2023, 1, 15), *first.OrderDate)
	require.NotNil(t, first.GrandTotal)
	assert.True(t, first.GrandTotal.Equal(decimal.NewFromInt(1000)))
	require.NotNil(t, first.UnitPrice)
	assert.True(t, first.UnitPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, first.Quantity.Equal(decimal.NewFromInt(3)))

	// Continuation row: order-level cells missing, unit price missing.
	second := table.Items[1]
	assert.Nil(t, second.OrderID)
	assert.Nil(t, second.OrderDate)
	assert.Nil(t, second.GrandTotal)
	assert.Nil(t, second.UnitPrice)
	assert.True(t, second.Subtotal.Equal(decimal.NewFromInt(500)))

	// Masked margin surfaces as missing.
	assert.Nil(t, table.Items[2].GrossMarginPct)
	require.NotNil(t, table.Items[0].GrossMarginPct)
	assert.True(t, table.Items[0].GrossMarginPct.Equal(decimal.NewFromInt(25)))
}

func TestNormalizeSalesTracksPresentColumns(t *testing.T) {
	table, err := NormalizeSales(salesRaw())
	require.NoError(t, err)

	assert.True(t, table.HasColumn(ColOrderID))
	assert.True(t, table.HasColumn(ColUnitPrice))
	assert.False(t, table.HasColumn(ColDepartmentName))
	assert.False(t, table.HasColumn(ColSalesTax))
}

func TestNormalizeSalesEmptyTable(t *testing.T) {
	_, err := NormalizeSales(NewRawTable(nil, nil))
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = NormalizeSales(nil)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestNormalizeInventory(t *testing.T) {
	headers := []string{
		ColProductCode, ColProductName, ColQuantity, ColUnit,
		ColUnitCost, ColSafetyStock, ColCategory, ColVendor, ColGrossMarginPct,
	}
	rows := [][]string{
		{"A100", "好物", "1,000", "個", "70.5", "20", "食品", "大廠", "30%"},
		{"C300", "冷門", "0", "個", "12", "5", "雜貨", "小廠", "***.**"},
	}

	table, err := NormalizeInventory(NewRawTable(headers, rows))
	require.NoError(t, err)
	require.Len(t, table.Records, 2)

	first := table.Records[0]
	assert.Equal(t, "A100", first.ProductCode)
	assert.Equal(t, 1000, first.OnHand)
	assert.Equal(t, 20, first.SafetyStock)
	assert.True(t, first.UnitCost.Equal(decimal.RequireFromString("70.5")))
	require.NotNil(t, first.GrossMarginPct)
	assert.True(t, first.GrossMarginPct.Equal(decimal.NewFromInt(30)))

	assert.Equal(t, 0, table.Records[1].OnHand)
	assert.Nil(t, table.Records[1].GrossMarginPct)
}
