package aggregate

import (
	"testing"
	"time"

	"salesdash/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func timep(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSummarizeCountsEachOrderOnce(t *testing.T) {
	// Unfilled rows: only the header row of each order carries the totals,
	// so summing nullable fields counts every order exactly once.
	items := []model.LineItem{
		{ProductCode: "A", ProductName: "甲", OrderID: strp("S001"), OrderDate: timep(2025, 1, 10),
			CustomerName: strp("客戶一"), GrandTotal: dp("1000"), GrossProfit: dp("250")},
		{ProductCode: "B", ProductName: "乙"},
		{ProductCode: "C", ProductName: "丙", OrderID: strp("S002"), OrderDate: timep(2025, 1, 11),
			CustomerName: strp("客戶二"), GrandTotal: dp("500"), GrossProfit: dp("50")},
	}

	s := Summarize(items)
	assert.Equal(t, 2, s.OrderCount)
	assert.True(t, s.TotalSales.Equal(d("1500")))
	assert.True(t, s.TotalProfit.Equal(d("300")))
	assert.True(t, s.AverageMarginPct.Equal(d("20")))
}

func TestSummarizeDailyTrendSkipsUndatedRows(t *testing.T) {
	items := []model.LineItem{
		{ProductName: "甲", OrderDate: timep(2025, 1, 10), GrandTotal: dp("100")},
		{ProductName: "乙", OrderDate: timep(2025, 1, 10), GrandTotal: dp("200")},
		{ProductName: "丙", GrandTotal: dp("999")}, // unparsed date
	}

	s := Summarize(items)
	require.Len(t, s.DailySales, 1)
	assert.True(t, s.DailySales[0].Sales.Equal(d("300")))
	// Undated rows still count toward the totals.
	assert.True(t, s.TotalSales.Equal(d("1299")))
}

func TestSummarizeTopMarginRequiresPositiveSales(t *testing.T) {
	items := []model.LineItem{
		{ProductName: "有銷售", GrandTotal: dp("100"), GrossProfit: dp("40")},
		{ProductName: "零銷售", GrossProfit: dp("10")},
	}

	s := Summarize(items)
	require.Len(t, s.TopMarginProducts, 1)
	assert.Equal(t, "有銷售", s.TopMarginProducts[0].Name)
	assert.True(t, s.TopMarginProducts[0].MarginPct.Equal(d("40")))
}

func TestSummarizeRanksCustomersBySales(t *testing.T) {
	items := []model.LineItem{
		{CustomerName: strp("小戶"), GrandTotal: dp("100")},
		{CustomerName: strp("大戶"), GrandTotal: dp("900")},
	}

	s := Summarize(items)
	require.Len(t, s.TopCustomers, 2)
	assert.Equal(t, "大戶", s.TopCustomers[0].Name)
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.OrderCount)
	assert.True(t, s.TotalSales.IsZero())
	assert.True(t, s.AverageMarginPct.IsZero())
	assert.Empty(t, s.DailySales)
}
