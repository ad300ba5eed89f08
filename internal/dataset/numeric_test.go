package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountStripsThousandsSeparators(t *testing.T) {
	assert.True(t, ParseAmount("1,000").Equal(decimal.NewFromInt(1000)))
	assert.True(t, ParseAmount("12,345.67").Equal(decimal.RequireFromString("12345.67")))
	assert.True(t, ParseAmount(" 42 ").Equal(decimal.NewFromInt(42)))
}

func TestParseAmountBadInputIsZero(t *testing.T) {
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("n/a").IsZero())
	assert.True(t, ParseAmount("--").IsZero())
}

func TestParseNullableAmount(t *testing.T) {
	v := ParseNullableAmount("99.5")
	require.NotNil(t, v)
	assert.True(t, v.Equal(decimal.RequireFromString("99.5")))

	assert.Nil(t, ParseNullableAmount(""))
	assert.Nil(t, ParseNullableAmount("junk"))
}

func TestParsePercentMaskedSentinelIsMissing(t *testing.T) {
	// The ERP masks confidential margins as "***.**"; that must surface as
	// missing, not as a numeric zero.
	assert.Nil(t, ParsePercent("***.**"))
	assert.Nil(t, ParsePercent("****.****"))
	assert.Nil(t, ParsePercent(""))

	v := ParsePercent("12.5%")
	require.NotNil(t, v)
	assert.True(t, v.Equal(decimal.RequireFromString("12.5")))

	v = ParsePercent("7.25")
	require.NotNil(t, v)
	assert.True(t, v.Equal(decimal.RequireFromString("7.25")))
}

func TestParseIntQuantity(t *testing.T) {
	assert.Equal(t, 1000, ParseIntQuantity("1,000"))
	assert.Equal(t, 3, ParseIntQuantity("3.0"))
	assert.Equal(t, 0, ParseIntQuantity(""))
	assert.Equal(t, 0, ParseIntQuantity("oops"))
}

func TestParseNullableText(t *testing.T) {
	s := ParseNullableText(" A100 ")
	require.NotNil(t, s)
	assert.Equal(t, "A100", *s)
	assert.Nil(t, ParseNullableText(""))
	assert.Nil(t, ParseNullableText("   "))
}
