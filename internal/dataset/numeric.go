package dataset

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// marginSentinel matches the ERP's "not applicable" placeholder on margin
// percent columns (e.g. "***.**"). It maps to a true missing value, never 0:
// a 0% margin is a real business value, unlike a 0 stock quantity.
var marginSentinel = regexp.MustCompile(`^\*+\.\*+$`)

// cleanNumeric strips the locale formatting the ERP writes into numeric
// cells: surrounding whitespace and thousands separators.
func cleanNumeric(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, ",", "")
}

// ParseAmount coerces a cell on a sum-bearing column (quantity, subtotal,
// cost). Empty or unparseable cells become 0 so downstream sums are never
// corrupted by missing-value propagation. Idempotent on already-normalized
// values.
func ParseAmount(s string) decimal.Decimal {
	cleaned := cleanNumeric(s)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseNullableAmount coerces a cell on a nullable numeric column (unit
// price, order-level monetary fields). Empty and unparseable cells become
// nil, which lets the Order-Context Filler recognize continuation rows and
// keeps unpriced rows out of unit-price averages.
func ParseNullableAmount(s string) *decimal.Decimal {
	cleaned := cleanNumeric(s)
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// ParsePercent coerces a margin-percent cell. The asterisk sentinel and any
// unparseable value map to missing, not 0.
func ParsePercent(s string) *decimal.Decimal {
	cleaned := cleanNumeric(s)
	if cleaned == "" || marginSentinel.MatchString(cleaned) {
		return nil
	}
	cleaned = strings.TrimSuffix(cleaned, "%")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// ParseIntQuantity coerces an integer-semantic cell (on-hand quantity, safety
// stock): strip separators, parse, truncate. Missing or unparseable → 0.
func ParseIntQuantity(s string) int {
	return int(ParseAmount(s).IntPart())
}

// ParseText trims a text cell.
func ParseText(s string) string { return strings.TrimSpace(s) }

// ParseNullableText returns nil for empty text cells, used for order-level
// identifier columns where an empty cell marks a continuation row.
func ParseNullableText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
