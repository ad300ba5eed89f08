package aggregate

import (
	"strings"

	"salesdash/internal/model"

	"github.com/shopspring/decimal"
)

// CanonicalCode coerces a product code to canonical text. Spreadsheet codes
// arrive as text in one source and as numbers in another, where a numeric
// cell like 8891 can surface as "8891.0"; both sides of every join go through
// this so the key types always agree.
func CanonicalCode(s string) string {
	s = strings.TrimSpace(s)
	if dot := strings.IndexByte(s, '.'); dot > 0 && isDigits(s[:dot]) && isZeros(s[dot+1:]) {
		return s[:dot]
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isZeros(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// JoinInventory left-joins product aggregates against an inventory snapshot
// on product code. Every aggregate row yields exactly one reconciled row;
// products absent from the snapshot get on-hand 0. The stock difference is
// on-hand minus total sold quantity and may be negative.
func JoinInventory(aggs []model.ProductAggregate, inv []model.InventoryRecord) []model.ReconciledProduct {
	onHand := make(map[string]int, len(inv))
	for _, rec := range inv {
		code := CanonicalCode(rec.ProductCode)
		if code == "" {
			continue
		}
		onHand[code] = rec.OnHand
	}

	out := make([]model.ReconciledProduct, 0, len(aggs))
	for _, agg := range aggs {
		qty := onHand[CanonicalCode(agg.ProductCode)]
		out = append(out, model.ReconciledProduct{
			ProductAggregate: agg,
			OnHand:           qty,
			StockDifference:  decimal.NewFromInt(int64(qty)).Sub(agg.TotalQuantity),
		})
	}
	return out
}

// SoldCodes collects the canonical product codes appearing in a set of sales
// line items, for the in-stock-but-unsold filter.
func SoldCodes(items []model.LineItem) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, it := range items {
		if code := CanonicalCode(it.ProductCode); code != "" {
			codes[code] = struct{}{}
		}
	}
	return codes
}

// StockStatus names the stateless stock predicates built on the joined view.
type StockStatus string

const (
	StockAll          StockStatus = "all"
	StockInStock      StockStatus = "in_stock"
	StockInsufficient StockStatus = "insufficient"
	StockOut          StockStatus = "out_of_stock"
)

// InventoryFilter subsets an inventory snapshot. Empty fields match
// everything.
type InventoryFilter struct {
	Category    string
	Subcategory string
	Vendor      string
	Status      StockStatus
}

// FilterInventory applies the filter predicates to a snapshot.
func FilterInventory(recs []model.InventoryRecord, f InventoryFilter) []model.InventoryRecord {
	out := make([]model.InventoryRecord, 0, len(recs))
	for _, rec := range recs {
		if f.Category != "" && rec.Category != f.Category {
			continue
		}
		if f.Subcategory != "" && rec.Subcategory != f.Subcategory {
			continue
		}
		if f.Vendor != "" && rec.Vendor != f.Vendor {
			continue
		}
		if !matchesStock(rec, f.Status) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesStock(rec model.InventoryRecord, status StockStatus) bool {
	switch status {
	case StockInStock:
		return rec.OnHand > 0
	case StockInsufficient:
		return rec.OnHand > 0 && rec.OnHand < rec.SafetyStock
	case StockOut:
		return rec.OnHand <= 0
	default:
		return true
	}
}

// UnsoldInStock returns the records that are on the shelf but whose product
// code never appears in the supplied sold-code set.
func UnsoldInStock(recs []model.InventoryRecord, sold map[string]struct{}) []model.InventoryRecord {
	out := make([]model.InventoryRecord, 0, len(recs))
	for _, rec := range recs {
		if rec.OnHand <= 0 {
			continue
		}
		if _, ok := sold[CanonicalCode(rec.ProductCode)]; ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}
