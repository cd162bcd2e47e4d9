package catalog

// merge.go collapses duplicate update rows into one canonical record per
// reference. Conflicting prices resolve to the numeric maximum, conflicting
// quantities to the numeric minimum, and any disagreement clears the
// record's consistency flag so it can be reviewed after import.

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Merge collapses records sharing a reference into one CanonicalRecord each.
//
// The input is folded in a single pass. For an already-seen reference:
//   - a differing price (string inequality) marks the record inconsistent
//     and keeps the numerically greater price;
//   - a differing quantity marks the record inconsistent, keeps the
//     numerically smaller quantity, and recomputes Active from it.
//
// Price and quantity checks are independent; both may fire for the same
// duplicate. Because max and min are associative, the merged price and
// quantity do not depend on input order, and Active always reflects the
// final quantity. The output is sorted by reference.
//
// Numeric fields are a caller precondition: readers validate them before
// records reach this function. Merge itself never fails.
func Merge(records []SourceRecord) []CanonicalRecord {
	merged := make(map[string]*CanonicalRecord, len(records))

	for _, rec := range records {
		acc, seen := merged[rec.Reference]
		if !seen {
			merged[rec.Reference] = &CanonicalRecord{
				Reference:      rec.Reference,
				Price:          rec.Price,
				Quantity:       rec.Quantity,
				Active:         deriveActive(rec.Quantity),
				ConsistentData: true,
			}
			continue
		}

		if rec.Price != acc.Price {
			acc.ConsistentData = false
			acc.Price = maxPrice(acc.Price, rec.Price)
		}

		if rec.Quantity != acc.Quantity {
			acc.ConsistentData = false
			acc.Quantity = minQuantity(acc.Quantity, rec.Quantity)
			acc.Active = deriveActive(acc.Quantity)
		}
	}

	out := make([]CanonicalRecord, 0, len(merged))
	for _, acc := range merged {
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Reference < out[j].Reference })
	return out
}

// deriveActive maps a quantity string to the "1"/"0" active flag.
func deriveActive(quantity string) string {
	n, _ := strconv.Atoi(quantity)
	if n > ActiveQuantityThreshold {
		return "1"
	}
	return "0"
}

// maxPrice returns whichever operand is numerically greater, preserving
// that operand's original string form. Ties keep the accumulated value.
func maxPrice(acc, next string) string {
	a, errA := decimal.NewFromString(acc)
	b, errB := decimal.NewFromString(next)
	if errA != nil || errB != nil {
		// Precondition violation upstream; keep what we have.
		return acc
	}
	if b.GreaterThan(a) {
		return next
	}
	return acc
}

// minQuantity returns whichever operand is numerically smaller, preserving
// that operand's original string form. Ties keep the accumulated value.
func minQuantity(acc, next string) string {
	a, errA := strconv.Atoi(acc)
	b, errB := strconv.Atoi(next)
	if errA != nil || errB != nil {
		return acc
	}
	if b < a {
		return next
	}
	return acc
}
