package catalog

// diff.go classifies primary-catalog records against the canonical set
// produced by Merge. Matching is exact string equality on the reference;
// no normalization of any kind is applied to keys.

// Classify compares each primary record against the canonical record with
// the same reference.
//
// A record with no canonical counterpart is copied unmodified into Unfound.
// A matched record has PriceTin, Quantity and Active compared by string
// equality against the canonical price, quantity and active flag; each
// differing field is overwritten on a copy, and the copy lands in Updated
// only if at least one field changed. Matched records needing no change
// produce no output.
//
// Classify is pure: it never modifies its inputs and the same inputs always
// yield the same result. Canonical references are unique post-merge; if a
// caller passes duplicates, the last one wins.
func Classify(primary []PrimaryRecord, canonical []CanonicalRecord) Classification {
	byRef := make(map[string]CanonicalRecord, len(canonical))
	for _, c := range canonical {
		byRef[c.Reference] = c
	}

	var result Classification
	for _, p := range primary {
		c, ok := byRef[p.Reference]
		if !ok {
			result.Unfound = append(result.Unfound, p)
			continue
		}

		updated := p
		changed := false
		if p.PriceTin != c.Price {
			updated.PriceTin = c.Price
			changed = true
		}
		if p.Quantity != c.Quantity {
			updated.Quantity = c.Quantity
			changed = true
		}
		if p.Active != c.Active {
			updated.Active = c.Active
			changed = true
		}

		if changed {
			result.Updated = append(result.Updated, updated)
		}
	}

	return result
}
