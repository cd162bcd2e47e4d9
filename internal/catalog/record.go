// Package catalog provides the reconciliation logic between two product
// catalogs: merging duplicate update records by product reference and
// classifying shop records against the merged result.
//
// This package has no I/O and no transport dependencies. Readers hand it
// fully materialized record slices; it hands back new slices.
package catalog

// ActiveQuantityThreshold is the stock level above which a product is
// considered active. A merged quantity strictly greater than this yields
// Active == "1".
const ActiveQuantityThreshold = 3

// SourceRecord is one row of the authoritative-update catalog. The same
// reference may appear many times (once per shop/language combination in
// the vendor export).
type SourceRecord struct {
	Reference string // business key, non-empty
	Price     string // decimal string
	Quantity  string // integer string
}

// CanonicalRecord is the single merged representation of all SourceRecords
// sharing a reference. Exactly one exists per distinct reference after a
// merge.
type CanonicalRecord struct {
	Reference string
	Price     string // maximum price observed across duplicates
	Quantity  string // minimum quantity observed across duplicates
	Active    string // "1" iff the merged quantity is above ActiveQuantityThreshold
	// ConsistentData is false when any duplicate disagreed with another
	// on price or quantity.
	ConsistentData bool
}

// PrimaryRecord is one row of the catalog being updated. Reference is the
// join key; PriceTin, Quantity and Active are the reconciled fields. The
// remaining fields pass through untouched.
type PrimaryRecord struct {
	ID        string
	ImageURL  string
	Name      string
	Reference string
	Category  string
	PriceTex  string
	PriceTin  string
	Quantity  string
	Active    string
	Position  string
}

// PrimaryHeader is the fixed, ordered column schema of the primary catalog
// file. Readers reject files whose header differs; report emitters use it
// as the output header row.
var PrimaryHeader = []string{
	"id", "imageUrl", "name", "reference", "category",
	"priceTex", "priceTin", "quantity", "active", "position",
}

// Row returns the record's fields in PrimaryHeader order.
func (r PrimaryRecord) Row() []string {
	return []string{
		r.ID, r.ImageURL, r.Name, r.Reference, r.Category,
		r.PriceTex, r.PriceTin, r.Quantity, r.Active, r.Position,
	}
}

// PrimaryFromRow builds a PrimaryRecord from a row in PrimaryHeader order.
// The caller guarantees the row has exactly len(PrimaryHeader) fields.
func PrimaryFromRow(row []string) PrimaryRecord {
	return PrimaryRecord{
		ID:        row[0],
		ImageURL:  row[1],
		Name:      row[2],
		Reference: row[3],
		Category:  row[4],
		PriceTex:  row[5],
		PriceTin:  row[6],
		Quantity:  row[7],
		Active:    row[8],
		Position:  row[9],
	}
}

// Classification is the result of diffing the primary catalog against the
// canonical set. Updated holds copies of primary records with at least one
// reconciled field overwritten; Unfound holds unmodified copies of primary
// records with no canonical counterpart. A record never appears in both.
// Records that matched but needed no change appear in neither.
type Classification struct {
	Updated []PrimaryRecord
	Unfound []PrimaryRecord
}
