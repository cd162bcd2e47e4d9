package pshop

// source.go extracts update records from the vendor XML export. Each item
// contributes one record; the same product reference shows up once per
// shop/language pair, and the merger downstream collapses those duplicates.

import (
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/shopops/psbridge/internal/catalog"
)

// ReadSourceRecords parses a vendor XML export and returns one SourceRecord
// per item. The merger's numeric preconditions are enforced here: a missing
// reference, a non-decimal price or a non-integer quantity aborts the whole
// read with a *MissingFieldError.
func ReadSourceRecords(r io.Reader) ([]catalog.SourceRecord, error) {
	doc, err := ParseDocument(r)
	if err != nil {
		return nil, err
	}

	items := doc.Items()
	records := make([]catalog.SourceRecord, 0, len(items))
	for _, item := range items {
		ref := item.Text("reference")
		if ref == "" {
			return nil, &MissingFieldError{Field: "reference", Reason: "missing or empty"}
		}

		price := item.Text("price_tin")
		if _, err := decimal.NewFromString(price); err != nil {
			return nil, &MissingFieldError{Field: "price_tin", Value: price, Reason: "not a decimal number"}
		}

		quantity := item.Text("quantity")
		if _, err := strconv.Atoi(quantity); err != nil {
			return nil, &MissingFieldError{Field: "quantity", Value: quantity, Reason: "not an integer"}
		}

		records = append(records, catalog.SourceRecord{
			Reference: ref,
			Price:     price,
			Quantity:  quantity,
		})
	}

	return records, nil
}
