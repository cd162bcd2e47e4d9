package pshop

// primary.go reads the catalog being updated: a semicolon-CSV file with a
// fixed, ordered header. The header is matched exactly; anything else is
// someone else's export and gets rejected up front.

import (
	"fmt"
	"io"

	"github.com/shopops/psbridge/internal/catalog"
	"github.com/shopops/psbridge/internal/csvio"
)

// ReadPrimaryCatalog parses the primary catalog CSV. The first row must
// equal catalog.PrimaryHeader exactly (order and case included); each
// following row becomes one PrimaryRecord. Malformed CSV or a wrong header
// yields a *ParseError.
func ReadPrimaryCatalog(r io.Reader) ([]catalog.PrimaryRecord, error) {
	rows, err := csvio.Read(r)
	if err != nil {
		return nil, &ParseError{Format: "csv", Err: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Format: "csv", Err: fmt.Errorf("file is empty")}
	}

	if err := matchHeader(rows[0]); err != nil {
		return nil, &ParseError{Format: "csv", Err: err}
	}

	records := make([]catalog.PrimaryRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, catalog.PrimaryFromRow(row))
	}
	return records, nil
}

func matchHeader(header []string) error {
	want := catalog.PrimaryHeader
	if len(header) != len(want) {
		return fmt.Errorf("header has %d columns, expected %d", len(header), len(want))
	}
	for i, col := range header {
		if col != want[i] {
			return fmt.Errorf("header column %d is %q, expected %q", i+1, col, want[i])
		}
	}
	return nil
}
