// Package csvio reads and writes the semicolon-delimited CSV dialect used
// by the shop's import/export tooling.
//
// Reading uses encoding/csv. Writing does not: the import tooling requires
// every field to be double-quote wrapped, and encoding/csv only quotes
// fields that need it, so emission is done directly.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates fields in both directions.
const Delimiter = ';'

// Read parses semicolon-delimited CSV from r into rows of fields.
// All rows must have the same number of fields as the first row.
func Read(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return rows, nil
}

// WriteReport emits a header row followed by one row per record. Every
// field is wrapped in double quotes with embedded double quotes doubled,
// so `He said "hi"` renders as `"He said ""hi"""`.
func WriteReport(w io.Writer, header []string, rows [][]string) error {
	if err := writeRow(w, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(Delimiter)
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing csv row: %w", err)
	}
	return nil
}
