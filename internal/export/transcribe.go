package export

// transcribe.go walks an export definition's column table over parsed XML
// items, producing CSV rows. Any rule violation aborts the whole file; a
// half-written import file is worse than none.

import (
	"fmt"

	"github.com/shopops/psbridge/internal/pshop"
)

// Value extracts one column's value from an item according to the field's
// rule. Flag and required rules return a *pshop.MissingFieldError on
// violation.
func Value(item *pshop.Node, f Field) (string, error) {
	switch f.Kind {
	case RuleNone:
		return "", nil

	case RuleElement:
		return item.Text(f.Path), nil

	case RuleRequiredElement:
		v := item.Text(f.Path)
		if v == "" {
			return "", &pshop.MissingFieldError{Field: f.Path, Reason: "missing or empty"}
		}
		return v, nil

	case RuleFlagElement:
		v := item.Text(f.Path)
		if v != "0" && v != "1" {
			return "", &pshop.MissingFieldError{Field: f.Path, Value: v, Reason: `must be "0" or "1"`}
		}
		return v, nil

	case RuleAbsenceFlag:
		if item.Has(f.Path) {
			return "0", nil
		}
		return "1", nil

	default:
		return "", fmt.Errorf("unknown rule kind %d for column %q", f.Kind, f.Column)
	}
}

// Transcribe converts items into CSV rows in the definition's column
// order. The first rule violation aborts, wrapped with the offending
// item's position for the user-facing message.
func (d Definition) Transcribe(items []*pshop.Node) ([][]string, error) {
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		row := make([]string, len(d.Fields))
		for j, f := range d.Fields {
			v, err := Value(item, f)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ByLanguage groups the document's items by language and transcribes each
// group. Keys of the returned map are language codes ("es", "ca", "en"),
// ready for per-language output file naming.
func (d Definition) ByLanguage(doc *pshop.Node) (map[string][][]string, error) {
	grouped := pshop.GroupByLanguage(doc.Items())

	out := make(map[string][][]string, len(grouped))
	for langID, items := range grouped {
		rows, err := d.Transcribe(items)
		if err != nil {
			return nil, err
		}
		// Unknown language ids all map to "en"; accumulate rather than clobber.
		name := pshop.LanguageName(langID)
		out[name] = append(out[name], rows...)
	}
	return out, nil
}
