// Package export turns vendor XML catalog items into the shop platform's
// bulk-import CSVs. Each export format is a fixed, ordered list of output
// columns, each bound to an extraction rule against the item's XML tree.
// The column tables are interoperability contracts with the downstream
// import tooling and must not be reordered or renamed.
package export

import (
	"fmt"
	"sort"
	"sync"
)

// RuleKind selects how a column's value is extracted from an item.
type RuleKind int

const (
	// RuleNone emits an empty string; the column has no source mapping.
	RuleNone RuleKind = iota

	// RuleElement emits the text of the first matching descendant element.
	RuleElement

	// RuleRequiredElement is RuleElement, but an empty value aborts the
	// conversion.
	RuleRequiredElement

	// RuleFlagElement is RuleElement, but the value must be exactly "0"
	// or "1"; anything else aborts the conversion.
	RuleFlagElement

	// RuleAbsenceFlag emits "0" when the element is present and "1" when
	// it is absent. Only the combination export's default column uses it,
	// mirroring the legacy tooling exactly; the inversion looks wrong but
	// is what the downstream import expects.
	RuleAbsenceFlag
)

// Field binds one output column to its extraction rule. Path is the source
// element name; it is empty for RuleNone.
type Field struct {
	Column string
	Path   string
	Kind   RuleKind
}

// Definition describes one export format: its registry key, display label,
// output file base name and the ordered column table.
type Definition struct {
	Key      string // URL-safe identifier: "products", "combinations"
	Label    string // Display name for the upload page
	FileBase string // Output files are named <FileBase>-<lang>.csv
	Fields   []Field
}

// Header returns the ordered output column names.
func (d Definition) Header() []string {
	cols := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		cols[i] = f.Column
	}
	return cols
}

var (
	registry   = make(map[string]Definition)
	registryMu sync.RWMutex
)

// Register adds an export definition to the registry.
// Panics if the key is already taken; definitions register at init time.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Key]; exists {
		panic(fmt.Sprintf("export already registered: %s", def.Key))
	}
	registry[def.Key] = def
}

// Get returns an export definition by key.
func Get(key string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns every registered definition, sorted by key.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// Count returns the number of registered export definitions.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}
