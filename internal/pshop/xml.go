// Package pshop reads the vendor's catalog exports: the XML product dump
// and the semicolon-CSV primary catalog. All field validation happens
// here, at the read boundary; downstream packages receive well-formed,
// already-validated records and never raise domain errors themselves.
package pshop

import (
	"encoding/xml"
	"io"
	"strings"
)

// ItemElement is the element name wrapping one catalog item in the vendor
// XML export. One logical product appears once per shop/language pair.
const ItemElement = "twinPrestaShop5"

// Node is a generic element of the parsed XML tree. Lookups follow the
// original tooling's selector semantics: first matching descendant in
// document order.
type Node struct {
	XMLName  xml.Name
	Content  string `xml:",chardata"`
	Children []Node `xml:",any"`
}

// ParseDocument decodes an entire XML document into a navigable tree.
// Malformed input yields a *ParseError.
func ParseDocument(r io.Reader) (*Node, error) {
	var root Node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, &ParseError{Format: "xml", Err: err}
	}
	return &root, nil
}

// First returns the first descendant element with the given local name,
// searching depth-first in document order. Returns nil when absent.
func (n *Node) First(name string) *Node {
	for i := range n.Children {
		child := &n.Children[i]
		if child.XMLName.Local == name {
			return child
		}
		if found := child.First(name); found != nil {
			return found
		}
	}
	return nil
}

// Text returns the trimmed text content of the first descendant element
// with the given name, or "" when the element is absent.
func (n *Node) Text(name string) string {
	el := n.First(name)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Content)
}

// Has reports whether any descendant element has the given name.
func (n *Node) Has(name string) bool {
	return n.First(name) != nil
}

// Items collects every descendant item element of the document.
func (n *Node) Items() []*Node {
	var items []*Node
	n.walk(func(el *Node) {
		if el.XMLName.Local == ItemElement {
			items = append(items, el)
		}
	})
	return items
}

func (n *Node) walk(fn func(*Node)) {
	for i := range n.Children {
		child := &n.Children[i]
		fn(child)
		child.walk(fn)
	}
}

// LanguageName maps the export's numeric language id to the language code
// used in output file names. Unknown ids fall back to "en".
func LanguageName(id string) string {
	switch id {
	case "1":
		return "es"
	case "2":
		return "ca"
	default:
		return "en"
	}
}

// GroupByLanguage buckets items by the value of their language element,
// preserving document order within each bucket.
func GroupByLanguage(items []*Node) map[string][]*Node {
	groups := make(map[string][]*Node)
	for _, item := range items {
		lang := item.Text("language")
		groups[lang] = append(groups[lang], item)
	}
	return groups
}
