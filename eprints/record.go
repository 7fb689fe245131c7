// Package eprints provides the EPrints-XML output model.
package eprints

// Element names used by the EPrints-XML export format.
const (
	RootElement   = "eprints"
	RecordElement = "eprint"
	ItemElement   = "item"
)

// Element is one node of an eprint: either a text value or a container
// of child elements.
type Element struct {
	Name     string
	Text     string
	Children []Element
}

// NewText creates a text element.
func NewText(name, text string) Element {
	return Element{Name: name, Text: text}
}

// NewList creates a container element.
func NewList(name string, children ...Element) Element {
	return Element{Name: name, Children: children}
}

// Child returns the first child with the given name.
func (e Element) Child(name string) (Element, bool) {
	for _, c := range e.Children {
		if c.Name == name {
			return c, true
		}
	}
	return Element{}, false
}

// IsList reports whether every child is a list item.
func (e Element) IsList() bool {
	if len(e.Children) == 0 {
		return false
	}
	for _, c := range e.Children {
		if c.Name != ItemElement {
			return false
		}
	}
	return true
}

// Record is a single eprint. Elements are kept in the order they were added.
type Record struct {
	Elements []Element
}

// NewRecord creates a new empty Record.
func NewRecord() *Record {
	return &Record{Elements: make([]Element, 0)}
}

// Append adds elements to the end of the record.
func (r *Record) Append(elems ...Element) {
	r.Elements = append(r.Elements, elems...)
}

// Find returns all top-level elements with the given name.
func (r *Record) Find(name string) []Element {
	var result []Element
	for _, e := range r.Elements {
		if e.Name == name {
			result = append(result, e)
		}
	}
	return result
}

// First returns the first top-level element with the given name.
func (r *Record) First(name string) (Element, bool) {
	for _, e := range r.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return Element{}, false
}

// Empty reports whether the record has no elements.
func (r *Record) Empty() bool {
	return len(r.Elements) == 0
}

// Document is an ordered collection of eprints.
type Document struct {
	Records []*Record
}

// Add appends a record to the document.
func (d *Document) Add(r *Record) {
	d.Records = append(d.Records, r)
}

// Len returns the number of records.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
