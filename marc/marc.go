// Package marc provides the source model for MARC21 bibliographic records
// as read from MARCXML.
package marc

// Namespace is the MARC21 slim XML namespace.
const Namespace = "http://www.loc.gov/MARC21/slim"

// Record is one MARC record. Fields holds every data field found under the
// record element, in document order.
type Record struct {
	// Index is the 0-based position of the record in its source document
	Index int

	Fields []DataField
}

// DataField is a tagged MARC field holding coded subfields.
type DataField struct {
	Tag       string
	Ind1      string
	Ind2      string
	Subfields []Subfield
}

// Subfield holds a single-character code and its untrimmed text.
type Subfield struct {
	Code  string
	Value string
}

// Subfield returns the value of the first subfield with the given code.
// The boolean is false when the field has no such subfield; an empty
// subfield is reported as present.
func (f DataField) Subfield(code string) (string, bool) {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return sf.Value, true
		}
	}
	return "", false
}

// Tags returns the distinct field tags in first-seen order.
func (r *Record) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, f := range r.Fields {
		if seen[f.Tag] {
			continue
		}
		seen[f.Tag] = true
		tags = append(tags, f.Tag)
	}
	return tags
}
