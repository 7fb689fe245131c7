// Package eprintsjson provides a format plugin for the EPrints JSON export.
package eprintsjson

import (
	"bytes"

	"github.com/lehigh-university-libraries/marc2eprints/format"
)

// Format implements the EPrints JSON format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "eprints-json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "EPrints JSON export (array of eprint objects)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// CanParse returns true if the input looks like a JSON array.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	return len(peek) > 0 && peek[0] == '['
}

func init() {
	format.Register(&Format{})
}
