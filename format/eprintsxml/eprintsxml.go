// Package eprintsxml provides a format plugin for EPrints-XML output.
package eprintsxml

import (
	"bytes"

	"github.com/lehigh-university-libraries/marc2eprints/format"
)

// Format implements the EPrints-XML format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "eprints"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "EPrints XML import/export format"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xml"}
}

// CanParse returns true if the input looks like an EPrints-XML document.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}
	return bytes.Contains(peek, []byte("<eprints")) || bytes.Contains(peek, []byte("<eprint>"))
}

func init() {
	format.Register(&Format{})
}
