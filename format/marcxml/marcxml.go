// Package marcxml provides a format plugin for MARCXML (MARC21 slim) input.
package marcxml

import (
	"bytes"

	"github.com/lehigh-university-libraries/marc2eprints/format"
)

// Version documents the MARCXML schema this implementation targets.
const Version = "1.1"

// Format implements the MARCXML format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format = (*Format)(nil)
	_ format.Parser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "marcxml"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "MARC21 slim XML (MARCXML v" + Version + ")"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"xml", "marcxml"}
}

// CanParse returns true if the input looks like MARCXML.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 || peek[0] != '<' {
		return false
	}

	patterns := [][]byte{
		[]byte("loc.gov/MARC21/slim"),
		[]byte("<marc:record"),
		[]byte("<marc:collection"),
		[]byte("<datafield"),
	}

	for _, pattern := range patterns {
		if bytes.Contains(peek, pattern) {
			return true
		}
	}

	return false
}

func init() {
	format.Register(&Format{})
}
