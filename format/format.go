// Package format defines the interface for input and output format plugins.
package format

import (
	"io"

	"github.com/lehigh-university-libraries/marc2eprints/eprints"
	"github.com/lehigh-university-libraries/marc2eprints/marc"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "marcxml", "eprints")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool
}

// Parser is a format that can read MARC records.
type Parser interface {
	Format

	// Parse reads input and returns the MARC records it contains, in
	// document order.
	Parse(r io.Reader, opts *ParseOptions) ([]*marc.Record, error)
}

// Serializer is a format that can write an EPrints document.
type Serializer interface {
	Format

	// Serialize writes the document to the output.
	Serialize(w io.Writer, doc *eprints.Document, opts *SerializeOptions) error
}

// ParseOptions contains options for parsing.
type ParseOptions struct {
	// Namespace is the XML namespace URI records must be in
	Namespace string

	// SourceName is an identifier for the source (for error messages)
	SourceName string
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Pretty enables indentation
	Pretty bool

	// Indent is the number of spaces per level when Pretty is set
	Indent int
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{
		Namespace: marc.Namespace,
	}
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		Indent: 2,
	}
}
