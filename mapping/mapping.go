// Package mapping maps MARC data fields to EPrints elements.
//
// The mapping is a fixed table from field tag to handler. Handlers are pure:
// they receive one data field and return the elements it contributes, which
// MapRecord appends to the eprint in field order.
package mapping

import (
	"log/slog"

	"github.com/lehigh-university-libraries/marc2eprints/eprints"
	"github.com/lehigh-university-libraries/marc2eprints/marc"
)

// MARC tags handled by the default table.
const (
	TagTitle       = "245"
	TagAuthor      = "100"
	TagPublication = "264"
	TagSubjects    = "653"
)

// Handler converts one data field into the elements it contributes.
type Handler func(marc.DataField) []eprints.Element

// Table maps field tags to handlers.
type Table map[string]Handler

// DefaultTable returns the tag dispatch table.
func DefaultTable() Table {
	return Table{
		TagTitle:       Title,
		TagAuthor:      Author,
		TagPublication: Publication,
		TagSubjects:    Subjects,
	}
}

// Mapper applies a Table to MARC records.
type Mapper struct {
	table  Table
	logger *slog.Logger
}

// NewMapper creates a Mapper using the default table.
func NewMapper(logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{table: DefaultTable(), logger: logger}
}

// MapRecord builds a new eprint from a MARC record. Fields whose tag is not
// in the table are skipped. A tag that repeats runs its handler again, so
// its elements are added once per occurrence.
func (m *Mapper) MapRecord(src *marc.Record) *eprints.Record {
	out := eprints.NewRecord()
	for _, field := range src.Fields {
		handler, ok := m.table[field.Tag]
		if !ok {
			m.logger.Debug("skipping field", "record", src.Index, "tag", field.Tag)
			continue
		}
		elems := handler(field)
		m.logger.Debug("mapped field", "record", src.Index, "tag", field.Tag, "elements", len(elems))
		out.Append(elems...)
	}
	return out
}

// MapRecords maps each record independently, preserving order.
func (m *Mapper) MapRecords(records []*marc.Record) *eprints.Document {
	doc := &eprints.Document{Records: make([]*eprints.Record, 0, len(records))}
	for _, r := range records {
		doc.Add(m.MapRecord(r))
	}
	return doc
}

// Handles reports whether the table has a handler for tag.
func (m *Mapper) Handles(tag string) bool {
	_, ok := m.table[tag]
	return ok
}

// MapRecord maps a record with the default table.
func MapRecord(src *marc.Record) *eprints.Record {
	return NewMapper(nil).MapRecord(src)
}
