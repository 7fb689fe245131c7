package marcxml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/lehigh-university-libraries/marc2eprints/format"
	"github.com/lehigh-university-libraries/marc2eprints/marc"
)

// ErrNoRoot is returned when the input has no root element.
var ErrNoRoot = errors.New("document has no root element")

// ErrTrailingContent is returned when elements or text follow the root element.
var ErrTrailingContent = errors.New("junk after document element")

// Parse reads a MARCXML document and returns every record in the configured
// namespace, wherever it appears in the tree. A document with no records
// yields an empty slice.
func (f *Format) Parse(r io.Reader, opts *format.ParseOptions) ([]*marc.Record, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	source := opts.SourceName
	if source == "" {
		source = "input"
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing MARCXML %s: %w", source, err)
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, fmt.Errorf("parsing MARCXML %s: %w", source, err)
	}

	root := doc.Root()

	candidates := descendants(root, "record", opts.Namespace)
	if matches(root, "record", opts.Namespace) {
		candidates = append([]*etree.Element{root}, candidates...)
	}

	var records []*marc.Record
	for _, el := range candidates {
		records = append(records, parseRecord(el, len(records), opts.Namespace))
	}

	return records, nil
}

// checkTopLevel enforces a single root element with nothing but whitespace,
// comments and processing instructions around it.
func checkTopLevel(doc *etree.Document) error {
	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
			if roots > 1 {
				return fmt.Errorf("%w: second root element <%s>", ErrTrailingContent, t.FullTag())
			}
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return fmt.Errorf("%w: text %q", ErrTrailingContent, strings.TrimSpace(t.Data))
			}
		}
	}
	if roots == 0 {
		return ErrNoRoot
	}
	return nil
}

func parseRecord(el *etree.Element, index int, ns string) *marc.Record {
	rec := &marc.Record{Index: index}
	for _, df := range descendants(el, "datafield", ns) {
		field := marc.DataField{
			Tag:  df.SelectAttrValue("tag", ""),
			Ind1: df.SelectAttrValue("ind1", ""),
			Ind2: df.SelectAttrValue("ind2", ""),
		}
		for _, sf := range descendants(df, "subfield", ns) {
			field.Subfields = append(field.Subfields, marc.Subfield{
				Code:  sf.SelectAttrValue("code", ""),
				Value: sf.Text(),
			})
		}
		rec.Fields = append(rec.Fields, field)
	}
	return rec
}

// descendants returns every element below el (not el itself) with the given
// local name and namespace URI, in document order.
func descendants(el *etree.Element, tag, ns string) []*etree.Element {
	var found []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if matches(child, tag, ns) {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(el)
	return found
}

func matches(el *etree.Element, tag, ns string) bool {
	return el.Tag == tag && el.NamespaceURI() == ns
}

// charsetReader decodes inputs whose XML declaration names a non-UTF-8
// encoding, such as ISO-8859-1 exports from older catalogues.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
