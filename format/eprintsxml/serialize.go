package eprintsxml

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/marc2eprints/eprints"
	"github.com/lehigh-university-libraries/marc2eprints/format"
)

// Serialize writes the document as EPrints XML with a UTF-8 declaration.
// Text values are written as-is, trailing newlines included.
func (f *Format) Serialize(w io.Writer, doc *eprints.Document, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	out := etree.NewDocument()
	out.WriteSettings.CanonicalText = true
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := etree.NewElement(eprints.RootElement)
	if doc != nil {
		for _, record := range doc.Records {
			ep := root.CreateElement(eprints.RecordElement)
			for _, elem := range record.Elements {
				appendElement(ep, elem)
			}
		}
	}

	if opts.Pretty {
		out.SetRoot(root)
		indent := opts.Indent
		if indent < 0 {
			indent = 2
		}
		out.Indent(indent)
	} else {
		out.CreateText("\n")
		out.SetRoot(root)
	}

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("writing EPrints XML: %w", err)
	}
	return nil
}

func appendElement(parent *etree.Element, elem eprints.Element) {
	el := parent.CreateElement(elem.Name)
	if elem.Text != "" {
		el.SetText(elem.Text)
	}
	for _, child := range elem.Children {
		appendElement(el, child)
	}
}
