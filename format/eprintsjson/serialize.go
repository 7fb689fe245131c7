package eprintsjson

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/marc2eprints/eprints"
	"github.com/lehigh-university-libraries/marc2eprints/format"
)

// Serialize writes the document as a JSON array of eprint objects.
//
// Text elements become strings; when a text element repeats, the last one
// wins. List elements (creators, subjects) become arrays, and repeated lists
// are concatenated. Text values are trimmed.
func (f *Format) Serialize(w io.Writer, doc *eprints.Document, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	list := &structpb.ListValue{}
	if doc != nil {
		for _, record := range doc.Records {
			list.Values = append(list.Values, structpb.NewStructValue(recordStruct(record)))
		}
	}

	marshal := protojson.MarshalOptions{}
	if opts.Pretty {
		marshal.Multiline = true
		marshal.Indent = strings.Repeat(" ", max(opts.Indent, 1))
	}

	data, err := marshal.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshaling EPrints JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

func recordStruct(record *eprints.Record) *structpb.Struct {
	s := &structpb.Struct{Fields: make(map[string]*structpb.Value)}
	for _, elem := range record.Elements {
		v := elementValue(elem)
		if elem.IsList() {
			if prev, ok := s.Fields[elem.Name]; ok && prev.GetListValue() != nil {
				prev.GetListValue().Values = append(prev.GetListValue().Values, v.GetListValue().Values...)
				continue
			}
		}
		s.Fields[elem.Name] = v
	}
	return s
}

func elementValue(elem eprints.Element) *structpb.Value {
	switch {
	case elem.IsList():
		items := make([]*structpb.Value, 0, len(elem.Children))
		for _, item := range elem.Children {
			items = append(items, elementValue(item))
		}
		return structpb.NewListValue(&structpb.ListValue{Values: items})
	case len(elem.Children) > 0:
		obj := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(elem.Children))}
		for _, child := range elem.Children {
			obj.Fields[child.Name] = elementValue(child)
		}
		return structpb.NewStructValue(obj)
	default:
		return structpb.NewStringValue(strings.TrimSpace(elem.Text))
	}
}
