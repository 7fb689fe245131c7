package mapping

import (
	"strings"

	"github.com/lehigh-university-libraries/marc2eprints/eprints"
	"github.com/lehigh-university-libraries/marc2eprints/helpers"
	"github.com/lehigh-university-libraries/marc2eprints/marc"
)

// Title maps 245 $a $b $c to a single title, one line per subfield. The
// element exists as soon as any of the three subfields has content, so a
// title without $a still keeps its $b and $c.
func Title(f marc.DataField) []eprints.Element {
	var b strings.Builder
	for _, code := range []string{"a", "b", "c"} {
		if v, ok := present(f, code); ok {
			b.WriteString(helpers.Line(v))
		}
	}
	if b.Len() == 0 {
		return nil
	}
	return []eprints.Element{eprints.NewText("title", b.String())}
}

// Author maps 100 $a to a creators list with one structured name.
func Author(f marc.DataField) []eprints.Element {
	v, ok := present(f, "a")
	if !ok {
		return nil
	}
	family, given := helpers.SplitInverted(helpers.Clean(v))
	name := eprints.NewList("name",
		eprints.NewText("family", family),
		eprints.NewText("given", given),
	)
	return []eprints.Element{
		eprints.NewList("creators", eprints.NewList(eprints.ItemElement, name)),
	}
}

// Publication maps 264 $b to publisher and 264 $c to date.
func Publication(f marc.DataField) []eprints.Element {
	var elems []eprints.Element
	if v, ok := present(f, "b"); ok {
		elems = append(elems, eprints.NewText("publisher", helpers.Line(v)))
	}
	if v, ok := present(f, "c"); ok {
		elems = append(elems, eprints.NewText("date", helpers.Line(v)))
	}
	return elems
}

// Subjects maps 653 $a to a subjects list holding one item.
func Subjects(f marc.DataField) []eprints.Element {
	v, ok := present(f, "a")
	if !ok {
		return nil
	}
	return []eprints.Element{
		eprints.NewList("subjects", eprints.NewText(eprints.ItemElement, helpers.Line(v))),
	}
}

// present returns the first subfield with code when it has content.
func present(f marc.DataField, code string) (string, bool) {
	v, ok := f.Subfield(code)
	if !ok || !helpers.NonEmpty(v) {
		return "", false
	}
	return v, true
}
