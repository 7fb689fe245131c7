package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/marc2eprints/eprints"
	"github.com/lehigh-university-libraries/marc2eprints/marc"
)

func field(tag string, pairs ...string) marc.DataField {
	f := marc.DataField{Tag: tag}
	for i := 0; i+1 < len(pairs); i += 2 {
		f.Subfields = append(f.Subfields, marc.Subfield{Code: pairs[i], Value: pairs[i+1]})
	}
	return f
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		field marc.DataField
		want  string
		none  bool
	}{
		{"a b c", field("245", "a", "Foo", "b", "Bar", "c", "Baz"), "Foo\nBar\nBaz\n", false},
		{"trimmed", field("245", "a", "  Foo : ", "c", " by Smith "), "Foo :\nby Smith\n", false},
		{"order is a b c", field("245", "c", "Baz", "a", "Foo"), "Foo\nBaz\n", false},
		{"b only", field("245", "b", "Bar"), "Bar\n", false},
		{"empty a", field("245", "a", "   ", "b", "Bar"), "Bar\n", false},
		{"nothing", field("245", "h", "[electronic resource]"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems := Title(tt.field)
			if tt.none {
				assert.Empty(t, elems)
				return
			}
			require.Len(t, elems, 1)
			assert.Equal(t, "title", elems[0].Name)
			assert.Equal(t, tt.want, elems[0].Text)
		})
	}
}

func TestAuthor(t *testing.T) {
	tests := []struct {
		input      string
		wantFamily string
		wantGiven  string
	}{
		{"Smith, John", "Smith", " John"},
		{"Smith", "Smith", ""},
		{"  Pérez, Ana  ", "Pérez", " Ana"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			elems := Author(field("100", "a", tt.input))
			require.Len(t, elems, 1)

			creators := elems[0]
			assert.Equal(t, "creators", creators.Name)
			require.Len(t, creators.Children, 1)

			item := creators.Children[0]
			assert.Equal(t, eprints.ItemElement, item.Name)
			name, ok := item.Child("name")
			require.True(t, ok)

			family, ok := name.Child("family")
			require.True(t, ok)
			given, ok := name.Child("given")
			require.True(t, ok)
			assert.Equal(t, tt.wantFamily, family.Text)
			assert.Equal(t, tt.wantGiven, given.Text)
		})
	}

	assert.Empty(t, Author(field("100", "d", "1950-")))
	assert.Empty(t, Author(field("100", "a", "")))
}

func TestPublication(t *testing.T) {
	elems := Publication(field("264", "c", "2020"))
	require.Len(t, elems, 1)
	assert.Equal(t, eprints.NewText("date", "2020\n"), elems[0])

	elems = Publication(field("264", "a", "Lima :", "b", " Fondo Editorial ", "c", "2021."))
	require.Len(t, elems, 2)
	assert.Equal(t, eprints.NewText("publisher", "Fondo Editorial\n"), elems[0])
	assert.Equal(t, eprints.NewText("date", "2021.\n"), elems[1])

	assert.Empty(t, Publication(field("264", "a", "Lima")))
}

func TestSubjects(t *testing.T) {
	elems := Subjects(field("653", "a", " Ingeniería "))
	require.Len(t, elems, 1)
	assert.Equal(t, "subjects", elems[0].Name)
	require.Len(t, elems[0].Children, 1)
	assert.Equal(t, eprints.NewText(eprints.ItemElement, "Ingeniería\n"), elems[0].Children[0])
}

func TestMapRecordRepeatedSubjectsStaySeparate(t *testing.T) {
	rec := &marc.Record{Fields: []marc.DataField{
		field("653", "a", "X"),
		field("653", "a", "Y"),
	}}

	out := MapRecord(rec)
	subjects := out.Find("subjects")
	require.Len(t, subjects, 2)
	assert.Equal(t, "X\n", subjects[0].Children[0].Text)
	assert.Equal(t, "Y\n", subjects[1].Children[0].Text)
}

func TestMapRecordRepeatedTitleAddsElement(t *testing.T) {
	rec := &marc.Record{Fields: []marc.DataField{
		field("245", "a", "First"),
		field("245", "b", "Second"),
	}}

	titles := MapRecord(rec).Find("title")
	require.Len(t, titles, 2)
	assert.Equal(t, "First\n", titles[0].Text)
	assert.Equal(t, "Second\n", titles[1].Text)
}

func TestMapRecordUnrecognizedTags(t *testing.T) {
	rec := &marc.Record{Fields: []marc.DataField{
		field("020", "a", "9780000000000"),
		field("700", "a", "Doe, Jane"),
		field("520", "a", "An abstract"),
	}}

	out := MapRecord(rec)
	assert.True(t, out.Empty())
}

func TestMapRecordFollowsFieldOrder(t *testing.T) {
	rec := &marc.Record{Fields: []marc.DataField{
		field("653", "a", "Tesis"),
		field("264", "b", "Universidad", "c", "2019"),
		field("100", "a", "Quispe, Rosa"),
		field("245", "a", "Un estudio"),
	}}

	out := MapRecord(rec)
	var names []string
	for _, e := range out.Elements {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"subjects", "publisher", "date", "creators", "title"}, names)
}

func TestMapRecords(t *testing.T) {
	records := []*marc.Record{
		{Index: 0, Fields: []marc.DataField{field("245", "a", "One")}},
		{Index: 1},
		{Index: 2, Fields: []marc.DataField{field("245", "a", "Three")}},
	}

	m := NewMapper(nil)
	doc := m.MapRecords(records)
	require.Equal(t, 3, doc.Len())

	first, ok := doc.Records[0].First("title")
	require.True(t, ok)
	assert.Equal(t, "One\n", first.Text)
	assert.True(t, doc.Records[1].Empty())
	third, ok := doc.Records[2].First("title")
	require.True(t, ok)
	assert.Equal(t, "Three\n", third.Text)
}

func TestFields(t *testing.T) {
	fields := Fields()
	require.Len(t, fields, 4)

	var tags []string
	for _, f := range fields {
		tags = append(tags, f.Tag)
		assert.NotEmpty(t, f.Name, "tag %s", f.Tag)
		assert.NotEmpty(t, f.Subfields, "tag %s", f.Tag)
	}
	assert.Equal(t, []string{"100", "245", "264", "653"}, tags)

	m := NewMapper(nil)
	assert.True(t, m.Handles("245"))
	assert.False(t, m.Handles("700"))
}
