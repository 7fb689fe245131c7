package mapping

import "sort"

// FieldInfo describes one entry of the dispatch table.
type FieldInfo struct {
	Tag       string   `yaml:"tag" json:"tag"`
	Name      string   `yaml:"name" json:"name"`
	Subfields []string `yaml:"subfields" json:"subfields"`
	Elements  []string `yaml:"elements" json:"elements"`
}

var fieldInfo = map[string]FieldInfo{
	TagTitle: {
		Name:      "title",
		Subfields: []string{"a", "b", "c"},
		Elements:  []string{"title"},
	},
	TagAuthor: {
		Name:      "author",
		Subfields: []string{"a"},
		Elements:  []string{"creators/item/name/family", "creators/item/name/given"},
	},
	TagPublication: {
		Name:      "publication",
		Subfields: []string{"b", "c"},
		Elements:  []string{"publisher", "date"},
	},
	TagSubjects: {
		Name:      "subjects",
		Subfields: []string{"a"},
		Elements:  []string{"subjects/item"},
	},
}

// Fields describes the tags handled by the default table, sorted by tag.
func Fields() []FieldInfo {
	table := DefaultTable()
	fields := make([]FieldInfo, 0, len(table))
	for tag := range table {
		info := fieldInfo[tag]
		info.Tag = tag
		fields = append(fields, info)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Tag < fields[j].Tag
	})
	return fields
}
