// Package helpers provides text utilities shared by the field handlers.
package helpers

import "strings"

// Clean trims leading and trailing whitespace.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// Line returns the trimmed value terminated by a newline, the layout
// EPrints-XML text values carry.
func Line(s string) string {
	return strings.TrimSpace(s) + "\n"
}

// NonEmpty reports whether s has any non-whitespace content.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
