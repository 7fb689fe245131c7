package helpers

import "strings"

// SplitInverted splits a name in "Family, Given" form at the first comma.
// The family part is everything before the comma, or the whole name when
// there is none. The given part is everything after the comma and keeps
// its leading space: "Smith, John" yields "Smith" and " John".
func SplitInverted(name string) (family, given string) {
	family, given, _ = strings.Cut(name, ",")
	return family, given
}
