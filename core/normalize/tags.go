package normalize

import (
	"strings"
	"unicode"
)

// SplitTags splits a delimited tag list on any run of commas and whitespace.
func SplitTags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// TagSet returns the distinct tags of s.
func TagSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range SplitTags(s) {
		set[t] = struct{}{}
	}
	return set
}

// EqualTags reports whether both lists hold the same tags regardless of order and separators.
func EqualTags(a, b string) bool {
	sa, sb := TagSet(a), TagSet(b)
	if len(sa) != len(sb) {
		return false
	}
	for t := range sa {
		if _, ok := sb[t]; !ok {
			return false
		}
	}
	return true
}
