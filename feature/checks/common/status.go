package common

import (
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
)

// Rejected is the manufacturer status of a requirement the customer dropped.
const Rejected = "verworfen"

// Changed is the manufacturer status of a new or changed requirement.
const Changed = "neu/geändert"

// Requirement is the Typ value of a requirement row.
const Requirement = "Anforderung"

// IsRejected reports whether the source status attribute reads "verworfen".
func IsRejected(in rules.Input, attr string) bool {
	return in.SrcStatus(attr) == Rejected
}

// EmptyAttributes returns the attributes whose source value is blank, in argument order.
func EmptyAttributes(in rules.Input, attrs ...string) []string {
	var empty []string
	for _, a := range attrs {
		if in.Src(a).IsBlank() {
			empty = append(empty, a)
		}
	}
	return empty
}

// Verb returns "is" for one attribute and "are" for several.
func Verb(attrs []string) string {
	if len(attrs) == 1 {
		return "is"
	}
	return "are"
}

// Join lists attribute names the way issues show them.
func Join(attrs []string) string {
	return strings.Join(attrs, ", ")
}

// Either renders values as "a, b or c", quoting each when quote is set.
func Either(values []string, quote bool) string {
	items := make([]string, len(values))
	for i, v := range values {
		if quote {
			v = "'" + v + "'"
		}
		items[i] = v
	}
	if len(items) < 2 {
		return strings.Join(items, "")
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
