package record

import "strings"

// EmptyToken is the literal shown in findings in place of a blank value.
const EmptyToken = "Empty"

type state uint8

const (
	stateAbsent state = iota
	stateEmpty
	stateScalar
)

// Value is a single cell value. The zero Value is absent.
type Value struct {
	state state
	text  string
}

// Absent returns the value of an attribute that does not exist in the record.
func Absent() Value { return Value{state: stateAbsent} }

// Empty returns the value of a present but blank cell.
func Empty() Value { return Value{state: stateEmpty} }

// Scalar returns a value holding text. Blank text yields an empty value.
func Scalar(text string) Value {
	if strings.TrimSpace(text) == "" {
		return Empty()
	}
	return Value{state: stateScalar, text: text}
}

// NewValue is an alias of Scalar for cells read from a document.
func NewValue(raw string) Value { return Scalar(raw) }

// IsAbsent reports whether the attribute is missing from the record.
func (v Value) IsAbsent() bool { return v.state == stateAbsent }

// IsEmpty reports whether the attribute is present but blank.
func (v Value) IsEmpty() bool { return v.state == stateEmpty }

// IsBlank reports whether the value is absent or empty.
func (v Value) IsBlank() bool { return v.state != stateScalar }

// IsSet reports whether the value holds text.
func (v Value) IsSet() bool { return v.state == stateScalar }

// String returns the raw text, or "" for absent and empty values.
func (v Value) String() string { return v.text }

// Trimmed returns the raw text without surrounding whitespace.
func (v Value) Trimmed() string { return strings.TrimSpace(v.text) }

// Display returns the raw text, or EmptyToken for absent and empty values.
func (v Value) Display() string {
	if v.IsBlank() {
		return EmptyToken
	}
	return v.text
}
