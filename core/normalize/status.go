package normalize

import (
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
)

const statusNoise = ",; \t\r\n\u00A0"

// StatusText strips surrounding whitespace and trailing separator noise from an enumerated
// value. Blank input yields record.EmptyToken.
func StatusText(s string) string {
	t := strings.TrimRight(strings.TrimSpace(s), statusNoise)
	if t == "" {
		return record.EmptyToken
	}
	return t
}

// Status normalizes a status cell; absent and empty values yield record.EmptyToken.
func Status(v record.Value) string {
	if v.IsBlank() {
		return record.EmptyToken
	}
	return StatusText(v.String())
}

// StatusSet is an allow- or deny-list of normalized status values.
type StatusSet struct {
	values []string
	index  map[string]struct{}
	fold   bool
}

// NewStatusSet builds a case-sensitive set. Members are normalized like cell values.
func NewStatusSet(values ...string) StatusSet {
	return newStatusSet(false, values)
}

// NewFoldedStatusSet builds a set that ignores letter case.
func NewFoldedStatusSet(values ...string) StatusSet {
	return newStatusSet(true, values)
}

func newStatusSet(fold bool, values []string) StatusSet {
	s := StatusSet{index: make(map[string]struct{}, len(values)), fold: fold}
	for _, v := range values {
		n := StatusText(v)
		k := s.key(n)
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = struct{}{}
		s.values = append(s.values, n)
	}
	return s
}

func (s StatusSet) key(v string) string {
	if s.fold {
		return strings.ToLower(v)
	}
	return v
}

// Contains reports whether the normalized status of v is a member.
func (s StatusSet) Contains(v record.Value) bool {
	return s.ContainsText(Status(v))
}

// ContainsText reports whether the normalized text is a member.
func (s StatusSet) ContainsText(text string) bool {
	_, ok := s.index[s.key(StatusText(text))]
	return ok
}

// Values returns the members in insertion order.
func (s StatusSet) Values() []string {
	return append([]string(nil), s.values...)
}

// Len returns the number of members.
func (s StatusSet) Len() int { return len(s.values) }

// String renders the members for issue texts, e.g. 'a', 'b'.
func (s StatusSet) String() string {
	quoted := make([]string, len(s.values))
	for i, v := range s.values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
