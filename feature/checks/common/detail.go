package common

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
)

const (
	separator = "---------------"
	indent    = "       "
)

// Detail builds the multi-line value text of a finding.
type Detail struct {
	lines []string
}

// NewDetail starts a detail.
func NewDetail() *Detail {
	return &Detail{}
}

// Field appends "name: value".
func (d *Detail) Field(name, value string) *Detail {
	d.lines = append(d.lines, name+": "+value)
	return d
}

// Indented appends an indented "name: value".
func (d *Detail) Indented(name, value string) *Detail {
	d.lines = append(d.lines, indent+name+": "+value)
	return d
}

// Line appends a formatted line.
func (d *Detail) Line(format string, args ...any) *Detail {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
	return d
}

// Separator appends the section rule.
func (d *Detail) Separator() *Detail {
	d.lines = append(d.lines, separator)
	return d
}

// Blank appends an empty line.
func (d *Detail) Blank() *Detail {
	d.lines = append(d.lines, "")
	return d
}

// String joins the lines.
func (d *Detail) String() string {
	return strings.Join(d.lines, "\n")
}

// Inline joins "name: value" pairs on one line, e.g. "A: 1, B: 2".
func Inline(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, pairs[i]+": "+pairs[i+1])
	}
	return strings.Join(parts, ", ")
}

// FileName returns the base name of a dataset name, or "unknown" when it is blank.
func FileName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "unknown"
	}
	return filepath.Base(name)
}

// CustomerFile appends the customer file block with one value line.
func (d *Detail) CustomerFile(in rules.Input, label, value string) *Detail {
	d.Separator()
	d.Indented("Customer File Name", FileName(in.SourceName))
	if label != "" {
		d.Indented(label, value)
	}
	return d
}

// BoschFile appends the supplier file block with one value line.
func (d *Detail) BoschFile(in rules.Input, label, value string) *Detail {
	d.Separator()
	d.Indented("Bosch File Name", FileName(in.ReferenceName))
	if label != "" {
		d.Indented(label, value)
	}
	return d
}
