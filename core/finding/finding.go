package finding

import (
	"fmt"
	"strings"
)

// TextPair holds the two raw values a finding is about, for diff rendering.
type TextPair struct {
	// Attribute names the compared attributes, e.g. "ReqIF.Text vs Object Text".
	Attribute string `json:"attribute"`
	// Source is the raw source-side value.
	Source string `json:"source"`
	// Reference is the raw reference-side value.
	Reference string `json:"reference"`
	// Categorical selects whole-value marking instead of a character diff.
	Categorical bool `json:"categorical,omitempty"`
}

// Finding is one rule violation tied to a record.
type Finding struct {
	// RuleID is the id of the rule that fired.
	RuleID string `json:"rule_id"`
	// Row is the spreadsheet row of the record the finding points at.
	Row int `json:"row"`
	// Side is the dataset the row locus refers to.
	Side string `json:"side"`
	// Identifier is the record identifier, empty when the identifier cell is blank.
	Identifier string `json:"identifier,omitempty"`
	// IdentifierAttribute names the identifier column (e.g. "Object ID", "ReqIF.ForeignID").
	IdentifierAttribute string `json:"identifier_attribute,omitempty"`
	// Attributes lists the attributes involved.
	Attributes []string `json:"attributes"`
	// Issue is the human-readable violation text.
	Issue string `json:"issue"`
	// Detail holds the supporting values.
	Detail string `json:"detail"`
	// Values carries raw text pairs for diff rendering.
	Values []TextPair `json:"values,omitempty"`
}

// AttributeList joins the attributes the way reports show them.
func (f Finding) AttributeList() string {
	return strings.Join(f.Attributes, ", ")
}

// Locus identifies the record a finding is about, for dedupe and logs.
func (f Finding) Locus() string {
	if f.Identifier != "" {
		return f.Identifier
	}
	return fmt.Sprintf("row %d", f.Row)
}

// Key returns the dedupe key (rule id, locus).
func (f Finding) Key() Key {
	return Key{RuleID: f.RuleID, Locus: f.Locus()}
}

// Key identifies a (rule, record) pair.
type Key struct {
	RuleID string
	Locus  string
}
