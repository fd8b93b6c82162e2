package rules

import (
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
)

// Arity selects the records a predicate is evaluated on.
type Arity string

const (
	Unary     Arity = "unary"
	Pair      Arity = "pair"
	Unmatched Arity = "unmatched"
)

// Locus selects the dataset whose row a finding points at.
type Locus string

const (
	LocusSource    Locus = "source"
	LocusReference Locus = "reference"
)

// Requirements lists the attributes a rule reads.
type Requirements struct {
	// Source attributes must all exist in the source schema.
	Source []string
	// Reference attributes must all exist in the reference schema.
	Reference []string
	// SourceAny needs at least one of its attributes in the source schema.
	SourceAny []string
}

// Predicate inspects one input and returns a violation, or nil when the rule holds.
type Predicate func(in Input) *Violation

// Violation is what a predicate reports; the Engine turns it into a finding.Finding.
type Violation struct {
	Attributes []string
	Issue      string
	Detail     string
	Values     []finding.TextPair
}

// Definition is one reconciliation rule.
type Definition struct {
	// ID is unique within a rule set, e.g. "SDV01-04".
	ID string `json:"id"`

	// Title is a short description for listings.
	Title string `json:"title"`

	// Arity selects the records the predicate sees.
	Arity Arity `json:"arity"`

	// Requires lists the attributes checked by the schema guard.
	Requires Requirements `json:"-"`

	// RequiresFor adds requirements that depend on the schemas of the run, for rules whose
	// compared attributes vary with the export flavour. Optional.
	RequiresFor func(source, reference record.Schema) Requirements `json:"-"`

	// Profile is the normalization profile used by Input.SrcNorm and Input.RefNorm.
	// The zero value selects normalize.Default.
	Profile normalize.Profile `json:"-"`

	// Locus selects the row reported in findings. Defaults to the source row.
	Locus Locus `json:"locus"`

	// SingleFindingPerRecord keeps only the first finding per identifier.
	SingleFindingPerRecord bool `json:"single_finding_per_record"`

	// Predicate evaluates one input.
	Predicate Predicate `json:"-"`
}

// NeedsReference reports whether the rule reads the reference dataset.
func (d Definition) NeedsReference() bool {
	return d.Arity == Pair || d.Arity == Unmatched || len(d.Requires.Reference) > 0
}

// Requirements merges the static requirements with those derived from the schemas.
func (d Definition) Requirements(source, reference record.Schema) Requirements {
	req := Requirements{
		Source:    append([]string(nil), d.Requires.Source...),
		Reference: append([]string(nil), d.Requires.Reference...),
		SourceAny: append([]string(nil), d.Requires.SourceAny...),
	}
	if d.RequiresFor != nil {
		extra := d.RequiresFor(source, reference)
		req.Source = appendMissing(req.Source, extra.Source...)
		req.Reference = appendMissing(req.Reference, extra.Reference...)
		req.SourceAny = appendMissing(req.SourceAny, extra.SourceAny...)
	}
	return req
}

func appendMissing(list []string, names ...string) []string {
	for _, n := range names {
		if !record.Schema(list).Has(n) {
			list = append(list, n)
		}
	}
	return list
}

// SingleRuleIDs returns the ids of rules deduplicated per record.
func SingleRuleIDs(defs []Definition) []string {
	var ids []string
	for _, d := range defs {
		if d.SingleFindingPerRecord {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Input is what a predicate sees for one evaluation.
type Input struct {
	// RuleID is the id of the evaluated rule.
	RuleID string
	// Source is the source record.
	Source record.Record
	// Reference is the matched reference record; meaningful only when HasReference is set.
	Reference record.Record
	// HasReference is set for Pair rules.
	HasReference bool
	// Identifier is the trimmed source identifier, empty when blank.
	Identifier string
	// IdentifierAttribute is the source key attribute, e.g. "Object ID" or "ReqIF.ForeignID".
	IdentifierAttribute string
	// SourceName and ReferenceName are the dataset names, for details that cite files.
	SourceName    string
	ReferenceName string
	// SourceSchema and ReferenceSchema let rules adapt to optional attributes.
	SourceSchema    record.Schema
	ReferenceSchema record.Schema
	// Profile is the rule's normalization profile.
	Profile normalize.Profile
}

// Src returns a source attribute value; attributes outside the schema are absent.
func (in Input) Src(attr string) record.Value { return in.Source.Get(attr) }

// Ref returns a reference attribute value, absent when there is no reference record.
func (in Input) Ref(attr string) record.Value {
	if !in.HasReference {
		return record.Absent()
	}
	return in.Reference.Get(attr)
}

// SrcNorm returns the normalized source value under the rule's profile.
func (in Input) SrcNorm(attr string) string { return normalize.NormalizeValue(in.Src(attr), in.Profile) }

// RefNorm returns the normalized reference value under the rule's profile.
func (in Input) RefNorm(attr string) string { return normalize.NormalizeValue(in.Ref(attr), in.Profile) }

// SrcStatus returns the normalized source status; blanks yield record.EmptyToken.
func (in Input) SrcStatus(attr string) string { return normalize.Status(in.Src(attr)) }

// RefStatus returns the normalized reference status; blanks yield record.EmptyToken.
func (in Input) RefStatus(attr string) string { return normalize.Status(in.Ref(attr)) }

// TextDiffers compares a source and a reference attribute under the rule's profile.
func (in Input) TextDiffers(srcAttr, refAttr string) bool {
	return in.SrcNorm(srcAttr) != in.RefNorm(refAttr)
}

// TextPair captures the raw values of a source and a reference attribute.
func (in Input) TextPair(srcAttr, refAttr string) finding.TextPair {
	label := srcAttr
	if srcAttr != refAttr {
		label = srcAttr + " vs " + refAttr
	}
	return finding.TextPair{
		Attribute: label,
		Source:    in.Src(srcAttr).String(),
		Reference: in.Ref(refAttr).String(),
	}
}
