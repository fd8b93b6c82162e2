package report

import (
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/diff"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
)

// Report is the presentation of one reconciliation run.
type Report struct {
	// RunID correlates the report with the run's log lines.
	RunID string `json:"run_id"`
	// Project and Direction name the rule set that produced the findings.
	Project   string `json:"project,omitempty"`
	Direction string `json:"direction,omitempty"`
	// SourceName and ReferenceName are the dataset names (usually file names).
	SourceName    string `json:"source_name"`
	ReferenceName string `json:"reference_name,omitempty"`
	// Entries are the findings in result order, numbered from 1.
	Entries []Entry `json:"entries"`
	// Diagnostics are the rules that could not run.
	Diagnostics []rules.Diagnostic `json:"diagnostics"`
	// Summary is the run summary.
	Summary reconcile.Summary `json:"summary"`
	// Translations lists the requirements needing a new translation.
	Translations *Table `json:"translations,omitempty"`
	// Updates lists the requirements with a detected supplier update.
	Updates *Table `json:"updates,omitempty"`
}

// Entry is one numbered finding.
type Entry struct {
	Number              int     `json:"number"`
	RuleID              string  `json:"rule_id"`
	Row                 int     `json:"row"`
	Side                string  `json:"side"`
	Identifier          string  `json:"identifier,omitempty"`
	IdentifierAttribute string  `json:"identifier_attribute,omitempty"`
	Attributes          string  `json:"attributes"`
	Issue               string  `json:"issue"`
	Detail              string  `json:"detail"`
	Values              []Value `json:"values,omitempty"`
}

// Value is a compared pair with diff markup applied.
type Value struct {
	Attribute string `json:"attribute"`
	Source    string `json:"source"`
	Reference string `json:"reference"`
}

// Options selects the rules feeding the follow-up lists.
type Options struct {
	// Project and Direction are copied into the report.
	Project   string
	Direction string
	// TranslationRules are the rules whose findings are translation candidates.
	TranslationRules []string
	// UpdateRules are the rules whose findings are update candidates.
	UpdateRules []string
}

// DefaultOptions returns the follow-up rule lists of the built-in projects.
func DefaultOptions() Options {
	return Options{
		TranslationRules: []string{"SSP-06", "SDV01-05"},
		UpdateRules:      []string{"PPE-07", "SDV01-06"},
	}
}

// Build creates the report of a result. A nil renderer marks differences with brackets.
func Build(res *reconcile.Result, source, reference *record.Dataset, renderer *diff.Renderer, opts Options) *Report {
	if renderer == nil {
		renderer = diff.New(diff.Brackets)
	}

	rep := &Report{
		RunID:       res.RunID,
		Project:     opts.Project,
		Direction:   opts.Direction,
		Entries:     make([]Entry, 0, len(res.Findings)),
		Diagnostics: res.Diagnostics,
		Summary:     res.Summary,
	}
	if source != nil {
		rep.SourceName = source.Name
	}
	if reference != nil {
		rep.ReferenceName = reference.Name
	}

	for i, f := range res.Findings {
		e := Entry{
			Number:              i + 1,
			RuleID:              f.RuleID,
			Row:                 f.Row,
			Side:                f.Side,
			Identifier:          f.Identifier,
			IdentifierAttribute: f.IdentifierAttribute,
			Attributes:          f.AttributeList(),
			Issue:               f.Issue,
			Detail:              f.Detail,
		}
		for _, p := range f.Values {
			src, ref := renderer.Pair(p)
			e.Values = append(e.Values, Value{Attribute: p.Attribute, Source: src, Reference: ref})
		}
		rep.Entries = append(rep.Entries, e)
	}

	if t := TranslationCandidates(res.Findings, opts.TranslationRules...); t.Len() > 0 {
		rep.Translations = t
	}
	if t := UpdateCandidates(res.Findings, opts.UpdateRules...); t.Len() > 0 {
		rep.Updates = t
	}
	return rep
}
