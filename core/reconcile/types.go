package reconcile

import (
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"

	"go.uber.org/zap"
)

// Config holds the defaults of a check run (viper section "check").
type Config struct {
	// Project selects the rule family (ppe, ssp, sdv01).
	Project string `mapstructure:"project" default:"ppe"`
	// Direction is import or export.
	Direction string `mapstructure:"direction" default:"import"`
	// Workers is the number of rules evaluated concurrently. 0 uses all CPUs.
	Workers int `mapstructure:"workers" default:"4"`
	// Strategy overrides the match strategy of the project (exact or fuzzy).
	Strategy string `mapstructure:"strategy"`
	// PrefixPattern is stripped from reference names by fuzzy matching.
	PrefixPattern string `mapstructure:"prefix_pattern"`
}

// Result is the output of one reconciliation run.
type Result struct {
	// RunID correlates the run with its log lines.
	RunID string `json:"run_id"`

	// Findings are the aggregated rule violations in rule order, then record order.
	Findings []finding.Finding `json:"findings"`

	// Diagnostics list the rules skipped because of schema gaps or a missing reference.
	Diagnostics []rules.Diagnostic `json:"diagnostics"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a run.
type Summary struct {
	// SourceRecords is the number of source records.
	SourceRecords int `json:"source_records"`

	// ReferenceRecords is the number of reference records.
	ReferenceRecords int `json:"reference_records"`

	// Matched counts source records with at least one reference record.
	Matched int `json:"matched"`

	// Unmatched counts source records without a reference record.
	Unmatched int `json:"unmatched"`

	// MultiMatched counts source records matching several reference records.
	MultiMatched int `json:"multi_matched"`

	// Malformed counts source records with a blank identifier.
	Malformed int `json:"malformed"`

	// Rules is the number of rules in the rule set.
	Rules int `json:"rules"`

	// Skipped is the number of rules that produced a diagnostic instead of running.
	Skipped int `json:"skipped"`

	// Findings is the total number of findings.
	Findings int `json:"findings"`

	// ByRule lists finding counts per rule in order of first appearance.
	ByRule []finding.RuleCount `json:"by_rule"`
}

// Option configures a run.
type Option func(*options)

type options struct {
	logger        *zap.Logger
	workers       int
	runID         string
	strategy      match.Strategy
	prefixPattern string
}

// WithLogger sets the logger; the run id is attached to every entry.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers sets how many rules are evaluated concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithRunID sets the run id instead of generating one.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}

// WithStrategy overrides the match strategy and fuzzy prefix pattern chosen by the caller
// or adapter. Empty values keep the original.
func WithStrategy(strategy match.Strategy, prefixPattern string) Option {
	return func(o *options) {
		o.strategy = strategy
		o.prefixPattern = prefixPattern
	}
}
