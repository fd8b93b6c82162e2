package reconcile

import (
	"context"
	"fmt"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/logger"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reconcile checks source against reference with the given rules and returns the
// aggregated findings. Reference may be nil; rules that need it are then reported as
// diagnostics. An invariant violation on either dataset aborts the run.
func Reconcile(ctx context.Context, source, reference *record.Dataset, defs []rules.Definition, cfg match.Config, opts ...Option) (*Result, error) {
	o := options{logger: zap.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	log := logger.WithRunID(o.logger, o.runID)
	if o.strategy != "" {
		cfg.Strategy = o.strategy
	}
	if o.prefixPattern != "" {
		cfg.PrefixPattern = o.prefixPattern
	}

	// Validate both sides before anything is evaluated
	if source == nil {
		return nil, errors.NewInvariantViolation(string(record.SideSource), "", "no source dataset supplied")
	}
	if err := validate(source, record.SideSource); err != nil {
		return nil, err
	}
	if reference != nil {
		if err := validate(reference, record.SideReference); err != nil {
			return nil, err
		}
	}

	// Registration rejects duplicate ids and fills defaults
	registry := rules.NewRegistry()
	if err := registry.Register(defs...); err != nil {
		return nil, err
	}
	defs = registry.All()

	sk, rk := cfg.SourceKey, cfg.ReferenceKey
	if sk == "" {
		sk = source.IDAttribute
	}
	run := rules.Run{Source: source, Reference: reference, SourceKey: sk}
	var stats match.Stats
	if reference != nil {
		matcher := match.New(cfg, match.WithLogger(log))
		results, err := matcher.Match(source, reference)
		if err != nil {
			return nil, err
		}
		_, rk = matcher.Keys(source, reference)
		run.Matches = results
		run.ReferenceKey = rk
		stats = match.Summarize(results)
	} else if !source.Schema.Has(sk) {
		return nil, errors.NewInvariantViolation(string(record.SideSource), source.Name,
			fmt.Sprintf("match key %q missing from schema", sk))
	}

	log.Info("Reconciliation started",
		zap.String("source", source.Name),
		zap.Int("source_records", source.Len()),
		zap.Int("reference_records", reference.Len()),
		zap.Int("rules", len(defs)))

	engine := rules.NewEngine(rules.WithLogger(log), rules.WithWorkers(o.workers))
	findings, diagnostics, err := engine.EvaluateAll(ctx, defs, run)
	if err != nil {
		return nil, err
	}

	agg := finding.NewAggregator(rules.SingleRuleIDs(defs)...)
	agg.Add(findings...)

	res := &Result{
		RunID:       o.runID,
		Findings:    agg.Findings(),
		Diagnostics: diagnostics,
		Summary: Summary{
			SourceRecords:    source.Len(),
			ReferenceRecords: reference.Len(),
			Matched:          stats.Matched,
			Unmatched:        stats.Unmatched,
			MultiMatched:     stats.Ambiguous,
			Malformed:        countBlank(source, sk),
			Rules:            len(defs),
			Skipped:          len(diagnostics),
			Findings:         agg.Total(),
			ByRule:           agg.Counts(),
		},
	}
	if res.Findings == nil {
		res.Findings = []finding.Finding{}
	}
	if res.Diagnostics == nil {
		res.Diagnostics = []rules.Diagnostic{}
	}

	log.Info("Reconciliation finished",
		zap.Int("findings", res.Summary.Findings),
		zap.Int("skipped_rules", res.Summary.Skipped),
		zap.Int("matched", res.Summary.Matched),
		zap.Int("unmatched", res.Summary.Unmatched))

	return res, nil
}

// Run resolves the rules and keys of an adapter and reconciles the datasets.
func Run(ctx context.Context, adapter Adapter, direction Direction, source, reference *record.Dataset, opts ...Option) (*Result, error) {
	if source == nil {
		return nil, errors.NewInvariantViolation(string(record.SideSource), "", "no source dataset supplied")
	}
	var refSchema record.Schema
	if reference != nil {
		refSchema = reference.Schema
	}
	cfg := adapter.Keys(source.Schema, refSchema)
	source = keyed(source, cfg.SourceKey)
	if reference != nil {
		reference = keyed(reference, cfg.ReferenceKey)
	}
	return Reconcile(ctx, source, reference, adapter.Rules(direction), cfg, opts...)
}

// keyed returns the dataset with key as its identifier attribute, copying when it differs.
func keyed(d *record.Dataset, key string) *record.Dataset {
	if key == "" || key == d.IDAttribute {
		return d
	}
	cp := *d
	cp.IDAttribute = key
	return &cp
}

func validate(d *record.Dataset, side record.Side) error {
	if d.Side == "" {
		named := *d
		named.Side = side
		return named.Validate()
	}
	if d.Side != side {
		return errors.NewInvariantViolation(string(side), d.Name,
			fmt.Sprintf("dataset is declared as %s", d.Side))
	}
	return d.Validate()
}

func countBlank(d *record.Dataset, key string) int {
	n := 0
	for _, rec := range d.Records {
		if rec.Get(key).IsBlank() {
			n++
		}
	}
	return n
}
