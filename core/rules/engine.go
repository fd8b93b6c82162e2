package rules

import (
	"context"
	"fmt"
	"runtime"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run is the input shared by every rule of one reconciliation.
type Run struct {
	// Source is the customer-side dataset.
	Source *record.Dataset
	// Reference is the supplier-side dataset; nil for unary-only runs.
	Reference *record.Dataset
	// Matches are the match results of Source against Reference, in source order.
	Matches []match.Result
	// SourceKey and ReferenceKey are the identifier attributes used for matching.
	SourceKey    string
	ReferenceKey string
}

func (r Run) sourceKey() string {
	if r.SourceKey != "" {
		return r.SourceKey
	}
	return r.Source.IDAttribute
}

func (r Run) referenceKey() string {
	if r.ReferenceKey != "" {
		return r.ReferenceKey
	}
	if r.Reference == nil {
		return ""
	}
	return r.Reference.IDAttribute
}

// Engine evaluates rule definitions.
type Engine struct {
	logger  *zap.Logger
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithWorkers sets how many rules are evaluated concurrently. Values below 1 select
// GOMAXPROCS; 1 evaluates sequentially.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

// Evaluate runs one rule. A rule that fails the schema guard returns no findings and
// one diagnostic.
func (e *Engine) Evaluate(ctx context.Context, def Definition, run Run) ([]finding.Finding, *Diagnostic, error) {
	if run.Source == nil {
		return nil, nil, errors.NewInvariantViolation(string(record.SideSource), "", "no source dataset supplied")
	}
	if diag := guard(def, run); diag != nil {
		e.logger.Info("Rule skipped",
			zap.String("rule", def.ID),
			zap.String("kind", string(diag.Kind)),
			zap.String("side", diag.Side),
			zap.Strings("missing", diag.Missing))
		return nil, diag, nil
	}

	var (
		out []finding.Finding
		err error
	)
	switch def.Arity {
	case Unary:
		out, err = e.evaluateUnary(ctx, def, run)
	case Pair:
		out, err = e.evaluatePairs(ctx, def, run)
	case Unmatched:
		out, err = e.evaluateUnmatched(ctx, def, run)
	default:
		err = fmt.Errorf("rule %s has unknown arity %q", def.ID, def.Arity)
	}
	if err != nil {
		return nil, nil, err
	}

	e.logger.Debug("Rule evaluated", zap.String("rule", def.ID), zap.Int("findings", len(out)))
	return out, nil, nil
}

type outcome struct {
	findings   []finding.Finding
	diagnostic *Diagnostic
}

// EvaluateAll runs every rule and merges findings and diagnostics in rule order, regardless
// of how many rules ran concurrently. The first error cancels the remaining rules.
func (e *Engine) EvaluateAll(ctx context.Context, defs []Definition, run Run) ([]finding.Finding, []Diagnostic, error) {
	outcomes := make([]outcome, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range defs {
		g.Go(func() error {
			fs, diag, err := e.Evaluate(gctx, defs[i], run)
			if err != nil {
				return err
			}
			outcomes[i] = outcome{findings: fs, diagnostic: diag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		findings    []finding.Finding
		diagnostics []Diagnostic
	)
	for _, o := range outcomes {
		findings = append(findings, o.findings...)
		if o.diagnostic != nil {
			diagnostics = append(diagnostics, *o.diagnostic)
		}
	}
	return findings, diagnostics, nil
}

// guard checks the rule's attribute requirements against both schemas. It returns at most
// one diagnostic; the source side is reported first.
func guard(def Definition, run Run) *Diagnostic {
	if def.NeedsReference() && run.Reference == nil {
		return referenceMissing(def.ID)
	}
	src := run.Source.Schema
	var ref record.Schema
	if run.Reference != nil {
		ref = run.Reference.Schema
	}
	req := def.Requirements(src, ref)
	missing := src.Missing(req.Source...)
	if len(req.SourceAny) > 0 && len(src.Available(req.SourceAny...)) == 0 {
		missing = append(missing, req.SourceAny...)
	}
	if len(missing) > 0 {
		return schemaGap(def.ID, string(record.SideSource), missing)
	}
	if run.Reference != nil && len(req.Reference) > 0 {
		if missing := ref.Missing(req.Reference...); len(missing) > 0 {
			return schemaGap(def.ID, string(record.SideReference), missing)
		}
	}
	return nil
}

func newInput(def Definition, run Run, src record.Record) Input {
	in := Input{
		RuleID:              def.ID,
		Source:              src,
		Identifier:          src.Get(run.sourceKey()).Trimmed(),
		IdentifierAttribute: run.sourceKey(),
		SourceName:          run.Source.Name,
		SourceSchema:        run.Source.Schema,
		Profile:             def.Profile,
	}
	if in.Profile == (normalize.Profile{}) {
		in.Profile = normalize.Default
	}
	if run.Reference != nil {
		in.ReferenceName = run.Reference.Name
		in.ReferenceSchema = run.Reference.Schema
	}
	return in
}

func (e *Engine) evaluateUnary(ctx context.Context, def Definition, run Run) ([]finding.Finding, error) {
	var out []finding.Finding
	for _, rec := range run.Source.Records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		in := newInput(def, run, rec)
		if f, ok, err := e.apply(def, run, in); err != nil {
			return nil, err
		} else if ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (e *Engine) evaluatePairs(ctx context.Context, def Definition, run Run) ([]finding.Finding, error) {
	var out []finding.Finding
	for _, m := range run.Matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, ref := range m.References {
			in := newInput(def, run, m.Source)
			in.Reference = ref
			in.HasReference = true
			if f, ok, err := e.apply(def, run, in); err != nil {
				return nil, err
			} else if ok {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

func (e *Engine) evaluateUnmatched(ctx context.Context, def Definition, run Run) ([]finding.Finding, error) {
	var out []finding.Finding
	for _, m := range run.Matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if m.Matched() {
			continue
		}
		in := newInput(def, run, m.Source)
		if f, ok, err := e.apply(def, run, in); err != nil {
			return nil, err
		} else if ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// apply calls the predicate and builds the finding. A panicking predicate is reported as an
// invariant violation on the record it failed on.
func (e *Engine) apply(def Definition, run Run, in Input) (f finding.Finding, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewInvariantViolation(string(record.SideSource), run.Source.Name,
				fmt.Sprintf("rule %s failed on row %d: %v", def.ID, in.Source.Row, r))
			ok = false
		}
	}()

	v := def.Predicate(in)
	if v == nil {
		return finding.Finding{}, false, nil
	}

	f = finding.Finding{
		RuleID:              def.ID,
		Row:                 in.Source.Row,
		Side:                string(record.SideSource),
		Identifier:          in.Identifier,
		IdentifierAttribute: run.sourceKey(),
		Attributes:          v.Attributes,
		Issue:               v.Issue,
		Detail:              v.Detail,
		Values:              v.Values,
	}
	if def.Locus == LocusReference && in.HasReference {
		f.Row = in.Reference.Row
		f.Side = string(record.SideReference)
		f.IdentifierAttribute = run.referenceKey()
		if id := in.Reference.Get(run.referenceKey()).Trimmed(); id != "" {
			f.Identifier = id
		}
	}
	return f, true, nil
}
