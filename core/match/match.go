package match

import (
	"fmt"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"

	"go.uber.org/zap"
)

// Strategy selects how identifiers are compared.
type Strategy string

const (
	StrategyExact Strategy = "exact"
	StrategyFuzzy Strategy = "fuzzy"
)

// Kind describes how a result was matched.
type Kind string

const (
	KindExact Kind = "exact"
	KindFuzzy Kind = "fuzzy"
	KindNone  Kind = "none"
)

// Config selects the key attributes and strategy of a match.
type Config struct {
	// SourceKey is the identifier attribute of the source dataset. Empty uses the dataset's own.
	SourceKey string `mapstructure:"source_key" json:"source_key"`
	// ReferenceKey is the identifier attribute of the reference dataset. Empty uses the dataset's own.
	ReferenceKey string `mapstructure:"reference_key" json:"reference_key"`
	// Strategy is exact or fuzzy.
	Strategy Strategy `mapstructure:"strategy" json:"strategy" default:"exact"`
	// PrefixPattern is stripped from reference names by the fuzzy strategy.
	PrefixPattern string `mapstructure:"prefix_pattern" json:"prefix_pattern"`
}

// Result associates one source record with its reference records.
type Result struct {
	Source     record.Record
	Identifier string
	References []record.Record
	Kind       Kind
}

// Matched reports whether at least one reference record was found.
func (r Result) Matched() bool { return len(r.References) > 0 }

// Ambiguous reports whether several reference records share the identifier.
func (r Result) Ambiguous() bool { return len(r.References) > 1 }

// Matcher joins datasets according to a Config.
type Matcher struct {
	cfg    Config
	logger *zap.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets the logger for debug traces.
func WithLogger(l *zap.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a Matcher.
func New(cfg Config, opts ...Option) *Matcher {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyExact
	}
	m := &Matcher{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match is shorthand for New(cfg, opts...).Match(source, reference).
func Match(source, reference *record.Dataset, cfg Config, opts ...Option) ([]Result, error) {
	return New(cfg, opts...).Match(source, reference)
}

// Keys returns the effective key attributes for the datasets.
func (m *Matcher) Keys(source, reference *record.Dataset) (string, string) {
	sk, rk := m.cfg.SourceKey, m.cfg.ReferenceKey
	if sk == "" {
		sk = source.IDAttribute
	}
	if rk == "" {
		rk = reference.IDAttribute
	}
	return sk, rk
}

// Match returns one Result per source record with a non-blank identifier, in source order.
func (m *Matcher) Match(source, reference *record.Dataset) ([]Result, error) {
	if source == nil || reference == nil {
		return nil, fmt.Errorf("%w: match needs both datasets", errors.ErrInvariantViolation)
	}
	sk, rk := m.Keys(source, reference)
	if !source.Schema.Has(sk) {
		return nil, errors.NewInvariantViolation(string(record.SideSource), source.Name,
			fmt.Sprintf("match key %q missing from schema", sk))
	}
	if !reference.Schema.Has(rk) {
		return nil, errors.NewInvariantViolation(string(record.SideReference), reference.Name,
			fmt.Sprintf("match key %q missing from schema", rk))
	}

	lookup, kind, err := m.lookup(reference, rk)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(source.Records))
	for _, rec := range source.Records {
		id := rec.Get(sk)
		if id.IsBlank() {
			m.logger.Debug("Skipping record with blank identifier",
				zap.String("dataset", source.Name),
				zap.Int("row", rec.Row),
				zap.String("key", sk),
				zap.Error(errors.ErrMalformedIdentifier))
			continue
		}
		key := id.Trimmed()
		refs := lookup(key)
		res := Result{Source: rec, Identifier: key, References: refs, Kind: KindNone}
		if len(refs) > 0 {
			res.Kind = kind
		}
		results = append(results, res)
	}
	return results, nil
}

func (m *Matcher) lookup(reference *record.Dataset, key string) (func(string) []record.Record, Kind, error) {
	switch m.cfg.Strategy {
	case StrategyExact:
		index := make(map[string][]record.Record)
		for _, rec := range reference.Records {
			v := rec.Get(key)
			if v.IsBlank() {
				continue
			}
			k := v.Trimmed()
			index[k] = append(index[k], rec)
		}
		return func(id string) []record.Record { return index[id] }, KindExact, nil

	case StrategyFuzzy:
		names := make([]string, 0, len(reference.Records))
		recs := make([]record.Record, 0, len(reference.Records))
		for _, rec := range reference.Records {
			v := rec.Get(key)
			if v.IsBlank() {
				continue
			}
			names = append(names, v.Trimmed())
			recs = append(recs, rec)
		}
		ix, err := NewFuzzyIndex(names, FuzzyOptions{PrefixPattern: m.cfg.PrefixPattern})
		if err != nil {
			return nil, "", err
		}
		return func(id string) []record.Record {
			pos := ix.find(id, false)
			out := make([]record.Record, len(pos))
			for i, p := range pos {
				out[i] = recs[p]
			}
			return out
		}, KindFuzzy, nil
	}
	return nil, "", fmt.Errorf("unknown match strategy %q", strings.TrimSpace(string(m.cfg.Strategy)))
}

// Stats summarizes a match.
type Stats struct {
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
	Ambiguous int `json:"ambiguous"`
}

// Summarize counts matched, unmatched and one-to-many results.
func Summarize(results []Result) Stats {
	var s Stats
	for _, r := range results {
		switch {
		case !r.Matched():
			s.Unmatched++
		case r.Ambiguous():
			s.Matched++
			s.Ambiguous++
		default:
			s.Matched++
		}
	}
	return s
}
