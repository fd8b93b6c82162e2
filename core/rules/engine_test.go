package rules

import (
	"context"
	"sort"
	"testing"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(t *testing.T, src, ref *record.Dataset) Run {
	t.Helper()
	run := Run{Source: src, Reference: ref}
	if ref != nil {
		results, err := match.Match(src, ref, match.Config{})
		require.NoError(t, err)
		run.Matches = results
	}
	return run
}

func sampleDatasets() (*record.Dataset, *record.Dataset) {
	src := record.NewDataset("customer.xlsx", record.SideSource,
		record.Schema{"Object ID", "Object Text", "Status"}, "Object ID")
	src.Append(map[string]string{"Object ID": "R1", "Object Text": "Die Bremse ", "Status": "freigegeben"})
	src.Append(map[string]string{"Object ID": "R2", "Object Text": "Wert A", "Status": "freigegeben"})
	src.Append(map[string]string{"Object ID": "R3", "Object Text": "neu", "Status": ""})
	src.Append(map[string]string{"Object ID": "", "Object Text": "ohne ID", "Status": "n/a"})

	ref := record.NewDataset("bosch.xlsx", record.SideReference,
		record.Schema{"Object ID", "Object Text", "RB_AS_Status"}, "Object ID")
	ref.Append(map[string]string{"Object ID": "R1", "Object Text": "Die Bremse", "RB_AS_Status": "accepted"})
	ref.Append(map[string]string{"Object ID": "R2", "Object Text": "Wert B", "RB_AS_Status": "accepted"})
	ref.Append(map[string]string{"Object ID": "R2", "Object Text": "Wert C", "RB_AS_Status": "no_req"})
	return src, ref
}

func textDiffers(in Input) *Violation {
	if !in.TextDiffers("Object Text", "Object Text") {
		return nil
	}
	return &Violation{
		Attributes: []string{"Object Text"},
		Issue:      "'Object Text' differs",
		Values:     []finding.TextPair{in.TextPair("Object Text", "Object Text")},
	}
}

func blankStatus(in Input) *Violation {
	if in.SrcStatus("Status") != record.EmptyToken {
		return nil
	}
	return &Violation{Attributes: []string{"Status"}, Issue: "'Status' is empty"}
}

func TestEngine_Unary(t *testing.T) {
	src, _ := sampleDatasets()
	def := Definition{ID: "T-01", Arity: Unary, Requires: Requirements{Source: []string{"Status"}}, Predicate: blankStatus}

	fs, diag, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, nil))
	require.NoError(t, err)
	assert.Nil(t, diag)
	require.Len(t, fs, 1)
	assert.Equal(t, "T-01", fs[0].RuleID)
	assert.Equal(t, 4, fs[0].Row)
	assert.Equal(t, "R3", fs[0].Identifier)
	assert.Equal(t, "source", fs[0].Side)
	assert.Equal(t, "Object ID", fs[0].IdentifierAttribute)
}

func TestEngine_NotApplicableIsNotEmpty(t *testing.T) {
	src, _ := sampleDatasets()
	seen := map[int]string{}
	def := Definition{ID: "T-02", Arity: Unary, Predicate: func(in Input) *Violation {
		seen[in.Source.Row] = in.SrcStatus("Status")
		return nil
	}}

	_, _, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, nil))
	require.NoError(t, err)
	assert.Equal(t, record.EmptyToken, seen[4])
	assert.Equal(t, "n/a", seen[5])
}

func TestEngine_PairOneFindingPerReferenceRow(t *testing.T) {
	src, ref := sampleDatasets()
	def := Definition{ID: "T-03", Arity: Pair, Profile: normalize.Default, Predicate: textDiffers}

	fs, diag, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, ref))
	require.NoError(t, err)
	assert.Nil(t, diag)

	// R1 differs only by a trailing space; R2 matches two reference rows that both differ.
	require.Len(t, fs, 2)
	for _, f := range fs {
		assert.Equal(t, "R2", f.Identifier)
		assert.Equal(t, 3, f.Row)
	}
	assert.Equal(t, "Wert B", fs[0].Values[0].Reference)
	assert.Equal(t, "Wert C", fs[1].Values[0].Reference)
}

func TestEngine_ReferenceLocus(t *testing.T) {
	src, ref := sampleDatasets()
	def := Definition{ID: "T-04", Arity: Pair, Locus: LocusReference, Predicate: textDiffers}

	fs, _, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, ref))
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, []int{3, 4}, []int{fs[0].Row, fs[1].Row})
	assert.Equal(t, "reference", fs[0].Side)
	assert.Equal(t, "R2", fs[0].Identifier)
}

func TestEngine_Unmatched(t *testing.T) {
	src, ref := sampleDatasets()
	def := Definition{ID: "T-05", Arity: Unmatched, Predicate: func(in Input) *Violation {
		return &Violation{Issue: "not in reference"}
	}}

	fs, _, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, ref))
	require.NoError(t, err)

	// Blank identifiers never take part in matching.
	require.Len(t, fs, 1)
	assert.Equal(t, "R3", fs[0].Identifier)
}

func TestEngine_SchemaGap(t *testing.T) {
	src, ref := sampleDatasets()
	gap := Definition{ID: "T-06", Arity: Unary, Requires: Requirements{Source: []string{"CR-ID", "Status"}}, Predicate: func(Input) *Violation {
		t.Fatal("predicate of a skipped rule must not run")
		return nil
	}}
	other := Definition{ID: "T-07", Arity: Unary, Requires: Requirements{Source: []string{"Status"}}, Predicate: blankStatus}

	fs, diags, err := NewEngine().EvaluateAll(context.Background(), []Definition{gap, other}, newRun(t, src, ref))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "T-06", diags[0].RuleID)
	assert.Equal(t, KindSchemaGap, diags[0].Kind)
	assert.Equal(t, "source", diags[0].Side)
	assert.Equal(t, []string{"CR-ID"}, diags[0].Missing)
	assert.True(t, errors.Is(diags[0].Err(), errors.ErrSchemaGap))

	require.Len(t, fs, 1)
	assert.Equal(t, "T-07", fs[0].RuleID)
}

func TestEngine_SchemaGapReferenceSide(t *testing.T) {
	src, ref := sampleDatasets()
	def := Definition{ID: "T-08", Arity: Pair, Requires: Requirements{
		Source:    []string{"Object Text"},
		Reference: []string{"CR-Status"},
	}, Predicate: textDiffers}

	fs, diag, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, ref))
	require.NoError(t, err)
	assert.Empty(t, fs)
	require.NotNil(t, diag)
	assert.Equal(t, "reference", diag.Side)
	assert.Equal(t, []string{"CR-Status"}, diag.Missing)
}

func TestEngine_SourceAny(t *testing.T) {
	src, _ := sampleDatasets()
	def := Definition{ID: "T-09", Arity: Unary, Requires: Requirements{SourceAny: []string{"Typ", "Technikvariante"}}, Predicate: noop}

	_, diag, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, nil))
	require.NoError(t, err)
	require.NotNil(t, diag)
	assert.Equal(t, []string{"Typ", "Technikvariante"}, diag.Missing)

	def.Requires.SourceAny = []string{"Typ", "Object Text"}
	_, diag, err = NewEngine().Evaluate(context.Background(), def, newRun(t, src, nil))
	require.NoError(t, err)
	assert.Nil(t, diag)
}

func TestEngine_RequiresFor(t *testing.T) {
	src, ref := sampleDatasets()
	def := Definition{ID: "T-13", Arity: Pair, Predicate: textDiffers,
		Requires: Requirements{Source: []string{"Object Text"}},
		RequiresFor: func(source, reference record.Schema) Requirements {
			if source.Has("Typ") {
				return Requirements{Source: []string{"Typ"}, Reference: []string{"Typ"}}
			}
			return Requirements{Source: []string{"Object Text"}, Reference: []string{"RB_AS_Status"}}
		}}

	assert.Equal(t, Requirements{Source: []string{"Object Text"}, Reference: []string{"RB_AS_Status"}},
		def.Requirements(src.Schema, ref.Schema))

	fs, diag, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, ref))
	require.NoError(t, err)
	assert.Nil(t, diag)
	require.NotEmpty(t, fs)
	assert.Equal(t, "Object ID", fs[0].IdentifierAttribute)

	ref.Schema = record.Schema{"Object ID", "Object Text"}
	_, diag, err = NewEngine().Evaluate(context.Background(), def, newRun(t, src, ref))
	require.NoError(t, err)
	require.NotNil(t, diag)
	assert.Equal(t, "reference", diag.Side)
	assert.Equal(t, []string{"RB_AS_Status"}, diag.Missing)
}

func TestEngine_InputCarriesDatasetNames(t *testing.T) {
	src, ref := sampleDatasets()
	var seen Input
	def := Definition{ID: "T-14", Arity: Pair, Predicate: func(in Input) *Violation {
		seen = in
		return nil
	}}
	_, _, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, ref))
	require.NoError(t, err)
	assert.Equal(t, "customer.xlsx", seen.SourceName)
	assert.Equal(t, "bosch.xlsx", seen.ReferenceName)
	assert.Equal(t, "Object ID", seen.IdentifierAttribute)
}

func TestEngine_ReferenceMissing(t *testing.T) {
	src, _ := sampleDatasets()
	def := Definition{ID: "T-10", Arity: Pair, Predicate: textDiffers}

	fs, diag, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, nil))
	require.NoError(t, err)
	assert.Empty(t, fs)
	require.NotNil(t, diag)
	assert.Equal(t, KindReferenceMissing, diag.Kind)
}

func TestEngine_PanicBecomesInvariantViolation(t *testing.T) {
	src, _ := sampleDatasets()
	def := Definition{ID: "T-11", Arity: Unary, Predicate: func(in Input) *Violation {
		if in.Source.Row == 3 {
			panic("boom")
		}
		return nil
	}}

	_, _, err := NewEngine().Evaluate(context.Background(), def, newRun(t, src, nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvariantViolation))
	assert.Contains(t, err.Error(), "T-11")
	assert.Contains(t, err.Error(), "row 3")
}

func TestEngine_ParallelMatchesSequential(t *testing.T) {
	src, ref := sampleDatasets()
	defs := []Definition{
		{ID: "P-01", Arity: Unary, Predicate: blankStatus},
		{ID: "P-02", Arity: Pair, Predicate: textDiffers},
		{ID: "P-03", Arity: Pair, Locus: LocusReference, Predicate: textDiffers},
		{ID: "P-04", Arity: Unary, Requires: Requirements{Source: []string{"CR-ID"}}, Predicate: noop},
		{ID: "P-05", Arity: Unmatched, Predicate: func(Input) *Violation { return &Violation{Issue: "new"} }},
	}
	run := newRun(t, src, ref)

	seqF, seqD, err := NewEngine(WithWorkers(1)).EvaluateAll(context.Background(), defs, run)
	require.NoError(t, err)
	parF, parD, err := NewEngine(WithWorkers(4)).EvaluateAll(context.Background(), defs, run)
	require.NoError(t, err)

	assert.Equal(t, seqF, parF)
	assert.Equal(t, seqD, parD)
}

func TestEngine_RuleOrderDoesNotChangeFindings(t *testing.T) {
	src, ref := sampleDatasets()
	defs := []Definition{
		{ID: "O-01", Arity: Unary, Predicate: blankStatus},
		{ID: "O-02", Arity: Pair, Predicate: textDiffers},
		{ID: "O-03", Arity: Unmatched, Predicate: func(Input) *Violation { return &Violation{Issue: "new"} }},
	}
	reversed := []Definition{defs[2], defs[1], defs[0]}
	run := newRun(t, src, ref)

	a, _, err := NewEngine().EvaluateAll(context.Background(), defs, run)
	require.NoError(t, err)
	b, _, err := NewEngine().EvaluateAll(context.Background(), reversed, run)
	require.NoError(t, err)

	byKey := func(fs []finding.Finding) {
		sort.SliceStable(fs, func(i, j int) bool { return fs[i].RuleID < fs[j].RuleID })
	}
	byKey(a)
	byKey(b)
	assert.Equal(t, a, b)
}

func TestEngine_Cancelled(t *testing.T) {
	src, _ := sampleDatasets()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewEngine().EvaluateAll(ctx, []Definition{{ID: "C-01", Arity: Unary, Predicate: noop}}, newRun(t, src, nil))
	assert.ErrorIs(t, err, context.Canceled)
}
