package finding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func f(rule string, row int, id string) Finding {
	return Finding{RuleID: rule, Row: row, Identifier: id, Issue: rule + " fired"}
}

func TestAggregator_StableOrder(t *testing.T) {
	in := []Finding{f("R-2", 5, "B"), f("R-1", 2, "A"), f("R-2", 3, "C")}

	got := Aggregate(in)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregator_DedupeOnlySingleRules(t *testing.T) {
	a := NewAggregator("SINGLE")

	kept := a.Add(
		f("SINGLE", 2, "R1"),
		f("MULTI", 2, "R1"),
		f("SINGLE", 2, "R1"),
		f("MULTI", 2, "R1"),
		f("SINGLE", 3, "R2"),
	)

	assert.Equal(t, 4, kept)
	assert.Equal(t, 4, a.Total())
	assert.Equal(t, []RuleCount{{RuleID: "SINGLE", Count: 2}, {RuleID: "MULTI", Count: 2}}, a.Counts())
	assert.Len(t, a.ByRule()["MULTI"], 2)
}

func TestAggregator_BlankIdentifierFallsBackToRow(t *testing.T) {
	a := NewAggregator("SINGLE")
	a.Add(f("SINGLE", 2, ""), f("SINGLE", 3, ""), f("SINGLE", 2, ""))

	assert.Equal(t, 2, a.Total())
	assert.Equal(t, "row 3", a.Findings()[1].Locus())
}

func TestAggregator_FindingsIsACopy(t *testing.T) {
	a := NewAggregator()
	a.Add(f("R", 2, "X"))

	out := a.Findings()
	out[0].RuleID = "changed"
	assert.Equal(t, "R", a.Findings()[0].RuleID)
}

func TestFinding_AttributeList(t *testing.T) {
	fd := Finding{Attributes: []string{"Object Text", "RB_AS_Status"}}
	assert.Equal(t, "Object Text, RB_AS_Status", fd.AttributeList())
	assert.Equal(t, Key{RuleID: "", Locus: "row 0"}, fd.Key())
}
