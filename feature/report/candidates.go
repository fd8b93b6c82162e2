package report

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
)

const (
	translationRequired = "New translation required"
	updateDetected      = "Yes"
)

// Table is a follow-up list with named columns.
type Table struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Len returns the number of rows; a nil table has none.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// TSV encodes the table with a header line, tab separated.
func (t *Table) TSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tableBuilder collects rows keyed by column and lays them out over the union of columns.
type tableBuilder struct {
	name    string
	columns []string
	known   map[string]bool
	rows    []map[string]string
}

func newTableBuilder(name string) *tableBuilder {
	return &tableBuilder{name: name, known: make(map[string]bool)}
}

func (b *tableBuilder) add(cells ...[2]string) {
	row := make(map[string]string, len(cells))
	for _, c := range cells {
		if !b.known[c[0]] {
			b.known[c[0]] = true
			b.columns = append(b.columns, c[0])
		}
		row[c[0]] = c[1]
	}
	b.rows = append(b.rows, row)
}

func (b *tableBuilder) table() *Table {
	t := &Table{Name: b.name, Columns: b.columns, Rows: make([][]string, 0, len(b.rows))}
	for _, row := range b.rows {
		line := make([]string, len(b.columns))
		for i, col := range b.columns {
			line[i] = row[col]
		}
		t.Rows = append(t.Rows, line)
	}
	return t
}

func ruleSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// TranslationCandidates lists the requirements of the given rules whose customer text changed.
// A finding is skipped when its identifier or customer text is blank, when both texts are
// identical after placeholder cleaning, or when nothing is left of the customer text after
// cleaning. Findings keyed by a ForeignID fill the ForeignID columns; all others fill the
// Object ID columns.
func TranslationCandidates(findings []finding.Finding, ruleIDs ...string) *Table {
	rules := ruleSet(ruleIDs)
	b := newTableBuilder("translation")
	for _, f := range findings {
		if !rules[f.RuleID] || f.Identifier == "" {
			continue
		}
		pair, ok := textPair(f)
		if !ok {
			continue
		}
		customer := strings.TrimSpace(pair.Source)
		if customer == "" || customer == record.EmptyToken {
			continue
		}
		cleanCustomer := normalize.Clean(customer)
		if cleanCustomer == normalize.Clean(strings.TrimSpace(pair.Reference)) || cleanCustomer == "" {
			continue
		}
		if strings.Contains(f.IdentifierAttribute, "ForeignID") {
			b.add([2]string{"ForeignID", f.Identifier}, [2]string{"English_Translation", translationRequired})
		} else {
			b.add([2]string{"Object ID", f.Identifier}, [2]string{"Object Text English", translationRequired})
		}
	}
	return b.table()
}

func textPair(f finding.Finding) (finding.TextPair, bool) {
	for _, p := range f.Values {
		if !p.Categorical {
			return p, true
		}
	}
	return finding.TextPair{}, false
}

// UpdateCandidates lists each identifier of the given rules' findings once, in first-seen order.
func UpdateCandidates(findings []finding.Finding, ruleIDs ...string) *Table {
	rules := ruleSet(ruleIDs)
	seen := make(map[string]bool)
	b := newTableBuilder("rb_update")
	for _, f := range findings {
		if !rules[f.RuleID] || f.Identifier == "" || seen[f.Identifier] {
			continue
		}
		seen[f.Identifier] = true
		b.add([2]string{"Object ID", f.Identifier}, [2]string{"RB_Update_detected", updateDetected})
	}
	return b.table()
}
