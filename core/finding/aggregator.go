package finding

// RuleCount is the number of findings of one rule.
type RuleCount struct {
	RuleID string `json:"rule_id"`
	Count  int    `json:"count"`
}

// Aggregator collects findings in evaluation order.
type Aggregator struct {
	single   map[string]bool
	seen     map[Key]bool
	findings []Finding
	counts   map[string]int
	order    []string
}

// NewAggregator creates an Aggregator; singleRuleIDs name the rules deduplicated by record.
func NewAggregator(singleRuleIDs ...string) *Aggregator {
	a := &Aggregator{
		single: make(map[string]bool, len(singleRuleIDs)),
		seen:   make(map[Key]bool),
		counts: make(map[string]int),
	}
	for _, id := range singleRuleIDs {
		a.single[id] = true
	}
	return a
}

// Add appends findings, dropping repeats of single-finding rules. It returns the number kept.
func (a *Aggregator) Add(findings ...Finding) int {
	kept := 0
	for _, f := range findings {
		if a.single[f.RuleID] {
			k := f.Key()
			if a.seen[k] {
				continue
			}
			a.seen[k] = true
		}
		if _, ok := a.counts[f.RuleID]; !ok {
			a.order = append(a.order, f.RuleID)
		}
		a.counts[f.RuleID]++
		a.findings = append(a.findings, f)
		kept++
	}
	return kept
}

// Findings returns the kept findings in insertion order.
func (a *Aggregator) Findings() []Finding {
	return append([]Finding(nil), a.findings...)
}

// Total returns the number of kept findings.
func (a *Aggregator) Total() int { return len(a.findings) }

// Counts returns per-rule counts in order of first appearance.
func (a *Aggregator) Counts() []RuleCount {
	out := make([]RuleCount, len(a.order))
	for i, id := range a.order {
		out[i] = RuleCount{RuleID: id, Count: a.counts[id]}
	}
	return out
}

// ByRule groups the kept findings by rule id, keeping order inside each group.
func (a *Aggregator) ByRule() map[string][]Finding {
	out := make(map[string][]Finding, len(a.order))
	for _, f := range a.findings {
		out[f.RuleID] = append(out[f.RuleID], f)
	}
	return out
}

// Aggregate is shorthand for a one-shot Aggregator.
func Aggregate(findings []Finding, singleRuleIDs ...string) []Finding {
	a := NewAggregator(singleRuleIDs...)
	a.Add(findings...)
	return a.Findings()
}
