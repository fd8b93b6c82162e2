package rules

import (
	"fmt"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
)

// DiagnosticKind classifies why a rule was skipped.
type DiagnosticKind string

const (
	// KindSchemaGap means a side lacks attributes the rule needs.
	KindSchemaGap DiagnosticKind = "schema_gap"
	// KindReferenceMissing means a binary rule ran without a reference dataset.
	KindReferenceMissing DiagnosticKind = "reference_missing"
)

// Diagnostic reports a rule that was not evaluated.
type Diagnostic struct {
	RuleID  string         `json:"rule_id"`
	Side    string         `json:"side"`
	Kind    DiagnosticKind `json:"kind"`
	Missing []string       `json:"missing,omitempty"`
	Message string         `json:"message"`
}

// Err returns the diagnostic as an error matching errors.ErrSchemaGap.
func (d Diagnostic) Err() error {
	return errors.NewSchemaGap(d.RuleID, d.Side, d.Missing)
}

func schemaGap(ruleID, side string, missing []string) *Diagnostic {
	d := &Diagnostic{
		RuleID:  ruleID,
		Side:    side,
		Kind:    KindSchemaGap,
		Missing: missing,
	}
	d.Message = d.Err().Error()
	return d
}

func referenceMissing(ruleID string) *Diagnostic {
	return &Diagnostic{
		RuleID:  ruleID,
		Side:    "reference",
		Kind:    KindReferenceMissing,
		Message: fmt.Sprintf("rule %s skipped: no reference dataset supplied", ruleID),
	}
}
