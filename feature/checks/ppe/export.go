package ppe

import (
	"fmt"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks/common"
)

const notApplicable = "n/a"

func (a *Adapter) exportRules() []rules.Definition {
	return []rules.Definition{
		a.requirementWithoutSupplierDecision(),
		a.informationWithoutNotApplicable(),
	}
}

// PPE-E01
func (a *Adapter) requirementWithoutSupplierDecision() rules.Definition {
	decisions := normalize.NewStatusSet(a.params.SupplierDecisions...)
	return rules.Definition{
		ID:       "PPE-E01",
		Title:    "Requirement with CR-ID lacks a supplier decision",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{CRID, Typ, SupplierStatus}},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(CRID).IsBlank() || in.SrcStatus(Typ) != common.Requirement || decisions.Contains(in.Src(SupplierStatus)) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{CRID, Typ, SupplierStatus},
				Issue: fmt.Sprintf("'%s' is not empty and '%s' is '%s', but '%s' is not %s",
					CRID, Typ, common.Requirement, SupplierStatus, strings.ReplaceAll(decisions.String(), ", ", " or ")),
				Detail: common.Inline(
					CRID, in.Src(CRID).Display(),
					Typ, in.SrcStatus(Typ),
					SupplierStatus, in.Src(SupplierStatus).Display()),
			}
		},
	}
}

// PPE-E02
func (a *Adapter) informationWithoutNotApplicable() rules.Definition {
	informational := normalize.NewStatusSet(a.params.InformationTypes...)
	return rules.Definition{
		ID:       "PPE-E02",
		Title:    "Heading or information without 'n/a'",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{Typ, SupplierStatus}},
		Predicate: func(in rules.Input) *rules.Violation {
			if !informational.Contains(in.Src(Typ)) {
				return nil
			}
			status := in.SrcStatus(SupplierStatus)
			if status != record.EmptyToken {
				status = strings.ToLower(status)
			}
			if status == notApplicable {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{Typ, SupplierStatus},
				Issue: fmt.Sprintf("'%s' is %s, but '%s' is not '%s'",
					Typ, strings.ReplaceAll(informational.String(), ", ", " or "), SupplierStatus, notApplicable),
				Detail: common.Inline(Typ, in.SrcStatus(Typ), SupplierStatus, status),
			}
		},
	}
}
