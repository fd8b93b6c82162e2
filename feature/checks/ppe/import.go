package ppe

import (
	"fmt"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks/common"
)

func (a *Adapter) importRules() []rules.Definition {
	return []rules.Definition{
		a.emptyObjectIDWithForbiddenCRStatus(),
		a.crStatusPlaceholderWithCRID(),
		a.startupConfigurationEmpty(),
		a.crIDEmpty(),
		a.requiredAttributesEmpty(),
		a.objectTextChangedWithoutStatus(),
		a.objectTextChangedAfterClosure(),
	}
}

// PPE-01
func (a *Adapter) emptyObjectIDWithForbiddenCRStatus() rules.Definition {
	forbidden := normalize.NewStatusSet(a.params.ForbiddenCRStatus...)
	return rules.Definition{
		ID:       "PPE-01",
		Title:    "Empty Object ID with forbidden CR status",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{ObjectID, CRStatus}},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(ObjectID).IsSet() || !forbidden.Contains(in.Src(CRStatus)) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{ObjectID, CRStatus},
				Issue:      fmt.Sprintf("Empty '%s' with forbidden '%s' value", ObjectID, CRStatus),
				Detail:     common.Inline(ObjectID, in.Src(ObjectID).Display(), CRStatus, in.Src(CRStatus).Display()),
			}
		},
	}
}

// PPE-02
func (a *Adapter) crStatusPlaceholderWithCRID() rules.Definition {
	return rules.Definition{
		ID:       "PPE-02",
		Title:    "CR status '---' with CR-ID",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{CRStatus, CRID, ManufacturerStatus}},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.SrcStatus(CRStatus) != "---" || in.Src(CRID).IsBlank() || common.IsRejected(in, ManufacturerStatus) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{CRStatus, CRID, ManufacturerStatus},
				Issue: fmt.Sprintf("'%s' is '---' where as '%s' is not empty and '%s' is not '%s'",
					CRStatus, CRID, ManufacturerStatus, common.Rejected),
				Detail: common.Inline(
					CRStatus, in.Src(CRStatus).Display(),
					CRID, in.Src(CRID).Display(),
					ManufacturerStatus, in.SrcStatus(ManufacturerStatus)),
			}
		},
	}
}

// PPE-03
func (a *Adapter) startupConfigurationEmpty() rules.Definition {
	required := append([]string{ObjectID}, StartupConfigurations...)
	return rules.Definition{
		ID:       "PPE-03",
		Title:    "Empty Anlaufkonfiguration",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: append(required, ManufacturerStatus)},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(ObjectID).IsBlank() || common.IsRejected(in, ManufacturerStatus) {
				return nil
			}
			empty := common.EmptyAttributes(in, StartupConfigurations...)
			if len(empty) == 0 {
				return nil
			}
			return &rules.Violation{
				Attributes: empty,
				Issue: fmt.Sprintf("%s is empty where as '%s' is not empty and %s is not '%s'.",
					common.Join(empty), ObjectID, ManufacturerStatus, common.Rejected),
				Detail: common.NewDetail().
					Field(ObjectID, in.Src(ObjectID).Display()).
					Field("Empty Columns", common.Join(empty)).
					Field(ManufacturerStatus, in.SrcStatus(ManufacturerStatus)).
					String(),
			}
		},
	}
}

// PPE-04
func (a *Adapter) crIDEmpty() rules.Definition {
	return rules.Definition{
		ID:       "PPE-04",
		Title:    "Missing CR-ID",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{CRID, ManufacturerStatus}},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(CRID).IsSet() {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{CRID, ManufacturerStatus},
				Issue:      fmt.Sprintf("'%s' is empty while '%s' has a value.", CRID, ManufacturerStatus),
				Detail:     common.Inline(CRID, in.Src(CRID).Display(), ManufacturerStatus, in.SrcStatus(ManufacturerStatus)),
			}
		},
	}
}

// PPE-05
func (a *Adapter) requiredAttributesEmpty() rules.Definition {
	candidates := []string{ObjectID, ObjectText, Typ}
	return rules.Definition{
		ID:    "PPE-05",
		Title: "Empty required attributes",
		Arity: rules.Unary,
		Requires: rules.Requirements{
			Source:    []string{ManufacturerStatus},
			SourceAny: candidates,
		},
		Predicate: func(in rules.Input) *rules.Violation {
			if common.IsRejected(in, ManufacturerStatus) {
				return nil
			}
			empty := common.EmptyAttributes(in, in.SourceSchema.Available(candidates...)...)
			if len(empty) == 0 {
				return nil
			}
			d := common.NewDetail()
			if id := in.Src(ObjectID); id.IsSet() {
				d.Field(ObjectID, id.String())
			}
			d.Field("Empty Attributes", common.Join(empty)).
				Field(ManufacturerStatus, in.SrcStatus(ManufacturerStatus))
			return &rules.Violation{
				Attributes: empty,
				Issue: fmt.Sprintf("%s %s empty while %s is not '%s'.",
					common.Join(empty), common.Verb(empty), ManufacturerStatus, common.Rejected),
				Detail: d.String(),
			}
		},
	}
}

// PPE-06
func (a *Adapter) objectTextChangedWithoutStatus() rules.Definition {
	changed := normalize.NewStatusSet(a.params.ChangedStatus...)
	return rules.Definition{
		ID:    "PPE-06",
		Title: "Object Text changed without 'neu/geändert'",
		Arity: rules.Pair,
		Requires: rules.Requirements{
			Source:    []string{ObjectID, ObjectText, ManufacturerStatus},
			Reference: []string{ObjectID, ObjectText},
		},
		Profile:                normalize.Default,
		SingleFindingPerRecord: true,
		Predicate: func(in rules.Input) *rules.Violation {
			if !in.TextDiffers(ObjectText, ObjectText) || changed.Contains(in.Src(ManufacturerStatus)) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{ObjectText, ManufacturerStatus},
				Issue: fmt.Sprintf("'%s' differs but '%s' is not '%s'.",
					ObjectText, ManufacturerStatus, common.Changed),
				Detail: common.NewDetail().
					Field(ObjectID, in.Identifier).
					Blank().
					CustomerFile(in, "Customer File Object Text", in.Src(ObjectText).String()).
					BoschFile(in, "Bosch File Object Text", in.Ref(ObjectText).String()).
					Separator().
					Indented(ManufacturerStatus, in.SrcStatus(ManufacturerStatus)).
					String(),
				Values: []finding.TextPair{in.TextPair(ObjectText, ObjectText)},
			}
		},
	}
}

// PPE-07
func (a *Adapter) objectTextChangedAfterClosure() rules.Definition {
	closed := normalize.NewStatusSet(a.params.ClosedRBASStatus...)
	return rules.Definition{
		ID:    "PPE-07",
		Title: "Object Text changed on a closed requirement",
		Arity: rules.Pair,
		Requires: rules.Requirements{
			Source:    []string{ObjectID, ObjectText},
			Reference: []string{ObjectID, ObjectText, RBASStatus},
		},
		Profile:                normalize.Default,
		Locus:                  rules.LocusReference,
		SingleFindingPerRecord: true,
		Predicate: func(in rules.Input) *rules.Violation {
			if !in.TextDiffers(ObjectText, ObjectText) || !closed.Contains(in.Ref(RBASStatus)) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{ObjectText, RBASStatus},
				Issue: fmt.Sprintf("'%s' differs but '%s' is one of the prohibited values (%s).",
					ObjectText, RBASStatus, closed.String()),
				Detail: common.NewDetail().
					Field(ObjectID, in.Identifier).
					BoschFile(in, "Bosch File Object Text", in.Ref(ObjectText).String()).
					CustomerFile(in, "Customer File Object Text", in.Src(ObjectText).String()).
					Separator().
					Indented(RBASStatus, in.RefStatus(RBASStatus)).
					String(),
				Values: []finding.TextPair{in.TextPair(ObjectText, ObjectText)},
			}
		},
	}
}
