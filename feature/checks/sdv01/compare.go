package sdv01

import (
	"fmt"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks/common"
)

func categorical(in rules.Input, attr string) finding.TextPair {
	p := in.TextPair(attr, attr)
	p.Categorical = true
	return p
}

// SDV01-04 reports every reference row of a requirement whose CR-ID or manufacturer
// status disagrees with the supplier export.
func (a *Adapter) crIDOrStatusDiffers() rules.Definition {
	compared := []string{ObjectID, CRID, ManufacturerStatus, CRStatus, Typ}
	return rules.Definition{
		ID:       "SDV01-04",
		Title:    "CR-ID or manufacturer status differs from the supplier export",
		Arity:    rules.Pair,
		Requires: rules.Requirements{Source: compared, Reference: compared},
		Profile:  normalize.Default,
		Predicate: func(in rules.Input) *rules.Violation {
			if in.SrcStatus(Typ) != common.Requirement {
				return nil
			}
			if !in.TextDiffers(CRID, CRID) && in.SrcStatus(ManufacturerStatus) == in.RefStatus(ManufacturerStatus) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{CRID, ManufacturerStatus, CRStatus},
				Issue: fmt.Sprintf("'%s' or '%s' differs from Bosch reference file.",
					CRID, ManufacturerStatus),
				Detail: common.NewDetail().
					Field(ObjectID, in.Identifier).
					CustomerFile(in, "Customer "+CRID, in.Src(CRID).Display()).
					Indented("Customer "+ManufacturerStatus, in.Src(ManufacturerStatus).Display()).
					Indented("Customer "+CRStatus, in.Src(CRStatus).Display()).
					BoschFile(in, "Bosch "+CRID, in.Ref(CRID).Display()).
					Indented("Bosch "+ManufacturerStatus, in.Ref(ManufacturerStatus).Display()).
					Indented("Bosch "+CRStatus, in.Ref(CRStatus).Display()).
					String(),
				Values: []finding.TextPair{
					categorical(in, CRID),
					categorical(in, ManufacturerStatus),
				},
			}
		},
	}
}

// SDV01-05
func (a *Adapter) customerTextChangedWithoutStatus() rules.Definition {
	changed := normalize.NewStatusSet(a.params.ChangedStatus...)
	expected := changed.Values()[0]
	return rules.Definition{
		ID:    "SDV01-05",
		Title: "ReqIF.Text changed without 'neu/geändert'",
		Arity: rules.Pair,
		Requires: rules.Requirements{
			Source:    []string{ObjectID, CustomerText, ManufacturerStatus},
			Reference: []string{ObjectID, ObjectText},
		},
		Profile:                normalize.Default,
		SingleFindingPerRecord: true,
		Predicate: func(in rules.Input) *rules.Violation {
			if !in.TextDiffers(CustomerText, ObjectText) || changed.Contains(in.Src(ManufacturerStatus)) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{CustomerText, ManufacturerStatus},
				Issue: fmt.Sprintf("'%s' differs from '%s' but '%s' is not '%s'.",
					CustomerText, ObjectText, ManufacturerStatus, expected),
				Detail: common.NewDetail().
					Field(ObjectID, in.Identifier).
					Blank().
					CustomerFile(in, "Customer File ReqIF.Text", in.Src(CustomerText).String()).
					BoschFile(in, "Bosch File Object Text", in.Ref(ObjectText).String()).
					Separator().
					Indented(ManufacturerStatus, in.Src(ManufacturerStatus).Display()).
					Blank().
					Indented("Expected Status", expected).
					String(),
				Values: []finding.TextPair{in.TextPair(CustomerText, ObjectText)},
			}
		},
	}
}

// SDV01-06
func (a *Adapter) objectTextChangedAfterClosure() rules.Definition {
	closed := normalize.NewStatusSet(a.params.ClosedRBASStatus...)
	return rules.Definition{
		ID:    "SDV01-06",
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

// SDV01-10
func (a *Adapter) protectedCRStatusOverwritten() rules.Definition {
	protected := normalize.NewStatusSet(a.params.ProtectedCRStatus...)
	listed := common.Either(protected.Values(), true)
	return rules.Definition{
		ID:    "SDV01-10",
		Title: "Protected CR status overwritten",
		Arity: rules.Pair,
		Requires: rules.Requirements{
			Source:    []string{ObjectID, CRStatus, CRID},
			Reference: []string{ObjectID, CRStatus},
		},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(CRID).IsBlank() || !protected.Contains(in.Ref(CRStatus)) {
				return nil
			}
			if in.SrcStatus(CRStatus) == in.RefStatus(CRStatus) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{CRStatus},
				Issue: fmt.Sprintf("'%s' differs from Bosch file. Bosch CR-Status is %s and should not be overwritten.",
					CRStatus, listed),
				Detail: common.NewDetail().
					Field(ObjectID, in.Identifier).
					Field(CRID, in.Src(CRID).String()).
					CustomerFile(in, "Customer "+CRStatus, in.Src(CRStatus).Display()).
					BoschFile(in, "Bosch "+CRStatus, in.Ref(CRStatus).Display()).
					Separator().
					Indented("Note", fmt.Sprintf("Bosch CR-Status %s must not be overwritten.", listed)).
					String(),
				Values: []finding.TextPair{categorical(in, CRStatus)},
			}
		},
	}
}

// SDV01-08
func (a *Adapter) newRequirementWithoutCRID() rules.Definition {
	return rules.Definition{
		ID:    "SDV01-08",
		Title: "New requirement without CR-ID",
		Arity: rules.Unmatched,
		Requires: rules.Requirements{
			Source:    []string{ObjectID, CRID, Typ},
			Reference: []string{ObjectID},
		},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Identifier == "" || in.Src(CRID).IsSet() {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{ObjectID, CRID},
				Issue: fmt.Sprintf("New requirement (%s) found in Customer document that does not exist in Bosch document, "+
					"and %s is missing. Hint: All new requirements should have a CR-ID assigned.", ObjectID, CRID),
				Detail: common.NewDetail().
					Field(ObjectID, in.Identifier).
					Field(Typ, in.Src(Typ).Display()).
					CustomerFile(in, "Customer "+CRID, in.Src(CRID).Display()).
					BoschFile(in, "Bosch "+ObjectID, "Not found").
					String(),
			}
		},
	}
}
