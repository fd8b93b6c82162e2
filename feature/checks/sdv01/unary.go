package sdv01

import (
	"fmt"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks/common"
)

// SDV01-01
func (a *Adapter) emptyObjectIDWithForbiddenCRStatus() rules.Definition {
	forbidden := normalize.NewStatusSet(a.params.ForbiddenCRStatus...)
	return rules.Definition{
		ID:       "SDV01-01",
		Title:    "Empty Object ID with forbidden CR status",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{ObjectID, CRStatus}},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(ObjectID).IsSet() || !forbidden.Contains(in.Src(CRStatus)) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{ObjectID, CRStatus},
				Issue: fmt.Sprintf("Empty '%s' with forbidden '%s' value (%s are not allowed with empty %s).",
					ObjectID, CRStatus, common.Either(forbidden.Values(), false), ObjectID),
				Detail: common.Inline(ObjectID, in.Src(ObjectID).Display(), CRStatus, in.Src(CRStatus).Display()),
			}
		},
	}
}

// SDV01-02
func (a *Adapter) crStatusMissingWithCRID() rules.Definition {
	return rules.Definition{
		ID:       "SDV01-02",
		Title:    "CR status empty or '---' with CR-ID",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{CRStatus, CRID, ManufacturerStatus}},
		Predicate: func(in rules.Input) *rules.Violation {
			status := in.SrcStatus(CRStatus)
			if status != record.EmptyToken && status != "---" {
				return nil
			}
			if in.Src(CRID).IsBlank() || common.IsRejected(in, ManufacturerStatus) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{CRStatus, CRID, ManufacturerStatus},
				Issue: fmt.Sprintf("'%s' is empty/'---' whereas '%s' is not empty and '%s' is not '%s'.",
					CRStatus, CRID, ManufacturerStatus, common.Rejected),
				Detail: common.Inline(
					CRStatus, in.Src(CRStatus).Display(),
					CRID, in.Src(CRID).String(),
					ManufacturerStatus, in.SrcStatus(ManufacturerStatus)),
			}
		},
	}
}

// SDV01-03
func (a *Adapter) rejectedWithoutRelease() rules.Definition {
	return rules.Definition{
		ID:       "SDV01-03",
		Title:    "Rejected requirement without release",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{ObjectID, ManufacturerStatus, EntfallRelease, ErsteinsatzRelease}},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(ObjectID).IsBlank() || !common.IsRejected(in, ManufacturerStatus) {
				return nil
			}
			empty := common.EmptyAttributes(in, EntfallRelease, ErsteinsatzRelease)
			if len(empty) == 0 {
				return nil
			}
			return &rules.Violation{
				Attributes: empty,
				Issue: fmt.Sprintf("%s is empty while '%s' is filled and '%s' is '%s'.",
					common.Join(empty), ObjectID, ManufacturerStatus, common.Rejected),
				Detail: common.NewDetail().
					Field(ObjectID, in.Src(ObjectID).String()).
					Field(ManufacturerStatus, in.SrcStatus(ManufacturerStatus)).
					Field(EntfallRelease, in.Src(EntfallRelease).Display()).
					Field(ErsteinsatzRelease, in.Src(ErsteinsatzRelease).Display()).
					String(),
			}
		},
	}
}

// SDV01-07
func (a *Adapter) requiredAttributesEmpty() rules.Definition {
	required := a.params.RequiredAttributes
	return rules.Definition{
		ID:    "SDV01-07",
		Title: "Empty required attributes",
		Arity: rules.Unary,
		Requires: rules.Requirements{
			Source:    []string{ManufacturerStatus},
			SourceAny: required,
		},
		Predicate: func(in rules.Input) *rules.Violation {
			if common.IsRejected(in, ManufacturerStatus) {
				return nil
			}
			empty := common.EmptyAttributes(in, in.SourceSchema.Available(required...)...)
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

// SDV01-09
func (a *Adapter) crIDEmpty() rules.Definition {
	return rules.Definition{
		ID:       "SDV01-09",
		Title:    "Missing CR-ID",
		Arity:    rules.Unary,
		Requires: rules.Requirements{Source: []string{CRID, ManufacturerStatus}},
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(CRID).IsSet() {
				return nil
			}
			issue := fmt.Sprintf("%s must not be empty.", CRID)
			if common.IsRejected(in, ManufacturerStatus) {
				issue = fmt.Sprintf("%s is empty and %s is '%s'. A rejected requirement must come with a CR-ID at Bosch.",
					CRID, ManufacturerStatus, common.Rejected)
			}
			return &rules.Violation{
				Attributes: []string{CRID, ManufacturerStatus},
				Issue:      issue,
				Detail: common.NewDetail().
					Field(CRID, record.EmptyToken).
					Field(ManufacturerStatus, in.SrcStatus(ManufacturerStatus)).
					String(),
			}
		},
	}
}
