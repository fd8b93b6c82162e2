package sdv01

import (
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
)

// Name is the project name.
const Name = "sdv01"

const (
	ObjectID           = "Object ID"
	ObjectText         = "Object Text"
	CustomerText       = "ReqIF.Text"
	Typ                = "Typ"
	Technikvariante    = "Technikvariante"
	CRStatus           = "CR-Status_Bosch_SDV0.1"
	CRID               = "CR-ID_Bosch_SDV0.1"
	ManufacturerStatus = "BRS_Status_Hersteller_Bosch_SDV0.1"
	RBASStatus         = "RB_AS_Status"
	EntfallRelease     = "EntfallRelease"
	ErsteinsatzRelease = "ErsteinsatzRelease"
)

// Params holds the value lists of the SDV0.1 rules.
type Params struct {
	// ForbiddenCRStatus are CR states not allowed on rows without Object ID.
	ForbiddenCRStatus []string `mapstructure:"forbidden_cr_status" json:"forbidden_cr_status"`
	// ChangedStatus are manufacturer states that allow a changed ReqIF.Text.
	ChangedStatus []string `mapstructure:"changed_status" json:"changed_status"`
	// ClosedRBASStatus are supplier states that forbid a changed Object Text.
	ClosedRBASStatus []string `mapstructure:"closed_rb_as_status" json:"closed_rb_as_status"`
	// ProtectedCRStatus are supplier CR states the customer must not overwrite.
	ProtectedCRStatus []string `mapstructure:"protected_cr_status" json:"protected_cr_status"`
	// RequiredAttributes must be filled on live requirements when the schema declares them.
	RequiredAttributes []string `mapstructure:"required_attributes" json:"required_attributes"`
}

// DefaultParams returns the value lists used by the SDV0.1 project.
func DefaultParams() Params {
	return Params{
		ForbiddenCRStatus:  []string{"014", "031", "100"},
		ChangedStatus:      []string{"neu/geändert"},
		ClosedRBASStatus:   []string{"accepted", "no_req", "canceled_closed"},
		ProtectedCRStatus:  []string{"100", "31"},
		RequiredAttributes: []string{ObjectID, ObjectText, Technikvariante, Typ},
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if len(p.ForbiddenCRStatus) == 0 {
		p.ForbiddenCRStatus = d.ForbiddenCRStatus
	}
	if len(p.ChangedStatus) == 0 {
		p.ChangedStatus = d.ChangedStatus
	}
	if len(p.ClosedRBASStatus) == 0 {
		p.ClosedRBASStatus = d.ClosedRBASStatus
	}
	if len(p.ProtectedCRStatus) == 0 {
		p.ProtectedCRStatus = d.ProtectedCRStatus
	}
	if len(p.RequiredAttributes) == 0 {
		p.RequiredAttributes = d.RequiredAttributes
	}
	return p
}

// Adapter implements reconcile.Adapter for SDV0.1.
type Adapter struct {
	params Params
}

// New creates the SDV0.1 adapter. Empty lists in params keep their defaults.
func New(params Params) *Adapter {
	return &Adapter{params: params.withDefaults()}
}

// Name returns the project name.
func (a *Adapter) Name() string {
	return Name
}

// Rules returns the import rules in review order; the export direction has none.
func (a *Adapter) Rules(direction reconcile.Direction) []rules.Definition {
	if direction != reconcile.Import {
		return []rules.Definition{}
	}
	return []rules.Definition{
		a.emptyObjectIDWithForbiddenCRStatus(),
		a.crStatusMissingWithCRID(),
		a.rejectedWithoutRelease(),
		a.crIDOrStatusDiffers(),
		a.customerTextChangedWithoutStatus(),
		a.objectTextChangedAfterClosure(),
		a.protectedCRStatusOverwritten(),
		a.requiredAttributesEmpty(),
		a.newRequirementWithoutCRID(),
		a.crIDEmpty(),
	}
}

// Keys matches both sides on Object ID.
func (a *Adapter) Keys(_, _ record.Schema) match.Config {
	return match.Config{SourceKey: ObjectID, ReferenceKey: ObjectID, Strategy: match.StrategyExact}
}
