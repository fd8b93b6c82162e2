package ppe

import (
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
)

// Name is the project name.
const Name = "ppe"

const (
	ObjectID           = "Object ID"
	ObjectText         = "Object Text"
	Typ                = "Typ"
	CRStatus           = "CR-Status_Bosch_PPx"
	CRID               = "CR-ID_Bosch_PPx"
	ManufacturerStatus = "BRS-1Box_Status_Hersteller_Bosch_PPx"
	SupplierStatus     = "BRS-1Box_Status_Zulieferer_Bosch_PPx"
	RBASStatus         = "RB_AS_Status"
)

// StartupConfigurations are the attributes checked by PPE-03.
var StartupConfigurations = []string{"Anlaufkonfiguration_01", "Anlaufkonfiguration_02", "Anlaufkonfiguration_03"}

// Params holds the value lists of the PPE rules.
type Params struct {
	// ForbiddenCRStatus are CR states not allowed on rows without Object ID.
	ForbiddenCRStatus []string `mapstructure:"forbidden_cr_status" json:"forbidden_cr_status"`
	// ChangedStatus are manufacturer states that allow a changed Object Text.
	ChangedStatus []string `mapstructure:"changed_status" json:"changed_status"`
	// ClosedRBASStatus are supplier states that forbid a changed Object Text.
	ClosedRBASStatus []string `mapstructure:"closed_rb_as_status" json:"closed_rb_as_status"`
	// SupplierDecisions are the supplier states accepted on requirements with a CR-ID.
	SupplierDecisions []string `mapstructure:"supplier_decisions" json:"supplier_decisions"`
	// InformationTypes are Typ values that must carry "n/a" as supplier status.
	InformationTypes []string `mapstructure:"information_types" json:"information_types"`
}

// DefaultParams returns the value lists used by the PPE project.
func DefaultParams() Params {
	return Params{
		ForbiddenCRStatus: []string{"014", "013", "100"},
		ChangedStatus:     []string{"neu/geändert"},
		ClosedRBASStatus:  []string{"accepted", "no_req", "canceled_closed"},
		SupplierDecisions: []string{"akzeptiert", "abgelehnt"},
		InformationTypes:  []string{"Überschrift", "Information"},
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
	if len(p.SupplierDecisions) == 0 {
		p.SupplierDecisions = d.SupplierDecisions
	}
	if len(p.InformationTypes) == 0 {
		p.InformationTypes = d.InformationTypes
	}
	return p
}

// Adapter implements reconcile.Adapter for PPE.
type Adapter struct {
	params Params
}

// New creates the PPE adapter. Empty lists in params keep their defaults.
func New(params Params) *Adapter {
	return &Adapter{params: params.withDefaults()}
}

// Name returns the project name.
func (a *Adapter) Name() string {
	return Name
}

// Rules returns the rules of a direction in evaluation order.
func (a *Adapter) Rules(direction reconcile.Direction) []rules.Definition {
	switch direction {
	case reconcile.Import:
		return a.importRules()
	case reconcile.Export:
		return a.exportRules()
	}
	return []rules.Definition{}
}

// Keys matches both sides on Object ID.
func (a *Adapter) Keys(_, _ record.Schema) match.Config {
	return match.Config{SourceKey: ObjectID, ReferenceKey: ObjectID, Strategy: match.StrategyExact}
}
