package ssp

import (
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
)

// Name is the project name.
const Name = "ssp"

const (
	ObjectID         = "Object ID"
	ObjectText       = "Object Text"
	CustomerKey      = "ReqIF.ForeignID"
	SupplierKey      = "ForeignID"
	CustomerText     = "ReqIF.Text"
	OEMStatus        = "Status OEM zu Lieferant R"
	CustomerCategory = "ReqIF.Category"
	SupplierCategory = "Category"
	Typ              = "Typ"
	ASIL             = "ASIL"
	SupplierASIL     = "RB_ASIL"
)

// Params holds the value lists of the SSP rules.
type Params struct {
	// SettledStatus are OEM states under which differences are expected.
	SettledStatus []string `mapstructure:"settled_status" json:"settled_status"`
	// ExpectedStatus is the state reported as the fix.
	ExpectedStatus string `mapstructure:"expected_status" json:"expected_status"`
	// VariantAttributes are compared on both sides when the customer export carries ReqIF.Category.
	VariantAttributes []string `mapstructure:"variant_attributes" json:"variant_attributes"`
	// CustomerASILWaived are customer ASIL values that need no supplier counterpart.
	CustomerASILWaived []string `mapstructure:"customer_asil_waived" json:"customer_asil_waived"`
}

// DefaultParams returns the value lists used by the SSP project.
func DefaultParams() Params {
	return Params{
		SettledStatus:      []string{"zu bewerten", "verworfen"},
		ExpectedStatus:     "zu bewerten",
		VariantAttributes:  []string{"Reifegrad", "Feature", "Sonstige-Varianten"},
		CustomerASILWaived: []string{"n/a", "qm", "nein", ""},
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if len(p.SettledStatus) == 0 {
		p.SettledStatus = d.SettledStatus
	}
	if p.ExpectedStatus == "" {
		p.ExpectedStatus = d.ExpectedStatus
	}
	if len(p.VariantAttributes) == 0 {
		p.VariantAttributes = d.VariantAttributes
	}
	if len(p.CustomerASILWaived) == 0 {
		p.CustomerASILWaived = d.CustomerASILWaived
	}
	return p
}

// Adapter implements reconcile.Adapter for SSP.
type Adapter struct {
	params Params
}

// New creates the SSP adapter. Empty lists in params keep their defaults.
func New(params Params) *Adapter {
	return &Adapter{params: params.withDefaults()}
}

// Name returns the project name.
func (a *Adapter) Name() string {
	return Name
}

// Rules returns the import rules; the export direction has none.
func (a *Adapter) Rules(direction reconcile.Direction) []rules.Definition {
	if direction != reconcile.Import {
		return []rules.Definition{}
	}
	return []rules.Definition{
		a.textChangedWhileSettled(),
		a.attributesChangedWhileSettled(),
	}
}

// Keys prefers the ForeignID attributes and falls back to Object ID.
func (a *Adapter) Keys(source, reference record.Schema) match.Config {
	cfg := match.Config{SourceKey: ObjectID, ReferenceKey: ObjectID, Strategy: match.StrategyExact}
	if source.Has(CustomerKey) {
		cfg.SourceKey = CustomerKey
	}
	if reference.Has(SupplierKey) {
		cfg.ReferenceKey = SupplierKey
	}
	return cfg
}
