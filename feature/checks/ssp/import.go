package ssp

import (
	"fmt"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks/common"
)

// SSP-06
func (a *Adapter) textChangedWhileSettled() rules.Definition {
	settled := normalize.NewStatusSet(a.params.SettledStatus...)
	return rules.Definition{
		ID:    "SSP-06",
		Title: "ReqIF.Text changed while the OEM status is settled",
		Arity: rules.Pair,
		Requires: rules.Requirements{
			Source:    []string{CustomerText, OEMStatus},
			Reference: []string{ObjectText},
		},
		Profile:                normalize.SymbolTolerant,
		SingleFindingPerRecord: true,
		Predicate: func(in rules.Input) *rules.Violation {
			if in.Src(CustomerText).IsBlank() && in.Ref(ObjectText).IsBlank() {
				return nil
			}
			if !in.TextDiffers(CustomerText, ObjectText) || settled.Contains(in.Src(OEMStatus)) {
				return nil
			}
			return &rules.Violation{
				Attributes: []string{CustomerText, OEMStatus},
				Issue: fmt.Sprintf("'%s' differs from '%s' but '%s' is not '%s'.",
					CustomerText, ObjectText, OEMStatus, a.params.ExpectedStatus),
				Detail: common.NewDetail().
					Field(in.IdentifierAttribute, in.Identifier).
					Blank().
					CustomerFile(in, "Customer File Object Text", in.Src(CustomerText).Trimmed()).
					BoschFile(in, "Bosch File Object Text", in.Ref(ObjectText).Trimmed()).
					Separator().
					Indented(OEMStatus, in.SrcStatus(OEMStatus)).
					Blank().
					Indented("Expected Status", a.params.ExpectedStatus).
					String(),
				Values: []finding.TextPair{in.TextPair(CustomerText, ObjectText)},
			}
		},
	}
}

type attributePair struct {
	customer string
	supplier string
}

func (p attributePair) label() string {
	return p.customer + " vs " + p.supplier
}

// attributePairs selects the compared attributes from the export flavour: ReqIF.Category
// exports compare the category and the variant attributes, Typ exports only the type.
func (a *Adapter) attributePairs(source, reference record.Schema) []attributePair {
	var pairs []attributePair
	if source.Has(ASIL) && reference.Has(SupplierASIL) {
		pairs = append(pairs, attributePair{ASIL, SupplierASIL})
	}
	variants := func() {
		for _, v := range a.params.VariantAttributes {
			pairs = append(pairs, attributePair{v, v})
		}
	}
	switch {
	case source.Has(CustomerCategory):
		pairs = append(pairs, attributePair{CustomerCategory, SupplierCategory})
		variants()
	case source.Has(Typ):
		pairs = append(pairs, attributePair{Typ, Typ})
	default:
		variants()
	}
	return pairs
}

type attributeDiff struct {
	pair     attributePair
	customer string
	supplier string
}

// SSP-08
func (a *Adapter) attributesChangedWhileSettled() rules.Definition {
	settled := normalize.NewStatusSet(a.params.SettledStatus...)
	waived := normalize.NewFoldedStatusSet(a.params.CustomerASILWaived...)

	// A waived customer ASIL accepts any supplier value.
	asilDiffers := func(customer, supplier string) bool {
		return !waived.ContainsText(customer) && !strings.EqualFold(customer, supplier)
	}

	return rules.Definition{
		ID:       "SSP-08",
		Title:    "Classification changed while the OEM status is settled",
		Arity:    rules.Pair,
		Requires: rules.Requirements{Source: []string{OEMStatus}},
		RequiresFor: func(source, reference record.Schema) rules.Requirements {
			var req rules.Requirements
			for _, p := range a.attributePairs(source, reference) {
				req.Source = append(req.Source, p.customer)
				req.Reference = append(req.Reference, p.supplier)
			}
			return req
		},
		SingleFindingPerRecord: true,
		Predicate: func(in rules.Input) *rules.Violation {
			var diffs []attributeDiff
			for _, p := range a.attributePairs(in.SourceSchema, in.ReferenceSchema) {
				src, ref := in.Src(p.customer), in.Ref(p.supplier)
				if p.customer == ASIL && p.supplier == SupplierASIL {
					c, s := asilText(src), asilText(ref)
					if asilDiffers(c, s) {
						diffs = append(diffs, attributeDiff{pair: p, customer: c, supplier: s})
					}
					continue
				}
				if src.IsBlank() && ref.IsBlank() {
					continue
				}
				if !normalize.EqualTags(src.String(), ref.String()) {
					diffs = append(diffs, attributeDiff{pair: p, customer: src.Trimmed(), supplier: ref.Trimmed()})
				}
			}
			if len(diffs) == 0 || settled.Contains(in.Src(OEMStatus)) {
				return nil
			}

			labels := make([]string, len(diffs))
			values := make([]finding.TextPair, len(diffs))
			d := common.NewDetail().
				Field(in.IdentifierAttribute, in.Identifier).
				Separator().
				Indented("Customer File Name", common.FileName(in.SourceName)).
				Indented("Bosch File Name", common.FileName(in.ReferenceName)).
				Separator().
				Line("Attribute Comparison:")
			for i, diff := range diffs {
				labels[i] = diff.pair.label()
				values[i] = finding.TextPair{
					Attribute:   diff.pair.label(),
					Source:      diff.customer,
					Reference:   diff.supplier,
					Categorical: true,
				}
				if i > 0 {
					d.Blank()
				}
				d.Indented("Customer Attribute", diff.pair.customer).
					Indented("Customer Attribute Value ", diff.customer).
					Blank().
					Indented("Bosch Attribute ", diff.pair.supplier).
					Indented("Bosch Attribute Value ", diff.supplier)
			}
			d.Blank().
				Separator().
				Indented(OEMStatus, in.SrcStatus(OEMStatus)).
				Blank().
				Indented("Expected Status", a.params.ExpectedStatus)

			return &rules.Violation{
				Attributes: labels,
				Issue:      fmt.Sprintf("Attributes differ but '%s' is not '%s'.", OEMStatus, a.params.ExpectedStatus),
				Detail:     d.String(),
				Values:     values,
			}
		},
	}
}

// asilText strips trailing separators; blanks yield "".
func asilText(v record.Value) string {
	if v.IsBlank() {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(v.Trimmed(), ","))
}
