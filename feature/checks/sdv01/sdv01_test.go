package sdv01

import (
	"context"
	"testing"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerSchema = record.Schema{
	ObjectID, ObjectText, CustomerText, Typ, Technikvariante,
	CRStatus, CRID, ManufacturerStatus, EntfallRelease, ErsteinsatzRelease,
}

var boschSchema = record.Schema{ObjectID, ObjectText, Typ, CRStatus, CRID, ManufacturerStatus, RBASStatus}

func customer(rows ...map[string]string) *record.Dataset {
	d := record.NewDataset("audi_sdv01.xlsx", record.SideSource, customerSchema, ObjectID)
	for _, r := range rows {
		d.Append(r)
	}
	return d
}

func bosch(rows ...map[string]string) *record.Dataset {
	d := record.NewDataset("bosch_sdv01.xlsx", record.SideReference, boschSchema, ObjectID)
	for _, r := range rows {
		d.Append(r)
	}
	return d
}

func live(id string) map[string]string {
	return map[string]string{
		ObjectID: id, ObjectText: "Text " + id, CustomerText: "Text " + id, Typ: "Anforderung,",
		Technikvariante: "TV1", CRStatus: "020,", CRID: "CR-7", ManufacturerStatus: "akzeptiert,",
		EntfallRelease: "R1", ErsteinsatzRelease: "R0",
	}
}

func mirror(id string) map[string]string {
	return map[string]string{
		ObjectID: id, ObjectText: "Text " + id, Typ: "Anforderung,",
		CRStatus: "020,", CRID: "CR-7", ManufacturerStatus: "akzeptiert", RBASStatus: "open",
	}
}

func byRule(fs []finding.Finding, id string) []finding.Finding {
	var out []finding.Finding
	for _, f := range fs {
		if f.RuleID == id {
			out = append(out, f)
		}
	}
	return out
}

func run(t *testing.T, src, ref *record.Dataset) *reconcile.Result {
	t.Helper()
	res, err := reconcile.Run(context.Background(), New(Params{}), reconcile.Import, src, ref)
	require.NoError(t, err)
	return res
}

func TestRulesOrder(t *testing.T) {
	defs := New(Params{}).Rules(reconcile.Import)
	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{
		"SDV01-01", "SDV01-02", "SDV01-03", "SDV01-04", "SDV01-05",
		"SDV01-06", "SDV01-10", "SDV01-07", "SDV01-08", "SDV01-09",
	}, ids)
	assert.Empty(t, New(Params{}).Rules(reconcile.Export))
}

func TestCleanRun(t *testing.T) {
	res := run(t, customer(live("R1"), live("R2")), bosch(mirror("R1"), mirror("R2")))
	assert.Empty(t, res.Findings)
	assert.Empty(t, res.Diagnostics)
}

func TestEmptyObjectIDWithForbiddenCRStatus(t *testing.T) {
	row := live("")
	row[CRStatus] = "031,"
	res := run(t, customer(row), nil)

	fs := byRule(res.Findings, "SDV01-01")
	require.Len(t, fs, 1)
	assert.Equal(t, "Empty 'Object ID' with forbidden 'CR-Status_Bosch_SDV0.1' value "+
		"(014, 031 or 100 are not allowed with empty Object ID).", fs[0].Issue)
	assert.Equal(t, "Object ID: Empty, CR-Status_Bosch_SDV0.1: 031,", fs[0].Detail)
}

func TestCRStatusMissingWithCRID(t *testing.T) {
	blank := live("R1")
	blank[CRStatus] = ""
	dashes := live("R2")
	dashes[CRStatus] = "---,"
	rejected := live("R3")
	rejected[CRStatus] = ""
	rejected[ManufacturerStatus] = "verworfen"

	res := run(t, customer(blank, dashes, rejected), nil)
	fs := byRule(res.Findings, "SDV01-02")
	require.Len(t, fs, 2)
	assert.Equal(t, "CR-Status_Bosch_SDV0.1: Empty, CR-ID_Bosch_SDV0.1: CR-7, BRS_Status_Hersteller_Bosch_SDV0.1: akzeptiert", fs[0].Detail)
	assert.Equal(t, "R2", fs[1].Identifier)
}

func TestRejectedWithoutRelease(t *testing.T) {
	row := live("R1")
	row[ManufacturerStatus] = "verworfen,"
	row[EntfallRelease] = ""

	res := run(t, customer(row), nil)
	fs := byRule(res.Findings, "SDV01-03")
	require.Len(t, fs, 1)
	assert.Equal(t, []string{EntfallRelease}, fs[0].Attributes)
	assert.Equal(t, "EntfallRelease is empty while 'Object ID' is filled and 'BRS_Status_Hersteller_Bosch_SDV0.1' is 'verworfen'.", fs[0].Issue)
	assert.Equal(t, "Object ID: R1\nBRS_Status_Hersteller_Bosch_SDV0.1: verworfen\nEntfallRelease: Empty\nErsteinsatzRelease: R0", fs[0].Detail)
}

func TestCRIDOrStatusDiffersPerReferenceRow(t *testing.T) {
	src := live("R1")
	src[CRID] = " CR-7 "
	first := mirror("R1")
	first[ManufacturerStatus] = "abgelehnt"
	second := mirror("R1")
	second[CRID] = "CR-8"
	heading := live("R2")
	heading[Typ] = "Überschrift"
	other := mirror("R2")
	other[CRID] = "CR-9"

	res := run(t, customer(src, heading), bosch(first, second, other))
	fs := byRule(res.Findings, "SDV01-04")
	require.Len(t, fs, 2, "one finding per differing reference row")
	assert.Equal(t, "'CR-ID_Bosch_SDV0.1' or 'BRS_Status_Hersteller_Bosch_SDV0.1' differs from Bosch reference file.", fs[0].Issue)
	assert.Contains(t, fs[0].Detail, "Bosch BRS_Status_Hersteller_Bosch_SDV0.1: abgelehnt")
	assert.Contains(t, fs[1].Detail, "Bosch CR-ID_Bosch_SDV0.1: CR-8")
	require.Len(t, fs[0].Values, 2)
	assert.True(t, fs[0].Values[1].Categorical)
}

func TestCustomerTextChangedWithoutStatus(t *testing.T) {
	src := live("R1")
	src[CustomerText] = "Die \"Tür\" öffnet;"
	same := live("R2")
	same[CustomerText] = "Neu"
	same[ManufacturerStatus] = "neu/geändert,"

	ref := mirror("R1")
	ref[ObjectText] = "Die Tür öffnet"
	changed := mirror("R2")
	changed[ObjectText] = "Alt"

	res := run(t, customer(src, same), bosch(ref, changed))
	assert.Empty(t, byRule(res.Findings, "SDV01-05"))

	src[CustomerText] = "Die Tür schließt"
	res = run(t, customer(src), bosch(ref))
	fs := byRule(res.Findings, "SDV01-05")
	require.Len(t, fs, 1)
	assert.Contains(t, fs[0].Detail, "       Customer File ReqIF.Text: Die Tür schließt")
	assert.Contains(t, fs[0].Detail, "       Expected Status: neu/geändert")
}

func TestObjectTextChangedAfterClosure(t *testing.T) {
	src := live("R1")
	src[ObjectText] = "Neu"
	ref := mirror("R1")
	ref[RBASStatus] = "canceled_closed"

	res := run(t, customer(src), bosch(ref))
	fs := byRule(res.Findings, "SDV01-06")
	require.Len(t, fs, 1)
	assert.Equal(t, "reference", fs[0].Side)
	assert.Equal(t, "RB_AS_Status", fs[0].Attributes[1])
}

func TestProtectedCRStatusOverwritten(t *testing.T) {
	src := live("R1")
	src[CRStatus] = "040"
	ref := mirror("R1")
	ref[CRStatus] = "31,"
	kept := live("R2")
	kept[CRStatus] = "100"
	keptRef := mirror("R2")
	keptRef[CRStatus] = "100,"
	noCR := live("R3")
	noCR[CRID] = ""
	noCRRef := mirror("R3")
	noCRRef[CRStatus] = "100"

	res := run(t, customer(src, kept, noCR), bosch(ref, keptRef, noCRRef))
	fs := byRule(res.Findings, "SDV01-10")
	require.Len(t, fs, 1)
	assert.Equal(t, "R1", fs[0].Identifier)
	assert.Equal(t, "'CR-Status_Bosch_SDV0.1' differs from Bosch file. Bosch CR-Status is '100' or '31' and should not be overwritten.", fs[0].Issue)
	assert.Contains(t, fs[0].Detail, "Bosch CR-Status_Bosch_SDV0.1: 31,")
}

func TestRequiredAttributesEmpty(t *testing.T) {
	row := live("R1")
	row[Technikvariante] = ""

	res := run(t, customer(row), nil)
	fs := byRule(res.Findings, "SDV01-07")
	require.Len(t, fs, 1)
	assert.Equal(t, "Technikvariante is empty while BRS_Status_Hersteller_Bosch_SDV0.1 is not 'verworfen'.", fs[0].Issue)
	assert.Equal(t, "Object ID: R1\nEmpty Attributes: Technikvariante\nBRS_Status_Hersteller_Bosch_SDV0.1: akzeptiert", fs[0].Detail)
}

func TestRequiredAttributesUsesAvailableSubset(t *testing.T) {
	src := record.NewDataset("audi.xlsx", record.SideSource, record.Schema{ObjectID, Typ, ManufacturerStatus}, ObjectID)
	src.Append(map[string]string{ObjectID: "R1", Typ: "", ManufacturerStatus: ""})

	res := run(t, src, nil)
	fs := byRule(res.Findings, "SDV01-07")
	require.Len(t, fs, 1)
	assert.Equal(t, []string{Typ}, fs[0].Attributes)
	assert.Contains(t, fs[0].Detail, "BRS_Status_Hersteller_Bosch_SDV0.1: Empty")
}

func TestNewRequirementWithoutCRID(t *testing.T) {
	known := live("R1")
	fresh := live("R9")
	fresh[CRID] = ""
	assigned := live("R8")
	noID := live("")
	noID[CRID] = ""

	res := run(t, customer(known, fresh, assigned, noID), bosch(mirror("R1")))
	fs := byRule(res.Findings, "SDV01-08")
	require.Len(t, fs, 1)
	assert.Equal(t, "R9", fs[0].Identifier)
	assert.Contains(t, fs[0].Detail, "       Bosch Object ID: Not found")
}

func TestCRIDEmptyMessageDependsOnStatus(t *testing.T) {
	open := live("R1")
	open[CRID] = ""
	rejected := live("R2")
	rejected[CRID] = ""
	rejected[ManufacturerStatus] = "verworfen,"

	res := run(t, customer(open, rejected), nil)
	fs := byRule(res.Findings, "SDV01-09")
	require.Len(t, fs, 2)
	assert.Equal(t, "CR-ID_Bosch_SDV0.1 must not be empty.", fs[0].Issue)
	assert.Equal(t, "CR-ID_Bosch_SDV0.1 is empty and BRS_Status_Hersteller_Bosch_SDV0.1 is 'verworfen'. "+
		"A rejected requirement must come with a CR-ID at Bosch.", fs[1].Issue)
	assert.Equal(t, "CR-ID_Bosch_SDV0.1: Empty\nBRS_Status_Hersteller_Bosch_SDV0.1: verworfen", fs[1].Detail)
}

func TestWithoutReferenceOnlyUnaryRulesRun(t *testing.T) {
	res := run(t, customer(live("R1")), nil)
	var skipped []string
	for _, d := range res.Diagnostics {
		skipped = append(skipped, d.RuleID)
	}
	assert.Equal(t, []string{"SDV01-04", "SDV01-05", "SDV01-06", "SDV01-10", "SDV01-08"}, skipped)
}
