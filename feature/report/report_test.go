package report

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/diff"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleResult() *reconcile.Result {
	return &reconcile.Result{
		RunID: "run-1",
		Findings: []finding.Finding{
			{
				RuleID: "PPE-04", Row: 2, Side: "source", Identifier: "R-1", IdentifierAttribute: "Object ID",
				Attributes: []string{"CR-ID_Bosch_PPx"}, Issue: "CR-ID is empty.", Detail: "Object ID: R-1",
			},
			{
				RuleID: "PPE-07", Row: 5, Side: "reference", Identifier: "R-2", IdentifierAttribute: "Object ID",
				Attributes: []string{"Object Text"}, Issue: "Object Text changed.",
				Values: []finding.TextPair{{Attribute: "Object Text vs Object Text", Source: "abc", Reference: "abd"}},
			},
			{
				RuleID: "PPE-07", Row: 6, Side: "reference", Identifier: "R-2", IdentifierAttribute: "Object ID",
				Attributes: []string{"Object Text"}, Issue: "Object Text changed.",
			},
		},
		Diagnostics: []rules.Diagnostic{
			{RuleID: "PPE-03", Side: "source", Kind: rules.KindSchemaGap, Missing: []string{"Anlaufkonfiguration_01"}, Message: "rule PPE-03 skipped"},
		},
		Summary: reconcile.Summary{
			SourceRecords: 3, ReferenceRecords: 2, Findings: 3,
			ByRule: []finding.RuleCount{{RuleID: "PPE-04", Count: 1}, {RuleID: "PPE-07", Count: 2}},
		},
	}
}

func sampleDatasets() (*record.Dataset, *record.Dataset) {
	src := record.NewDataset("C:\\exports\\ppe_customer.xlsx", record.SideSource, record.Schema{"Object ID"}, "Object ID")
	ref := record.NewDataset("ppe_bosch.xlsx", record.SideReference, record.Schema{"Object ID"}, "Object ID")
	return src, ref
}

func TestBuild(t *testing.T) {
	src, ref := sampleDatasets()
	opts := DefaultOptions()
	opts.Project, opts.Direction = "ppe", "import"

	rep := Build(sampleResult(), src, ref, nil, opts)

	assert.Equal(t, "run-1", rep.RunID)
	assert.Equal(t, "ppe_bosch.xlsx", rep.ReferenceName)
	require.Len(t, rep.Entries, 3)
	for i, e := range rep.Entries {
		assert.Equal(t, i+1, e.Number)
	}
	assert.Equal(t, "CR-ID_Bosch_PPx", rep.Entries[0].Attributes)

	require.Len(t, rep.Entries[1].Values, 1)
	v := rep.Entries[1].Values[0]
	assert.Equal(t, "ab[deleted]c[/deleted]", v.Source)
	assert.Equal(t, "ab[inserted]d[/inserted]", v.Reference)

	assert.Nil(t, rep.Translations)
	require.NotNil(t, rep.Updates)
	assert.Equal(t, [][]string{{"R-2", "Yes"}}, rep.Updates.Rows)
	assert.Len(t, rep.Diagnostics, 1)
}

func TestBuild_HTMLMarkup(t *testing.T) {
	src, ref := sampleDatasets()
	rep := Build(sampleResult(), src, ref, diff.New(diff.HTML), Options{})

	v := rep.Entries[1].Values[0]
	assert.Equal(t, `ab<span class="diff-del">c</span>`, v.Source)
	assert.Nil(t, rep.Updates)
}

func TestBuild_EmptyResult(t *testing.T) {
	src, _ := sampleDatasets()
	rep := Build(&reconcile.Result{RunID: "r"}, src, nil, nil, DefaultOptions())

	assert.NotNil(t, rep.Entries)
	assert.Empty(t, rep.Entries)
	assert.Empty(t, rep.ReferenceName)

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"entries":[]`)
}

func translationFinding(ruleID, idAttr, id, customer, bosch string) finding.Finding {
	return finding.Finding{
		RuleID: ruleID, Identifier: id, IdentifierAttribute: idAttr,
		Values: []finding.TextPair{{Attribute: "ReqIF.Text vs Object Text", Source: customer, Reference: bosch}},
	}
}

func TestTranslationCandidates(t *testing.T) {
	findings := []finding.Finding{
		translationFinding("SSP-06", "ReqIF.ForeignID", "F-1", "Neuer Text", "Alter Text"),
		translationFinding("SSP-06", "ReqIF.ForeignID", "F-2", "", "Alter Text"),
		translationFinding("SSP-06", "ReqIF.ForeignID", "F-3", "Empty", "Alter Text"),
		translationFinding("SSP-06", "ReqIF.ForeignID", "F-4", "Text OLE Object", "Text"),
		translationFinding("SSP-06", "ReqIF.ForeignID", "F-5", "OLE Object", "x"),
		translationFinding("SSP-06", "ReqIF.ForeignID", "", "a", "b"),
		translationFinding("SSP-08", "ReqIF.ForeignID", "F-6", "a", "b"),
		translationFinding("SDV01-05", "Object ID", "R-7", "a", "b"),
	}

	table := TranslationCandidates(findings, "SSP-06", "SDV01-05")

	assert.Equal(t, "translation", table.Name)
	assert.Equal(t, []string{"ForeignID", "English_Translation", "Object ID", "Object Text English"}, table.Columns)
	assert.Equal(t, [][]string{
		{"F-1", "New translation required", "", ""},
		{"", "", "R-7", "New translation required"},
	}, table.Rows)
}

func TestTranslationCandidates_SkipsCategoricalPairs(t *testing.T) {
	f := finding.Finding{
		RuleID: "SSP-06", Identifier: "F-1", IdentifierAttribute: "ReqIF.ForeignID",
		Values: []finding.TextPair{{Attribute: "ASIL vs RB_ASIL", Source: "B", Reference: "C", Categorical: true}},
	}
	assert.Equal(t, 0, TranslationCandidates([]finding.Finding{f}, "SSP-06").Len())
}

func TestUpdateCandidates(t *testing.T) {
	findings := []finding.Finding{
		{RuleID: "SDV01-06", Identifier: "R-2"},
		{RuleID: "SDV01-06", Identifier: "R-1"},
		{RuleID: "SDV01-06", Identifier: "R-2"},
		{RuleID: "SDV01-06"},
		{RuleID: "SDV01-05", Identifier: "R-3"},
	}

	table := UpdateCandidates(findings, "SDV01-06")

	assert.Equal(t, []string{"Object ID", "RB_Update_detected"}, table.Columns)
	assert.Equal(t, [][]string{{"R-2", "Yes"}, {"R-1", "Yes"}}, table.Rows)
}

func TestTable_TSV(t *testing.T) {
	table := UpdateCandidates([]finding.Finding{{RuleID: "PPE-07", Identifier: "R-1"}}, "PPE-07")

	data, err := table.TSV()
	require.NoError(t, err)
	assert.Equal(t, "Object ID\tRB_Update_detected\nR-1\tYes\n", string(data))
}

func TestTable_LenNil(t *testing.T) {
	var table *Table
	assert.Equal(t, 0, table.Len())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatJSON},
		{"JSON", FormatJSON},
		{"table", FormatText},
		{"text", FormatText},
		{"md", FormatMarkdown},
		{" markdown ", FormatMarkdown},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	src, ref := sampleDatasets()
	opts := DefaultOptions()
	opts.Project, opts.Direction = "ppe", "import"
	rep := Build(sampleResult(), src, ref, nil, opts)

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rep.Render(&buf, FormatJSON))

		var decoded Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, rep.Entries, decoded.Entries)
	})

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rep.Render(&buf, FormatText))

		out := buf.String()
		assert.Contains(t, out, "PPE import check")
		assert.Contains(t, out, "Source records")
		assert.Contains(t, out, "CR-ID is empty.")
		assert.Contains(t, out, "PPE-03")
	})

	t.Run("Markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rep.Render(&buf, FormatMarkdown))

		out := buf.String()
		assert.Contains(t, out, "# PPE import check")
		assert.Contains(t, out, "## Findings")
		assert.Contains(t, out, "1. PPE-04 (row 2)")
		assert.Contains(t, out, "Object Text vs Object Text")
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Error(t, rep.Render(&bytes.Buffer{}, Format("xlsx")))
	})
}

func TestBaseName(t *testing.T) {
	src, _ := sampleDatasets()
	rep := Build(&reconcile.Result{RunID: "run-1"}, src, nil, nil, Options{})
	assert.Equal(t, "ppe_customer_run-1", rep.BaseName())

	assert.Equal(t, "report", (&Report{}).BaseName())
}

func TestPublish(t *testing.T) {
	src, ref := sampleDatasets()
	rep := Build(sampleResult(), src, ref, nil, DefaultOptions())

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", mock.AnythingOfType("string"), mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	names, err := Publish(context.Background(), client, "bucket", "reports/", rep, FormatJSON, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"reports/ppe_customer_run-1.json",
		"reports/ppe_customer_run-1.md",
		"reports/ppe_customer_run-1_rb_update.tsv",
	}, names)
	client.AssertNumberOfCalls(t, "PutObject", 3)
}

func TestPublish_UploadError(t *testing.T) {
	src, _ := sampleDatasets()
	rep := Build(&reconcile.Result{RunID: "r"}, src, nil, nil, Options{})

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	names, err := Publish(context.Background(), client, "bucket", "", rep)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, names)
}
