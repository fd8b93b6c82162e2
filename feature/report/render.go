package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
)

// Format selects how a report is written.
type Format string

const (
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format name; "md" and "table" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "text", "table":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Extension returns the file extension of a format.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatMarkdown:
		return ".md"
	}
	return ".json"
}

// ContentType returns the MIME type of a format.
func (f Format) ContentType() string {
	switch f {
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	}
	return "application/json"
}

// Render writes the report in the given format.
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatText:
		return r.renderText(w)
	case FormatMarkdown:
		return r.renderMarkdown(w)
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("unknown report format %q", format)
}

func (r *Report) title() string {
	title := "Check report"
	if r.Project != "" {
		title = fmt.Sprintf("%s %s check", strings.ToUpper(r.Project), r.Direction)
	}
	return title
}

func (r *Report) summaryRows() [][]string {
	s := r.Summary
	rows := [][]string{
		{"Source records", strconv.Itoa(s.SourceRecords)},
		{"Reference records", strconv.Itoa(s.ReferenceRecords)},
		{"Matched", strconv.Itoa(s.Matched)},
		{"Unmatched", strconv.Itoa(s.Unmatched)},
		{"Multi-matched", strconv.Itoa(s.MultiMatched)},
		{"Blank identifiers", strconv.Itoa(s.Malformed)},
		{"Rules", strconv.Itoa(s.Rules)},
		{"Skipped rules", strconv.Itoa(s.Skipped)},
		{"Findings", strconv.Itoa(s.Findings)},
	}
	for _, c := range s.ByRule {
		rows = append(rows, []string{c.RuleID, strconv.Itoa(c.Count)})
	}
	return rows
}

func (r *Report) entryRows() [][]string {
	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{
			strconv.Itoa(e.Number), e.RuleID, strconv.Itoa(e.Row), e.Identifier, e.Attributes, e.Issue,
		})
	}
	return rows
}

var entryHeader = []string{"No", "Rule", "Row", "Identifier", "Attributes", "Issue"}

func (r *Report) renderText(w io.Writer) error {
	fmt.Fprintf(w, "%s\nRun: %s\nSource: %s\n", r.title(), r.RunID, r.SourceName)
	if r.ReferenceName != "" {
		fmt.Fprintf(w, "Reference: %s\n", r.ReferenceName)
	}
	fmt.Fprintln(w)

	if err := writeTable(w, []string{"Summary", "Count"}, r.summaryRows()); err != nil {
		return err
	}
	if len(r.Entries) > 0 {
		fmt.Fprintln(w)
		if err := writeTable(w, entryHeader, r.entryRows()); err != nil {
			return err
		}
	}
	if len(r.Diagnostics) > 0 {
		fmt.Fprintln(w)
		rows := make([][]string, 0, len(r.Diagnostics))
		for _, d := range r.Diagnostics {
			rows = append(rows, []string{d.RuleID, string(d.Kind), d.Side, strings.Join(d.Missing, ", ")})
		}
		if err := writeTable(w, []string{"Skipped rule", "Reason", "Side", "Missing"}, rows); err != nil {
			return err
		}
	}
	for _, t := range []*Table{r.Translations, r.Updates} {
		if t.Len() == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", t.Name)
		if err := writeTable(w, t.Columns, t.Rows); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w)

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	table.Header(header...)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

func (r *Report) renderMarkdown(w io.Writer) error {
	doc := md.NewMarkdown(w)
	doc.H1(r.title()).LF()
	doc.BulletList(
		"Run: "+md.Code(r.RunID),
		"Source: "+r.SourceName,
		"Reference: "+orNone(r.ReferenceName),
	).LF()

	doc.H2("Summary").LF()
	doc.Table(md.TableSet{Header: []string{"Summary", "Count"}, Rows: r.summaryRows()}).LF()

	if len(r.Entries) > 0 {
		doc.H2("Findings").LF()
		for _, e := range r.Entries {
			doc.H3(fmt.Sprintf("%d. %s (row %d)", e.Number, e.RuleID, e.Row)).LF()
			doc.PlainText(md.Bold(e.Issue)).LF()
			if e.Detail != "" {
				doc.CodeBlocks(md.SyntaxHighlight("text"), e.Detail).LF()
			}
			if len(e.Values) > 0 {
				rows := make([][]string, 0, len(e.Values))
				for _, v := range e.Values {
					rows = append(rows, []string{v.Attribute, v.Source, v.Reference})
				}
				doc.Table(md.TableSet{Header: []string{"Attribute", "Customer", "Bosch"}, Rows: rows}).LF()
			}
		}
	}

	if len(r.Diagnostics) > 0 {
		doc.H2("Skipped rules").LF()
		items := make([]string, 0, len(r.Diagnostics))
		for _, d := range r.Diagnostics {
			items = append(items, d.Message)
		}
		doc.BulletList(items...).LF()
	}

	for _, t := range []*Table{r.Translations, r.Updates} {
		if t.Len() == 0 {
			continue
		}
		doc.H2(t.Name).LF()
		doc.Table(md.TableSet{Header: t.Columns, Rows: t.Rows}).LF()
	}
	return doc.Build()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
