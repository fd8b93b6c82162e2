// Package report turns a reconciliation result into the reports handed to requirement engineers.
//
// A report numbers the findings from 1, renders the compared values of each finding with diff
// markup and summarizes the counts per rule. Two follow-up lists are derived from the findings:
//
//   - Translation candidates: requirements whose customer text changed and needs a new English
//     translation.
//   - Update candidates: requirements the supplier already closed although the customer changed
//     them.
//
// Reports render as JSON, as a console table or as Markdown, and can be published to the
// object storage bucket next to the datasets they were built from.
package report
