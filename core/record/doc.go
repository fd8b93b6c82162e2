// Package record holds the typed row model shared by every reconciliation component.
//
// A Dataset is an ordered list of Records with a declared Schema and a designated identifier
// attribute. Cell values distinguish three states so rules never guess from raw strings:
//
//   - absent: the attribute is not part of the record at all
//   - empty: the attribute exists but the cell is blank
//   - scalar: any other text, including sentinels such as "n/a"
//
// Records carry their spreadsheet row locus (data index + FirstDataRow) so findings can point
// reviewers at the exact line of the exported document.
package record
