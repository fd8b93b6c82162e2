// Package diff renders the difference between two attribute values for human review.
//
// Prose is diffed character by character with a longest-matching-block opcode diff
// (equal, replace, insert, delete). Categorical values are compared whole. When one side is
// empty the other side is marked entirely and the empty side shows record.EmptyToken.
//
// Markup decides how deleted and inserted spans are wrapped; Brackets suits logs and
// terminals, HTML suits browser reports.
package diff
