// Package normalize canonicalizes attribute values before comparison.
//
// Two exporters rarely render the same requirement text byte-for-byte: whitespace, quote
// glyphs, dashes, zero-width characters and embedded-object markers drift between pipelines.
// This package removes that noise so rules only fire on real wording changes.
//
// # Profiles
//
// A Profile selects which transformations apply. Rules pick a profile per comparison:
//
//   - default: whitespace, quotes, semicolons, lone '?' artifacts, canonical glyphs
//   - strict-wording: like default but keeps '?' and embedded-object markers
//   - symbol-tolerant: default plus the Cleaner (markers removed, special glyphs mapped)
//   - legacy-identifier: default plus case folding and separator collapsing
//
// Normalize is pure and idempotent for every profile.
//
// # Cleaner
//
// The Cleaner strips tool-generated placeholders ("OLE Object", "<<ERROR: embedded object ...>>")
// and maps glyphs that exporters substitute inconsistently onto one placeholder.
//
// # Tags and statuses
//
// EqualTags compares delimited tag lists as sets. Status and StatusSet strip trailing separator
// noise from enumerated status values and map blanks to record.EmptyToken.
package normalize
