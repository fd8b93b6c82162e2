// Package match joins source records to reference records.
//
// Two strategies exist. Exact matching groups the reference dataset by its trimmed identifier
// and returns every reference row sharing the source identifier, so duplicate reference keys
// become one-to-many matches rather than errors. Fuzzy matching treats space, underscore and
// period as the same separator, folds case and accepts a source name that is a prefix of the
// reference name; when that fails, only the leading identifier token is retried.
//
// Blank source identifiers are skipped with a debug trace. A key attribute missing from a
// schema aborts the match with an invariant violation naming the side.
package match
