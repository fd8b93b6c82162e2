// Package rules evaluates declarative reconciliation rules against matched datasets.
//
// A Definition names the attributes it reads on each side, its arity and a Predicate.
// The Engine checks those requirements against both schemas before a rule runs: a rule whose
// attributes are missing produces exactly one Diagnostic and no findings, while every other
// rule still runs. Rules are independent of each other, so the Engine may evaluate them
// concurrently; results are merged in registration order.
//
// Arity decides what the predicate sees:
//
//   - Unary: every source record on its own
//   - Pair: every (source, reference) pair of a matched record
//   - Unmatched: every source record without a reference record
package rules
