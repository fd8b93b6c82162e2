// Package finding defines rule violations and their aggregation.
//
// Findings are immutable values. The Aggregator keeps them in evaluation order, since report
// numbering depends on it, and removes repeats only for rules that declare a single finding
// per record.
package finding
