// Package reconcile is the entry point that checks a source dataset against a reference
// dataset.
//
// A reconciliation run validates both datasets, matches source records to reference records,
// evaluates a rule set and aggregates the findings:
//
//  1. Validation: a dataset without its identifier attribute aborts the run with an invariant
//     violation naming the side.
//  2. Matching: core/match joins the datasets on the configured key attributes.
//  3. Evaluation: core/rules runs every rule; rules missing attributes become diagnostics.
//  4. Aggregation: core/finding keeps evaluation order and deduplicates single-finding rules.
//
// The package holds no state between runs. The logger, worker count and run id are passed as
// options.
//
// # Adapters
//
// An Adapter bundles the rule family of one project together with the key attributes it
// matches on. Run resolves both and calls Reconcile.
//
// # Usage Example
//
//	res, err := reconcile.Reconcile(ctx, source, reference, defs, match.Config{},
//	    reconcile.WithLogger(log), reconcile.WithWorkers(4))
//	if err != nil {
//	    return err
//	}
//	for _, f := range res.Findings {
//	    fmt.Println(f.RuleID, f.Row, f.Issue)
//	}
package reconcile
