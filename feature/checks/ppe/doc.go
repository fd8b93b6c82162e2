// Package ppe implements the rule family of the PPE project.
//
// PPE datasets carry the project attributes with the "_Bosch_PPx" suffix and are matched on
// "Object ID" in both directions.
//
// # Import Rules
//
//   - PPE-01: Empty Object ID with a forbidden CR status.
//   - PPE-02: CR status "---" although a CR-ID exists and the requirement is not rejected.
//   - PPE-03: Empty Anlaufkonfiguration attributes on a live requirement.
//   - PPE-04: Missing CR-ID.
//   - PPE-05: Empty required attributes on a live requirement.
//   - PPE-06: Changed Object Text without the "neu/geändert" status.
//   - PPE-07: Changed Object Text although the supplier already closed the requirement.
//
// # Export Rules
//
//   - PPE-E01: Requirements with a CR-ID need a supplier decision.
//   - PPE-E02: Headings and information rows must carry "n/a" as supplier status.
package ppe
