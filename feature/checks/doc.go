// Package checks exposes the project rule families over HTTP.
//
// The registry maps project names to their rule families (ppe, ssp, sdv01). The service
// resolves the rule family and direction of a request, runs the reconciliation and optionally
// builds and publishes the report.
//
// # HTTP Endpoints
//
//   - GET /checks : Lists the projects.
//   - GET /checks/:project/rules : Lists the rules of a project (supports ?direction=import|export).
//   - POST /checks/:project/:direction : Runs a check (supports ?view=report, ?markup=html and ?publish=true).
//
// A check body carries each dataset either inline as a dataset document or as a location:
//
//	{
//	  "source": {"name": "ppe_customer.xlsx", "schema": ["Object ID", "Object Text"], "records": [...]},
//	  "reference_location": "object:datasets/ppe_bosch.yaml"
//	}
package checks
