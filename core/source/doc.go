// Package source turns stored requirement exports into record datasets.
//
// Three locations are supported:
//
//   - dataset documents (YAML or JSON) on disk
//   - dataset documents in the object storage bucket
//   - database tables with one column per attribute
//
// A dataset document lists the schema explicitly so attribute order survives the round trip:
//
//	name: ppe_customer.xlsx
//	id_attribute: Object ID
//	schema: [Object ID, Object Text, CR-ID_Bosch_PPx]
//	records:
//	  - Object ID: "R-1"
//	    Object Text: Die Bremse muss greifen.
//	    CR-ID_Bosch_PPx: ""
//
// Keys missing from a record and null values load as empty cells. Status codes with leading
// zeros ("014") must be quoted.
package source
