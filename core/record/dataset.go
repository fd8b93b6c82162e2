package record

import (
	"fmt"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
)

// FirstDataRow is the spreadsheet row of the first record; row 1 holds the header.
const FirstDataRow = 2

// Side names the role a dataset plays in a reconciliation run.
type Side string

const (
	SideSource    Side = "source"
	SideReference Side = "reference"
)

// Dataset is an immutable-by-convention collection of records sharing a schema.
type Dataset struct {
	// Name identifies the dataset in findings and logs (usually the file or table name).
	Name string `json:"name"`
	// Side is the role of the dataset in the run.
	Side Side `json:"side"`
	// Schema is the ordered attribute list.
	Schema Schema `json:"schema"`
	// IDAttribute is the attribute holding the record identifier.
	IDAttribute string `json:"id_attribute"`
	// Records are the rows in document order.
	Records []Record `json:"-"`
}

// NewDataset creates an empty dataset.
func NewDataset(name string, side Side, schema Schema, idAttribute string) *Dataset {
	return &Dataset{
		Name:        name,
		Side:        side,
		Schema:      append(Schema(nil), schema...),
		IDAttribute: idAttribute,
	}
}

// Append adds a record built from raw cell text. Attributes of the schema missing from
// cells are stored as empty; attributes outside the schema are ignored.
func (d *Dataset) Append(cells map[string]string) Record {
	values := make(map[string]Value, len(d.Schema))
	for _, name := range d.Schema {
		raw, ok := cells[name]
		if !ok {
			values[name] = Empty()
			continue
		}
		values[name] = Scalar(raw)
	}
	return d.AppendValues(values)
}

// AppendValues adds a record from typed values, restricted to the schema.
func (d *Dataset) AppendValues(values map[string]Value) Record {
	restricted := make(map[string]Value, len(d.Schema))
	for _, name := range d.Schema {
		v, ok := values[name]
		if !ok || v.IsAbsent() {
			v = Empty()
		}
		restricted[name] = v
	}
	rec := Record{Row: len(d.Records) + FirstDataRow, values: restricted}
	d.Records = append(d.Records, rec)
	return rec
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Validate checks the dataset-level invariants a reconciliation run depends on.
func (d *Dataset) Validate() error {
	side := string(d.Side)
	if side == "" {
		side = "unknown"
	}
	if strings.TrimSpace(d.IDAttribute) == "" {
		return errors.NewInvariantViolation(side, d.Name, "no identifier attribute configured")
	}
	if !d.Schema.Has(d.IDAttribute) {
		return errors.NewInvariantViolation(side, d.Name,
			fmt.Sprintf("identifier attribute %q missing from schema", d.IDAttribute))
	}
	return nil
}
