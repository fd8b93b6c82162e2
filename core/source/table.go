package source

import (
	"context"
	"fmt"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/database"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/utils"

	"gorm.io/gorm"
)

// LoadTable reads every row of a table into a dataset. The column order of the table
// becomes the schema; NULL cells load as empty.
func LoadTable(ctx context.Context, db *gorm.DB, table string, side record.Side, idAttribute string) (*record.Dataset, error) {
	location := "table " + table
	schema, err := database.ColumnNames(db, table)
	if err != nil {
		return nil, errors.NewDatasetError(location, "reading columns", err)
	}
	if len(schema) == 0 {
		return nil, errors.NewDatasetError(location, "table has no columns or does not exist", nil)
	}
	if idAttribute == "" {
		idAttribute = DefaultIDAttribute
	}

	rows, err := db.WithContext(ctx).Table(table).Rows()
	if err != nil {
		return nil, errors.NewDatasetError(location, "querying rows", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.NewDatasetError(location, "reading result columns", err)
	}

	d := record.NewDataset(table, side, schema, idAttribute)
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.NewDatasetError(location, fmt.Sprintf("scanning row %d", d.Len()+record.FirstDataRow), err)
		}
		cells := make(map[string]string, len(columns))
		for i, col := range columns {
			if values[i] == nil {
				continue
			}
			cells[col] = utils.ToString(values[i])
		}
		d.Append(cells)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatasetError(location, "iterating rows", err)
	}
	return d, nil
}
