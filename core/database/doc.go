// Package database handles database connections and schema inspection.
//
// Requirement exports are sometimes staged in a database table (one column per attribute)
// instead of a file. This package opens that database through GORM and reads table
// schemas so core/source can turn a table into a dataset.
//
// # Connect
//
// Connect supports MySQL and SQLite. The connection is optional; file based checks never
// open one.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns in declaration order, which becomes the dataset
// schema. Column names keep their case.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.ColumnNames(db, "ppe_import")
package database
