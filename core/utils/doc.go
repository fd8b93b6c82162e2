// Package utils provides common conversion helpers shared by the dataset loaders.
// Cells arrive as driver values from SQL rows or as decoded YAML/JSON scalars; ToString
// turns both into the raw text the record model stores.
package utils
