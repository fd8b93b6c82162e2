package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/utils"

	"github.com/goccy/go-yaml"
)

// DefaultIDAttribute is used when a document does not name its identifier attribute.
const DefaultIDAttribute = "Object ID"

// Document is the serialized form of a dataset.
type Document struct {
	Name        string           `yaml:"name" json:"name"`
	Side        string           `yaml:"side,omitempty" json:"side,omitempty"`
	IDAttribute string           `yaml:"id_attribute,omitempty" json:"id_attribute,omitempty"`
	Schema      []string         `yaml:"schema" json:"schema"`
	Records     []map[string]any `yaml:"records" json:"records"`
}

// Decode parses a YAML or JSON dataset document. Location names the document in errors and
// is used as the dataset name when the document has none.
func Decode(data []byte, location string, side record.Side) (*record.Dataset, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewDatasetError(location, "unmarshaling document", err)
	}
	return doc.Dataset(location, side)
}

// Dataset converts the document into a dataset for the given side.
func (doc Document) Dataset(location string, side record.Side) (*record.Dataset, error) {
	if doc.Side != "" && record.Side(doc.Side) != side {
		return nil, errors.NewDatasetError(location,
			fmt.Sprintf("document is a %s dataset, expected %s", doc.Side, side), nil)
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = filepath.Base(location)
	}
	idAttr := strings.TrimSpace(doc.IDAttribute)
	if idAttr == "" {
		idAttr = DefaultIDAttribute
	}

	schema := doc.Schema
	if len(schema) == 0 {
		schema = inferSchema(doc.Records, idAttr)
	}
	if dup := duplicate(schema); dup != "" {
		return nil, errors.NewDatasetError(location, fmt.Sprintf("attribute %q declared twice", dup), nil)
	}

	d := record.NewDataset(name, side, schema, idAttr)
	for _, rec := range doc.Records {
		cells := make(map[string]string, len(rec))
		for k, v := range rec {
			cells[k] = cellText(v)
		}
		d.Append(cells)
	}
	return d, nil
}

// LoadFile reads a dataset document from disk.
func LoadFile(path string, side record.Side) (*record.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDatasetError(path, "reading file", err)
	}
	return Decode(data, path, side)
}

// Encode serializes a dataset as a YAML document.
func Encode(d *record.Dataset) ([]byte, error) {
	doc := Document{
		Name:        d.Name,
		Side:        string(d.Side),
		IDAttribute: d.IDAttribute,
		Schema:      d.Schema,
		Records:     make([]map[string]any, 0, len(d.Records)),
	}
	for _, rec := range d.Records {
		row := make(map[string]any, len(d.Schema))
		for _, attr := range d.Schema {
			row[attr] = rec.Get(attr).String()
		}
		doc.Records = append(doc.Records, row)
	}
	return yaml.Marshal(doc)
}

func cellText(v any) string {
	if list, ok := v.([]any); ok {
		return utils.ToStrings(list)
	}
	return utils.ToString(v)
}

// inferSchema orders the identifier first and the remaining keys alphabetically.
func inferSchema(records []map[string]any, idAttr string) record.Schema {
	seen := map[string]bool{idAttr: true}
	var rest []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	return append(record.Schema{idAttr}, rest...)
}

func duplicate(schema []string) string {
	seen := make(map[string]bool, len(schema))
	for _, attr := range schema {
		if seen[attr] {
			return attr
		}
		seen[attr] = true
	}
	return ""
}
