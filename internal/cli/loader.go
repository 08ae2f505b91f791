package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/halverson/scribe/internal/employees"
)

// LoadDocument reads an arbitrary YAML document from path. JSON files
// load through the same path since YAML is a JSON superset. Mappings
// decode as map[string]any, sequences as []any, scalars as their
// natural Go types.
func LoadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// LoadRecords reads roster records from a YAML file holding a
// top-level list of records.
func LoadRecords(path string) ([]employees.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	var records []employees.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
