package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a records import file.
type ImportSchema struct {
	Records []RecordImport `json:"records"`
}

// RecordImport defines one record in the import file. Date is optional and
// defaults to today; Data holds free-form typed fields.
type RecordImport struct {
	Type  string            `json:"type"`
	Title string            `json:"title"`
	Date  string            `json:"date,omitempty"`
	Notes string            `json:"notes,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// LoadImportFile reads and parses an import file from disk.
func LoadImportFile(path string) (*ImportSchema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var schema ImportSchema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
