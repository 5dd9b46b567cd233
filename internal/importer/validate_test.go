package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImportSchema_Valid(t *testing.T) {
	schema := &ImportSchema{
		Records: []RecordImport{
			{Type: "training", Title: "PSA grower training", Date: "2026-03-15"},
			{Type: "water", Title: "Well water test", Data: map[string]string{"source": "well 1"}},
		},
	}

	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Records: []RecordImport{
			{Type: "training"},                                      // missing title
			{Title: "No type"},                                      // missing type
			{Type: "vibes", Title: "Bad type"},                      // unknown type
			{Type: "soil", Title: "Bad date", Date: "15/03/2026"},   // bad date format
			{Type: "harvest", Title: "Fine", Date: "2026-08-01"},    // valid
		},
	}

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 4)
	assert.ErrorContains(t, errs[0], "records[0].title")
	assert.ErrorContains(t, errs[1], "records[1].type")
	assert.ErrorContains(t, errs[2], `unknown record type "vibes"`)
	assert.ErrorContains(t, errs[3], "records[3].date")
}

func TestValidateImportSchema_Empty(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "no records")
}
