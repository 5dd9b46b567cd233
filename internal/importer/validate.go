package importer

import (
	"fmt"
	"time"

	"github.com/amoreland/tiller/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Records) == 0 {
		errs = append(errs, fmt.Errorf("import file has no records"))
	}

	for i, r := range schema.Records {
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("records[%d].title is required", i))
		}
		if r.Type == "" {
			errs = append(errs, fmt.Errorf("records[%d].type is required", i))
		} else if !domain.ValidRecordTypes[r.Type] {
			errs = append(errs, fmt.Errorf("records[%d].type: unknown record type %q", i, r.Type))
		}
		if r.Date != "" {
			if _, err := time.Parse("2006-01-02", r.Date); err != nil {
				errs = append(errs, fmt.Errorf("records[%d].date: invalid date format %q (expected YYYY-MM-DD)", i, r.Date))
			}
		}
	}

	return errs
}
