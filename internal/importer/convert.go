package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amoreland/tiller/internal/domain"
)

// Convert transforms a validated ImportSchema into domain records ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema) ([]*domain.Record, error) {
	now := time.Now().UTC()

	records := make([]*domain.Record, 0, len(schema.Records))
	for i, r := range schema.Records {
		date := now
		if r.Date != "" {
			parsed, err := time.Parse("2006-01-02", r.Date)
			if err != nil {
				return nil, fmt.Errorf("records[%d].date: %w", i, err)
			}
			date = parsed
		}

		records = append(records, &domain.Record{
			ID:    uuid.New().String(),
			Type:  domain.RecordType(r.Type),
			Title: r.Title,
			Date:  date,
			Data:  r.Data,
			Notes: r.Notes,
		})
	}

	return records, nil
}
