package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amoreland/tiller/internal/domain"
)

func TestFormatRecords_Empty(t *testing.T) {
	out := FormatRecords(nil)
	assert.Contains(t, out, "No records yet")
}

func TestFormatRecords_TruncatesIDs(t *testing.T) {
	records := []*domain.Record{
		{
			ID:    "3e0f8a52-1d7e-4f3a-9f0c-28a1c4b7d6e5",
			Type:  domain.RecordWater,
			Title: "Well water test",
			Date:  time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	out := FormatRecords(records)
	assert.Contains(t, out, "3e0f8a52")
	assert.NotContains(t, out, "3e0f8a52-1d7e")
	assert.Contains(t, out, "Well water test")
	assert.Contains(t, out, "2026-04-02")
}

func TestFormatRecord_Detail(t *testing.T) {
	rec := &domain.Record{
		ID:    "abc",
		Type:  domain.RecordTraining,
		Title: "PSA grower training",
		Date:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Data:  map[string]string{"trainer": "Extension office"},
		Notes: "All field crew attended.",
	}

	out := FormatRecord(rec)
	assert.Contains(t, out, "PSA GROWER TRAINING")
	assert.Contains(t, out, "training")
	assert.Contains(t, out, "Extension office")
	assert.Contains(t, out, "All field crew attended.")
}
