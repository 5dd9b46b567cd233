package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/amoreland/tiller/internal/domain"
)

// Record options
type RecordOption func(*domain.Record)

func WithRecordType(t domain.RecordType) RecordOption {
	return func(r *domain.Record) {
		r.Type = t
	}
}

func WithRecordDate(d time.Time) RecordOption {
	return func(r *domain.Record) {
		r.Date = d
	}
}

func WithRecordData(data map[string]string) RecordOption {
	return func(r *domain.Record) {
		r.Data = data
	}
}

func WithRecordNotes(notes string) RecordOption {
	return func(r *domain.Record) {
		r.Notes = notes
	}
}

// NewRecord builds a valid training record with the given title, ready to
// persist. Options override individual fields.
func NewRecord(title string, opts ...RecordOption) *domain.Record {
	r := &domain.Record{
		ID:    uuid.New().String(),
		Type:  domain.RecordTraining,
		Title: title,
		Date:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Data:  map[string]string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Checklist options
type ChecklistOption func(*domain.ChecklistItem)

func WithDone(done bool) ChecklistOption {
	return func(c *domain.ChecklistItem) {
		c.Done = done
	}
}

func WithSection(section string) ChecklistOption {
	return func(c *domain.ChecklistItem) {
		c.Section = section
	}
}

// NewChecklistItem builds a checklist item with the given id and title.
func NewChecklistItem(id, title string, opts ...ChecklistOption) *domain.ChecklistItem {
	c := &domain.ChecklistItem{
		ID:      id,
		Section: "general",
		Title:   title,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCoverageStatus builds a covered, non-exempt status row.
func NewCoverageStatus() *domain.CoverageStatus {
	return &domain.CoverageStatus{
		ID:            domain.DefaultStatusID,
		IsCovered:     true,
		IsExempt:      false,
		ExemptionType: domain.ExemptionNone,
		OutcomeLabel:  "Likely Covered",
		Details:       map[string]string{},
	}
}
