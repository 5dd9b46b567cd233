package domain

import (
	"fmt"
	"time"
)

// Record is one produce-safety record kept by the farm: a training log, a
// water test, a cleaning event, and so on. Data holds free-form typed
// fields serialized as JSON.
type Record struct {
	ID        string
	Type      RecordType
	Title     string
	Date      time.Time
	Data      map[string]string
	Notes     string
	CreatedAt time.Time
}

// Validate checks the fields a record needs before persistence.
func (r *Record) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("record title is required")
	}
	if !ValidRecordTypes[string(r.Type)] {
		return fmt.Errorf("unknown record type %q", r.Type)
	}
	return nil
}
