package domain

import "time"

// CoverageStatus is the persisted outcome of a completed coverage
// determination. The CLI is single-user, so exactly one row exists and
// saves are upserts keyed on the fixed default ID.
type CoverageStatus struct {
	ID            string
	IsCovered     bool
	IsExempt      bool
	ExemptionType ExemptionType
	OutcomeLabel  string
	AnnualSales   string
	Provisional   bool
	Details       map[string]string
	UpdatedAt     time.Time
}

// DefaultStatusID is the fixed primary key of the single status row.
const DefaultStatusID = "default"
