package app

import (
	"time"

	"github.com/amoreland/tiller/internal/domain"
)

// SaveOutcomeRequest carries a completed coverage determination from the
// wizard to the status use case. OutcomeType must be one of the engine's
// outcome keys.
type SaveOutcomeRequest struct {
	OutcomeType  string
	OutcomeLabel string
	Provisional  bool
	AnnualSales  string
	Reasons      []string
	Answers      map[string]string
}

// StatusView is the persisted coverage status as presented to callers.
// Determined is false when no determination has been saved yet; the
// remaining fields are zero in that case.
type StatusView struct {
	Determined    bool
	IsCovered     bool
	IsExempt      bool
	ExemptionType domain.ExemptionType
	OutcomeLabel  string
	AnnualSales   string
	Provisional   bool
	Details       map[string]string
	UpdatedAt     time.Time
}

type StatusErrorCode string

const (
	StatusErrUnknownOutcome StatusErrorCode = "UNKNOWN_OUTCOME"
)

type StatusError struct {
	Code    StatusErrorCode
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}
