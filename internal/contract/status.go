package contract

import "github.com/amoreland/tiller/internal/app"

type SaveOutcomeRequest = app.SaveOutcomeRequest

type StatusView = app.StatusView

type StatusErrorCode = app.StatusErrorCode

const (
	StatusErrUnknownOutcome StatusErrorCode = app.StatusErrUnknownOutcome
)

type StatusError = app.StatusError
