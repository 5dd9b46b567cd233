package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amoreland/tiller/internal/contract"
	"github.com/amoreland/tiller/internal/coverage"
	"github.com/amoreland/tiller/internal/db"
	"github.com/amoreland/tiller/internal/domain"
	"github.com/amoreland/tiller/internal/repository"
)

type statusService struct {
	uow      db.UnitOfWork
	statuses repository.StatusRepo
	observer UseCaseObserver
}

func NewStatusService(
	uow db.UnitOfWork,
	statuses repository.StatusRepo,
	observers ...UseCaseObserver,
) StatusService {
	return &statusService{
		uow:      uow,
		statuses: statuses,
		observer: useCaseObserverOrNoop(observers),
	}
}

// exemptionFor maps an outcome type to the persisted exemption classification.
func exemptionFor(t coverage.OutcomeType) domain.ExemptionType {
	switch t {
	case coverage.OutcomeQualifiedExemption:
		return domain.ExemptionQualified
	case coverage.OutcomeProcessingExemption:
		return domain.ExemptionCommercial
	default:
		return domain.ExemptionNone
	}
}

func (s *statusService) SaveOutcome(ctx context.Context, req contract.SaveOutcomeRequest) (view *contract.StatusView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"outcome": req.OutcomeType}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-outcome",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	outcome := coverage.OutcomeType(req.OutcomeType)
	if outcome.Label() == "" {
		return nil, &contract.StatusError{
			Code:    contract.StatusErrUnknownOutcome,
			Message: fmt.Sprintf("unknown outcome type %q", req.OutcomeType),
		}
	}

	label := req.OutcomeLabel
	if label == "" {
		label = outcome.Label()
	}

	details := map[string]string{}
	for k, v := range req.Answers {
		details[k] = v
	}
	for i, reason := range req.Reasons {
		details[fmt.Sprintf("reason_%d", i+1)] = reason
	}

	status := &domain.CoverageStatus{
		ID:            domain.DefaultStatusID,
		IsCovered:     outcome.Covered(),
		IsExempt:      outcome.Exempt(),
		ExemptionType: exemptionFor(outcome),
		OutcomeLabel:  label,
		AnnualSales:   req.AnnualSales,
		Provisional:   req.Provisional,
		Details:       details,
	}

	// The status row and the seeded checklist land together or not at all.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		statuses := repository.NewSQLiteStatusRepo(tx)
		if err := statuses.Upsert(ctx, status); err != nil {
			return err
		}
		if outcome.Covered() || outcome == coverage.OutcomeQualifiedExemption {
			return seedChecklist(ctx, repository.NewSQLiteChecklistRepo(tx))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetStatus(ctx)
}

func (s *statusService) GetStatus(ctx context.Context) (*contract.StatusView, error) {
	status, err := s.statuses.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &contract.StatusView{Determined: false}, nil
		}
		return nil, fmt.Errorf("loading coverage status: %w", err)
	}

	return &contract.StatusView{
		Determined:    true,
		IsCovered:     status.IsCovered,
		IsExempt:      status.IsExempt,
		ExemptionType: status.ExemptionType,
		OutcomeLabel:  status.OutcomeLabel,
		AnnualSales:   status.AnnualSales,
		Provisional:   status.Provisional,
		Details:       status.Details,
		UpdatedAt:     status.UpdatedAt,
	}, nil
}

func (s *statusService) ClearStatus(ctx context.Context) error {
	if err := s.statuses.Clear(ctx); err != nil {
		return fmt.Errorf("clearing coverage status: %w", err)
	}
	return nil
}
