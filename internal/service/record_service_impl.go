package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amoreland/tiller/internal/db"
	"github.com/amoreland/tiller/internal/domain"
	"github.com/amoreland/tiller/internal/repository"
)

type recordService struct {
	uow      db.UnitOfWork
	records  repository.RecordRepo
	observer UseCaseObserver
}

func NewRecordService(uow db.UnitOfWork, records repository.RecordRepo, observers ...UseCaseObserver) RecordService {
	return &recordService{
		uow:      uow,
		records:  records,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recordService) Add(ctx context.Context, r *domain.Record) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "add-record",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"type": string(r.Type)},
		})
	}()

	if err = r.Validate(); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Date.IsZero() {
		r.Date = time.Now().UTC()
	}
	return s.records.Create(ctx, r)
}

// ImportAll persists a batch of records in one transaction. Either the whole
// batch lands or none of it does.
func (s *recordService) ImportAll(ctx context.Context, records []*domain.Record) (count int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-records",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"count": len(records)},
		})
	}()

	for i, r := range records {
		if err = r.Validate(); err != nil {
			return 0, fmt.Errorf("invalid record %d: %w", i, err)
		}
		if r.ID == "" {
			r.ID = uuid.New().String()
		}
		if r.Date.IsZero() {
			r.Date = time.Now().UTC()
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteRecordRepo(tx)
		for _, r := range records {
			if err := repo.Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *recordService) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	return s.records.GetByID(ctx, id)
}

func (s *recordService) List(ctx context.Context) ([]*domain.Record, error) {
	return s.records.List(ctx)
}

func (s *recordService) ListByType(ctx context.Context, t domain.RecordType) ([]*domain.Record, error) {
	return s.records.ListByType(ctx, t)
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}
