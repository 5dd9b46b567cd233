package service

import (
	"context"

	"github.com/amoreland/tiller/internal/app"
	"github.com/amoreland/tiller/internal/contract"
	"github.com/amoreland/tiller/internal/domain"
)

type StatusService interface {
	SaveOutcome(ctx context.Context, req contract.SaveOutcomeRequest) (*contract.StatusView, error)
	GetStatus(ctx context.Context) (*contract.StatusView, error)
	ClearStatus(ctx context.Context) error
}

type RecordService interface {
	Add(ctx context.Context, r *domain.Record) error
	ImportAll(ctx context.Context, records []*domain.Record) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
	ListByType(ctx context.Context, t domain.RecordType) ([]*domain.Record, error)
	Delete(ctx context.Context, id string) error
}

type ChecklistService interface {
	EnsureSeeded(ctx context.Context) error
	List(ctx context.Context) ([]*domain.ChecklistItem, error)
	ListBySection(ctx context.Context, section string) ([]*domain.ChecklistItem, error)
	Toggle(ctx context.Context, id string) (bool, error)
}

// The service interfaces satisfy the application-layer ports.
var (
	_ app.StatusUseCase    = (StatusService)(nil)
	_ app.RecordUseCase    = (RecordService)(nil)
	_ app.ChecklistUseCase = (ChecklistService)(nil)
)
