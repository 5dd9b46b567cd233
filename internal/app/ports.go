package app

import (
	"context"

	"github.com/amoreland/tiller/internal/domain"
)

type StatusUseCase interface {
	SaveOutcome(ctx context.Context, req SaveOutcomeRequest) (*StatusView, error)
	GetStatus(ctx context.Context) (*StatusView, error)
	ClearStatus(ctx context.Context) error
}

type RecordUseCase interface {
	Add(ctx context.Context, r *domain.Record) error
	ImportAll(ctx context.Context, records []*domain.Record) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
	ListByType(ctx context.Context, t domain.RecordType) ([]*domain.Record, error)
	Delete(ctx context.Context, id string) error
}

type ChecklistUseCase interface {
	EnsureSeeded(ctx context.Context) error
	List(ctx context.Context) ([]*domain.ChecklistItem, error)
	ListBySection(ctx context.Context, section string) ([]*domain.ChecklistItem, error)
	Toggle(ctx context.Context, id string) (bool, error)
}
