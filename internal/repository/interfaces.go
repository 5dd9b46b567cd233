package repository

import (
	"context"
	"errors"

	"github.com/amoreland/tiller/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist. Callers
// match it with errors.Is.
var ErrNotFound = errors.New("not found")

type StatusRepo interface {
	Get(ctx context.Context) (*domain.CoverageStatus, error)
	Upsert(ctx context.Context, s *domain.CoverageStatus) error
	Clear(ctx context.Context) error
}

type RecordRepo interface {
	Create(ctx context.Context, r *domain.Record) error
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context) ([]*domain.Record, error)
	ListByType(ctx context.Context, t domain.RecordType) ([]*domain.Record, error)
	Delete(ctx context.Context, id string) error
}

type ChecklistRepo interface {
	Upsert(ctx context.Context, item *domain.ChecklistItem) error
	GetByID(ctx context.Context, id string) (*domain.ChecklistItem, error)
	List(ctx context.Context) ([]*domain.ChecklistItem, error)
	ListBySection(ctx context.Context, section string) ([]*domain.ChecklistItem, error)
	SetDone(ctx context.Context, id string, done bool) error
}
