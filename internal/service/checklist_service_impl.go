package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/amoreland/tiller/internal/db"
	"github.com/amoreland/tiller/internal/domain"
	"github.com/amoreland/tiller/internal/repository"
)

// defaultChecklist is the starter compliance checklist seeded the first
// time a covered or qualified-exempt determination is saved. IDs are
// stable so re-seeding never duplicates or resets user progress.
var defaultChecklist = []domain.ChecklistItem{
	{ID: "training-grower", Section: "training", Title: "Complete an approved grower food safety training"},
	{ID: "training-workers", Section: "training", Title: "Train workers on hygiene and produce handling"},
	{ID: "health-policy", Section: "health", Title: "Set an illness and injury reporting policy"},
	{ID: "health-handwashing", Section: "health", Title: "Provide handwashing stations near work areas"},
	{ID: "water-inventory", Section: "water", Title: "Inventory all agricultural water sources"},
	{ID: "water-testing", Section: "water", Title: "Establish a water testing schedule"},
	{ID: "soil-amendments", Section: "soil", Title: "Document biological soil amendment sources and treatment"},
	{ID: "soil-intervals", Section: "soil", Title: "Track application-to-harvest intervals"},
	{ID: "animals-monitoring", Section: "animals", Title: "Monitor for animal intrusion in covered produce fields"},
	{ID: "equipment-sanitation", Section: "equipment", Title: "Set cleaning schedules for food contact surfaces"},
	{ID: "records-plan", Section: "records", Title: "Draft a farm food safety plan"},
	{ID: "records-retention", Section: "records", Title: "Set up record keeping and retention"},
}

// seedChecklist inserts any default items not already present. Existing
// rows keep their done state.
func seedChecklist(ctx context.Context, repo repository.ChecklistRepo) error {
	for i := range defaultChecklist {
		item := defaultChecklist[i]
		_, err := repo.GetByID(ctx, item.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := repo.Upsert(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}

type checklistService struct {
	uow   db.UnitOfWork
	items repository.ChecklistRepo
}

func NewChecklistService(uow db.UnitOfWork, items repository.ChecklistRepo) ChecklistService {
	return &checklistService{uow: uow, items: items}
}

func (s *checklistService) EnsureSeeded(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return seedChecklist(ctx, repository.NewSQLiteChecklistRepo(tx))
	})
}

func (s *checklistService) List(ctx context.Context) ([]*domain.ChecklistItem, error) {
	return s.items.List(ctx)
}

func (s *checklistService) ListBySection(ctx context.Context, section string) ([]*domain.ChecklistItem, error) {
	return s.items.ListBySection(ctx, section)
}

// Toggle flips the done state of an item and returns the new state.
func (s *checklistService) Toggle(ctx context.Context, id string) (bool, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("loading checklist item: %w", err)
	}
	done := !item.Done
	if err := s.items.SetDone(ctx, id, done); err != nil {
		return false, fmt.Errorf("toggling checklist item: %w", err)
	}
	return done, nil
}
