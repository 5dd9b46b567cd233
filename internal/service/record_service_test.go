package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoreland/tiller/internal/db"
	"github.com/amoreland/tiller/internal/domain"
	"github.com/amoreland/tiller/internal/repository"
	"github.com/amoreland/tiller/internal/testutil"
)

func newRecordService(t *testing.T) RecordService {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	return NewRecordService(uow, repository.NewSQLiteRecordRepo(database))
}

func TestRecordService_Add_AssignsIDAndDate(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	rec := &domain.Record{
		Type:  domain.RecordWater,
		Title: "Spring water test",
	}
	require.NoError(t, svc.Add(ctx, rec))

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Date.IsZero())

	got, err := svc.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring water test", got.Title)
}

func TestRecordService_Add_KeepsProvidedDate(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	date := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	rec := &domain.Record{
		Type:  domain.RecordSoil,
		Title: "Compost application",
		Date:  date,
	}
	require.NoError(t, svc.Add(ctx, rec))

	got, err := svc.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, date, got.Date)
}

func TestRecordService_Add_RejectsInvalid(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	err := svc.Add(ctx, &domain.Record{Type: domain.RecordTraining})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")

	err = svc.Add(ctx, &domain.Record{Type: "bogus", Title: "Something"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown record type")
}

func TestRecordService_ListByType(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, &domain.Record{Type: domain.RecordTraining, Title: "Session A"}))
	require.NoError(t, svc.Add(ctx, &domain.Record{Type: domain.RecordCleaning, Title: "Bin wash"}))

	cleaning, err := svc.ListByType(ctx, domain.RecordCleaning)
	require.NoError(t, err)
	require.Len(t, cleaning, 1)
	assert.Equal(t, "Bin wash", cleaning[0].Title)
}

func TestRecordService_ImportAll(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	n, err := svc.ImportAll(ctx, []*domain.Record{
		{Type: domain.RecordTraining, Title: "PSA grower training"},
		{Type: domain.RecordWater, Title: "Well water test"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRecordService_ImportAll_InvalidRecordImportsNothing(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	_, err := svc.ImportAll(ctx, []*domain.Record{
		{Type: domain.RecordTraining, Title: "Fine"},
		{Type: "bogus", Title: "Broken"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid record 1")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecordService_ImportAll_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	svc := NewRecordService(uow, repository.NewSQLiteRecordRepo(database))
	ctx := context.Background()

	_, err := svc.ImportAll(ctx, []*domain.Record{
		{Type: domain.RecordTraining, Title: "First"},
		{Type: domain.RecordWater, Title: "Second"},
	})
	require.Error(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a failed batch leaves no partial records")
}

func TestRecordService_Delete(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	rec := &domain.Record{Type: domain.RecordPlan, Title: "Safety plan v1"}
	require.NoError(t, svc.Add(ctx, rec))
	require.NoError(t, svc.Delete(ctx, rec.ID))

	_, err := svc.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
