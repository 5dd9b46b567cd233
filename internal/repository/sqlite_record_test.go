package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoreland/tiller/internal/domain"
	"github.com/amoreland/tiller/internal/testutil"
)

func TestRecordRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	rec := testutil.NewRecord("Worker training session",
		testutil.WithRecordType(domain.RecordTraining),
		testutil.WithRecordData(map[string]string{"trainer": "J. Alvarez", "attendees": "4"}),
		testutil.WithRecordNotes("Covered hygiene and harvest handling"),
	)
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, domain.RecordTraining, got.Type)
	assert.Equal(t, "Worker training session", got.Title)
	assert.Equal(t, rec.Date, got.Date)
	assert.Equal(t, "J. Alvarez", got.Data["trainer"])
	assert.Equal(t, "Covered hygiene and harvest handling", got.Notes)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRecordRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordRepo_List_OrderedByDateDesc(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	older := testutil.NewRecord("Soil amendment applied",
		testutil.WithRecordType(domain.RecordSoil),
		testutil.WithRecordDate(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
	)
	newer := testutil.NewRecord("Water test result",
		testutil.WithRecordType(domain.RecordWater),
		testutil.WithRecordDate(time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)),
	)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)
}

func TestRecordRepo_ListByType(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewRecord("Training A")))
	require.NoError(t, repo.Create(ctx, testutil.NewRecord("Water test",
		testutil.WithRecordType(domain.RecordWater))))

	water, err := repo.ListByType(ctx, domain.RecordWater)
	require.NoError(t, err)
	require.Len(t, water, 1)
	assert.Equal(t, "Water test", water[0].Title)

	harvest, err := repo.ListByType(ctx, domain.RecordHarvest)
	require.NoError(t, err)
	assert.Empty(t, harvest)
}

func TestRecordRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	rec := testutil.NewRecord("Cleaning log",
		testutil.WithRecordType(domain.RecordCleaning))
	require.NoError(t, repo.Create(ctx, rec))

	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err := repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRecordRepo(db)
	ctx := context.Background()

	err := repo.Delete(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
