package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amoreland/tiller/internal/contract"
	"github.com/amoreland/tiller/internal/domain"
	"github.com/amoreland/tiller/internal/repository"
	"github.com/amoreland/tiller/internal/testutil"
)

func newStatusService(t *testing.T) (StatusService, *repository.SQLiteStatusRepo, *repository.SQLiteChecklistRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	statuses := repository.NewSQLiteStatusRepo(database)
	checklist := repository.NewSQLiteChecklistRepo(database)
	svc := NewStatusService(testutil.NewTestUoW(database), statuses)
	return svc, statuses, checklist
}

func TestStatusService_GetStatus_UndeterminedWhenEmpty(t *testing.T) {
	svc, _, _ := newStatusService(t)
	ctx := context.Background()

	view, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, view.Determined)
	assert.False(t, view.IsCovered)
}

func TestStatusService_SaveOutcome_Covered(t *testing.T) {
	svc, _, _ := newStatusService(t)
	ctx := context.Background()

	view, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{
		OutcomeType: "covered",
		AnnualSales: "over_500k",
		Reasons:     []string{"You did not meet the qualified exemption test based on the information provided."},
		Answers:     map[string]string{"q1": "yes", "q2": "no", "q6": "no"},
	})
	require.NoError(t, err)

	assert.True(t, view.Determined)
	assert.True(t, view.IsCovered)
	assert.False(t, view.IsExempt)
	assert.Equal(t, domain.ExemptionNone, view.ExemptionType)
	assert.Equal(t, "Covered by the Produce Safety Rule", view.OutcomeLabel)
	assert.Equal(t, "yes", view.Details["q1"])
	assert.NotEmpty(t, view.Details["reason_1"])
}

func TestStatusService_SaveOutcome_QualifiedExemption(t *testing.T) {
	svc, _, _ := newStatusService(t)
	ctx := context.Background()

	view, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{
		OutcomeType: "qualified_exemption",
	})
	require.NoError(t, err)

	assert.False(t, view.IsCovered)
	assert.True(t, view.IsExempt)
	assert.Equal(t, domain.ExemptionQualified, view.ExemptionType)
}

func TestStatusService_SaveOutcome_ProcessingExemption(t *testing.T) {
	svc, _, checklist := newStatusService(t)
	ctx := context.Background()

	view, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{
		OutcomeType: "eligible_exemption_processing",
	})
	require.NoError(t, err)

	assert.True(t, view.IsExempt)
	assert.Equal(t, domain.ExemptionCommercial, view.ExemptionType)

	// Exempt-via-processing farms get no obligations checklist.
	items, err := checklist.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStatusService_SaveOutcome_SeedsChecklistWhenCovered(t *testing.T) {
	svc, _, checklist := newStatusService(t)
	ctx := context.Background()

	_, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{OutcomeType: "covered"})
	require.NoError(t, err)

	items, err := checklist.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestStatusService_SaveOutcome_ReseedKeepsProgress(t *testing.T) {
	svc, _, checklist := newStatusService(t)
	ctx := context.Background()

	_, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{OutcomeType: "covered"})
	require.NoError(t, err)

	require.NoError(t, checklist.SetDone(ctx, "training-grower", true))

	_, err = svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{OutcomeType: "qualified_exemption"})
	require.NoError(t, err)

	item, err := checklist.GetByID(ctx, "training-grower")
	require.NoError(t, err)
	assert.True(t, item.Done)
}

func TestStatusService_SaveOutcome_UnknownOutcomeRejected(t *testing.T) {
	svc, _, _ := newStatusService(t)
	ctx := context.Background()

	_, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{OutcomeType: "bogus"})
	require.Error(t, err)

	var statusErr *contract.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, contract.StatusErrUnknownOutcome, statusErr.Code)
}

func TestStatusService_SaveOutcome_ProvisionalRoundTrips(t *testing.T) {
	svc, _, _ := newStatusService(t)
	ctx := context.Background()

	view, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{
		OutcomeType: "covered",
		Provisional: true,
	})
	require.NoError(t, err)
	assert.True(t, view.Provisional)
}

func TestStatusService_ClearStatus(t *testing.T) {
	svc, _, _ := newStatusService(t)
	ctx := context.Background()

	_, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{OutcomeType: "covered"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearStatus(ctx))

	view, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, view.Determined)
}

func TestStatusService_SaveOutcome_RollsBackStatusOnChecklistFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	statuses := repository.NewSQLiteStatusRepo(database)
	boom := errors.New("boom")

	// Exec 1 is the status upsert; exec 2 is the first checklist insert.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	svc := NewStatusService(uow, statuses)
	ctx := context.Background()

	_, err := svc.SaveOutcome(ctx, contract.SaveOutcomeRequest{OutcomeType: "covered"})
	require.ErrorIs(t, err, boom)

	view, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, view.Determined, "status write must roll back with the checklist seed")
}
