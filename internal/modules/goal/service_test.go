package goal

import (
	"context"
	"fmt"
	"testing"

	"hotleads/internal/database"
	"hotleads/internal/domain"
	"hotleads/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	calls int
	last  []domain.Goal
}

func (p *capturePublisher) PublishGoals(_ int64, goals []domain.Goal) {
	p.calls++
	p.last = goals
}

func setupService(t *testing.T) (*Service, *repository.LeadRepository, *capturePublisher) {
	t.Helper()

	dsn := fmt.Sprintf("file:goal_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	leadRepo := repository.NewLeadRepository(db)
	pub := &capturePublisher{}
	return NewService(repository.NewGoalRepository(db), leadRepo, pub), leadRepo, pub
}

func validGoal() GoalRequest {
	return GoalRequest{Month: "2024-03", LeadTarget: 10, RevenueTarget: 5000, ConversionTarget: 25}
}

func TestGoalCRUD(t *testing.T) {
	svc, _, pub := setupService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, 1, validGoal())
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "2024-03", g.Month)
	assert.Equal(t, 1, pub.calls)

	req := validGoal()
	req.LeadTarget = 20
	updated, err := svc.Update(ctx, 1, g.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.LeadTarget)

	require.NoError(t, svc.Delete(ctx, 1, g.ID))
	assert.Empty(t, pub.last)

	goals, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalValidation(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	req := validGoal()
	req.Month = "marco/2024"
	_, err := svc.Create(ctx, 1, req)
	assert.ErrorIs(t, err, ErrInvalidGoal)

	req = validGoal()
	req.ConversionTarget = 140
	_, err = svc.Create(ctx, 1, req)
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestGoalMutationsOnMissingID(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, "no-such-id", validGoal())
	assert.ErrorIs(t, err, ErrGoalNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1, "no-such-id"), ErrGoalNotFound)
	_, err = svc.GetProgress(ctx, 1, "no-such-id")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGetProgressReflectsCurrentLeads(t *testing.T) {
	svc, leadRepo, _ := setupService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, 1, validGoal())
	require.NoError(t, err)

	entry, _ := domain.ParseDate("2024-03-08")
	saleDate, _ := domain.ParseDate("2024-03-20")
	value := 2500.0
	require.NoError(t, leadRepo.Create(ctx, &domain.Lead{
		UserID:      1,
		FullName:    "João Lima",
		Source:      "WhatsApp",
		Product:     "Produto A",
		Status:      domain.StatusWon,
		Temperature: "Quente",
		Owner:       "Eu",
		EntryDate:   entry,
		SaleValue:   &value,
		SaleDate:    &saleDate,
	}))

	p, err := svc.GetProgress(ctx, 1, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.LeadsGenerated)
	assert.InDelta(t, 2500.0, p.SalesRealized, 1e-9)
	assert.InDelta(t, 10.0, p.LeadsProgress, 1e-9)
	assert.InDelta(t, 50.0, p.RevenueProgress, 1e-9)
}

func TestGoalsScopedPerUser(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, 1, validGoal())
	require.NoError(t, err)

	goals, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, goals)

	_, err = svc.GetProgress(ctx, 2, g.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}
