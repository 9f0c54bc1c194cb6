package goal

import (
	"context"

	"hotleads/internal/domain"
)

type GoalRepositoryInterface interface {
	Create(ctx context.Context, g *domain.Goal) error
	Update(ctx context.Context, userID int64, g *domain.Goal) error
	Delete(ctx context.Context, userID int64, id string) error
	GetByID(ctx context.Context, userID int64, id string) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error)
}

// LeadReader supplies the lead collection that realized metrics are derived
// from.
type LeadReader interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Lead, error)
}

type SnapshotPublisher interface {
	PublishGoals(userID int64, goals []domain.Goal)
}
