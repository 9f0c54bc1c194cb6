package lead

import (
	"context"

	"hotleads/internal/domain"
)

// LeadRepositoryInterface — persistence operations the lead service uses.
type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *domain.Lead) error
	Update(ctx context.Context, userID int64, l *domain.Lead) error
	Delete(ctx context.Context, userID int64, id string) error
	GetByID(ctx context.Context, userID int64, id string) (*domain.Lead, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Lead, error)
}

// SettingsReader supplies the taxonomy lists for enum validation.
type SettingsReader interface {
	GetOrCreate(ctx context.Context, userID int64) (domain.Settings, error)
}

// SnapshotPublisher pushes a fresh lead snapshot to any live subscriptions
// after a successful mutation. May be nil when no realtime layer is wired.
type SnapshotPublisher interface {
	PublishLeads(userID int64, leads []domain.Lead)
}
