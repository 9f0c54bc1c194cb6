package settings

import (
	"context"
	"errors"
	"strings"

	"hotleads/internal/domain"
)

var ErrEmptyList = errors.New("every settings list needs at least one entry")

// SettingsRepositoryInterface — persistence for the taxonomy document.
type SettingsRepositoryInterface interface {
	GetOrCreate(ctx context.Context, userID int64) (domain.Settings, error)
	Replace(ctx context.Context, userID int64, s domain.Settings) error
}

// SnapshotPublisher pushes the new settings to live subscriptions.
type SnapshotPublisher interface {
	PublishSettings(userID int64, s domain.Settings)
}

type Service struct {
	repo      SettingsRepositoryInterface
	publisher SnapshotPublisher
}

func NewService(repo SettingsRepositoryInterface, publisher SnapshotPublisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// Get returns the user's settings, bootstrapping the defaults on first
// access.
func (s *Service) Get(ctx context.Context, userID int64) (domain.Settings, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// Replace overwrites the whole document. Lists are normalized (trimmed,
// de-duplicated, order preserved); existing leads keep whatever labels they
// already carry.
func (s *Service) Replace(ctx context.Context, userID int64, in domain.Settings) (domain.Settings, error) {
	normalized := domain.Settings{
		Sources:      normalizeList(in.Sources),
		Statuses:     normalizeList(in.Statuses),
		Products:     normalizeList(in.Products),
		Temperatures: normalizeList(in.Temperatures),
		LossReasons:  normalizeList(in.LossReasons),
		Owners:       normalizeList(in.Owners),
	}

	for _, list := range [][]string{
		normalized.Sources, normalized.Statuses, normalized.Products,
		normalized.Temperatures, normalized.LossReasons, normalized.Owners,
	} {
		if len(list) == 0 {
			return domain.Settings{}, ErrEmptyList
		}
	}

	if err := s.repo.Replace(ctx, userID, normalized); err != nil {
		return domain.Settings{}, err
	}

	if s.publisher != nil {
		s.publisher.PublishSettings(userID, normalized)
	}
	return normalized, nil
}

func normalizeList(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
