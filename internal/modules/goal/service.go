package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotleads/internal/domain"
	"hotleads/internal/pkg/validator"
	"hotleads/internal/repository"
)

// Service handles goal CRUD and progress computation.
type Service struct {
	repo      GoalRepositoryInterface
	leads     LeadReader
	publisher SnapshotPublisher
}

func NewService(repo GoalRepositoryInterface, leads LeadReader, publisher SnapshotPublisher) *Service {
	return &Service{
		repo:      repo,
		leads:     leads,
		publisher: publisher,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, req GoalRequest) (*domain.Goal, error) {
	g, err := buildGoal(userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	s.publishSnapshot(ctx, userID)
	return g, nil
}

func (s *Service) Update(ctx context.Context, userID int64, id string, req GoalRequest) (*domain.Goal, error) {
	g, err := buildGoal(userID, req)
	if err != nil {
		return nil, err
	}
	g.ID = id

	if err := s.repo.Update(ctx, userID, g); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	s.publishSnapshot(ctx, userID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGoalNotFound
		}
		return err
	}

	s.publishSnapshot(ctx, userID)
	return nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetProgress recomputes a goal's realized metrics from the current lead
// collection. Nothing is cached; every call reflects the latest snapshot.
func (s *Service) GetProgress(ctx context.Context, userID int64, id string) (Progress, error) {
	g, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Progress{}, ErrGoalNotFound
		}
		return Progress{}, err
	}

	leads, err := s.leads.ListByUser(ctx, userID)
	if err != nil {
		return Progress{}, err
	}

	return Compute(*g, leads)
}

func buildGoal(userID int64, req GoalRequest) (*domain.Goal, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoal, fields)
	}
	if _, err := time.ParseInLocation("2006-01", req.Month, time.Local); err != nil {
		return nil, fmt.Errorf("%w: mesAno must be YYYY-MM", ErrInvalidGoal)
	}

	return &domain.Goal{
		UserID:           userID,
		Month:            req.Month,
		LeadTarget:       req.LeadTarget,
		RevenueTarget:    req.RevenueTarget,
		ConversionTarget: req.ConversionTarget,
	}, nil
}

func (s *Service) publishSnapshot(ctx context.Context, userID int64) {
	if s.publisher == nil {
		return
	}
	goals, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return
	}
	s.publisher.PublishGoals(userID, goals)
}
