package lead

import (
	"context"
	"errors"
	"fmt"

	"hotleads/internal/domain"
	"hotleads/internal/pkg/validator"
	"hotleads/internal/repository"
)

// Service handles lead business logic.
type Service struct {
	repo      LeadRepositoryInterface
	settings  SettingsReader
	publisher SnapshotPublisher
}

func NewService(repo LeadRepositoryInterface, settings SettingsReader, publisher SnapshotPublisher) *Service {
	return &Service{
		repo:      repo,
		settings:  settings,
		publisher: publisher,
	}
}

func (s *Service) Create(ctx context.Context, userID int64, req LeadRequest) (*domain.Lead, error) {
	l, err := s.buildLead(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.publishSnapshot(ctx, userID)
	return l, nil
}

// Update replaces all editable fields of the lead.
func (s *Service) Update(ctx context.Context, userID int64, id string, req LeadRequest) (*domain.Lead, error) {
	l, err := s.buildLead(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	l.ID = id

	if err := s.repo.Update(ctx, userID, l); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLeadNotFound
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
			return ErrLeadNotFound
		}
		return err
	}

	s.publishSnapshot(ctx, userID)
	return nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Lead, error) {
	return s.repo.ListByUser(ctx, userID)
}

// buildLead validates the request against the user's taxonomy and converts
// it to a domain lead. Validation happens before any write; enum membership
// is checked only at entry time — leads keep stale labels when a list is
// edited later.
func (s *Service) buildLead(ctx context.Context, userID int64, req LeadRequest) (*domain.Lead, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLead, fields)
	}

	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !settings.HasSource(req.Source) {
		return nil, fmt.Errorf("%w: origemLead %q", ErrUnknownOption, req.Source)
	}
	if !settings.HasProduct(req.Product) {
		return nil, fmt.Errorf("%w: produtoInteresse %q", ErrUnknownOption, req.Product)
	}
	if !settings.HasStatus(req.Status) {
		return nil, fmt.Errorf("%w: statusLead %q", ErrUnknownOption, req.Status)
	}
	if !settings.HasTemperature(req.Temperature) {
		return nil, fmt.Errorf("%w: temperatura %q", ErrUnknownOption, req.Temperature)
	}
	if !settings.HasOwner(req.Owner) {
		return nil, fmt.Errorf("%w: responsavel %q", ErrUnknownOption, req.Owner)
	}

	entryDate, err := domain.ParseDate(req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: dataEntrada: %v", ErrInvalidLead, err)
	}
	nextContact, err := optionalDate(req.NextContact)
	if err != nil {
		return nil, fmt.Errorf("%w: proximoContato: %v", ErrInvalidLead, err)
	}

	l := &domain.Lead{
		UserID:      userID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		CityState:   req.CityState,
		Source:      req.Source,
		Product:     req.Product,
		Status:      req.Status,
		Temperature: req.Temperature,
		Owner:       req.Owner,
		EntryDate:   entryDate,
		NextContact: nextContact,
		Notes:       req.Notes,
	}

	// Sale fields only exist on won leads, loss reason only on lost ones.
	if l.IsWon() {
		l.SaleValue = req.SaleValue
		l.SaleDate, err = optionalDate(req.SaleDate)
		if err != nil {
			return nil, fmt.Errorf("%w: dataVenda: %v", ErrInvalidLead, err)
		}
	}
	if l.Status == domain.StatusLost {
		if req.LossReason != "" && !settings.HasLossReason(req.LossReason) {
			return nil, fmt.Errorf("%w: motivoPerda %q", ErrUnknownOption, req.LossReason)
		}
		l.LossReason = req.LossReason
	}

	return l, nil
}

// publishSnapshot re-reads the collection and pushes it out. The mutation
// itself already succeeded; a failed re-read only costs the push.
func (s *Service) publishSnapshot(ctx context.Context, userID int64) {
	if s.publisher == nil {
		return
	}
	leads, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return
	}
	s.publisher.PublishLeads(userID, leads)
}

func optionalDate(s string) (*domain.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
