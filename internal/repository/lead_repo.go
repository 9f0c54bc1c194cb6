package repository

import (
	"context"
	"errors"
	"time"

	"hotleads/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a mutation references a record that no longer
// exists. Callers treat it as a no-op failure.
var ErrNotFound = errors.New("record not found")

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID          string       `gorm:"column:id;primaryKey"`
	UserID      int64        `gorm:"column:user_id;index"`
	FullName    string       `gorm:"column:full_name"`
	Phone       *string      `gorm:"column:phone"`
	Email       *string      `gorm:"column:email"`
	CityState   *string      `gorm:"column:city_state"`
	Source      string       `gorm:"column:source"`
	Product     string       `gorm:"column:product"`
	Status      string       `gorm:"column:status"`
	Temperature string       `gorm:"column:temperature"`
	Owner       string       `gorm:"column:owner"`
	EntryDate   domain.Date  `gorm:"column:entry_date"`
	NextContact *domain.Date `gorm:"column:next_contact"`
	Notes       *string      `gorm:"column:notes"`
	SaleValue   *float64     `gorm:"column:sale_value"`
	SaleDate    *domain.Date `gorm:"column:sale_date"`
	LossReason  *string      `gorm:"column:loss_reason"`
	CreatedAt   time.Time    `gorm:"column:created_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) domain.Lead {
	return domain.Lead{
		ID:          m.ID,
		UserID:      m.UserID,
		FullName:    m.FullName,
		Phone:       deref(m.Phone),
		Email:       deref(m.Email),
		CityState:   deref(m.CityState),
		Source:      m.Source,
		Product:     m.Product,
		Status:      m.Status,
		Temperature: m.Temperature,
		Owner:       m.Owner,
		EntryDate:   m.EntryDate,
		NextContact: m.NextContact,
		Notes:       deref(m.Notes),
		SaleValue:   m.SaleValue,
		SaleDate:    m.SaleDate,
		LossReason:  deref(m.LossReason),
		CreatedAt:   m.CreatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	return leadModel{
		ID:          l.ID,
		UserID:      l.UserID,
		FullName:    l.FullName,
		Phone:       nullable(l.Phone),
		Email:       nullable(l.Email),
		CityState:   nullable(l.CityState),
		Source:      l.Source,
		Product:     l.Product,
		Status:      l.Status,
		Temperature: l.Temperature,
		Owner:       l.Owner,
		EntryDate:   l.EntryDate,
		NextContact: l.NextContact,
		Notes:       nullable(l.Notes),
		SaleValue:   l.SaleValue,
		SaleDate:    l.SaleDate,
		LossReason:  nullable(l.LossReason),
		CreatedAt:   l.CreatedAt,
	}
}

// Create inserts a new lead. The ID is assigned here, the creation timestamp
// is server-assigned and immutable afterwards.
func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now()

	m := toLeadModel(l)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*l = toDomainLead(m)
	return nil
}

// Update replaces the editable fields of an existing lead. UserID and
// CreatedAt never change.
func (r *LeadRepository) Update(ctx context.Context, userID int64, l *domain.Lead) error {
	m := toLeadModel(l)
	tx := r.db.WithContext(ctx).Model(&leadModel{}).
		Where("id = ? AND user_id = ?", l.ID, userID).
		Select("full_name", "phone", "email", "city_state", "source", "product",
			"status", "temperature", "owner", "entry_date", "next_contact",
			"notes", "sale_value", "sale_date", "loss_reason").
		Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, userID int64, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&leadModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, userID int64, id string) (*domain.Lead, error) {
	var m leadModel
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	l := toDomainLead(m)
	return &l, nil
}

// ListByUser returns the user's full lead collection ordered by entry date,
// newest first.
func (r *LeadRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Lead, error) {
	var models []leadModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date DESC, created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, toDomainLead(m))
	}
	return leads, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}
