package repository

import (
	"context"
	"errors"
	"time"

	"hotleads/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

type goalModel struct {
	ID               string    `gorm:"column:id;primaryKey"`
	UserID           int64     `gorm:"column:user_id;index"`
	Month            string    `gorm:"column:month"`
	LeadTarget       int       `gorm:"column:lead_target"`
	RevenueTarget    float64   `gorm:"column:revenue_target"`
	ConversionTarget float64   `gorm:"column:conversion_target"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (goalModel) TableName() string { return "goals" }

func toDomainGoal(m goalModel) domain.Goal {
	return domain.Goal{
		ID:               m.ID,
		UserID:           m.UserID,
		Month:            m.Month,
		LeadTarget:       m.LeadTarget,
		RevenueTarget:    m.RevenueTarget,
		ConversionTarget: m.ConversionTarget,
		CreatedAt:        m.CreatedAt,
	}
}

func toGoalModel(g *domain.Goal) goalModel {
	return goalModel{
		ID:               g.ID,
		UserID:           g.UserID,
		Month:            g.Month,
		LeadTarget:       g.LeadTarget,
		RevenueTarget:    g.RevenueTarget,
		ConversionTarget: g.ConversionTarget,
		CreatedAt:        g.CreatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.CreatedAt = time.Now()

	m := toGoalModel(g)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*g = toDomainGoal(m)
	return nil
}

func (r *GoalRepository) Update(ctx context.Context, userID int64, g *domain.Goal) error {
	m := toGoalModel(g)
	tx := r.db.WithContext(ctx).Model(&goalModel{}).
		Where("id = ? AND user_id = ?", g.ID, userID).
		Select("month", "lead_target", "revenue_target", "conversion_target").
		Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, userID int64, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&goalModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GoalRepository) GetByID(ctx context.Context, userID int64, id string) (*domain.Goal, error) {
	var m goalModel
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	g := toDomainGoal(m)
	return &g, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	var models []goalModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("month DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	goals := make([]domain.Goal, 0, len(models))
	for _, m := range models {
		goals = append(goals, toDomainGoal(m))
	}
	return goals, nil
}
