package repository

import (
	"context"
	"encoding/json"
	"time"

	"hotleads/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository stores the one-per-user taxonomy document. Lists are
// kept as JSON text so the same schema works on postgres and sqlite.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsModel struct {
	UserID       int64     `gorm:"column:user_id;primaryKey"`
	Sources      string    `gorm:"column:sources;type:text"`
	Statuses     string    `gorm:"column:statuses;type:text"`
	Products     string    `gorm:"column:products;type:text"`
	Temperatures string    `gorm:"column:temperatures;type:text"`
	LossReasons  string    `gorm:"column:loss_reasons;type:text"`
	Owners       string    `gorm:"column:owners;type:text"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (settingsModel) TableName() string { return "settings" }

func toDomainSettings(m settingsModel) domain.Settings {
	return domain.Settings{
		Sources:      fromJSONList(m.Sources),
		Statuses:     fromJSONList(m.Statuses),
		Products:     fromJSONList(m.Products),
		Temperatures: fromJSONList(m.Temperatures),
		LossReasons:  fromJSONList(m.LossReasons),
		Owners:       fromJSONList(m.Owners),
	}
}

func toSettingsModel(userID int64, s domain.Settings) settingsModel {
	return settingsModel{
		UserID:       userID,
		Sources:      toJSONList(s.Sources),
		Statuses:     toJSONList(s.Statuses),
		Products:     toJSONList(s.Products),
		Temperatures: toJSONList(s.Temperatures),
		LossReasons:  toJSONList(s.LossReasons),
		Owners:       toJSONList(s.Owners),
	}
}

// GetOrCreate returns the user's settings document, creating it with the
// built-in defaults on first access. The insert is conflict-safe, so two
// concurrent first reads still converge on a single document.
func (r *SettingsRepository) GetOrCreate(ctx context.Context, userID int64) (domain.Settings, error) {
	var m settingsModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err == nil {
		return toDomainSettings(m), nil
	}
	if err != gorm.ErrRecordNotFound {
		return domain.Settings{}, err
	}

	m = toSettingsModel(userID, domain.DefaultSettings())
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error; err != nil {
		return domain.Settings{}, err
	}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return domain.Settings{}, err
	}
	return toDomainSettings(m), nil
}

// Replace overwrites the whole settings document.
func (r *SettingsRepository) Replace(ctx context.Context, userID int64, s domain.Settings) error {
	m := toSettingsModel(userID, s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func toJSONList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

func fromJSONList(raw string) []string {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []string{}
	}
	return items
}
