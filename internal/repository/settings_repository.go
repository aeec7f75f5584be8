package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns domain.ErrNotFound when the user never saved settings.
func (r *settingsRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	var settings domain.Settings
	err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save upserts the row; the last write wins. UpdatedAt is stamped on every
// save, including rows that were loaded first.
func (r *settingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	settings.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"theme", "display_name", "email", "phone", "updated_at"}),
		}).
		Omit(clause.Associations).
		Create(settings).Error
}
