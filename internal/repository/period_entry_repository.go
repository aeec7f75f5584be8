package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PeriodEntryRepository interface {
	Create(ctx context.Context, entry *domain.PeriodEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PeriodEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.PeriodEntryFilter) ([]domain.PeriodEntry, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.PeriodEntry, error)
	Update(ctx context.Context, entry *domain.PeriodEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.PeriodEntry, error)
	Stats(ctx context.Context, userID uuid.UUID) (*domain.PeriodEntryStats, error)
}

type periodEntryRepository struct {
	db *gorm.DB
}

func NewPeriodEntryRepository(db *gorm.DB) PeriodEntryRepository {
	return &periodEntryRepository{db: db}
}

func (r *periodEntryRepository) Create(ctx context.Context, entry *domain.PeriodEntry) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error; err != nil {
		// A concurrent request with the same client_request_id won the race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("create period entry: %w", err)
	}
	return nil
}

func (r *periodEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PeriodEntry, error) {
	var entry domain.PeriodEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *periodEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.PeriodEntryFilter) ([]domain.PeriodEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_period_date DESC").
		Order("id DESC")

	// Apply date filters
	if filter.From != nil {
		query = query.Where("last_period_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("last_period_date <= ?", filter.To)
	}

	// Apply cursor pagination
	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if cursor != nil {
		// For DESC order: earlier dates, or the same date with a smaller id
		query = query.Where(
			"(last_period_date < ?) OR (last_period_date = ? AND id < ?)",
			cursor.LastPeriodDate, cursor.LastPeriodDate, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.PeriodEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

// ListAll returns every entry of a user, newest first. Calendars need the
// full history since every recorded period is drawn.
func (r *periodEntryRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.PeriodEntry, error) {
	var entries []domain.PeriodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_period_date DESC").
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *periodEntryRepository) Update(ctx context.Context, entry *domain.PeriodEntry) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entry).Error; err != nil {
		return fmt.Errorf("update period entry: %w", err)
	}
	return nil
}

func (r *periodEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.PeriodEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *periodEntryRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.PeriodEntry, error) {
	var entry domain.PeriodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &entry, nil
}

// Stats aggregates count and averages in the database.
func (r *periodEntryRepository) Stats(ctx context.Context, userID uuid.UUID) (*domain.PeriodEntryStats, error) {
	var row struct {
		Count             int64
		AvgCycleLength    *float64
		AvgPeriodDuration *float64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.PeriodEntry{}).
		Select("COUNT(*) AS count, AVG(cycle_length) AS avg_cycle_length, AVG(period_duration) AS avg_period_duration").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("period entry stats: %w", err)
	}

	stats := &domain.PeriodEntryStats{Count: row.Count}
	if row.AvgCycleLength != nil {
		stats.AvgCycleLength = *row.AvgCycleLength
	}
	if row.AvgPeriodDuration != nil {
		stats.AvgPeriodDuration = *row.AvgPeriodDuration
	}
	return stats, nil
}
