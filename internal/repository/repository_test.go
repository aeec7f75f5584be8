package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.PeriodEntry{}, &domain.Settings{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createUser(t *testing.T, repo UserRepository) *domain.User {
	t.Helper()
	user := &domain.User{Timezone: "UTC"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := createUser(t, repo)
	assert.NotEqual(t, uuid.Nil, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "UTC", got.Timezone)

	exists, err := repo.Exists(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	exists, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Create(ctx, &domain.User{ID: user.ID, Timezone: "Asia/Tokyo"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, repo.UpdateTimezone(ctx, user.ID, "America/Chicago"))
	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", got.Timezone)
	assert.Equal(t, user.CreatedAt.Unix(), got.CreatedAt.Unix())

	assert.ErrorIs(t, repo.UpdateTimezone(ctx, uuid.New(), "UTC"), domain.ErrNotFound)
}

func TestPeriodEntryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createUser(t, NewUserRepository(db))
	repo := NewPeriodEntryRepository(db)

	entry := &domain.PeriodEntry{
		UserID:         user.ID,
		LastPeriodDate: date(2024, 1, 1),
		CycleLength:    28,
		PeriodDuration: 5,
		Conditions:     []domain.Condition{domain.ConditionStress, domain.ConditionAnemia},
		Source:         domain.SourceManual,
	}
	require.NoError(t, repo.Create(ctx, entry))
	require.NotEqual(t, uuid.Nil, entry.ID)

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got.LastPeriodDate.UTC().Format("2006-01-02"))
	assert.Equal(t, []domain.Condition{domain.ConditionStress, domain.ConditionAnemia}, []domain.Condition(got.Conditions))

	got.CycleLength = 30
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.CycleLength)

	require.NoError(t, repo.Delete(ctx, entry.ID))
	_, err = repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, entry.ID), domain.ErrNotFound)
}

func TestPeriodEntryRepository_ListPagination(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createUser(t, NewUserRepository(db))
	other := createUser(t, NewUserRepository(db))
	repo := NewPeriodEntryRepository(db)

	for month := time.January; month <= time.May; month++ {
		require.NoError(t, repo.Create(ctx, &domain.PeriodEntry{
			UserID: user.ID, LastPeriodDate: date(2024, month, 3), CycleLength: 28, PeriodDuration: 5,
			Conditions: []domain.Condition{domain.ConditionNone}, Source: domain.SourceManual,
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.PeriodEntry{
		UserID: other.ID, LastPeriodDate: date(2024, 6, 1), CycleLength: 28, PeriodDuration: 5,
		Conditions: []domain.Condition{domain.ConditionNone}, Source: domain.SourceManual,
	}))

	page, err := repo.List(ctx, user.ID, domain.PeriodEntryFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 3, "limit+1 rows signal another page")
	assert.Equal(t, time.May, page[0].LastPeriodDate.Month())
	assert.Equal(t, time.April, page[1].LastPeriodDate.Month())

	cursor := pagination.After(page[1].ID, page[1].LastPeriodDate).Encode()
	page, err = repo.List(ctx, user.ID, domain.PeriodEntryFilter{Limit: 2, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, time.March, page[0].LastPeriodDate.Month())

	_, err = repo.List(ctx, user.ID, domain.PeriodEntryFilter{Cursor: "not-a-cursor"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	from, to := date(2024, 2, 1), date(2024, 3, 31)
	page, err = repo.List(ctx, user.ID, domain.PeriodEntryFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, time.March, page[0].LastPeriodDate.Month())
	assert.Equal(t, time.February, page[1].LastPeriodDate.Month())

	all, err := repo.ListAll(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestPeriodEntryRepository_GetByClientRequestID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createUser(t, NewUserRepository(db))
	repo := NewPeriodEntryRepository(db)

	requestID := "req-1"
	entry := &domain.PeriodEntry{
		UserID: user.ID, LastPeriodDate: date(2024, 1, 1), CycleLength: 28, PeriodDuration: 5,
		Conditions: []domain.Condition{domain.ConditionNone}, Source: domain.SourceManual, ClientRequestID: &requestID,
	}
	require.NoError(t, repo.Create(ctx, entry))

	got, err := repo.GetByClientRequestID(ctx, user.ID, requestID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.ID, got.ID)

	got, err = repo.GetByClientRequestID(ctx, user.ID, "req-2")
	require.NoError(t, err)
	assert.Nil(t, got)

	// The same request id cannot be stored twice for one user.
	dup := *entry
	dup.ID = uuid.Nil
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrDuplicateRequest)
}

func TestPeriodEntryRepository_Stats(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createUser(t, NewUserRepository(db))
	repo := NewPeriodEntryRepository(db)

	stats, err := repo.Stats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Count)
	assert.Zero(t, stats.AvgCycleLength)

	for i, lengths := range [][2]int{{28, 5}, {30, 4}, {29, 6}} {
		require.NoError(t, repo.Create(ctx, &domain.PeriodEntry{
			UserID: user.ID, LastPeriodDate: date(2024, time.Month(i+1), 1),
			CycleLength: lengths[0], PeriodDuration: lengths[1],
			Conditions: []domain.Condition{domain.ConditionNone}, Source: domain.SourceManual,
		}))
	}

	stats, err = repo.Stats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Count)
	assert.InDelta(t, 29.0, stats.AvgCycleLength, 0.001)
	assert.InDelta(t, 5.0, stats.AvgPeriodDuration, 0.001)
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createUser(t, NewUserRepository(db))
	repo := NewSettingsRepository(db)

	_, err := repo.Get(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Save(ctx, &domain.Settings{UserID: user.ID, Theme: domain.ThemeLightPink, DisplayName: "Jane"}))
	require.NoError(t, repo.Save(ctx, &domain.Settings{UserID: user.ID, Theme: domain.ThemeLightPlum, DisplayName: "Jane"}))

	got, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLightPlum, got.Theme)
	assert.Equal(t, "Jane", got.DisplayName)
}

func TestSettingsRepository_SaveRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createUser(t, NewUserRepository(db))
	repo := NewSettingsRepository(db)

	require.NoError(t, repo.Save(ctx, &domain.Settings{UserID: user.ID, Theme: domain.ThemeLightPink}))
	first, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)
	firstSaved := first.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	// Saving the loaded row carries its old timestamp in.
	first.Theme = domain.ThemeLightPlum
	require.NoError(t, repo.Save(ctx, first))
	second, err := repo.Get(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeLightPlum, second.Theme)
	assert.True(t, second.UpdatedAt.After(firstSaved), "updated_at %s not after %s", second.UpdatedAt, firstSaved)
}
