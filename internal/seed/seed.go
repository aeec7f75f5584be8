package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/config"
	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const seededCycles = 6

var seedConditions = []domain.Condition{
	domain.ConditionNone,
	domain.ConditionStress,
	domain.ConditionPCOS,
	domain.ConditionAnemia,
}

// Run seeds the database with sample users, period entries and settings. Safe to call multiple times.
func Run(db *gorm.DB, log zerolog.Logger) error {
	if err := config.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Prague"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}
	themes := []domain.Theme{domain.ThemeLightPink, domain.ThemeLightPlum, domain.ThemeLightCherry, domain.ThemeLightBrown}

	for i, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}

		settings := domain.Settings{UserID: user.ID, Theme: themes[i%len(themes)]}
		if err := db.Where("user_id = ?", user.ID).FirstOrCreate(&settings).Error; err != nil {
			return fmt.Errorf("failed to create settings for %s: %w", user.ID, err)
		}

		// Per-user source keeps reruns on the same day deterministic.
		rng := rand.New(rand.NewSource(int64(i + 1)))
		n, err := seedEntriesForUser(db, user, rng, time.Now().UTC())
		if err != nil {
			return err
		}
		log.Debug().Str("user_id", user.ID.String()).Int("entries", n).Msg("seeded user")
	}

	log.Info().Int("users", len(users)).Msg("seed completed")
	return nil
}

// seedEntriesForUser walks back from today, one entry per cycle, oldest last.
func seedEntriesForUser(db *gorm.DB, user domain.User, rng *rand.Rand, now time.Time) (int, error) {
	start := cycle.DateOnly(now).AddDate(0, 0, -(5 + rng.Intn(20)))
	cycleLength := 25 + rng.Intn(9)

	for i := 0; i < seededCycles; i++ {
		conditions := []domain.Condition{seedConditions[rng.Intn(len(seedConditions))]}

		clientReqID := fmt.Sprintf("seed-%s-%d", user.ID, i)
		entry := domain.PeriodEntry{
			UserID:          user.ID,
			LastPeriodDate:  start,
			CycleLength:     cycleLength,
			PeriodDuration:  3 + rng.Intn(5),
			Conditions:      domain.NormalizeConditions(conditions),
			Source:          domain.SourceImported,
			ClientRequestID: &clientReqID,
		}

		if err := db.Where("user_id = ? AND client_request_id = ?", user.ID, clientReqID).FirstOrCreate(&entry).Error; err != nil {
			return i, fmt.Errorf("failed to create period entry: %w", err)
		}

		// The older entry's cycle runs up to the start just recorded.
		cycleLength = 25 + rng.Intn(9)
		start = start.AddDate(0, 0, -cycleLength)
	}
	return seededCycles, nil
}
