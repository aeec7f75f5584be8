package seed

import (
	"testing"

	"github.com/blaisecz/cycle-tracker/internal/config"
	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRun_Idempotent(t *testing.T) {
	cfg := &config.Config{DatabaseDriver: config.DriverSQLite, DatabaseURL: "file:seedtest?mode=memory&cache=shared"}
	db, err := config.NewDatabase(cfg, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, Run(db, zerolog.Nop()))
	require.NoError(t, Run(db, zerolog.Nop()))

	assert.Equal(t, int64(4), count(t, db, &domain.User{}))
	assert.Equal(t, int64(4*seededCycles), count(t, db, &domain.PeriodEntry{}))
	assert.Equal(t, int64(4), count(t, db, &domain.Settings{}))

	var entries []domain.PeriodEntry
	require.NoError(t, db.Order("last_period_date DESC").Where("user_id = ?", "11111111-1111-1111-1111-111111111111").Find(&entries).Error)
	require.Len(t, entries, seededCycles)
	for i := 1; i < len(entries); i++ {
		gap := int(entries[i-1].LastPeriodDate.Sub(entries[i].LastPeriodDate).Hours() / 24)
		assert.Equal(t, entries[i].CycleLength, gap, "older cycle length should match the gap to the next start")
		assert.NoError(t, entries[i].Validate())
	}
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
