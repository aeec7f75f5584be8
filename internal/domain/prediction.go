package domain

import (
	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/google/uuid"
)

// LatestPredictionResponse is the prediction derived from a user's latest entry.
// @Description Prediction from the most recent period entry.
type LatestPredictionResponse struct {
	// Entry the prediction was derived from
	EntryID        uuid.UUID `json:"entry_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	LastPeriodDate string    `json:"last_period_date" example:"2024-02-01"`
	CycleLength    int       `json:"cycle_length" example:"28"`
	PeriodDuration int       `json:"period_duration" example:"5"`
	// Predicted next period, ovulation and fertile window
	Prediction cycle.Prediction `json:"prediction"`
	// Predicted days of the next period
	PredictedPeriod cycle.Window `json:"predicted_period"`
	// Today's date in the user's timezone
	Today string `json:"today" example:"2024-02-10"`
	// 1-based day of the current cycle, 0 if the entry is in the future
	CurrentCycleDay int `json:"current_cycle_day" example:"10"`
	// Days until the predicted next period (negative when overdue)
	DaysUntilNextPeriod int `json:"days_until_next_period" example:"19"`
}

// CalendarResponse is a rendered month grid.
// @Description Calendar month with one classified cell per day.
type CalendarResponse struct {
	Month   string              `json:"month" example:"2024-02"`
	Variant string              `json:"variant" example:"full"`
	Today   string              `json:"today" example:"2024-02-10"`
	Days    []cycle.CalendarDay `json:"days"`
}

// CalendarDayInfo lists every category of one date, without occlusion.
// @Description Cycle events on a single date.
type CalendarDayInfo struct {
	Date string          `json:"date" example:"2024-02-15"`
	Kind cycle.DayKind   `json:"kind" example:"ovulation"`
	Tags []cycle.DayKind `json:"tags"`
}
