package cycle

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownVariant is returned for a calendar variant with no renderer.
var ErrUnknownVariant = errors.New("unknown calendar variant")

const (
	VariantFull = "full"
	VariantMini = "mini"
)

// DayRenderer decides how a calendar variant shows a single day.
type DayRenderer interface {
	Name() string
	Render(day time.Time, o *Overlay) DayKind
}

// FullRenderer shows all four categories.
type FullRenderer struct{}

func (FullRenderer) Name() string { return VariantFull }

func (FullRenderer) Render(day time.Time, o *Overlay) DayKind {
	return o.Classify(day)
}

// MiniRenderer is the compact view: the latest entry's period days, its
// predicted period and ovulation. The fertile window is not shown.
type MiniRenderer struct{}

func (MiniRenderer) Name() string { return VariantMini }

func (MiniRenderer) Render(day time.Time, o *Overlay) DayKind {
	switch {
	case o.latestPeriod.has(day):
		return DayPeriod
	case o.Has(DayOvulation, day):
		return DayOvulation
	case o.Has(DayPredicted, day):
		return DayPredicted
	default:
		return DayNone
	}
}

// RendererFor returns the renderer registered for a variant name.
// An empty name selects the full calendar.
func RendererFor(variant string) (DayRenderer, error) {
	switch variant {
	case "", VariantFull:
		return FullRenderer{}, nil
	case VariantMini:
		return MiniRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date    string  `json:"date"`
	Day     int     `json:"day"`
	Kind    DayKind `json:"kind"`
	InMonth bool    `json:"in_month"`
	IsToday bool    `json:"is_today"`
}

// MonthGrid lays out the weeks (Sunday first) covering the month of `month`.
func MonthGrid(month time.Time, r DayRenderer, o *Overlay, today time.Time) []CalendarDay {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))
	todayKey := DayKey(today)

	days := make([]CalendarDay, 0, 42)
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		days = append(days, CalendarDay{
			Date:    key,
			Day:     d.Day(),
			Kind:    r.Render(d, o),
			InMonth: d.Month() == monthStart.Month(),
			IsToday: key == todayKey,
		})
	}
	return days
}
