// Package cycle implements menstrual cycle prediction and calendar overlays.
//
// Everything in this package is pure date arithmetic: no I/O, no shared state.
package cycle

import (
	"encoding/json"
	"time"
)

const (
	// LutealPhaseDays is the fixed distance between ovulation and the next period.
	LutealPhaseDays = 14
	// FertileDaysBeforeOvulation opens the fertile window.
	FertileDaysBeforeOvulation = 5
	// FertileDaysAfterOvulation closes the fertile window.
	FertileDaysAfterOvulation = 1
)

// Entry holds the fields of a period entry that predictions depend on.
type Entry struct {
	LastPeriodDate time.Time
	CycleLength    int
	PeriodDuration int
	// RecordedAt breaks ties between entries sharing a LastPeriodDate.
	RecordedAt time.Time
}

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar day of t lies within the window.
func (w Window) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days lists every calendar day in the window.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}{
		Start: w.Start.Format(DateLayout),
		End:   w.End.Format(DateLayout),
	})
}

func (w *Window) UnmarshalJSON(data []byte) error {
	var raw struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := ParseDate(raw.Start)
	if err != nil {
		return err
	}
	end, err := ParseDate(raw.End)
	if err != nil {
		return err
	}
	w.Start, w.End = start, end
	return nil
}

// Prediction is derived from a single entry and never persisted.
type Prediction struct {
	NextPeriodPrediction time.Time
	OvulationPrediction  time.Time
	Fertility            Window
}

func (p Prediction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NextPeriodPrediction string `json:"next_period_prediction"`
		OvulationPrediction  string `json:"ovulation_prediction"`
		Fertility            Window `json:"fertility"`
	}{
		NextPeriodPrediction: p.NextPeriodPrediction.Format(DateLayout),
		OvulationPrediction:  p.OvulationPrediction.Format(DateLayout),
		Fertility:            p.Fertility,
	})
}

func (p *Prediction) UnmarshalJSON(data []byte) error {
	var raw struct {
		NextPeriodPrediction string `json:"next_period_prediction"`
		OvulationPrediction  string `json:"ovulation_prediction"`
		Fertility            Window `json:"fertility"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	next, err := ParseDate(raw.NextPeriodPrediction)
	if err != nil {
		return err
	}
	ovulation, err := ParseDate(raw.OvulationPrediction)
	if err != nil {
		return err
	}
	p.NextPeriodPrediction, p.OvulationPrediction, p.Fertility = next, ovulation, raw.Fertility
	return nil
}

// PredictedPeriod returns the days of the next period, assuming the same
// duration as the entry's.
func (p Prediction) PredictedPeriod(periodDuration int) Window {
	return periodWindow(p.NextPeriodPrediction, periodDuration)
}

// CalculatePeriodStats predicts the next period, ovulation and fertile window
// for an entry. It is total over well-formed entries; callers validate lengths.
func CalculatePeriodStats(e Entry) Prediction {
	next := AddDays(e.LastPeriodDate, e.CycleLength)
	ovulation := AddDays(next, -LutealPhaseDays)
	return Prediction{
		NextPeriodPrediction: next,
		OvulationPrediction:  ovulation,
		Fertility: Window{
			Start: AddDays(ovulation, -FertileDaysBeforeOvulation),
			End:   AddDays(ovulation, FertileDaysAfterOvulation),
		},
	}
}

// ActualPeriod returns the recorded period days of an entry.
func (e Entry) ActualPeriod() Window {
	return periodWindow(e.LastPeriodDate, e.PeriodDuration)
}

// LatestEntry picks the entry with the greatest LastPeriodDate. Ties go to the
// later RecordedAt, then to the earlier position in the slice.
func LatestEntry(entries []Entry) (Entry, bool) {
	i := LatestIndex(entries)
	if i < 0 {
		return Entry{}, false
	}
	return entries[i], true
}

// LatestIndex is LatestEntry returning a position, or -1 for no entries.
func LatestIndex(entries []Entry) int {
	if len(entries) == 0 {
		return -1
	}
	latest := 0
	for i := 1; i < len(entries); i++ {
		a, b := DateOnly(entries[i].LastPeriodDate), DateOnly(entries[latest].LastPeriodDate)
		if a.After(b) || (a.Equal(b) && entries[i].RecordedAt.After(entries[latest].RecordedAt)) {
			latest = i
		}
	}
	return latest
}

// CycleDay returns the 1-based day of the cycle that started with the entry,
// or 0 when today precedes the entry.
func CycleDay(e Entry, today time.Time) int {
	n := DaysBetween(e.LastPeriodDate, today)
	if n < 0 {
		return 0
	}
	return n + 1
}

// periodWindow is empty (End before Start) for a non-positive duration.
func periodWindow(start time.Time, duration int) Window {
	return Window{Start: DateOnly(start), End: AddDays(start, duration-1)}
}
