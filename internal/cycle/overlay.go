package cycle

import (
	"sort"
	"time"
)

// DayKind classifies a calendar day for rendering.
type DayKind string

const (
	DayNone      DayKind = "none"
	DayPeriod    DayKind = "period"
	DayOvulation DayKind = "ovulation"
	DayFertile   DayKind = "fertile"
	DayPredicted DayKind = "predicted"
)

// Priority orders kinds for occlusion: recorded data always wins over predictions.
var Priority = []DayKind{DayPeriod, DayOvulation, DayFertile, DayPredicted}

// tagOrder is the order categories are listed for a selected date.
var tagOrder = []DayKind{DayPeriod, DayPredicted, DayOvulation, DayFertile}

type daySet map[string]struct{}

func (s daySet) addWindow(w Window) {
	for _, d := range w.Days() {
		s[d.Format(DateLayout)] = struct{}{}
	}
}

func (s daySet) has(t time.Time) bool {
	_, ok := s[DayKey(t)]
	return ok
}

// Overlay holds the date sets derived from a user's entries.
type Overlay struct {
	sets map[DayKind]daySet
	// latestPeriod holds only the latest entry's period days, for compact views.
	latestPeriod daySet

	Latest     *Entry
	Prediction *Prediction
}

// BuildOverlay derives the calendar overlay. Every entry contributes its
// actual period days; only the latest entry contributes predictions.
func BuildOverlay(entries []Entry) *Overlay {
	o := &Overlay{
		sets: map[DayKind]daySet{
			DayPeriod:    {},
			DayPredicted: {},
			DayOvulation: {},
			DayFertile:   {},
		},
		latestPeriod: daySet{},
	}

	for _, e := range entries {
		o.sets[DayPeriod].addWindow(e.ActualPeriod())
	}

	latest, ok := LatestEntry(entries)
	if !ok {
		return o
	}

	p := CalculatePeriodStats(latest)
	o.Latest = &latest
	o.Prediction = &p

	o.latestPeriod.addWindow(latest.ActualPeriod())
	o.sets[DayPredicted].addWindow(p.PredictedPeriod(latest.PeriodDuration))
	o.sets[DayOvulation][DayKey(p.OvulationPrediction)] = struct{}{}
	o.sets[DayFertile].addWindow(p.Fertility)

	return o
}

// Has reports whether t belongs to the given category.
func (o *Overlay) Has(kind DayKind, t time.Time) bool {
	s, ok := o.sets[kind]
	return ok && s.has(t)
}

// Classify resolves the single kind shown for t using Priority.
func (o *Overlay) Classify(t time.Time) DayKind {
	for _, kind := range Priority {
		if o.Has(kind, t) {
			return kind
		}
	}
	return DayNone
}

// Tags lists every category t belongs to, without occlusion.
func (o *Overlay) Tags(t time.Time) []DayKind {
	tags := []DayKind{}
	for _, kind := range tagOrder {
		if o.Has(kind, t) {
			tags = append(tags, kind)
		}
	}
	return tags
}

// Days returns the day keys of a category in ascending order.
func (o *Overlay) Days(kind DayKind) []string {
	s := o.sets[kind]
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
