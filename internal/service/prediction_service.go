package service

import (
	"context"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PredictionService derives predictions and calendars from stored entries.
// Nothing it computes is persisted.
type PredictionService interface {
	// Latest predicts from the user's most recent entry.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.LatestPredictionResponse, error)
	// Calendar renders the month containing month with the given variant.
	// A zero month selects the current month in the user's timezone.
	Calendar(ctx context.Context, userID uuid.UUID, month time.Time, variant string) (*domain.CalendarResponse, error)
	// Day lists every category that applies to a single date.
	Day(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.CalendarDayInfo, error)
}

type predictionService struct {
	entryRepo repository.PeriodEntryRepository
	userRepo  repository.UserRepository
	fallback  *time.Location
	now       func() time.Time
}

// NewPredictionService creates a PredictionService. fallback is the timezone
// for users without one; nil means UTC.
func NewPredictionService(entryRepo repository.PeriodEntryRepository, userRepo repository.UserRepository, fallback *time.Location) PredictionService {
	if fallback == nil {
		fallback = time.UTC
	}
	return &predictionService{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		fallback:  fallback,
		now:       time.Now,
	}
}

func (s *predictionService) Latest(ctx context.Context, userID uuid.UUID) (*domain.LatestPredictionResponse, error) {
	ctx, span := otel.Tracer("cycle-tracker-api/predictions").Start(ctx, "PredictionService.Latest",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	user, entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	i := cycle.LatestIndex(domain.CycleEntries(entries))
	if i < 0 {
		return nil, domain.ErrNoEntries
	}
	latest := entries[i]
	e := latest.CycleEntry()
	prediction := cycle.CalculatePeriodStats(e)
	today := s.today(user)

	span.SetAttributes(
		attribute.String("entry.id", latest.ID.String()),
		attribute.String("prediction.next_period", cycle.DayKey(prediction.NextPeriodPrediction)),
	)

	return &domain.LatestPredictionResponse{
		EntryID:             latest.ID,
		LastPeriodDate:      cycle.DayKey(latest.LastPeriodDate),
		CycleLength:         latest.CycleLength,
		PeriodDuration:      latest.PeriodDuration,
		Prediction:          prediction,
		PredictedPeriod:     prediction.PredictedPeriod(latest.PeriodDuration),
		Today:               cycle.DayKey(today),
		CurrentCycleDay:     cycle.CycleDay(e, today),
		DaysUntilNextPeriod: cycle.DaysBetween(today, prediction.NextPeriodPrediction),
	}, nil
}

func (s *predictionService) Calendar(ctx context.Context, userID uuid.UUID, month time.Time, variant string) (*domain.CalendarResponse, error) {
	renderer, err := cycle.RendererFor(variant)
	if err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer("cycle-tracker-api/predictions").Start(ctx, "PredictionService.Calendar",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("calendar.variant", renderer.Name()),
		),
	)
	defer span.End()

	user, entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.today(user)
	if month.IsZero() {
		month = today
	}
	overlay := cycle.BuildOverlay(domain.CycleEntries(entries))
	days := cycle.MonthGrid(month, renderer, overlay, today)

	span.SetAttributes(
		attribute.String("calendar.month", month.Format("2006-01")),
		attribute.Int("calendar.entries", len(entries)),
	)

	return &domain.CalendarResponse{
		Month:   month.Format("2006-01"),
		Variant: renderer.Name(),
		Today:   cycle.DayKey(today),
		Days:    days,
	}, nil
}

func (s *predictionService) Day(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.CalendarDayInfo, error) {
	_, entries, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	overlay := cycle.BuildOverlay(domain.CycleEntries(entries))
	return &domain.CalendarDayInfo{
		Date: cycle.DayKey(day),
		Kind: overlay.Classify(day),
		Tags: overlay.Tags(day),
	}, nil
}

func (s *predictionService) load(ctx context.Context, userID uuid.UUID) (*domain.User, []domain.PeriodEntry, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.entryRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, entries, nil
}

// today is the current calendar day in the user's timezone.
func (s *predictionService) today(user *domain.User) time.Time {
	loc := s.fallback
	if user.Timezone != "" {
		loc = user.Location()
	}
	return cycle.DateOnly(s.now().In(loc))
}
