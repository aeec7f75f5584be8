package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateFunc  func(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) UpdateTimezone(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return &domain.User{ID: id, Timezone: req.Timezone}, nil
}

// MockPeriodEntryService is a mock implementation of PeriodEntryService
type MockPeriodEntryService struct {
	createFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreatePeriodEntryRequest) (*domain.PeriodEntry, bool, error)
	getByIDFunc func(ctx context.Context, userID, entryID uuid.UUID) (*domain.PeriodEntry, error)
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.PeriodEntryFilter) (*domain.PeriodEntryListResponse, error)
	updateFunc  func(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdatePeriodEntryRequest) (*domain.PeriodEntry, error)
	deleteFunc  func(ctx context.Context, userID, entryID uuid.UUID) error
	statsFunc   func(ctx context.Context, userID uuid.UUID) (*domain.PeriodEntryStats, error)
}

func (m *MockPeriodEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreatePeriodEntryRequest) (*domain.PeriodEntry, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return sampleEntry(userID), false, nil
}

func (m *MockPeriodEntryService) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.PeriodEntry, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, entryID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockPeriodEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.PeriodEntryFilter) (*domain.PeriodEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.PeriodEntryListResponse{
		Data:       []domain.PeriodEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockPeriodEntryService) Update(ctx context.Context, userID, entryID uuid.UUID, req *domain.UpdatePeriodEntryRequest) (*domain.PeriodEntry, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, entryID, req)
	}
	entry := sampleEntry(userID)
	entry.ID = entryID
	return entry, nil
}

func (m *MockPeriodEntryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, entryID)
	}
	return nil
}

func (m *MockPeriodEntryService) Stats(ctx context.Context, userID uuid.UUID) (*domain.PeriodEntryStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, userID)
	}
	return &domain.PeriodEntryStats{}, nil
}

// MockPredictionService is a mock implementation of PredictionService
type MockPredictionService struct {
	latestFunc   func(ctx context.Context, userID uuid.UUID) (*domain.LatestPredictionResponse, error)
	calendarFunc func(ctx context.Context, userID uuid.UUID, month time.Time, variant string) (*domain.CalendarResponse, error)
	dayFunc      func(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.CalendarDayInfo, error)
}

func (m *MockPredictionService) Latest(ctx context.Context, userID uuid.UUID) (*domain.LatestPredictionResponse, error) {
	return m.latestFunc(ctx, userID)
}

func (m *MockPredictionService) Calendar(ctx context.Context, userID uuid.UUID, month time.Time, variant string) (*domain.CalendarResponse, error) {
	return m.calendarFunc(ctx, userID, month, variant)
}

func (m *MockPredictionService) Day(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.CalendarDayInfo, error) {
	return m.dayFunc(ctx, userID, day)
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	getFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)
	updateFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.Settings, error)
}

func (m *MockSettingsService) Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return domain.DefaultSettings(userID), nil
}

func (m *MockSettingsService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.Settings, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, req)
	}
	s := domain.DefaultSettings(userID)
	if req.Theme != nil {
		s.Theme = *req.Theme
	}
	return s, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	return m.generateFunc(ctx, userID)
}

func sampleEntry(userID uuid.UUID) *domain.PeriodEntry {
	return &domain.PeriodEntry{
		ID:             uuid.New(),
		UserID:         userID,
		LastPeriodDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CycleLength:    28,
		PeriodDuration: 5,
		Conditions:     []domain.Condition{domain.ConditionNone},
		Source:         domain.SourceManual,
		CreatedAt:      time.Now(),
	}
}

// newRequest builds a request with chi URL params attached.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
