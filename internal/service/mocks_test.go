package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/google/uuid"
)

// MockPeriodEntryRepository is a mock implementation of PeriodEntryRepository
type MockPeriodEntryRepository struct {
	entries         map[uuid.UUID]*domain.PeriodEntry
	clientRequestID map[string]*domain.PeriodEntry
	listResult      []domain.PeriodEntry
	createErr       error
	err             error
}

func NewMockPeriodEntryRepository() *MockPeriodEntryRepository {
	return &MockPeriodEntryRepository{
		entries:         make(map[uuid.UUID]*domain.PeriodEntry),
		clientRequestID: make(map[string]*domain.PeriodEntry),
	}
}

func (m *MockPeriodEntryRepository) Create(ctx context.Context, entry *domain.PeriodEntry) error {
	if m.err != nil {
		return m.err
	}
	if m.createErr != nil {
		return m.createErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries[entry.ID] = entry
	if entry.ClientRequestID != nil {
		key := entry.UserID.String() + ":" + *entry.ClientRequestID
		m.clientRequestID[key] = entry
	}
	return nil
}

func (m *MockPeriodEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PeriodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *entry
	return &cp, nil
}

func (m *MockPeriodEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.PeriodEntryFilter) ([]domain.PeriodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.PeriodEntry, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	return m.ListAll(ctx, userID)
}

func (m *MockPeriodEntryRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.PeriodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.PeriodEntry
	for _, entry := range m.entries {
		if entry.UserID == userID {
			result = append(result, *entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastPeriodDate.After(result[j].LastPeriodDate)
	})
	return result, nil
}

func (m *MockPeriodEntryRepository) Update(ctx context.Context, entry *domain.PeriodEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockPeriodEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockPeriodEntryRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.PeriodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := userID.String() + ":" + clientRequestID
	entry, ok := m.clientRequestID[key]
	if !ok {
		return nil, nil
	}
	return entry, nil
}

func (m *MockPeriodEntryRepository) Stats(ctx context.Context, userID uuid.UUID) (*domain.PeriodEntryStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	stats := &domain.PeriodEntryStats{}
	var cycleSum, durationSum int
	for _, entry := range m.entries {
		if entry.UserID != userID {
			continue
		}
		stats.Count++
		cycleSum += entry.CycleLength
		durationSum += entry.PeriodDuration
	}
	if stats.Count > 0 {
		stats.AvgCycleLength = float64(cycleSum) / float64(stats.Count)
		stats.AvgPeriodDuration = float64(durationSum) / float64(stats.Count)
	}
	return stats, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) UpdateTimezone(ctx context.Context, id uuid.UUID, timezone string) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.Timezone = timezone
	return nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	settings map[uuid.UUID]domain.Settings
	saves    int
	err      error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{settings: make(map[uuid.UUID]domain.Settings)}
}

func (m *MockSettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.settings[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.settings[settings.UserID] = *settings
	return nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	Unavailable  bool
	GenerateFunc func(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

func (m *MockInsightsLLM) Available() bool {
	return !m.Unavailable
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	return m.GenerateFunc(ctx, insightsCtx)
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedUser registers a user with the given timezone and returns its ID.
func seedUser(repo *MockUserRepository, tz string) uuid.UUID {
	user := &domain.User{ID: uuid.New(), Timezone: tz}
	repo.users[user.ID] = user
	return user.ID
}
