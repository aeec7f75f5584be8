package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestPeriodEntryService_Create(t *testing.T) {
	tests := []struct {
		name           string
		req            *domain.CreatePeriodEntryRequest
		wantErr        error
		wantCycle      int
		wantDuration   int
		wantConditions []domain.Condition
	}{
		{
			name:           "defaults applied",
			req:            &domain.CreatePeriodEntryRequest{LastPeriodDate: "2024-01-01"},
			wantCycle:      28,
			wantDuration:   5,
			wantConditions: []domain.Condition{domain.ConditionNone},
		},
		{
			name: "explicit values",
			req: &domain.CreatePeriodEntryRequest{
				LastPeriodDate: "2024-01-01",
				CycleLength:    intPtr(21),
				PeriodDuration: intPtr(4),
				Conditions:     []domain.Condition{domain.ConditionNone, domain.ConditionPCOS},
			},
			wantCycle:      21,
			wantDuration:   4,
			wantConditions: []domain.Condition{domain.ConditionPCOS},
		},
		{
			name:    "zero cycle length rejected",
			req:     &domain.CreatePeriodEntryRequest{LastPeriodDate: "2024-01-01", CycleLength: intPtr(0)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "negative period duration rejected",
			req:     &domain.CreatePeriodEntryRequest{LastPeriodDate: "2024-01-01", PeriodDuration: intPtr(-3)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "malformed date rejected",
			req:     &domain.CreatePeriodEntryRequest{LastPeriodDate: "01/01/2024"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := NewMockUserRepository()
			userID := seedUser(userRepo, "UTC")
			repo := NewMockPeriodEntryRepository()
			svc := NewPeriodEntryService(repo, userRepo)

			entry, existing, err := svc.Create(context.Background(), userID, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
				if len(repo.entries) != 0 {
					t.Error("invalid entry must not be stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() unexpected error = %v", err)
			}
			if existing {
				t.Error("Create() reported an existing entry")
			}
			if entry.CycleLength != tt.wantCycle || entry.PeriodDuration != tt.wantDuration {
				t.Errorf("Create() lengths = %d/%d, want %d/%d", entry.CycleLength, entry.PeriodDuration, tt.wantCycle, tt.wantDuration)
			}
			if !reflect.DeepEqual([]domain.Condition(entry.Conditions), tt.wantConditions) {
				t.Errorf("Create() conditions = %v, want %v", entry.Conditions, tt.wantConditions)
			}
			if entry.Source != domain.SourceManual {
				t.Errorf("Create() source = %q, want manual", entry.Source)
			}
		})
	}
}

func TestPeriodEntryService_Create_UnknownUser(t *testing.T) {
	svc := NewPeriodEntryService(NewMockPeriodEntryRepository(), NewMockUserRepository())

	_, _, err := svc.Create(context.Background(), uuid.New(), &domain.CreatePeriodEntryRequest{LastPeriodDate: "2024-01-01"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestPeriodEntryService_Create_Idempotent(t *testing.T) {
	userRepo := NewMockUserRepository()
	userID := seedUser(userRepo, "UTC")
	repo := NewMockPeriodEntryRepository()
	svc := NewPeriodEntryService(repo, userRepo)

	req := &domain.CreatePeriodEntryRequest{LastPeriodDate: "2024-01-01", ClientRequestID: strPtr("req-1")}
	first, existing, err := svc.Create(context.Background(), userID, req)
	if err != nil || existing {
		t.Fatalf("first Create() = %v, existing %v", err, existing)
	}

	second, existing, err := svc.Create(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	if !existing || second.ID != first.ID {
		t.Errorf("second Create() should return the first entry, got %v (existing %v)", second.ID, existing)
	}
	if len(repo.entries) != 1 {
		t.Errorf("expected 1 stored entry, got %d", len(repo.entries))
	}
}

func TestPeriodEntryService_Create_DuplicateRace(t *testing.T) {
	userRepo := NewMockUserRepository()
	userID := seedUser(userRepo, "UTC")
	repo := NewMockPeriodEntryRepository()
	svc := NewPeriodEntryService(repo, userRepo)

	// Another request stored the same client_request_id after our lookup.
	winner := &domain.PeriodEntry{ID: uuid.New(), UserID: userID, ClientRequestID: strPtr("req-1")}
	repo.createErr = domain.ErrDuplicateRequest
	svc.(*periodEntryService).repo = &raceRepo{
		MockPeriodEntryRepository: repo,
		after:                     map[string]*domain.PeriodEntry{userID.String() + ":req-1": winner},
	}

	got, existing, err := svc.Create(context.Background(), userID, &domain.CreatePeriodEntryRequest{
		LastPeriodDate:  "2024-01-01",
		ClientRequestID: strPtr("req-1"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !existing || got.ID != winner.ID {
		t.Errorf("Create() = %v existing %v, want winner %v", got.ID, existing, winner.ID)
	}
}

// raceRepo misses on the first idempotency lookup and hits afterwards.
type raceRepo struct {
	*MockPeriodEntryRepository
	after   map[string]*domain.PeriodEntry
	lookups int
}

func (r *raceRepo) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.PeriodEntry, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, nil
	}
	return r.after[userID.String()+":"+clientRequestID], nil
}

func TestPeriodEntryService_Update(t *testing.T) {
	userRepo := NewMockUserRepository()
	userID := seedUser(userRepo, "UTC")
	otherID := seedUser(userRepo, "UTC")
	repo := NewMockPeriodEntryRepository()
	svc := NewPeriodEntryService(repo, userRepo)

	entry, _, err := svc.Create(context.Background(), userID, &domain.CreatePeriodEntryRequest{LastPeriodDate: "2024-01-01"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name    string
		userID  uuid.UUID
		req     *domain.UpdatePeriodEntryRequest
		wantErr error
	}{
		{name: "change cycle length", userID: userID, req: &domain.UpdatePeriodEntryRequest{CycleLength: intPtr(30)}},
		{name: "change date", userID: userID, req: &domain.UpdatePeriodEntryRequest{LastPeriodDate: strPtr("2024-01-03")}},
		{name: "invalid duration", userID: userID, req: &domain.UpdatePeriodEntryRequest{PeriodDuration: intPtr(0)}, wantErr: domain.ErrInvalidInput},
		{name: "malformed date", userID: userID, req: &domain.UpdatePeriodEntryRequest{LastPeriodDate: strPtr("tomorrow")}, wantErr: domain.ErrInvalidInput},
		{name: "other user's entry", userID: otherID, req: &domain.UpdatePeriodEntryRequest{CycleLength: intPtr(30)}, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.userID, entry.ID, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	got := repo.entries[entry.ID]
	if got.CycleLength != 30 || got.PeriodDuration != 5 || !got.LastPeriodDate.Equal(date(2024, 1, 3)) {
		t.Errorf("stored entry = %+v", got)
	}
}

func TestPeriodEntryService_Delete(t *testing.T) {
	userRepo := NewMockUserRepository()
	userID := seedUser(userRepo, "UTC")
	otherID := seedUser(userRepo, "UTC")
	repo := NewMockPeriodEntryRepository()
	svc := NewPeriodEntryService(repo, userRepo)

	entry, _, _ := svc.Create(context.Background(), userID, &domain.CreatePeriodEntryRequest{LastPeriodDate: "2024-01-01"})

	if err := svc.Delete(context.Background(), otherID, entry.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete() by other user error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), userID, entry.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(context.Background(), userID, entry.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestPeriodEntryService_List(t *testing.T) {
	userRepo := NewMockUserRepository()
	userID := seedUser(userRepo, "UTC")
	repo := NewMockPeriodEntryRepository()
	svc := NewPeriodEntryService(repo, userRepo)

	repo.listResult = []domain.PeriodEntry{
		{ID: uuid.New(), UserID: userID, LastPeriodDate: date(2024, 3, 1), CycleLength: 28, PeriodDuration: 5},
		{ID: uuid.New(), UserID: userID, LastPeriodDate: date(2024, 2, 1), CycleLength: 28, PeriodDuration: 5},
		{ID: uuid.New(), UserID: userID, LastPeriodDate: date(2024, 1, 1), CycleLength: 28, PeriodDuration: 5},
	}

	resp, err := svc.List(context.Background(), userID, domain.PeriodEntryFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(resp.Data))
	}
	if !resp.Pagination.HasMore || resp.Pagination.NextCursor == "" {
		t.Errorf("expected another page, got %+v", resp.Pagination)
	}
	if got := resp.Data[0].Prediction.NextPeriodPrediction.Format("2006-01-02"); got != "2024-03-29" {
		t.Errorf("first entry prediction = %s, want 2024-03-29", got)
	}

	resp, err = svc.List(context.Background(), userID, domain.PeriodEntryFilter{Limit: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resp.Pagination.HasMore || resp.Pagination.NextCursor != "" {
		t.Errorf("expected last page, got %+v", resp.Pagination)
	}
}

func TestPeriodEntryService_Stats(t *testing.T) {
	userRepo := NewMockUserRepository()
	userID := seedUser(userRepo, "UTC")
	repo := NewMockPeriodEntryRepository()
	svc := NewPeriodEntryService(repo, userRepo)

	for _, req := range []*domain.CreatePeriodEntryRequest{
		{LastPeriodDate: "2024-01-01", CycleLength: intPtr(28), PeriodDuration: intPtr(4)},
		{LastPeriodDate: "2024-01-29", CycleLength: intPtr(30), PeriodDuration: intPtr(6)},
	} {
		if _, _, err := svc.Create(context.Background(), userID, req); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	stats, err := svc.Stats(context.Background(), userID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Count != 2 || stats.AvgCycleLength != 29 || stats.AvgPeriodDuration != 5 {
		t.Errorf("Stats() = %+v", stats)
	}

	if _, err := svc.Stats(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Stats() unknown user error = %v, want ErrNotFound", err)
	}
}
