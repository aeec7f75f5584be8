package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/cycle-tracker/internal/cycle"
	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/repository"
	"github.com/blaisecz/cycle-tracker/pkg/pagination"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type PeriodEntryService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreatePeriodEntryRequest) (*domain.PeriodEntry, bool, error)
	GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.PeriodEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.PeriodEntryFilter) (*domain.PeriodEntryListResponse, error)
	Update(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, req *domain.UpdatePeriodEntryRequest) (*domain.PeriodEntry, error)
	Delete(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (*domain.PeriodEntryStats, error)
}

type periodEntryService struct {
	repo     repository.PeriodEntryRepository
	userRepo repository.UserRepository
}

func NewPeriodEntryService(repo repository.PeriodEntryRepository, userRepo repository.UserRepository) PeriodEntryService {
	return &periodEntryService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Create records a period start.
// Returns (entry, isExisting, error) - isExisting is true if returning existing entry due to idempotency
func (s *periodEntryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreatePeriodEntryRequest) (*domain.PeriodEntry, bool, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, false, err
	}

	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	lastPeriod, err := cycle.ParseDate(req.LastPeriodDate)
	if err != nil {
		return nil, false, fmt.Errorf("%w: last_period_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	entry := &domain.PeriodEntry{
		UserID:          userID,
		LastPeriodDate:  lastPeriod,
		CycleLength:     domain.DefaultCycleLength,
		PeriodDuration:  domain.DefaultPeriodDuration,
		Conditions:      domain.NormalizeConditions(req.Conditions),
		Notes:           req.Notes,
		Source:          domain.SourceManual,
		ClientRequestID: req.ClientRequestID,
	}
	if req.CycleLength != nil {
		entry.CycleLength = *req.CycleLength
	}
	if req.PeriodDuration != nil {
		entry.PeriodDuration = *req.PeriodDuration
	}
	if req.Source != nil {
		entry.Source = *req.Source
	}

	if err := entry.Validate(); err != nil {
		return nil, false, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateRequest) && req.ClientRequestID != nil {
			existing, getErr := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
			if getErr == nil && existing != nil {
				return existing, true, nil
			}
		}
		return nil, false, err
	}

	zerolog.Ctx(ctx).Info().
		Str("user_id", userID.String()).
		Str("entry_id", entry.ID.String()).
		Str("last_period_date", entry.LastPeriodDate.Format(cycle.DateLayout)).
		Msg("period entry recorded")

	return entry, false, nil
}

func (s *periodEntryService) GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.PeriodEntry, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.ownedEntry(ctx, userID, entryID)
}

// Update applies a partial edit and re-validates the result.
func (s *periodEntryService) Update(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, req *domain.UpdatePeriodEntryRequest) (*domain.PeriodEntry, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if req.LastPeriodDate != nil {
		lastPeriod, err := cycle.ParseDate(*req.LastPeriodDate)
		if err != nil {
			return nil, fmt.Errorf("%w: last_period_date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		entry.LastPeriodDate = lastPeriod
	}
	if req.CycleLength != nil {
		entry.CycleLength = *req.CycleLength
	}
	if req.PeriodDuration != nil {
		entry.PeriodDuration = *req.PeriodDuration
	}
	if req.Conditions != nil {
		entry.Conditions = domain.NormalizeConditions(*req.Conditions)
	}
	if req.Notes != nil {
		entry.Notes = req.Notes
	}
	if req.Source != nil {
		entry.Source = *req.Source
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *periodEntryService) Delete(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.ownedEntry(ctx, userID, entryID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, entryID); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Str("user_id", userID.String()).
		Str("entry_id", entryID.String()).
		Msg("period entry deleted")
	return nil
}

func (s *periodEntryService) List(ctx context.Context, userID uuid.UUID, filter domain.PeriodEntryFilter) (*domain.PeriodEntryListResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit

	// Trim to actual limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.PeriodEntryListResponse{
		Data: make([]domain.PeriodEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i := range entries {
		response.Data[i] = entries[i].ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		response.Pagination.NextCursor = pagination.After(last.ID, last.LastPeriodDate).Encode()
	}

	return response, nil
}

func (s *periodEntryService) Stats(ctx context.Context, userID uuid.UUID) (*domain.PeriodEntryStats, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.Stats(ctx, userID)
}

func (s *periodEntryService) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// ownedEntry hides entries of other users behind ErrNotFound.
func (s *periodEntryService) ownedEntry(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.PeriodEntry, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}
