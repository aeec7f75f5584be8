package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type SettingsService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error)
	Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.Settings, error)
}

type settingsService struct {
	repo     repository.SettingsRepository
	userRepo repository.UserRepository
}

func NewSettingsService(repo repository.SettingsRepository, userRepo repository.UserRepository) SettingsService {
	return &settingsService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Get returns the stored settings, or the defaults if none were saved.
func (s *settingsService) Get(ctx context.Context, userID uuid.UUID) (*domain.Settings, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	settings, err := s.repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultSettings(userID), nil
	}
	return settings, err
}

func (s *settingsService) Update(ctx context.Context, userID uuid.UUID, req *domain.UpdateSettingsRequest) (*domain.Settings, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		if !req.Theme.Valid() {
			return nil, fmt.Errorf("%w: unknown theme %q", domain.ErrInvalidInput, *req.Theme)
		}
		settings.Theme = *req.Theme
	}
	if req.DisplayName != nil {
		settings.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		settings.Email = *req.Email
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("user_id", userID.String()).
		Str("theme", string(settings.Theme)).
		Msg("settings saved")

	return settings, nil
}
