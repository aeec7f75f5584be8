package service

import (
	"context"

	"github.com/blaisecz/cycle-tracker/internal/domain"
	"github.com/blaisecz/cycle-tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserService owns the account record. The timezone is what every
// prediction uses to decide which calendar day is today.
type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateTimezone(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{ID: uuid.New(), Timezone: req.Timezone}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Stringer("user_id", user.ID).
		Str("timezone", user.Timezone).
		Msg("user created")
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateTimezone stores the new zone and returns the reloaded user. Existing
// entries keep their dates; only the day treated as today moves.
func (s *userService) UpdateTimezone(ctx context.Context, id uuid.UUID, req *domain.UpdateUserRequest) (*domain.User, error) {
	if err := s.repo.UpdateTimezone(ctx, id, req.Timezone); err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Stringer("user_id", user.ID).
		Str("timezone", user.Timezone).
		Msg("user timezone changed")
	return user, nil
}
