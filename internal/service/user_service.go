package service

import (
	"context"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo            repository.UserRepository
	defaultTimezone string
}

// NewUserService creates a UserService. defaultTimezone applies to requests
// that omit a timezone.
func NewUserService(repo repository.UserRepository, defaultTimezone string) UserService {
	if defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	return &userService{repo: repo, defaultTimezone: defaultTimezone}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:               uuid.New(),
		Timezone:         req.Timezone,
		SleepGoalMinutes: req.SleepGoalMinutes,
	}
	if user.Timezone == "" {
		user.Timezone = s.defaultTimezone
	}
	if user.SleepGoalMinutes == 0 {
		user.SleepGoalMinutes = domain.DefaultSleepGoalMinutes
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
