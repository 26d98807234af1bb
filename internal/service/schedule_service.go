package service

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/sleep-diary/internal/analysis"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/blaisecz/sleep-diary/pkg/clock"
	"github.com/google/uuid"
)

// ScheduleService manages a user's planned sleep schedule and bedtime reminders.
type ScheduleService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error)
	Put(ctx context.Context, userID uuid.UUID, req *domain.PutScheduleRequest) (*domain.SleepSchedule, error)
	// NextReminder finds the next bedtime whose reminder is still ahead of now.
	NextReminder(ctx context.Context, userID uuid.UUID) (*domain.NextReminderResponse, error)
}

type scheduleService struct {
	repo     repository.ScheduleRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewScheduleService(repo repository.ScheduleRepository, userRepo repository.UserRepository) ScheduleService {
	return &scheduleService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *scheduleService) Get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.get(ctx, userID)
}

func (s *scheduleService) get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error) {
	schedule, err := s.repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrScheduleMissing
	}
	return schedule, err
}

func (s *scheduleService) Put(ctx context.Context, userID uuid.UUID, req *domain.PutScheduleRequest) (*domain.SleepSchedule, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	bed, err := clock.Parse(req.BedTime)
	if err != nil {
		return nil, domain.ErrInvalidClock
	}
	wake, err := clock.Parse(req.WakeTime)
	if err != nil {
		return nil, domain.ErrInvalidClock
	}

	schedule := &domain.SleepSchedule{
		UserID:                userID,
		BedTime:               bed.String(),
		WakeTime:              wake.String(),
		Days:                  append([]int(nil), req.Days...),
		ReminderMinutesBefore: req.ReminderMinutesBefore,
		Enabled:               true,
	}
	if req.Enabled != nil {
		schedule.Enabled = *req.Enabled
	}

	existing, err := s.repo.Get(ctx, userID)
	switch {
	case err == nil:
		schedule.ID = existing.ID
		schedule.CreatedAt = existing.CreatedAt
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	if err := s.repo.Put(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) NextReminder(ctx context.Context, userID uuid.UUID) (*domain.NextReminderResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !schedule.Enabled || len(schedule.Days) == 0 {
		return nil, domain.ErrScheduleIdle
	}

	bed, err := clock.Parse(schedule.BedTime)
	if err != nil {
		return nil, domain.ErrInvalidClock
	}

	lead := time.Duration(schedule.ReminderMinutesBefore) * time.Minute
	earliest := s.now().In(user.Location()).Add(lead)

	var next time.Time
	for _, day := range schedule.Days {
		candidate := clock.NextOccurrence(time.Weekday(day), bed.Hour, bed.Minute, earliest)
		if next.IsZero() || candidate.Before(next) {
			next = candidate
		}
	}

	planned := clock.MinutesBetween(schedule.BedTime, schedule.WakeTime)
	return &domain.NextReminderResponse{
		BedtimeAt:      next,
		RemindAt:       next.Add(-lead),
		WakeTime:       schedule.WakeTime,
		Weekday:        next.Weekday().String(),
		PlannedMin:     planned,
		ProjectedScore: analysis.EstimateScore(planned),
	}, nil
}
