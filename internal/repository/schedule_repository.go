package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error)
	Put(ctx context.Context, schedule *domain.SleepSchedule) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error) {
	var schedule domain.SleepSchedule
	err := r.db.WithContext(ctx).First(&schedule, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) Put(ctx context.Context, schedule *domain.SleepSchedule) error {
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Omit("User").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bed_time", "wake_time", "days", "reminder_minutes_before", "enabled", "updated_at"}),
		}).
		Create(schedule).Error
}
