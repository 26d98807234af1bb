package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepSchedule is a user's planned bed and wake times.
type SleepSchedule struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BedTime  string    `gorm:"type:varchar(5);not null" json:"bed_time"`
	WakeTime string    `gorm:"type:varchar(5);not null" json:"wake_time"`
	// Weekdays with 0 = Sunday
	Days                  []int     `gorm:"serializer:json;type:jsonb" json:"days"`
	ReminderMinutesBefore int       `gorm:"not null;default:30" json:"reminder_minutes_before"`
	Enabled               bool      `gorm:"not null;default:true" json:"enabled"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSchedule) TableName() string {
	return "sleep_schedules"
}

// PutScheduleRequest is the request body for saving a sleep schedule.
// @Description Planned bedtime, wake time and active weekdays.
type PutScheduleRequest struct {
	BedTime  string `json:"bed_time" validate:"required,clock" example:"23:00"`
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:00"`
	// Active weekdays, 0 = Sunday .. 6 = Saturday
	Days []int `json:"days" validate:"required,min=1,max=7,unique,dive,min=0,max=6" example:"1,2,3,4,5"`
	// Minutes before bedtime to remind (0-180)
	ReminderMinutesBefore int `json:"reminder_minutes_before" validate:"min=0,max=180" example:"30"`
	// Enabled defaults to true when omitted
	Enabled *bool `json:"enabled,omitempty"`
}

// NextReminderResponse describes the next scheduled bedtime reminder.
// @Description Next bedtime and reminder instant for a schedule.
type NextReminderResponse struct {
	BedtimeAt  time.Time `json:"bedtime_at" example:"2024-01-17T23:00:00+01:00"`
	RemindAt   time.Time `json:"remind_at" example:"2024-01-17T22:30:00+01:00"`
	WakeTime   string    `json:"wake_time" example:"07:00"`
	Weekday    string    `json:"weekday" example:"Wednesday"`
	PlannedMin int       `json:"planned_duration" example:"480"`
	// Score the planned duration would earn
	ProjectedScore int `json:"projected_score" example:"100"`
}
