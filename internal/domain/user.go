package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSleepGoalMinutes is the nightly goal used when a user sets none.
const DefaultSleepGoalMinutes = 8 * 60

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone         string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	SleepGoalMinutes int       `gorm:"not null;default:480" json:"sleep_goal_minutes"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Location resolves the user's timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// GoalMinutes returns the user's nightly goal or the default.
func (u *User) GoalMinutes() int {
	if u.SleepGoalMinutes > 0 {
		return u.SleepGoalMinutes
	}
	return DefaultSleepGoalMinutes
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone         string `json:"timezone" validate:"omitempty,timezone" example:"Europe/Prague"`
	SleepGoalMinutes int    `json:"sleep_goal_minutes,omitempty" validate:"omitempty,min=60,max=960"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Timezone         string    `json:"timezone"`
	SleepGoalMinutes int       `json:"sleep_goal_minutes"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:               u.ID,
		Timezone:         u.Timezone,
		SleepGoalMinutes: u.GoalMinutes(),
		CreatedAt:        u.CreatedAt,
	}
}
