package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidClock    = errors.New("invalid clock time")
	ErrScheduleMissing = errors.New("no sleep schedule configured")
	ErrScheduleIdle    = errors.New("sleep schedule has no active days")
)
