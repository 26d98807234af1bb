package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/sleep-diary/internal/api/validation"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/service"
	"github.com/blaisecz/sleep-diary/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Get handles GET /v1/users/{userId}/schedule
// @Summary Get sleep schedule
// @Tags schedule
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.SleepSchedule "Sleep schedule"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User or schedule not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/schedule [get]
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	schedule, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "Failed to get sleep schedule")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule)
}

// Put handles PUT /v1/users/{userId}/schedule
// @Summary Save sleep schedule
// @Description Create or replace the planned bed and wake times, active weekdays and reminder lead time.
// @Tags schedule
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.PutScheduleRequest true "Sleep schedule"
// @Success 200 {object} domain.SleepSchedule "Saved schedule"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/schedule [put]
func (h *ScheduleHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	var req domain.PutScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").WithInstance(r).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r).Write(w)
		return
	}

	schedule, err := h.service.Put(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, r, err, "Failed to save sleep schedule")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule)
}

// NextReminder handles GET /v1/users/{userId}/schedule/next-reminder
// @Summary Get the next bedtime reminder
// @Description Next scheduled bedtime whose reminder is still ahead, with the planned duration and the score it would earn.
// @Tags schedule
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.NextReminderResponse "Next reminder"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User or schedule not found"
// @Failure 409 {object} problem.Problem "Schedule disabled or without active days"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/schedule/next-reminder [get]
func (h *ScheduleHandler) NextReminder(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	next, err := h.service.NextReminder(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "Failed to compute next reminder")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(next)
}

func (h *ScheduleHandler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrScheduleMissing):
		problem.NotFound("No sleep schedule configured").WithInstance(r).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").WithInstance(r).Write(w)
	case errors.Is(err, domain.ErrScheduleIdle):
		problem.Conflict("Sleep schedule is disabled or has no active days").WithInstance(r).Write(w)
	case errors.Is(err, domain.ErrInvalidClock):
		problem.Unprocessable("bed_time and wake_time must be 24h times in HH:MM format").WithInstance(r).Write(w)
	default:
		problem.InternalError(fallback).WithInstance(r).Write(w)
	}
}
