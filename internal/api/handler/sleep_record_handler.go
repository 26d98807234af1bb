package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/sleep-diary/internal/analysis"
	"github.com/blaisecz/sleep-diary/internal/api/validation"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/service"
	"github.com/blaisecz/sleep-diary/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SleepRecordHandler serves the daily sleep record endpoints.
type SleepRecordHandler struct {
	service service.SleepRecordService
	summary service.SummaryService
}

func NewSleepRecordHandler(service service.SleepRecordService, summary service.SummaryService) *SleepRecordHandler {
	return &SleepRecordHandler{service: service, summary: summary}
}

// List handles GET /v1/users/{userId}/sleep-records
// @Summary List daily sleep records
// @Description Fetch paginated daily records, newest date first. Scores are recomputed from the stored data.
// @Tags sleep-records
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First date to include (YYYY-MM-DD)" format(date) example(2024-01-01)
// @Param to query string false "Last date to include (YYYY-MM-DD)" format(date) example(2024-01-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepRecordListResponse "Daily records with pagination"
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-records [get]
func (h *SleepRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).WithInstance(r).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").WithInstance(r).Write(w)
		case errors.Is(err, domain.ErrInvalidDate):
			problem.BadRequest("from and to must be dates in YYYY-MM-DD format").WithInstance(r).Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Invalid cursor").WithInstance(r).Write(w)
		default:
			problem.InternalError("Failed to list sleep records").WithInstance(r).Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.SleepRecordFilter, []problem.FieldError) {
	var filter domain.SleepRecordFilter
	var fieldErrors []problem.FieldError
	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		fieldErrors = append(fieldErrors, validation.Var("from", from, "date")...)
		filter.From = from
	}

	if to := query.Get("to"); to != "" {
		fieldErrors = append(fieldErrors, validation.Var("to", to, "date")...)
		filter.To = to
	}

	if filter.From != "" && filter.To != "" && filter.From > filter.To && len(fieldErrors) == 0 {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "to",
			Message: "must not be before from",
		})
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = query.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}

// Week handles GET /v1/users/{userId}/sleep-records/week
// @Summary Get a weekly summary
// @Description Seven Monday-first day slots around the given date, the weekly average score and duration, and nightly duration statistics.
// @Tags sleep-records
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Any date within the week (YYYY-MM-DD); defaults to today in the user's timezone" format(date) example(2024-01-17)
// @Success 200 {object} domain.WeekSummary "Weekly summary"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-records/week [get]
func (h *SleepRecordHandler) Week(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	summary, err := h.summary.Week(r.Context(), userID, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").WithInstance(r).Write(w)
		case errors.Is(err, domain.ErrInvalidDate):
			problem.BadRequest("date must be in YYYY-MM-DD format").WithInstance(r).Write(w)
		default:
			problem.InternalError("Failed to summarize week").WithInstance(r).Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// SaveManual handles PUT /v1/users/{userId}/sleep-records/{date}
// @Summary Save a manual entry
// @Description Replace the record for a date with hand-entered bed and wake times. A wake time earlier than the bed time means the next day. Manual entries are never overwritten by synced data.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Record date (YYYY-MM-DD)" format(date) example(2024-01-16)
// @Param request body domain.ManualEntryRequest true "Bed and wake times"
// @Success 200 {object} domain.SleepRecordResponse "Saved record"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-records/{date} [put]
func (h *SleepRecordHandler) SaveManual(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	date := chi.URLParam(r, "date")
	if fieldErrors := validation.Var("date", date, "date"); fieldErrors != nil {
		problem.ValidationError("Invalid record date", fieldErrors).WithInstance(r).Write(w)
		return
	}

	var req domain.ManualEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").WithInstance(r).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r).Write(w)
		return
	}

	record, err := h.service.SaveManual(r.Context(), userID, date, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").WithInstance(r).Write(w)
		case errors.Is(err, domain.ErrInvalidDate):
			problem.BadRequest("date must be in YYYY-MM-DD format").WithInstance(r).Write(w)
		case errors.Is(err, domain.ErrInvalidClock):
			problem.Unprocessable("bed_time and wake_time must be 24h times in HH:MM format").WithInstance(r).Write(w)
		default:
			problem.InternalError("Failed to save sleep record").WithInstance(r).Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.NewSleepRecordResponse(*record, analysis.ScoreFor(*record)))
}

// Get handles GET /v1/users/{userId}/sleep-records/{date}
// @Summary Get a daily record
// @Description Get the record for one date with a freshly computed score.
// @Tags sleep-records
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Record date (YYYY-MM-DD)" format(date) example(2024-01-16)
// @Success 200 {object} domain.SleepRecordResponse "Daily record"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User or record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-records/{date} [get]
func (h *SleepRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	record, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "date"))
	if err != nil {
		h.writeRecordError(w, r, err, "Failed to get sleep record")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.NewSleepRecordResponse(*record, analysis.ScoreFor(*record)))
}

// Delete handles DELETE /v1/users/{userId}/sleep-records/{date}
// @Summary Delete a daily record
// @Tags sleep-records
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Record date (YYYY-MM-DD)" format(date) example(2024-01-16)
// @Success 204 "Record deleted"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User or record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-records/{date} [delete]
func (h *SleepRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "date")); err != nil {
		h.writeRecordError(w, r, err, "Failed to delete sleep record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SleepRecordHandler) writeRecordError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User or sleep record not found").WithInstance(r).Write(w)
	case errors.Is(err, domain.ErrInvalidDate):
		problem.BadRequest("date must be in YYYY-MM-DD format").WithInstance(r).Write(w)
	default:
		problem.InternalError(fallback).WithInstance(r).Write(w)
	}
}
