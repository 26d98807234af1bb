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

// SyncHandler accepts sleep data recorded by devices and the in-app tracker.
type SyncHandler struct {
	sync     service.SyncService
	tracking service.TrackingService
}

func NewSyncHandler(sync service.SyncService, tracking service.TrackingService) *SyncHandler {
	return &SyncHandler{sync: sync, tracking: tracking}
}

// SyncHealth handles POST /v1/users/{userId}/sleep-records/sync
// @Summary Sync health-data sessions
// @Description Convert vendor sleep sessions into daily records and merge them into storage. Dates with a manual entry keep it and get the synced data attached as sync_backup.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.HealthSyncRequest true "Sessions read from the health-data SDK"
// @Success 200 {object} domain.HealthSyncResponse "Merge result"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-records/sync [post]
func (h *SyncHandler) SyncHealth(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	var req domain.HealthSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").WithInstance(r).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r).Write(w)
		return
	}

	result, err := h.sync.SyncHealth(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, r, err, "Failed to sync sleep data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CompleteTracking handles POST /v1/users/{userId}/sleep-records/tracking
// @Summary Complete an in-app tracking session
// @Description Add a finished tracking session to the record for the date it ended on. Sessions on the same date accumulate; a manual entry for that date is kept.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.TrackingSessionRequest true "Tracked session"
// @Success 201 {object} domain.TrackingSessionResponse "First record for the date"
// @Success 200 {object} domain.TrackingSessionResponse "Existing record updated or kept"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-records/tracking [post]
func (h *SyncHandler) CompleteTracking(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	var req domain.TrackingSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").WithInstance(r).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r).Write(w)
		return
	}

	result, err := h.tracking.Complete(r.Context(), userID, &req)
	if err != nil {
		h.writeError(w, r, err, "Failed to record tracking session")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Outcome == domain.TrackingCreated {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(result)
}

func (h *SyncHandler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").WithInstance(r).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.Unprocessable(err.Error()).WithInstance(r).Write(w)
	default:
		problem.InternalError(fallback).WithInstance(r).Write(w)
	}
}
