package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/sleep-diary/internal/api/validation"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/langfuse"
	"github.com/blaisecz/sleep-diary/internal/llm"
	"github.com/blaisecz/sleep-diary/internal/service"
	"github.com/blaisecz/sleep-diary/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InsightsHandler handles sleep insights endpoints.
type InsightsHandler struct {
	chronotypeService service.ChronotypeService
	insightsService   service.InsightsService
	langfuseClient    langfuse.Client
	log               *zap.Logger
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(
	chronotypeService service.ChronotypeService,
	insightsService service.InsightsService,
	langfuseClient langfuse.Client,
	log *zap.Logger,
) *InsightsHandler {
	return &InsightsHandler{
		chronotypeService: chronotypeService,
		insightsService:   insightsService,
		langfuseClient:    langfuseClient,
		log:               log.Named("insights"),
	}
}

// GetChronotype handles GET /v1/users/{userId}/sleep/chronotype
// @Summary Get user chronotype
// @Description Classify the user by the median mid-sleep time of their daily records over a configurable window.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(30) minimum(1) maximum(365)
// @Param min_sleeps query integer false "Minimum records required" default(7) minimum(1) maximum(100)
// @Success 200 {object} domain.ChronotypeResult "Chronotype analysis result"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/chronotype [get]
func (h *InsightsHandler) GetChronotype(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultChronotypeWindowDays)
	minSleeps := parseIntParam(r, "min_sleeps", service.DefaultChronotypeMinSleeps)

	if windowDays < 1 || windowDays > 365 {
		problem.BadRequest("window_days must be between 1 and 365").WithInstance(r).Write(w)
		return
	}
	if minSleeps < 1 || minSleeps > 100 {
		problem.BadRequest("min_sleeps must be between 1 and 100").WithInstance(r).Write(w)
		return
	}

	result, err := h.chronotypeService.Compute(r.Context(), userID, windowDays, minSleeps)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").WithInstance(r).Write(w)
			return
		}
		problem.InternalError("Failed to compute chronotype").WithInstance(r).Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetInsights handles GET /v1/users/{userId}/sleep/insights
// @Summary Get LLM-powered weekly insights
// @Description Summarize this week against the previous one, factoring in the chronotype, using an LLM.
// @Tags sleep-insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.InsightsResponse "Weekly insights with LLM analysis"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/sleep/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	result, err := h.insightsService.Generate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").WithInstance(r).Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("OpenAI service is not configured").WithInstance(r).Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			h.log.Warn("insights generation failed", zap.String("user_id", userID.String()), zap.Error(err))
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").WithInstance(r).Write(w)
		default:
			problem.InternalError("Failed to generate insights").WithInstance(r).Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// PostFeedback handles POST /v1/users/{userId}/sleep/insights/feedback
// @Summary Submit feedback on sleep insights
// @Description Submit a user rating and optional comment for a previous insights response.
// @Tags sleep-insights
// @Accept json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body domain.FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 422 {object} problem.Problem "Validation error"
// @Router /users/{userId}/sleep/insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").WithInstance(r).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r).Write(w)
		return
	}

	// Feedback is accepted even when it cannot be forwarded
	if err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		h.log.Warn("feedback score not sent", zap.String("trace_id", req.TraceID), zap.Error(err))
	}

	h.log.Info("insights feedback received",
		zap.String("user_id", userID.String()),
		zap.String("trace_id", req.TraceID),
		zap.Int("score", req.Score),
		zap.Bool("forwarded", h.langfuseClient.IsEnabled()),
	)

	w.WriteHeader(http.StatusNoContent)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
