package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/sleep-diary/internal/api/handler"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	log := zap.NewNop()
	return NewRouter(
		handler.NewUserHandler(nil),
		handler.NewSleepRecordHandler(nil, nil),
		handler.NewSyncHandler(nil, nil),
		handler.NewScheduleHandler(nil),
		handler.NewInsightsHandler(nil, nil, nil, log),
		log,
	).Setup()
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sleep Diary API") {
		t.Error("expected registered API title in swagger doc")
	}
}

func TestRouter_Routes(t *testing.T) {
	routes, ok := newTestRouter().(chi.Routes)
	if !ok {
		t.Fatal("expected chi routes")
	}

	registered := make(map[string]bool)
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	for _, want := range []string{
		"GET /v1/users/{userId}",
		"GET /v1/users/{userId}/sleep-records/week",
		"POST /v1/users/{userId}/sleep-records/sync",
		"POST /v1/users/{userId}/sleep-records/tracking",
		"GET /v1/users/{userId}/sleep-records/{date}",
		"PUT /v1/users/{userId}/sleep-records/{date}",
		"DELETE /v1/users/{userId}/sleep-records/{date}",
		"GET /v1/users/{userId}/schedule/next-reminder",
		"GET /v1/users/{userId}/sleep/chronotype",
		"GET /v1/users/{userId}/sleep/insights",
		"POST /v1/users/{userId}/sleep/insights/feedback",
	} {
		if !registered[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}

func TestRouter_Dispatch(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		wantStatusCode int
	}{
		{"tracking is not a date", http.MethodPost, "/v1/users/" + userID + "/sleep-records/tracking", "{", http.StatusBadRequest},
		{"sync is not a date", http.MethodPost, "/v1/users/" + userID + "/sleep-records/sync", "{", http.StatusBadRequest},
		{"invalid record date", http.MethodPut, "/v1/users/" + userID + "/sleep-records/2024-13-01", `{}`, http.StatusUnprocessableEntity},
		{"no POST on a date", http.MethodPost, "/v1/users/" + userID + "/sleep-records/2024-01-15", `{}`, http.StatusMethodNotAllowed},
		{"invalid user on schedule", http.MethodGet, "/v1/users/abc/schedule/next-reminder", "", http.StatusBadRequest},
		{"chronotype window out of range", http.MethodGet, "/v1/users/" + userID + "/sleep/chronotype?window_days=0", "", http.StatusBadRequest},
		{"unknown path", http.MethodGet, "/v1/sleep-logs", "", http.StatusNotFound},
	}

	router := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatusCode, rec.Code, rec.Body.String())
			}
		})
	}
}
