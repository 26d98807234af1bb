package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/google/uuid"
)

func recordParams(userID, date string) map[string]string {
	return map[string]string{"userId": userID, "date": date}
}

func TestSleepRecordHandler_List(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		queryParams    string
		mockService    *MockSleepRecordService
		wantStatusCode int
	}{
		{
			name:           "no filters",
			userID:         userID.String(),
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "date range and limit",
			userID:      userID.String(),
			queryParams: "?from=2024-01-01&to=2024-01-31&limit=10&cursor=abc",
			mockService: &MockSleepRecordService{
				listFunc: func(ctx context.Context, uid uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
					if filter.From != "2024-01-01" || filter.To != "2024-01-31" || filter.Limit != 10 || filter.Cursor != "abc" {
						return nil, fmt.Errorf("unexpected filter %+v", filter)
					}
					return &domain.SleepRecordListResponse{Data: []domain.SleepRecordResponse{}}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid from date",
			userID:         userID.String(),
			queryParams:    "?from=2024-13-01",
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "to before from",
			userID:         userID.String(),
			queryParams:    "?from=2024-02-01&to=2024-01-01",
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid limit",
			userID:         userID.String(),
			queryParams:    "?limit=0",
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:        "invalid cursor",
			userID:      userID.String(),
			queryParams: "?cursor=garbage",
			mockService: &MockSleepRecordService{
				listFunc: func(ctx context.Context, uid uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
					return nil, fmt.Errorf("decode cursor: %w", domain.ErrInvalidInput)
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			userID: userID.String(),
			mockService: &MockSleepRecordService{
				listFunc: func(ctx context.Context, uid uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid user ID",
			userID:         "not-a-uuid",
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSleepRecordHandler(tt.mockService, &MockSummaryService{})

			req := newRequest(http.MethodGet, "/v1/users/"+tt.userID+"/sleep-records"+tt.queryParams, "", map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestSleepRecordHandler_Week(t *testing.T) {
	userID := uuid.New()

	var gotDate string
	summary := &MockSummaryService{
		weekFunc: func(ctx context.Context, uid uuid.UUID, date string) (*domain.WeekSummary, error) {
			gotDate = date
			if date == "bad" {
				return nil, domain.ErrInvalidDate
			}
			return &domain.WeekSummary{Start: "2024-01-15", End: "2024-01-21", Average: domain.WeeklyAverage{Score: 88}}, nil
		},
	}
	handler := NewSleepRecordHandler(&MockSleepRecordService{}, summary)

	req := newRequest(http.MethodGet, "/v1/users/"+userID.String()+"/sleep-records/week?date=2024-01-17", "", map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()
	handler.Week(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Week() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if gotDate != "2024-01-17" {
		t.Errorf("expected date passed through, got %q", gotDate)
	}

	var response domain.WeekSummary
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response.Start != "2024-01-15" || response.Average.Score != 88 {
		t.Errorf("unexpected summary %+v", response)
	}

	req = newRequest(http.MethodGet, "/v1/users/"+userID.String()+"/sleep-records/week?date=bad", "", map[string]string{"userId": userID.String()})
	rec = httptest.NewRecorder()
	handler.Week(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad date, got %d", rec.Code)
	}
}

func TestSleepRecordHandler_SaveManual(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		date           string
		body           string
		mockService    *MockSleepRecordService
		wantStatusCode int
	}{
		{
			name:           "valid entry",
			date:           "2024-01-16",
			body:           `{"bed_time": "23:00", "wake_time": "07:00"}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid date",
			date:           "16-01-2024",
			body:           `{"bed_time": "23:00", "wake_time": "07:00"}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			date:           "2024-01-16",
			body:           `{bad`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid clock",
			date:           "2024-01-16",
			body:           `{"bed_time": "11pm", "wake_time": "07:00"}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing wake time",
			date:           "2024-01-16",
			body:           `{"bed_time": "23:00"}`,
			mockService:    &MockSleepRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "user not found",
			date: "2024-01-16",
			body: `{"bed_time": "23:00", "wake_time": "07:00"}`,
			mockService: &MockSleepRecordService{
				saveManualFunc: func(ctx context.Context, uid uuid.UUID, date string, req *domain.ManualEntryRequest) (*domain.DailySleepRecord, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "store failure",
			date: "2024-01-16",
			body: `{"bed_time": "23:00", "wake_time": "07:00"}`,
			mockService: &MockSleepRecordService{
				saveManualFunc: func(ctx context.Context, uid uuid.UUID, date string, req *domain.ManualEntryRequest) (*domain.DailySleepRecord, error) {
					return nil, errors.New("db down")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSleepRecordHandler(tt.mockService, &MockSummaryService{})

			req := newRequest(http.MethodPut, "/v1/users/"+userID.String()+"/sleep-records/"+tt.date, tt.body, recordParams(userID.String(), tt.date))
			rec := httptest.NewRecorder()

			handler.SaveManual(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("SaveManual() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestSleepRecordHandler_SaveManual_ResponseScore(t *testing.T) {
	userID := uuid.New()
	handler := NewSleepRecordHandler(&MockSleepRecordService{}, &MockSummaryService{})

	req := newRequest(http.MethodPut, "/v1/users/"+userID.String()+"/sleep-records/2024-01-16",
		`{"bed_time": "23:00", "wake_time": "07:00"}`, recordParams(userID.String(), "2024-01-16"))
	rec := httptest.NewRecorder()
	handler.SaveManual(rec, req)

	var response domain.SleepRecordResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response.Date != "2024-01-16" {
		t.Errorf("expected date 2024-01-16, got %s", response.Date)
	}
	if response.Score != 100 {
		t.Errorf("expected score 100 for 8h, got %d", response.Score)
	}
	if response.Source != domain.SourceManual {
		t.Errorf("expected manual source, got %s", response.Source)
	}
}

func TestSleepRecordHandler_GetAndDelete(t *testing.T) {
	userID := uuid.New()
	stored := &domain.DailySleepRecord{ID: uuid.New(), UserID: userID, Date: "2024-01-16", BedTime: "23:30", WakeTime: "06:30", Duration: 420}

	service := &MockSleepRecordService{
		getFunc: func(ctx context.Context, uid uuid.UUID, date string) (*domain.DailySleepRecord, error) {
			switch date {
			case "2024-01-16":
				return stored, nil
			case "bad":
				return nil, domain.ErrInvalidDate
			}
			return nil, domain.ErrNotFound
		},
		deleteFunc: func(ctx context.Context, uid uuid.UUID, date string) error {
			if date == "2024-01-16" {
				return nil
			}
			return domain.ErrNotFound
		},
	}
	handler := NewSleepRecordHandler(service, &MockSummaryService{})

	tests := []struct {
		name   string
		method string
		date   string
		want   int
	}{
		{"get existing", http.MethodGet, "2024-01-16", http.StatusOK},
		{"get missing", http.MethodGet, "2024-01-17", http.StatusNotFound},
		{"get bad date", http.MethodGet, "bad", http.StatusBadRequest},
		{"delete existing", http.MethodDelete, "2024-01-16", http.StatusNoContent},
		{"delete missing", http.MethodDelete, "2024-01-17", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(tt.method, "/v1/users/"+userID.String()+"/sleep-records/"+tt.date, "", recordParams(userID.String(), tt.date))
			rec := httptest.NewRecorder()

			if tt.method == http.MethodGet {
				handler.Get(rec, req)
			} else {
				handler.Delete(rec, req)
			}

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d, body: %s", rec.Code, tt.want, rec.Body.String())
			}
			if tt.name == "get existing" {
				var response domain.SleepRecordResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if response.Score != 90 {
					t.Errorf("expected score 90 for 7h, got %d", response.Score)
				}
			}
		})
	}
}
