package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/langfuse"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, SleepGoalMinutes: domain.DefaultSleepGoalMinutes}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockSleepRecordService is a mock implementation of SleepRecordService
type MockSleepRecordService struct {
	saveManualFunc func(ctx context.Context, userID uuid.UUID, date string, req *domain.ManualEntryRequest) (*domain.DailySleepRecord, error)
	getFunc        func(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySleepRecord, error)
	listFunc       func(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	deleteFunc     func(ctx context.Context, userID uuid.UUID, date string) error
}

func (m *MockSleepRecordService) SaveManual(ctx context.Context, userID uuid.UUID, date string, req *domain.ManualEntryRequest) (*domain.DailySleepRecord, error) {
	if m.saveManualFunc != nil {
		return m.saveManualFunc(ctx, userID, date, req)
	}
	record := &domain.DailySleepRecord{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     date,
		BedTime:  req.BedTime,
		WakeTime: req.WakeTime,
		Duration: 480,
	}
	record.SetSource(domain.SourceManual)
	return record, nil
}

func (m *MockSleepRecordService) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySleepRecord, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, date)
	}
	return nil, domain.ErrNotFound
}

func (m *MockSleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepRecordListResponse{
		Data:       []domain.SleepRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockSleepRecordService) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, date)
	}
	return nil
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	weekFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.WeekSummary, error)
}

func (m *MockSummaryService) Week(ctx context.Context, userID uuid.UUID, date string) (*domain.WeekSummary, error) {
	if m.weekFunc != nil {
		return m.weekFunc(ctx, userID, date)
	}
	return &domain.WeekSummary{Start: "2024-01-15", End: "2024-01-21", Days: []domain.WeekDay{}}, nil
}

// MockSyncService is a mock implementation of SyncService
type MockSyncService struct {
	syncFunc func(ctx context.Context, userID uuid.UUID, req *domain.HealthSyncRequest) (*domain.HealthSyncResponse, error)
}

func (m *MockSyncService) SyncHealth(ctx context.Context, userID uuid.UUID, req *domain.HealthSyncRequest) (*domain.HealthSyncResponse, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, userID, req)
	}
	return &domain.HealthSyncResponse{
		Synced:          []string{},
		PreservedManual: []string{},
		Dropped:         []domain.DroppedRecord{},
		Records:         []domain.SleepRecordResponse{},
	}, nil
}

// MockTrackingService is a mock implementation of TrackingService
type MockTrackingService struct {
	completeFunc func(ctx context.Context, userID uuid.UUID, req *domain.TrackingSessionRequest) (*domain.TrackingSessionResponse, error)
}

func (m *MockTrackingService) Complete(ctx context.Context, userID uuid.UUID, req *domain.TrackingSessionRequest) (*domain.TrackingSessionResponse, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, userID, req)
	}
	return &domain.TrackingSessionResponse{Outcome: domain.TrackingCreated}, nil
}

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	getFunc          func(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error)
	putFunc          func(ctx context.Context, userID uuid.UUID, req *domain.PutScheduleRequest) (*domain.SleepSchedule, error)
	nextReminderFunc func(ctx context.Context, userID uuid.UUID) (*domain.NextReminderResponse, error)
}

func (m *MockScheduleService) Get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return nil, domain.ErrScheduleMissing
}

func (m *MockScheduleService) Put(ctx context.Context, userID uuid.UUID, req *domain.PutScheduleRequest) (*domain.SleepSchedule, error) {
	if m.putFunc != nil {
		return m.putFunc(ctx, userID, req)
	}
	return &domain.SleepSchedule{
		ID:                    uuid.New(),
		UserID:                userID,
		BedTime:               req.BedTime,
		WakeTime:              req.WakeTime,
		Days:                  req.Days,
		ReminderMinutesBefore: req.ReminderMinutesBefore,
		Enabled:               true,
	}, nil
}

func (m *MockScheduleService) NextReminder(ctx context.Context, userID uuid.UUID) (*domain.NextReminderResponse, error) {
	if m.nextReminderFunc != nil {
		return m.nextReminderFunc(ctx, userID)
	}
	return nil, domain.ErrScheduleMissing
}

// MockChronotypeService is a mock implementation of ChronotypeService
type MockChronotypeService struct {
	gotWindow, gotMin int
}

func (m *MockChronotypeService) Compute(ctx context.Context, userID uuid.UUID, windowDays, minSleeps int) (*domain.ChronotypeResult, error) {
	m.gotWindow, m.gotMin = windowDays, minSleeps
	return &domain.ChronotypeResult{
		Chronotype:                   domain.ChronotypeIntermediate,
		MidSleepLocalTime:            "03:30",
		MidSleepMinutesAfterMidnight: 210,
		WindowDays:                   windowDays,
		RecordsUsed:                  10,
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{
		Chronotype: domain.ChronotypeResult{Chronotype: domain.ChronotypeIntermediate},
		Insights: domain.LLMInsightsOutput{
			Summary:      "Your sleep is good.",
			Observations: []string{"Consistent bedtime"},
			Guidance:     []string{"Keep it up"},
		},
	}, nil
}

// mockLangfuseClient records feedback scores
type mockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
	err     error
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return m.err
}

func (m *mockLangfuseClient) Flush(ctx context.Context) error {
	return nil
}

// newRequest builds a request with chi URL params attached.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
