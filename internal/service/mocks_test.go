package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/langfuse"
	"github.com/blaisecz/sleep-diary/pkg/pagination"
	"github.com/google/uuid"
)

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records  map[string]domain.DailySleepRecord
	puts     []domain.DailySleepRecord
	rangeArg [2]string
	err      error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{
		records: make(map[string]domain.DailySleepRecord),
	}
}

func recordKey(userID uuid.UUID, date string) string {
	return userID.String() + ":" + date
}

func (m *MockSleepRecordRepository) add(r domain.DailySleepRecord) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	m.records[recordKey(r.UserID, r.Date)] = r
}

func (m *MockSleepRecordRepository) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.records[recordKey(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (m *MockSleepRecordRepository) GetRange(ctx context.Context, userID uuid.UUID, from, to string) (map[string]domain.DailySleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.rangeArg = [2]string{from, to}
	result := make(map[string]domain.DailySleepRecord)
	for _, r := range m.records {
		if r.UserID == userID && r.Date >= from && r.Date <= to {
			result[r.Date] = r
		}
	}
	return result, nil
}

func (m *MockSleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.DailySleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var result []domain.DailySleepRecord
	for _, r := range m.records {
		if r.UserID != userID {
			continue
		}
		if filter.From != "" && r.Date < filter.From {
			continue
		}
		if filter.To != "" && r.Date > filter.To {
			continue
		}
		if cursor != nil && r.Date >= cursor.Date {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockSleepRecordRepository) Put(ctx context.Context, record *domain.DailySleepRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	m.puts = append(m.puts, *record)
	m.records[recordKey(record.UserID, record.Date)] = *record
	return nil
}

func (m *MockSleepRecordRepository) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	if m.err != nil {
		return m.err
	}
	key := recordKey(userID, date)
	if _, ok := m.records[key]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, key)
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockScheduleRepository is a mock implementation of ScheduleRepository
type MockScheduleRepository struct {
	schedules map[uuid.UUID]*domain.SleepSchedule
	err       error
}

func NewMockScheduleRepository() *MockScheduleRepository {
	return &MockScheduleRepository{
		schedules: make(map[uuid.UUID]*domain.SleepSchedule),
	}
}

func (m *MockScheduleRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.SleepSchedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.schedules[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *MockScheduleRepository) Put(ctx context.Context, schedule *domain.SleepSchedule) error {
	if m.err != nil {
		return m.err
	}
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}
	copied := *schedule
	m.schedules[schedule.UserID] = &copied
	return nil
}

// mockInsightsLLM records the context it was called with.
type mockInsightsLLM struct {
	got    *domain.InsightsContext
	output *domain.LLMInsightsOutput
	err    error
}

func (m *mockInsightsLLM) GenerateInsights(ctx context.Context, in *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.got = in
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// mockLangfuseClient is a no-network Langfuse client.
type mockLangfuseClient struct {
	traces []langfuse.TraceInput
}

func (m *mockLangfuseClient) IsEnabled() bool { return true }

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	return "trace-" + in.Name, nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	return nil
}

func (m *mockLangfuseClient) Flush(ctx context.Context) error { return nil }

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func boolPtr(b bool) *bool {
	return &b
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newUser(repo *MockUserRepository, tz string) uuid.UUID {
	id := uuid.New()
	repo.users[id] = &domain.User{ID: id, Timezone: tz}
	return id
}
