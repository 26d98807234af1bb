package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/llm"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newInsightsService(now time.Time, llmClient *mockInsightsLLM) (*insightsService, *MockSleepRecordRepository, *MockUserRepository, *mockLangfuseClient) {
	repo := NewMockSleepRecordRepository()
	userRepo := NewMockUserRepository()

	chronotype := NewChronotypeService(repo, userRepo).(*chronotypeService)
	chronotype.now = fixedNow(now)
	summary := NewSummaryService(repo, userRepo).(*summaryService)
	summary.now = fixedNow(now)

	lf := &mockLangfuseClient{}
	svc := NewInsightsService(chronotype, summary, llmClient, lf, userRepo, zap.NewNop()).(*insightsService)
	svc.now = fixedNow(now)
	return svc, repo, userRepo, lf
}

func TestInsightsService_Generate(t *testing.T) {
	output := &domain.LLMInsightsOutput{Summary: "Steady week."}
	llmClient := &mockInsightsLLM{output: output}
	svc, repo, userRepo, lf := newInsightsService(time.Date(2024, 1, 17, 8, 0, 0, 0, time.UTC), llmClient)
	userID := newUser(userRepo, "UTC")

	repo.add(domain.DailySleepRecord{UserID: userID, Date: "2024-01-16", BedTime: "23:00", Duration: 480})
	repo.add(domain.DailySleepRecord{UserID: userID, Date: "2024-01-10", BedTime: "23:30", Duration: 420})

	resp, err := svc.Generate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.ThisWeek.Start != "2024-01-15" || resp.PreviousWeek.Start != "2024-01-08" {
		t.Errorf("weeks = %s / %s", resp.ThisWeek.Start, resp.PreviousWeek.Start)
	}
	if resp.ThisWeek.Average.DaysWithData != 1 || resp.PreviousWeek.Average.Score != 90 {
		t.Errorf("unexpected averages: %+v / %+v", resp.ThisWeek.Average, resp.PreviousWeek.Average)
	}
	if resp.Insights.Summary != "Steady week." {
		t.Errorf("insights = %+v", resp.Insights)
	}
	if llmClient.got == nil || llmClient.got.ThisWeek.Start != "2024-01-15" {
		t.Errorf("LLM context = %+v", llmClient.got)
	}
	if resp.TraceID != "trace-sleep-weekly-insights" || len(lf.traces) != 1 {
		t.Errorf("expected a Langfuse trace, got %q", resp.TraceID)
	}
	if resp.Chronotype.Chronotype != domain.ChronotypeUnknown {
		t.Errorf("chronotype = %s", resp.Chronotype.Chronotype)
	}
}

func TestInsightsService_Errors(t *testing.T) {
	llmClient := &mockInsightsLLM{err: llm.ErrOpenAIUnavailable}
	svc, _, userRepo, _ := newInsightsService(time.Now(), llmClient)

	if _, err := svc.Generate(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	userID := newUser(userRepo, "UTC")
	if _, err := svc.Generate(context.Background(), userID); !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Errorf("expected ErrOpenAIUnavailable, got %v", err)
	}
}
