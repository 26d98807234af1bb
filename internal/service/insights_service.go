package service

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/langfuse"
	"github.com/blaisecz/sleep-diary/internal/llm"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/blaisecz/sleep-diary/pkg/clock"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// HistoryWindowDays is the chronotype window used for insights.
const HistoryWindowDays = 30

// InsightsService generates weekly sleep insights.
type InsightsService interface {
	// Generate creates sleep insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	chronotypeService ChronotypeService
	summaryService    SummaryService
	llmClient         llm.InsightsLLM
	langfuseClient    langfuse.Client
	userRepo          repository.UserRepository
	log               *zap.Logger
	now               func() time.Time
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	chronotypeService ChronotypeService,
	summaryService SummaryService,
	llmClient llm.InsightsLLM,
	langfuseClient langfuse.Client,
	userRepo repository.UserRepository,
	log *zap.Logger,
) InsightsService {
	return &insightsService{
		chronotypeService: chronotypeService,
		summaryService:    summaryService,
		llmClient:         llmClient,
		langfuseClient:    langfuseClient,
		userRepo:          userRepo,
		log:               log.Named("insights"),
		now:               time.Now,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	chronotype, err := s.chronotypeService.Compute(ctx, userID, HistoryWindowDays, DefaultChronotypeMinSleeps)
	if err != nil {
		return nil, err
	}

	today := s.now().In(user.Location())
	thisWeek, err := s.summaryService.Week(ctx, userID, clock.FormatDate(today))
	if err != nil {
		return nil, err
	}
	previousWeek, err := s.summaryService.Week(ctx, userID, clock.FormatDate(today.AddDate(0, 0, -7)))
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Chronotype:   *chronotype,
		ThisWeek:     *thisWeek,
		PreviousWeek: *previousWeek,
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		s.log.Error("insights generation failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}

	response := &domain.InsightsResponse{
		Chronotype:   *chronotype,
		ThisWeek:     *thisWeek,
		PreviousWeek: *previousWeek,
		Insights:     *output,
	}

	// Feedback is linked through the OTEL trace when tracing is on, otherwise
	// through a Langfuse trace created here.
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		response.TraceID = sc.TraceID().String()
	} else if traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
		UserID: userID.String(),
		Name:   "sleep-weekly-insights",
		Input:  insightsCtx,
		Output: output,
		Tags:   []string{"insights", string(chronotype.Chronotype)},
	}); err != nil {
		s.log.Warn("langfuse trace failed", zap.Error(err))
	} else {
		response.TraceID = traceID
	}

	return response, nil
}
