package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/sleep-diary/internal/analysis"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/blaisecz/sleep-diary/pkg/clock"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SummaryService builds Monday-first week views of daily records.
type SummaryService interface {
	// Week summarizes the week containing date ("YYYY-MM-DD"); an empty date
	// means today in the user's timezone.
	Week(ctx context.Context, userID uuid.UUID, date string) (*domain.WeekSummary, error)
}

type summaryService struct {
	repo     repository.SleepRecordRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewSummaryService(repo repository.SleepRecordRepository, userRepo repository.UserRepository) SummaryService {
	return &summaryService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *summaryService) Week(ctx context.Context, userID uuid.UUID, date string) (*domain.WeekSummary, error) {
	tracer := otel.Tracer("sleep-diary-api/summary")
	ctx, span := tracer.Start(ctx, "SummaryService.Week",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("week.date", date),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc := user.Location()

	selected := s.now().In(loc)
	if date != "" {
		selected, err = clock.ParseDate(date, loc)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
	}

	start, end := analysis.WeekRange(selected)
	span.SetAttributes(
		attribute.String("week.start", start),
		attribute.String("week.end", end),
	)

	records, err := s.repo.GetRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	week := analysis.WeekOf(selected, records)
	goal := user.GoalMinutes()
	summary := &domain.WeekSummary{
		Start:           start,
		End:             end,
		Days:            week,
		Average:         analysis.WeeklyAverage(week),
		Duration:        analysis.DurationStats(week),
		GoalMinutes:     goal,
		DaysMeetingGoal: analysis.DaysMeetingGoal(week, goal),
	}

	if outputJSON, err := json.Marshal(summary.Average); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return summary, nil
}
