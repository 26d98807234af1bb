package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/blaisecz/sleep-diary/internal/analysis"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// SyncService merges health-data sessions into a user's daily records.
type SyncService interface {
	SyncHealth(ctx context.Context, userID uuid.UUID, req *domain.HealthSyncRequest) (*domain.HealthSyncResponse, error)
}

type syncService struct {
	repo     repository.SleepRecordRepository
	userRepo repository.UserRepository
	log      *zap.Logger
	now      func() time.Time
}

func NewSyncService(repo repository.SleepRecordRepository, userRepo repository.UserRepository, log *zap.Logger) SyncService {
	return &syncService{
		repo:     repo,
		userRepo: userRepo,
		log:      log.Named("sync"),
		now:      time.Now,
	}
}

func (s *syncService) SyncHealth(ctx context.Context, userID uuid.UUID, req *domain.HealthSyncRequest) (*domain.HealthSyncResponse, error) {
	tracer := otel.Tracer("sleep-diary-api/sync")
	ctx, span := tracer.Start(ctx, "SyncService.SyncHealth",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("sync.sessions", len(req.Sessions)),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc, err := resolveLocation(user, req.Timezone)
	if err != nil {
		return nil, err
	}

	syncedAt := s.now().UTC()
	response := &domain.HealthSyncResponse{
		Synced:          []string{},
		PreservedManual: []string{},
		Dropped:         []domain.DroppedRecord{},
		Records:         []domain.SleepRecordResponse{},
		SyncedAt:        syncedAt,
	}

	incoming, report := analysis.RecordsFromSessions(req.Sessions, loc)
	response.UnrecognizedStages = report.Unrecognized
	response.Dropped = append(response.Dropped, report.Invalid...)
	if len(report.Unrecognized) > 0 {
		s.log.Warn("unrecognized sleep stage codes counted as light",
			zap.String("user_id", userID.String()),
			zap.Ints("codes", report.Unrecognized),
		)
	}
	if report.SkippedIntervals > 0 {
		s.log.Warn("skipped empty stage intervals",
			zap.String("user_id", userID.String()),
			zap.Int("count", report.SkippedIntervals),
		)
	}

	if len(incoming) == 0 {
		s.logDropped(userID, response.Dropped)
		return response, nil
	}

	for date, rec := range incoming {
		rec.UserID = userID
		incoming[date] = rec
	}

	from, to := dateBounds(incoming)
	existing, err := s.repo.GetRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	result := analysis.Merge(existing, incoming, syncedAt)
	response.Dropped = append(response.Dropped, result.Dropped...)
	s.logDropped(userID, response.Dropped)

	for _, date := range result.Changed {
		rec := result.Records[date]
		rec.SyncBackup = nil
		rec.UserID = userID
		score := analysis.ScoreFor(rec)
		rec.Score = &score
		if err := s.repo.Put(ctx, &rec); err != nil {
			return nil, err
		}
		result.Records[date] = rec
	}

	touched := append(append([]string{}, result.Changed...), result.PreservedManual...)
	sort.Strings(touched)
	for _, date := range touched {
		rec := result.Records[date]
		response.Records = append(response.Records, domain.NewSleepRecordResponse(rec, analysis.ScoreFor(rec)))
	}
	response.Synced = append(response.Synced, result.Changed...)
	response.PreservedManual = append(response.PreservedManual, result.PreservedManual...)

	span.SetAttributes(
		attribute.Int("sync.changed", len(result.Changed)),
		attribute.Int("sync.preserved_manual", len(result.PreservedManual)),
		attribute.Int("sync.dropped", len(response.Dropped)),
	)
	if outputJSON, err := json.Marshal(map[string]any{
		"synced":           response.Synced,
		"preserved_manual": response.PreservedManual,
		"dropped":          response.Dropped,
	}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	s.log.Info("health sync merged",
		zap.String("user_id", userID.String()),
		zap.Int("synced", len(result.Changed)),
		zap.Int("preserved_manual", len(result.PreservedManual)),
		zap.Int("dropped", len(response.Dropped)),
	)

	return response, nil
}

func (s *syncService) logDropped(userID uuid.UUID, dropped []domain.DroppedRecord) {
	for _, d := range dropped {
		s.log.Warn("dropped incoming sleep data",
			zap.String("user_id", userID.String()),
			zap.String("date", d.Date),
			zap.String("reason", d.Reason),
		)
	}
}

func dateBounds(records map[string]domain.DailySleepRecord) (from, to string) {
	for date := range records {
		if from == "" || date < from {
			from = date
		}
		if to == "" || date > to {
			to = date
		}
	}
	return from, to
}
