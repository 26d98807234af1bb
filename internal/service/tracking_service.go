package service

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-diary/internal/analysis"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrackingService applies sessions recorded by the app's own tracker.
type TrackingService interface {
	// Complete adds a finished session to the record for the date it ended on.
	Complete(ctx context.Context, userID uuid.UUID, req *domain.TrackingSessionRequest) (*domain.TrackingSessionResponse, error)
}

type trackingService struct {
	repo     repository.SleepRecordRepository
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewTrackingService(repo repository.SleepRecordRepository, userRepo repository.UserRepository, log *zap.Logger) TrackingService {
	return &trackingService{
		repo:     repo,
		userRepo: userRepo,
		log:      log.Named("tracking"),
	}
}

func (s *trackingService) Complete(ctx context.Context, userID uuid.UUID, req *domain.TrackingSessionRequest) (*domain.TrackingSessionResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc, err := resolveLocation(user, req.Timezone)
	if err != nil {
		return nil, err
	}

	session, summary, err := analysis.RecordFromSession(req.SleepSession, loc, domain.SourceAppTracking)
	if err != nil {
		return nil, err
	}
	session.UserID = userID
	if len(summary.Unrecognized) > 0 {
		s.log.Warn("unrecognized sleep stage codes counted as light",
			zap.String("user_id", userID.String()),
			zap.Ints("codes", summary.Unrecognized),
		)
	}

	var existing *domain.DailySleepRecord
	stored, err := s.repo.Get(ctx, userID, session.Date)
	switch {
	case err == nil:
		existing = stored
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	record, outcome := analysis.Accumulate(existing, session)
	if outcome != domain.TrackingPreservedManual {
		score := analysis.ScoreFor(record)
		record.Score = &score
		if err := s.repo.Put(ctx, &record); err != nil {
			return nil, err
		}
	}

	s.log.Info("tracking session applied",
		zap.String("user_id", userID.String()),
		zap.String("date", record.Date),
		zap.String("outcome", string(outcome)),
		zap.Int("duration", record.Duration),
	)

	return &domain.TrackingSessionResponse{
		Outcome: outcome,
		Record:  domain.NewSleepRecordResponse(record, analysis.ScoreFor(record)),
	}, nil
}
