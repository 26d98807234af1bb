package service

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/sleep-diary/internal/analysis"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/blaisecz/sleep-diary/pkg/clock"
	"github.com/blaisecz/sleep-diary/pkg/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SleepRecordService interface {
	// SaveManual replaces the record for date with a hand-entered one.
	SaveManual(ctx context.Context, userID uuid.UUID, date string, req *domain.ManualEntryRequest) (*domain.DailySleepRecord, error)
	Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySleepRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, date string) error
}

type sleepRecordService struct {
	repo     repository.SleepRecordRepository
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewSleepRecordService(repo repository.SleepRecordRepository, userRepo repository.UserRepository, log *zap.Logger) SleepRecordService {
	return &sleepRecordService{
		repo:     repo,
		userRepo: userRepo,
		log:      log.Named("sleep_records"),
	}
}

func (s *sleepRecordService) SaveManual(ctx context.Context, userID uuid.UUID, date string, req *domain.ManualEntryRequest) (*domain.DailySleepRecord, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day, err := clock.ParseDate(date, user.Location())
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	bed, err := clock.Parse(req.BedTime)
	if err != nil {
		return nil, domain.ErrInvalidClock
	}
	wake, err := clock.Parse(req.WakeTime)
	if err != nil {
		return nil, domain.ErrInvalidClock
	}

	record := domain.DailySleepRecord{
		UserID:       userID,
		Date:         date,
		BedTime:      bed.String(),
		WakeTime:     wake.String(),
		Duration:     clock.MinutesBetweenClocks(bed, wake),
		SessionCount: 1,
	}
	record.SetSource(domain.SourceManual)
	record.BedTimeISO, record.WakeTimeISO = manualInstants(day, wake, record.Duration)

	existing, err := s.repo.Get(ctx, userID, date)
	switch {
	case err == nil:
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		if !existing.IsManual() {
			s.log.Info("manual entry replaces synced record",
				zap.String("user_id", userID.String()),
				zap.String("date", date),
				zap.String("previous_source", string(existing.Source)),
			)
		}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	score := analysis.EstimateScore(record.Duration)
	record.Score = &score

	if err := s.repo.Put(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// manualInstants anchors a manual entry on its date: the wake time falls on
// the record date and the bed time duration minutes earlier.
func manualInstants(day time.Time, wake clock.Clock, duration int) (*time.Time, *time.Time) {
	end := time.Date(day.Year(), day.Month(), day.Day(), wake.Hour, wake.Minute, 0, 0, day.Location())
	start := end.Add(-time.Duration(duration) * time.Minute)
	return &start, &end
}

func (s *sleepRecordService) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DailySleepRecord, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	if !clock.ValidDate(date) {
		return nil, domain.ErrInvalidDate
	}

	return s.repo.Get(ctx, userID, date)
}

func (s *sleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	if (filter.From != "" && !clock.ValidDate(filter.From)) || (filter.To != "" && !clock.ValidDate(filter.To)) {
		return nil, domain.ErrInvalidDate
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	records, hasMore := pagination.Page(records, pagination.NormalizeLimit(filter.Limit))

	response := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, rec := range records {
		response.Data[i] = domain.NewSleepRecordResponse(rec, analysis.ScoreFor(rec))
	}

	if hasMore && len(records) > 0 {
		cursor := &pagination.Cursor{Date: records[len(records)-1].Date}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *sleepRecordService) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	if !clock.ValidDate(date) {
		return domain.ErrInvalidDate
	}

	return s.repo.Delete(ctx, userID, date)
}
