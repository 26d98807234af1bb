package service

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-diary/internal/analysis"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/internal/repository"
	"github.com/blaisecz/sleep-diary/pkg/clock"
	"github.com/google/uuid"
)

const (
	// MinDurationMinutes is the minimum sleep duration to consider (90 minutes).
	MinDurationMinutes = 90

	// Default values for chronotype calculation
	DefaultChronotypeWindowDays = 30
	DefaultChronotypeMinSleeps  = 7

	// Chronotype thresholds (minutes after midnight for mid-sleep)
	EarlyBirdThreshold    = 150 // < 150 = early bird (mid-sleep before 2:30 AM)
	IntermediateThreshold = 270 // 150-269 = intermediate, >= 270 = night owl (4:30 AM)

	// Mid-sleep at or after 18:00 is taken as before midnight.
	eveningMidSleep = 18 * 60
)

// ChronotypeService computes chronotype from daily sleep records.
type ChronotypeService interface {
	// Compute calculates the user's chronotype from records in the given window.
	Compute(ctx context.Context, userID uuid.UUID, windowDays, minSleeps int) (*domain.ChronotypeResult, error)
}

type chronotypeService struct {
	repo     repository.SleepRecordRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewChronotypeService creates a new ChronotypeService.
func NewChronotypeService(repo repository.SleepRecordRepository, userRepo repository.UserRepository) ChronotypeService {
	return &chronotypeService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *chronotypeService) Compute(ctx context.Context, userID uuid.UUID, windowDays, minSleeps int) (*domain.ChronotypeResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc := user.Location()

	// Apply defaults
	if windowDays <= 0 {
		windowDays = DefaultChronotypeWindowDays
	}
	if minSleeps <= 0 {
		minSleeps = DefaultChronotypeMinSleeps
	}

	today := s.now().In(loc)
	from := clock.FormatDate(today.AddDate(0, 0, -windowDays))
	records, err := s.repo.GetRange(ctx, userID, from, clock.FormatDate(today))
	if err != nil {
		return nil, err
	}

	var midMinutes []int
	for _, rec := range records {
		if mid, ok := midSleepMinutes(rec, loc); ok {
			midMinutes = append(midMinutes, mid)
		}
	}

	result := &domain.ChronotypeResult{
		WindowDays:  windowDays,
		RecordsUsed: len(midMinutes),
	}

	// If not enough valid sleeps, return unknown
	if len(midMinutes) < minSleeps {
		result.Chronotype = domain.ChronotypeUnknown
		return result, nil
	}

	medianMid := analysis.MedianInt(midMinutes)
	mid := clock.FromMinutes(medianMid)
	result.MidSleepMinutesAfterMidnight = mid.Minutes()
	result.MidSleepLocalTime = mid.String()
	result.Chronotype = classifyChronotype(medianMid)

	return result, nil
}

// midSleepMinutes returns the record's mid-sleep as minutes after midnight,
// negative for mid-sleep in the evening before.
func midSleepMinutes(rec domain.DailySleepRecord, loc *time.Location) (int, bool) {
	duration := analysis.RecordMinutes(rec)
	if rec.SessionCount > 1 {
		// Bed and wake times of an accumulated record belong to its latest session.
		duration = latestSessionMinutes(rec)
	}
	if duration < MinDurationMinutes {
		return 0, false
	}

	var bed int
	if rec.BedTimeISO != nil {
		bed = clock.FromTime(rec.BedTimeISO.In(loc)).Minutes()
	} else {
		c, err := clock.Parse(rec.BedTime)
		if err != nil {
			return 0, false
		}
		bed = c.Minutes()
	}

	mid := (bed + duration/2) % clock.MinutesPerDay
	if mid >= eveningMidSleep {
		mid -= clock.MinutesPerDay
	}
	return mid, true
}

func latestSessionMinutes(rec domain.DailySleepRecord) int {
	if rec.BedTimeISO != nil && rec.WakeTimeISO != nil {
		return int(rec.WakeTimeISO.Sub(*rec.BedTimeISO).Minutes())
	}
	return clock.MinutesBetween(rec.BedTime, rec.WakeTime)
}

// classifyChronotype determines chronotype based on mid-sleep minutes.
func classifyChronotype(midMinutes int) domain.ChronotypeType {
	if midMinutes < EarlyBirdThreshold {
		return domain.ChronotypeEarlyBird
	}
	if midMinutes < IntermediateThreshold {
		return domain.ChronotypeIntermediate
	}
	return domain.ChronotypeNightOwl
}
