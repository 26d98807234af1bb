package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-diary/internal/analysis"
	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/pkg/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	seededDays = 40
	// Every manualEvery-th night is entered by hand instead of synced.
	manualEvery = 5
)

// Users are the fixed sample accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam", SleepGoalMinutes: 480},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", SleepGoalMinutes: 450},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", SleepGoalMinutes: 420},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney", SleepGoalMinutes: 480},
}

// Run seeds the database with sample users and daily records. Safe to call multiple times.
func Run(db *gorm.DB, log *zap.Logger) error {
	log = log.Named("seed")

	if err := db.AutoMigrate(&domain.User{}, &domain.DailySleepRecord{}, &domain.SleepSchedule{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for _, user := range Users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now()
	for _, user := range Users {
		created := 0
		for _, record := range Records(user, today, seededDays, rng) {
			result := db.Where("user_id = ? AND date = ?", record.UserID, record.Date).FirstOrCreate(&record)
			if result.Error != nil {
				return fmt.Errorf("failed to create record %s for %s: %w", record.Date, user.ID, result.Error)
			}
			created += int(result.RowsAffected)
		}
		log.Info("seeded user", zap.String("user_id", user.ID.String()), zap.String("timezone", user.Timezone), zap.Int("records_created", created))
	}

	log.Info("seed completed")
	return nil
}

// Records generates one daily record per night for the given number of days
// ending today in the user's timezone. Most nights are synced health data with
// stages; every fifth one is a manual entry.
func Records(user domain.User, today time.Time, days int, rng *rand.Rand) []domain.DailySleepRecord {
	loc := user.Location()
	local := today.In(loc)
	syncedAt := today.UTC()

	records := make([]domain.DailySleepRecord, 0, days)
	for i := 0; i < days; i++ {
		wakeDay := time.Date(local.Year(), local.Month(), local.Day()-i, 0, 0, 0, 0, loc)
		bed := wakeDay.Add(-2*time.Hour + time.Duration(rng.Intn(120))*time.Minute)
		end := bed.Add(time.Duration(330+rng.Intn(210)) * time.Minute)

		var record domain.DailySleepRecord
		if i%manualEvery == 0 {
			record = manualRecord(bed, end)
		} else {
			r, _, err := analysis.RecordFromSession(session(bed, end, rng), loc, domain.SourceHealthConnect)
			if err != nil {
				continue
			}
			record = r
			record.SyncedAt = &syncedAt
		}

		record.ID = uuid.New()
		record.UserID = user.ID
		score := analysis.ScoreFor(record)
		record.Score = &score
		records = append(records, record)
	}
	return records
}

func manualRecord(bed, end time.Time) domain.DailySleepRecord {
	bedClock := clock.FromTime(bed).String()
	wakeClock := clock.FromTime(end).String()
	record := domain.DailySleepRecord{
		Date:         clock.FormatDate(end),
		BedTime:      bedClock,
		WakeTime:     wakeClock,
		Duration:     clock.MinutesBetween(bedClock, wakeClock),
		SessionCount: 1,
	}
	record.SetSource(domain.SourceManual)
	return record
}

// cycle is one simplified sleep cycle as vendor stage codes and minutes.
var cycle = []struct {
	code    int
	minutes int
}{
	{4, 30}, {5, 20}, {4, 15}, {6, 20}, {1, 5},
}

func session(start, end time.Time, rng *rand.Rand) domain.SleepSession {
	s := domain.SleepSession{StartTime: start, EndTime: end}

	at := start
	for at.Before(end) {
		for _, step := range cycle {
			next := at.Add(time.Duration(step.minutes+rng.Intn(6)) * time.Minute)
			if next.After(end) {
				next = end
			}
			s.Stages = append(s.Stages, domain.SleepStageInterval{StartTime: at, EndTime: next, Stage: step.code})
			at = next
			if !at.Before(end) {
				break
			}
		}
	}
	return s
}
