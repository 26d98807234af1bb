package analysis

import (
	"math"
	"time"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/pkg/clock"
)

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekStart returns midnight of the Monday on or before t, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}

// WeekRange returns the Monday and Sunday date keys of t's week.
func WeekRange(t time.Time) (start, end string) {
	monday := WeekStart(t)
	sunday := time.Date(monday.Year(), monday.Month(), monday.Day()+6, 0, 0, 0, 0, monday.Location())
	return clock.FormatDate(monday), clock.FormatDate(sunday)
}

// WeekOf lays the records of selected's week out Monday first. Days without
// a record have nil Data.
func WeekOf(selected time.Time, records map[string]domain.DailySleepRecord) []domain.WeekDay {
	monday := WeekStart(selected)
	week := make([]domain.WeekDay, 7)

	for i := range week {
		day := time.Date(monday.Year(), monday.Month(), monday.Day()+i, 0, 0, 0, 0, monday.Location())
		entry := domain.WeekDay{
			Date:    clock.FormatDate(day),
			DayName: dayNames[i],
		}
		if record, ok := records[entry.Date]; ok {
			r := record.Clone()
			entry.Data = &r
			entry.Hours = math.Round(float64(RecordMinutes(r))/60*100) / 100
			entry.Score = ScoreFor(r)
		}
		week[i] = entry
	}

	return week
}

// RecordMinutes is the time a record counts for: its duration, or the
// tracked stage time when no duration is stored.
func RecordMinutes(r domain.DailySleepRecord) int {
	if r.Duration > 0 {
		return r.Duration
	}
	return r.StageTotalMinutes()
}

// WeeklyAverage averages score and duration over the days that have a record.
func WeeklyAverage(week []domain.WeekDay) domain.WeeklyAverage {
	var scoreSum, minuteSum, days int
	for _, d := range week {
		if d.Data == nil {
			continue
		}
		days++
		scoreSum += ScoreFor(*d.Data)
		minuteSum += RecordMinutes(*d.Data)
	}
	if days == 0 {
		return domain.WeeklyAverage{}
	}

	avgMinutes := int(math.Round(float64(minuteSum) / float64(days)))
	hours, minutes := clock.SplitMinutes(avgMinutes)

	return domain.WeeklyAverage{
		Score:           int(math.Round(float64(scoreSum) / float64(days))),
		AvgSleepHours:   hours,
		AvgSleepMinutes: minutes,
		AvgDuration:     avgMinutes,
		DaysWithData:    days,
	}
}

// DurationStats describes the sleep hours of the days that have a record.
func DurationStats(week []domain.WeekDay) domain.DescriptiveStats {
	var hours []float64
	for _, d := range week {
		if d.Data != nil {
			hours = append(hours, float64(RecordMinutes(*d.Data))/60)
		}
	}
	return ComputeStats(hours)
}

// DaysMeetingGoal counts days whose sleep time reached goalMinutes.
func DaysMeetingGoal(week []domain.WeekDay, goalMinutes int) int {
	n := 0
	for _, d := range week {
		if d.Data != nil && RecordMinutes(*d.Data) >= goalMinutes {
			n++
		}
	}
	return n
}
