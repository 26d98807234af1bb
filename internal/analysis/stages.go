package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/pkg/clock"
)

// Vendor stage codes as reported by the health-data SDK.
const (
	codeAwake       = 1
	codeSleeping    = 2
	codeLight       = 4
	codeDeep        = 5
	codeREM         = 6
	codeAwakeInBed  = 7
	codeLightLegacy = 8
)

// Classify maps a vendor stage code to the canonical taxonomy. Unknown codes
// count as light sleep and report ok=false.
func Classify(code int) (stage domain.SleepStage, ok bool) {
	switch code {
	case codeDeep:
		return domain.StageDeep, true
	case codeREM:
		return domain.StageREM, true
	case codeAwake, codeAwakeInBed:
		return domain.StageAwake, true
	case codeLight, codeSleeping, codeLightLegacy:
		return domain.StageLight, true
	default:
		return domain.StageLight, false
	}
}

// StageSummary is the per-stage time of one or more sessions, in hours.
// A nil field means no interval of that stage was seen.
type StageSummary struct {
	Deep  *float64
	Light *float64
	REM   *float64
	Awake *float64

	// Unrecognized holds distinct unknown vendor codes, ascending.
	Unrecognized []int
	// Skipped counts intervals whose end was not after their start.
	Skipped int
}

// AggregateStages sums interval minutes per classified stage.
func AggregateStages(intervals []domain.SleepStageInterval) StageSummary {
	minutes := make(map[domain.SleepStage]float64, 4)
	unknown := make(map[int]struct{})
	var summary StageSummary

	for _, iv := range intervals {
		if !iv.EndTime.After(iv.StartTime) {
			summary.Skipped++
			continue
		}
		stage, ok := Classify(iv.Stage)
		if !ok {
			unknown[iv.Stage] = struct{}{}
		}
		minutes[stage] += iv.EndTime.Sub(iv.StartTime).Minutes()
	}

	summary.Deep = stageHours(minutes[domain.StageDeep])
	summary.Light = stageHours(minutes[domain.StageLight])
	summary.REM = stageHours(minutes[domain.StageREM])
	summary.Awake = stageHours(minutes[domain.StageAwake])

	for code := range unknown {
		summary.Unrecognized = append(summary.Unrecognized, code)
	}
	sort.Ints(summary.Unrecognized)

	return summary
}

// stageHours rounds to two decimals. A stage that rounds to zero is absent.
func stageHours(minutes float64) *float64 {
	h := math.Round(minutes/60*100) / 100
	if h <= 0 {
		return nil
	}
	return &h
}

// Apply copies the stage hours onto r and recomputes its totals.
func (s StageSummary) Apply(r *domain.DailySleepRecord) {
	r.Deep = s.Deep
	r.Light = s.Light
	r.REM = s.REM
	r.Awake = s.Awake
	r.RecomputeTotals()
}

// RecordFromSession builds the daily record for one session. The record's
// date is the local calendar date on which the session ended.
func RecordFromSession(session domain.SleepSession, loc *time.Location, source domain.Source) (domain.DailySleepRecord, StageSummary, error) {
	if loc == nil {
		loc = time.UTC
	}
	if session.StartTime.IsZero() || session.EndTime.IsZero() || !session.EndTime.After(session.StartTime) {
		return domain.DailySleepRecord{}, StageSummary{}, fmt.Errorf("%w: session must end after it starts", domain.ErrInvalidInput)
	}

	start := session.StartTime.In(loc)
	end := session.EndTime.In(loc)

	record := domain.DailySleepRecord{
		Date:         clock.FormatDate(end),
		BedTime:      clock.FromTime(start).String(),
		WakeTime:     clock.FromTime(end).String(),
		BedTimeISO:   &start,
		WakeTimeISO:  &end,
		Duration:     int(math.Round(end.Sub(start).Minutes())),
		SessionCount: 1,
	}
	record.SetSource(source)

	summary := AggregateStages(session.Stages)
	summary.Apply(&record)

	return record, summary, nil
}

// SessionReport collects what went wrong while converting sessions.
type SessionReport struct {
	Unrecognized     []int
	SkippedIntervals int
	Invalid          []domain.DroppedRecord
}

// RecordsFromSessions converts vendor sessions into per-date health records.
// Sessions ending on the same date are combined additively in end order.
func RecordsFromSessions(sessions []domain.SleepSession, loc *time.Location) (map[string]domain.DailySleepRecord, SessionReport) {
	ordered := make([]domain.SleepSession, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EndTime.Before(ordered[j].EndTime)
	})

	records := make(map[string]domain.DailySleepRecord)
	unknown := make(map[int]struct{})
	var report SessionReport

	for _, session := range ordered {
		record, summary, err := RecordFromSession(session, loc, domain.SourceHealthConnect)
		if err != nil {
			report.Invalid = append(report.Invalid, domain.DroppedRecord{
				Reason: fmt.Sprintf("session %s..%s: %v", session.StartTime.Format(time.RFC3339), session.EndTime.Format(time.RFC3339), err),
			})
			continue
		}
		for _, code := range summary.Unrecognized {
			unknown[code] = struct{}{}
		}
		report.SkippedIntervals += summary.Skipped

		if existing, ok := records[record.Date]; ok {
			// Both sides are health records with clock times, so the only
			// possible outcome is an accumulation.
			record, _ = Accumulate(&existing, record)
		}
		records[record.Date] = record
	}

	for code := range unknown {
		report.Unrecognized = append(report.Unrecognized, code)
	}
	sort.Ints(report.Unrecognized)

	return records, report
}
