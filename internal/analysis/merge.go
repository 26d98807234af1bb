package analysis

import (
	"sort"
	"time"

	"github.com/blaisecz/sleep-diary/internal/domain"
	"github.com/blaisecz/sleep-diary/pkg/clock"
	"github.com/google/uuid"
)

// MergeResult is the outcome of merging synced records into stored ones.
type MergeResult struct {
	// Records holds every existing date plus every merged incoming date.
	Records map[string]domain.DailySleepRecord
	// Changed lists dates whose record must be written back, ascending.
	Changed []string
	// PreservedManual lists manual dates that received a sync backup, ascending.
	PreservedManual []string
	// Dropped lists incoming records that were discarded.
	Dropped []domain.DroppedRecord
}

// Merge reconciles incoming synced records with stored records, date by date.
// A stored manual record always survives; the synced data is attached to it
// as SyncBackup. Otherwise the synced record replaces the stored one, keeping
// the stored row identity. Neither input map is modified.
func Merge(existing, incoming map[string]domain.DailySleepRecord, syncedAt time.Time) MergeResult {
	result := MergeResult{
		Records: make(map[string]domain.DailySleepRecord, len(existing)+len(incoming)),
	}
	for date, record := range existing {
		result.Records[date] = record.Clone()
	}

	for _, date := range sortedDates(incoming) {
		in := incoming[date]
		if reason := invalidReason(date, in); reason != "" {
			result.Dropped = append(result.Dropped, domain.DroppedRecord{Date: date, Reason: reason})
			continue
		}

		synced := in.Clone()
		synced.Date = date
		synced.SyncBackup = nil
		synced.SetSource(domain.SourceHealthConnect)
		at := syncedAt
		synced.SyncedAt = &at
		if synced.Duration == 0 {
			synced.Duration = clock.MinutesBetween(synced.BedTime, synced.WakeTime)
		}
		if synced.SessionCount < 1 {
			synced.SessionCount = 1
		}

		prev, ok := existing[date]
		if ok && prev.IsManual() {
			kept := prev.Clone()
			kept.SyncBackup = &synced
			result.Records[date] = kept
			result.PreservedManual = append(result.PreservedManual, date)
			continue
		}

		if ok {
			adoptIdentity(&synced, prev)
		}
		result.Records[date] = synced
		result.Changed = append(result.Changed, date)
	}

	return result
}

// Accumulate applies a completed tracking session to the stored record for
// the same date. Two non-manual sessions add up: durations and stage hours
// are summed while clock times come from the latest session. A stored manual
// record is preserved with the session attached as SyncBackup. If either side
// lacks clock times the session simply replaces the stored record.
func Accumulate(existing *domain.DailySleepRecord, session domain.DailySleepRecord) (domain.DailySleepRecord, domain.TrackingOutcome) {
	next := session.Clone()
	next.SyncBackup = nil
	if next.SessionCount < 1 {
		next.SessionCount = 1
	}

	if existing == nil {
		return next, domain.TrackingCreated
	}

	prev := existing.Clone()
	if prev.IsManual() {
		prev.SyncBackup = &next
		return prev, domain.TrackingPreservedManual
	}

	adoptIdentity(&next, prev)
	if next.IsManual() || !prev.HasClockTimes() || !next.HasClockTimes() {
		return next, domain.TrackingReplaced
	}

	next.Duration = prev.Duration + next.Duration
	next.Deep = addHours(prev.Deep, next.Deep)
	next.Light = addHours(prev.Light, next.Light)
	next.REM = addHours(prev.REM, next.REM)
	next.Awake = addHours(prev.Awake, next.Awake)
	next.RecomputeTotals()
	next.Score = nil
	next.SessionCount = max(prev.SessionCount, 1) + next.SessionCount

	return next, domain.TrackingAccumulated
}

func adoptIdentity(dst *domain.DailySleepRecord, prev domain.DailySleepRecord) {
	dst.ID = prev.ID
	if dst.UserID == uuid.Nil {
		dst.UserID = prev.UserID
	}
	dst.CreatedAt = prev.CreatedAt
}

func addHours(a, b *float64) *float64 {
	if a == nil && b == nil {
		return nil
	}
	sum := deref(a) + deref(b)
	return &sum
}

func invalidReason(date string, r domain.DailySleepRecord) string {
	switch {
	case !clock.ValidDate(date):
		return "invalid date key"
	case r.Date != "" && r.Date != date:
		return "record date does not match its key"
	case !r.HasClockTimes():
		return "missing bed or wake time"
	case !clock.Valid(r.BedTime) || !clock.Valid(r.WakeTime):
		return "unparseable bed or wake time"
	case r.Duration < 0:
		return "negative duration"
	case negative(r.Deep) || negative(r.Light) || negative(r.REM) || negative(r.Awake):
		return "negative stage hours"
	}
	return ""
}

func negative(p *float64) bool {
	return p != nil && *p < 0
}

func sortedDates(m map[string]domain.DailySleepRecord) []string {
	dates := make([]string, 0, len(m))
	for date := range m {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
