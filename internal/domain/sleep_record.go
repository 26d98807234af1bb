package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source records where a daily sleep record came from.
// @Description Provenance of a daily record: manual form entry, health-data sync, or in-app tracking.
type Source string

const (
	SourceManual        Source = "manual"
	SourceHealthConnect Source = "healthconnect"
	SourceAppTracking   Source = "app_tracking"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	switch s {
	case SourceManual, SourceHealthConnect, SourceAppTracking:
		return true
	}
	return false
}

// SleepStage is the canonical sleep stage taxonomy.
type SleepStage string

const (
	StageDeep  SleepStage = "deep"
	StageLight SleepStage = "light"
	StageREM   SleepStage = "rem"
	StageAwake SleepStage = "awake"
)

// DailySleepRecord is the one-per-user-per-date sleep entry.
//
// Stage hours are pointers: nil means the source reported nothing for that
// stage, which is different from a measured zero.
type DailySleepRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sleep_records_user_date,priority:1" json:"user_id"`
	Date   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_sleep_records_user_date,priority:2" json:"date"`

	BedTime     string     `gorm:"type:varchar(5)" json:"bed_time"`
	WakeTime    string     `gorm:"type:varchar(5)" json:"wake_time"`
	BedTimeISO  *time.Time `json:"bed_time_iso,omitempty"`
	WakeTimeISO *time.Time `json:"wake_time_iso,omitempty"`
	Duration    int        `gorm:"not null;default:0" json:"duration"`

	Deep               *float64 `json:"deep,omitempty"`
	Light              *float64 `json:"light,omitempty"`
	REM                *float64 `gorm:"column:rem" json:"rem,omitempty"`
	Awake              *float64 `json:"awake,omitempty"`
	ActualSleep        *float64 `json:"actual_sleep,omitempty"`
	TotalSleepDuration *float64 `json:"total_sleep_duration,omitempty"`

	Score         *int       `gorm:"type:smallint" json:"score,omitempty"`
	Source        Source     `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	IsManualEntry bool       `gorm:"not null;default:false" json:"is_manual_entry"`
	SessionCount  int        `gorm:"not null;default:1" json:"session_count"`
	SyncedAt      *time.Time `json:"synced_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// SyncBackup holds synced data that lost to a manual entry. It is never
	// written to the store.
	SyncBackup *DailySleepRecord `gorm:"-" json:"sync_backup,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailySleepRecord) TableName() string {
	return "daily_sleep_records"
}

// IsManual reports whether the record was entered by hand. The Source enum is
// authoritative; IsManualEntry is kept in step with it by SetSource.
func (r *DailySleepRecord) IsManual() bool {
	return r.Source == SourceManual
}

// SetSource sets the provenance and the derived manual flag together.
func (r *DailySleepRecord) SetSource(s Source) {
	r.Source = s
	r.IsManualEntry = s == SourceManual
}

// HasStages reports whether any stage field is present.
func (r *DailySleepRecord) HasStages() bool {
	return r.Deep != nil || r.Light != nil || r.REM != nil || r.Awake != nil
}

// HasClockTimes reports whether both bed and wake clock strings are set.
func (r *DailySleepRecord) HasClockTimes() bool {
	return r.BedTime != "" && r.WakeTime != ""
}

// RecomputeTotals derives ActualSleep and TotalSleepDuration from the stage
// fields. Without stage data both stay nil.
func (r *DailySleepRecord) RecomputeTotals() {
	if !r.HasStages() {
		r.ActualSleep = nil
		r.TotalSleepDuration = nil
		return
	}
	actual := valueOf(r.Deep) + valueOf(r.Light) + valueOf(r.REM)
	total := actual + valueOf(r.Awake)
	r.ActualSleep = &actual
	r.TotalSleepDuration = &total
}

// StageTotalMinutes returns tracked time from stage hours, or 0 without stages.
func (r *DailySleepRecord) StageTotalMinutes() int {
	if r.TotalSleepDuration != nil {
		return int(*r.TotalSleepDuration*60 + 0.5)
	}
	if !r.HasStages() {
		return 0
	}
	total := valueOf(r.Deep) + valueOf(r.Light) + valueOf(r.REM) + valueOf(r.Awake)
	return int(total*60 + 0.5)
}

// Clone returns a deep copy that shares no pointers with r.
func (r DailySleepRecord) Clone() DailySleepRecord {
	out := r
	out.BedTimeISO = copyPtr(r.BedTimeISO)
	out.WakeTimeISO = copyPtr(r.WakeTimeISO)
	out.Deep = copyPtr(r.Deep)
	out.Light = copyPtr(r.Light)
	out.REM = copyPtr(r.REM)
	out.Awake = copyPtr(r.Awake)
	out.ActualSleep = copyPtr(r.ActualSleep)
	out.TotalSleepDuration = copyPtr(r.TotalSleepDuration)
	out.Score = copyPtr(r.Score)
	out.SyncedAt = copyPtr(r.SyncedAt)
	if r.SyncBackup != nil {
		backup := r.SyncBackup.Clone()
		out.SyncBackup = &backup
	}
	return out
}

func valueOf(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ManualEntryRequest is the request body for a manual daily entry.
// @Description Bed and wake clock times entered by hand for one calendar date.
type ManualEntryRequest struct {
	// Bed time, 24h local clock
	BedTime string `json:"bed_time" validate:"required,clock" example:"23:00"`
	// Wake time, 24h local clock (earlier than bed time means next day)
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:00"`
}

// SleepRecordResponse is the response body for daily record endpoints.
// @Description Daily sleep record with a freshly computed score.
type SleepRecordResponse struct {
	ID                 uuid.UUID         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID             uuid.UUID         `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Date               string            `json:"date" example:"2024-01-16"`
	BedTime            string            `json:"bed_time" example:"23:00"`
	WakeTime           string            `json:"wake_time" example:"07:00"`
	BedTimeISO         *time.Time        `json:"bed_time_iso,omitempty"`
	WakeTimeISO        *time.Time        `json:"wake_time_iso,omitempty"`
	Duration           int               `json:"duration" example:"480"`
	DurationHours      int               `json:"duration_hours" example:"8"`
	DurationMinutes    int               `json:"duration_minutes" example:"0"`
	Deep               *float64          `json:"deep,omitempty" example:"1.6"`
	Light              *float64          `json:"light,omitempty" example:"4.4"`
	REM                *float64          `json:"rem,omitempty" example:"1.8"`
	Awake              *float64          `json:"awake,omitempty" example:"0.3"`
	ActualSleep        *float64          `json:"actual_sleep,omitempty" example:"7.8"`
	TotalSleepDuration *float64          `json:"total_sleep_duration,omitempty" example:"8.1"`
	Score              int               `json:"score" example:"92"`
	Source             Source            `json:"source" example:"manual" enums:"manual,healthconnect,app_tracking"`
	IsManualEntry      bool              `json:"is_manual_entry"`
	SessionCount       int               `json:"session_count" example:"1"`
	SyncedAt           *time.Time        `json:"synced_at,omitempty"`
	SyncBackup         *DailySleepRecord `json:"sync_backup,omitempty"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// NewSleepRecordResponse builds a response; score is computed by the caller.
func NewSleepRecordResponse(r DailySleepRecord, score int) SleepRecordResponse {
	hours := r.Duration / 60
	minutes := r.Duration % 60
	if r.Duration < 0 {
		hours, minutes = 0, 0
	}
	return SleepRecordResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		Date:               r.Date,
		BedTime:            r.BedTime,
		WakeTime:           r.WakeTime,
		BedTimeISO:         r.BedTimeISO,
		WakeTimeISO:        r.WakeTimeISO,
		Duration:           r.Duration,
		DurationHours:      hours,
		DurationMinutes:    minutes,
		Deep:               r.Deep,
		Light:              r.Light,
		REM:                r.REM,
		Awake:              r.Awake,
		ActualSleep:        r.ActualSleep,
		TotalSleepDuration: r.TotalSleepDuration,
		Score:              score,
		Source:             r.Source,
		IsManualEntry:      r.IsManual(),
		SessionCount:       r.SessionCount,
		SyncedAt:           r.SyncedAt,
		SyncBackup:         r.SyncBackup,
		UpdatedAt:          r.UpdatedAt,
	}
}

// SleepRecordListResponse is the response body for listing daily records.
// @Description Paginated list of daily sleep records, newest date first.
type SleepRecordListResponse struct {
	Data       []SleepRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJkYXRlIjoiMjAyNC0wMS0xNiJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepRecordFilter contains filter parameters for listing daily records.
// From and To are inclusive date keys.
type SleepRecordFilter struct {
	From   string
	To     string
	Limit  int
	Cursor string
}
