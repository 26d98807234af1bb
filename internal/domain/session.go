package domain

import "time"

// SleepStageInterval is one vendor-reported stage segment.
// @Description Sleep stage interval as reported by the device health SDK.
type SleepStageInterval struct {
	// Segment start (RFC3339)
	StartTime time.Time `json:"start_time" validate:"required" example:"2024-01-15T23:10:00Z"`
	// Segment end (RFC3339)
	EndTime time.Time `json:"end_time" validate:"required" example:"2024-01-15T23:55:00Z"`
	// Vendor stage code (1/7 awake, 2/4/8 light, 5 deep, 6 rem)
	Stage int `json:"stage" example:"5"`
}

// SleepSession is one vendor sleep session with its stage intervals.
// @Description Sleep session read from the device health SDK.
type SleepSession struct {
	// Session start (RFC3339)
	StartTime time.Time `json:"start_time" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Session end (RFC3339)
	EndTime time.Time `json:"end_time" validate:"required,gtfield=StartTime" example:"2024-01-16T07:00:00Z"`
	// Stage intervals; may be empty when the device reports duration only
	Stages []SleepStageInterval `json:"stages,omitempty" validate:"omitempty,dive"`
}

// HealthSyncRequest carries sessions read from the health-data SDK.
// @Description Health-data sync payload pushed by the mobile app.
type HealthSyncRequest struct {
	// Sessions are not validated one by one: malformed sessions are dropped
	// and listed in the response while the rest are merged.
	Sessions []SleepSession `json:"sessions" validate:"omitempty,max=400"`
	// Optional IANA timezone used to derive calendar dates (defaults to the user's)
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// DroppedRecord describes incoming data that was discarded.
// @Description Incoming session or record that could not be used.
type DroppedRecord struct {
	Date   string `json:"date,omitempty" example:"2024-01-16"`
	Reason string `json:"reason" example:"missing bed or wake time"`
}

// HealthSyncResponse reports the outcome of a sync.
// @Description Result of merging synced health data into stored records.
type HealthSyncResponse struct {
	// Dates whose stored record was replaced by synced data
	Synced []string `json:"synced"`
	// Dates kept as manual entries; synced data is attached as sync_backup
	PreservedManual []string `json:"preserved_manual"`
	// Incoming data that was discarded
	Dropped []DroppedRecord `json:"dropped"`
	// Resulting records for every date touched by the sync
	Records []SleepRecordResponse `json:"records"`
	// Unrecognized vendor stage codes (counted as light)
	UnrecognizedStages []int     `json:"unrecognized_stages,omitempty"`
	SyncedAt           time.Time `json:"synced_at"`
}

// TrackingSessionRequest is a completed in-app tracking session.
// @Description Sleep session recorded by the app's own tracker.
type TrackingSessionRequest struct {
	SleepSession
	// Optional IANA timezone used to derive the calendar date (defaults to the user's)
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// TrackingOutcome says how a tracking session was applied.
type TrackingOutcome string

const (
	TrackingCreated         TrackingOutcome = "created"
	TrackingAccumulated     TrackingOutcome = "accumulated"
	TrackingReplaced        TrackingOutcome = "replaced"
	TrackingPreservedManual TrackingOutcome = "preserved_manual"
)

// TrackingSessionResponse is the response for a completed tracking session.
// @Description Daily record after applying a tracking session.
type TrackingSessionResponse struct {
	Outcome TrackingOutcome     `json:"outcome" example:"accumulated" enums:"created,accumulated,replaced,preserved_manual"`
	Record  SleepRecordResponse `json:"record"`
}
