package domain

// ChronotypeType represents the user's sleep chronotype classification.
// @Description Chronotype classification based on mid-sleep time.
type ChronotypeType string

const (
	ChronotypeEarlyBird    ChronotypeType = "early_bird"
	ChronotypeIntermediate ChronotypeType = "intermediate"
	ChronotypeNightOwl     ChronotypeType = "night_owl"
	ChronotypeUnknown      ChronotypeType = "unknown"
)

// ChronotypeResult contains the computed chronotype and supporting data.
// @Description Chronotype analysis result.
type ChronotypeResult struct {
	// Chronotype classification
	Chronotype ChronotypeType `json:"chronotype" example:"intermediate"`
	// Median mid-sleep clock time (HH:MM)
	MidSleepLocalTime string `json:"mid_sleep_local_time" example:"03:45"`
	// Minutes after midnight for mid-sleep
	MidSleepMinutesAfterMidnight int `json:"mid_sleep_minutes_after_midnight" example:"225"`
	// Number of days in the analysis window
	WindowDays int `json:"window_days" example:"30"`
	// Number of daily records used in calculation
	RecordsUsed int `json:"records_used" example:"28"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated sleep insights.
type LLMInsightsOutput struct {
	// Summary of sleep patterns (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep has been fairly consistent this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Average duration of 7.2 hours meets recommended guidelines\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Try to maintain your current bedtime of around 11 PM\"]"`
}

// InsightsContext is the context object sent to the LLM.
type InsightsContext struct {
	Chronotype   ChronotypeResult `json:"chronotype"`
	ThisWeek     WeekSummary      `json:"this_week"`
	PreviousWeek WeekSummary      `json:"previous_week"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Weekly sleep insights.
type InsightsResponse struct {
	Chronotype   ChronotypeResult  `json:"chronotype"`
	ThisWeek     WeekSummary       `json:"this_week"`
	PreviousWeek WeekSummary       `json:"previous_week"`
	Insights     LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}

// FeedbackRequest is the request body for insights feedback.
// @Description Request body for submitting feedback on insights.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"The insights were helpful!"`
}
