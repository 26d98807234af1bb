package domain

// WeekDay is one slot of a Monday-first week view.
// @Description One day of the week view; data is null when nothing was recorded.
type WeekDay struct {
	Date    string            `json:"date" example:"2024-01-15"`
	DayName string            `json:"day_name" example:"Mon"`
	Data    *DailySleepRecord `json:"data"`
	// Chart value in hours (0 when no data)
	Hours float64 `json:"hours" example:"7.5"`
	// Score computed for this day (0 when no data)
	Score int `json:"score" example:"85"`
}

// WeeklyAverage averages only the days that have a record.
// @Description Weekly averages over days with data.
type WeeklyAverage struct {
	Score           int `json:"score" example:"82"`
	AvgSleepHours   int `json:"avg_sleep_hours" example:"7"`
	AvgSleepMinutes int `json:"avg_sleep_minutes" example:"24"`
	// Rounded mean duration in minutes
	AvgDuration  int `json:"avg_duration" example:"444"`
	DaysWithData int `json:"days_with_data" example:"5"`
}

// DescriptiveStats holds basic statistical measures.
// @Description Basic statistical measures for a metric.
type DescriptiveStats struct {
	Avg float64 `json:"avg" example:"7.2"`
	Std float64 `json:"std" example:"0.8"`
	Min float64 `json:"min" example:"5.5"`
	Max float64 `json:"max" example:"9.0"`
}

// WeekSummary is the response for the week endpoint.
// @Description Monday-first week of daily records with averages.
type WeekSummary struct {
	Start   string        `json:"start" example:"2024-01-15"`
	End     string        `json:"end" example:"2024-01-21"`
	Days    []WeekDay     `json:"days"`
	Average WeeklyAverage `json:"average"`
	// Duration statistics in hours over days with data
	Duration DescriptiveStats `json:"duration"`
	// Nightly goal the week is measured against
	GoalMinutes int `json:"goal_minutes" example:"480"`
	// Days whose duration met the goal
	DaysMeetingGoal int `json:"days_meeting_goal" example:"3"`
}
