// Package analysis holds the sleep metrics core: scoring, stage
// classification, record merging and weekly aggregation. Every function is
// pure; problems are reported in return values for the caller to log.
package analysis

import (
	"math"

	"github.com/blaisecz/sleep-diary/internal/domain"
)

const (
	// IdealSleepHours is the center of the duration scoring bands.
	IdealSleepHours = 8.0

	idealDeepRatio  = 0.20
	idealREMRatio   = 0.25
	idealLightRatio = 0.55
)

// EstimateScore maps a sleep duration to a 0-100 score using five bands
// around the 8 hour ideal. Within each outer band the penalty is measured
// from that band's inner edge, so leaving the 7-9 hour band drops the score
// from 90 to 80.
func EstimateScore(durationMinutes int) int {
	h := float64(durationMinutes) / 60

	var score float64
	switch {
	case h >= 7 && h <= 9:
		score = 100 - math.Abs(h-IdealSleepHours)*10
	case h >= 6 && h < 7:
		score = 80 - (7-h)*20
	case h > 9 && h <= 10:
		score = 80 - (h-9)*20
	case h >= 5 && h < 6:
		score = 60 - (6-h)*20
	case h > 10 && h <= 11:
		score = 60 - (h-10)*20
	case h >= 4 && h < 5:
		score = 40 - (5-h)*20
	case h > 11 && h <= 12:
		score = 40 - (h-11)*20
	case h < 4:
		score = math.Max(0, 20-(4-h)*5)
	default:
		score = math.Max(0, 20-(h-12)*5)
	}

	return clampScore(score)
}

// EstimateStageScore scores a night with stage data: 40 points for sleep
// efficiency, 30 for stage balance and 30 for actual sleep duration.
func EstimateStageScore(deep, light, rem, awake float64) int {
	actual := deep + light + rem
	total := actual + awake
	if actual <= 0 || total <= 0 {
		return 0
	}

	return clampScore(efficiencyPoints(actual/total) +
		stageBalancePoints(deep/actual, rem/actual, light/actual) +
		durationRatioPoints(actual))
}

func efficiencyPoints(eff float64) float64 {
	switch {
	case eff >= 0.85:
		return 40
	case eff >= 0.75:
		return 35
	case eff >= 0.65:
		return 25
	default:
		return eff / 0.65 * 25
	}
}

func stageBalancePoints(deepRatio, remRatio, lightRatio float64) float64 {
	deep := math.Max(0, 10-math.Abs(deepRatio-idealDeepRatio)*50)
	rem := math.Max(0, 10-math.Abs(remRatio-idealREMRatio)*40)
	light := math.Max(0, 10-math.Abs(lightRatio-idealLightRatio)*20)
	return deep + rem + light
}

func durationRatioPoints(actualHours float64) float64 {
	deviation := math.Abs(actualHours-IdealSleepHours) / IdealSleepHours
	switch {
	case deviation <= 0.10:
		return 30
	case deviation <= 0.20:
		return 24
	case deviation <= 0.30:
		return 18
	case deviation <= 0.40:
		return 12
	default:
		return 6
	}
}

// ScoreFor is the read-path score of a record. It prefers fresh computation:
// stage data first, then duration. A stored score is only used when neither
// is available.
func ScoreFor(r domain.DailySleepRecord) int {
	if r.HasStages() {
		if s := EstimateStageScore(deref(r.Deep), deref(r.Light), deref(r.REM), deref(r.Awake)); s > 0 {
			return s
		}
	}
	if r.Duration > 0 {
		return EstimateScore(r.Duration)
	}
	if r.Score != nil {
		return clampScore(float64(*r.Score))
	}
	return 0
}

func clampScore(score float64) int {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
