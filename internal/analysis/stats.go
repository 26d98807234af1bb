package analysis

import (
	"math"
	"sort"

	"github.com/blaisecz/sleep-diary/internal/domain"
)

// ComputeStats calculates mean, sample standard deviation, min and max,
// rounded to two decimals.
func ComputeStats(values []float64) domain.DescriptiveStats {
	if len(values) == 0 {
		return domain.DescriptiveStats{}
	}

	sum := 0.0
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		sum += v
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	avg := sum / float64(len(values))

	std := 0.0
	if len(values) > 1 {
		sumSquares := 0.0
		for _, v := range values {
			diff := v - avg
			sumSquares += diff * diff
		}
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}

	return domain.DescriptiveStats{
		Avg: round2(avg),
		Std: round2(std),
		Min: round2(minVal),
		Max: round2(maxVal),
	}
}

// MedianInt returns the median, averaging the middle pair for even lengths.
func MedianInt(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
