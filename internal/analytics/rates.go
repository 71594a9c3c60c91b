package analytics

import "math"

// Rate returns count/total as a percentage in [0,100]. A zero total yields 0,
// never NaN.
func Rate(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// RoundPercent rounds a percentage to the nearest whole number.
func RoundPercent(pct float64) int {
	return int(math.Round(pct))
}

// ChangePercent computes the relative change from previous to current as a
// percentage. A zero previous value is defined as 100 when current is
// positive and 0 otherwise. The second return is false when no meaningful
// comparison exists (non-finite result).
func ChangePercent(previous, current float64) (float64, bool) {
	if previous == 0 {
		if current > 0 {
			return 100, true
		}
		return 0, true
	}
	change := (current - previous) / previous * 100
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return 0, false
	}
	return change, true
}

// WeeklyProgress computes the percent change in weekly completion counts,
// clamped to [-100, 100]. A zero prior week is defined as 100 when this week
// has activity and 0 otherwise.
func WeeklyProgress(priorWeek, thisWeek int) float64 {
	if priorWeek == 0 {
		if thisWeek > 0 {
			return 100
		}
		return 0
	}
	change := (float64(thisWeek) - float64(priorWeek)) / float64(priorWeek) * 100
	if change > 100 {
		return 100
	}
	if change < -100 {
		return -100
	}
	return change
}
