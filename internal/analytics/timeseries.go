package analytics

import "time"

// DailyCount is one bucket of the reports-over-time series.
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// WeekdayCount is one bucket of the submissions-by-weekday breakdown.
type WeekdayCount struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// MonthlyRate is one bucket of the monthly approval trend. ChangePct is nil
// when no month-over-month comparison is available.
type MonthlyRate struct {
	Month     time.Time `json:"month"`
	Total     int       `json:"total"`
	Approved  int       `json:"approved"`
	Rate      float64   `json:"rate"`
	ChangePct *float64  `json:"change_pct,omitempty"`
}

// DailyBuckets counts timestamps per calendar day over [from,to] inclusive.
// Every day in the range gets a bucket, zero-filled when nothing matched, so
// the chart axis never collapses on sparse windows.
func DailyBuckets(from, to time.Time, timestamps []time.Time) []DailyCount {
	start := truncateToDay(from)
	end := truncateToDay(to)
	if end.Before(start) {
		return []DailyCount{}
	}

	var buckets []DailyCount
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		count := 0
		for _, ts := range timestamps {
			if !ts.Before(day) && ts.Before(next) {
				count++
			}
		}
		buckets = append(buckets, DailyCount{Date: day, Count: count})
	}
	return buckets
}

// WeekdayBreakdown counts timestamps per weekday name, Monday first.
func WeekdayBreakdown(timestamps []time.Time) []WeekdayCount {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	counts := make(map[time.Weekday]int, len(order))
	for _, ts := range timestamps {
		counts[ts.Weekday()]++
	}

	breakdown := make([]WeekdayCount, 0, len(order))
	for _, day := range order {
		breakdown = append(breakdown, WeekdayCount{Weekday: day.String(), Count: counts[day]})
	}
	return breakdown
}

// MonthlyApprovalTrend folds reports into the trailing `months` calendar
// months ending at `now`, computing per-month approval rates and the
// month-over-month change. Each bucket independently filters by submission
// timestamp.
func MonthlyApprovalTrend(now time.Time, months int, submitted []time.Time, approved []time.Time) []MonthlyRate {
	if months <= 0 {
		return []MonthlyRate{}
	}

	trend := make([]MonthlyRate, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		total := countInRange(submitted, monthStart, monthEnd)
		ok := countInRange(approved, monthStart, monthEnd)

		bucket := MonthlyRate{
			Month:    monthStart,
			Total:    total,
			Approved: ok,
			Rate:     Rate(ok, total),
		}
		if len(trend) > 0 {
			prev := trend[len(trend)-1]
			if change, comparable := ChangePercent(prev.Rate, bucket.Rate); comparable {
				bucket.ChangePct = &change
			}
		}
		trend = append(trend, bucket)
	}
	return trend
}

func countInRange(timestamps []time.Time, from, to time.Time) int {
	count := 0
	for _, ts := range timestamps {
		if !ts.Before(from) && ts.Before(to) {
			count++
		}
	}
	return count
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
