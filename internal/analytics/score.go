package analytics

import "math"

// ActivityInput collects the recent-activity signals feeding the score.
type ActivityInput struct {
	CompletedTasksThisWeek int
	ReportsThisWeek        int
	ExternalActivity       float64
}

// ActivityScorer turns recent activity into a bounded engagement score.
// Implementations are interchangeable strategies; the weighted default is a
// heuristic, not a validated model.
type ActivityScorer interface {
	Score(input ActivityInput) int
}

// WeightedScorer is the default scorer: a capped weighted sum with a bonus
// when task and report activity coincide.
type WeightedScorer struct {
	TaskWeight   int
	ReportWeight int
	SynergyBonus int
	MaxScore     int
}

// NewWeightedScorer builds a scorer, substituting the stock weights for any
// non-positive value.
func NewWeightedScorer(taskWeight, reportWeight, synergyBonus, maxScore int) *WeightedScorer {
	if taskWeight <= 0 {
		taskWeight = 15
	}
	if reportWeight <= 0 {
		reportWeight = 10
	}
	if synergyBonus < 0 {
		synergyBonus = 10
	}
	if maxScore <= 0 {
		maxScore = 100
	}
	return &WeightedScorer{
		TaskWeight:   taskWeight,
		ReportWeight: reportWeight,
		SynergyBonus: synergyBonus,
		MaxScore:     maxScore,
	}
}

// Score implements ActivityScorer.
func (w *WeightedScorer) Score(input ActivityInput) int {
	raw := float64(input.CompletedTasksThisWeek*w.TaskWeight) +
		float64(input.ReportsThisWeek*w.ReportWeight) +
		input.ExternalActivity
	score := math.Min(float64(w.MaxScore), raw)
	if input.CompletedTasksThisWeek > 0 && input.ReportsThisWeek > 0 {
		score += float64(w.SynergyBonus)
	}
	return int(math.Round(score))
}
