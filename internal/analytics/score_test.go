package analytics

import "testing"

func TestWeightedScorer(t *testing.T) {
	scorer := NewWeightedScorer(15, 10, 10, 100)

	tests := []struct {
		name  string
		input ActivityInput
		want  int
	}{
		{"no activity", ActivityInput{}, 0},
		{"tasks only", ActivityInput{CompletedTasksThisWeek: 2}, 30},
		{"reports only", ActivityInput{ReportsThisWeek: 3}, 30},
		{"synergy bonus", ActivityInput{CompletedTasksThisWeek: 1, ReportsThisWeek: 1}, 35},
		{"external signal", ActivityInput{ExternalActivity: 12}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.Score(tt.input); got != tt.want {
				t.Errorf("Score(%+v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeightedScorerCapsBeforeBonus(t *testing.T) {
	scorer := NewWeightedScorer(15, 10, 10, 100)

	// Raw sum far exceeds the cap; the bonus lands on top of the capped value.
	input := ActivityInput{CompletedTasksThisWeek: 20, ReportsThisWeek: 20}
	if got := scorer.Score(input); got != 110 {
		t.Errorf("Score(%+v) = %d, want 110", input, got)
	}

	// Over the cap without synergy stays exactly at the cap.
	input = ActivityInput{CompletedTasksThisWeek: 20}
	if got := scorer.Score(input); got != 100 {
		t.Errorf("Score(%+v) = %d, want 100", input, got)
	}
}

func TestNewWeightedScorerDefaults(t *testing.T) {
	scorer := NewWeightedScorer(0, -1, -1, 0)
	if scorer.TaskWeight != 15 || scorer.ReportWeight != 10 || scorer.SynergyBonus != 10 || scorer.MaxScore != 100 {
		t.Errorf("defaults not applied: %+v", scorer)
	}
}
