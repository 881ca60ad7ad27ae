package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displayScores(v float64) map[string]float64 {
	return map[string]float64{
		"Trust":                 v,
		"Psychological Safety":  v,
		"Transactive Memory":    v,
		"Communication Quality": v,
		"Goal Clarity":          v,
		"Coordination":          v,
		"Team Cognition":        v,
	}
}

func TestCalculate4Cs(t *testing.T) {
	t.Run("perfect team scores 1.0 on every C", func(t *testing.T) {
		analysis := Calculate4Cs(displayScores(7))
		assert.Equal(t, 1.0, analysis.Scores.Criteria)
		assert.Equal(t, 1.0, analysis.Scores.Commitment)
		assert.Equal(t, 1.0, analysis.Scores.Collaboration)
		assert.Equal(t, 1.0, analysis.Scores.Change)
		// The 85% target leaves a negative gap for a perfect team.
		assert.InDelta(t, -0.15, analysis.Gaps.Criteria, 1e-9)
		assert.Equal(t, FourCsTarget, analysis.Target)
	})

	t.Run("neutral team scores 0.5", func(t *testing.T) {
		analysis := Calculate4Cs(displayScores(4))
		assert.InDelta(t, 0.5, analysis.Scores.Criteria, 1e-9)
		assert.InDelta(t, 0.5, analysis.Scores.Commitment, 1e-9)
		assert.InDelta(t, 0.5, analysis.Scores.Collaboration, 1e-9)
		assert.InDelta(t, 0.5, analysis.Scores.Change, 1e-9)
		assert.InDelta(t, 0.35, analysis.Gaps.Change, 1e-9)
	})

	t.Run("missing drivers default to worst case", func(t *testing.T) {
		analysis := Calculate4Cs(map[string]float64{})
		assert.Equal(t, 0.0, analysis.Scores.Criteria)
		assert.Equal(t, 0.0, analysis.Scores.Collaboration)
		assert.InDelta(t, 0.85, analysis.Gaps.Criteria, 1e-9)
	})

	t.Run("zero scores act as missing, never negative", func(t *testing.T) {
		// A zero is below the 1-7 scale floor; it takes the worst-case
		// default instead of normalizing below 0.
		analysis := Calculate4Cs(map[string]float64{"Communication Quality": 0})
		assert.Equal(t, 0.0, analysis.Scores.Criteria)
		assert.InDelta(t, 0.85, analysis.Gaps.Criteria, 1e-9)

		zeroed := Calculate4Cs(map[string]float64{
			"Trust": 0, "Psychological Safety": 0, "Transactive Memory": 0,
			"Communication Quality": 0, "Goal Clarity": 0, "Coordination": 0,
			"Team Cognition": 0,
		})
		assert.Equal(t, Calculate4Cs(map[string]float64{}), zeroed)
	})

	t.Run("composites draw from the mapped drivers only", func(t *testing.T) {
		scores := displayScores(1)
		scores["Communication Quality"] = 7

		analysis := Calculate4Cs(scores)
		assert.Equal(t, 1.0, analysis.Scores.Criteria)
		assert.Equal(t, 0.0, analysis.Scores.Commitment) // goal clarity still 1
		// Collaboration averages coordination, trust, psych safety, TMS.
		assert.Equal(t, 0.0, analysis.Scores.Collaboration)
	})
}

func TestFourCsPriorities(t *testing.T) {
	scores := displayScores(7)
	scores["Goal Clarity"] = 1 // commitment worst, change dragged down
	scores["Coordination"] = 4 // change and collaboration partly affected

	priorities := FourCsPriorities(Calculate4Cs(scores))
	require.Len(t, priorities, 4)
	assert.Equal(t, "Commitment", priorities[0].Name)
	for i := 1; i < len(priorities); i++ {
		assert.GreaterOrEqual(t, priorities[i-1].Gap, priorities[i].Gap)
	}
}

func TestRecommendedDeliverables(t *testing.T) {
	t.Run("healthy team gets no recommendations", func(t *testing.T) {
		assert.Empty(t, RecommendedDeliverables(Calculate4Cs(displayScores(7))))
	})

	t.Run("every C below the cutoff is recommended", func(t *testing.T) {
		recs := RecommendedDeliverables(Calculate4Cs(displayScores(1)))
		require.Len(t, recs, 4)
		assert.Equal(t, AllDeliverables["Criteria"], recs["Criteria"])
		assert.Equal(t, AllDeliverables["Change"], recs["Change"])
	})

	t.Run("cutoff is 60 percent", func(t *testing.T) {
		// Score 4.9 normalizes to 0.65, above the cutoff; 4 normalizes
		// to 0.5, below it.
		scores := displayScores(4.9)
		scores["Goal Clarity"] = 4

		recs := RecommendedDeliverables(Calculate4Cs(scores))
		assert.Contains(t, recs, "Commitment")
		assert.NotContains(t, recs, "Criteria")
	})
}

func TestRecommendedDeliverablesByTraining(t *testing.T) {
	// All four C's gapped; the training type caps how many get addressed.
	analysis := Calculate4Cs(displayScores(1))

	tests := []struct {
		name         string
		trainingType TrainingType
		expected     int
	}{
		{name: "half day covers the single worst C", trainingType: TrainingHalfDay, expected: 1},
		{name: "full day covers two", trainingType: TrainingFullDay, expected: 2},
		{name: "month long covers everything gapped", trainingType: TrainingMonthLong, expected: 4},
		{name: "not sure shows everything gapped", trainingType: TrainingNotSure, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := RecommendedDeliverablesByTraining(analysis, tt.trainingType)
			assert.Len(t, recs, tt.expected)
		})
	}
}

func TestOtherDeliverablesByTrainingComplementsRecommended(t *testing.T) {
	analysis := Calculate4Cs(displayScores(1))

	recommended := RecommendedDeliverablesByTraining(analysis, TrainingHalfDay)
	others := OtherDeliverablesByTraining(analysis, TrainingHalfDay)

	require.Len(t, recommended, 1)
	assert.Len(t, others, 3)
	for name := range recommended {
		assert.NotContains(t, others, name)
	}

	// A healthy C lands in "others" even when nothing is gapped.
	healthy := Calculate4Cs(displayScores(7))
	assert.Len(t, OtherDeliverablesByTraining(healthy, TrainingHalfDay), 4)
}
