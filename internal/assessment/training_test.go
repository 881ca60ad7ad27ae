package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingOptionsCatalog(t *testing.T) {
	tests := []struct {
		trainingType TrainingType
		cost         float64
		focusAreas   int
	}{
		{trainingType: TrainingHalfDay, cost: 2000, focusAreas: 1},
		{trainingType: TrainingFullDay, cost: 3500, focusAreas: 2},
		{trainingType: TrainingMonthLong, cost: 50000, focusAreas: 7},
		{trainingType: TrainingNotSure, cost: 0, focusAreas: 0},
	}

	for _, tt := range tests {
		option, ok := TrainingOptions[tt.trainingType]
		require.True(t, ok, string(tt.trainingType))
		assert.Equal(t, tt.cost, option.Cost)
		assert.Equal(t, tt.focusAreas, option.FocusAreas)
	}
}

func TestGetPriorityAreas(t *testing.T) {
	t.Run("ranks by gap times weight, descending", func(t *testing.T) {
		scores := uniformScores(6)
		scores.CommQuality = 1 // by far the worst driver

		areas := GetPriorityAreas(scores, CostAttributionWeights())
		require.Len(t, areas, 7)
		assert.Equal(t, DriverCommQuality, areas[0].ID)
		assert.Equal(t, 1, areas[0].Priority)
		assert.Equal(t, 7, areas[6].Priority)
		for i := 1; i < len(areas); i++ {
			assert.GreaterOrEqual(t,
				areas[i-1].Gap*areas[i-1].Weight,
				areas[i].Gap*areas[i].Weight)
		}
	})

	t.Run("equal scores rank by weight", func(t *testing.T) {
		areas := GetPriorityAreas(uniformScores(4), CostAttributionWeights())
		assert.Equal(t, DriverTrust, areas[0].ID)         // 0.18
		assert.Equal(t, DriverTeamCognition, areas[6].ID) // 0.11
	})

	t.Run("missing weights default to 0.143 and keep survey order", func(t *testing.T) {
		areas := GetPriorityAreas(uniformScores(4), nil)
		require.Len(t, areas, 7)
		for i, d := range Drivers() {
			assert.Equal(t, d, areas[i].ID)
			assert.Equal(t, 0.143, areas[i].Weight)
		}
	})

	t.Run("gap is 0.85 minus score over 7", func(t *testing.T) {
		scores := uniformScores(4)
		scores.Trust = 1
		areas := GetPriorityAreas(scores, CostAttributionWeights())
		assert.InDelta(t, 0.85-1.0/7.0, areas[0].Gap, 1e-9)
	})
}

func TestCalculateDriverCosts(t *testing.T) {
	t.Run("cost formula", func(t *testing.T) {
		scores := uniformScores(4)
		costs := CalculateDriverCosts(scores, CostAttributionWeights(), 10, 100000)
		require.Len(t, costs, 7)
		// (1 - 4/7) x 0.18 x $1,000,000
		assert.InDelta(t, (3.0/7.0)*0.18*1_000_000, costs[DriverTrust], 0.01)
	})

	t.Run("missing weights split evenly", func(t *testing.T) {
		costs := CalculateDriverCosts(uniformScores(4), nil, 10, 100000)
		for _, d := range Drivers() {
			assert.InDelta(t, (3.0/7.0)*(1.0/7.0)*1_000_000, costs[d], 0.01)
		}
	})

	t.Run("perfect scores cost nothing", func(t *testing.T) {
		costs := CalculateDriverCosts(uniformScores(7), CostAttributionWeights(), 10, 100000)
		for _, d := range Drivers() {
			assert.InDelta(t, 0, costs[d], 1e-6)
		}
	})
}

func TestGetRecommendedAreas(t *testing.T) {
	areas := GetPriorityAreas(uniformScores(4), CostAttributionWeights())

	assert.Len(t, GetRecommendedAreas(TrainingHalfDay, areas), 1)
	assert.Len(t, GetRecommendedAreas(TrainingFullDay, areas), 2)
	assert.Len(t, GetRecommendedAreas(TrainingMonthLong, areas), 7)
	// Not-sure returns the full ranked list for comparison.
	assert.Len(t, GetRecommendedAreas(TrainingNotSure, areas), 7)
}

// Golden case: worst driver comm_quality at 1.0 (weight 0.15), team of 10
// at $100k. Driver cost (6/7)x0.15x$1M = $128,571; half-day savings at 85%
// = $109,286; ROI 53.64; payback 2000/109286x12+3 = 3.22 months.
func TestCalculateTrainingROIGolden(t *testing.T) {
	scores := uniformScores(6)
	scores.CommQuality = 1

	weights := CostAttributionWeights()
	areas := GetPriorityAreas(scores, weights)
	require.Equal(t, DriverCommQuality, areas[0].ID)
	costs := CalculateDriverCosts(scores, weights, 10, 100000)

	result := CalculateTrainingROI(2000, areas, costs, 1)

	assert.InDelta(t, 128571.43*0.85, result.Savings, 1.0)
	assert.InDelta(t, 109285.71, result.Savings, 1.0)
	assert.InDelta(t, 53.64, result.ROI, 0.01)
	assert.InDelta(t, 3.22, result.PaybackMonths, 0.01)
	assert.Equal(t, []string{"Communication Quality"}, result.AddressedDrivers)
}

func TestCalculateTrainingROIScoping(t *testing.T) {
	areas := GetPriorityAreas(uniformScores(4), CostAttributionWeights())
	costs := CalculateDriverCosts(uniformScores(4), CostAttributionWeights(), 10, 100000)

	halfDay := CalculateTrainingROI(2000, areas, costs, 1)
	fullDay := CalculateTrainingROI(3500, areas, costs, 2)
	monthLong := CalculateTrainingROI(50000, areas, costs, 7)

	// Top driver on equal scores is trust (weight 0.18).
	assert.InDelta(t, (3.0/7.0)*0.18*1_000_000*0.85, halfDay.Savings, 1.0)
	// Full day adds psych safety (0.17).
	assert.InDelta(t, (3.0/7.0)*0.35*1_000_000*0.85, fullDay.Savings, 1.0)
	// Month long covers all drivers; weights sum to 1.
	assert.InDelta(t, (3.0/7.0)*1_000_000*0.85, monthLong.Savings, 1.0)

	assert.Len(t, halfDay.AddressedDrivers, 1)
	assert.Len(t, fullDay.AddressedDrivers, 2)
	assert.Len(t, monthLong.AddressedDrivers, 7)

	// A focus count beyond the list covers everything available.
	overscoped := CalculateTrainingROI(50000, areas, costs, 99)
	assert.Equal(t, monthLong.Savings, overscoped.Savings)
}

func TestCalculateTrainingROIPerfectTeam(t *testing.T) {
	areas := GetPriorityAreas(uniformScores(7), CostAttributionWeights())
	costs := CalculateDriverCosts(uniformScores(7), CostAttributionWeights(), 10, 100000)

	result := CalculateTrainingROI(2000, areas, costs, 1)

	// Zero savings: total loss, and the never-pays-back sentinel still
	// carries the 3-month adoption buffer.
	assert.Equal(t, -1.0, result.ROI)
	assert.Equal(t, 1002.0, result.PaybackMonths)
	assert.Equal(t, 0.0, result.Savings)
}

func TestMonthLongTimeline(t *testing.T) {
	areas := GetPriorityAreas(uniformScores(4), CostAttributionWeights())
	weeks := MonthLongTimeline(areas)

	require.Len(t, weeks, 4)
	assert.Equal(t, 1, weeks[0].Week)
	assert.Len(t, weeks[0].Areas, 2)
	assert.Len(t, weeks[1].Areas, 2)
	assert.Len(t, weeks[2].Areas, 2)
	assert.Len(t, weeks[3].Areas, 1)

	// Most critical drivers land in week 1.
	assert.Equal(t, areas[0].ID, weeks[0].Areas[0].ID)
	assert.Contains(t, weeks[0].Focus, "Foundation")
}

func TestRecommendedTrainingDeliverables(t *testing.T) {
	scores := uniformScores(6)
	scores.Trust = 2

	areas := GetPriorityAreas(scores, CostAttributionWeights())
	recommended := GetRecommendedAreas(TrainingHalfDay, areas)

	sets := RecommendedTrainingDeliverables(TrainingHalfDay, recommended)
	require.Len(t, sets, 1)
	assert.Equal(t, "Collaboration", sets[0].Category)
	assert.NotEmpty(t, sets[0].Deliverables)
	assert.Contains(t, sets[0].Rationale, "Trust scored 2.0/7")
	assert.Contains(t, sets[0].Rationale, "significant")

	// Not-sure has no single recommendation to explain.
	assert.Nil(t, RecommendedTrainingDeliverables(TrainingNotSure, areas))
}
