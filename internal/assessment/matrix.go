package assessment

import (
	"sort"
	"time"
)

// QuadrantThreshold is the cut point on both matrix axes. The comparison is
// >=, so a score landing exactly on the threshold counts as high.
const QuadrantThreshold = 2.5

// missing matrix scores default to the scale midpoint, unlike the 4 C's
// analyzer's worst-case default of 1. Both defaults are local to their
// component and covered by tests.
const neutralScore = 4

// CalculateGap returns the distance from the maximum attainable score,
// floored at 0.
func CalculateGap(score float64) float64 {
	if gap := 7 - score; gap > 0 {
		return gap
	}
	return 0
}

// DetermineQuadrant buckets a driver from its two weighted axis scores.
// The axes are independent 1-D threshold tests, not a distance metric.
func DetermineQuadrant(teamImpactScore, businessValueScore float64) Quadrant {
	highTeamImpact := teamImpactScore >= QuadrantThreshold
	highBusinessValue := businessValueScore >= QuadrantThreshold

	switch {
	case highTeamImpact && highBusinessValue:
		return QuadrantCritical
	case highBusinessValue:
		return QuadrantHigh
	case highTeamImpact:
		return QuadrantMedium
	default:
		return QuadrantLow
	}
}

// CalculateDriverMatrix positions a single driver on the matrix.
func CalculateDriverMatrix(d Driver, score float64, industry string) (DriverMatrixResult, error) {
	tw, err := TeamImpactWeight(d)
	if err != nil {
		return DriverMatrixResult{}, err
	}
	bw, err := BusinessValueWeight(industry, d)
	if err != nil {
		return DriverMatrixResult{}, err
	}

	gap := CalculateGap(score)
	teamImpactScore := gap * tw
	businessValueScore := gap * bw

	return DriverMatrixResult{
		DriverID:            d,
		DriverName:          d.DisplayName(),
		Score:               score,
		Gap:                 gap,
		TeamImpactWeight:    tw,
		TeamImpactScore:     teamImpactScore,
		BusinessValueWeight: bw,
		BusinessValueScore:  businessValueScore,
		Quadrant:            DetermineQuadrant(teamImpactScore, businessValueScore),
	}, nil
}

// CalculatePriorityMatrix positions all 7 drivers. Missing driver scores
// default to neutral (4); unknown industries use the Professional Services
// business-value row. The quadrant counts always sum to 7.
func CalculatePriorityMatrix(scores map[Driver]float64, industry string) (PriorityMatrixResult, error) {
	if !IsValidMatrixIndustry(industry) {
		industry = DefaultMatrixIndustry
	}

	drivers := make([]DriverMatrixResult, 0, 7)
	counts := map[Quadrant]int{
		QuadrantCritical: 0,
		QuadrantHigh:     0,
		QuadrantMedium:   0,
		QuadrantLow:      0,
	}

	for _, d := range Drivers() {
		score, ok := scores[d]
		if !ok || score == 0 {
			score = neutralScore
		}
		result, err := CalculateDriverMatrix(d, score, industry)
		if err != nil {
			return PriorityMatrixResult{}, err
		}
		drivers = append(drivers, result)
		counts[result.Quadrant]++
	}

	return PriorityMatrixResult{
		Industry:       industry,
		Drivers:        drivers,
		QuadrantCounts: counts,
		CalculatedAt:   time.Now().UTC(),
	}, nil
}

var quadrantOrder = map[Quadrant]int{
	QuadrantCritical: 0,
	QuadrantHigh:     1,
	QuadrantMedium:   2,
	QuadrantLow:      3,
}

// DriversByPriority orders the matrix drivers CRITICAL first, then HIGH,
// MEDIUM, LOW; within a quadrant by combined axis score, descending.
func DriversByPriority(matrix PriorityMatrixResult) []DriverMatrixResult {
	drivers := make([]DriverMatrixResult, len(matrix.Drivers))
	copy(drivers, matrix.Drivers)

	sort.SliceStable(drivers, func(i, j int) bool {
		a, b := drivers[i], drivers[j]
		if quadrantOrder[a.Quadrant] != quadrantOrder[b.Quadrant] {
			return quadrantOrder[a.Quadrant] < quadrantOrder[b.Quadrant]
		}
		return a.TeamImpactScore+a.BusinessValueScore > b.TeamImpactScore+b.BusinessValueScore
	})
	return drivers
}

// DriversInQuadrant filters the matrix to a single quadrant.
func DriversInQuadrant(matrix PriorityMatrixResult, q Quadrant) []DriverMatrixResult {
	out := make([]DriverMatrixResult, 0, len(matrix.Drivers))
	for _, d := range matrix.Drivers {
		if d.Quadrant == q {
			out = append(out, d)
		}
	}
	return out
}

// ClassifyScoreBand buckets a raw 1-7 score. Boundaries are inclusive on
// the low side: 2.5 is still critical, 2.51 is monitor, and likewise at
// 4.0 and 5.5.
func ClassifyScoreBand(score float64) ScoreBand {
	switch {
	case score <= 2.5:
		return BandCritical
	case score <= 4.0:
		return BandMonitor
	case score <= 5.5:
		return BandStable
	default:
		return BandStrength
	}
}

// driverAliases maps the key spellings seen in stored assessments to
// canonical driver ids.
var driverAliases = map[string]Driver{
	"trust":                 DriverTrust,
	"psych_safety":          DriverPsychSafety,
	"psychSafety":           DriverPsychSafety,
	"psychological_safety":  DriverPsychSafety,
	"comm_quality":          DriverCommQuality,
	"commQuality":           DriverCommQuality,
	"communication_quality": DriverCommQuality,
	"communication":         DriverCommQuality,
	"goal_clarity":          DriverGoalClarity,
	"goalClarity":           DriverGoalClarity,
	"coordination":          DriverCoordination,
	"tms":                   DriverTMS,
	"transactive_memory":    DriverTMS,
	"transactiveMemory":     DriverTMS,
	"team_cognition":        DriverTeamCognition,
	"teamCognition":         DriverTeamCognition,
}

// NormalizeDriverKey resolves alternate key spellings to a canonical
// driver id. Unrecognized keys report ok=false.
func NormalizeDriverKey(key string) (Driver, bool) {
	d, ok := driverAliases[key]
	return d, ok
}

// NormalizeDriverScores converts loosely-keyed score maps to canonical
// driver keys, dropping unrecognized keys and filling missing drivers with
// the neutral default.
func NormalizeDriverScores(scores map[string]float64) map[Driver]float64 {
	normalized := make(map[Driver]float64, 7)
	for key, v := range scores {
		if d, ok := NormalizeDriverKey(key); ok {
			normalized[d] = v
		}
	}
	for _, d := range Drivers() {
		if _, ok := normalized[d]; !ok {
			normalized[d] = neutralScore
		}
	}
	return normalized
}
