package assessment

import "errors"

// ErrZeroWeights is returned when a readiness calculation is handed a
// weight set that sums to zero. Weight tables are validated at startup, so
// hitting this means a caller supplied a broken override.
var ErrZeroWeights = errors.New("readiness weights sum to zero")

// CalculateReadiness computes the 0-1 weighted effectiveness score:
//
//	readiness = sum(score_i x w_i) / sum(7 x w_i)
//
// The denominator is the maximum attainable weighted score, not the driver
// count, so readiness stays comparable across differently-weighted
// configurations. Scores are clamped to [1,7] first.
func CalculateReadiness(scores DriverScores, weights map[Driver]float64) (float64, error) {
	clamped := scores.clamped()

	num := 0.0
	den := 0.0
	for _, d := range Drivers() {
		w := weights[d]
		num += clamped.Get(d) * w
		den += 7 * w
	}
	if den == 0 {
		return 0, ErrZeroWeights
	}
	return num / den, nil
}

// DefaultReadinessWeights returns the team-impact weight set used for
// readiness when the caller has no override.
func DefaultReadinessWeights() map[Driver]float64 {
	w := make(map[Driver]float64, len(teamImpactWeights))
	for d, v := range teamImpactWeights {
		w[d] = v
	}
	return w
}
