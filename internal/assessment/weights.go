package assessment

import (
	"fmt"
	"math"
)

// Cost-attribution weights: the share of the Total Cost of Dysfunction
// attributed to each driver. Normalized from meta-analysis correlation
// coefficients:
//
//   - Trust (18%): Costa & Anderson (2011), r=0.33
//   - Psychological Safety (17%): Frazier et al. (2017), r=0.27
//   - Communication Quality (15%): Marlow et al. (2018), r=0.31
//   - Goal Clarity (14%): Mathieu et al. (2008), r=0.28
//   - Coordination (13%): LePine et al. (2008), r=0.29
//   - Transactive Memory (12%): DeChurch & Mesmer-Magnus (2010), r=0.26
//   - Team Cognition (11%): DeChurch & Mesmer-Magnus (2010), r=0.35
//
// Weights sum to 1.00.
var costAttributionWeights = map[Driver]float64{
	DriverTrust:         0.18,
	DriverPsychSafety:   0.17,
	DriverCommQuality:   0.15,
	DriverGoalClarity:   0.14,
	DriverCoordination:  0.13,
	DriverTMS:           0.12,
	DriverTeamCognition: 0.11,
}

// Team Performance Impact weights, constant across industries, normalized
// from the same meta-analysis correlations (r=0.35 -> 1.00).
var teamImpactWeights = map[Driver]float64{
	DriverTeamCognition: 1.00,
	DriverTrust:         0.94,
	DriverCommQuality:   0.89,
	DriverCoordination:  0.83,
	DriverGoalClarity:   0.80,
	DriverPsychSafety:   0.77,
	DriverTMS:           0.74,
}

// Business Value weights per industry: base research weights with
// industry-specific modifiers.
var businessValueWeights = map[string]map[Driver]float64{
	"Software & Technology": {
		DriverTrust: 0.94, DriverPsychSafety: 0.89, DriverCommQuality: 1.00,
		DriverGoalClarity: 0.85, DriverCoordination: 0.95, DriverTMS: 0.79,
		DriverTeamCognition: 1.00,
	},
	"Healthcare & Medical": {
		DriverTrust: 1.00, DriverPsychSafety: 0.89, DriverCommQuality: 1.00,
		DriverGoalClarity: 0.85, DriverCoordination: 0.88, DriverTMS: 0.79,
		DriverTeamCognition: 1.00,
	},
	"Financial Services": {
		DriverTrust: 0.94, DriverPsychSafety: 0.82, DriverCommQuality: 1.00,
		DriverGoalClarity: 0.85, DriverCoordination: 0.83, DriverTMS: 0.74,
		DriverTeamCognition: 1.00,
	},
	"Government & Public Sector": {
		DriverTrust: 0.94, DriverPsychSafety: 0.77, DriverCommQuality: 0.94,
		DriverGoalClarity: 0.92, DriverCoordination: 0.83, DriverTMS: 0.74,
		DriverTeamCognition: 0.90,
	},
	"Hospitality & Service": {
		DriverTrust: 1.00, DriverPsychSafety: 0.82, DriverCommQuality: 0.94,
		DriverGoalClarity: 0.80, DriverCoordination: 0.83, DriverTMS: 0.69,
		DriverTeamCognition: 0.85,
	},
	"Manufacturing & Industrial": {
		DriverTrust: 0.94, DriverPsychSafety: 0.77, DriverCommQuality: 0.89,
		DriverGoalClarity: 0.85, DriverCoordination: 0.95, DriverTMS: 0.85,
		DriverTeamCognition: 0.90,
	},
	"Professional Services": {
		DriverTrust: 1.00, DriverPsychSafety: 0.82, DriverCommQuality: 1.00,
		DriverGoalClarity: 0.85, DriverCoordination: 0.88, DriverTMS: 0.85,
		DriverTeamCognition: 1.00,
	},
}

// DefaultMatrixIndustry is the fallback row of the business-value table.
// Note this differs from the cost engine's Manufacturing fallback; the two
// tables use different industry label sets and different defaults, and both
// are load-bearing for output numbers.
const DefaultMatrixIndustry = "Professional Services"

// MatrixIndustries returns the industry labels the business-value table
// knows about, in display order.
func MatrixIndustries() []string {
	return []string{
		"Software & Technology",
		"Healthcare & Medical",
		"Financial Services",
		"Government & Public Sector",
		"Hospitality & Service",
		"Manufacturing & Industrial",
		"Professional Services",
	}
}

// IsValidMatrixIndustry reports whether the label has a business-value row.
func IsValidMatrixIndustry(industry string) bool {
	_, ok := businessValueWeights[industry]
	return ok
}

// UnknownDriverError is returned by weight lookups for driver ids outside
// the fixed 7-driver set.
type UnknownDriverError struct {
	Driver Driver
}

func (e *UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown driver %q", string(e.Driver))
}

// CostAttributionWeight returns the TCD share for a driver.
func CostAttributionWeight(d Driver) (float64, error) {
	w, ok := costAttributionWeights[d]
	if !ok {
		return 0, &UnknownDriverError{Driver: d}
	}
	return w, nil
}

// TeamImpactWeight returns the industry-independent impact weight.
func TeamImpactWeight(d Driver) (float64, error) {
	w, ok := teamImpactWeights[d]
	if !ok {
		return 0, &UnknownDriverError{Driver: d}
	}
	return w, nil
}

// BusinessValueWeight returns the industry-specific value weight. Unknown
// industries fall back to the Professional Services row.
func BusinessValueWeight(industry string, d Driver) (float64, error) {
	row, ok := businessValueWeights[industry]
	if !ok {
		row = businessValueWeights[DefaultMatrixIndustry]
	}
	w, ok := row[d]
	if !ok {
		return 0, &UnknownDriverError{Driver: d}
	}
	return w, nil
}

// CostAttributionWeights returns a copy of the cost-attribution table for
// callers that pass weight sets explicitly (the training cost formulas).
func CostAttributionWeights() map[Driver]float64 {
	w := make(map[Driver]float64, len(costAttributionWeights))
	for d, v := range costAttributionWeights {
		w[d] = v
	}
	return w
}

// ValidateWeights asserts the cost-attribution weights sum to 1.0 within
// +-0.001. It runs once at process start; a violation is a configuration
// defect and aborts startup.
func ValidateWeights() error {
	sum := 0.0
	for _, w := range costAttributionWeights {
		sum += w
	}
	if math.Abs(sum-1.0) >= 0.001 {
		return fmt.Errorf("cost attribution weights sum to %.4f, want 1.0", sum)
	}
	return nil
}

// CalculateDriverCostFromTCD splits a TCD across one driver:
// cost = TCD x weight. Unknown drivers contribute 0 rather than erroring;
// existing callers depend on this lenient lookup.
func CalculateDriverCostFromTCD(tcd float64, d Driver) float64 {
	return tcd * costAttributionWeights[d]
}

// CalculateAllDriverCostsFromTCD attributes a TCD across all 7 drivers.
// The per-driver costs sum back to the TCD (weights sum to 1.0).
func CalculateAllDriverCostsFromTCD(tcd float64) map[Driver]float64 {
	costs := make(map[Driver]float64, 7)
	for d, w := range costAttributionWeights {
		costs[d] = tcd * w
	}
	return costs
}

// CalculateValueIfFixed projects the recoverable value of a driver's cost
// under the standard 85% improvement assumption.
func CalculateValueIfFixed(driverCost float64, improvementFactor float64) float64 {
	if improvementFactor <= 0 {
		improvementFactor = ImprovementFactor
	}
	return driverCost * improvementFactor
}

// DriverWeightPercent formats a driver's cost-attribution weight for
// display, e.g. "18%". Unknown drivers render "0%".
func DriverWeightPercent(d Driver) string {
	return fmt.Sprintf("%d%%", int(math.Round(costAttributionWeights[d]*100)))
}
