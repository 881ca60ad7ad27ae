package assessment

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Enhanced Dysfunction Cost Formula v4.0. All monetary arithmetic runs on
// decimals and is rounded to 2 places only at output, so no floating error
// compounds across the chained multiplications.

// CostFormulaVersion tags TCD results with the formula revision that
// produced them.
const CostFormulaVersion = "4.0.0"

// Research-backed cost coefficients.
const (
	coefProductivity  = 0.25 // Gallup Q12
	coefRework        = 0.10 // Love et al. 2010
	coefTurnover      = 0.21 // Boushey & Glynn 2012, median across positions
	coefOpportunity   = 0.15
	coefOverhead      = 0.12
	coefDisengageMax  = 0.18 // Gallup actively disengaged ceiling
	overlapDiscount   = 0.88 // 12% haircut: components are not independent
	tcdPayrollCeiling = 3.5  // upper bound on TCD as a multiple of payroll
)

var (
	ErrTeamSizeTooSmall = errors.New("team size must be at least 1")
	ErrInvalidPayroll   = errors.New("payroll must be greater than 0")
)

// industryConfig carries the industry adjustment factor phi and the
// turnover rate multiplier rho.
type industryConfig struct {
	phi float64
	rho float64
}

// Cost engine industry table. Labels here are deliberately distinct from
// the priority matrix's industry set, and the fallback is Manufacturing,
// not Professional Services. Both defaults are depended on downstream.
var industryFactors = map[string]industryConfig{
	"Healthcare":            {phi: 1.30, rho: 1.25},
	"Financial Services":    {phi: 1.25, rho: 1.20},
	"Technology":            {phi: 1.20, rho: 1.15},
	"Professional Services": {phi: 1.15, rho: 1.10},
	"Manufacturing":         {phi: 1.00, rho: 1.00},
	"Retail":                {phi: 0.90, rho: 0.95},
	"Government":            {phi: 0.85, rho: 0.90},
}

func industryFor(name string) industryConfig {
	if cfg, ok := industryFactors[name]; ok {
		return cfg
	}
	return industryFactors["Manufacturing"]
}

// teamSizeFactor penalizes understaffing (N < 5) and overstaffing (N > 12).
func teamSizeFactor(n int) float64 {
	switch {
	case n < 5:
		return 1.2
	case n <= 12:
		return 1.0
	default:
		return 1.0 + 0.02*float64(n-12)
	}
}

// engagementCoefficient is the sigmoid disengagement cost factor:
// E_coef(E) = 0.18 / (1 + e^(2(E-4))). Max 0.18 at low engagement,
// decaying toward 0 as engagement rises.
func engagementCoefficient(e float64) float64 {
	return coefDisengageMax / (1 + math.Exp(2*(e-4)))
}

func engagementCategory(e float64) EngagementCategory {
	switch {
	case e >= 5.5:
		return Engaged
	case e >= 3.5:
		return NotEngaged
	default:
		return ActivelyDisengaged
	}
}

// anomalyScore sums the positive excesses over tolerance for three
// correlated driver pairs. High trust with low psychological safety (and
// the analogous pairs) is implausible and suggests gamed answers.
func anomalyScore(s DriverScores) float64 {
	total := 0.0
	pairs := []struct {
		a, b      float64
		tolerance float64
	}{
		{s.Trust, s.PsychSafety, 1.5},
		{s.CommQuality, s.Coordination, 2.0},
		{s.GoalClarity, s.TeamCognition, 2.5},
	}
	for _, p := range pairs {
		if diff := math.Abs(p.a - p.b); diff > p.tolerance {
			total += diff - p.tolerance
		}
	}
	return total
}

// gamingPenalty maps the anomaly score to a multiplier:
// G = min(1.5, 1 + 0.1 x (A - 1.5)) above the 1.5 tolerance, else 1.
func gamingPenalty(anomaly float64) float64 {
	if anomaly <= 1.5 {
		return 1.0
	}
	return math.Min(1.5, 1.0+0.1*(anomaly-1.5))
}

// fourCsMultiplier scales cost by the shortfall of the 4 C's average from
// a perfect 7: M_4C = 1 + 0.5 x (1 - avg/7). Missing 4 C's data is neutral.
func fourCsMultiplier(fc *FourCsScores) float64 {
	if fc == nil {
		return 1.0
	}
	avg := (fc.Criteria + fc.Commitment + fc.Collaboration + fc.Change) / 4
	return 1.0 + 0.5*(1.0-avg/7.0)
}

// businessValueRatio is revenue/payroll clamped to [1, 10]; no revenue
// data means 1.0.
func businessValueRatio(revenue, payroll float64) float64 {
	if revenue <= 0 {
		return 1.0
	}
	return clamp(revenue/payroll, 1.0, 10.0)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// CalculateDysfunctionCost runs the full v4.0 Total Cost of Dysfunction
// model. Team size < 1 and non-positive payroll are fatal input errors;
// out-of-range driver scores are silently clamped to [1, 7].
func CalculateDysfunctionCost(input TCDInput) (TCDResult, error) {
	if input.TeamSize < 1 {
		return TCDResult{}, ErrTeamSizeTooSmall
	}
	if input.Payroll <= 0 {
		return TCDResult{}, ErrInvalidPayroll
	}

	scores := input.DriverScores.clamped()
	p := decimal.NewFromFloat(input.Payroll)

	// Derived quantities.
	r := (scores.average() - 1) / 6
	e := (scores.Trust + scores.PsychSafety) / 2
	cfg := industryFor(input.Industry)
	bv := businessValueRatio(input.Revenue, input.Payroll)

	// C1: productivity loss.
	c1 := p.Mul(decimal.NewFromFloat(coefProductivity)).Mul(decimal.NewFromFloat(1 - r))

	// C2: rework.
	qAdj := ((7 - scores.CommQuality) + (7 - scores.TeamCognition)) / 12
	c2 := p.Mul(decimal.NewFromFloat(coefRework)).Mul(decimal.NewFromFloat(qAdj))

	// C3: turnover, scaled by the industry turnover multiplier rho.
	tAdj := (((7 - scores.Trust) + (7 - scores.PsychSafety)) / 12) * cfg.rho
	c3 := p.Mul(decimal.NewFromFloat(coefTurnover)).Mul(decimal.NewFromFloat(tAdj))

	// C4: opportunity, scaled by the business value ratio.
	oAdj := ((7 - scores.Coordination) + (7 - scores.GoalClarity)) / 12
	c4 := p.Mul(decimal.NewFromFloat(coefOpportunity)).Mul(decimal.NewFromFloat(oAdj)).Mul(decimal.NewFromFloat(bv))

	// C5: coordination overhead.
	hAdj := ((7 - scores.TMS) + (7 - scores.CommQuality)) / 12
	c5 := p.Mul(decimal.NewFromFloat(coefOverhead)).Mul(decimal.NewFromFloat(hAdj))

	// C6: disengagement, sigmoid-weighted on the engagement score.
	eAdj := (7 - e) / 6
	c6 := p.Mul(decimal.NewFromFloat(engagementCoefficient(e))).Mul(decimal.NewFromFloat(eAdj))

	subtotal := c1.Add(c2).Add(c3).Add(c4).Add(c5).Add(c6)
	discounted := subtotal.Mul(decimal.NewFromFloat(overlapDiscount))

	// Multipliers.
	m4c := fourCsMultiplier(input.FourCs)
	eta := teamSizeFactor(input.TeamSize)
	anomaly := anomalyScore(scores)
	g := gamingPenalty(anomaly)

	tcdRaw := discounted.
		Mul(decimal.NewFromFloat(m4c)).
		Mul(decimal.NewFromFloat(cfg.phi)).
		Mul(decimal.NewFromFloat(eta)).
		Mul(decimal.NewFromFloat(g))

	// Upper bound safeguard against pathological multiplier stacking.
	ceiling := p.Mul(decimal.NewFromFloat(tcdPayrollCeiling))
	tcd := decimal.Min(tcdRaw, ceiling)

	return TCDResult{
		TCD:    round2(tcd),
		TCDRaw: round2(tcdRaw),
		CostComponents: CostComponents{
			Productivity:       round2(c1),
			Rework:             round2(c2),
			Turnover:           round2(c3),
			Opportunity:        round2(c4),
			Overhead:           round2(c5),
			Disengagement:      round2(c6),
			Subtotal:           round2(subtotal),
			SubtotalDiscounted: round2(discounted),
		},
		Multipliers: Multipliers{
			FourCs: round(m4c, 4),
			Phi:    round(cfg.phi, 2),
			Eta:    round(eta, 2),
			G:      round(g, 4),
		},
		EngagementScore:    round(e, 2),
		EngagementCategory: engagementCategory(e),
		AnomalyScore:       round(anomaly, 2),
		// Static heuristic band, not recomputed from data.
		ConfidenceInterval: ConfidenceInterval{
			Lower: round2(tcd.Mul(decimal.NewFromFloat(0.75))),
			Upper: round2(tcd.Mul(decimal.NewFromFloat(1.30))),
		},
		Version: CostFormulaVersion,
	}, nil
}
