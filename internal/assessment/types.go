package assessment

import "time"

// Driver identifies one of the 7 measured team-effectiveness dimensions.
// The set is fixed; it is never extended at runtime.
type Driver string

const (
	DriverTrust         Driver = "trust"
	DriverPsychSafety   Driver = "psych_safety"
	DriverTMS           Driver = "tms"
	DriverCommQuality   Driver = "comm_quality"
	DriverGoalClarity   Driver = "goal_clarity"
	DriverCoordination  Driver = "coordination"
	DriverTeamCognition Driver = "team_cognition"
)

// Drivers returns the 7 drivers in survey order (the order their question
// blocks appear in the assessment). Used wherever deterministic iteration
// or tie-breaking matters.
func Drivers() []Driver {
	return []Driver{
		DriverTrust,
		DriverPsychSafety,
		DriverTMS,
		DriverCommQuality,
		DriverGoalClarity,
		DriverCoordination,
		DriverTeamCognition,
	}
}

var driverNames = map[Driver]string{
	DriverTrust:         "Trust",
	DriverPsychSafety:   "Psychological Safety",
	DriverTMS:           "Transactive Memory",
	DriverCommQuality:   "Communication Quality",
	DriverGoalClarity:   "Goal Clarity",
	DriverCoordination:  "Coordination",
	DriverTeamCognition: "Team Cognition",
}

// DisplayName returns the human-readable name for a driver, or the raw id
// if the driver is unknown.
func (d Driver) DisplayName() string {
	if name, ok := driverNames[d]; ok {
		return name
	}
	return string(d)
}

// DriverScores holds one 1-7 Likert score per driver.
type DriverScores struct {
	Trust         float64 `json:"trust"`
	PsychSafety   float64 `json:"psych_safety"`
	TMS           float64 `json:"tms"`
	CommQuality   float64 `json:"comm_quality"`
	GoalClarity   float64 `json:"goal_clarity"`
	Coordination  float64 `json:"coordination"`
	TeamCognition float64 `json:"team_cognition"`
}

// Get returns the score for a driver. Unknown drivers return 0; callers
// that need stricter behavior check the driver id first.
func (s DriverScores) Get(d Driver) float64 {
	switch d {
	case DriverTrust:
		return s.Trust
	case DriverPsychSafety:
		return s.PsychSafety
	case DriverTMS:
		return s.TMS
	case DriverCommQuality:
		return s.CommQuality
	case DriverGoalClarity:
		return s.GoalClarity
	case DriverCoordination:
		return s.Coordination
	case DriverTeamCognition:
		return s.TeamCognition
	}
	return 0
}

// ToMap converts the scores to a map keyed by driver id.
func (s DriverScores) ToMap() map[Driver]float64 {
	m := make(map[Driver]float64, 7)
	for _, d := range Drivers() {
		m[d] = s.Get(d)
	}
	return m
}

// clamped returns a copy with every score forced into [1, 7].
func (s DriverScores) clamped() DriverScores {
	return DriverScores{
		Trust:         clamp(s.Trust, 1, 7),
		PsychSafety:   clamp(s.PsychSafety, 1, 7),
		TMS:           clamp(s.TMS, 1, 7),
		CommQuality:   clamp(s.CommQuality, 1, 7),
		GoalClarity:   clamp(s.GoalClarity, 1, 7),
		Coordination:  clamp(s.Coordination, 1, 7),
		TeamCognition: clamp(s.TeamCognition, 1, 7),
	}
}

func (s DriverScores) average() float64 {
	sum := 0.0
	for _, d := range Drivers() {
		sum += s.Get(d)
	}
	return sum / 7
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// EngagementCategory buckets the Trust/Psychological-Safety engagement
// average into the Gallup-style bands.
type EngagementCategory string

const (
	Engaged            EngagementCategory = "Engaged"
	NotEngaged         EngagementCategory = "Not Engaged"
	ActivelyDisengaged EngagementCategory = "Actively Disengaged"
)

// FourCsScores holds the four change-management composites on a 0-1 scale
// (or 1-7 when passed into the cost engine's multiplier, which averages
// them against a /7 denominator).
type FourCsScores struct {
	Criteria      float64 `json:"criteria"`
	Commitment    float64 `json:"commitment"`
	Collaboration float64 `json:"collaboration"`
	Change        float64 `json:"change"`
}

// FourCsAnalysis is the output of the 4 C's analyzer: scores, gaps against
// the 85% target, and the target itself.
type FourCsAnalysis struct {
	Scores FourCsScores `json:"scores"`
	Gaps   FourCsScores `json:"gaps"`
	Target float64      `json:"target"`
}

// TCDInput is the cost engine's request. Revenue and FourCs are optional;
// Revenue <= 0 means "not supplied".
type TCDInput struct {
	Payroll      float64       `json:"payroll"`
	TeamSize     int           `json:"team_size"`
	DriverScores DriverScores  `json:"driver_scores"`
	Industry     string        `json:"industry"`
	Revenue      float64       `json:"revenue,omitempty"`
	FourCs       *FourCsScores `json:"four_cs_scores,omitempty"`
}

// CostComponents is the six-part cost breakdown, before and after the
// overlap discount. JSON keys match the v4.0 wire format.
type CostComponents struct {
	Productivity       float64 `json:"C1_productivity"`
	Rework             float64 `json:"C2_rework"`
	Turnover           float64 `json:"C3_turnover"`
	Opportunity        float64 `json:"C4_opportunity"`
	Overhead           float64 `json:"C5_overhead"`
	Disengagement      float64 `json:"C6_disengagement"`
	Subtotal           float64 `json:"subtotal"`
	SubtotalDiscounted float64 `json:"subtotal_with_discount"`
}

// Multipliers applied on top of the discounted subtotal.
type Multipliers struct {
	FourCs float64 `json:"M_4C"`
	Phi    float64 `json:"phi"`
	Eta    float64 `json:"eta"`
	G      float64 `json:"G"`
}

// ConfidenceInterval is the static heuristic band around the final TCD.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// TCDResult is the complete output of the dysfunction cost engine.
type TCDResult struct {
	TCD                float64            `json:"TCD"`
	TCDRaw             float64            `json:"TCD_raw"`
	CostComponents     CostComponents     `json:"cost_components"`
	Multipliers        Multipliers        `json:"multipliers"`
	EngagementScore    float64            `json:"engagement_score"`
	EngagementCategory EngagementCategory `json:"engagement_category"`
	AnomalyScore       float64            `json:"anomaly_score"`
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`
	Version            string             `json:"version"`
}

// Quadrant is a priority bucket from the 2-axis matrix.
type Quadrant string

const (
	QuadrantCritical Quadrant = "CRITICAL"
	QuadrantHigh     Quadrant = "HIGH"
	QuadrantMedium   Quadrant = "MEDIUM"
	QuadrantLow      Quadrant = "LOW"
)

// DriverMatrixResult is one driver's position in the priority matrix.
type DriverMatrixResult struct {
	DriverID            Driver   `json:"driver_id"`
	DriverName          string   `json:"driver_name"`
	Score               float64  `json:"score"`
	Gap                 float64  `json:"gap"`
	TeamImpactWeight    float64  `json:"team_impact_weight"`
	TeamImpactScore     float64  `json:"team_impact_score"`
	BusinessValueWeight float64  `json:"business_value_weight"`
	BusinessValueScore  float64  `json:"business_value_score"`
	Quadrant            Quadrant `json:"quadrant"`
}

// PriorityMatrixResult is the full matrix for all 7 drivers. QuadrantCounts
// always sums to 7.
type PriorityMatrixResult struct {
	Industry       string               `json:"industry"`
	Drivers        []DriverMatrixResult `json:"drivers"`
	QuadrantCounts map[Quadrant]int     `json:"quadrant_counts"`
	CalculatedAt   time.Time            `json:"calculated_at"`
}

// ScoreBand is the raw-score categorization used alongside the matrix:
// score <= 2.5 critical, <= 4.0 monitor, <= 5.5 stable, else strength.
type ScoreBand string

const (
	BandCritical ScoreBand = "critical"
	BandMonitor  ScoreBand = "monitor"
	BandStable   ScoreBand = "stable"
	BandStrength ScoreBand = "strength"
)

// TrainingType identifies one of the four offered training programs.
type TrainingType string

const (
	TrainingHalfDay   TrainingType = "half-day"
	TrainingFullDay   TrainingType = "full-day"
	TrainingMonthLong TrainingType = "month-long"
	TrainingNotSure   TrainingType = "not-sure"
)

// TrainingOption is the static configuration for a training program.
type TrainingOption struct {
	Type        TrainingType `json:"type"`
	Name        string       `json:"name"`
	Cost        float64      `json:"cost"`
	Duration    string       `json:"duration"`
	FocusAreas  int          `json:"focus_areas"`
	Description string       `json:"description"`
}

// PriorityArea is a driver ranked by remediation priority.
type PriorityArea struct {
	ID          Driver  `json:"id"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
	Priority    int     `json:"priority"`
	Gap         float64 `json:"gap"`
	Description string  `json:"description"`
}

// ROIResult is the projected return for a scoped training investment.
type ROIResult struct {
	Cost             float64  `json:"cost"`
	Savings          float64  `json:"savings"`
	ROI              float64  `json:"roi"`
	PaybackMonths    float64  `json:"payback_months"`
	AddressedDrivers []string `json:"addressed_drivers"`
}

// TimelineWeek is one week of the month-long engagement plan.
type TimelineWeek struct {
	Week  int            `json:"week"`
	Areas []PriorityArea `json:"areas"`
	Focus string         `json:"focus"`
}

// DeliverableSet groups recommended deliverables with the rationale for
// recommending them.
type DeliverableSet struct {
	Category     string   `json:"category"`
	Deliverables []string `json:"deliverables"`
	Rationale    string   `json:"rationale"`
}
