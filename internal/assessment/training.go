package assessment

import (
	"fmt"
	"sort"
)

// ImprovementFactor is the assumed share of attributed dysfunction cost a
// training engagement recovers.
const ImprovementFactor = 0.85

// neverPaysBack is the payback sentinel (months) when projected savings are
// zero. The 3-month adoption buffer is added on top unconditionally, so
// callers see 1002.
const neverPaysBack = 999

// adoptionBufferMonths is the fixed implementation buffer added to every
// payback projection.
const adoptionBufferMonths = 3

// TrainingOptions is the static catalog of the four offered programs.
var TrainingOptions = map[TrainingType]TrainingOption{
	TrainingHalfDay: {
		Type:        TrainingHalfDay,
		Name:        "Half Day Workshop",
		Cost:        2000,
		Duration:    "4 hours",
		FocusAreas:  1,
		Description: "Intensive half-day session focused on your #1 most critical area for immediate impact",
	},
	TrainingFullDay: {
		Type:        TrainingFullDay,
		Name:        "Full Day Workshop",
		Cost:        3500,
		Duration:    "8 hours",
		FocusAreas:  2,
		Description: "Comprehensive full-day workshop addressing your top 2 critical areas with hands-on exercises",
	},
	TrainingMonthLong: {
		Type:        TrainingMonthLong,
		Name:        "Month-Long Engagement",
		Cost:        50000,
		Duration:    "4 weeks",
		FocusAreas:  7,
		Description: "Comprehensive month-long program covering all 7 drivers with ongoing support and implementation",
	},
	TrainingNotSure: {
		Type:        TrainingNotSure,
		Name:        "Compare All Options",
		Cost:        0,
		Duration:    "Variable",
		FocusAreas:  0,
		Description: "See detailed comparison of all training options to make an informed decision",
	},
}

var driverDescriptions = map[Driver]string{
	DriverTrust:         "The degree to which team members can rely on each other to follow through on commitments and believe others have good intentions.",
	DriverPsychSafety:   "The extent to which team members feel comfortable taking risks and speaking up without fear of embarrassment or punishment.",
	DriverTMS:           "The team's shared understanding of who knows what and where to find specific information or expertise.",
	DriverCommQuality:   "The clarity, timeliness, and effectiveness of information sharing within the team.",
	DriverGoalClarity:   "The degree to which team members understand objectives and how their work contributes to team success.",
	DriverCoordination:  "How smoothly work flows between team members and how well the team manages handoffs and dependencies.",
	DriverTeamCognition: "The team's ability to think and solve problems effectively as a collective unit.",
}

// GetPriorityAreas ranks the 7 drivers by remediation priority:
// (0.85 - score/7) x weight, descending. A missing weight defaults to
// 0.143 (roughly 1/7). Ties keep the canonical driver order.
func GetPriorityAreas(scores DriverScores, weights map[Driver]float64) []PriorityArea {
	areas := make([]PriorityArea, 0, 7)
	for _, d := range Drivers() {
		score := scores.Get(d)
		weight, ok := weights[d]
		if !ok {
			weight = 0.143
		}
		areas = append(areas, PriorityArea{
			ID:          d,
			Name:        d.DisplayName(),
			Score:       score,
			Weight:      weight,
			Gap:         FourCsTarget - score/7,
			Description: driverDescriptions[d],
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Gap*areas[i].Weight > areas[j].Gap*areas[j].Weight
	})
	for i := range areas {
		areas[i].Priority = i + 1
	}
	return areas
}

// CalculateDriverCosts attributes annual payroll waste to each driver:
// cost = (1 - score/7) x weight x payroll. A missing weight defaults to
// 1/7, a deliberate equal-split fallback local to this formula.
func CalculateDriverCosts(scores DriverScores, weights map[Driver]float64, teamSize int, avgSalary float64) map[Driver]float64 {
	totalPayroll := float64(teamSize) * avgSalary
	costs := make(map[Driver]float64, 7)
	for _, d := range Drivers() {
		weight, ok := weights[d]
		if !ok {
			weight = 1.0 / 7.0
		}
		costs[d] = (1 - scores.Get(d)/7) * weight * totalPayroll
	}
	return costs
}

// GetRecommendedAreas scopes the ranked priorities to what a training type
// covers. Not-sure returns the full ranked list for comparison.
func GetRecommendedAreas(trainingType TrainingType, priorityAreas []PriorityArea) []PriorityArea {
	option, ok := TrainingOptions[trainingType]
	if !ok || trainingType == TrainingNotSure {
		return priorityAreas
	}
	if option.FocusAreas > len(priorityAreas) {
		return priorityAreas
	}
	return priorityAreas[:option.FocusAreas]
}

// CalculateTrainingROI projects the return for fixing the top-N ranked
// drivers:
//
//	scopedCost = sum of the top-N drivers' attributed costs
//	savings    = scopedCost x 0.85
//	roi        = (savings - trainingCost) / trainingCost
//	payback    = trainingCost/savings x 12 + 3, or 999 + 3 when savings is 0
//
// The 3-month adoption buffer applies unconditionally, including the
// never-pays-back sentinel.
func CalculateTrainingROI(trainingCost float64, rankedAreas []PriorityArea, driverCosts map[Driver]float64, focusCount int) ROIResult {
	if focusCount > len(rankedAreas) {
		focusCount = len(rankedAreas)
	}

	scopedCost := 0.0
	addressed := make([]string, 0, focusCount)
	for _, area := range rankedAreas[:focusCount] {
		scopedCost += driverCosts[area.ID]
		addressed = append(addressed, area.Name)
	}

	savings := scopedCost * ImprovementFactor
	roi := (savings - trainingCost) / trainingCost

	payback := float64(neverPaysBack)
	if savings > 0 {
		payback = trainingCost / savings * 12
	}
	payback += adoptionBufferMonths

	return ROIResult{
		Cost:             trainingCost,
		Savings:          savings,
		ROI:              roi,
		PaybackMonths:    payback,
		AddressedDrivers: addressed,
	}
}

// MonthLongTimeline distributes the ranked drivers across the 4-week
// engagement, most critical first.
func MonthLongTimeline(priorityAreas []PriorityArea) []TimelineWeek {
	slice := func(lo, hi int) []PriorityArea {
		if lo > len(priorityAreas) {
			lo = len(priorityAreas)
		}
		if hi > len(priorityAreas) {
			hi = len(priorityAreas)
		}
		return priorityAreas[lo:hi]
	}
	return []TimelineWeek{
		{Week: 1, Areas: slice(0, 2), Focus: "Foundation - Address most critical gaps"},
		{Week: 2, Areas: slice(2, 4), Focus: "Building Momentum - Strengthen core capabilities"},
		{Week: 3, Areas: slice(4, 6), Focus: "Integration - Connect systems and processes"},
		{Week: 4, Areas: slice(6, 7), Focus: "Sustainability - Embed practices and measure progress"},
	}
}

type driverDeliverables struct {
	category     string
	deliverables []string
}

var deliverablesByDriver = map[Driver]driverDeliverables{
	DriverTrust: {
		category: "Collaboration",
		deliverables: []string{
			"Team Charter defining working agreements and commitments",
			"Trust-building exercises and vulnerability workshops",
			"Accountability framework and follow-through tracking",
		},
	},
	DriverPsychSafety: {
		category: "Collaboration",
		deliverables: []string{
			"Psychological safety assessment and action plan",
			"Speak-up culture guidelines and practices",
			"Feedback loops and learning-from-failure protocols",
		},
	},
	DriverTMS: {
		category: "Collaboration",
		deliverables: []string{
			"Skills matrix and expertise mapping",
			"Knowledge-sharing systems and documentation",
			"Cross-training plan and mentorship pairings",
		},
	},
	DriverCommQuality: {
		category: "Criteria",
		deliverables: []string{
			"Communication protocols and channel guidelines",
			"Meeting effectiveness standards and templates",
			"Information-sharing cadence and formats",
		},
	},
	DriverGoalClarity: {
		category: "Commitment & Change",
		deliverables: []string{
			"Vision board and strategic alignment workshop",
			"OKRs or goal-setting framework implementation",
			"Success metrics dashboard and tracking system",
		},
	},
	DriverCoordination: {
		category: "Change",
		deliverables: []string{
			"Workflow mapping and process documentation",
			"Coordination mechanisms and handoff protocols",
			"Task management system and visibility tools",
		},
	},
	DriverTeamCognition: {
		category: "Criteria",
		deliverables: []string{
			"Shared mental models workshop",
			"Problem-solving frameworks and decision-making protocols",
			"Team learning rituals and reflection practices",
		},
	},
}

// RecommendedTrainingDeliverables builds the deliverable sets for the areas
// a training type covers, with a per-area rationale. Not-sure has no single
// recommendation; the comparison view covers each option instead.
func RecommendedTrainingDeliverables(trainingType TrainingType, recommendedAreas []PriorityArea) []DeliverableSet {
	if trainingType == TrainingNotSure {
		return nil
	}

	results := make([]DeliverableSet, 0, len(recommendedAreas))
	for _, area := range recommendedAreas {
		mapping, ok := deliverablesByDriver[area.ID]
		if !ok {
			continue
		}
		severity := "moderate"
		if area.Gap > 0.3 {
			severity = "significant"
		}
		results = append(results, DeliverableSet{
			Category:     mapping.category,
			Deliverables: mapping.deliverables,
			Rationale: fmt.Sprintf(
				"%s scored %.1f/7, indicating a %s gap from optimal performance. Addressing this will improve team effectiveness in %s.",
				area.Name, area.Score, severity, mapping.category),
		})
	}
	return results
}
