package assessment

import "sort"

// 4 C's framework scoring. Maps the 7 drivers onto the four
// change-management composites:
//
//	Criteria      <- Communication Quality
//	Commitment    <- Goal Clarity
//	Collaboration <- Coordination, Trust, Psychological Safety, Transactive Memory
//	Change        <- Goal Clarity, Coordination

// FourCsTarget is the 85% target every C is measured against.
const FourCsTarget = 0.85

// fourCsGapCutoff: a C below 60% is treated as having a gap worth
// addressing in the deliverable recommendations.
const fourCsGapCutoff = 0.6

// Calculate4Cs computes the 4 C's scores and gaps from driver scores keyed
// by display name ("Communication Quality", "Trust", ...). A missing or
// zero driver scores as 1 (worst case), not neutral; this asymmetric
// default is intentional and local to this analyzer.
func Calculate4Cs(driverScores map[string]float64) FourCsAnalysis {
	// normalize maps 1-7 onto 0-1.
	normalize := func(score float64) float64 { return (score - 1) / 6 }
	get := func(name string) float64 {
		if v, ok := driverScores[name]; ok && v != 0 {
			return v
		}
		return 1
	}

	criteria := normalize(get("Communication Quality"))
	commitment := normalize(get("Goal Clarity"))

	collaboration := (normalize(get("Coordination")) +
		normalize(get("Trust")) +
		normalize(get("Psychological Safety")) +
		normalize(get("Transactive Memory"))) / 4

	change := (normalize(get("Goal Clarity")) + normalize(get("Coordination"))) / 2

	scores := FourCsScores{
		Criteria:      criteria,
		Commitment:    commitment,
		Collaboration: collaboration,
		Change:        change,
	}
	return FourCsAnalysis{
		Scores: scores,
		Gaps: FourCsScores{
			Criteria:      FourCsTarget - criteria,
			Commitment:    FourCsTarget - commitment,
			Collaboration: FourCsTarget - collaboration,
			Change:        FourCsTarget - change,
		},
		Target: FourCsTarget,
	}
}

// FourCsPriority is one C ranked by gap size.
type FourCsPriority struct {
	Name  string  `json:"name"`
	Gap   float64 `json:"gap"`
	Score float64 `json:"score"`
}

// FourCsPriorities returns the 4 C's sorted by gap, largest first.
func FourCsPriorities(analysis FourCsAnalysis) []FourCsPriority {
	priorities := []FourCsPriority{
		{Name: "Criteria", Gap: analysis.Gaps.Criteria, Score: analysis.Scores.Criteria},
		{Name: "Commitment", Gap: analysis.Gaps.Commitment, Score: analysis.Scores.Commitment},
		{Name: "Collaboration", Gap: analysis.Gaps.Collaboration, Score: analysis.Scores.Collaboration},
		{Name: "Change", Gap: analysis.Gaps.Change, Score: analysis.Scores.Change},
	}
	sort.SliceStable(priorities, func(i, j int) bool {
		return priorities[i].Gap > priorities[j].Gap
	})
	return priorities
}

// AllDeliverables catalogs the program deliverables per C.
var AllDeliverables = map[string][]string{
	"Criteria": {
		"Scenario-based problem statements",
		"Research insights",
		"Current experience maps",
		"Positioning statements",
		"Unique value propositions",
	},
	"Commitment": {
		"Vision boards",
		"Release-level scope of outcomes",
		"Strategy definition",
		"Success metrics",
		"Team agreements",
	},
	"Collaboration": {
		"User stories",
		"Acceptance criteria",
		"Task flows",
		"Backlogs",
		"Prototypes and working code",
	},
	"Change": {
		"Testing plans",
		"Feedback loops",
		"Impact measurements",
		"Iteration strategies",
		"Continuous improvement cycles",
	},
}

// RecommendedDeliverables returns the deliverable sets for every C scoring
// below the 60% cutoff.
func RecommendedDeliverables(analysis FourCsAnalysis) map[string][]string {
	recommendations := make(map[string][]string)
	for _, p := range FourCsPriorities(analysis) {
		if p.Score < fourCsGapCutoff {
			recommendations[p.Name] = AllDeliverables[p.Name]
		}
	}
	return recommendations
}

// focusCountFor returns how many gapped C's a training type addresses.
// Month-long and not-sure cover everything with a gap.
func focusCountFor(trainingType TrainingType, gapped int) int {
	switch trainingType {
	case TrainingHalfDay:
		return 1
	case TrainingFullDay:
		return 2
	default:
		return gapped
	}
}

// RecommendedDeliverablesByTraining scopes the recommendations to the top
// priorities a training type can cover.
func RecommendedDeliverablesByTraining(analysis FourCsAnalysis, trainingType TrainingType) map[string][]string {
	gapped := make([]FourCsPriority, 0, 4)
	for _, p := range FourCsPriorities(analysis) {
		if p.Score < fourCsGapCutoff {
			gapped = append(gapped, p)
		}
	}

	count := focusCountFor(trainingType, len(gapped))
	if count > len(gapped) {
		count = len(gapped)
	}

	recommended := make(map[string][]string, count)
	for _, p := range gapped[:count] {
		recommended[p.Name] = AllDeliverables[p.Name]
	}
	return recommended
}

// OtherDeliverablesByTraining returns everything the scoped recommendation
// leaves out: lower-priority gapped C's plus C's already at or above the
// cutoff.
func OtherDeliverablesByTraining(analysis FourCsAnalysis, trainingType TrainingType) map[string][]string {
	gapped := make([]FourCsPriority, 0, 4)
	for _, p := range FourCsPriorities(analysis) {
		if p.Score < fourCsGapCutoff {
			gapped = append(gapped, p)
		}
	}

	count := focusCountFor(trainingType, len(gapped))
	if count > len(gapped) {
		count = len(gapped)
	}

	others := make(map[string][]string)
	for _, p := range gapped[count:] {
		others[p.Name] = AllDeliverables[p.Name]
	}

	scoresByName := map[string]float64{
		"Criteria":      analysis.Scores.Criteria,
		"Commitment":    analysis.Scores.Commitment,
		"Collaboration": analysis.Scores.Collaboration,
		"Change":        analysis.Scores.Change,
	}
	for _, c := range []string{"Criteria", "Commitment", "Collaboration", "Change"} {
		if scoresByName[c] >= fourCsGapCutoff {
			others[c] = AllDeliverables[c]
		}
	}
	return others
}
