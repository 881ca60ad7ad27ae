package assessment

import "fmt"

// The 35-question survey is split into 7 contiguous blocks of 5, one block
// per driver, in survey order.
const (
	QuestionsPerDriver = 5
	TotalQuestions     = 35
)

// questionBlocks maps each driver to its first question id. Question ids
// are 1-based and contiguous: trust 1-5, psych_safety 6-10, tms 11-15,
// comm_quality 16-20, goal_clarity 21-25, coordination 26-30,
// team_cognition 31-35.
var questionBlocks = map[Driver]int{
	DriverTrust:         1,
	DriverPsychSafety:   6,
	DriverTMS:           11,
	DriverCommQuality:   16,
	DriverGoalClarity:   21,
	DriverCoordination:  26,
	DriverTeamCognition: 31,
}

// QuestionDriver returns the driver a question id belongs to.
func QuestionDriver(questionID int) (Driver, error) {
	if questionID < 1 || questionID > TotalQuestions {
		return "", fmt.Errorf("question id %d out of range 1..%d", questionID, TotalQuestions)
	}
	for _, d := range Drivers() {
		start := questionBlocks[d]
		if questionID >= start && questionID < start+QuestionsPerDriver {
			return d, nil
		}
	}
	// Unreachable: the blocks cover 1..35.
	return "", fmt.Errorf("question id %d not mapped", questionID)
}

// AggregateDriverScores reduces the 35 Likert answers (1-7, keyed by
// question id 1..35) to one score per driver as the arithmetic mean of the
// driver's 5 answers. The aggregator performs no imputation: a driver block
// with fewer than 5 answers, or any answer outside 1..7, is a caller error.
func AggregateDriverScores(responses map[int]int) (DriverScores, error) {
	var scores DriverScores
	for id, v := range responses {
		if id < 1 || id > TotalQuestions {
			return DriverScores{}, fmt.Errorf("response for unknown question id %d", id)
		}
		if v < 1 || v > 7 {
			return DriverScores{}, fmt.Errorf("response %d for question %d outside 1..7", v, id)
		}
	}

	byDriver := make(map[Driver]float64, 7)
	for _, d := range Drivers() {
		start := questionBlocks[d]
		sum := 0
		for q := start; q < start+QuestionsPerDriver; q++ {
			v, ok := responses[q]
			if !ok {
				return DriverScores{}, fmt.Errorf("driver %s missing response for question %d", d, q)
			}
			sum += v
		}
		byDriver[d] = float64(sum) / QuestionsPerDriver
	}

	scores = DriverScores{
		Trust:         byDriver[DriverTrust],
		PsychSafety:   byDriver[DriverPsychSafety],
		TMS:           byDriver[DriverTMS],
		CommQuality:   byDriver[DriverCommQuality],
		GoalClarity:   byDriver[DriverGoalClarity],
		Coordination:  byDriver[DriverCoordination],
		TeamCognition: byDriver[DriverTeamCognition],
	}
	return scores, nil
}
