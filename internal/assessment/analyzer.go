package assessment

// AnalysisInput is everything needed to run the full pipeline for one team.
type AnalysisInput struct {
	DriverScores DriverScores `json:"driver_scores"`
	TeamSize     int          `json:"team_size"`
	AvgSalary    float64      `json:"avg_salary"`
	Industry     string       `json:"industry"`
	TrainingType TrainingType `json:"training_type"`
	Revenue      float64      `json:"revenue,omitempty"`
}

// AnalysisResult bundles the outputs of every stage: readiness, the 4 C's,
// the dysfunction cost model, the priority matrix, and the scoped training
// projections.
type AnalysisResult struct {
	DriverScores     DriverScores               `json:"driver_scores"`
	ScoreBands       map[Driver]ScoreBand       `json:"score_bands"`
	Readiness        float64                    `json:"readiness"`
	FourCs           FourCsAnalysis             `json:"four_cs"`
	TCD              TCDResult                  `json:"tcd"`
	TCDDriverCosts   map[Driver]float64         `json:"tcd_driver_costs"`
	Matrix           PriorityMatrixResult       `json:"priority_matrix"`
	PriorityAreas    []PriorityArea             `json:"priority_areas"`
	RecommendedAreas []PriorityArea             `json:"recommended_areas"`
	DriverCosts      map[Driver]float64         `json:"driver_costs"`
	ROI              map[TrainingType]ROIResult `json:"roi"`
	Timeline         []TimelineWeek             `json:"timeline,omitempty"`
	Deliverables     []DeliverableSet           `json:"deliverables,omitempty"`
}

// displayNameScores rekeys driver scores by display name for the 4 C's
// analyzer.
func displayNameScores(scores DriverScores) map[string]float64 {
	m := make(map[string]float64, 7)
	for _, d := range Drivers() {
		m[d.DisplayName()] = scores.Get(d)
	}
	return m
}

// Analyze runs every stage of the pipeline over one set of driver scores.
// The stages are pure; the only error sources are the cost engine's input
// validations.
func Analyze(input AnalysisInput) (AnalysisResult, error) {
	scores := input.DriverScores

	tcd, err := CalculateDysfunctionCost(TCDInput{
		Payroll:      float64(input.TeamSize) * input.AvgSalary,
		TeamSize:     input.TeamSize,
		DriverScores: scores,
		Industry:     input.Industry,
		Revenue:      input.Revenue,
	})
	if err != nil {
		return AnalysisResult{}, err
	}

	readiness, err := CalculateReadiness(scores, DefaultReadinessWeights())
	if err != nil {
		return AnalysisResult{}, err
	}

	matrix, err := CalculatePriorityMatrix(scores.ToMap(), input.Industry)
	if err != nil {
		return AnalysisResult{}, err
	}

	bands := make(map[Driver]ScoreBand, 7)
	for _, d := range Drivers() {
		bands[d] = ClassifyScoreBand(scores.Get(d))
	}

	fourCs := Calculate4Cs(displayNameScores(scores))

	weights := CostAttributionWeights()
	areas := GetPriorityAreas(scores, weights)
	driverCosts := CalculateDriverCosts(scores, weights, input.TeamSize, input.AvgSalary)
	recommended := GetRecommendedAreas(input.TrainingType, areas)

	roi := make(map[TrainingType]ROIResult, 3)
	for _, tt := range []TrainingType{TrainingHalfDay, TrainingFullDay, TrainingMonthLong} {
		option := TrainingOptions[tt]
		roi[tt] = CalculateTrainingROI(option.Cost, areas, driverCosts, option.FocusAreas)
	}

	result := AnalysisResult{
		DriverScores:     scores,
		ScoreBands:       bands,
		Readiness:        readiness,
		FourCs:           fourCs,
		TCD:              tcd,
		TCDDriverCosts:   CalculateAllDriverCostsFromTCD(tcd.TCD),
		Matrix:           matrix,
		PriorityAreas:    areas,
		RecommendedAreas: recommended,
		DriverCosts:      driverCosts,
		ROI:              roi,
		Deliverables:     RecommendedTrainingDeliverables(input.TrainingType, recommended),
	}
	if input.TrainingType == TrainingMonthLong {
		result.Timeline = MonthLongTimeline(areas)
	}
	return result, nil
}
