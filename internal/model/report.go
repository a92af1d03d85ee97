package model

// CommendablePoint praises a metric that sits within or near its ideal range.
type CommendablePoint struct {
	MetricName      string `json:"metric_name"`
	Header          string `json:"header"`
	CurrentScenario string `json:"current_scenario"`
}

// ImprovementPoint flags a metric outside tolerance with a concrete action.
type ImprovementPoint struct {
	MetricName      string `json:"metric_name"`
	Header          string `json:"header"`
	CurrentScenario string `json:"current_scenario"`
	Actionable      string `json:"actionable"`
}

// ReviewPoint flags an unusually high metric for the user to double-check
// rather than prescribing a change.
type ReviewPoint struct {
	MetricName      string `json:"metric_name"`
	Header          string `json:"header"`
	CurrentScenario string `json:"current_scenario"`
}

// ScoringRow is one display row of the metrics scoring table.
type ScoringRow struct {
	Metric    string  `json:"metric"`
	Weight    int     `json:"weight_assigned"`
	Benchmark string  `json:"benchmark"`
	Value     string  `json:"user_value"`
	Verdict   string  `json:"verdict"`
	Points    float64 `json:"points_awarded"`
}

// ScoringTable summarises points awarded per assessable metric.
type ScoringTable struct {
	Rows        []ScoringRow `json:"rows"`
	TotalWeight int          `json:"total_weight"`
	TotalPoints float64      `json:"total_points"`
}

// Report is the assembled analysis output. The narrative sections
// (ProfileReview, Summary) come from the LLM layer; everything else is
// produced by the deterministic core.
type Report struct {
	ProfileReview string             `json:"profile_review,omitempty"`
	Commendable   []CommendablePoint `json:"commendable_areas"`
	Improvements  []ImprovementPoint `json:"areas_for_improvement"`
	ReviewAreas   []ReviewPoint      `json:"review_areas"`
	Summary       string             `json:"summary,omitempty"`
	Glossary      map[string]string  `json:"glossary,omitempty"`
	ScoringTable  ScoringTable       `json:"metrics_scoring_table"`

	Metrics *PersonalFinanceMetrics `json:"derived_metrics,omitempty"`
}
