package analysis

import (
	"time"

	"ratio_analysis/pkg/core/health"
	"ratio_analysis/pkg/core/ratios"
	"ratio_analysis/pkg/core/trend"
)

// RatioReading is the basic-path view of one ratio: the raw value, its
// display rendering and a quick industry-agnostic one-liner.
type RatioReading struct {
	Value          float64 `json:"value"`
	Formatted      string  `json:"formatted"`
	Interpretation string  `json:"interpretation"`
}

// ComputeResult is the output of the basic compute path: ratios, per-ratio
// readings nested by category, and a narrative summary.
type ComputeResult struct {
	Ratios          ratios.RatioSet                    `json:"ratios"`
	Interpretations map[string]map[string]RatioReading `json:"interpretations"`
	Summary         string                             `json:"summary"`
}

// CompanyAnalysis is the output of the full pipeline: the compute result
// plus benchmark-classified interpretations, trends, overall health,
// prioritized recommendations and the rendered report.
type CompanyAnalysis struct {
	Industry   string    `json:"industry"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	Ratios          ratios.RatioSet                    `json:"ratios"`
	Interpretations map[string]map[string]RatioReading `json:"interpretations"`
	Summary         string                             `json:"summary"`

	CurrentAnalysis health.CurrentAnalysis  `json:"current_analysis"`
	TrendAnalysis   map[string]trend.Result `json:"trend_analysis"`
	OverallHealth   health.Assessment       `json:"overall_health"`
	Recommendations []string                `json:"recommendations"`
	Report          string                  `json:"report"`
}
