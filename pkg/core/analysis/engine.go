// Package analysis orchestrates the full ratio analysis pipeline: compute,
// interpret, trend, health aggregation and report rendering. All stages are
// pure functions over the immutable input; concurrent analyses need no
// coordination.
package analysis

import (
	"fmt"
	"time"

	"ratio_analysis/pkg/core/health"
	"ratio_analysis/pkg/core/interpret"
	"ratio_analysis/pkg/core/ratios"
	"ratio_analysis/pkg/core/report"
	"ratio_analysis/pkg/core/trend"
	"ratio_analysis/pkg/models"
)

// Engine runs ratio analyses. It is stateless; a single instance may serve
// any number of concurrent calls.
type Engine struct{}

// NewEngine creates a new instance of the engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compute runs the basic path: all category ratios plus display readings
// and the narrative summary. Missing input fields read as 0; degenerate
// arithmetic resolves to defined defaults, never an error.
func (e *Engine) Compute(data *models.StatementData) *ComputeResult {
	set := ratios.Compute(data)

	readings := make(map[string]map[string]RatioReading, len(set))
	for _, category := range ratios.Categories {
		byRatio := set[category]
		readings[category] = make(map[string]RatioReading, len(byRatio))
		for _, name := range ratios.SortedNames(byRatio) {
			value := byRatio[name]
			readings[category][name] = RatioReading{
				Value:          value,
				Formatted:      ratios.Format(name, value),
				Interpretation: ratios.QuickInterpret(name, value),
			}
		}
	}

	return &ComputeResult{
		Ratios:          set,
		Interpretations: readings,
		Summary:         ratios.Summary(set),
	}
}

// Analyze runs the full pipeline for one industry context, with optional
// historical series for trend analysis (historical may be nil). The only
// error case is a nil statement record; every degenerate data condition
// yields a defined value instead.
func (e *Engine) Analyze(data *models.StatementData, industry string, historical models.HistoricalData) (*CompanyAnalysis, error) {
	if data == nil {
		return nil, fmt.Errorf("statement data is nil")
	}

	basic := e.Compute(data)

	// Benchmark-classified interpretation of every computed ratio.
	current := make(health.CurrentAnalysis, len(basic.Ratios))
	for _, category := range ratios.Categories {
		byRatio := basic.Ratios[category]
		current[category] = make(map[string]interpret.Interpretation, len(byRatio))
		for _, name := range ratios.SortedNames(byRatio) {
			current[category][name] = interpret.Interpret(name, byRatio[name], industry)
		}
	}

	trends := make(map[string]trend.Result, len(historical))
	for name, series := range historical {
		trends[name] = trend.Analyze(name, series.Values, series.Periods)
	}

	return &CompanyAnalysis{
		Industry:        industry,
		AnalyzedAt:      time.Now(),
		Ratios:          basic.Ratios,
		Interpretations: basic.Interpretations,
		Summary:         basic.Summary,
		CurrentAnalysis: current,
		TrendAnalysis:   trends,
		OverallHealth:   health.Assess(current),
		Recommendations: health.Recommend(current, trends),
		Report:          report.Compose(basic.Ratios, industry),
	}, nil
}
