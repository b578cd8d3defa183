// Package trend classifies the direction of a ratio across reporting
// periods. Direction labels respect ratio polarity: for lower-is-better
// ratios (debt_to_equity) a rising value is Deteriorating, not Improving.
package trend

import (
	"fmt"
	"math"

	"ratio_analysis/pkg/core/benchmark"
)

// Trend labels.
const (
	Stable           = "Stable"
	Improving        = "Improving"
	Deteriorating    = "Deteriorating"
	InsufficientData = "Insufficient data"
)

// Result describes the movement of one ratio between the first and last
// supplied period. An InsufficientData result carries only the label and
// message; no numeric fields are computed.
type Result struct {
	Ratio      string  `json:"ratio"`
	Trend      string  `json:"trend"`
	FirstValue float64 `json:"first_value"`
	LastValue  float64 `json:"last_value"`
	Change     float64 `json:"change"`
	PctChange  float64 `json:"pct_change"`
	Message    string  `json:"message"`
}

// Analyze classifies the trend of a ratio over ordered periods. Values and
// periods are index-aligned; only the first and last elements are read.
// Fewer than 2 values yields an InsufficientData result, not an error.
func Analyze(ratio string, values []float64, periods []string) Result {
	if len(values) < 2 {
		return Result{
			Ratio:   ratio,
			Trend:   InsufficientData,
			Message: "Need at least 2 periods for trend analysis",
		}
	}

	first := values[0]
	last := values[len(values)-1]
	change := last - first

	// Percent change is 0 when the first value is exactly 0; there is no
	// meaningful base to measure against.
	pctChange := 0.0
	if first != 0 {
		pctChange = change / math.Abs(first) * 100
	}

	label := classify(ratio, pctChange)

	direction := "decreased"
	if change > 0 {
		direction = "increased"
	}
	message := fmt.Sprintf("%s has %s by %.1f%% from %s to %s",
		ratio, direction, math.Abs(pctChange), periods[0], periods[len(periods)-1])

	return Result{
		Ratio:      ratio,
		Trend:      label,
		FirstValue: first,
		LastValue:  last,
		Change:     change,
		PctChange:  pctChange,
		Message:    message,
	}
}

// classify maps a percent change to a direction label. Moves under 5% in
// either direction are Stable. The Improving/Deteriorating mapping flips for
// ratios flagged InvertTrend in the metadata table - an explicit domain
// rule, currently debt_to_equity only.
func classify(ratio string, pctChange float64) string {
	if math.Abs(pctChange) < 5 {
		return Stable
	}

	rising := pctChange > 0
	if benchmark.Meta(ratio).InvertTrend {
		rising = !rising
	}
	if rising {
		return Improving
	}
	return Deteriorating
}
