// Package health aggregates per-ratio interpretations into a single overall
// assessment and a prioritized recommendation list. It only consumes ratings
// already produced for the current period; it never recomputes ratios.
package health

import (
	"fmt"
	"sort"
	"strings"

	"ratio_analysis/pkg/core/interpret"
	"ratio_analysis/pkg/core/ratios"
	"ratio_analysis/pkg/core/trend"
)

// CurrentAnalysis maps category -> ratio -> interpretation for the current
// period, as produced by the analysis engine.
type CurrentAnalysis map[string]map[string]interpret.Interpretation

// Assessment is the overall financial health verdict. Score is the average
// of the per-rating integer scores on the fixed 1-4 scale (0 when no ratings
// exist).
type Assessment struct {
	Status       string  `json:"status"`
	Score        float64 `json:"score"`
	ScoreDisplay string  `json:"score_display"`
	Message      string  `json:"message"`
}

// MaxRecommendations caps the prioritized recommendation list.
const MaxRecommendations = 5

// ratingScores maps each qualitative rating to its score on the 1-4 scale.
// The pe_ratio tier names share the scale with the standard tiers. Ratings
// not in the table (N/A included) score a neutral 2.
var ratingScores = map[string]int{
	interpret.RatingExcellent:     4,
	interpret.RatingGood:          3,
	interpret.RatingAcceptable:    2,
	interpret.RatingPoor:          1,
	interpret.RatingFairValue:     3,
	interpret.RatingUndervalued:   3,
	interpret.RatingGrowthPremium: 2,
	interpret.RatingExpensive:     1,
}

// Assess flattens every rating in the current analysis, averages the mapped
// scores and buckets the result. An empty analysis yields score 0 and status
// Poor.
func Assess(current CurrentAnalysis) Assessment {
	var sum, count int
	for _, category := range current {
		for _, itp := range category {
			score, ok := ratingScores[itp.Rating]
			if !ok {
				score = 2
			}
			sum += score
			count++
		}
	}

	avg := 0.0
	if count > 0 {
		avg = float64(sum) / float64(count)
	}

	var status, message string
	switch {
	case avg >= 3.5:
		status = "Excellent"
		message = "Company shows strong financial health across most metrics"
	case avg >= 2.5:
		status = "Good"
		message = "Overall healthy financial position with some areas for improvement"
	case avg >= 1.5:
		status = "Fair"
		message = "Mixed financial indicators - attention needed in several areas"
	default:
		status = "Poor"
		message = "Significant financial challenges requiring immediate attention"
	}

	return Assessment{
		Status:       status,
		Score:        avg,
		ScoreDisplay: fmt.Sprintf("%.1f/4.0", avg),
		Message:      message,
	}
}

// Recommend builds the prioritized recommendation list: one entry per Poor
// rating (carrying that ratio's recommendation), then one per Deteriorating
// trend. When nothing qualifies, two generic positive-outlook entries are
// returned. The list is truncated to MaxRecommendations and ordered
// deterministically: categories in canonical order, ratio names sorted.
func Recommend(current CurrentAnalysis, trends map[string]trend.Result) []string {
	var recs []string

	for _, category := range ratios.Categories {
		byRatio := current[category]
		names := make([]string, 0, len(byRatio))
		for name := range byRatio {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			itp := byRatio[name]
			if itp.Rating == interpret.RatingPoor {
				recs = append(recs, fmt.Sprintf("Priority: Address %s - %s",
					humanize(name), itp.Recommendation))
			}
		}
	}

	trendNames := make([]string, 0, len(trends))
	for name := range trends {
		trendNames = append(trendNames, name)
	}
	sort.Strings(trendNames)
	for _, name := range trendNames {
		if trends[name].Trend == trend.Deteriorating {
			recs = append(recs, fmt.Sprintf("Monitor: %s showing negative trend", humanize(name)))
		}
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Continue current financial management practices",
			"Consider strategic growth opportunities")
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

func humanize(ratio string) string {
	return strings.ReplaceAll(ratio, "_", " ")
}
