// Package interpret classifies computed ratio values against the industry
// benchmark bands. One generic comparison routine, driven by the per-ratio
// polarity metadata, replaces per-ratio branch chains.
package interpret

import (
	"fmt"

	"ratio_analysis/pkg/core/benchmark"
)

// Interpretation is the qualitative reading of one ratio value. It is
// recreated fresh for every (ratio, value, industry) triple; nothing here is
// cached or shared.
type Interpretation struct {
	Value          float64        `json:"value"`
	Rating         string         `json:"rating"`
	Message        string         `json:"message"`
	Recommendation string         `json:"recommendation"`
	Benchmark      benchmark.Band `json:"benchmark_comparison"`
}

// Ratings for higher/lower-is-better ratios.
const (
	RatingExcellent  = "Excellent"
	RatingGood       = "Good"
	RatingAcceptable = "Acceptable"
	RatingPoor       = "Poor"
	RatingNA         = "N/A"
)

// Ratings for the ranged pe_ratio classification.
const (
	RatingUndervalued   = "Potentially Undervalued"
	RatingFairValue     = "Fair Value"
	RatingGrowthPremium = "Growth Premium"
	RatingExpensive     = "Expensive"
)

// Interpret classifies a single ratio value against the active industry's
// benchmark band. A ratio with no band entry yields an "N/A" interpretation
// with an empty recommendation. The function is deterministic and
// side-effect free; unknown industries resolve to the general fallback.
func Interpret(ratio string, value float64, industry string) Interpretation {
	band, ok := benchmark.BandsFor(industry)[ratio]
	if !ok {
		return Interpretation{Value: value, Rating: RatingNA}
	}

	out := Interpretation{
		Value:     value,
		Rating:    RatingNA,
		Benchmark: band,
	}

	ind := benchmark.Normalize(industry)
	if !benchmark.Known(ind) {
		ind = benchmark.GeneralIndustry
	}

	switch benchmark.Meta(ratio).Polarity {
	case benchmark.HigherIsBetter:
		switch {
		case value >= band[benchmark.TierExcellent]:
			out.Rating = RatingExcellent
			out.Message = "Performance significantly exceeds industry standards"
		case value >= band[benchmark.TierGood]:
			out.Rating = RatingGood
			out.Message = fmt.Sprintf("Above average performance for %s industry", ind)
		case value >= band[benchmark.TierAcceptable]:
			out.Rating = RatingAcceptable
			out.Message = "Meets industry standards"
		default:
			out.Rating = RatingPoor
			out.Message = "Below industry standards - attention needed"
		}

	case benchmark.LowerIsBetter:
		switch {
		case value <= band[benchmark.TierExcellent]:
			out.Rating = RatingExcellent
			out.Message = "Very conservative capital structure"
		case value <= band[benchmark.TierGood]:
			out.Rating = RatingGood
			out.Message = "Healthy leverage level"
		case value <= band[benchmark.TierAcceptable]:
			out.Rating = RatingAcceptable
			out.Message = "Moderate leverage"
		default:
			out.Rating = RatingPoor
			out.Message = "High leverage - potential risk"
		}

	case benchmark.RangedPERatio:
		// Negative or zero earnings make the multiple meaningless; the
		// rating stays N/A and the generic recommendation applies.
		if value > 0 {
			switch {
			case value < band[benchmark.TierUndervalued]:
				out.Rating = RatingUndervalued
				out.Message = fmt.Sprintf("Trading below typical %s multiples", ind)
			case value < band[benchmark.TierFair]:
				out.Rating = RatingFairValue
				out.Message = "In line with industry averages"
			case value < band[benchmark.TierGrowth]:
				out.Rating = RatingGrowthPremium
				out.Message = "Market pricing in growth expectations"
			default:
				out.Rating = RatingExpensive
				out.Message = "High valuation relative to industry"
			}
		}
	}

	out.Recommendation = benchmark.Recommendation(ratio, out.Rating)
	return out
}
