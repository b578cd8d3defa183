package benchmark

// FallbackRecommendation is returned for any (ratio, rating) pair the
// recommendation table does not cover.
const FallbackRecommendation = "Continue monitoring this metric"

// recommendations maps ratio name -> rating -> actionable guidance.
var recommendations = map[string]map[string]string{
	"current_ratio": {
		"Poor":       "Consider improving working capital management, reducing short-term debt, or increasing liquid assets",
		"Acceptable": "Monitor liquidity closely and consider building additional cash reserves",
		"Good":       "Maintain current liquidity management practices",
		"Excellent":  "Strong liquidity position - consider productive use of excess cash",
	},
	"debt_to_equity": {
		"Poor":       "High leverage increases financial risk - consider debt reduction strategies",
		"Acceptable": "Monitor debt levels and ensure adequate interest coverage",
		"Good":       "Balanced capital structure - maintain current approach",
		"Excellent":  "Conservative leverage - may consider strategic use of debt for growth",
	},
	"roe": {
		"Poor":       "Focus on improving operational efficiency and profitability",
		"Acceptable": "Explore opportunities to enhance returns through operational improvements",
		"Good":       "Solid returns - continue current strategies",
		"Excellent":  "Outstanding performance - ensure sustainability of high returns",
	},
	"pe_ratio": {
		"Potentially Undervalued": "May present buying opportunity if fundamentals are solid",
		"Fair Value":              "Reasonably priced relative to industry peers",
		"Growth Premium":          "Ensure growth prospects justify premium valuation",
		"Expensive":               "Consider valuation risk - ensure fundamentals support high multiple",
	},
}

// Recommendation returns the guidance string for a (ratio, rating) pair,
// falling back to FallbackRecommendation when the pair is not in the table.
func Recommendation(ratio, rating string) string {
	if byRating, ok := recommendations[ratio]; ok {
		if rec, ok := byRating[rating]; ok {
			return rec
		}
	}
	return FallbackRecommendation
}
