package ratios

import (
	"fmt"
	"sort"
	"strings"

	"ratio_analysis/pkg/core/benchmark"
)

// FormatValue renders a value in one of the display formats: 2 decimals for
// plain ratios and currency, 1 for percentages and days, multiples with an
// "x" suffix. Formatting is presentation-only and never feeds back into
// computation.
func FormatValue(value float64, format string) string {
	switch format {
	case benchmark.FormatPercentage:
		return fmt.Sprintf("%.1f%%", value*100)
	case benchmark.FormatTimes:
		return fmt.Sprintf("%.2fx", value)
	case benchmark.FormatDays:
		return fmt.Sprintf("%.1f days", value)
	case benchmark.FormatCurrency:
		return fmt.Sprintf("$%.2f", value)
	default:
		return fmt.Sprintf("%.2f", value)
	}
}

// Format renders a ratio value using the display format from its metadata.
func Format(ratio string, value float64) string {
	return FormatValue(value, benchmark.Meta(ratio).Format)
}

// QuickInterpret gives a threshold one-liner for the handful of headline
// ratios. It is industry-agnostic; the interpret package does the full
// benchmark-based classification.
func QuickInterpret(ratio string, value float64) string {
	switch ratio {
	case "current_ratio":
		switch {
		case value > 2:
			return "Strong liquidity"
		case value > 1.5:
			return "Adequate liquidity"
		case value > 1:
			return "Potential liquidity concerns"
		default:
			return "Liquidity issues"
		}
	case "debt_to_equity":
		switch {
		case value < 0.5:
			return "Low leverage"
		case value < 1:
			return "Moderate leverage"
		case value < 2:
			return "High leverage"
		default:
			return "Very high leverage"
		}
	case "roe":
		switch {
		case value > 0.20:
			return "Excellent returns"
		case value > 0.15:
			return "Good returns"
		case value > 0.10:
			return "Average returns"
		case value > 0:
			return "Below average returns"
		default:
			return "Negative returns"
		}
	case "pe_ratio":
		switch {
		case value <= 0:
			return "N/A (negative earnings)"
		case value < 15:
			return "Potentially undervalued"
		case value < 25:
			return "Fair value"
		case value < 40:
			return "Growth premium"
		default:
			return "High valuation"
		}
	}
	return "No interpretation available"
}

// Summary produces a short narrative over the headline ratios. Sections with
// no usable value are skipped; an empty set yields an explicit notice.
func Summary(set RatioSet) string {
	var parts []string

	if roe, ok := set[CategoryProfitability]["roe"]; ok && roe > 0 {
		strength := "moderate"
		if roe > 0.15 {
			strength = "strong"
		}
		parts = append(parts, fmt.Sprintf("ROE of %.1f%% indicates %s shareholder returns.", roe*100, strength))
	}

	if cr, ok := set[CategoryLiquidity]["current_ratio"]; ok && cr > 0 {
		if cr > 1.5 {
			parts = append(parts, fmt.Sprintf("Current ratio of %.2f suggests good liquidity position.", cr))
		} else {
			parts = append(parts, fmt.Sprintf("Current ratio of %.2f suggests potential liquidity concerns.", cr))
		}
	}

	if de, ok := set[CategoryLeverage]["debt_to_equity"]; ok && de >= 0 {
		level := "high"
		switch {
		case de < 0.5:
			level = "conservative"
		case de < 1:
			level = "moderate"
		}
		parts = append(parts, fmt.Sprintf("Debt-to-equity of %.2f indicates %s leverage.", de, level))
	}

	if pe, ok := set[CategoryValuation]["pe_ratio"]; ok && pe > 0 {
		pricing := "a premium"
		switch {
		case pe < 15:
			pricing = "a discount"
		case pe < 25:
			pricing = "fair value"
		}
		parts = append(parts, fmt.Sprintf("P/E ratio of %.1f suggests the stock is trading at %s.", pe, pricing))
	}

	if len(parts) == 0 {
		return "Insufficient data for summary."
	}
	return strings.Join(parts, " ")
}

// SortedNames returns the ratio names of one category in sorted order, for
// deterministic iteration over the inner maps.
func SortedNames(category map[string]float64) []string {
	names := make([]string, 0, len(category))
	for name := range category {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
