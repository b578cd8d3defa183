// Package report renders a computed RatioSet into human-readable summaries.
// Presentation only: nothing here alters an upstream value.
package report

import (
	"fmt"
	"strings"

	"ratio_analysis/pkg/core/interpret"
	"ratio_analysis/pkg/core/ratios"
)

// Compose renders the classic plain-text analysis report: a title naming
// the industry context, then one block per category listing each ratio's
// value, rating, message and recommendation. Output is deterministic for a
// given input (fixed category order, sorted ratio names).
func Compose(set ratios.RatioSet, industry string) string {
	var lines []string

	lines = append(lines,
		fmt.Sprintf("Financial Analysis Report - %s Industry Context", titleCase(industry)),
		strings.Repeat("=", 70),
		"",
	)

	for _, category := range ratios.Categories {
		byRatio, ok := set[category]
		if !ok {
			continue
		}

		lines = append(lines, fmt.Sprintf("\n%s ANALYSIS", strings.ToUpper(category)))
		lines = append(lines, strings.Repeat("-", 40))

		for _, name := range ratios.SortedNames(byRatio) {
			value := byRatio[name]
			itp := interpret.Interpret(name, value, industry)
			lines = append(lines,
				fmt.Sprintf("\n%s:", titleCase(strings.ReplaceAll(name, "_", " "))),
				fmt.Sprintf("  Value: %.2f", value),
				fmt.Sprintf("  Rating: %s", itp.Rating),
				fmt.Sprintf("  Analysis: %s", itp.Message),
				fmt.Sprintf("  Action: %s", itp.Recommendation),
			)
		}
	}

	return strings.Join(lines, "\n")
}

// ComposeMarkdown renders the same content as Compose in Markdown, for the
// HTML report endpoint. Same determinism guarantees.
func ComposeMarkdown(set ratios.RatioSet, industry string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Financial Analysis Report\n\n")
	fmt.Fprintf(&b, "*%s industry context*\n", titleCase(industry))

	for _, category := range ratios.Categories {
		byRatio, ok := set[category]
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "\n## %s\n\n", titleCase(category))
		b.WriteString("| Ratio | Value | Rating | Analysis | Action |\n")
		b.WriteString("|---|---|---|---|---|\n")

		for _, name := range ratios.SortedNames(byRatio) {
			value := byRatio[name]
			itp := interpret.Interpret(name, value, industry)
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				titleCase(strings.ReplaceAll(name, "_", " ")),
				ratios.Format(name, value),
				itp.Rating,
				itp.Message,
				itp.Recommendation,
			)
		}
	}

	return b.String()
}

// titleCase uppercases the first letter of each space-separated word.
// strings.Title is deprecated and locale-aware casing is not needed for
// ratio names.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
