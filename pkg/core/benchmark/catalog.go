// Package benchmark holds the static industry benchmark bands, per-ratio
// metadata and recommendation tables used to classify computed ratios.
// All tables are built once at package init and are read-only afterwards;
// lookups never fail, they resolve to explicit fallbacks.
package benchmark

import "strings"

// Band maps a qualitative tier name to its numeric threshold for one ratio
// in one industry. Higher/lower-is-better ratios use the tiers
// excellent/good/acceptable/poor; pe_ratio uses undervalued/fair/growth/
// expensive as ascending range boundaries.
type Band map[string]float64

// GeneralIndustry is the fallback band set used for any industry the
// catalog does not know about.
const GeneralIndustry = "general"

// Band tier keys.
const (
	TierExcellent  = "excellent"
	TierGood       = "good"
	TierAcceptable = "acceptable"
	TierPoor       = "poor"

	TierUndervalued = "undervalued"
	TierFair        = "fair"
	TierGrowth      = "growth"
	TierExpensive   = "expensive"
)

// catalog holds per-industry benchmark bands. Thresholds are simplified
// industry norms carried over from the analyst reference tables; they are
// deliberately static data, not tunable configuration.
var catalog = map[string]map[string]Band{
	"technology": {
		"current_ratio":  {TierExcellent: 2.5, TierGood: 1.8, TierAcceptable: 1.2, TierPoor: 1.0},
		"debt_to_equity": {TierExcellent: 0.3, TierGood: 0.5, TierAcceptable: 1.0, TierPoor: 2.0},
		"roe":            {TierExcellent: 0.25, TierGood: 0.18, TierAcceptable: 0.12, TierPoor: 0.08},
		"gross_margin":   {TierExcellent: 0.70, TierGood: 0.50, TierAcceptable: 0.35, TierPoor: 0.20},
		"pe_ratio":       {TierUndervalued: 15, TierFair: 25, TierGrowth: 35, TierExpensive: 50},
	},
	"retail": {
		"current_ratio":  {TierExcellent: 2.0, TierGood: 1.5, TierAcceptable: 1.0, TierPoor: 0.8},
		"debt_to_equity": {TierExcellent: 0.5, TierGood: 0.8, TierAcceptable: 1.5, TierPoor: 2.5},
		"roe":            {TierExcellent: 0.20, TierGood: 0.15, TierAcceptable: 0.10, TierPoor: 0.05},
		"gross_margin":   {TierExcellent: 0.40, TierGood: 0.30, TierAcceptable: 0.20, TierPoor: 0.10},
		"pe_ratio":       {TierUndervalued: 12, TierFair: 18, TierGrowth: 25, TierExpensive: 35},
	},
	"financial": {
		// Financials run structurally higher leverage; note the wider
		// debt_to_equity bands and the absence of a gross_margin band.
		"current_ratio":  {TierExcellent: 1.5, TierGood: 1.2, TierAcceptable: 1.0, TierPoor: 0.8},
		"debt_to_equity": {TierExcellent: 1.0, TierGood: 2.0, TierAcceptable: 4.0, TierPoor: 6.0},
		"roe":            {TierExcellent: 0.15, TierGood: 0.12, TierAcceptable: 0.08, TierPoor: 0.05},
		"pe_ratio":       {TierUndervalued: 10, TierFair: 15, TierGrowth: 20, TierExpensive: 30},
	},
	"manufacturing": {
		"current_ratio":  {TierExcellent: 2.2, TierGood: 1.7, TierAcceptable: 1.3, TierPoor: 1.0},
		"debt_to_equity": {TierExcellent: 0.4, TierGood: 0.7, TierAcceptable: 1.2, TierPoor: 2.0},
		"roe":            {TierExcellent: 0.18, TierGood: 0.14, TierAcceptable: 0.10, TierPoor: 0.06},
		"gross_margin":   {TierExcellent: 0.35, TierGood: 0.25, TierAcceptable: 0.18, TierPoor: 0.12},
		"pe_ratio":       {TierUndervalued: 14, TierFair: 20, TierGrowth: 28, TierExpensive: 40},
	},
	"healthcare": {
		"current_ratio":  {TierExcellent: 2.3, TierGood: 1.8, TierAcceptable: 1.4, TierPoor: 1.0},
		"debt_to_equity": {TierExcellent: 0.3, TierGood: 0.6, TierAcceptable: 1.0, TierPoor: 1.8},
		"roe":            {TierExcellent: 0.22, TierGood: 0.16, TierAcceptable: 0.11, TierPoor: 0.07},
		"gross_margin":   {TierExcellent: 0.65, TierGood: 0.45, TierAcceptable: 0.30, TierPoor: 0.20},
		"pe_ratio":       {TierUndervalued: 18, TierFair: 28, TierGrowth: 40, TierExpensive: 55},
	},
	GeneralIndustry: {
		"current_ratio":  {TierExcellent: 2.0, TierGood: 1.5, TierAcceptable: 1.0, TierPoor: 0.8},
		"debt_to_equity": {TierExcellent: 0.5, TierGood: 1.0, TierAcceptable: 1.5, TierPoor: 2.5},
		"roe":            {TierExcellent: 0.20, TierGood: 0.15, TierAcceptable: 0.10, TierPoor: 0.05},
		"gross_margin":   {TierExcellent: 0.40, TierGood: 0.30, TierAcceptable: 0.20, TierPoor: 0.10},
		"pe_ratio":       {TierUndervalued: 15, TierFair: 22, TierGrowth: 30, TierExpensive: 45},
	},
}

// Normalize lowercases an industry name so lookups are case-insensitive.
func Normalize(industry string) string {
	return strings.ToLower(strings.TrimSpace(industry))
}

// Known reports whether the catalog carries a dedicated band set for the
// industry (as opposed to serving the general fallback).
func Known(industry string) bool {
	_, ok := catalog[Normalize(industry)]
	return ok
}

// BandsFor returns the benchmark band set for an industry. Unknown industry
// names resolve to the general fallback set; the result is never nil and
// never empty. Callers must treat the returned maps as read-only.
func BandsFor(industry string) map[string]Band {
	if bands, ok := catalog[Normalize(industry)]; ok {
		return bands
	}
	return catalog[GeneralIndustry]
}
