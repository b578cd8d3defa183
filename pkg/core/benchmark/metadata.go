package benchmark

// Polarity tags how a ratio's value relates to quality. It drives the one
// generic classification routine in the interpret package; adding a new
// benchmarked ratio is a table edit here, not a new code branch.
type Polarity int

const (
	// HigherIsBetter compares value >= threshold, tiers descending from
	// excellent (current_ratio, roe, gross_margin).
	HigherIsBetter Polarity = iota
	// LowerIsBetter compares value <= threshold (debt_to_equity).
	LowerIsBetter
	// RangedPERatio classifies into ascending valuation ranges
	// (undervalued < fair < growth < expensive) and only applies to
	// positive values.
	RangedPERatio
)

// Display formats for ratio values. Presentation only; formatted strings
// never feed back into computation.
const (
	FormatRatio      = "ratio"      // 1.85
	FormatPercentage = "percentage" // 18.50%
	FormatTimes      = "times"      // 12.40x
	FormatDays       = "days"       // 29.5 days
	FormatCurrency   = "currency"   // $4.20
)

// RatioMeta is the per-ratio metadata record.
type RatioMeta struct {
	Polarity Polarity
	Format   string
	// InvertTrend flags ratios where a rising value is structurally worse,
	// so the trend analyzer flips Improving/Deteriorating. This is a
	// deliberate domain rule for debt_to_equity, not an oversight.
	InvertTrend bool
}

var ratioMeta = map[string]RatioMeta{
	// Profitability
	"roe":              {Polarity: HigherIsBetter, Format: FormatPercentage},
	"roa":              {Polarity: HigherIsBetter, Format: FormatPercentage},
	"gross_margin":     {Polarity: HigherIsBetter, Format: FormatPercentage},
	"operating_margin": {Polarity: HigherIsBetter, Format: FormatPercentage},
	"net_margin":       {Polarity: HigherIsBetter, Format: FormatPercentage},

	// Liquidity
	"current_ratio": {Polarity: HigherIsBetter, Format: FormatRatio},
	"quick_ratio":   {Polarity: HigherIsBetter, Format: FormatRatio},
	"cash_ratio":    {Polarity: HigherIsBetter, Format: FormatRatio},

	// Leverage
	"debt_to_equity":        {Polarity: LowerIsBetter, Format: FormatRatio, InvertTrend: true},
	"interest_coverage":     {Polarity: HigherIsBetter, Format: FormatTimes},
	"debt_service_coverage": {Polarity: HigherIsBetter, Format: FormatTimes},

	// Efficiency
	"asset_turnover":         {Polarity: HigherIsBetter, Format: FormatTimes},
	"inventory_turnover":     {Polarity: HigherIsBetter, Format: FormatTimes},
	"receivables_turnover":   {Polarity: HigherIsBetter, Format: FormatTimes},
	"days_sales_outstanding": {Polarity: LowerIsBetter, Format: FormatDays},

	// Valuation
	"market_cap":           {Polarity: HigherIsBetter, Format: FormatCurrency},
	"eps":                  {Polarity: HigherIsBetter, Format: FormatCurrency},
	"pe_ratio":             {Polarity: RangedPERatio, Format: FormatTimes},
	"book_value_per_share": {Polarity: HigherIsBetter, Format: FormatCurrency},
	"pb_ratio":             {Polarity: RangedPERatio, Format: FormatTimes},
	"ps_ratio":             {Polarity: RangedPERatio, Format: FormatTimes},
	"enterprise_value":     {Polarity: HigherIsBetter, Format: FormatCurrency},
	"ev_to_ebitda":         {Polarity: RangedPERatio, Format: FormatTimes},
	"peg_ratio":            {Polarity: RangedPERatio, Format: FormatRatio},
}

// Meta returns the metadata record for a ratio. Unknown ratios get a
// zero-value record (HigherIsBetter, plain ratio format) so callers never
// branch on the miss.
func Meta(ratio string) RatioMeta {
	if m, ok := ratioMeta[ratio]; ok {
		return m
	}
	return RatioMeta{Polarity: HigherIsBetter, Format: FormatRatio}
}
