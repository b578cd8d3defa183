// Package ratios computes the standard accounting and valuation ratios from
// raw statement data. Every division in this package is guarded: a zero
// denominator yields the configured default (0.0), never an error, Inf or
// NaN. The engine is a pure function of its input and keeps no state.
package ratios

import "ratio_analysis/pkg/models"

// Ratio categories, in canonical order. The slice drives every walk over a
// RatioSet so output ordering is deterministic despite map storage.
const (
	CategoryProfitability = "profitability"
	CategoryLiquidity     = "liquidity"
	CategoryLeverage      = "leverage"
	CategoryEfficiency    = "efficiency"
	CategoryValuation     = "valuation"
)

// Categories lists the fixed ratio categories in presentation order.
var Categories = []string{
	CategoryProfitability,
	CategoryLiquidity,
	CategoryLeverage,
	CategoryEfficiency,
	CategoryValuation,
}

// RatioSet maps category name -> ratio name -> computed value. A missing
// ratio key means "not applicable" (currently only peg_ratio), not zero.
type RatioSet map[string]map[string]float64

// SafeDivide divides two numbers, returning def when the denominator is
// exactly 0. This guard is the package-wide invariant; chained ratios that
// reuse a previously computed ratio as a denominator go through it too.
func SafeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 {
		return def
	}
	return numerator / denominator
}

func safeDiv(numerator, denominator float64) float64 {
	return SafeDivide(numerator, denominator, 0)
}

// Compute derives all category ratios from the statement tables. Missing
// input fields are treated as 0; the input is never mutated. Calling twice
// with identical input yields identical output.
func Compute(data *models.StatementData) RatioSet {
	if data == nil {
		data = &models.StatementData{}
	}
	return RatioSet{
		CategoryProfitability: profitability(data),
		CategoryLiquidity:     liquidity(data),
		CategoryLeverage:      leverage(data),
		CategoryEfficiency:    efficiency(data),
		CategoryValuation:     valuation(data),
	}
}

func profitability(data *models.StatementData) map[string]float64 {
	is, bs := data.IncomeStatement, data.BalanceSheet

	netIncome := is.Get("net_income")
	revenue := is.Get("revenue")
	grossProfit := revenue - is.Get("cost_of_goods_sold")

	return map[string]float64{
		"roe":              safeDiv(netIncome, bs.Get("shareholders_equity")),
		"roa":              safeDiv(netIncome, bs.Get("total_assets")),
		"gross_margin":     safeDiv(grossProfit, revenue),
		"operating_margin": safeDiv(is.Get("operating_income"), revenue),
		"net_margin":       safeDiv(netIncome, revenue),
	}
}

func liquidity(data *models.StatementData) map[string]float64 {
	bs := data.BalanceSheet

	currentAssets := bs.Get("current_assets")
	currentLiabilities := bs.Get("current_liabilities")
	quickAssets := currentAssets - bs.Get("inventory")

	return map[string]float64{
		"current_ratio": safeDiv(currentAssets, currentLiabilities),
		"quick_ratio":   safeDiv(quickAssets, currentLiabilities),
		"cash_ratio":    safeDiv(bs.Get("cash_and_equivalents"), currentLiabilities),
	}
}

func leverage(data *models.StatementData) map[string]float64 {
	is, bs := data.IncomeStatement, data.BalanceSheet

	interestExpense := is.Get("interest_expense")
	totalDebtService := interestExpense + bs.Get("current_portion_long_term_debt")

	return map[string]float64{
		"debt_to_equity":        safeDiv(bs.Get("total_debt"), bs.Get("shareholders_equity")),
		"interest_coverage":     safeDiv(is.Get("ebit"), interestExpense),
		"debt_service_coverage": safeDiv(is.Get("operating_income"), totalDebtService),
	}
}

func efficiency(data *models.StatementData) map[string]float64 {
	is, bs := data.IncomeStatement, data.BalanceSheet

	revenue := is.Get("revenue")
	receivablesTurnover := safeDiv(revenue, bs.Get("accounts_receivable"))

	return map[string]float64{
		"asset_turnover":       safeDiv(revenue, bs.Get("total_assets")),
		"inventory_turnover":   safeDiv(is.Get("cost_of_goods_sold"), bs.Get("inventory")),
		"receivables_turnover": receivablesTurnover,
		// Chained ratio: the turnover above is the denominator here and
		// may legitimately be 0.
		"days_sales_outstanding": safeDiv(365, receivablesTurnover),
	}
}

func valuation(data *models.StatementData) map[string]float64 {
	is, bs, md := data.IncomeStatement, data.BalanceSheet, data.MarketData

	sharePrice := md.Get("share_price")
	sharesOutstanding := md.Get("shares_outstanding")
	marketCap := sharePrice * sharesOutstanding

	eps := safeDiv(is.Get("net_income"), sharesOutstanding)
	peRatio := safeDiv(sharePrice, eps)
	bookValuePerShare := safeDiv(bs.Get("shareholders_equity"), sharesOutstanding)
	enterpriseValue := marketCap + bs.Get("total_debt") - bs.Get("cash_and_equivalents")

	out := map[string]float64{
		"market_cap":           marketCap,
		"eps":                  eps,
		"pe_ratio":             peRatio,
		"book_value_per_share": bookValuePerShare,
		"pb_ratio":             safeDiv(sharePrice, bookValuePerShare),
		"ps_ratio":             safeDiv(marketCap, is.Get("revenue")),
		"enterprise_value":     enterpriseValue,
		"ev_to_ebitda":         safeDiv(enterpriseValue, is.Get("ebitda")),
	}

	// peg_ratio is only meaningful with positive growth; the key is absent
	// otherwise. Downstream consumers rely on the absence check - a zero
	// substitute would read as "infinitely cheap".
	if growth := md.Get("earnings_growth_rate"); growth > 0 {
		out["peg_ratio"] = safeDiv(peRatio, growth*100)
	}

	return out
}
