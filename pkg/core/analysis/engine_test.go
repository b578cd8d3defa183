package analysis

import (
	"strings"
	"testing"

	"ratio_analysis/pkg/core/trend"
	"ratio_analysis/pkg/models"
)

func sampleData() *models.StatementData {
	return &models.StatementData{
		IncomeStatement: models.FieldTable{
			"revenue":            1000000,
			"cost_of_goods_sold": 600000,
			"operating_income":   200000,
			"ebit":               180000,
			"ebitda":             250000,
			"interest_expense":   20000,
			"net_income":         150000,
		},
		BalanceSheet: models.FieldTable{
			"total_assets":                   2000000,
			"current_assets":                 800000,
			"cash_and_equivalents":           200000,
			"accounts_receivable":            150000,
			"inventory":                      250000,
			"current_liabilities":            400000,
			"total_debt":                     500000,
			"current_portion_long_term_debt": 50000,
			"shareholders_equity":            1500000,
		},
		MarketData: models.FieldTable{
			"share_price":          50,
			"shares_outstanding":   100000,
			"earnings_growth_rate": 0.10,
		},
	}
}

func TestComputeBasicPath(t *testing.T) {
	result := NewEngine().Compute(sampleData())

	if result.Ratios["profitability"]["roe"] != 0.10 {
		t.Errorf("roe = %v", result.Ratios["profitability"]["roe"])
	}

	reading, ok := result.Interpretations["liquidity"]["current_ratio"]
	if !ok {
		t.Fatal("missing current_ratio reading")
	}
	if reading.Value != 2.0 || reading.Formatted != "2.00" || reading.Interpretation != "Adequate liquidity" {
		t.Errorf("reading = %+v", reading)
	}

	if !strings.Contains(result.Summary, "ROE of 10.0%") {
		t.Errorf("summary = %q", result.Summary)
	}
}

func TestAnalyzeFullPipeline(t *testing.T) {
	historical := models.HistoricalData{
		"debt_to_equity": {Values: []float64{0.5, 0.8}, Periods: []string{"Q1", "Q2"}},
		"roe":            {Values: []float64{0.10}, Periods: []string{"Q1"}},
	}

	result, err := NewEngine().Analyze(sampleData(), "technology", historical)
	if err != nil {
		t.Fatal(err)
	}

	if result.Industry != "technology" {
		t.Errorf("industry = %s", result.Industry)
	}

	// Current analysis: tech roe bands make 0.10 Poor (acceptable floor is
	// 0.12), so the recommendation list must lead with roe.
	roe := result.CurrentAnalysis["profitability"]["roe"]
	if roe.Rating != "Poor" {
		t.Errorf("tech roe=0.10 rating = %s, want Poor", roe.Rating)
	}
	foundROE := false
	for _, rec := range result.Recommendations {
		if strings.HasPrefix(rec, "Priority: Address roe") {
			foundROE = true
		}
	}
	if !foundROE {
		t.Errorf("recommendations missing roe priority: %v", result.Recommendations)
	}

	// Trends: the d/e rise is Deteriorating and must show as a monitor
	// entry; the single-point roe series is flagged, not computed.
	if result.TrendAnalysis["debt_to_equity"].Trend != trend.Deteriorating {
		t.Errorf("d/e trend = %s", result.TrendAnalysis["debt_to_equity"].Trend)
	}
	if result.TrendAnalysis["roe"].Trend != trend.InsufficientData {
		t.Errorf("roe trend = %s", result.TrendAnalysis["roe"].Trend)
	}
	foundMonitor := false
	for _, rec := range result.Recommendations {
		if rec == "Monitor: debt to equity showing negative trend" {
			foundMonitor = true
		}
	}
	if !foundMonitor {
		t.Errorf("recommendations missing d/e monitor: %v", result.Recommendations)
	}

	if result.OverallHealth.Status == "" || result.OverallHealth.ScoreDisplay == "" {
		t.Error("overall health not populated")
	}
	if !strings.Contains(result.Report, "Technology Industry Context") {
		t.Error("report missing industry title")
	}
}

func TestAnalyzeWithoutHistoricalData(t *testing.T) {
	result, err := NewEngine().Analyze(sampleData(), "general", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.TrendAnalysis) != 0 {
		t.Errorf("trend analysis = %v, want empty", result.TrendAnalysis)
	}
}

func TestAnalyzeNilData(t *testing.T) {
	if _, err := NewEngine().Analyze(nil, "general", nil); err == nil {
		t.Error("expected error for nil statement data")
	}
}

func TestAnalyzeEmptyDataDoesNotFail(t *testing.T) {
	// Empty tables: every ratio degenerates to 0, nothing errors, and the
	// assessment still produces a defined verdict.
	result, err := NewEngine().Analyze(&models.StatementData{}, "aerospace", nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.OverallHealth.Status == "" {
		t.Error("no health status for empty input")
	}
	if len(result.Recommendations) == 0 {
		t.Error("no recommendations for empty input")
	}
}

func TestPegRatioAbsenceFlowsThrough(t *testing.T) {
	data := sampleData()
	data.MarketData["earnings_growth_rate"] = 0

	result, err := NewEngine().Analyze(data, "general", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := result.Ratios["valuation"]["peg_ratio"]; ok {
		t.Error("peg_ratio present without positive growth")
	}
	if _, ok := result.CurrentAnalysis["valuation"]["peg_ratio"]; ok {
		t.Error("peg_ratio interpreted despite absence")
	}
	if _, ok := result.Interpretations["valuation"]["peg_ratio"]; ok {
		t.Error("peg_ratio reading despite absence")
	}
}
