// Package models defines the input data structures for the ratio analysis
// engine. The engine never mutates these; callers construct and own them.
package models

// FieldTable is one named statement table: a mapping from line-item name to
// its reported value. Absent fields read as 0, never an error.
type FieldTable map[string]float64

// Get returns the value for a field, or 0 when the field (or the whole
// table) is missing.
func (t FieldTable) Get(name string) float64 {
	if t == nil {
		return 0
	}
	return t[name]
}

// StatementData holds the four statement tables for a single analysis run.
// It mirrors the shape produced by upstream extraction: string-keyed numeric
// mappings, one per statement.
type StatementData struct {
	IncomeStatement FieldTable `json:"income_statement"`
	BalanceSheet    FieldTable `json:"balance_sheet"`
	CashFlow        FieldTable `json:"cash_flow"`
	MarketData      FieldTable `json:"market_data"`
}

// HistoricalSeries is an ordered series of values for one ratio across
// reporting periods. Values and Periods are index-aligned; ordering is the
// caller's responsibility.
type HistoricalSeries struct {
	Values  []float64 `json:"values"`
	Periods []string  `json:"periods"`
}

// HistoricalData maps ratio name to its historical series for trend analysis.
type HistoricalData map[string]HistoricalSeries
