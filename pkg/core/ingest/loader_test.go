package ingest

import (
	"path/filepath"
	"testing"
)

func TestParseStatementJSON(t *testing.T) {
	payload := []byte(`{"income_statement": {"revenue": 100}, "balance_sheet": {"total_assets": 400}}`)

	data, err := ParseStatementJSON(payload)
	if err != nil {
		t.Fatal(err)
	}
	if data.IncomeStatement.Get("revenue") != 100 {
		t.Errorf("revenue = %v", data.IncomeStatement.Get("revenue"))
	}
	// Absent tables and fields read as 0.
	if data.MarketData.Get("share_price") != 0 {
		t.Error("missing field did not default to 0")
	}
}

func TestParseStatementJSONRepairsMalformedPayload(t *testing.T) {
	// Single quotes and a trailing comma: typical of hand-edited payloads.
	payload := []byte(`{'income_statement': {'revenue': 250,},}`)

	data, err := ParseStatementJSON(payload)
	if err != nil {
		t.Fatal(err)
	}
	if data.IncomeStatement.Get("revenue") != 250 {
		t.Errorf("revenue = %v", data.IncomeStatement.Get("revenue"))
	}
}

func TestParseStatementHJSON(t *testing.T) {
	payload := []byte(`{
	  # quarterly snapshot
	  income_statement: {
	    revenue: 900
	  }
	}`)

	data, err := ParseStatementHJSON(payload)
	if err != nil {
		t.Fatal(err)
	}
	if data.IncomeStatement.Get("revenue") != 900 {
		t.Errorf("revenue = %v", data.IncomeStatement.Get("revenue"))
	}
}

func TestLoadStatementFile(t *testing.T) {
	jsonData, err := LoadStatementFile(filepath.Join("testdata", "statements.json"))
	if err != nil {
		t.Fatal(err)
	}
	if jsonData.BalanceSheet.Get("shareholders_equity") != 1500000 {
		t.Errorf("equity = %v", jsonData.BalanceSheet.Get("shareholders_equity"))
	}

	hjsonData, err := LoadStatementFile(filepath.Join("testdata", "statements.hjson"))
	if err != nil {
		t.Fatal(err)
	}
	if hjsonData.IncomeStatement.Get("net_income") != 40000 {
		t.Errorf("net income = %v", hjsonData.IncomeStatement.Get("net_income"))
	}

	if _, err := LoadStatementFile(filepath.Join("testdata", "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
