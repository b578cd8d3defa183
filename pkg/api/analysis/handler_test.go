package analysis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const requestBody = `{
	"company": "testco",
	"industry": "technology",
	"financial_data": {
		"income_statement": {"revenue": 1000000, "net_income": 150000},
		"balance_sheet": {"total_assets": 2000000, "shareholders_equity": 1500000}
	}
}`

func TestHandleRunAnalysis(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/analysis/run", strings.NewReader(requestBody))
	rec := httptest.NewRecorder()

	HandleRunAnalysis(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}

	var resp AnalysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Analysis == nil {
		t.Fatal("response has no analysis")
	}
	if resp.Analysis.Industry != "technology" {
		t.Errorf("industry = %q", resp.Analysis.Industry)
	}
	// net_income / shareholders_equity = 0.10
	roe := resp.Analysis.Ratios["profitability"]["roe"]
	if roe < 0.0999 || roe > 0.1001 {
		t.Errorf("roe = %v", roe)
	}
	// No database pool in tests, so no run id.
	if resp.RunID != "" {
		t.Errorf("unexpected run id %q", resp.RunID)
	}
}

func TestHandleRunAnalysisRepairsBody(t *testing.T) {
	malformed := `{'industry': 'retail', 'financial_data': {'income_statement': {'revenue': 100,},},}`
	req := httptest.NewRequest("POST", "/api/analysis/run", strings.NewReader(malformed))
	rec := httptest.NewRecorder()

	HandleRunAnalysis(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp AnalysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Analysis.Industry != "retail" {
		t.Errorf("industry = %q", resp.Analysis.Industry)
	}
}

func TestHandleRunAnalysisOptions(t *testing.T) {
	req := httptest.NewRequest("OPTIONS", "/api/analysis/run", nil)
	rec := httptest.NewRecorder()

	HandleRunAnalysis(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d", rec.Code)
	}
}

func TestHandleReportHTML(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/analysis/report", strings.NewReader(requestBody))
	rec := httptest.NewRecorder()

	HandleReportHTML(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h1") {
		t.Error("report HTML has no title heading")
	}
	if !strings.Contains(body, "<table") {
		t.Error("report HTML has no ratio tables")
	}
}

func TestHandleLatestRunRequiresCompany(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/analysis/latest", nil)
	rec := httptest.NewRecorder()

	HandleLatestRun(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHandleLatestRunWithoutStore(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/analysis/latest?company=testco", nil)
	rec := httptest.NewRecorder()

	HandleLatestRun(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", rec.Code)
	}
}
