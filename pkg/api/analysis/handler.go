// Package analysis exposes the ratio analysis pipeline over HTTP.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	coreanalysis "ratio_analysis/pkg/core/analysis"
	"ratio_analysis/pkg/core/report"
	"ratio_analysis/pkg/core/store"
	"ratio_analysis/pkg/core/utils"
	"ratio_analysis/pkg/models"
)

var engine = coreanalysis.NewEngine()
var runRepo = store.NewRunRepo()

// AnalysisRequest is the body for both endpoints. HistoricalData is
// optional; Company is only used for persistence.
type AnalysisRequest struct {
	Company        string                `json:"company"`
	Industry       string                `json:"industry"`
	FinancialData  models.StatementData  `json:"financial_data"`
	HistoricalData models.HistoricalData `json:"historical_data"`
}

// AnalysisResponse wraps the pipeline output with the persistence id (empty
// when persistence is disabled or failed).
type AnalysisResponse struct {
	RunID    string                        `json:"run_id,omitempty"`
	Analysis *coreanalysis.CompanyAnalysis `json:"analysis"`
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// decodeRequest reads and decodes the request body, running one JSON repair
// pass when the payload is malformed (bodies are frequently hand-assembled).
func decodeRequest(r *http.Request) (*AnalysisRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var req AnalysisRequest
	if err := json.Unmarshal(body, &req); err == nil {
		return &req, nil
	}

	repaired, err := utils.RepairJSON(string(body))
	if err != nil {
		return nil, fmt.Errorf("request body is not valid JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &req); err != nil {
		return nil, fmt.Errorf("request body unusable after repair: %w", err)
	}
	fmt.Println("[ANALYSIS] Request body required JSON repair")
	return &req, nil
}

// HandleRunAnalysis runs the full pipeline and returns the structured
// result. When a database pool is initialized and a company name was
// supplied, the run is persisted; persistence failures degrade to a warning.
func HandleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	req, err := decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Printf("[ANALYSIS] Run request: company=%q industry=%q ratios with %d historical series\n",
		req.Company, req.Industry, len(req.HistoricalData))

	result, err := engine.Analyze(&req.FinancialData, req.Industry, req.HistoricalData)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := AnalysisResponse{Analysis: result}
	if store.GetPool() != nil && req.Company != "" {
		id, err := runRepo.Save(context.Background(), req.Company, result)
		if err != nil {
			fmt.Printf("[WARNING] Failed to persist analysis run: %v\n", err)
		} else {
			resp.RunID = id.String()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleReportHTML renders the markdown report variant to HTML.
func HandleReportHTML(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	req, err := decodeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := engine.Compute(&req.FinancialData)
	markdown := report.ComposeMarkdown(result.Ratios, req.Industry)
	if !utils.ValidateMarkdown(markdown) {
		http.Error(w, "report rendering produced invalid markdown", http.StatusInternalServerError)
		return
	}

	html, err := utils.RenderMarkdownHTML(markdown)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

// HandleLatestRun serves the most recent persisted run for a company.
func HandleLatestRun(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	company := r.URL.Query().Get("company")
	if company == "" {
		http.Error(w, "company query parameter is required", http.StatusBadRequest)
		return
	}
	if store.GetPool() == nil {
		http.Error(w, "persistence is not enabled", http.StatusServiceUnavailable)
		return
	}

	result, err := runRepo.LoadLatest(r.Context(), company)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
