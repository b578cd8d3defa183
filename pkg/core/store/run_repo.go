package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"ratio_analysis/pkg/core/analysis"
)

// RunRepo stores completed analysis runs, keyed by a generated run id, so a
// company's latest assessment can be re-served without recomputation.
type RunRepo struct{}

// NewRunRepo creates a new repository instance.
func NewRunRepo() *RunRepo {
	return &RunRepo{}
}

// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS analysis_runs (
//	  id UUID PRIMARY KEY,
//	  company TEXT NOT NULL,
//	  industry TEXT NOT NULL,
//	  run_json JSONB NOT NULL,
//	  created_at TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX IF NOT EXISTS analysis_runs_company_idx
//	  ON analysis_runs (company, created_at DESC);

// Save persists one completed analysis run and returns its generated id.
func (r *RunRepo) Save(ctx context.Context, company string, result *analysis.CompanyAnalysis) (uuid.UUID, error) {
	pool := GetPool()
	if pool == nil {
		return uuid.Nil, fmt.Errorf("database pool not initialized")
	}

	runJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis run: %w", err)
	}

	id := uuid.New()
	query := `
		INSERT INTO analysis_runs (id, company, industry, run_json, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := pool.Exec(ctx, query, id, company, result.Industry, runJSON, time.Now()); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis run: %w", err)
	}
	return id, nil
}

// LoadLatest retrieves the most recent analysis run for a company.
func (r *RunRepo) LoadLatest(ctx context.Context, company string) (*analysis.CompanyAnalysis, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `
		SELECT run_json FROM analysis_runs
		WHERE company = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var runJSON []byte
	if err := pool.QueryRow(ctx, query, company).Scan(&runJSON); err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no analysis run found for %s", company)
		}
		return nil, fmt.Errorf("failed to load analysis run: %w", err)
	}

	var result analysis.CompanyAnalysis
	if err := json.Unmarshal(runJSON, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis run: %w", err)
	}
	return &result, nil
}
