package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apianalysis "ratio_analysis/pkg/api/analysis"
	"ratio_analysis/pkg/core/store"
)

// ServerConfig is read from config/server.yaml; every field has a working
// default so the file is optional.
type ServerConfig struct {
	Port int `yaml:"port"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := ServerConfig{Port: 8080}
	if configData, err := os.ReadFile("config/server.yaml"); err == nil {
		if err := yaml.Unmarshal(configData, &cfg); err != nil {
			fmt.Printf("[WARNING] Failed to parse config/server.yaml: %v\n", err)
		}
	}

	// Persistence is optional: without DATABASE_URL the API still serves
	// analyses, it just skips run storage.
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		if err := store.InitDB(context.Background(), dbURL); err != nil {
			fmt.Printf("[WARNING] Database unavailable, runs will not be persisted: %v\n", err)
		} else {
			defer store.Close()
			fmt.Println("[STORE] Analysis run persistence enabled")
		}
	}

	// Analysis endpoints
	http.HandleFunc("/api/analysis/run", apianalysis.HandleRunAnalysis)
	http.HandleFunc("/api/analysis/report", apianalysis.HandleReportHTML)
	http.HandleFunc("/api/analysis/latest", apianalysis.HandleLatestRun)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - POST /api/analysis/run     (full pipeline: ratios + benchmarks + trends + health)")
	fmt.Println("  - POST /api/analysis/report  (HTML report)")
	fmt.Println("  - GET  /api/analysis/latest  (latest persisted run for ?company=)")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
