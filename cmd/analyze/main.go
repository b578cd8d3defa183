package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"ratio_analysis/pkg/core/analysis"
	"ratio_analysis/pkg/core/ingest"
)

func logStep(step string, details string) {
	fmt.Printf("\n[STEP] %s\n", step)
	fmt.Println("---------------------------------------------------------")
	fmt.Println(details)
	fmt.Println("---------------------------------------------------------")
}

func main() {
	industry := flag.String("industry", "general", "industry sector for benchmarking")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: analyze [-industry sector] <statements.json|statements.hjson>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	godotenv.Load()

	logStep("1. Load Statements", fmt.Sprintf("Reading statement record from %s...", path))
	data, err := ingest.LoadStatementFile(path)
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	logStep("2. Run Analysis", fmt.Sprintf("Industry context: %s", *industry))
	engine := analysis.NewEngine()
	result, err := engine.Analyze(data, *industry, nil)
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(result.Report)

	fmt.Printf("\nOverall Health: %s (%s)\n", result.OverallHealth.Status, result.OverallHealth.ScoreDisplay)
	fmt.Println(result.OverallHealth.Message)

	fmt.Println("\nKey Recommendations:")
	for i, rec := range result.Recommendations {
		fmt.Printf("  %d. %s\n", i+1, rec)
	}
}
