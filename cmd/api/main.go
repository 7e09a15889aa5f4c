package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	apiportfolio "facility_economics/pkg/api/portfolio"
	"facility_economics/pkg/core/rules"
	"facility_economics/pkg/core/store"
	"facility_economics/pkg/core/tier"
	"facility_economics/pkg/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

func main() {
	// Load environment variables
	godotenv.Load()

	ctx := context.Background()

	// Records: DB when configured, HJSON file otherwise
	var records []models.SchoolRecord
	var err error
	if dbErr := store.InitDB(ctx); dbErr == nil {
		fmt.Println("[STORE] Database configured, loading records from Postgres")
		records, err = store.NewSchoolRepo().LoadAll(ctx)
	} else {
		path := os.Getenv("SCHOOL_RECORDS_FILE")
		if path == "" {
			path = "data/schools.hjson"
		}
		fmt.Printf("[STORE] No database (%v), loading records from %s\n", dbErr, path)
		records, err = store.LoadRecordsFile(path)
	}
	if err != nil {
		fmt.Printf("[FATAL] Failed to load school records: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[STORE] Loaded %d school records\n", len(records))

	// Expense rule presets: built-ins plus optional operator file
	ruleEngine := rules.NewEngine()
	if err := ruleEngine.LoadFile("config/expense_rules.yaml"); err != nil {
		fmt.Printf("[WARNING] Preset file not loaded: %v\n", err)
		fmt.Println("  Falling back to built-in presets")
	}
	fmt.Printf("[RULES] Presets available: %v\n", ruleEngine.Names())

	// Tier table: defaults plus optional salary overrides
	tiers := tier.Default()
	if data, err := os.ReadFile("config/salaries.yaml"); err == nil {
		var overrides map[models.TuitionTier]tier.SalarySchedule
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			fmt.Printf("[WARNING] Salary config ignored: %v\n", err)
		} else {
			tiers.Merge(overrides)
			fmt.Printf("[TIER] Applied salary overrides for %d tiers\n", len(overrides))
		}
	}

	snapshots := store.NewScenarioCache(store.GetPool(), "")

	apiportfolio.InitHandler(records, ruleEngine, tiers, snapshots)
	http.HandleFunc("/api/portfolio/summary", apiportfolio.HandlePortfolioSummary)
	http.HandleFunc("/api/school/economics", apiportfolio.HandleSchoolEconomics)
	http.HandleFunc("/api/scenario", apiportfolio.HandleScenario)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST /api/portfolio/summary")
	fmt.Println("  - POST /api/school/economics")
	fmt.Println("  - POST /api/scenario")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
