package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"facility_economics/pkg/core/costs"
	"facility_economics/pkg/core/econ"
	"facility_economics/pkg/core/portfolio"
	"facility_economics/pkg/core/rules"
	"facility_economics/pkg/core/scenario"
	"facility_economics/pkg/core/store"
	"facility_economics/pkg/core/tier"

	"github.com/joho/godotenv"
)

// Offline pipeline: load the record file, derive the portfolio summary,
// segment breakdowns, per-school economics, and a utilization sweep, and
// write the JSON artifacts to the output directory.
func main() {
	recordsPath := flag.String("records", "data/schools.hjson", "path to the school records file")
	preset := flag.String("preset", "baseline", "expense rule preset for the scenario sweep")
	outDir := flag.String("out", "out", "output directory for JSON artifacts")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	records, err := store.LoadRecordsFile(*recordsPath)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}
	log.Printf("Loaded %d school records from %s", len(records), *recordsPath)

	ruleEngine := rules.NewEngine()
	rs, err := ruleEngine.GetPreset(*preset)
	if err != nil {
		log.Fatalf("Bad preset: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	// 1. Portfolio summary + segments
	summary := struct {
		Summary portfolio.Summary          `json:"summary"`
		ByType  []portfolio.SegmentSummary `json:"by_type"`
		ByTier  []portfolio.SegmentSummary `json:"by_tier"`
	}{
		Summary: portfolio.Summarize(records),
		ByType:  portfolio.AggregateBy(records, portfolio.ByType),
		ByTier:  portfolio.AggregateBy(records, portfolio.ByTier),
	}
	writeArtifact(*outDir, "portfolio.json", summary)
	log.Printf("Portfolio: %d schools, %.0f students, utilization %.1f%%",
		summary.Summary.SchoolCount, summary.Summary.TotalEnrollment, summary.Summary.UtilizationPct)

	// 2. Per-school economics and break-even
	calc := econ.New(tier.Default())
	type schoolBundle struct {
		SchoolID      string                 `json:"school_id"`
		Categorized   costs.CategorizedCosts `json:"categorized"`
		Budget        costs.BudgetComparison `json:"budget"`
		UnitEconomics econ.Result            `json:"unit_economics"`
		Breakeven     econ.BreakevenResult   `json:"breakeven"`
	}
	bundles := make([]schoolBundle, 0, len(records))
	for i := range records {
		rec := &records[i]
		cat := costs.Categorize(rec)
		facilities := cat.OperatingTotal()
		capexAnnual := cat.AnnualDepreciation.Total
		bundles = append(bundles, schoolBundle{
			SchoolID:      rec.ID,
			Categorized:   cat,
			Budget:        costs.CompareBudget(rec),
			UnitEconomics: calc.Compute(rec.Tuition, rec.Students, facilities, capexAnnual),
			Breakeven: calc.FindBreakeven(
				rec.Tuition, rec.Capacity, facilities, capexAnnual, tier.MarginTarget(rec.Tuition)),
		})
	}
	writeArtifact(*outDir, "schools.json", bundles)

	// 3. Utilization sweep
	sweep := make([]scenario.Result, 0, 4)
	for _, pct := range []float64{70, 85, 100, 120} {
		sweep = append(sweep, scenario.Project(records, pct, rs))
	}
	writeArtifact(*outDir, "scenarios.json", sweep)

	log.Printf("Done. Artifacts written to %s", *outDir)
}

func writeArtifact(dir, name string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("Wrote %s", path)
}
