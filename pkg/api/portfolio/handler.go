// Package portfolio exposes the engine's derived records over HTTP.
// Handlers serialize typed results as-is; display formatting, sorting,
// and filter state belong to the consumer.
package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"facility_economics/pkg/core/costs"
	"facility_economics/pkg/core/econ"
	"facility_economics/pkg/core/portfolio"
	"facility_economics/pkg/core/rules"
	"facility_economics/pkg/core/scenario"
	"facility_economics/pkg/core/store"
	"facility_economics/pkg/core/tier"
	"facility_economics/pkg/models"
)

var (
	records    []models.SchoolRecord
	ruleEngine *rules.Engine
	calculator *econ.Calculator
	snapshots  *store.ScenarioCache
)

// InitHandler wires the handler package. Records are read-only after
// this call; every request recomputes derived data from them.
func InitHandler(recs []models.SchoolRecord, re *rules.Engine, tiers *tier.Table, cache *store.ScenarioCache) {
	records = recs
	ruleEngine = re
	calculator = econ.New(tiers)
	snapshots = cache
}

type SummaryRequest struct {
	Type string `json:"type"` // optional school-type filter
	Tier string `json:"tier"` // optional tuition-tier filter
}

type SummaryResponse struct {
	Summary portfolio.Summary          `json:"summary"`
	ByType  []portfolio.SegmentSummary `json:"by_type"`
	ByTier  []portfolio.SegmentSummary `json:"by_tier"`
}

// HandlePortfolioSummary returns the portfolio summary plus both segment
// breakdowns for the (optionally filtered) school set.
func HandlePortfolioSummary(w http.ResponseWriter, r *http.Request) {
	if !preamble(w, r) {
		return
	}

	var req SummaryRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req) // empty body means no filter
	}

	filtered := filterRecords(req.Type, req.Tier)
	fmt.Printf("[PORTFOLIO] Summary request: type=%q tier=%q -> %d schools\n", req.Type, req.Tier, len(filtered))

	resp := SummaryResponse{
		Summary: portfolio.Summarize(filtered),
		ByType:  portfolio.AggregateBy(filtered, portfolio.ByType),
		ByTier:  portfolio.AggregateBy(filtered, portfolio.ByTier),
	}
	writeJSON(w, resp)
}

type SchoolEconomicsRequest struct {
	SchoolID string `json:"school_id"`
}

type SchoolEconomicsResponse struct {
	Record        *models.SchoolRecord   `json:"record"`
	Categorized   costs.CategorizedCosts `json:"categorized"`
	Budget        costs.BudgetComparison `json:"budget"`
	UnitEconomics econ.Result            `json:"unit_economics"`
	Breakeven     econ.BreakevenResult   `json:"breakeven"`
}

// HandleSchoolEconomics returns the full derived bundle for one school.
func HandleSchoolEconomics(w http.ResponseWriter, r *http.Request) {
	if !preamble(w, r) {
		return
	}

	var req SchoolEconomicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec := findRecord(req.SchoolID)
	if rec == nil {
		http.Error(w, fmt.Sprintf("school not found: %s", req.SchoolID), http.StatusNotFound)
		return
	}
	fmt.Printf("[ECON] Computing economics for %s (%s)\n", rec.ID, rec.Name)

	cat := costs.Categorize(rec)
	capexAnnual := cat.AnnualDepreciation.Total
	facilities := cat.OperatingTotal()

	resp := SchoolEconomicsResponse{
		Record:        rec,
		Categorized:   cat,
		Budget:        costs.CompareBudget(rec),
		UnitEconomics: calculator.Compute(rec.Tuition, rec.Students, facilities, capexAnnual),
		Breakeven: calculator.FindBreakeven(
			rec.Tuition, rec.Capacity, facilities, capexAnnual, tier.MarginTarget(rec.Tuition)),
	}
	writeJSON(w, resp)
}

type ScenarioRequest struct {
	TargetUtilizationPct float64 `json:"target_utilization_pct"`
	Preset               string  `json:"preset"`
}

// HandleScenario projects the whole portfolio at the requested
// utilization and persists the snapshot when a cache is configured.
func HandleScenario(w http.ResponseWriter, r *http.Request) {
	if !preamble(w, r) {
		return
	}

	var req ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Preset == "" {
		req.Preset = "baseline"
	}

	rs, err := ruleEngine.GetPreset(req.Preset)
	if err != nil {
		if errors.Is(err, rules.ErrUnknownPreset) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fmt.Printf("[SCENARIO] Projecting %d schools at %.1f%% utilization (preset %s)\n",
		len(records), req.TargetUtilizationPct, rs.Name)
	res := scenario.Project(records, req.TargetUtilizationPct, rs)

	if snapshots != nil {
		if err := snapshots.Save(r.Context(), &res); err != nil {
			fmt.Printf("[WARNING] Failed to persist scenario snapshot: %v\n", err)
		}
	}
	writeJSON(w, res)
}

// preamble applies the CORS headers and short-circuits OPTIONS.
func preamble(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func filterRecords(schoolType, tierTag string) []models.SchoolRecord {
	if schoolType == "" && tierTag == "" {
		return records
	}
	out := make([]models.SchoolRecord, 0, len(records))
	for _, rec := range records {
		if schoolType != "" && string(rec.Type) != schoolType {
			continue
		}
		if tierTag != "" && string(rec.Tier) != tierTag {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func findRecord(id string) *models.SchoolRecord {
	for i := range records {
		if records[i].ID == id {
			return &records[i]
		}
	}
	return nil
}
