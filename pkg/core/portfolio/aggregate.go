// Package portfolio sums and weights per-school derived metrics into
// portfolio and segment summaries. The aggregator has no concept of a
// selected filter; callers pass the exact set of records to summarize.
package portfolio

import (
	"sort"

	"facility_economics/pkg/core/costs"
	"facility_economics/pkg/models"
)

// CategoryTotal is one row of the ranked category breakdown.
type CategoryTotal struct {
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
	PctOfTotal float64 `json:"pct_of_total"` // share of the annual grand total
}

// Summary is the aggregate view over a set of schools.
type Summary struct {
	SchoolCount     int     `json:"school_count"`
	TotalEnrollment float64 `json:"total_enrollment"`
	TotalCapacity   float64 `json:"total_capacity"`
	UtilizationPct  float64 `json:"utilization_pct"`

	Lease              float64 `json:"lease"`
	FixedFacilities    float64 `json:"fixed_facilities"`
	VariableFacilities float64 `json:"variable_facilities"`
	StudentServices    float64 `json:"student_services"`
	AnnualDepreciation float64 `json:"annual_depreciation"`
	CapexBuildout      float64 `json:"capex_buildout"` // one-time, outside GrandTotal
	GrandTotal         float64 `json:"grand_total"`

	RevenueCurrent    float64 `json:"revenue_current"`
	RevenueAtCapacity float64 `json:"revenue_at_capacity"`

	// Sunk = lease + annual depreciation (committed regardless of
	// enrollment); controllable = everything else in the grand total.
	SunkCosts         float64 `json:"sunk_costs"`
	ControllableCosts float64 `json:"controllable_costs"`

	CostPerStudent float64 `json:"cost_per_student"`

	RankedCategories []CategoryTotal `json:"ranked_categories"`
}

// SegmentSummary is a Summary for one group of a segmentation.
type SegmentSummary struct {
	Key string `json:"key"`
	Summary
}

// Summarize aggregates the given schools. Plain sums and weighted
// averages; no special-cased formulas.
func Summarize(schools []models.SchoolRecord) Summary {
	var s Summary
	s.SchoolCount = len(schools)

	for i := range schools {
		rec := &schools[i]
		cat := costs.Categorize(rec)

		s.TotalEnrollment += rec.Students
		s.TotalCapacity += rec.Capacity

		s.Lease += cat.Lease.Total
		s.FixedFacilities += cat.FixedFacilities.Total
		s.VariableFacilities += cat.VariableFacilities.Total
		s.StudentServices += cat.StudentServices.Total
		s.AnnualDepreciation += cat.AnnualDepreciation.Total
		s.CapexBuildout += cat.CapexBuildout.Total
		s.GrandTotal += cat.GrandTotal

		s.RevenueCurrent += rec.Tuition * rec.Students
		s.RevenueAtCapacity += rec.Tuition * rec.Capacity
	}

	if s.TotalCapacity > 0 {
		s.UtilizationPct = s.TotalEnrollment / s.TotalCapacity * 100
	}
	s.SunkCosts = s.Lease + s.AnnualDepreciation
	s.ControllableCosts = s.GrandTotal - s.SunkCosts

	denom := s.TotalEnrollment
	if denom < 1 {
		denom = 1
	}
	s.CostPerStudent = s.GrandTotal / denom

	s.RankedCategories = rankCategories(&s)
	return s
}

// KeyFunc extracts the segmentation key for one school.
type KeyFunc func(*models.SchoolRecord) string

// ByType segments schools by operating model.
func ByType(rec *models.SchoolRecord) string { return string(rec.Type) }

// ByTier segments schools by tuition tier tag.
func ByTier(rec *models.SchoolRecord) string { return string(rec.Tier) }

// AggregateBy groups schools with the key extractor and summarizes each
// group, preserving first-seen key order.
func AggregateBy(schools []models.SchoolRecord, keyFn KeyFunc) []SegmentSummary {
	grouped := make(map[string][]models.SchoolRecord)
	order := make([]string, 0)

	for i := range schools {
		key := keyFn(&schools[i])
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], schools[i])
	}

	segments := make([]SegmentSummary, 0, len(order))
	for _, key := range order {
		segments = append(segments, SegmentSummary{
			Key:     key,
			Summary: Summarize(grouped[key]),
		})
	}
	return segments
}

func rankCategories(s *Summary) []CategoryTotal {
	ranked := []CategoryTotal{
		{Name: "lease", Total: s.Lease},
		{Name: "fixed_facilities", Total: s.FixedFacilities},
		{Name: "variable_facilities", Total: s.VariableFacilities},
		{Name: "student_services", Total: s.StudentServices},
		{Name: "annual_depreciation", Total: s.AnnualDepreciation},
	}
	for i := range ranked {
		if s.GrandTotal > 0 {
			ranked[i].PctOfTotal = ranked[i].Total / s.GrandTotal * 100
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Total > ranked[j].Total })
	return ranked
}
