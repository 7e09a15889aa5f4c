// Package costs maps a school's raw line items into the six-category cost
// structure and compares actuals against the approved-model budget.
package costs

import (
	"facility_economics/pkg/models"
)

// LeaseCategory is 100% fixed; no expense rule ever applies to it.
type LeaseCategory struct {
	Total float64 `json:"total"`
}

// FixedFacilitiesCategory holds the three lines categorized wholesale as
// fixed. The fixed/variable preset does not touch the baseline totals;
// it only matters for scenario projection.
type FixedFacilitiesCategory struct {
	Security      float64 `json:"security"`
	ITMaintenance float64 `json:"it_maintenance"`
	Landscaping   float64 `json:"landscaping"`
	Total         float64 `json:"total"`
}

// VariableFacilitiesCategory holds the three enrollment-sensitive
// facility lines, raw and unsplit at categorization time.
type VariableFacilitiesCategory struct {
	Janitorial float64 `json:"janitorial"`
	Utilities  float64 `json:"utilities"`
	Repairs    float64 `json:"repairs"`
	Total      float64 `json:"total"`
}

// StudentServicesCategory covers food and transportation.
type StudentServicesCategory struct {
	FoodServices   float64 `json:"food_services"`
	Transportation float64 `json:"transportation"`
	Total          float64 `json:"total"`
}

// DepreciationCategory is backed into the categorization from the two
// provided rollups rather than read from a raw field. A negative total
// means TotalInclCapex < TotalExclCapex, which is a data anomaly worth
// surfacing; it is passed through, never clamped.
type DepreciationCategory struct {
	Total float64 `json:"total"`
}

// CapexCategory is the one-time buildout figure, reported separately and
// never summed into GrandTotal.
type CapexCategory struct {
	Total float64 `json:"total"`
}

// CategorizedCosts is the derived cost structure for one school.
// GrandTotal is the exact sum of categories 1-5 (capex excluded).
type CategorizedCosts struct {
	Lease              LeaseCategory              `json:"lease"`
	FixedFacilities    FixedFacilitiesCategory    `json:"fixed_facilities"`
	VariableFacilities VariableFacilitiesCategory `json:"variable_facilities"`
	StudentServices    StudentServicesCategory    `json:"student_services"`
	AnnualDepreciation DepreciationCategory       `json:"annual_depreciation"`
	CapexBuildout      CapexCategory              `json:"capex_buildout"`
	GrandTotal         float64                    `json:"grand_total"`
}

// OperatingTotal is the grand total minus annual depreciation, i.e. the
// cash facilities cost that corresponds to the record's excl-capex rollup.
func (c *CategorizedCosts) OperatingTotal() float64 {
	return c.Lease.Total + c.FixedFacilities.Total + c.VariableFacilities.Total + c.StudentServices.Total
}

// Categorize maps one raw record into the category structure. Inputs are
// assumed numeric and >= 0; there are no error conditions.
func Categorize(rec *models.SchoolRecord) CategorizedCosts {
	var c CategorizedCosts

	// 1. Lease
	c.Lease.Total = rec.Lease

	// 2. Fixed facilities
	c.FixedFacilities.Security = rec.Security
	c.FixedFacilities.ITMaintenance = rec.ITMaintenance
	c.FixedFacilities.Landscaping = rec.Landscaping
	c.FixedFacilities.Total = rec.Security + rec.ITMaintenance + rec.Landscaping

	// 3. Variable facilities
	c.VariableFacilities.Janitorial = rec.Janitorial
	c.VariableFacilities.Utilities = rec.Utilities
	c.VariableFacilities.Repairs = rec.Repairs
	c.VariableFacilities.Total = rec.Janitorial + rec.Utilities + rec.Repairs

	// 4. Student services
	c.StudentServices.FoodServices = rec.FoodServices
	c.StudentServices.Transportation = rec.Transportation
	c.StudentServices.Total = rec.FoodServices + rec.Transportation

	// 5. Annual depreciation, derived from the rollups
	c.AnnualDepreciation.Total = rec.TotalInclCapex - rec.TotalExclCapex

	// 6. One-time capex, tracked outside the grand total
	c.CapexBuildout.Total = rec.CapexBuildout

	c.GrandTotal = c.Lease.Total +
		c.FixedFacilities.Total +
		c.VariableFacilities.Total +
		c.StudentServices.Total +
		c.AnnualDepreciation.Total

	return c
}
