// Package econ composes staffing, facilities, depreciation, programs,
// misc, and timeback into full per-school revenue/cost/margin records,
// and searches enrollment space for break-even thresholds.
package econ

import (
	"facility_economics/pkg/core/program"
	"facility_economics/pkg/core/staffing"
	"facility_economics/pkg/core/tier"
)

// Result is the full unit-economics record for one (tuition, students,
// facilitiesTotal, capexAnnual) tuple.
type Result struct {
	Tuition  float64 `json:"tuition"`
	Students float64 `json:"students"`

	Revenue float64 `json:"revenue"`

	StaffingCost   float64 `json:"staffing_cost"`
	FacilitiesCost float64 `json:"facilities_cost"`
	CapexAnnual    float64 `json:"capex_annual"`
	ProgramsCost   float64 `json:"programs_cost"`
	MiscCost       float64 `json:"misc_cost"`
	TimebackCost   float64 `json:"timeback_cost"`
	TotalCosts     float64 `json:"total_costs"`

	StaffingPerStudent   float64 `json:"staffing_per_student"`
	FacilitiesPerStudent float64 `json:"facilities_per_student"`
	CapexPerStudent      float64 `json:"capex_per_student"`
	ProgramsPerStudent   float64 `json:"programs_per_student"`
	MiscPerStudent       float64 `json:"misc_per_student"`
	TimebackPerStudent   float64 `json:"timeback_per_student"`
	CostPerStudent       float64 `json:"cost_per_student"`

	Margin           float64 `json:"margin"`
	MarginPerStudent float64 `json:"margin_per_student"`
	MarginPct        float64 `json:"margin_pct"`
}

// Calculator wires the formula modules together over one tier table.
type Calculator struct {
	Staffing *staffing.Calculator
}

// New returns a calculator over the given tier table.
func New(t *tier.Table) *Calculator {
	return &Calculator{Staffing: staffing.New(t)}
}

// Compute builds the full record. Per-student fields divide by
// max(students, 1): a zero-enrollment school reports a defined but not
// meaningful per-student figure, which callers must recognize via the
// enrollment field. MarginPct is 0 (not NaN) when revenue is 0.
func (c *Calculator) Compute(tuition, students, facilitiesTotal, capexAnnual float64) Result {
	r := Result{
		Tuition:  tuition,
		Students: students,
	}

	r.Revenue = tuition * students

	programsPer := program.ProgramsPerStudent(tuition, students)
	miscPer := program.MiscPerStudent(tuition, students)
	timebackPer := program.Timeback(tuition)

	r.StaffingCost = c.Staffing.Cost(tuition, students)
	r.FacilitiesCost = facilitiesTotal
	r.CapexAnnual = capexAnnual
	r.ProgramsCost = programsPer * students
	r.MiscCost = miscPer * students
	r.TimebackCost = timebackPer * students

	r.TotalCosts = r.StaffingCost + r.FacilitiesCost + r.CapexAnnual +
		r.ProgramsCost + r.MiscCost + r.TimebackCost

	denom := students
	if denom < 1 {
		denom = 1
	}
	r.StaffingPerStudent = r.StaffingCost / denom
	r.FacilitiesPerStudent = r.FacilitiesCost / denom
	r.CapexPerStudent = r.CapexAnnual / denom
	r.ProgramsPerStudent = programsPer
	r.MiscPerStudent = miscPer
	r.TimebackPerStudent = timebackPer
	r.CostPerStudent = r.TotalCosts / denom

	r.Margin = r.Revenue - r.TotalCosts
	r.MarginPerStudent = r.Margin / denom
	if r.Revenue > 0 {
		r.MarginPct = r.Margin / r.Revenue * 100
	}
	return r
}
