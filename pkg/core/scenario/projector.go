// Package scenario re-projects the portfolio's facility cost structure
// under a target utilization, scaling the variable share of each
// semi-variable line by the enrollment ratio from the active expense-rule
// preset.
package scenario

import (
	"math"

	"facility_economics/pkg/core/costs"
	"facility_economics/pkg/core/rules"
	"facility_economics/pkg/models"

	"github.com/google/uuid"
)

// SchoolProjection is one school's slice of a scenario run.
type SchoolProjection struct {
	SchoolID           string  `json:"school_id"`
	ScenarioEnrollment float64 `json:"scenario_enrollment"`
	EnrollmentRatio    float64 `json:"enrollment_ratio"`
	CurrentCost        float64 `json:"current_cost"`   // categorized grand total today
	ProjectedCost      float64 `json:"projected_cost"` // grand total at scenario enrollment
	ProjectedRevenue   float64 `json:"projected_revenue"`
}

// Result is a full portfolio scenario run. RunID makes persisted
// snapshots addressable.
type Result struct {
	RunID                string  `json:"run_id"`
	Preset               string  `json:"preset"`
	TargetUtilizationPct float64 `json:"target_utilization_pct"`

	Schools []SchoolProjection `json:"schools"`

	CurrentEnrollment   float64 `json:"current_enrollment"`
	ProjectedEnrollment float64 `json:"projected_enrollment"`

	CurrentCost      float64 `json:"current_cost"`
	ProjectedCost    float64 `json:"projected_cost"`
	CurrentRevenue   float64 `json:"current_revenue"`
	ProjectedRevenue float64 `json:"projected_revenue"`

	CurrentCostPerStudent   float64 `json:"current_cost_per_student"`
	ProjectedCostPerStudent float64 `json:"projected_cost_per_student"`
	CurrentPctOfTuition     float64 `json:"current_pct_of_tuition"`
	ProjectedPctOfTuition   float64 `json:"projected_pct_of_tuition"`

	SavingsPerStudent float64 `json:"savings_per_student"` // current avg - projected avg
}

// Project recomputes every school at floor(capacity * pct/100) enrollment.
// Each semi-variable line is recomposed as raw*fixed + raw*variable*ratio;
// lease and annual depreciation are held constant (landscaping is held
// constant through its fully-fixed split in the built-in presets).
func Project(schools []models.SchoolRecord, targetUtilizationPct float64, rs rules.RuleSet) Result {
	res := Result{
		RunID:                uuid.NewString(),
		Preset:               rs.Name,
		TargetUtilizationPct: targetUtilizationPct,
		Schools:              make([]SchoolProjection, 0, len(schools)),
	}

	for i := range schools {
		rec := &schools[i]
		cat := costs.Categorize(rec)

		scenEnroll := math.Floor(rec.Capacity * targetUtilizationPct / 100)
		denom := rec.Students
		if denom < 1 {
			denom = 1
		}
		ratio := scenEnroll / denom

		projected := cat.Lease.Total +
			scaleLine(rec.Security, rs.Security, ratio) +
			scaleLine(rec.ITMaintenance, rs.ITMaintenance, ratio) +
			scaleLine(rec.Landscaping, rs.Landscaping, ratio) +
			scaleLine(rec.Janitorial, rs.Janitorial, ratio) +
			scaleLine(rec.Utilities, rs.Utilities, ratio) +
			scaleLine(rec.Repairs, rs.Repairs, ratio) +
			scaleLine(rec.FoodServices, rs.FoodServices, ratio) +
			scaleLine(rec.Transportation, rs.Transportation, ratio) +
			cat.AnnualDepreciation.Total

		sp := SchoolProjection{
			SchoolID:           rec.ID,
			ScenarioEnrollment: scenEnroll,
			EnrollmentRatio:    ratio,
			CurrentCost:        cat.GrandTotal,
			ProjectedCost:      projected,
			ProjectedRevenue:   rec.Tuition * scenEnroll,
		}
		res.Schools = append(res.Schools, sp)

		res.CurrentEnrollment += rec.Students
		res.ProjectedEnrollment += scenEnroll
		res.CurrentCost += cat.GrandTotal
		res.ProjectedCost += projected
		res.CurrentRevenue += rec.Tuition * rec.Students
		res.ProjectedRevenue += sp.ProjectedRevenue
	}

	res.CurrentCostPerStudent = safeDiv(res.CurrentCost, res.CurrentEnrollment)
	res.ProjectedCostPerStudent = safeDiv(res.ProjectedCost, res.ProjectedEnrollment)
	res.CurrentPctOfTuition = pct(res.CurrentCost, res.CurrentRevenue)
	res.ProjectedPctOfTuition = pct(res.ProjectedCost, res.ProjectedRevenue)
	res.SavingsPerStudent = res.CurrentCostPerStudent - res.ProjectedCostPerStudent

	return res
}

func scaleLine(raw float64, s rules.Split, ratio float64) float64 {
	return raw*s.Fixed + raw*s.Variable*ratio
}

func safeDiv(num, denom float64) float64 {
	if denom < 1 {
		denom = 1
	}
	return num / denom
}

func pct(num, denom float64) float64 {
	if denom > 0 {
		return num / denom * 100
	}
	return 0
}
