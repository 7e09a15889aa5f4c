package costs

import (
	"facility_economics/pkg/models"
)

// BudgetBasis is model vs actual on one per-student basis.
type BudgetBasis struct {
	ModelPerStudent  float64 `json:"model_per_student"`
	ActualPerStudent float64 `json:"actual_per_student"`
	Delta            float64 `json:"delta"`     // actual - model
	DeltaPct         float64 `json:"delta_pct"` // delta / model * 100, 0 when model is 0
}

// BudgetComparison compares actual per-student cost against the approved
// model, on the facilities-only basis and the facilities+capex basis.
type BudgetComparison struct {
	FacilitiesOnly BudgetBasis `json:"facilities_only"`
	WithCapex      BudgetBasis `json:"with_capex"`
}

// CompareBudget derives both bases for one school. Per-student actuals
// divide by max(students, 1); a zero-enrollment school reports a defined
// figure that callers must interpret via the enrollment field.
func CompareBudget(rec *models.SchoolRecord) BudgetComparison {
	cat := Categorize(rec)
	students := rec.Students
	if students < 1 {
		students = 1
	}

	return BudgetComparison{
		FacilitiesOnly: basis(rec.FacilityBudgetPerStudent, cat.OperatingTotal()/students),
		WithCapex:      basis(rec.TotalBudgetPerStudent(), cat.GrandTotal/students),
	}
}

func basis(model, actual float64) BudgetBasis {
	b := BudgetBasis{
		ModelPerStudent:  model,
		ActualPerStudent: actual,
		Delta:            actual - model,
	}
	if model > 0 {
		b.DeltaPct = b.Delta / model * 100
	}
	return b
}
