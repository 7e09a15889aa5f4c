package models

// SchoolType tags a campus by operating model.
type SchoolType string

const (
	SchoolTypeFlagship    SchoolType = "flagship"
	SchoolTypeMicro       SchoolType = "micro"
	SchoolTypeAlternative SchoolType = "alternative"
	SchoolTypeVirtual     SchoolType = "virtual"
)

// TuitionTier is the pricing bracket a school belongs to.
// The bracket selects salary schedules, program/misc curves, and margin targets.
type TuitionTier string

const (
	TierEconomy  TuitionTier = "economy"  // <= 15,000
	TierValue    TuitionTier = "value"    // <= 25,000
	TierStandard TuitionTier = "standard" // <= 50,000
	TierPremium  TuitionTier = "premium"  // > 50,000
)

// SchoolRecord is one school's raw financial inputs. Immutable once loaded.
// Validation (capacity > 0, non-negative numerics) belongs to the loading
// boundary, not to the calculation engine.
type SchoolRecord struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     SchoolType  `json:"type"`
	Tier     TuitionTier `json:"tier"`
	Tuition  float64     `json:"tuition"`
	Students float64     `json:"students"` // current enrollment
	Capacity float64     `json:"capacity"`
	Sqft     float64     `json:"sqft"`

	// Raw annual cost lines
	Lease          float64 `json:"lease"`
	Utilities      float64 `json:"utilities"`
	Repairs        float64 `json:"repairs"` // repairs & maintenance
	ITMaintenance  float64 `json:"it_maintenance"`
	Security       float64 `json:"security"`
	Landscaping    float64 `json:"landscaping"`
	Janitorial     float64 `json:"janitorial"`
	FoodServices   float64 `json:"food_services"`
	Transportation float64 `json:"transportation"`

	// One-time capital buildout and the two provided rollups.
	// Annual depreciation is derived as TotalInclCapex - TotalExclCapex.
	CapexBuildout  float64 `json:"capex_buildout"`
	TotalExclCapex float64 `json:"total_excl_capex"`
	TotalInclCapex float64 `json:"total_incl_capex"`

	// Approved-model per-student budget figures
	FacilityBudgetPerStudent float64 `json:"facility_budget_per_student"`
	CapexBudgetPerStudent    float64 `json:"capex_budget_per_student"`
}

// Utilization returns current enrollment / capacity as a percentage.
// Enrollment above capacity is a data-quality flag, not an impossibility,
// so values over 100 pass through.
func (s *SchoolRecord) Utilization() float64 {
	if s.Capacity <= 0 {
		return 0
	}
	return s.Students / s.Capacity * 100
}

// TotalBudgetPerStudent is the derived approved-model figure.
func (s *SchoolRecord) TotalBudgetPerStudent() float64 {
	return s.FacilityBudgetPerStudent + s.CapexBudgetPerStudent
}
