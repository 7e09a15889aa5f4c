// Package tier centralizes the tuition-tier table: the pricing thresholds,
// per-tier salary schedules, and margin targets that the staffing, program,
// and unit-economics packages must agree on. Keeping the constants in one
// place prevents drift between formulas that branch on the same brackets.
package tier

import (
	"facility_economics/pkg/models"
)

// Tuition thresholds (annual, USD). These drive staffing bands, program and
// misc cost curves, salary sub-tiers, and margin targets.
const (
	EconomyMax       = 15000.0 // <= : economy ("low-cost") band
	ValueMax         = 25000.0 // <= : value ("alternative") band
	MarginTargetMid  = 40000.0 // >  : 10% margin target
	PremiumSalaryMin = 50000.0 // >  : premium salary schedule
	MarginTargetTop  = 65000.0 // >= : 20% margin target
)

// LoadingFactor scales base salaries for benefits and payroll taxes.
const LoadingFactor = 1.15

// ForTuition resolves the pricing bracket for a tuition amount.
func ForTuition(tuition float64) models.TuitionTier {
	switch {
	case tuition <= EconomyMax:
		return models.TierEconomy
	case tuition <= ValueMax:
		return models.TierValue
	case tuition <= PremiumSalaryMin:
		return models.TierStandard
	default:
		return models.TierPremium
	}
}

// MarginTarget returns the tier margin target in percent:
// >=65K -> 20%, >40K -> 10%, else 5%.
func MarginTarget(tuition float64) float64 {
	switch {
	case tuition >= MarginTargetTop:
		return 20
	case tuition > MarginTargetMid:
		return 10
	default:
		return 5
	}
}

// SalarySchedule holds base annual salaries for one tier, before the
// loading factor is applied.
type SalarySchedule struct {
	Guide         float64 `yaml:"guide" json:"guide"`
	LeadGuide     float64 `yaml:"lead_guide" json:"lead_guide"`
	RoomAssistant float64 `yaml:"room_assistant" json:"room_assistant"`
	HeadOfSchool  float64 `yaml:"head_of_school" json:"head_of_school"`
	Admin         float64 `yaml:"admin" json:"admin"`
}

// Table is the resolved tier table. Construct with Default and optionally
// patch salary schedules from an operator config; the engine treats a Table
// as read-only after construction.
type Table struct {
	Salaries map[models.TuitionTier]SalarySchedule
}

// Default returns the built-in salary table.
func Default() *Table {
	return &Table{
		Salaries: map[models.TuitionTier]SalarySchedule{
			models.TierEconomy: {
				Guide:         45000,
				LeadGuide:     60000,
				RoomAssistant: 30000,
				HeadOfSchool:  80000,
				Admin:         50000,
			},
			models.TierValue: {
				Guide:         65000,
				LeadGuide:     85000,
				RoomAssistant: 35000,
				HeadOfSchool:  100000,
				Admin:         55000,
			},
			models.TierStandard: {
				Guide:         100000,
				LeadGuide:     150000,
				RoomAssistant: 40000,
				HeadOfSchool:  140000,
				Admin:         60000,
			},
			models.TierPremium: {
				Guide:         120000,
				LeadGuide:     180000,
				RoomAssistant: 45000,
				HeadOfSchool:  160000,
				Admin:         70000,
			},
		},
	}
}

// Salary returns the schedule for a tuition amount.
func (t *Table) Salary(tuition float64) SalarySchedule {
	return t.Salaries[ForTuition(tuition)]
}

// Merge overwrites schedules for the tiers present in the override map,
// leaving the others at their current values. Zero-valued fields in an
// override are kept from the existing schedule so a partial YAML entry
// does not blank out salaries it never mentioned.
func (t *Table) Merge(overrides map[models.TuitionTier]SalarySchedule) {
	for tr, o := range overrides {
		cur := t.Salaries[tr]
		if o.Guide > 0 {
			cur.Guide = o.Guide
		}
		if o.LeadGuide > 0 {
			cur.LeadGuide = o.LeadGuide
		}
		if o.RoomAssistant > 0 {
			cur.RoomAssistant = o.RoomAssistant
		}
		if o.HeadOfSchool > 0 {
			cur.HeadOfSchool = o.HeadOfSchool
		}
		if o.Admin > 0 {
			cur.Admin = o.Admin
		}
		t.Salaries[tr] = cur
	}
}
