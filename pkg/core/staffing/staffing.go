// Package staffing computes annual staffing cost as a step function of
// enrollment, with tier-specific guide ratios and salary schedules.
package staffing

import (
	"math"

	"facility_economics/pkg/core/tier"
	"facility_economics/pkg/models"
)

// Plan is the resolved headcount and loaded cost for one (tuition,
// enrollment) point.
type Plan struct {
	Tier           models.TuitionTier `json:"tier"`
	LeadGuides     int                `json:"lead_guides"`
	Guides         int                `json:"guides"` // regular guides
	RoomAssistants int                `json:"room_assistants"`
	HeadOfSchool   int                `json:"head_of_school"`
	Admins         int                `json:"admins"`
	Cost           float64            `json:"cost"` // loaded annual cost
}

// Calculator resolves staffing plans against a tier table.
type Calculator struct {
	Tiers *tier.Table
}

// New returns a calculator over the given tier table.
func New(t *tier.Table) *Calculator {
	return &Calculator{Tiers: t}
}

// Cost returns the loaded annual staffing cost. Tuition and students are
// assumed non-negative; guide counts always round up.
func (c *Calculator) Cost(tuition, students float64) float64 {
	return c.Plan(tuition, students).Cost
}

// Plan computes the full headcount breakdown.
func (c *Calculator) Plan(tuition, students float64) Plan {
	t := tier.ForTuition(tuition)
	p := Plan{Tier: t}

	switch t {
	case models.TierEconomy:
		c.smallSchoolPlan(&p, students, 1)
	case models.TierValue:
		// Same ratio structure as economy, different salaries, and two
		// lead-guide positions once the school crosses 100 students.
		c.smallSchoolPlan(&p, students, 2)
	default:
		c.standardPlan(&p, students)
	}

	sched := c.Tiers.Salary(tuition)
	p.Cost = float64(p.LeadGuides)*sched.LeadGuide +
		float64(p.Guides)*sched.Guide +
		float64(p.RoomAssistants)*sched.RoomAssistant +
		float64(p.HeadOfSchool)*sched.HeadOfSchool +
		float64(p.Admins)*sched.Admin
	p.Cost *= tier.LoadingFactor
	return p
}

// smallSchoolPlan covers the economy and value bands: 13:1 below 100
// students with a 2-guide floor and no leadership overhead; 25:1 above,
// plus two fixed room assistants, a head of school, and an admin.
// leadsAtScale is the lead-guide count once the 100-student threshold is
// crossed (1 for economy, 2 for value).
func (c *Calculator) smallSchoolPlan(p *Plan, students float64, leadsAtScale int) {
	if students < 100 {
		total := int(math.Ceil(students / 13))
		if total < 2 {
			total = 2
		}
		p.LeadGuides = 1
		p.Guides = total - 1
		return
	}
	p.LeadGuides = leadsAtScale
	p.Guides = int(math.Ceil(students / 25))
	p.RoomAssistants = 2
	p.HeadOfSchool = 1
	p.Admins = 1
}

// standardPlan covers the standard/premium band: 11:1 guide ratio, lead
// guides clamped to min(4, max(1, ceil(s/38))), admin always present,
// head of school only at >= 100 students.
func (c *Calculator) standardPlan(p *Plan, students float64) {
	total := int(math.Ceil(students / 11))
	leads := int(math.Ceil(students / 38))
	if leads < 1 {
		leads = 1
	}
	if leads > 4 {
		leads = 4
	}
	regular := total - leads
	if regular < 0 {
		regular = 0
	}
	p.LeadGuides = leads
	p.Guides = regular
	p.Admins = 1
	if students >= 100 {
		p.HeadOfSchool = 1
	}
}
