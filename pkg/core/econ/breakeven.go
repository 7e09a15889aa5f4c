package econ

import (
	"math"
)

// Threshold is one enrollment threshold from the break-even scan. Found
// is false when the threshold is not reached within the scan range —
// a legitimate finding, not an error, so callers can render "exceeds
// capacity" instead of a misleading number.
type Threshold struct {
	Found    bool `json:"found"`
	Students int  `json:"students"`
}

// BreakevenResult holds the two enrollment thresholds for a school.
type BreakevenResult struct {
	Breakeven       Threshold `json:"breakeven"` // first margin >= 0
	Target          Threshold `json:"target"`    // first marginPct >= TargetMarginPct
	TargetMarginPct float64   `json:"target_margin_pct"`
}

// FindBreakeven scans enrollment from 1 to 2x capacity, recording the
// first count where margin reaches zero and the first where margin%
// reaches the tier target, short-circuiting once both are found. Revenue
// is strictly increasing and cost growth bounded under the formula set,
// so first-found is also minimum. The known margin dip at the 100-student
// head-of-school step is scanned through, not around.
func (c *Calculator) FindBreakeven(tuition, capacity, facilitiesTotal, capexAnnual, targetMarginPct float64) BreakevenResult {
	res := BreakevenResult{TargetMarginPct: targetMarginPct}

	limit := int(math.Ceil(capacity * 2))
	if limit < 1 {
		limit = 1
	}

	for s := 1; s <= limit; s++ {
		r := c.Compute(tuition, float64(s), facilitiesTotal, capexAnnual)
		if !res.Breakeven.Found && r.Margin >= 0 {
			res.Breakeven = Threshold{Found: true, Students: s}
		}
		if !res.Target.Found && r.MarginPct >= targetMarginPct {
			res.Target = Threshold{Found: true, Students: s}
		}
		if res.Breakeven.Found && res.Target.Found {
			break
		}
	}
	return res
}
