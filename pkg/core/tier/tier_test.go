package tier

import (
	"testing"

	"facility_economics/pkg/models"
)

func TestForTuitionBoundaries(t *testing.T) {
	cases := []struct {
		tuition float64
		want    models.TuitionTier
	}{
		{10000, models.TierEconomy},
		{15000, models.TierEconomy}, // inclusive upper bound
		{15001, models.TierValue},
		{25000, models.TierValue},
		{25001, models.TierStandard},
		{40000, models.TierStandard},
		{50000, models.TierStandard}, // premium salary schedule starts strictly above 50K
		{50001, models.TierPremium},
		{70000, models.TierPremium},
	}
	for _, c := range cases {
		if got := ForTuition(c.tuition); got != c.want {
			t.Errorf("ForTuition(%.0f) = %s, want %s", c.tuition, got, c.want)
		}
	}
}

func TestMarginTarget(t *testing.T) {
	// >= 65K -> 20%, > 40K -> 10%, else 5%
	cases := []struct {
		tuition float64
		want    float64
	}{
		{12000, 5},
		{40000, 5},  // not strictly above 40K
		{40001, 10},
		{64999, 10},
		{65000, 20},
		{90000, 20},
	}
	for _, c := range cases {
		if got := MarginTarget(c.tuition); got != c.want {
			t.Errorf("MarginTarget(%.0f) = %f, want %f", c.tuition, got, c.want)
		}
	}
}

func TestSalaryLookup(t *testing.T) {
	tbl := Default()

	// 40,000 sits in the standard band: guide 100K base
	if got := tbl.Salary(40000).Guide; got != 100000 {
		t.Errorf("standard guide base = %f, want 100000", got)
	}
	// 70,000 is premium: guide 120K base
	if got := tbl.Salary(70000).Guide; got != 120000 {
		t.Errorf("premium guide base = %f, want 120000", got)
	}
}

func TestMergePartialOverride(t *testing.T) {
	tbl := Default()
	tbl.Merge(map[models.TuitionTier]SalarySchedule{
		models.TierEconomy: {Guide: 47000}, // only the guide salary changes
	})

	got := tbl.Salaries[models.TierEconomy]
	if got.Guide != 47000 {
		t.Errorf("override not applied: guide = %f", got.Guide)
	}
	if got.LeadGuide != 60000 {
		t.Errorf("unmentioned field blanked: lead guide = %f, want 60000", got.LeadGuide)
	}
	// Other tiers untouched
	if tbl.Salaries[models.TierValue].Guide != 65000 {
		t.Errorf("value tier modified by economy override")
	}
}
