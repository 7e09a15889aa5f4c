package portfolio

import (
	"math"
	"testing"

	"facility_economics/pkg/models"
)

func twoSchoolPortfolio() []models.SchoolRecord {
	// A: lease 100,000, every semi-variable line 10,000, dep 20,000
	// B: lease 50,000, every semi-variable line 5,000, dep 10,000
	return []models.SchoolRecord{
		{
			ID: "a", Type: models.SchoolTypeFlagship, Tier: models.TierStandard,
			Tuition: 40000, Students: 100, Capacity: 200,
			Lease: 100000, Utilities: 10000, Repairs: 10000,
			ITMaintenance: 10000, Security: 10000, Landscaping: 10000,
			Janitorial: 10000, FoodServices: 10000, Transportation: 10000,
			CapexBuildout:  500000,
			TotalExclCapex: 180000, TotalInclCapex: 200000,
		},
		{
			ID: "b", Type: models.SchoolTypeMicro, Tier: models.TierEconomy,
			Tuition: 12000, Students: 50, Capacity: 50,
			Lease: 50000, Utilities: 5000, Repairs: 5000,
			ITMaintenance: 5000, Security: 5000, Landscaping: 5000,
			Janitorial: 5000, FoodServices: 5000, Transportation: 5000,
			TotalExclCapex: 90000, TotalInclCapex: 100000,
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(twoSchoolPortfolio())

	if s.SchoolCount != 2 {
		t.Errorf("school count = %d", s.SchoolCount)
	}
	if s.TotalEnrollment != 150 || s.TotalCapacity != 250 {
		t.Errorf("enrollment/capacity = %f/%f, want 150/250", s.TotalEnrollment, s.TotalCapacity)
	}
	if math.Abs(s.UtilizationPct-60) > 1e-9 {
		t.Errorf("utilization = %f, want 60", s.UtilizationPct)
	}

	// Category sums:
	//   lease    150,000
	//   fixed    (10k+10k+10k) + (5k+5k+5k) = 45,000
	//   variable 45,000; services 30,000; depreciation 30,000
	//   grand    300,000
	if s.Lease != 150000 {
		t.Errorf("lease = %f", s.Lease)
	}
	if s.FixedFacilities != 45000 || s.VariableFacilities != 45000 {
		t.Errorf("fixed/variable = %f/%f, want 45000 each", s.FixedFacilities, s.VariableFacilities)
	}
	if s.StudentServices != 30000 {
		t.Errorf("student services = %f, want 30000", s.StudentServices)
	}
	if s.AnnualDepreciation != 30000 {
		t.Errorf("depreciation = %f, want 30000", s.AnnualDepreciation)
	}
	if s.GrandTotal != 300000 {
		t.Errorf("grand total = %f, want 300000", s.GrandTotal)
	}
	if s.CapexBuildout != 500000 {
		t.Errorf("capex = %f, want 500000 (and excluded from grand total)", s.CapexBuildout)
	}

	// Revenue: 40,000*100 + 12,000*50 = 4,600,000 current;
	// 40,000*200 + 12,000*50 = 8,600,000 at capacity.
	if s.RevenueCurrent != 4600000 {
		t.Errorf("current revenue = %f, want 4600000", s.RevenueCurrent)
	}
	if s.RevenueAtCapacity != 8600000 {
		t.Errorf("revenue at capacity = %f, want 8600000", s.RevenueAtCapacity)
	}

	// Sunk = lease + depreciation = 180,000; controllable = 120,000.
	if s.SunkCosts != 180000 || s.ControllableCosts != 120000 {
		t.Errorf("sunk/controllable = %f/%f, want 180000/120000", s.SunkCosts, s.ControllableCosts)
	}
	if math.Abs(s.CostPerStudent-2000) > 1e-9 {
		t.Errorf("cost/student = %f, want 300000/150 = 2000", s.CostPerStudent)
	}
}

func TestRankedCategories(t *testing.T) {
	s := Summarize(twoSchoolPortfolio())

	if len(s.RankedCategories) != 5 {
		t.Fatalf("ranked categories = %d, want 5", len(s.RankedCategories))
	}
	if s.RankedCategories[0].Name != "lease" {
		t.Errorf("top category = %s, want lease", s.RankedCategories[0].Name)
	}
	if math.Abs(s.RankedCategories[0].PctOfTotal-50) > 1e-9 {
		t.Errorf("lease share = %f, want 50", s.RankedCategories[0].PctOfTotal)
	}
	for i := 1; i < len(s.RankedCategories); i++ {
		if s.RankedCategories[i].Total > s.RankedCategories[i-1].Total {
			t.Errorf("ranking not descending at %d: %f > %f",
				i, s.RankedCategories[i].Total, s.RankedCategories[i-1].Total)
		}
	}

	var pctSum float64
	for _, ct := range s.RankedCategories {
		pctSum += ct.PctOfTotal
	}
	if math.Abs(pctSum-100) > 1e-6 {
		t.Errorf("category shares sum to %f, want 100", pctSum)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.SchoolCount != 0 || s.GrandTotal != 0 {
		t.Errorf("empty summary not zero: %+v", s)
	}
	if s.UtilizationPct != 0 || s.CostPerStudent != 0 {
		t.Errorf("empty summary ratios = %f/%f, want 0/0", s.UtilizationPct, s.CostPerStudent)
	}
}

func TestAggregateBy(t *testing.T) {
	schools := twoSchoolPortfolio()

	byType := AggregateBy(schools, ByType)
	if len(byType) != 2 {
		t.Fatalf("type segments = %d, want 2", len(byType))
	}
	// First-seen order
	if byType[0].Key != string(models.SchoolTypeFlagship) || byType[1].Key != string(models.SchoolTypeMicro) {
		t.Errorf("segment order = %s, %s", byType[0].Key, byType[1].Key)
	}
	if byType[0].SchoolCount != 1 || byType[0].GrandTotal != 200000 {
		t.Errorf("flagship segment = count %d, total %f", byType[0].SchoolCount, byType[0].GrandTotal)
	}
	if byType[1].GrandTotal != 100000 {
		t.Errorf("micro segment total = %f", byType[1].GrandTotal)
	}

	// Segments partition the portfolio: totals recompose.
	whole := Summarize(schools)
	var sum float64
	for _, seg := range byType {
		sum += seg.GrandTotal
	}
	if sum != whole.GrandTotal {
		t.Errorf("segment totals %f != portfolio total %f", sum, whole.GrandTotal)
	}

	byTier := AggregateBy(schools, ByTier)
	if byTier[0].Key != string(models.TierStandard) || byTier[1].Key != string(models.TierEconomy) {
		t.Errorf("tier segment order = %s, %s", byTier[0].Key, byTier[1].Key)
	}
}
