package store

import (
	"fmt"
	"os"

	"facility_economics/pkg/models"

	"github.com/hjson/hjson-go/v4"
)

// LoadRecordsFile reads school records from an HJSON file. HJSON keeps
// the hand-maintained data file commentable; the structure is a list of
// SchoolRecord objects under a top-level "schools" key.
//
// Validation of raw records happens here, at the loading boundary — the
// calculation engine assumes well-formed input.
func LoadRecordsFile(path string) ([]models.SchoolRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	var doc struct {
		Schools []models.SchoolRecord `json:"schools"`
	}
	if err := hjson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse records file: %w", err)
	}

	for i := range doc.Schools {
		if err := ValidateRecord(&doc.Schools[i]); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, doc.Schools[i].ID, err)
		}
	}
	return doc.Schools, nil
}

// ValidateRecord enforces the loading-boundary invariants: a stable id,
// positive capacity, and non-negative numeric fields. Enrollment above
// capacity is allowed — it is a data-quality flag, not an impossibility.
func ValidateRecord(rec *models.SchoolRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("missing school id")
	}
	if rec.Capacity <= 0 {
		return fmt.Errorf("capacity must be > 0, got %f", rec.Capacity)
	}
	if rec.Students < 0 {
		return fmt.Errorf("enrollment must be >= 0, got %f", rec.Students)
	}

	fields := map[string]float64{
		"tuition":        rec.Tuition,
		"sqft":           rec.Sqft,
		"lease":          rec.Lease,
		"utilities":      rec.Utilities,
		"repairs":        rec.Repairs,
		"it_maintenance": rec.ITMaintenance,
		"security":       rec.Security,
		"landscaping":    rec.Landscaping,
		"janitorial":     rec.Janitorial,
		"food_services":  rec.FoodServices,
		"transportation": rec.Transportation,
		"capex_buildout": rec.CapexBuildout,
	}
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0, got %f", name, v)
		}
	}
	return nil
}
