package rules

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestGetPreset(t *testing.T) {
	e := NewEngine()

	rs, err := e.GetPreset("baseline")
	if err != nil {
		t.Fatalf("baseline preset missing: %v", err)
	}
	if rs.Name != "baseline" {
		t.Errorf("preset name = %q, want baseline", rs.Name)
	}

	_, err = e.GetPreset("nonexistent")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestBuiltinSplitsSumToOne(t *testing.T) {
	e := NewEngine()
	for _, name := range e.Names() {
		rs, err := e.GetPreset(name)
		if err != nil {
			t.Fatalf("GetPreset(%s): %v", name, err)
		}
		for line, s := range map[string]Split{
			"security":       rs.Security,
			"it_maintenance": rs.ITMaintenance,
			"landscaping":    rs.Landscaping,
			"janitorial":     rs.Janitorial,
			"utilities":      rs.Utilities,
			"repairs":        rs.Repairs,
			"food_services":  rs.FoodServices,
			"transportation": rs.Transportation,
		} {
			if math.Abs(s.Fixed+s.Variable-1.0) > 1e-9 {
				t.Errorf("preset %s line %s: fixed+variable = %f", name, line, s.Fixed+s.Variable)
			}
		}
	}
}

func TestLandscapingFullyFixed(t *testing.T) {
	// Scenario projection relies on the built-in presets holding
	// landscaping constant.
	e := NewEngine()
	for _, name := range e.Names() {
		rs, _ := e.GetPreset(name)
		if rs.Landscaping.Fixed != 1.0 || rs.Landscaping.Variable != 0.0 {
			t.Errorf("preset %s: landscaping split %+v, want fully fixed", name, rs.Landscaping)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	content := `
custom:
  security: {fixed: 0.5, variable: 0.5}
  it_maintenance: {fixed: 0.5, variable: 0.5}
  landscaping: {fixed: 1.0, variable: 0.0}
  janitorial: {fixed: 0.5, variable: 0.5}
  utilities: {fixed: 0.5, variable: 0.5}
  repairs: {fixed: 0.5, variable: 0.5}
  food_services: {fixed: 0.5, variable: 0.5}
  transportation: {fixed: 0.5, variable: 0.5}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewEngine()
	if err := e.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	rs, err := e.GetPreset("custom")
	if err != nil {
		t.Fatalf("custom preset not registered: %v", err)
	}
	if rs.Security.Variable != 0.5 {
		t.Errorf("custom security variable = %f, want 0.5", rs.Security.Variable)
	}
}

func TestLoadFileRejectsBadSplit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := `
broken:
  security: {fixed: 0.9, variable: 0.5}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewEngine()
	if err := e.LoadFile(path); err == nil {
		t.Error("expected validation error for split summing to 1.4")
	}
}
