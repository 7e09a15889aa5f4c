// Package rules holds the named fixed/variable expense-split presets used
// by scenario projection. Baseline categorization never applies a preset;
// the split only matters when costs are re-projected under a different
// enrollment.
package rules

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v2"
)

// ErrUnknownPreset is returned when a requested preset name is not
// registered. Callers must supply a valid default; there is no fallback.
var ErrUnknownPreset = errors.New("unknown expense rule preset")

// Split is one line item's fixed/variable decomposition. Fixed and
// Variable must sum to 1.0.
type Split struct {
	Fixed    float64 `yaml:"fixed" json:"fixed"`
	Variable float64 `yaml:"variable" json:"variable"`
}

// RuleSet maps each semi-variable cost line to its split.
type RuleSet struct {
	Name           string `yaml:"-" json:"name"`
	Security       Split  `yaml:"security" json:"security"`
	ITMaintenance  Split  `yaml:"it_maintenance" json:"it_maintenance"`
	Landscaping    Split  `yaml:"landscaping" json:"landscaping"`
	Janitorial     Split  `yaml:"janitorial" json:"janitorial"`
	Utilities      Split  `yaml:"utilities" json:"utilities"`
	Repairs        Split  `yaml:"repairs" json:"repairs"`
	FoodServices   Split  `yaml:"food_services" json:"food_services"`
	Transportation Split  `yaml:"transportation" json:"transportation"`
}

// Engine is a read-only lookup over registered presets.
type Engine struct {
	presets map[string]RuleSet
}

// NewEngine returns an engine preloaded with the built-in presets.
// "baseline" is the conservative company-model split; "aggressive"
// treats more of each line as enrollment-driven. Landscaping is wholly
// fixed in both, matching how scenario projection holds it constant.
func NewEngine() *Engine {
	e := &Engine{presets: map[string]RuleSet{}}
	e.register(RuleSet{
		Name:           "baseline",
		Security:       Split{Fixed: 0.75, Variable: 0.25},
		ITMaintenance:  Split{Fixed: 0.60, Variable: 0.40},
		Landscaping:    Split{Fixed: 1.00, Variable: 0.00},
		Janitorial:     Split{Fixed: 0.30, Variable: 0.70},
		Utilities:      Split{Fixed: 0.40, Variable: 0.60},
		Repairs:        Split{Fixed: 0.50, Variable: 0.50},
		FoodServices:   Split{Fixed: 0.10, Variable: 0.90},
		Transportation: Split{Fixed: 0.20, Variable: 0.80},
	})
	e.register(RuleSet{
		Name:           "aggressive",
		Security:       Split{Fixed: 0.50, Variable: 0.50},
		ITMaintenance:  Split{Fixed: 0.40, Variable: 0.60},
		Landscaping:    Split{Fixed: 1.00, Variable: 0.00},
		Janitorial:     Split{Fixed: 0.15, Variable: 0.85},
		Utilities:      Split{Fixed: 0.25, Variable: 0.75},
		Repairs:        Split{Fixed: 0.30, Variable: 0.70},
		FoodServices:   Split{Fixed: 0.00, Variable: 1.00},
		Transportation: Split{Fixed: 0.05, Variable: 0.95},
	})
	return e
}

func (e *Engine) register(rs RuleSet) {
	e.presets[rs.Name] = rs
}

// GetPreset returns the named rule set or ErrUnknownPreset.
func (e *Engine) GetPreset(name string) (RuleSet, error) {
	rs, ok := e.presets[name]
	if !ok {
		return RuleSet{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return rs, nil
}

// Names lists the registered preset names, sorted.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.presets))
	for n := range e.presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadFile merges presets from a YAML file over the built-ins. The file
// maps preset name -> rule set. Each split must sum to 1.0.
func (e *Engine) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset file: %w", err)
	}
	var raw map[string]RuleSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse preset file: %w", err)
	}
	for name, rs := range raw {
		rs.Name = name
		if err := validate(rs); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		e.register(rs)
	}
	return nil
}

func validate(rs RuleSet) error {
	splits := map[string]Split{
		"security":       rs.Security,
		"it_maintenance": rs.ITMaintenance,
		"landscaping":    rs.Landscaping,
		"janitorial":     rs.Janitorial,
		"utilities":      rs.Utilities,
		"repairs":        rs.Repairs,
		"food_services":  rs.FoodServices,
		"transportation": rs.Transportation,
	}
	for line, s := range splits {
		if math.Abs(s.Fixed+s.Variable-1.0) > 1e-9 {
			return fmt.Errorf("line %s: fixed+variable = %f, want 1.0", line, s.Fixed+s.Variable)
		}
		if s.Fixed < 0 || s.Variable < 0 {
			return fmt.Errorf("line %s: negative fraction", line)
		}
	}
	return nil
}
