package demo

import (
	"fmt"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

type FilterConfig struct {
	ExpectedItems int     `yaml:"expected_items"`
	FPProbability float64 `yaml:"fp_probability"`
	Hash          string  `yaml:"hash"`
}

// filterFile tells a missing key apart from an explicit zero.
type filterFile struct {
	ExpectedItems *int     `yaml:"expected_items"`
	FPProbability *float64 `yaml:"fp_probability"`
	Hash          *string  `yaml:"hash"`
}

type scenarioFile struct {
	Filter filterFile `yaml:"filter"`
	Add    []string   `yaml:"add"`
	Check  []string   `yaml:"check"`
}

// Scenario is a batch of posts to add to a fresh filter followed by posts to check against it.
type Scenario struct {
	Filter FilterConfig `yaml:"filter"`
	Add    []string     `yaml:"add"`
	Check  []string     `yaml:"check"`
}

const (
	postSunset  = "Check out this amazing sunset! #nofilter"
	postPython  = "My thoughts on the latest Python features."
	postWorkout = "Just finished a great workout at the gym."
)

// DefaultScenario configures for 1 million posts with a 0.1% false positive rate.
func DefaultScenario() *Scenario {
	return &Scenario{
		Filter: FilterConfig{
			ExpectedItems: 1_000_000,
			FPProbability: 0.001,
			Hash:          "xxhash",
		},
		Add:   []string{postSunset, postPython},
		Check: []string{postWorkout, postSunset},
	}
}

// ParseScenario reads a yaml scenario, any filter fields left out are taken from defaults.
// Fields that are present are kept as written, even when zero.
func ParseScenario(raw []byte, defaults FilterConfig) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("scenario not valid yaml: %w", err)
	}
	// only nil fields are filled, set pointers are not looked through
	fallback := filterFile{
		ExpectedItems: &defaults.ExpectedItems,
		FPProbability: &defaults.FPProbability,
		Hash:          &defaults.Hash,
	}
	if err := mergo.Merge(&f.Filter, fallback, mergo.WithoutDereference); err != nil {
		return nil, fmt.Errorf("merge scenario defaults: %w", err)
	}
	if len(f.Check) == 0 {
		return nil, fmt.Errorf("scenario has no posts to check")
	}
	return &Scenario{
		Filter: FilterConfig{
			ExpectedItems: *f.Filter.ExpectedItems,
			FPProbability: *f.Filter.FPProbability,
			Hash:          *f.Filter.Hash,
		},
		Add:   f.Add,
		Check: f.Check,
	}, nil
}
