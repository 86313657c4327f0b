// Package modeldef loads a tandem-repeat model description and builds the concrete
// suffix/repeat/prefix sub-models the hmm package decodes against. The transition-probability
// layout follows the reference adVNTR implementation's hmm_utils.py.
package modeldef

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrPatternEmpty is returned when a ModelDefinition's Pattern is the empty string.
var ErrPatternEmpty = errors.New("modeldef: pattern is empty")

// ModelDefinition is the on-disk (YAML) description of a read matcher.
type ModelDefinition struct {
	Name         string  `yaml:"name"`
	Pattern      string  `yaml:"pattern"`
	LeftFlank    string  `yaml:"left_flank"`
	RightFlank   string  `yaml:"right_flank"`
	Copies       int     `yaml:"copies"`
	MaxErrorRate float64 `yaml:"max_error_rate"`
}

// Validate checks the definition for the minimum shape BuildReadMatcher requires.
func (d ModelDefinition) Validate() error {
	if d.Pattern == "" {
		return ErrPatternEmpty
	}
	if d.MaxErrorRate <= 0 || d.MaxErrorRate >= 1 {
		return fmt.Errorf("modeldef: max_error_rate %v out of (0,1)", d.MaxErrorRate)
	}
	return nil
}

// errorBudget splits MaxErrorRate into insert/delete error probabilities using the same ratio
// the reference implementation does: insertError = rate*2/5, deleteError = rate*1/5.
func (d ModelDefinition) errorBudget() (insertError, deleteError float64) {
	return d.MaxErrorRate * 2 / 5, d.MaxErrorRate * 1 / 5
}

// Load reads a YAML ModelDefinition from path.
func Load(path string) (ModelDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ModelDefinition{}, fmt.Errorf("modeldef: read %s: %w", path, err)
	}
	var def ModelDefinition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return ModelDefinition{}, fmt.Errorf("modeldef: parse %s: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return ModelDefinition{}, err
	}
	return def, nil
}
