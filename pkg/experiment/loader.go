// Package experiment loads and validates experiment definitions from
// YAML or JSON files.
package experiment

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

// Format of an experiment definition file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var validate = validator.New()

// rawSpec mirrors types.FaultSpec with a pointer probability so that an
// omitted field is distinguishable from an explicit zero
type rawSpec struct {
	Kind            string   `yaml:"kind" json:"kind"`
	Probability     *float64 `yaml:"probability" json:"probability"`
	DurationMs      *int     `yaml:"duration_ms" json:"duration_ms"`
	ErrorCode       *int     `yaml:"error_code" json:"error_code"`
	ErrorMessage    string   `yaml:"error_message" json:"error_message"`
	AffectedTargets []string `yaml:"affected_targets" json:"affected_targets"`
}

type rawDef struct {
	ID              string    `yaml:"id" json:"id"`
	Name            string    `yaml:"name" json:"name"`
	Description     string    `yaml:"description" json:"description"`
	FaultSpecs      []rawSpec `yaml:"faults" json:"faults"`
	DurationSeconds *int      `yaml:"duration_seconds" json:"duration_seconds"`
	DefaultTargets  []string  `yaml:"targets" json:"targets"`
}

// Load reads an experiment definition from path. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON.
func Load(path string) (*types.ExperimentDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read experiment file %s", path)
	}
	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return LoadBytes(data, format)
}

// LoadBytes decodes an experiment definition, applies the documented
// defaults (probability 1.0, duration 60s) and validates the result
func LoadBytes(data []byte, format Format) (*types.ExperimentDef, error) {
	var raw rawDef
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "unable to parse experiment YAML")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "unable to parse experiment JSON")
		}
	default:
		return nil, errors.Errorf("unknown experiment file format: %s", format)
	}

	def := types.ExperimentDef{
		ID:              raw.ID,
		Name:            raw.Name,
		Description:     raw.Description,
		DurationSeconds: 60,
		DefaultTargets:  raw.DefaultTargets,
	}
	if raw.DurationSeconds != nil {
		def.DurationSeconds = *raw.DurationSeconds
	}
	for _, rs := range raw.FaultSpecs {
		kind, err := types.ParseFaultKind(rs.Kind)
		if err != nil {
			return nil, err
		}
		spec := types.FaultSpec{
			Kind:            kind,
			Probability:     1.0,
			DurationMs:      rs.DurationMs,
			ErrorCode:       rs.ErrorCode,
			ErrorMessage:    rs.ErrorMessage,
			AffectedTargets: rs.AffectedTargets,
		}
		if rs.Probability != nil {
			spec.Probability = *rs.Probability
		}
		def.FaultSpecs = append(def.FaultSpecs, spec)
	}

	if err := validate.Struct(def); err != nil {
		return nil, errors.Wrap(err, "invalid experiment definition")
	}
	return &def, nil
}
