package types

import (
	"time"

	"github.com/invincible-jha/aumai-chaos/pkg/cerrors"
)

// FaultKind is the category of a simulated misbehavior
type FaultKind string

const (
	// FaultLatency blocks the unit of work for a configured duration
	FaultLatency FaultKind = "latency"
	// FaultError raises an application error carrying a code and message
	FaultError FaultKind = "error"
	// FaultTimeout raises a simulated timeout
	FaultTimeout FaultKind = "timeout"
	// FaultPartialFailure raises a generic runtime failure with a fixed tag
	FaultPartialFailure FaultKind = "partial_failure"
	// FaultResourceExhaustion raises a simulated resource exhaustion
	FaultResourceExhaustion FaultKind = "resource_exhaustion"
	// FaultDataCorruption raises a simulated data corruption
	FaultDataCorruption FaultKind = "data_corruption"
)

// Kinds returns all known fault kinds in declaration order
func Kinds() []FaultKind {
	return []FaultKind{
		FaultLatency,
		FaultError,
		FaultTimeout,
		FaultPartialFailure,
		FaultResourceExhaustion,
		FaultDataCorruption,
	}
}

// Valid reports whether the kind is a member of the closed enumeration
func (k FaultKind) Valid() bool {
	switch k {
	case FaultLatency, FaultError, FaultTimeout, FaultPartialFailure, FaultResourceExhaustion, FaultDataCorruption:
		return true
	}
	return false
}

// ParseFaultKind converts a raw string into a FaultKind
func ParseFaultKind(raw string) (FaultKind, error) {
	kind := FaultKind(raw)
	if !kind.Valid() {
		return "", cerrors.Configuration{Field: "kind", Reason: "unknown fault kind '" + raw + "'"}
	}
	return kind, nil
}

// FaultSpec is the declarative description of a single injectable fault.
// DurationMs and ErrorCode are pointers so that "not set" is distinguishable
// from zero; the required-field check happens at injection time, not here.
type FaultSpec struct {
	Kind            FaultKind `yaml:"kind" json:"kind" validate:"required"`
	Probability     float64   `yaml:"probability" json:"probability" validate:"gte=0,lte=1"`
	DurationMs      *int      `yaml:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	ErrorCode       *int      `yaml:"error_code,omitempty" json:"error_code,omitempty"`
	ErrorMessage    string    `yaml:"error_message,omitempty" json:"error_message,omitempty"`
	AffectedTargets []string  `yaml:"affected_targets,omitempty" json:"affected_targets,omitempty"`
}

// NewFaultSpec returns a spec of the given kind that always fires
func NewFaultSpec(kind FaultKind) FaultSpec {
	return FaultSpec{Kind: kind, Probability: 1.0}
}

// ExperimentDef is a named bundle of fault specs run as a unit
type ExperimentDef struct {
	ID              string      `yaml:"id,omitempty" json:"id,omitempty"`
	Name            string      `yaml:"name" json:"name" validate:"required"`
	Description     string      `yaml:"description,omitempty" json:"description,omitempty"`
	FaultSpecs      []FaultSpec `yaml:"faults" json:"faults" validate:"dive"`
	DurationSeconds int         `yaml:"duration_seconds" json:"duration_seconds" validate:"gt=0"`
	DefaultTargets  []string    `yaml:"targets,omitempty" json:"targets,omitempty"`
}

// RunStatus is the lifecycle state of a scheduled experiment
type RunStatus string

const (
	// StatusPending marked after registration, before the first run
	StatusPending RunStatus = "pending"
	// StatusRunning marked while the tick loop executes
	StatusRunning RunStatus = "running"
	// StatusCompleted marked when the tick loop reaches its deadline
	StatusCompleted RunStatus = "completed"
	// StatusAborted marked when an abort signal stops the tick loop
	StatusAborted RunStatus = "aborted"
)

// Observation is a single timestamped record captured during a run
type Observation struct {
	Timestamp time.Time              `json:"timestamp"`
	Target    string                 `json:"target"`
	Event     string                 `json:"event"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Summary aggregates the counters of one experiment run
type Summary struct {
	TotalFaultsFired int               `json:"total_faults_fired"`
	FaultsByKind     map[FaultKind]int `json:"faults_by_kind"`
	ErrorsByKind     map[FaultKind]int `json:"errors_by_kind"`
	DurationSeconds  float64           `json:"duration_seconds"`
}

// RunResult is the complete record of one experiment run
type RunResult struct {
	Definition   ExperimentDef `json:"experiment"`
	Status       RunStatus     `json:"status"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      *time.Time    `json:"end_time,omitempty"`
	Observations []Observation `json:"observations"`
	Summary      Summary       `json:"summary"`
}
