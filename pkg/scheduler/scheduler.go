package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/invincible-jha/aumai-chaos/pkg/cerrors"
	"github.com/invincible-jha/aumai-chaos/pkg/injector"
	"github.com/invincible-jha/aumai-chaos/pkg/log"
	"github.com/invincible-jha/aumai-chaos/pkg/metrics"
	"github.com/invincible-jha/aumai-chaos/pkg/observer"
	"github.com/invincible-jha/aumai-chaos/pkg/telemetry"
	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

// DefaultDurationSeconds applies when a definition is scheduled with no
// duration set
const DefaultDurationSeconds = 60

// abortSignal is the level-triggered per-experiment stop flag. Closing the
// channel makes the signal observable from any goroutine, mid-sleep
// included, and Set is idempotent.
type abortSignal struct {
	once sync.Once
	ch   chan struct{}
}

func newAbortSignal() *abortSignal {
	return &abortSignal{ch: make(chan struct{})}
}

func (a *abortSignal) Set() {
	a.once.Do(func() { close(a.ch) })
}

func (a *abortSignal) IsSet() bool {
	select {
	case <-a.ch:
		return true
	default:
		return false
	}
}

// Scheduler registers experiment definitions, runs them against a one
// second tick clock and keeps the latest result per experiment id. Run
// executes synchronously on the calling goroutine; concurrent experiments
// are obtained by calling Run for different ids from different goroutines.
// All registry access is safe for concurrent callers.
type Scheduler struct {
	mu          sync.Mutex
	definitions map[string]types.ExperimentDef
	results     map[string]*types.RunResult
	aborts      map[string]*abortSignal
	inFlight    map[string]bool
	injector    *injector.Injector
	collector   *metrics.Collector
}

// New returns a scheduler with a wall-clock seeded injector
func New() *Scheduler {
	return NewWithInjector(injector.New())
}

// NewWithInjector returns a scheduler driving the given injector, letting
// tests pin the random source
func NewWithInjector(inj *injector.Injector) *Scheduler {
	return &Scheduler{
		definitions: make(map[string]types.ExperimentDef),
		results:     make(map[string]*types.RunResult),
		aborts:      make(map[string]*abortSignal),
		inFlight:    make(map[string]bool),
		injector:    inj,
	}
}

// UseCollector attaches a metrics collector. Call before the first Run.
func (s *Scheduler) UseCollector(collector *metrics.Collector) {
	s.collector = collector
}

// Schedule registers the definition in pending state and returns its id.
// An empty id gets a freshly generated one; re-scheduling an existing id
// overwrites the prior definition and resets its abort flag and result.
func (s *Scheduler) Schedule(def types.ExperimentDef) (string, error) {
	if def.DurationSeconds < 0 {
		return "", cerrors.Configuration{Field: "duration_seconds", Reason: "must be greater than zero"}
	}
	if def.DurationSeconds == 0 {
		def.DurationSeconds = DefaultDurationSeconds
	}
	for _, spec := range def.FaultSpecs {
		if !spec.Kind.Valid() {
			return "", cerrors.Configuration{Field: "kind", Reason: "unknown fault kind '" + string(spec.Kind) + "'"}
		}
	}
	if def.ID == "" {
		def.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.definitions[def.ID] = def
	s.aborts[def.ID] = newAbortSignal()
	delete(s.results, def.ID)
	log.InfoWithValues("[Schedule]: Experiment registered", map[string]interface{}{
		"experimentID": def.ID,
		"name":         def.Name,
		"faults":       len(def.FaultSpecs),
	})
	return def.ID, nil
}

// Abort signals the experiment to stop at the next opportunity. The flag
// is level-triggered: setting it before Run starts is effective, and
// aborting twice is the same as aborting once.
func (s *Scheduler) Abort(experimentID string) error {
	s.mu.Lock()
	sig, ok := s.aborts[experimentID]
	s.mu.Unlock()
	if !ok {
		return cerrors.ExperimentNotFound{ID: experimentID}
	}
	sig.Set()
	log.Infof("[Abort]: Abort requested for experiment: %v", experimentID)
	return nil
}

// GetResult returns the latest stored result for the experiment, or nil
// when it has never been run
func (s *Scheduler) GetResult(experimentID string) *types.RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results[experimentID]
}

// Run executes the experiment's tick loop synchronously until its duration
// elapses or an abort is observed, then stores and returns the result.
// Simulated faults raised by the injector are caught, observed and counted;
// only a configuration error (caller misuse of a fault spec) or a not-found
// error propagates. Running the same id from two callers fails fast.
// Cancelling ctx behaves like Abort.
func (s *Scheduler) Run(ctx context.Context, experimentID string) (*types.RunResult, error) {
	s.mu.Lock()
	def, ok := s.definitions[experimentID]
	if !ok {
		s.mu.Unlock()
		return nil, cerrors.ExperimentNotFound{ID: experimentID}
	}
	if s.inFlight[experimentID] {
		s.mu.Unlock()
		return nil, cerrors.Generic{Phase: "Run", Reason: fmt.Sprintf("experiment '%s' is already running", experimentID)}
	}
	s.inFlight[experimentID] = true
	abort := s.aborts[experimentID]
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight[experimentID] = false
		s.mu.Unlock()
	}()

	_, span := telemetry.StartExperimentSpan(ctx, experimentID, def.Name)
	s.collector.RunStarted()
	defer s.collector.RunEnded()

	// Fresh log per run so concurrent experiments never share state
	obsLog := observer.NewLog()
	startTime := time.Now().UTC()
	started := time.Now()
	deadline := started.Add(time.Duration(def.DurationSeconds) * time.Second)

	s.storeResult(&types.RunResult{
		Definition:   def,
		Status:       types.StatusRunning,
		StartTime:    startTime,
		Observations: []types.Observation{},
	})

	log.InfoWithValues("[Chaos]: Starting experiment run", map[string]interface{}{
		"experimentID": experimentID,
		"name":         def.Name,
		"duration":     def.DurationSeconds,
	})
	obsLog.Record("scheduler", "experiment_started", map[string]interface{}{
		"experiment_id": experimentID,
		"name":          def.Name,
	})

	faultsByKind := make(map[types.FaultKind]int)
	errorsByKind := make(map[types.FaultKind]int)
	var configErr error
	aborted := false

loop:
	for time.Now().Before(deadline) {
		if abort.IsSet() || ctx.Err() != nil {
			aborted = true
			break
		}

		for _, spec := range def.FaultSpecs {
			for _, target := range targetsFor(spec, def) {
				fired, err := s.injector.Inject(spec)
				switch {
				case err != nil && cerrors.GetErrorType(err) == cerrors.ErrorTypeConfiguration:
					obsLog.Record(target, string(spec.Kind)+"_config_error", map[string]interface{}{
						"message": err.Error(),
					})
					log.Errorf("[Chaos]: Invalid fault spec in experiment %v, err: %v", experimentID, err)
					configErr = err
					aborted = true
					break loop
				case err != nil:
					faultsByKind[spec.Kind]++
					errorsByKind[spec.Kind]++
					s.collector.FaultFired(spec.Kind)
					s.collector.FaultErrored(spec.Kind)
					obsLog.Record(target, string(spec.Kind)+"_exception", map[string]interface{}{
						"exception": err.Error(),
					})
				case fired:
					// A fired latency raises nothing but still counts as fired
					faultsByKind[spec.Kind]++
					s.collector.FaultFired(spec.Kind)
					obsLog.Record(target, string(spec.Kind)+"_injected", map[string]interface{}{
						"probability": spec.Probability,
					})
				}
			}
		}

		if !sleepTick(ctx, abort, deadline) {
			aborted = true
			break
		}
	}

	endTime := time.Now().UTC()
	status := types.StatusCompleted
	if aborted {
		status = types.StatusAborted
	}
	obsLog.Record("scheduler", "experiment_ended", map[string]interface{}{
		"status": string(status),
	})
	log.Infof("[Chaos]: Experiment %v ended with status: %v", experimentID, status)

	total := 0
	for _, count := range faultsByKind {
		total += count
	}
	result := &types.RunResult{
		Definition:   def,
		Status:       status,
		StartTime:    startTime,
		EndTime:      &endTime,
		Observations: obsLog.Snapshot(),
		Summary: types.Summary{
			TotalFaultsFired: total,
			FaultsByKind:     faultsByKind,
			ErrorsByKind:     errorsByKind,
			DurationSeconds:  time.Since(started).Seconds(),
		},
	}
	s.storeResult(result)
	telemetry.EndExperimentSpan(span, string(status), total)

	return result, configErr
}

func (s *Scheduler) storeResult(result *types.RunResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.Definition.ID] = result
}

// targetsFor resolves the targets one spec is injected against: the spec's
// own targets, else the experiment's defaults, else the wildcard target
func targetsFor(spec types.FaultSpec, def types.ExperimentDef) []string {
	if len(spec.AffectedTargets) > 0 {
		return spec.AffectedTargets
	}
	if len(def.DefaultTargets) > 0 {
		return def.DefaultTargets
	}
	return []string{"*"}
}

// sleepTick waits for the next one second tick boundary, capped at the
// deadline. It returns false when the wait ended because of an abort or
// context cancellation rather than the timer.
func sleepTick(ctx context.Context, abort *abortSignal, deadline time.Time) bool {
	wait := time.Second
	if remaining := time.Until(deadline); remaining < wait {
		wait = remaining
	}
	if wait <= 0 {
		return true
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-abort.ch:
		return false
	case <-ctx.Done():
		return false
	}
}
