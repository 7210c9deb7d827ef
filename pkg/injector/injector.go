package injector

import (
	"math/rand"
	"sync"
	"time"

	"github.com/invincible-jha/aumai-chaos/pkg/cerrors"
	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

const (
	defaultErrorMessage              = "Injected error"
	defaultTimeoutMessage            = "Simulated timeout injected by chaos framework"
	defaultPartialFailureMessage     = "Partial failure"
	defaultResourceExhaustionMessage = "Resource exhausted"
	defaultDataCorruptionMessage     = "Data corrupted"
)

// Injector dispatches and applies individual fault kinds. All injection
// methods are synchronous; a latency fault blocks the calling goroutine.
// The probability gate is evaluated once per Inject call, so a single spec
// produces at most one fault per invocation.
type Injector struct {
	mu    sync.Mutex
	rng   *rand.Rand
	sleep func(time.Duration)
}

// New returns an injector seeded from the wall clock
func New() *Injector {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns an injector with a deterministic random source,
// so that ShouldFire sequences are reproducible for a fixed seed
func NewWithSeed(seed int64) *Injector {
	return &Injector{
		rng:   rand.New(rand.NewSource(seed)),
		sleep: time.Sleep,
	}
}

// ShouldFire draws one sample from the uniform random source and reports
// whether the fault should fire. The boundary values bypass sampling:
// probability 0 never fires and probability 1 always fires.
func (i *Injector) ShouldFire(probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	i.mu.Lock()
	sample := i.rng.Float64()
	i.mu.Unlock()
	return sample < probability
}

// FireLatency blocks the calling goroutine for durationMs milliseconds
func (i *Injector) FireLatency(durationMs int) {
	i.sleep(time.Duration(durationMs) * time.Millisecond)
}

// FireError returns a simulated application error rendered as "[code] message"
func (i *Injector) FireError(code int, message string) error {
	return cerrors.Fault{Code: code, Message: message}
}

// FireTimeout returns a simulated timeout error
func (i *Injector) FireTimeout() error {
	return cerrors.TimeoutFault{Message: defaultTimeoutMessage}
}

// FirePartialFailure returns a runtime error representing a partial
// service degradation
func (i *Injector) FirePartialFailure(message string) error {
	if message == "" {
		message = defaultPartialFailureMessage
	}
	return cerrors.PartialFailure{Message: message}
}

// FireResourceExhaustion returns a simulated resource exhaustion error
func (i *Injector) FireResourceExhaustion(message string) error {
	if message == "" {
		message = defaultResourceExhaustionMessage
	}
	return cerrors.ResourceExhaustion{Message: message}
}

// FireDataCorruption returns a simulated data corruption error
func (i *Injector) FireDataCorruption(message string) error {
	if message == "" {
		message = defaultDataCorruptionMessage
	}
	return cerrors.DataCorruption{Message: message}
}

// Inject dispatches to the fire method matching spec.Kind. A missing
// required field for the kind is a configuration error regardless of
// probability; the probability gate is checked after, so a valid spec
// either does nothing or produces exactly one typed effect. A fired
// latency returns fired=true and no error; every other fired kind returns
// fired=true and the simulated fault.
func (i *Injector) Inject(spec types.FaultSpec) (bool, error) {
	if !spec.Kind.Valid() {
		return false, cerrors.Configuration{Field: "kind", Reason: "unknown fault kind '" + string(spec.Kind) + "'"}
	}
	if spec.Kind == types.FaultLatency && spec.DurationMs == nil {
		return false, cerrors.Configuration{Field: "duration_ms", Reason: "required for latency faults"}
	}
	if spec.Kind == types.FaultError && spec.ErrorCode == nil {
		return false, cerrors.Configuration{Field: "error_code", Reason: "required for error faults"}
	}
	if !i.ShouldFire(spec.Probability) {
		return false, nil
	}

	switch spec.Kind {
	case types.FaultLatency:
		i.FireLatency(*spec.DurationMs)
		return true, nil
	case types.FaultError:
		message := spec.ErrorMessage
		if message == "" {
			message = defaultErrorMessage
		}
		return true, i.FireError(*spec.ErrorCode, message)
	case types.FaultTimeout:
		return true, i.FireTimeout()
	case types.FaultPartialFailure:
		return true, i.FirePartialFailure(spec.ErrorMessage)
	case types.FaultResourceExhaustion:
		return true, i.FireResourceExhaustion(spec.ErrorMessage)
	case types.FaultDataCorruption:
		return true, i.FireDataCorruption(spec.ErrorMessage)
	}
	return false, cerrors.Configuration{Field: "kind", Reason: "unhandled fault kind '" + string(spec.Kind) + "'"}
}
