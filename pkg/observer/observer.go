package observer

import (
	"sync"
	"time"

	"github.com/invincible-jha/aumai-chaos/pkg/cerrors"
	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

// Log collects timestamped observations during an experiment run. It is
// safe for concurrent use: Record, Snapshot and Clear are mutually
// exclusive, and observations are totally ordered by record time.
type Log struct {
	mu           sync.Mutex
	observations []types.Observation
	now          func() time.Time
}

// NewLog returns an empty observation log
func NewLog() *Log {
	return &Log{now: func() time.Time { return time.Now().UTC() }}
}

// Record appends an observation stamped with the current UTC time
func (l *Log) Record(target, event string, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observations = append(l.observations, types.Observation{
		Timestamp: l.now(),
		Target:    target,
		Event:     event,
		Details:   details,
	})
}

// Snapshot returns an independent copy of the observations recorded so far
func (l *Log) Snapshot() []types.Observation {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]types.Observation, len(l.observations))
	copy(out, l.observations)
	return out
}

// Clear discards all recorded observations
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observations = nil
}

// Scoped runs fn between a pair of observations. On entry it records a
// start event; on normal return an end event; when fn returns an error it
// records an error event carrying the failure's category and message and
// returns the error unchanged, never suppressing it.
//
// With an empty eventPrefix the events are named "start", "end" and
// "error"; otherwise "<prefix>_start" and so on.
func (l *Log) Scoped(target, eventPrefix string, fn func() error) error {
	prefix := ""
	if eventPrefix != "" {
		prefix = eventPrefix + "_"
	}
	l.Record(target, prefix+"start", nil)
	if err := fn(); err != nil {
		l.Record(target, prefix+"error", map[string]interface{}{
			"error_type": string(cerrors.GetErrorType(err)),
			"message":    err.Error(),
		})
		return err
	}
	l.Record(target, prefix+"end", nil)
	return nil
}
