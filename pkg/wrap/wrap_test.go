package wrap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invincible-jha/aumai-chaos/pkg/cerrors"
	"github.com/invincible-jha/aumai-chaos/pkg/injector"
	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

func intPtr(v int) *int { return &v }

func TestWrapFiredFaultShortCircuits(t *testing.T) {
	calls := 0
	fn := Wrap(injector.New(), func() error {
		calls++
		return nil
	}, types.FaultSpec{
		Kind:         types.FaultError,
		Probability:  1.0,
		ErrorCode:    intPtr(503),
		ErrorMessage: "x",
	})

	err := fn()
	assert.EqualError(t, err, "[503] x")
	assert.Zero(t, calls, "the wrapped callable must not execute when a fault fires")
}

func TestWrapZeroProbabilityAlwaysRuns(t *testing.T) {
	calls := 0
	fn := Wrap(injector.New(), func() error {
		calls++
		return nil
	}, types.FaultSpec{Kind: types.FaultTimeout, Probability: 0.0})

	for i := 0; i < 100; i++ {
		assert.NoError(t, fn())
	}
	assert.Equal(t, 100, calls)
}

func TestWrapEvaluatesSpecsInOrder(t *testing.T) {
	// the first spec never fires, the second always does; the second's
	// failure is the one the caller sees
	fn := Wrap(injector.New(), func() error { return nil },
		types.FaultSpec{Kind: types.FaultTimeout, Probability: 0.0},
		types.FaultSpec{Kind: types.FaultResourceExhaustion, Probability: 1.0},
	)

	err := fn()
	assert.Equal(t, cerrors.ErrorTypeResourceExhaustion, cerrors.GetErrorType(err))
}

func TestWrapSurfacesConfigurationError(t *testing.T) {
	fn := Wrap(injector.New(), func() error { return nil },
		types.FaultSpec{Kind: types.FaultLatency, Probability: 1.0}, // no duration
	)

	err := fn()
	assert.Equal(t, cerrors.ErrorTypeConfiguration, cerrors.GetErrorType(err))
}

func TestChaosMonkeyNeverFiresAtZero(t *testing.T) {
	calls := 0
	fn := ChaosMonkey(injector.New(), func() error {
		calls++
		return nil
	}, types.FaultPartialFailure, 0.0)

	for i := 0; i < 50; i++ {
		assert.NoError(t, fn())
	}
	assert.Equal(t, 50, calls)
}

func TestChaosMonkeyAlwaysFiresAtOne(t *testing.T) {
	fn := ChaosMonkey(injector.New(), func() error { return nil }, types.FaultPartialFailure, 1.0)
	err := fn()
	assert.EqualError(t, err, "[partial_failure] Partial failure")
}
