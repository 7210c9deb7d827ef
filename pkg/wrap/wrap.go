// Package wrap binds fault specs to callables so that every invocation is
// preceded by injection, the per-call equivalent of a scheduled experiment.
package wrap

import (
	"github.com/invincible-jha/aumai-chaos/pkg/injector"
	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

// Func is a unit of work subjected to fault injection
type Func func() error

// Wrap returns a function that evaluates every spec in order before fn
// runs. If any injection raises, fn never executes and the failure goes to
// the caller. The injector and specs are bound once, not per call.
func Wrap(inj *injector.Injector, fn Func, specs ...types.FaultSpec) Func {
	return func() error {
		for _, spec := range specs {
			if _, err := inj.Inject(spec); err != nil {
				return err
			}
		}
		return fn()
	}
}

// ChaosMonkey wraps fn with a single fault spec of the given kind and
// probability, the quick form for sprinkling one fault over a call site
func ChaosMonkey(inj *injector.Injector, fn Func, kind types.FaultKind, probability float64) Func {
	spec := types.NewFaultSpec(kind)
	spec.Probability = probability
	return Wrap(inj, fn, spec)
}
