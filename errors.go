package di

import (
	"errors"
	"reflect"
	"strings"

	"github.com/johnrutherford/di-lite/internal/errz"
)

// ErrCycleDetected is returned by [Resolve] when a provider's build chain
// revisits a provider already being built on the current call path.
//
// Use [errors.Is] to test for it; the returned error is a [*CycleError]
// carrying the offending chain.
var ErrCycleDetected = errors.New("resolution cycle detected")

// CycleError reports a circular provider build chain.
//
// Chain holds the diagnostic labels from the first occurrence of the
// repeated provider through the repeated attempt, inclusive. For a graph
// where A builds B and B builds A, the chain is [A, B, A].
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "resolution cycle detected: " + strings.Join(e.Chain, " -> ")
}

// Unwrap makes errors.Is(err, ErrCycleDetected) true for a *CycleError.
func (e *CycleError) Unwrap() error {
	return ErrCycleDetected
}

// newCycleError builds a [*CycleError] from the in-flight stack and the
// provider whose build was attempted again.
func newCycleError(stack []AnyProvider, repeat AnyProvider) *CycleError {
	first := 0
	for i, p := range stack {
		if p == repeat {
			first = i
			break
		}
	}

	chain := make([]string, 0, len(stack)-first+1)
	for _, p := range stack[first:] {
		chain = append(chain, p.Label())
	}
	chain = append(chain, repeat.Label())

	return &CycleError{Chain: chain}
}

func errDisposeType(want reflect.Type, val any) error {
	return errz.Errorf("dispose: instance type %T is not assignable to dispose func type %s", val, want)
}
