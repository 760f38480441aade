// Package dictx carries a [di.Container] on a [context.Context] so request
// handlers and other context-driven code can resolve providers without
// threading the container through every call.
package dictx

import (
	"context"

	di "github.com/johnrutherford/di-lite"
	"github.com/johnrutherford/di-lite/internal/errz"
)

type containerContextKey struct{}

// WithContainer returns a new [context.Context] that carries c.
func WithContainer(ctx context.Context, c *di.Container) context.Context {
	return context.WithValue(ctx, containerContextKey{}, c)
}

// Container returns the [di.Container] stored on the context, or nil if
// none is present.
func Container(ctx context.Context) *di.Container {
	if c, ok := ctx.Value(containerContextKey{}).(*di.Container); ok {
		return c
	}
	return nil
}

// Resolve resolves p from the [di.Container] stored on the context.
func Resolve[T any](ctx context.Context, p *di.Provider[T]) (T, error) {
	var val T

	c := Container(ctx)
	if c == nil {
		return val, errz.Errorf("resolve %s from context: container not found on context", p.Label())
	}

	return di.Resolve(c, p)
}

// MustResolve resolves p from the [di.Container] stored on the context,
// panicking on error.
func MustResolve[T any](ctx context.Context, p *di.Provider[T]) T {
	val, err := Resolve(ctx, p)
	if err != nil {
		panic(err)
	}
	return val
}
