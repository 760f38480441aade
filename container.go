package di

import (
	"github.com/johnrutherford/di-lite/internal/errz"
)

// Container is a dependency-resolution container: a registry of lazily
// built, identity-keyed instances with scope-based lifetimes, test-time
// overrides, and deterministic teardown.
//
// A Container is an ordinary value with no ambient global; construct one per
// composition root (or per test) with [NewContainer] and release it with
// [Container.Dispose].
//
// A Container is not safe for concurrent use. Resolution is re-entrant:
// build functions resolve their own dependencies on the same call stack.
// Callers on multiple goroutines must serialize access externally.
type Container struct {
	cache     map[AnyProvider]any
	overrides map[AnyProvider]buildAnyFunc

	// stack and building track the providers in flight on the current
	// resolve call path. stack keeps order for cycle reporting, building
	// gives O(1) membership checks. Both are empty between top-level calls.
	stack    []AnyProvider
	building map[AnyProvider]struct{}
}

type buildAnyFunc func(c *Container) (any, error)

// NewContainer creates a new empty [Container].
func NewContainer() *Container {
	return &Container{
		cache:     make(map[AnyProvider]any),
		overrides: make(map[AnyProvider]buildAnyFunc),
		building:  make(map[AnyProvider]struct{}),
	}
}

// Resolve returns the instance for p from the container.
//
// An installed override's builder takes precedence over the provider's own.
// A [Transient]-scoped provider is rebuilt on every call and never cached.
// Any other scope returns the cached instance when present, and otherwise
// builds, caches, and returns a new one.
//
// Build functions may call Resolve recursively to obtain their dependencies.
// A chain that revisits a provider already being built fails with a
// [*CycleError] before invoking its builder. Errors returned by build
// functions propagate to the caller unmodified, and a failed build leaves
// the cache untouched.
func Resolve[T any](c *Container, p *Provider[T]) (T, error) {
	var val T

	anyVal, err := c.resolve(p)
	if err != nil {
		return val, err
	}

	if anyVal != nil {
		val = anyVal.(T)
	}
	return val, nil
}

// MustResolve returns the instance for p, panicking on error.
func MustResolve[T any](c *Container, p *Provider[T]) T {
	val, err := Resolve(c, p)
	if err != nil {
		panic(err)
	}
	return val
}

func (c *Container) resolve(p AnyProvider) (any, error) {
	build := p.buildAny
	if override, ok := c.overrides[p]; ok {
		build = override
	}

	// An override does not change the provider's declared scope.
	if p.Scope() == Transient {
		return c.build(p, build)
	}

	if val, ok := c.cache[p]; ok {
		return val, nil
	}

	val, err := c.build(p, build)
	if err != nil {
		return nil, err
	}

	c.cache[p] = val
	return val, nil
}

// build invokes the effective builder for p with cycle bookkeeping.
// p is popped again on every exit path so the stack only ever reflects
// providers genuinely in flight.
func (c *Container) build(p AnyProvider, build buildAnyFunc) (any, error) {
	if _, inFlight := c.building[p]; inFlight {
		return nil, newCycleError(c.stack, p)
	}

	c.stack = append(c.stack, p)
	c.building[p] = struct{}{}
	defer func() {
		c.stack = c.stack[:len(c.stack)-1]
		delete(c.building, p)
	}()

	return build(c)
}

// Override installs a substitute builder for p, for use in testing.
//
// If an instance is already cached for p it is disposed and evicted before
// the override takes effect, so no caller can observe a stale instance. The
// override persists until [Container.RemoveOverride] or [Container.Dispose].
//
// The provider's declared scope still governs the substitute: overriding a
// [Transient] provider does not make it cached, and overriding a [Singleton]
// caches the substitute instance as usual.
func Override[T any](c *Container, p *Provider[T], build BuildFunc[T]) error {
	err := c.evict(p)

	c.overrides[p] = func(c *Container) (any, error) {
		return build(c)
	}

	return errz.Wrapf(err, "di.Container.Override %s", p.Label())
}

// RemoveOverride removes the override installed for p, if any.
//
// An instance cached while the override was active is disposed and evicted,
// so the next resolve rebuilds with the original builder. Calling
// RemoveOverride without an installed override is a no-op.
func (c *Container) RemoveOverride(p AnyProvider) error {
	if _, ok := c.overrides[p]; !ok {
		return nil
	}
	delete(c.overrides, p)

	return errz.Wrapf(c.evict(p), "di.Container.RemoveOverride %s", p.Label())
}

// evict removes p's cached instance and disposes it. No-op on a cache miss.
func (c *Container) evict(p AnyProvider) error {
	val, ok := c.cache[p]
	if !ok {
		return nil
	}
	delete(c.cache, p)

	return p.disposeAny(val)
}

// ClearScope evicts and disposes every cached instance whose provider is
// assigned to s or to any descendant of s in the scope tree. Ancestors and
// unrelated sibling scopes are untouched. Matching is by scope identity.
//
// Disposal order between independent providers is unspecified. Dispose
// errors are joined and returned after the sweep completes.
func (c *Container) ClearScope(s *Scope) error {
	memo := make(map[*Scope]bool)

	var errs []error
	for p, val := range c.cache {
		if !p.Scope().hasAncestor(s, memo) {
			continue
		}

		delete(c.cache, p)
		if err := p.disposeAny(val); err != nil {
			errs = append(errs, err)
		}
	}

	return errz.Wrapf(errz.Join(errs...), "di.Container.ClearScope %s", s)
}

// Dispose disposes every cached instance and clears the cache and override
// table. Afterwards the container is logically empty: subsequent resolves
// rebuild from scratch using the original builders.
//
// Dispose is idempotent; disposing an empty container is a no-op.
func (c *Container) Dispose() error {
	var errs []error
	for p, val := range c.cache {
		if err := p.disposeAny(val); err != nil {
			errs = append(errs, err)
		}
	}

	clear(c.cache)
	clear(c.overrides)

	return errz.Wrap(errz.Join(errs...), "di.Container.Dispose")
}
