package di

import (
	"reflect"
)

// BuildFunc builds a value of type T.
//
// The function receives the [Container] it is being resolved from so it can
// resolve its own dependencies with [Resolve]. It must return a fully
// constructed instance, or an error. Build errors are returned to the
// resolve caller unmodified.
type BuildFunc[T any] func(c *Container) (T, error)

// DisposeFunc releases an instance built by a provider.
type DisposeFunc[T any] func(val T) error

// Provider is an immutable descriptor of how to build, cache, and dispose
// a value of type T.
//
// The provider instance itself is its identity: a [Container] keys its cache
// and override table on the *Provider pointer, so two structurally identical
// providers are still distinct. Providers are typically declared as
// package-level variables and shared across containers.
//
// Available options:
//   - [WithScope] assigns a caching scope (default [Singleton]).
//   - [WithLabel] sets a diagnostic label used in cycle errors.
//   - [WithDisposeFunc] sets an explicit dispose function.
type Provider[T any] struct {
	build   BuildFunc[T]
	scope   *Scope
	label   string
	dispose func(val any) error
}

// New creates a [Provider] for type T with the given build function.
func New[T any](build BuildFunc[T], opts ...ProviderOption) *Provider[T] {
	p := &Provider[T]{
		build: build,
		scope: Singleton,
	}

	for _, opt := range opts {
		opt.applyProvider(p)
	}

	if p.label == "" {
		p.label = "Provider[" + reflect.TypeOf((*T)(nil)).Elem().String() + "]"
	}

	return p
}

// AnyProvider is a type-erased handle to a [Provider] of any type.
//
// It is implemented only by *[Provider] and exists so the container can hold
// providers of varying types in one table, and so non-generic operations like
// [Container.RemoveOverride] can accept any provider.
type AnyProvider interface {
	// Label returns the provider's diagnostic label.
	Label() string

	// Scope returns the scope the provider is assigned to.
	Scope() *Scope

	buildAny(c *Container) (any, error)
	disposeAny(val any) error
}

// Label returns the provider's diagnostic label.
//
// If none was set with [WithLabel], the label is "Provider[T]" with the
// type's name filled in.
func (p *Provider[T]) Label() string {
	return p.label
}

// Scope returns the scope the provider is assigned to.
func (p *Provider[T]) Scope() *Scope {
	return p.scope
}

func (p *Provider[T]) buildAny(c *Container) (any, error) {
	return p.build(c)
}

// disposeAny releases val using the provider's disposal contract:
// an explicit dispose function wins, otherwise val's own close capability
// is used, otherwise disposal is a no-op.
func (p *Provider[T]) disposeAny(val any) error {
	if p.dispose != nil {
		return p.dispose(val)
	}

	if closer := closerFor(val); closer != nil {
		return closer.Close()
	}

	return nil
}

func (p *Provider[T]) String() string {
	return p.label
}

var _ AnyProvider = (*Provider[any])(nil)

// ProviderOption is used to configure a new [Provider] when calling [New].
type ProviderOption interface {
	applyProvider(p providerConfig)
}

// providerConfig is the non-generic surface options are applied through.
type providerConfig interface {
	setScope(*Scope)
	setLabel(string)
	setDispose(func(val any) error)
}

func (p *Provider[T]) setScope(s *Scope) {
	p.scope = s
}

func (p *Provider[T]) setLabel(label string) {
	p.label = label
}

func (p *Provider[T]) setDispose(dispose func(val any) error) {
	p.dispose = dispose
}

type providerOption func(providerConfig)

func (o providerOption) applyProvider(p providerConfig) {
	o(p)
}

// WithScope assigns the scope governing how a provider's instances are
// cached. The default is [Singleton].
func WithScope(s *Scope) ProviderOption {
	return providerOption(func(p providerConfig) {
		p.setScope(s)
	})
}

// WithLabel sets the diagnostic label used for a provider in cycle errors
// and String output.
func WithLabel(label string) ProviderOption {
	return providerOption(func(p providerConfig) {
		p.setLabel(label)
	})
}

// WithDisposeFunc sets an explicit dispose function for a provider.
//
// When set, the function is called instead of the instance's own Close
// method, even if the instance implements [Closer].
//
// The type parameter must match the provider the option is applied to;
// a mismatch surfaces as an error when the instance is disposed.
func WithDisposeFunc[T any](dispose DisposeFunc[T]) ProviderOption {
	return providerOption(func(p providerConfig) {
		p.setDispose(func(val any) error {
			tv, ok := val.(T)
			if !ok {
				return errDisposeType(reflect.TypeOf((*T)(nil)).Elem(), val)
			}
			return dispose(tv)
		})
	})
}
