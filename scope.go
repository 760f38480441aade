package di

// Scope describes an instance-lifetime policy for a [Provider].
//
// A Scope may declare a parent, forming a tree of scopes. Clearing a scope
// with [Container.ClearScope] also clears every descendant scope, but never
// ancestors or siblings. Matching is by Scope identity, not by name.
//
// Scope trees must be finite and acyclic. The container does not validate
// this: a parent chain that loops back on itself will cause scope-clearing
// traversal to never terminate. Constructing such a chain is a caller error.
type Scope struct {
	name   string
	parent *Scope
}

// Built-in scopes. Both are roots with no parent.
var (
	// Singleton caches an instance on first resolve and returns it for every
	// subsequent resolve, until the scope is cleared or the container is
	// disposed.
	//
	// This is the default scope for providers.
	Singleton = NewScope("singleton")

	// Transient never caches. Every resolve invokes the builder and returns
	// a fresh instance.
	Transient = NewScope("transient")
)

// NewScope creates a new [Scope] with the given diagnostic name.
//
// Available options:
//   - [WithParent] attaches the scope to a parent scope.
func NewScope(name string, opts ...ScopeOption) *Scope {
	s := &Scope{name: name}
	for _, opt := range opts {
		opt.applyScope(s)
	}
	return s
}

// ScopeOption is used to configure a new [Scope] when calling [NewScope].
type ScopeOption interface {
	applyScope(*Scope)
}

// WithParent sets the parent of a new [Scope].
//
// The resulting parent chain must remain finite and acyclic.
func WithParent(parent *Scope) ScopeOption {
	return scopeOption(func(s *Scope) {
		s.parent = parent
	})
}

type scopeOption func(*Scope)

func (o scopeOption) applyScope(s *Scope) {
	o(s)
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

func (s *Scope) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

// hasAncestor reports whether target is s or an ancestor of s.
//
// memo caches the answer per scope encountered, since a clear sweep checks
// the same scopes once per cached provider.
func (s *Scope) hasAncestor(target *Scope, memo map[*Scope]bool) bool {
	var chain []*Scope
	for cur := s; cur != nil; cur = cur.parent {
		if found, ok := memo[cur]; ok {
			markChain(chain, found, memo)
			return found
		}
		if cur == target {
			memo[cur] = true
			markChain(chain, true, memo)
			return true
		}
		chain = append(chain, cur)
	}

	markChain(chain, false, memo)
	return false
}

func markChain(chain []*Scope, found bool, memo map[*Scope]bool) {
	for _, s := range chain {
		memo[s] = found
	}
}
