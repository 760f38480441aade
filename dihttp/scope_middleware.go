package dihttp

import (
	"log/slog"
	"net/http"
	"sync"

	di "github.com/johnrutherford/di-lite"
	"github.com/johnrutherford/di-lite/dictx"
)

// RequestScopeMiddleware runs each request against the container with a
// per-request scope that is cleared after the request has been processed.
//
// The container is stored on the request context and can be accessed with
// [dictx.Container], [dictx.Resolve], or [dictx.MustResolve]. Providers
// assigned to scope (or any of its descendants) are built at most once per
// request and disposed when the request completes.
//
// The container is single-flow, so the middleware serializes requests: one
// request is handled at a time. Use one container per listener when request
// concurrency matters.
//
// Available options:
//   - [WithClearErrorHandler] sets the handler called when clearing the
//     request scope fails.
func RequestScopeMiddleware(c *di.Container, scope *di.Scope, opts ...ScopeMiddlewareOption) func(http.Handler) http.Handler {
	mw := &scopeMiddleware{
		c:            c,
		scope:        scope,
		clearHandler: defaultClearErrorHandler,
	}
	for _, opt := range opts {
		opt.applyScopeMiddleware(mw)
	}

	return func(next http.Handler) http.Handler {
		mw.next = next
		return mw
	}
}

// ClearErrorHandler handles errors from clearing the request scope after the
// request has completed.
//
// The default handler logs the error to [slog.Default].
type ClearErrorHandler = func(r *http.Request, err error)

func defaultClearErrorHandler(r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "error clearing HTTP request scope", "error", err)
}

type scopeMiddleware struct {
	c            *di.Container
	scope        *di.Scope
	clearHandler ClearErrorHandler
	next         http.Handler

	// The container's cache and override table are unsynchronized; requests
	// take turns.
	mu sync.Mutex
}

func (m *scopeMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	defer func() {
		err := m.c.ClearScope(m.scope)
		if err != nil && m.clearHandler != nil {
			m.clearHandler(r, err)
		}
	}()

	ctx := dictx.WithContainer(r.Context(), m.c)
	m.next.ServeHTTP(w, r.WithContext(ctx))
}
