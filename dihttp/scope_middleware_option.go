package dihttp

// ScopeMiddlewareOption is an option used to configure the scope middleware
// when calling [RequestScopeMiddleware].
type ScopeMiddlewareOption interface {
	applyScopeMiddleware(*scopeMiddleware)
}

type scopeMiddlewareOption func(*scopeMiddleware)

func (o scopeMiddlewareOption) applyScopeMiddleware(m *scopeMiddleware) {
	o(m)
}

// WithClearErrorHandler sets the error handler for when there is an error
// clearing the request scope.
func WithClearErrorHandler(fn ClearErrorHandler) ScopeMiddlewareOption {
	return scopeMiddlewareOption(func(m *scopeMiddleware) {
		m.clearHandler = fn
	})
}
