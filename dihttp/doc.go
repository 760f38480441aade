/*
Package dihttp provides HTTP middleware that gives each request a cleared
[di.Scope] on a shared [di.Container].

Example:

	package main

	import (
		"net/http"

		di "github.com/johnrutherford/di-lite"
		"github.com/johnrutherford/di-lite/dictx"
		"github.com/johnrutherford/di-lite/dihttp"
	)

	var (
		RequestScope = di.NewScope("request")

		SessionProvider = di.New(NewSession, di.WithScope(RequestScope))
	)

	func main() {
		c := di.NewContainer()
		defer c.Dispose()

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := dictx.MustResolve(r.Context(), SessionProvider)
			session.Handle(w, r)
		})

		middleware := dihttp.RequestScopeMiddleware(c, RequestScope)

		http.Handle("/", middleware(handler))
		http.ListenAndServe(":8080", nil)
	}
*/
package dihttp
