// Package internal provides the core types and implementation behind the
// hofware package.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/hofware" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: HTTP routing, middleware, health endpoints and graceful shutdown
//   - Context: request/response access, cookies, sessions and translation
//   - Router: the interface handlers use to declare routes
//   - Handler: types that declare routes on a Router
//   - HandlerFunc: route handlers that return errors
//   - Middleware: wraps handlers for cross-cutting concerns
//   - ErrorHandler: renders errors returned by handlers and middleware
//   - HTTPError: an error with status, code and user-facing message
//
// # One Context Per Request
//
// The first thing App does with a request is create its Context. Every
// global middleware, route middleware and the handler then share that single
// instance, so a session loaded by one middleware is not reloaded by the next
// and values stored with Set are visible downstream.
//
// Context embeds context.Context and can be passed wherever one is expected.
//
// # Sessions
//
// With WithSession, Context.Session loads the session named by the request
// cookie on first use. Values set during the request are written back to the
// store right before the first response byte. An expired session yields
// session.ErrExpired, which the error middleware reports as SESSION_TIMEOUT.
//
// # Translation
//
// Context.T calls the deeptranslate.Func stored under TranslateKey by the
// DeepTranslate middleware, and returns the key unchanged when there is none.
//
// # Errors
//
// Handlers return errors instead of writing error responses:
//
//	func (h *Apply) submit(c internal.Context) error {
//	    if c.Form("name") == "" {
//	        return internal.ErrBadRequest("name required", internal.WithErrorCode("VALIDATION"))
//	    }
//	    return c.Redirect(http.StatusSeeOther, "/apply/next")
//	}
//
// The configured ErrorHandler runs only if the response has not started.
// Without one, a plain status text response is written.
package internal
