// Package middlewares provides the request middleware and handlers of a
// hofware form-flow application.
//
// # Deep translation
//
// DeepTranslate binds a deeptranslate.Resolver to the request's session, so
// conditional locale entries pick the branch matching the user's answers.
//
//	tree, _ := deeptranslate.ParseYAML(localesYAML)
//	resolver := deeptranslate.New(tree.Lookup)
//
//	app := hofware.New(
//	    hofware.WithSession(session.NewMemoryStore()),
//	    hofware.WithMiddleware(middlewares.DeepTranslate(resolver)),
//	)
//
// Handlers call c.T("field.label") or GetTranslate(c).
//
// # Cookie check
//
// CookieCheck sets a check cookie and redirects once to verify the browser
// accepts cookies. A browser that refuses it gets a NO_COOKIES error.
// Health-check paths are exempt.
//
// # Errors and not found
//
// ErrorHandler renders a translated error page chosen by error code
// (SESSION_TIMEOUT, NO_COOKIES, UNHEALTHY or UNKNOWN). NotFound renders the
// 404 page.
//
//	app := hofware.New(
//	    hofware.WithErrorHandler(middlewares.ErrorHandler(middlewares.WithErrorDebug(cfg.Debug))),
//	    hofware.WithNotFoundHandler(middlewares.NotFound()),
//	)
//
// # Health gate
//
// HealthGate checks upstream endpoints before each request and fails with
// UNHEALTHY when any of them is down.
//
//	middlewares.HealthGate([]health.Endpoint{
//	    {Name: "api", URL: "http://api.internal/readyz", Methods: []string{"POST"}},
//	})
//
// # Session timeout
//
// SessionTimeout turns an expired session into a SESSION_TIMEOUT error
// before the handler runs.
//
// # Request ID and Recover
//
// RequestID assigns a request ID, reusing an upstream X-Request-ID when
// present. Pair it with RequestIDExtractor to log it on every record:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// Recover converts panics into *PanicError for the error handler.
package middlewares
