// Package hofware provides a small framework for multi-step form services
// in Go: a chi-based application with sessions, conditional translations
// and the middleware a public form journey needs.
//
// # Quick Start
//
// Create an application with hofware.New, configure it with options and
// call Run to start the HTTP server:
//
//	tree := deeptranslate.MustParseYAML(locales)
//	resolver := deeptranslate.New(tree.Lookup)
//
//	app := hofware.New(
//	    hofware.WithLogger(log),
//	    hofware.WithSession(session.NewMemoryStore()),
//	    hofware.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.CookieCheck(),
//	        middlewares.SessionTimeout(),
//	        middlewares.DeepTranslate(resolver),
//	    ),
//	    hofware.WithErrorHandler(middlewares.ErrorHandler()),
//	    hofware.WithNotFoundHandler(middlewares.NotFound()),
//	    hofware.WithHealthChecks(),
//	    hofware.WithHandlers(forms.New()),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type Forms struct{}
//
//	func (h *Forms) Routes(r hofware.Router) {
//	    r.GET("/apply", h.show)
//	    r.POST("/apply", h.submit)
//	}
//
//	func (h *Forms) submit(c hofware.Context) error {
//	    if err := c.SetSessionValue("applicant-type", c.Form("applicant-type")); err != nil {
//	        return err
//	    }
//	    return c.Redirect(http.StatusSeeOther, "/apply/details")
//	}
//
// # Conditional translations
//
// Locale entries can branch on session values. With the session holding
// applicant-type=business, c.T("details.label") resolves to "Business name":
//
//	details:
//	  label:
//	    applicant-type:
//	      business: Business name
//	      person: Full name
//	    default: Name
//
// See package deeptranslate for the resolution rules.
//
// # Errors
//
// Return an error from a handler to trigger the error handler. HTTPError
// carries the status and an error code that selects the page content:
//
//	return hofware.NewHTTPError(http.StatusForbidden, "Cookies required",
//	    hofware.WithErrorCode("NO_COOKIES"))
//
// # Health
//
// WithHealthChecks mounts /livez and /readyz. Readiness checks run in
// parallel:
//
//	hofware.WithHealthChecks(
//	    hofware.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
package hofware
