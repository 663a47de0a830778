package internal

// Handler declares routes on a router.
//
// Example:
//
//	type ApplyHandler struct {
//	    steps []string
//	}
//
//	func (h *ApplyHandler) Routes(r hofware.Router) {
//	    r.GET("/apply/{step}", h.show)
//	    r.POST("/apply/{step}", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc. It may inspect the request, short-circuit
// by returning an error or writing a response, or call next.
//
// Example:
//
//	func RequireStep(next hofware.HandlerFunc) hofware.HandlerFunc {
//	    return func(c hofware.Context) error {
//	        if c.Param("step") == "" {
//	            return c.Redirect(http.StatusFound, "/apply/start")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers and middleware.
type ErrorHandler func(Context, error) error
