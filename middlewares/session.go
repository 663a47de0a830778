package middlewares

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/hofware/internal"
	"github.com/dmitrymomot/hofware/pkg/session"
)

// SessionTimeout returns middleware that loads the session up front and
// fails with a 401 HTTPError coded SESSION_TIMEOUT when the presented
// session has expired. The stale cookie is cleared, so the next request
// starts a fresh session.
//
// Requires hofware.WithSession.
func SessionTimeout() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			_, err := c.Session()
			switch {
			case errors.Is(err, session.ErrExpired):
				return internal.NewHTTPError(http.StatusUnauthorized, "Session expired",
					internal.WithErrorCode(CodeSessionTimeout),
					internal.WithError(err),
				)
			case err != nil:
				return err
			}
			return next(c)
		}
	}
}
