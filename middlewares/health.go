package middlewares

import (
	"github.com/dmitrymomot/hofware/internal"
	"github.com/dmitrymomot/hofware/pkg/health"
)

// HealthGate returns middleware that checks the given endpoints before each
// request. Only endpoints matching the request method are checked, in
// parallel. Any failure aborts the request with a 503 HTTPError coded
// UNHEALTHY.
func HealthGate(endpoints []health.Endpoint, opts ...health.Option) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		if len(endpoints) == 0 {
			return next
		}
		return func(c internal.Context) error {
			if err := health.CheckEndpoints(c, endpoints, c.Request().Method, opts...); err != nil {
				return internal.ErrServiceUnavailable("Service unavailable",
					internal.WithErrorCode(CodeUnhealthy),
					internal.WithError(err),
				)
			}
			return next(c)
		}
	}
}
