package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/hofware/internal"
)

// DefaultCookieCheckName names both the check cookie and the query
// parameter added to the redirect.
const DefaultCookieCheckName = "hof-cookie-check"

// DefaultHealthcheckURLs are never subject to the cookie check.
var DefaultHealthcheckURLs = []string{"/healthz", "/livez", "/readyz"}

// CookieCheckConfig configures the CookieCheck middleware.
type CookieCheckConfig struct {
	CookieName      string
	ParamName       string
	HealthcheckURLs []string
}

// CookieCheckOption configures CookieCheckConfig.
type CookieCheckOption func(*CookieCheckConfig)

// WithCookieCheckName sets the check cookie name.
func WithCookieCheckName(name string) CookieCheckOption {
	return func(cfg *CookieCheckConfig) {
		cfg.CookieName = name
	}
}

// WithCookieCheckParam sets the query parameter marking a check redirect.
func WithCookieCheckParam(name string) CookieCheckOption {
	return func(cfg *CookieCheckConfig) {
		cfg.ParamName = name
	}
}

// WithHealthcheckURLs replaces the paths exempt from the check.
// A request is exempt when its path contains any of them.
func WithHealthcheckURLs(urls ...string) CookieCheckOption {
	return func(cfg *CookieCheckConfig) {
		cfg.HealthcheckURLs = urls
	}
}

// CookieCheck returns middleware that makes sure the browser accepts cookies.
//
// A request carrying any cookie passes. Otherwise the middleware sets a
// check cookie and redirects back to the same URL with the check parameter
// added. When that redirect arrives still without cookies, the request
// fails with a 403 HTTPError coded NO_COOKIES.
func CookieCheck(opts ...CookieCheckOption) internal.Middleware {
	cfg := &CookieCheckConfig{
		CookieName:      DefaultCookieCheckName,
		ParamName:       DefaultCookieCheckName,
		HealthcheckURLs: DefaultHealthcheckURLs,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if c.HasCookies() || isHealthcheck(c.Request().URL.Path, cfg.HealthcheckURLs) {
				return next(c)
			}

			if c.HasQuery(cfg.ParamName) {
				return internal.ErrForbidden("Cookies required", internal.WithErrorCode(CodeNoCookies))
			}

			c.SetCookie(cfg.CookieName, "1", 0)
			return c.Redirect(http.StatusFound, withParam(c.Request().URL, cfg.ParamName))
		}
	}
}

func isHealthcheck(path string, urls []string) bool {
	for _, u := range urls {
		if u != "" && strings.Contains(path, u) {
			return true
		}
	}
	return false
}

// withParam returns the request URI of u with a bare query parameter appended.
func withParam(u *url.URL, param string) string {
	target := *u
	if target.RawQuery != "" {
		target.RawQuery += "&"
	}
	target.RawQuery += url.QueryEscape(param)
	return target.RequestURI()
}
