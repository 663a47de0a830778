package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hofware/internal"
	"github.com/dmitrymomot/hofware/pkg/deeptranslate"
)

const testLocales = `
errors:
  default:
    title: Something went wrong
    message: Please try again later
  session:
    title: Your session has timed out
    message: Start your application again
  cookies-required:
    title: Cookies are turned off
    message: Turn on cookies to use this service
  404:
    title: Page not found
    description: Check the address and try again
field:
  label:
    kind:
      business: Business name
      person: Full name
    default: Name
`

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func newResolver(t *testing.T) *deeptranslate.Resolver {
	t.Helper()
	tree, err := deeptranslate.ParseYAML([]byte(testLocales))
	require.NoError(t, err)
	return deeptranslate.New(tree.Lookup)
}

func request(t *testing.T, app http.Handler, method, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	app.ServeHTTP(w, r)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func ok(c internal.Context) error {
	return c.String(http.StatusOK, "ok")
}
