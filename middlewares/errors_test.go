package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hofware/internal"
	"github.com/dmitrymomot/hofware/middlewares"
	"github.com/dmitrymomot/hofware/pkg/deeptranslate"
	"github.com/dmitrymomot/hofware/pkg/session"
	"github.com/dmitrymomot/hofware/pkg/view"
)

func errorApp(t *testing.T, errFn func(c internal.Context) error, opts ...middlewares.ErrorHandlerOption) *internal.App {
	t.Helper()
	return internal.New(
		internal.WithErrorHandler(middlewares.ErrorHandler(opts...)),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/*", errFn)
		})),
	)
}

func TestErrorHandler_Content(t *testing.T) {
	t.Parallel()

	translate := newResolver(t).Bind(nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
		wantBody   string
	}{
		{
			name:       "session timeout",
			err:        internal.NewHTTPError(http.StatusUnauthorized, "", internal.WithErrorCode(middlewares.CodeSessionTimeout)),
			wantStatus: http.StatusUnauthorized,
			wantTitle:  "Your session has timed out",
			wantBody:   "Start your application again",
		},
		{
			name:       "bare expired session error",
			err:        session.ErrExpired,
			wantStatus: http.StatusUnauthorized,
			wantTitle:  "Your session has timed out",
			wantBody:   "Start your application again",
		},
		{
			name:       "cookies required forces 403",
			err:        internal.NewHTTPError(http.StatusInternalServerError, "", internal.WithErrorCode(middlewares.CodeNoCookies)),
			wantStatus: http.StatusForbidden,
			wantTitle:  "Cookies are turned off",
			wantBody:   "Turn on cookies to use this service",
		},
		{
			name:       "plain error uses defaults",
			err:        errors.New("database down"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Something went wrong",
			wantBody:   "Please try again later",
		},
		{
			name:       "explicit HTTPError text wins over defaults",
			err:        internal.ErrBadRequest("Enter a name", internal.WithTitle("Check your answers")),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Check your answers",
			wantBody:   "Enter a name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := errorApp(t, func(internal.Context) error { return tt.err },
				middlewares.WithErrorTranslate(translate))

			w := request(t, app, http.MethodGet, "/apply/step")
			require.Equal(t, tt.wantStatus, w.Code)
			require.Contains(t, w.Body.String(), "<title>"+tt.wantTitle+"</title>")
			require.Contains(t, w.Body.String(), tt.wantBody)
			require.Contains(t, w.Body.String(), `href="/apply"`)
		})
	}
}

func TestErrorHandler_UntranslatedFallback(t *testing.T) {
	t.Parallel()

	app := errorApp(t, func(internal.Context) error {
		return internal.NewHTTPError(http.StatusServiceUnavailable, "", internal.WithErrorCode(middlewares.CodeUnhealthy))
	})

	w := request(t, app, http.MethodGet, "/")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "<h1>UNHEALTHY_ERROR</h1>")
	require.Contains(t, w.Body.String(), "There is a UNHEALTHY_ERROR")
	require.Contains(t, w.Body.String(), `href="/"`)
}

func TestErrorHandler_RequestTranslateWins(t *testing.T) {
	t.Parallel()

	fallback := deeptranslate.Func(func(key string) string { return "fallback " + key })

	app := internal.New(
		internal.WithMiddleware(middlewares.DeepTranslate(newResolver(t))),
		internal.WithErrorHandler(middlewares.ErrorHandler(middlewares.WithErrorTranslate(fallback))),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(internal.Context) error { return errors.New("boom") })
		})),
	)

	w := request(t, app, http.MethodGet, "/")
	require.Contains(t, w.Body.String(), "Something went wrong")
	require.NotContains(t, w.Body.String(), "fallback")
}

func TestErrorHandler_Debug(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(middlewares.Recover()),
		internal.WithErrorHandler(middlewares.ErrorHandler(middlewares.WithErrorDebug(true))),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(internal.Context) error { panic("kaboom") })
		})),
	)

	w := request(t, app, http.MethodGet, "/")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "panic: kaboom")
	require.Contains(t, w.Body.String(), "<pre>")
}

func TestErrorHandler_CustomView(t *testing.T) {
	t.Parallel()

	var got view.ErrorData
	app := internal.New(
		internal.WithMiddleware(middlewares.RequestID()),
		internal.WithErrorHandler(middlewares.ErrorHandler(
			middlewares.WithErrorView(func(d view.ErrorData) internal.Component {
				got = d
				return view.Error(d)
			}),
		)),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/*", func(internal.Context) error { return errors.New("boom") })
		})),
	)

	r := request(t, app, http.MethodGet, "/forms/contact/details")
	require.Equal(t, http.StatusInternalServerError, r.Code)
	require.Equal(t, middlewares.CodeUnknown, got.Code)
	require.Equal(t, "forms", got.StartLink)
	require.Equal(t, r.Header().Get("X-Request-ID"), got.RequestID)
	require.False(t, got.ShowStack)
}

func TestErrorHandler_SessionTimeoutEndToEnd(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	require.NoError(t, store.Create(context.Background(),
		session.New("id", "stale", time.Now().Add(-time.Minute))))

	app := internal.New(
		internal.WithSession(store, internal.WithSessionCookieName("sid")),
		internal.WithMiddleware(
			middlewares.DeepTranslate(newResolver(t)),
			middlewares.SessionTimeout(),
		),
		internal.WithErrorHandler(middlewares.ErrorHandler()),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/*", ok)
		})),
	)

	w := request(t, app, http.MethodGet, "/apply", &http.Cookie{Name: "sid", Value: "stale"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Your session has timed out")

	sid := findCookie(w, "sid")
	require.NotNil(t, sid)
	require.Negative(t, sid.MaxAge)
}

func TestBuildErrorContent(t *testing.T) {
	t.Parallel()

	t.Run("empty code is unknown", func(t *testing.T) {
		t.Parallel()
		got := middlewares.BuildErrorContent("", nil, nil)
		require.Equal(t, middlewares.ErrorContent{
			Title:   "UNKNOWN_ERROR",
			Message: "There is a UNKNOWN_ERROR",
		}, got)
	})

	t.Run("miss counts as untranslated", func(t *testing.T) {
		t.Parallel()
		identity := deeptranslate.Func(func(key string) string { return key })
		got := middlewares.BuildErrorContent(middlewares.CodeSessionTimeout, identity, nil)
		require.Equal(t, "SESSION_TIMEOUT_ERROR", got.Title)
	})

	t.Run("partial translation", func(t *testing.T) {
		t.Parallel()
		tr := deeptranslate.Func(func(key string) string {
			if key == "errors.session.title" {
				return "Timed out"
			}
			return key
		})
		got := middlewares.BuildErrorContent(middlewares.CodeSessionTimeout, tr, nil)
		require.Equal(t, "Timed out", got.Title)
		require.Equal(t, "There is a SESSION_TIMEOUT_ERROR", got.Message)
	})
}
