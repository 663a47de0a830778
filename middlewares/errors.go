package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/hofware/internal"
	"github.com/dmitrymomot/hofware/pkg/deeptranslate"
	"github.com/dmitrymomot/hofware/pkg/session"
	"github.com/dmitrymomot/hofware/pkg/view"
)

// Error codes understood by ErrorHandler.
const (
	CodeSessionTimeout = "SESSION_TIMEOUT"
	CodeNoCookies      = "NO_COOKIES"
	CodeUnhealthy      = "UNHEALTHY"
	CodeUnknown        = "UNKNOWN"
)

// PanicError represents a recovered panic.
type PanicError struct {
	Value any    // The panic value
	Stack []byte // Stack trace (nil if disabled)
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// IsPanicError returns true if the error is a PanicError.
func IsPanicError(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// AsPanicError extracts the PanicError from an error if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ErrorContent is the translated text shown on the error page.
type ErrorContent struct {
	Title   string
	Message string
}

// ErrorHandlerConfig configures the error handler.
type ErrorHandlerConfig struct {
	// Translate is used when the request has no deep-translate function.
	Translate deeptranslate.Func
	// View renders the error page.
	View func(view.ErrorData) internal.Component
	// Debug shows the raw error and stack trace instead of translated content.
	Debug bool
}

// ErrorHandlerOption configures ErrorHandlerConfig.
type ErrorHandlerOption func(*ErrorHandlerConfig)

// WithErrorTranslate sets the fallback translate function.
func WithErrorTranslate(fn deeptranslate.Func) ErrorHandlerOption {
	return func(cfg *ErrorHandlerConfig) {
		cfg.Translate = fn
	}
}

// WithErrorDebug toggles debug output on the error page.
func WithErrorDebug(debug bool) ErrorHandlerOption {
	return func(cfg *ErrorHandlerConfig) {
		cfg.Debug = debug
	}
}

// WithErrorView replaces the error page component.
func WithErrorView(fn func(view.ErrorData) internal.Component) ErrorHandlerOption {
	return func(cfg *ErrorHandlerConfig) {
		cfg.View = fn
	}
}

// ErrorHandler returns an error handler that logs the error and renders
// a translated error page.
//
// The page content is chosen by error code. HTTPError carries its code in
// ErrorCode; session.ErrExpired maps to SESSION_TIMEOUT; anything else is
// UNKNOWN.
func ErrorHandler(opts ...ErrorHandlerOption) internal.ErrorHandler {
	cfg := &ErrorHandlerConfig{
		View: func(d view.ErrorData) internal.Component { return view.Error(d) },
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(c internal.Context, err error) error {
		code, status := classify(err)

		tr := GetTranslate(c)
		if tr == nil {
			tr = cfg.Translate
		}

		content := BuildErrorContent(code, tr, internal.AsHTTPError(err))
		if code == CodeNoCookies {
			status = http.StatusForbidden
		}

		attrs := []any{"error", err, "code", code, "status", status, "path", c.Request().URL.Path}
		if status >= http.StatusInternalServerError {
			c.LogError("request failed", attrs...)
		} else {
			c.LogWarn("request failed", attrs...)
		}

		data := view.ErrorData{
			Title:     content.Title,
			Message:   content.Message,
			Code:      code,
			RequestID: requestIDFor(c, err),
			StartLink: startLink(c.Request().URL.Path),
			Status:    status,
			ShowStack: cfg.Debug,
		}
		if cfg.Debug {
			data.Message = err.Error()
			if pe, ok := AsPanicError(err); ok {
				data.Stack = string(pe.Stack)
			}
		}

		return c.Render(status, cfg.View(data))
	}
}

// BuildErrorContent resolves the page title and message for an error code.
// Lookups go from the code-specific keys to the explicit HTTPError text,
// then errors.default.*, and finally a text derived from the code.
// A nil translate function or a miss leaves a field to the next source.
func BuildErrorContent(code string, tr deeptranslate.Func, he *internal.HTTPError) ErrorContent {
	if code == "" {
		code = CodeUnknown
	}

	var content ErrorContent
	switch code {
	case CodeSessionTimeout:
		content.Title = translated(tr, "errors.session.title")
		content.Message = translated(tr, "errors.session.message")
	case CodeNoCookies:
		content.Title = translated(tr, "errors.cookies-required.title")
		content.Message = translated(tr, "errors.cookies-required.message")
	}

	if he != nil {
		if content.Title == "" {
			content.Title = he.Title
		}
		if content.Message == "" {
			content.Message = he.Message
		}
	}

	if content.Title == "" {
		content.Title = translated(tr, "errors.default.title")
	}
	if content.Message == "" {
		content.Message = translated(tr, "errors.default.message")
	}

	if content.Title == "" {
		content.Title = code + "_ERROR"
	}
	if content.Message == "" {
		content.Message = "There is a " + code + "_ERROR"
	}
	return content
}

func translated(tr deeptranslate.Func, key string) string {
	if tr == nil {
		return ""
	}
	if v := tr(key); v != key {
		return v
	}
	return ""
}

func classify(err error) (string, int) {
	if he := internal.AsHTTPError(err); he != nil {
		status := he.Code
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := he.ErrorCode
		if code == "" && errors.Is(err, session.ErrExpired) {
			code = CodeSessionTimeout
		}
		if code == "" {
			code = CodeUnknown
		}
		return code, status
	}
	if errors.Is(err, session.ErrExpired) {
		return CodeSessionTimeout, http.StatusUnauthorized
	}
	return CodeUnknown, http.StatusInternalServerError
}

func requestIDFor(c internal.Context, err error) string {
	if id := GetRequestID(c); id != "" {
		return id
	}
	if he := internal.AsHTTPError(err); he != nil {
		return he.RequestID
	}
	return ""
}

// startLink returns the first segment of path, or "" for the root.
func startLink(path string) string {
	path = strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(path, "/")
	return segment
}
