package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/hofware/internal"
	"github.com/dmitrymomot/hofware/pkg/deeptranslate"
	"github.com/dmitrymomot/hofware/pkg/view"
)

// Default not-found page text, used when no translation exists.
const (
	DefaultNotFoundTitle       = "Not found"
	DefaultNotFoundDescription = "There is nothing here"
)

// NotFoundConfig configures the NotFound handler.
type NotFoundConfig struct {
	Translate deeptranslate.Func
	View      func(view.NotFoundData) internal.Component
}

// NotFoundOption configures NotFoundConfig.
type NotFoundOption func(*NotFoundConfig)

// WithNotFoundTranslate sets the translate function used when the request
// has none installed.
func WithNotFoundTranslate(fn deeptranslate.Func) NotFoundOption {
	return func(cfg *NotFoundConfig) {
		cfg.Translate = fn
	}
}

// WithNotFoundView replaces the not-found page component.
func WithNotFoundView(fn func(view.NotFoundData) internal.Component) NotFoundOption {
	return func(cfg *NotFoundConfig) {
		cfg.View = fn
	}
}

// NotFound returns a handler rendering a translated 404 page.
// Use it with hofware.WithNotFoundHandler.
func NotFound(opts ...NotFoundOption) internal.HandlerFunc {
	cfg := &NotFoundConfig{
		View: func(d view.NotFoundData) internal.Component { return view.NotFound(d) },
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(c internal.Context) error {
		tr := GetTranslate(c)
		if tr == nil {
			tr = cfg.Translate
		}

		data := view.NotFoundData{
			Title:       DefaultNotFoundTitle,
			Description: DefaultNotFoundDescription,
		}
		if v := translated(tr, "errors.404.title"); v != "" {
			data.Title = v
		}
		if v := translated(tr, "errors.404.description"); v != "" {
			data.Description = v
		}

		c.LogWarn("Cannot find: " + c.Request().URL.String())
		return c.Render(http.StatusNotFound, cfg.View(data))
	}
}
