package middlewares

import (
	"errors"

	"github.com/dmitrymomot/hofware/internal"
	"github.com/dmitrymomot/hofware/pkg/deeptranslate"
	"github.com/dmitrymomot/hofware/pkg/session"
)

// TranslateConfig configures the DeepTranslate middleware.
type TranslateConfig struct {
	// Model returns the values conditional translations select on.
	// A nil result resolves nested entries against their literal path.
	Model func(internal.Context) deeptranslate.SessionModel
}

// TranslateOption configures TranslateConfig.
type TranslateOption func(*TranslateConfig)

// WithTranslateModel sets the model source. The default reads the
// request's session.
func WithTranslateModel(fn func(internal.Context) deeptranslate.SessionModel) TranslateOption {
	return func(cfg *TranslateConfig) {
		cfg.Model = fn
	}
}

// DeepTranslate returns middleware that binds r to the request's model and
// installs the result as the request's translate function.
// Handlers reach it through Context.T or GetTranslate.
func DeepTranslate(r *deeptranslate.Resolver, opts ...TranslateOption) internal.Middleware {
	cfg := &TranslateConfig{
		Model: SessionModel,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Set(internal.TranslateKey{}, r.Bind(cfg.Model(c)))
			return next(c)
		}
	}
}

// SessionModel returns a translation model reading the request's session.
// Values are read on each lookup, so a session started later in the request
// is seen. A visitor without a usable session gets an empty model, so
// conditional entries fall back to their default. Returns nil only when
// sessions are not configured.
func SessionModel(c internal.Context) deeptranslate.SessionModel {
	if _, err := c.Session(); errors.Is(err, session.ErrNotConfigured) {
		return nil
	}
	return deeptranslate.ModelFunc(func(field string) (any, bool) {
		sess, err := c.Session()
		if err != nil || sess == nil {
			return nil, false
		}
		return sess.GetValue(field)
	})
}

// GetTranslate returns the translate function installed by DeepTranslate,
// or nil.
func GetTranslate(c internal.Context) deeptranslate.Func {
	return internal.ContextValue[deeptranslate.Func](c, internal.TranslateKey{})
}
