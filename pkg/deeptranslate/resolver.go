package deeptranslate

import "errors"

// Default resolver settings.
const (
	DefaultMaxDepth  = 32
	DefaultSeparator = ","
)

// LookupFunc is a flat translation lookup.
// It returns the node stored under a fully qualified key, or false on a miss.
type LookupFunc func(key string) (Node, bool)

// Func resolves a key for a single request.
type Func func(key string) string

// Resolver walks nested locale branches, selecting conditional branches
// by the current values of a SessionModel.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	lookup   LookupFunc
	sep      string
	maxDepth int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth limits how deep resolution may recurse before giving up with ErrMaxDepth.
// Default: 32.
func WithMaxDepth(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxDepth = n
		}
	}
}

// WithSeparator sets the string used to join multi-value fields into a single selector.
// Default: ",".
func WithSeparator(sep string) Option {
	return func(r *Resolver) {
		if sep != "" {
			r.sep = sep
		}
	}
}

// New creates a Resolver on top of a flat lookup function.
// A nil lookup behaves like the identity translator: every key misses.
func New(lookup LookupFunc, opts ...Option) *Resolver {
	if lookup == nil {
		lookup = func(string) (Node, bool) { return nil, false }
	}

	r := &Resolver{
		lookup:   lookup,
		sep:      DefaultSeparator,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromTranslateFunc adapts a translator that follows the miss-sentinel convention:
// it returns a string, a Branch, or the key itself when nothing is found.
// A translation that legitimately equals its own key is indistinguishable from a miss.
//
// Any other result type is a miss. That includes map[string]any, the shape
// encoding/json produces for nested locales: Go maps carry no order, and
// conditional entries are chosen by declaration order. Convert such
// translators to return a Branch, or load the locales with ParseJSON.
func FromTranslateFunc(fn func(key string) any) LookupFunc {
	if fn == nil {
		return nil
	}
	return func(key string) (Node, bool) {
		switch v := fn(key).(type) {
		case string:
			if v == key {
				return nil, false
			}
			return Leaf(v), true
		case Leaf:
			if string(v) == key {
				return nil, false
			}
			return v, true
		case Branch:
			return v, true
		default:
			return nil, false
		}
	}
}

// Resolve returns the translation for key, or key itself when nothing matches.
// model may be nil, which disables conditional branch selection.
func (r *Resolver) Resolve(model SessionModel, key string) string {
	v, err := r.Lookup(model, key)
	if err != nil {
		return key
	}
	return v
}

// Lookup is like Resolve but reports why a key could not be resolved.
// It returns ErrNotFound on a miss and ErrMaxDepth when the recursion guard trips.
func (r *Resolver) Lookup(model SessionModel, key string) (string, error) {
	return r.resolve(model, key, 0)
}

// Bind returns a Func resolving keys against a fixed model.
func (r *Resolver) Bind(model SessionModel) Func {
	return func(key string) string {
		return r.Resolve(model, key)
	}
}

func (r *Resolver) resolve(model SessionModel, key string, depth int) (string, error) {
	if depth > r.maxDepth {
		return "", ErrMaxDepth
	}

	node, ok := r.lookup(key)
	if !ok {
		return "", ErrNotFound
	}

	branch, ok := node.(Branch)
	if !ok {
		leaf, _ := node.(Leaf)
		return string(leaf), nil
	}

	// Walk from the last declared entry to the first; every hit overwrites the
	// result, so the first declared matching entry has the final say.
	var (
		result string
		found  bool
	)
	for i := len(branch) - 1; i >= 0; i-- {
		entry := branch[i]
		candidate := key + "." + entry.Key

		if _, nested := entry.Node.(Branch); nested && model != nil {
			sel, ok := selector(model, entry.Key, r.sep)
			if !ok {
				continue
			}
			candidate += "." + sel
		}

		v, err := r.resolve(model, candidate, depth+1)
		if errors.Is(err, ErrMaxDepth) {
			return "", err
		}
		if err != nil {
			continue
		}
		result, found = v, true
	}

	if !found {
		return "", ErrNotFound
	}
	return result, nil
}
