package deeptranslate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hofware/pkg/deeptranslate"
)

const testLocales = `
a: a shallow value
b:
  c:
    d: a deep value
a-field:
  label:
    dependent-field:
      first-value: Label to show if dependent-field is first-value
      second-value: Label to show if dependent-field is second-value
    default: This is the default label
another-field:
  header:
    dependent-field-1:
      correct-value:
        dependent-field-2:
          correct-value: This should be looked up
    default: This is another default label
multi-field:
  hint:
    choices:
      "value-1,value-2": Both values selected
      value-1: Only the first value selected
    default: Nothing selected
f:
  label:
    dep:
      v1: L1
      v2: L2
    default: LD
no-default:
  label:
    dep:
      v1: only v1
`

func newResolver(t *testing.T, opts ...deeptranslate.Option) *deeptranslate.Resolver {
	t.Helper()
	tree, err := deeptranslate.ParseYAML([]byte(testLocales))
	require.NoError(t, err)
	return deeptranslate.New(tree.Lookup, opts...)
}

func TestResolver_PassThrough(t *testing.T) {
	t.Parallel()

	r := newResolver(t)

	t.Run("shallow value", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "a shallow value", r.Resolve(nil, "a"))
	})

	t.Run("deep value", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "a deep value", r.Resolve(nil, "b.c.d"))
	})

	t.Run("deep value through a bound func", func(t *testing.T) {
		t.Parallel()
		tr := r.Bind(deeptranslate.Values{})
		require.Equal(t, "a shallow value", tr("a"))
		require.Equal(t, "a deep value", tr("b.c.d"))
	})
}

func TestResolver_Conditional(t *testing.T) {
	t.Parallel()

	r := newResolver(t)

	tests := []struct {
		name  string
		model deeptranslate.Values
		key   string
		want  string
	}{
		{
			name:  "default when condition is not met",
			model: deeptranslate.Values{},
			key:   "a-field.label",
			want:  "This is the default label",
		},
		{
			name:  "first value selected",
			model: deeptranslate.Values{"dependent-field": "first-value"},
			key:   "a-field.label",
			want:  "Label to show if dependent-field is first-value",
		},
		{
			name:  "second value selected",
			model: deeptranslate.Values{"dependent-field": "second-value"},
			key:   "a-field.label",
			want:  "Label to show if dependent-field is second-value",
		},
		{
			name:  "unrecognised value falls back to default",
			model: deeptranslate.Values{"dependent-field": "third-value"},
			key:   "a-field.label",
			want:  "This is the default label",
		},
		{
			name: "nested conditions both met",
			model: deeptranslate.Values{
				"dependent-field-1": "correct-value",
				"dependent-field-2": "correct-value",
			},
			key:  "another-field.header",
			want: "This should be looked up",
		},
		{
			name:  "nested conditions with inner condition unmet",
			model: deeptranslate.Values{"dependent-field-1": "correct-value"},
			key:   "another-field.header",
			want:  "This is another default label",
		},
		{
			name: "nested conditions with outer condition unmet",
			model: deeptranslate.Values{
				"dependent-field-1": "wrong-value",
				"dependent-field-2": "correct-value",
			},
			key:  "another-field.header",
			want: "This is another default label",
		},
		{
			name:  "concrete scenario",
			model: deeptranslate.Values{"dep": "v1"},
			key:   "f.label",
			want:  "L1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, r.Resolve(tt.model, tt.key))
		})
	}
}

func TestResolver_MultiValue(t *testing.T) {
	t.Parallel()

	r := newResolver(t)

	t.Run("ordered combination matches", func(t *testing.T) {
		t.Parallel()
		m := deeptranslate.Values{"choices": []string{"value-1", "value-2"}}
		require.Equal(t, "Both values selected", r.Resolve(m, "multi-field.hint"))
	})

	t.Run("reversed combination does not match", func(t *testing.T) {
		t.Parallel()
		m := deeptranslate.Values{"choices": []string{"value-2", "value-1"}}
		require.Equal(t, "Nothing selected", r.Resolve(m, "multi-field.hint"))
	})

	t.Run("single element list", func(t *testing.T) {
		t.Parallel()
		m := deeptranslate.Values{"choices": []string{"value-1"}}
		require.Equal(t, "Only the first value selected", r.Resolve(m, "multi-field.hint"))
	})

	t.Run("untyped list from decoded JSON", func(t *testing.T) {
		t.Parallel()
		m := deeptranslate.Values{"choices": []any{"value-1", "value-2"}}
		require.Equal(t, "Both values selected", r.Resolve(m, "multi-field.hint"))
	})

	t.Run("custom separator", func(t *testing.T) {
		t.Parallel()
		tree := deeptranslate.NewTree(
			deeptranslate.B("hint",
				deeptranslate.B("choices", deeptranslate.L("a|b", "pipe joined")),
				deeptranslate.L("default", "none"),
			),
		)
		sr := deeptranslate.New(tree.Lookup, deeptranslate.WithSeparator("|"))
		m := deeptranslate.Values{"choices": []string{"a", "b"}}
		require.Equal(t, "pipe joined", sr.Resolve(m, "hint"))
	})
}

func TestResolver_WinOrder(t *testing.T) {
	t.Parallel()

	// Both conditional entries match; the first declared one wins.
	tree := deeptranslate.NewTree(
		deeptranslate.B("title",
			deeptranslate.B("role", deeptranslate.L("admin", "Admin title")),
			deeptranslate.B("plan", deeptranslate.L("pro", "Pro title")),
			deeptranslate.L("default", "Title"),
		),
	)
	r := deeptranslate.New(tree.Lookup)

	require.Equal(t, "Admin title", r.Resolve(deeptranslate.Values{"role": "admin", "plan": "pro"}, "title"))
	require.Equal(t, "Pro title", r.Resolve(deeptranslate.Values{"plan": "pro"}, "title"))
	require.Equal(t, "Title", r.Resolve(deeptranslate.Values{}, "title"))
}

func TestResolver_Misses(t *testing.T) {
	t.Parallel()

	r := newResolver(t)

	t.Run("absent key returns the key", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "does.not.exist", r.Resolve(nil, "does.not.exist"))

		_, err := r.Lookup(nil, "does.not.exist")
		require.ErrorIs(t, err, deeptranslate.ErrNotFound)
	})

	t.Run("branch without any match and no default returns the key", func(t *testing.T) {
		t.Parallel()
		m := deeptranslate.Values{"dep": "v2"}
		require.Equal(t, "no-default.label", r.Resolve(m, "no-default.label"))

		_, err := r.Lookup(m, "no-default.label")
		require.ErrorIs(t, err, deeptranslate.ErrNotFound)
	})

	t.Run("nil lookup behaves as identity", func(t *testing.T) {
		t.Parallel()
		ir := deeptranslate.New(nil)
		require.Equal(t, "anything.at.all", ir.Resolve(nil, "anything.at.all"))
	})
}

func TestResolver_WithoutModel(t *testing.T) {
	t.Parallel()

	r := newResolver(t)

	// Without a model, nested branches are walked as plain structure,
	// so the first declared leaf underneath wins.
	require.Equal(t, "Label to show if dependent-field is first-value", r.Resolve(nil, "a-field.label"))
	require.Equal(t, "L1", r.Resolve(nil, "f.label"))
	require.Equal(t, "a deep value", r.Resolve(nil, "b"))
}

func TestResolver_Idempotent(t *testing.T) {
	t.Parallel()

	r := newResolver(t)
	tr := r.Bind(deeptranslate.Values{"dependent-field": "second-value"})

	first := tr("a-field.label")
	second := tr("a-field.label")
	require.Equal(t, first, second)
	require.Equal(t, "Label to show if dependent-field is second-value", first)
}

func TestResolver_EmptyLeafIsHit(t *testing.T) {
	t.Parallel()

	tree := deeptranslate.NewTree(
		deeptranslate.B("hint",
			deeptranslate.B("dep", deeptranslate.L("v1", "")),
			deeptranslate.L("default", "D"),
		),
	)
	r := deeptranslate.New(tree.Lookup)

	require.Equal(t, "", r.Resolve(deeptranslate.Values{"dep": "v1"}, "hint"))
	require.Equal(t, "D", r.Resolve(deeptranslate.Values{"dep": "v2"}, "hint"))

	got, err := r.Lookup(deeptranslate.Values{"dep": "v1"}, "hint")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFromTranslateFunc_UnorderedMapsMiss(t *testing.T) {
	t.Parallel()

	translate := func(key string) any {
		if key == "field.label" {
			return map[string]any{"default": "Label"}
		}
		return key
	}

	r := deeptranslate.New(deeptranslate.FromTranslateFunc(translate))
	require.Equal(t, "field.label", r.Resolve(deeptranslate.Values{}, "field.label"))
}

func TestResolver_MaxDepth(t *testing.T) {
	t.Parallel()

	// Every key resolves to a branch, so resolution would never terminate.
	looping := func(string) (deeptranslate.Node, bool) {
		return deeptranslate.Branch{deeptranslate.L("again", "")}, true
	}

	r := deeptranslate.New(looping, deeptranslate.WithMaxDepth(8))

	_, err := r.Lookup(nil, "start")
	require.ErrorIs(t, err, deeptranslate.ErrMaxDepth)
	require.Equal(t, "start", r.Resolve(nil, "start"))
}

func TestResolver_ScalarModelValues(t *testing.T) {
	t.Parallel()

	tree := deeptranslate.NewTree(
		deeptranslate.B("step",
			deeptranslate.B("count", deeptranslate.L("3", "Three items")),
			deeptranslate.L("default", "Some items"),
		),
	)
	r := deeptranslate.New(tree.Lookup)

	require.Equal(t, "Three items", r.Resolve(deeptranslate.Values{"count": 3}, "step"))
	require.Equal(t, "Some items", r.Resolve(deeptranslate.Values{"count": nil}, "step"))
}

func TestFromTranslateFunc(t *testing.T) {
	t.Parallel()

	locales := map[string]any{
		"greeting": "Hello",
		"field.label": deeptranslate.Branch{
			deeptranslate.B("kind", deeptranslate.L("b", "Label B")),
			deeptranslate.L("default", "Label"),
		},
		"field.label.kind.b": "Label B",
		"field.label.default": "Label",
	}
	translate := func(key string) any {
		if v, ok := locales[key]; ok {
			return v
		}
		return key
	}

	r := deeptranslate.New(deeptranslate.FromTranslateFunc(translate))

	require.Equal(t, "Hello", r.Resolve(nil, "greeting"))
	require.Equal(t, "missing", r.Resolve(nil, "missing"))
	require.Equal(t, "Label B", r.Resolve(deeptranslate.ModelFunc(func(field string) (any, bool) {
		return "b", field == "kind"
	}), "field.label"))
	require.Equal(t, "Label", r.Resolve(deeptranslate.Values{}, "field.label"))
}
