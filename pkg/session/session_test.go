package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hofware/pkg/deeptranslate"
	"github.com/dmitrymomot/hofware/pkg/session"
)

// Session must be usable wherever a translation model is expected.
var _ deeptranslate.SessionModel = (*session.Session)(nil)

func TestSession_New(t *testing.T) {
	t.Parallel()

	sess := session.New("id", "token", time.Now().Add(time.Hour))
	require.Equal(t, "id", sess.ID)
	require.Equal(t, "token", sess.Token)
	require.True(t, sess.IsNew())
	require.True(t, sess.IsDirty())
	require.NotNil(t, sess.Values)
	require.False(t, sess.IsExpired())
}

func TestSession_Values(t *testing.T) {
	t.Parallel()

	sess := session.New("id", "token", time.Now().Add(time.Hour))
	sess.ClearDirty()

	sess.SetValue("applicant-type", "company")
	require.True(t, sess.IsDirty())

	val, ok := sess.GetValue("applicant-type")
	require.True(t, ok)
	require.Equal(t, "company", val)

	_, ok = sess.GetValue("missing")
	require.False(t, ok)

	sess.ClearDirty()
	sess.DeleteValue("missing")
	require.False(t, sess.IsDirty(), "deleting an absent key keeps the session clean")

	sess.DeleteValue("applicant-type")
	require.True(t, sess.IsDirty())
	_, ok = sess.GetValue("applicant-type")
	require.False(t, ok)
}

func TestSession_NilIsSafe(t *testing.T) {
	t.Parallel()

	var sess *session.Session
	_, ok := sess.GetValue("anything")
	require.False(t, ok)

	_, err := session.Value[string](sess, "anything")
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	require.True(t, session.New("id", "t", time.Now().Add(-time.Second)).IsExpired())
	require.False(t, session.New("id", "t", time.Now().Add(time.Minute)).IsExpired())
}

func TestValue(t *testing.T) {
	t.Parallel()

	sess := session.New("id", "token", time.Now().Add(time.Hour))
	sess.SetValue("count", 3)
	sess.SetValue("choices", []string{"a", "b"})

	n, err := session.Value[int](sess, "count")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = session.Value[string](sess, "count")
	require.ErrorIs(t, err, session.ErrTypeMismatch)

	_, err = session.Value[int](sess, "missing")
	require.ErrorIs(t, err, session.ErrNotFound)

	require.Equal(t, []string{"a", "b"}, session.ValueOr(sess, "choices", []string(nil)))
	require.Equal(t, "fallback", session.ValueOr(sess, "missing", "fallback"))
}

func TestSession_SelectsTranslations(t *testing.T) {
	t.Parallel()

	tree := deeptranslate.MustParseYAML([]byte(`
heading:
  applicant-type:
    company: Company details
  default: Your details
`))
	r := deeptranslate.New(tree.Lookup)

	sess := session.New("id", "token", time.Now().Add(time.Hour))
	require.Equal(t, "Your details", r.Resolve(sess, "heading"))

	sess.SetValue("applicant-type", "company")
	require.Equal(t, "Company details", r.Resolve(sess, "heading"))
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		sess := session.New("id", "token", time.Now().Add(time.Hour))
		sess.SetValue("k", "v")

		require.NoError(t, store.Create(ctx, sess))
		require.Equal(t, 1, store.Len())

		got, err := store.Get(ctx, "token")
		require.NoError(t, err)
		require.Equal(t, "id", got.ID)
		require.Equal(t, "v", got.Values["k"])
		require.False(t, got.IsDirty())
		require.False(t, got.IsNew())
	})

	t.Run("returned sessions are copies", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		sess := session.New("id", "token", time.Now().Add(time.Hour))
		require.NoError(t, store.Create(ctx, sess))

		got, err := store.Get(ctx, "token")
		require.NoError(t, err)
		got.SetValue("k", "changed")

		again, err := store.Get(ctx, "token")
		require.NoError(t, err)
		_, ok := again.GetValue("k")
		require.False(t, ok)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		sess := session.New("id", "token", time.Now().Add(time.Hour))
		require.NoError(t, store.Create(ctx, sess))

		sess.SetValue("k", "v2")
		require.NoError(t, store.Update(ctx, sess))

		got, err := store.Get(ctx, "token")
		require.NoError(t, err)
		require.Equal(t, "v2", got.Values["k"])

		missing := session.New("other", "other-token", time.Now().Add(time.Hour))
		require.ErrorIs(t, store.Update(ctx, missing), session.ErrNotFound)
	})

	t.Run("expired sessions are evicted", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		require.NoError(t, store.Create(ctx, session.New("id", "token", time.Now().Add(-time.Second))))

		_, err := store.Get(ctx, "token")
		require.ErrorIs(t, err, session.ErrExpired)
		require.Equal(t, 0, store.Len())
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		require.NoError(t, store.Create(ctx, session.New("id", "token", time.Now().Add(time.Hour))))
		require.NoError(t, store.Delete(ctx, "token"))

		_, err := store.Get(ctx, "token")
		require.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("rejects invalid sessions", func(t *testing.T) {
		t.Parallel()

		store := session.NewMemoryStore()
		require.ErrorIs(t, store.Create(ctx, nil), session.ErrInvalidSession)
		require.ErrorIs(t, store.Create(ctx, session.New("id", "", time.Now())), session.ErrInvalidSession)
	})
}
