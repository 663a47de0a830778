package view_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hofware/pkg/view"
)

func TestError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := view.Error(view.ErrorData{
		Title:     "Session expired",
		Message:   "<script>alert(1)</script>",
		Code:      "SESSION_TIMEOUT",
		StartLink: "apply",
		Stack:     "goroutine 1",
		ShowStack: false,
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	require.Contains(t, html, "<h1>Session expired</h1>")
	require.Contains(t, html, "&lt;script&gt;")
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, `href="/apply"`)
	require.Contains(t, html, "SESSION_TIMEOUT")
	require.NotContains(t, html, "goroutine 1")
}

func TestError_ShowStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, view.Error(view.ErrorData{
		Title:     "boom",
		Stack:     "goroutine 1",
		ShowStack: true,
	}).Render(context.Background(), &buf))

	require.Contains(t, buf.String(), "<pre>goroutine 1</pre>")
	require.Contains(t, buf.String(), `href="/"`)
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, view.NotFound(view.NotFoundData{
		Title:       "Not found",
		Description: "There is nothing here",
	}).Render(context.Background(), &buf))

	require.Contains(t, buf.String(), "<title>Not found</title>")
	require.Contains(t, buf.String(), "<p>There is nothing here</p>")
}
