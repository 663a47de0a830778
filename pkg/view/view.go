package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ErrorData is rendered by Error.
type ErrorData struct {
	Title     string
	Message   string
	Code      string
	RequestID string
	// StartLink is the first path segment of the failed request, used to
	// offer a way back to the start of the current journey.
	StartLink string
	// Stack is shown only when ShowStack is set.
	Stack     string
	Status    int
	ShowStack bool
}

// NotFoundData is rendered by NotFound.
type NotFoundData struct {
	Title       string
	Description string
}

// Error renders the error page.
func Error(d ErrorData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return page(w, d.Title, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "<h1>%s</h1><p>%s</p>",
				templ.EscapeString(d.Title), templ.EscapeString(d.Message)); err != nil {
				return err
			}
			if d.Code != "" {
				if _, err := fmt.Fprintf(w, `<p class="error-code">%s</p>`, templ.EscapeString(d.Code)); err != nil {
					return err
				}
			}
			if d.RequestID != "" {
				if _, err := fmt.Fprintf(w, `<p class="request-id">Reference: %s</p>`, templ.EscapeString(d.RequestID)); err != nil {
					return err
				}
			}
			if d.ShowStack && d.Stack != "" {
				if _, err := fmt.Fprintf(w, "<pre>%s</pre>", templ.EscapeString(d.Stack)); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w, `<p><a href="%s">Start again</a></p>`,
				templ.EscapeString(string(startURL(d.StartLink))))
			return err
		})
	})
}

// NotFound renders the 404 page.
func NotFound(d NotFoundData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return page(w, d.Title, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "<h1>%s</h1><p>%s</p>",
				templ.EscapeString(d.Title), templ.EscapeString(d.Description))
			return err
		})
	})
}

func page(w io.Writer, title string, body func(io.Writer) error) error {
	if _, err := fmt.Fprintf(w,
		`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title></head><body><main>`,
		templ.EscapeString(title)); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</main></body></html>")
	return err
}

func startURL(segment string) templ.SafeURL {
	if segment == "" {
		return templ.SafeURL("/")
	}
	return templ.URL("/" + segment)
}
