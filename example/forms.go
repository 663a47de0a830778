package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/hofware"
)

type formsHandler struct{}

func (h formsHandler) Routes(r hofware.Router) {
	r.GET("/", func(c hofware.Context) error {
		return c.Redirect(http.StatusFound, "/apply")
	})
	r.Route("/apply", func(r hofware.Router) {
		r.GET("/", h.showApplicant)
		r.POST("/", h.saveApplicant)
		r.GET("/details", h.showDetails)
		r.POST("/details", h.saveDetails)
	})
}

func (h formsHandler) showApplicant(c hofware.Context) error {
	return c.Render(http.StatusOK, page(c.T("apply.title"), func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post"><label>%s</label>
<input type="radio" name="applicant-type" value="business"> Business
<input type="radio" name="applicant-type" value="person"> Person
<button>Continue</button></form>`, templ.EscapeString(c.T("apply.applicant-type.label")))
		return err
	}))
}

func (h formsHandler) saveApplicant(c hofware.Context) error {
	switch v := c.Form("applicant-type"); v {
	case "business", "person":
		if err := c.SetSessionValue("applicant-type", v); err != nil {
			return err
		}
	default:
		return hofware.NewHTTPError(http.StatusBadRequest, "Select who is applying",
			hofware.WithErrorTitle(c.T("apply.applicant-type.label")))
	}
	return c.Redirect(http.StatusSeeOther, "/apply/details")
}

func (h formsHandler) showDetails(c hofware.Context) error {
	return c.Render(http.StatusOK, page(c.T("details.heading"), func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form method="post"><label>%s</label><input name="name">
<p>%s</p>
<input type="checkbox" name="services" value="food"> Food
<input type="checkbox" name="services" value="alcohol"> Alcohol
<button>Save</button></form>`,
			templ.EscapeString(c.T("details.name.label")),
			templ.EscapeString(c.T("details.hint")))
		return err
	}))
}

func (h formsHandler) saveDetails(c hofware.Context) error {
	if err := c.Request().ParseForm(); err != nil {
		return hofware.NewHTTPError(http.StatusBadRequest, "Invalid form", hofware.WithError(err))
	}
	if err := c.SetSessionValue("name", c.Form("name")); err != nil {
		return err
	}
	if err := c.SetSessionValue("services", c.Request().PostForm["services"]); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/apply/details")
}

func page(title string, body func(io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%[1]s</title></head><body><main><h1>%[1]s</h1>`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}
