// Package view holds the templ components rendered by the error and
// not-found middlewares. Applications can replace them through the
// middleware options.
package view
