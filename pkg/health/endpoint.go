package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var defaultClient = &http.Client{Timeout: 10 * time.Second}

// Endpoint is a third-party service a request depends on.
// Methods restricts probing to requests with a matching HTTP method;
// an empty list applies to every method.
type Endpoint struct {
	Name    string   `json:"name" yaml:"name"`
	URL     string   `json:"url" yaml:"url"`
	Methods []string `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// Matches reports whether the endpoint applies to a request method.
// Comparison is case-insensitive.
func (e Endpoint) Matches(method string) bool {
	if len(e.Methods) == 0 {
		return true
	}
	for _, m := range e.Methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

// HTTPCheck returns a check that issues a GET to url and fails on
// transport errors or non-2xx responses.
func HTTPCheck(client HTTPDoer, url string) CheckFunc {
	if client == nil {
		client = defaultClient
	}
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("%w: %s responded %d", ErrUnexpectedStatus, url, resp.StatusCode)
		}
		return nil
	}
}

// CheckEndpoints checks every endpoint matching method in parallel.
// The first failure cancels the remaining checks and is returned
// wrapped with ErrCheckFailed. No matching endpoints means success.
func CheckEndpoints(ctx context.Context, endpoints []Endpoint, method string, opts ...Option) error {
	cfg := newConfig(opts...)

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for _, ep := range endpoints {
		if !ep.Matches(method) {
			continue
		}
		check := HTTPCheck(cfg.client, ep.URL)
		g.Go(func() error {
			if err := check(ctx); err != nil {
				name := ep.Name
				if name == "" {
					name = ep.URL
				}
				return fmt.Errorf("%w: %s: %w", ErrCheckFailed, name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// EndpointChecks converts endpoints into named Checks for the readiness handler.
func EndpointChecks(client HTTPDoer, endpoints ...Endpoint) Checks {
	checks := make(Checks, len(endpoints))
	for _, ep := range endpoints {
		name := ep.Name
		if name == "" {
			name = ep.URL
		}
		checks[name] = HTTPCheck(client, ep.URL)
	}
	return checks
}
