// Package health runs dependency checks for orchestrators and request gating.
//
// [LivenessHandler] and [ReadinessHandler] serve orchestrator liveness and readiness checks.
// Readiness runs a set of named [Checks] in parallel and answers 503 when any
// of them fails:
//
//	r.Get("/livez", health.LivenessHandler())
//	r.Get("/readyz", health.ReadinessHandler(health.Checks{
//	    "redis": redis.Healthcheck(client),
//	}))
//
// Responses are plain text by default. Send Accept: application/json or
// ?format=json for the per-check breakdown:
//
//	{"status":"unhealthy","checks":{"redis":{"status":"unhealthy","error":"..."}}}
//
// [CheckEndpoints] checks third-party [Endpoint] URLs before a request is handled.
// Endpoints may restrict themselves to specific HTTP methods:
//
//	err := health.CheckEndpoints(ctx, []health.Endpoint{
//	    {Name: "postcodes", URL: "https://api.example.com/healthz", Methods: []string{"POST"}},
//	}, r.Method)
package health
