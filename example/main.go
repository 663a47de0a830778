// Command example runs a two-step application form showing conditional
// translations backed by the session.
package main

import (
	"context"
	_ "embed"
	"os"

	"github.com/dmitrymomot/hofware"
	"github.com/dmitrymomot/hofware/middlewares"
	"github.com/dmitrymomot/hofware/pkg/config"
	"github.com/dmitrymomot/hofware/pkg/deeptranslate"
	"github.com/dmitrymomot/hofware/pkg/health"
	"github.com/dmitrymomot/hofware/pkg/logger"
	"github.com/dmitrymomot/hofware/pkg/redis"
	"github.com/dmitrymomot/hofware/pkg/session"
)

//go:embed locales/en.yml
var locales []byte

func main() {
	ctx := context.Background()
	cfg := config.MustLoad[Config]()

	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	tree, err := deeptranslate.ParseYAML(locales)
	if err != nil {
		log.Error("failed to parse locales", "error", err)
		os.Exit(1)
	}
	resolver := deeptranslate.New(tree.Lookup)

	var (
		store         session.Store = session.NewMemoryStore()
		healthOptions []hofware.HealthOption
		runOptions    = []hofware.RunOption{
			hofware.ShutdownTimeout(cfg.ShutdownTimeout),
			hofware.ShutdownHook(logger.Flush(cfg.ShutdownTimeout)),
		}
	)
	if cfg.Redis.URL != "" {
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		store = session.NewRedisStore(client)
		healthOptions = append(healthOptions, hofware.WithReadinessCheck("redis", redis.Healthcheck(client)))
		runOptions = append(runOptions, hofware.ShutdownHook(redis.Shutdown(client)))
	}

	cookieOptions := []hofware.CookieOption{hofware.WithCookieSecure(cfg.CookieSecure)}
	if cfg.CookieSecret != "" {
		cookieOptions = append(cookieOptions, hofware.WithCookieSecret(cfg.CookieSecret))
	}

	app := hofware.New(
		hofware.WithLogger(log),
		hofware.WithCookieOptions(cookieOptions...),
		hofware.WithSession(store, hofware.WithSessionTTL(cfg.SessionTTL)),
		hofware.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.HealthGate(cfg.upstreams(), health.WithLogger(log)),
			middlewares.CookieCheck(),
			middlewares.SessionTimeout(),
			middlewares.DeepTranslate(resolver),
		),
		hofware.WithErrorHandler(middlewares.ErrorHandler(
			middlewares.WithErrorDebug(cfg.Debug),
			middlewares.WithErrorTranslate(resolver.Bind(nil)),
		)),
		hofware.WithNotFoundHandler(middlewares.NotFound()),
		hofware.WithHealthChecks(healthOptions...),
		hofware.WithHandlers(formsHandler{}),
	)

	if err := app.Run(cfg.Addr, runOptions...); err != nil {
		log.Error("application error", "error", err)
		os.Exit(1)
	}
}
