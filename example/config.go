package main

import (
	"time"

	"github.com/dmitrymomot/hofware/pkg/health"
	"github.com/dmitrymomot/hofware/pkg/logger"
	"github.com/dmitrymomot/hofware/pkg/redis"
)

// Config is loaded from the environment and an optional .env file.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	Debug           bool          `env:"DEBUG"`
	CookieSecret    string        `env:"COOKIE_SECRET"`
	CookieSecure    bool          `env:"COOKIE_SECURE"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	// UpstreamURLs are checked before every request by the health gate.
	UpstreamURLs []string `env:"UPSTREAM_HEALTH_URLS" envSeparator:","`

	Log   logger.Config
	Redis redis.Config
}

func (c Config) upstreams() []health.Endpoint {
	endpoints := make([]health.Endpoint, 0, len(c.UpstreamURLs))
	for _, u := range c.UpstreamURLs {
		endpoints = append(endpoints, health.Endpoint{Name: u, URL: u})
	}
	return endpoints
}
