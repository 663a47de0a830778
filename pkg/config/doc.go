// Package config loads typed configuration from the environment.
//
// Struct fields are bound with caarlos0/env tags. Dotenv files are read first
// through godotenv, without overriding variables the process already has.
//
//	type Config struct {
//	    Addr  string       `env:"HTTP_ADDR" envDefault:":8080"`
//	    Redis redis.Config
//	}
//
//	cfg := config.MustLoad[Config]()
package config
