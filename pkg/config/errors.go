package config

import "errors"

var (
	ErrLoadEnvFile   = errors.New("config: failed to load env file")
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
