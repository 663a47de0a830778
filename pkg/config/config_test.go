package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hofware/pkg/config"
)

type testConfig struct {
	Name    string        `env:"HOF_TEST_NAME"`
	Port    int           `env:"HOF_TEST_PORT"`
	Keep    string        `env:"HOF_TEST_KEEP"`
	Timeout time.Duration `env:"HOF_TEST_TIMEOUT" envDefault:"3s"`
}

type requiredConfig struct {
	Secret string `env:"HOF_TEST_REQUIRED_SECRET,required"`
}

// Tests mutate the process environment, so they do not run in parallel.

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("HOF_TEST_KEEP", "process")

	cfg, err := config.Load[testConfig]("testdata/.env.test")
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.Name)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "process", cfg.Keep, "existing variables win over the file")
	require.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	t.Setenv("HOF_TEST_NAME", "env-only")

	cfg, err := config.Load[testConfig]("testdata/does-not-exist.env")
	require.NoError(t, err)
	require.Equal(t, "env-only", cfg.Name)
}

func TestLoad_Required(t *testing.T) {
	_, err := config.Load[requiredConfig]("testdata/does-not-exist.env")
	require.ErrorIs(t, err, config.ErrParsingConfig)

	require.Panics(t, func() {
		config.MustLoad[requiredConfig]("testdata/does-not-exist.env")
	})
}
