package configx_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/grantstore/pkg/configx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port     int           `env:"CONFIGX_TEST_PORT" envDefault:"8080"`
	Name     string        `env:"CONFIGX_TEST_NAME" envDefault:"grantstore"`
	Interval time.Duration `env:"CONFIGX_TEST_INTERVAL" envDefault:"1h"`
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE_PATH", filepath.Join(t.TempDir(), "missing.env"))

	var cfg testConfig
	require.NoError(t, configx.Load(&cfg))
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "grantstore", cfg.Name)
	assert.Equal(t, time.Hour, cfg.Interval)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CONFIGX_TEST_PORT=9090\nCONFIGX_TEST_INTERVAL=5m\n"), 0o600))
	t.Setenv("ENV_FILE_PATH", path)

	// Already-set variables are not overridden by the file.
	t.Setenv("CONFIGX_TEST_NAME", "from-env")
	t.Cleanup(func() {
		_ = os.Unsetenv("CONFIGX_TEST_PORT")
		_ = os.Unsetenv("CONFIGX_TEST_INTERVAL")
	})

	var cfg testConfig
	require.NoError(t, configx.Load(&cfg))
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 5*time.Minute, cfg.Interval)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("ENV_FILE_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("CONFIGX_TEST_PORT", "eighty")

	var cfg testConfig
	assert.Error(t, configx.Load(&cfg))
}
