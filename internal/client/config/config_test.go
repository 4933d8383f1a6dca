package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "taskbalance.db", c.LocalDBPath)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr": "json:1",
		"local_db_path":        "json.db",
		"request_timeout":      "2s",
	})
	t.Setenv("TASKBALANCE_CLIENT_DB_PATH", "env.db")
	os.Args = []string{"testbin", "-c", path, "-a", "flag:3"}

	cfg := LoadConfig()

	assert.Equal(t, "flag:3", cfg.ServerEndpointAddr)
	assert.Equal(t, "env.db", cfg.LocalDBPath)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv("TASKBALANCE_CLIENT_SERVER_ADDRESS", "env:50051")
	t.Setenv("TASKBALANCE_CLIENT_REQUEST_TIMEOUT", "750ms")
	t.Setenv("TASKBALANCE_CLIENT_LOG_LEVEL", "debug")

	cfg := &Config{}
	parseEnv(cfg)

	assert.Equal(t, "env:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnv_BadTimeout(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv("TASKBALANCE_CLIENT_REQUEST_TIMEOUT", "soon")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
