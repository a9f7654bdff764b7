package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := []byte(`
server:
  addr: "127.0.0.1:9000"
  read_timeout: 2s
form:
  default_phone_code: "+1"
  ui_schema: ./ui
navigation:
  ttl: 1m
log:
  level: debug
  development: true
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))
	t.Setenv("REGFORM_SERVER_ADDR", ":7000")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr, "env should win over file")
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, "+1", cfg.Form.DefaultPhoneCode)
	assert.Equal(t, "./ui", cfg.Form.UISchema)
	assert.Equal(t, time.Minute, cfg.Navigation.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadPicksUpDefaultFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("form:\n  default_phone_code: \"+44\"\n"), 0o600))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "+44", cfg.Form.DefaultPhoneCode)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REGFORM_NAVIGATION_TTL", "0s")

	_, err := Load(viper.New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "navigation.ttl must be positive")
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	cfg.Server.Addr = " "
	cfg.Server.ReadTimeout = 0
	cfg.Server.WriteTimeout = -time.Second
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.addr is required")
	assert.Contains(t, err.Error(), "server.read_timeout must be positive")
	assert.Contains(t, err.Error(), "server.write_timeout must be positive")
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
