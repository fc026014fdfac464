package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no config file", func(t *testing.T) {
		cfg, err := LoadFrom(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "https://komikcast.li", cfg.Upstream.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
		assert.Equal(t, 15*time.Second, cfg.Upstream.DetailTimeout)
		assert.True(t, cfg.Upstream.CloudflareBypass)
		assert.Equal(t, int64(10<<20), cfg.Upstream.MaxBodyBytes)
		assert.Contains(t, cfg.Upstream.UserAgent, "Mozilla/5.0")
		assert.Equal(t, 15, cfg.Monitor.Interval)
		assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
		assert.Empty(t, cfg.Upstream.ImageHosts)
	})

	t.Run("Loads from config file", func(t *testing.T) {
		dir := t.TempDir()
		configContent := `
port: 9999
upstream:
  base_url: "https://mirror.example/"
  timeout: 3s
  cloudflare_bypass: false
  image_hosts:
    - imgkc.example
    - cdn.mirror.example
monitor:
  interval: 0
unknown_setting: "should be ignored"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(configContent), 0644))

		cfg, err := LoadFrom(dir)
		require.NoError(t, err)

		assert.Equal(t, 9999, cfg.Port)
		assert.Equal(t, "https://mirror.example", cfg.Upstream.BaseURL, "trailing slash is trimmed")
		assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
		assert.Equal(t, 15*time.Second, cfg.Upstream.DetailTimeout, "unset keys keep defaults")
		assert.False(t, cfg.Upstream.CloudflareBypass)
		assert.Equal(t, []string{"imgkc.example", "cdn.mirror.example"}, cfg.Upstream.ImageHosts)
		assert.Equal(t, 0, cfg.Monitor.Interval)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("port: 9999\n"), 0644))
		t.Setenv("KOMIK_PORT", "4000")
		t.Setenv("KOMIK_UPSTREAM_DETAIL_TIMEOUT", "20s")

		cfg, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, 4000, cfg.Port)
		assert.Equal(t, 20*time.Second, cfg.Upstream.DetailTimeout)
	})

	t.Run("Reads dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KOMIK_MONITOR_INTERVAL=5\n"), 0644))
		// Registered so the variable set by godotenv is cleared afterwards.
		t.Setenv("KOMIK_MONITOR_INTERVAL", "")
		os.Unsetenv("KOMIK_MONITOR_INTERVAL")

		cfg, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Monitor.Interval)
	})

	t.Run("Malformed config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("port: [oops"), 0644))

		_, err := LoadFrom(dir)
		assert.Error(t, err)
	})
}
