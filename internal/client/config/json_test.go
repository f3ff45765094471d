package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("duration as string", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url": "http://api:5000",
			"request_timeout": "30s",
			"session_db_path": "custom.db",
		})
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://api:5000", cfg.ServerBaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "custom.db", cfg.SessionDBPath)
	})

	t.Run("duration as nanoseconds", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"request_timeout": int64(5 * time.Second),
		})
		os.Args = []string{"cmd", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url": "http://api:5000",
		})
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://api:5000", cfg.ServerBaseURL)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "thoughts.db", cfg.SessionDBPath)
	})

	t.Run("no config flag is a no-op", func(t *testing.T) {
		os.Args = []string{"cmd"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://localhost:5000", cfg.ServerBaseURL)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "absent.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
