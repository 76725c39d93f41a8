package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, DefaultFilePath, cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Metrics.Textfile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"store": {"backend": "sqlite", "path": "/tmp/board.db"},
		"log": {"level": "debug", "format": "json"},
		"metrics": {"textfile": "/tmp/jobboard.prom"}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/tmp/board.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/jobboard.prom", cfg.Metrics.Textfile)
}

func TestLoadConfig_YAMLWithBackendDefaultPath(t *testing.T) {
	path := writeConfig(t, "config.yaml", "store:\n  backend: sqlite\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, DefaultSQLitePath, cfg.Store.Path)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{"store": {"backend": "file", "path": "a.json"}}`)
	t.Setenv("JOBBOARD_STORE_BACKEND", "memory")
	t.Setenv("JOBBOARD_STORE_PATH", "b.json")
	t.Setenv("JOBBOARD_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "b.json", cfg.Store.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Default()},
		{name: "memory without path", cfg: Config{Store: StoreConfig{Backend: "memory"}}},
		{
			name:    "unknown backend",
			cfg:     Config{Store: StoreConfig{Backend: "redis", Path: "x"}},
			wantErr: "unknown store backend",
		},
		{
			name:    "file without path",
			cfg:     Config{Store: StoreConfig{Backend: "file"}},
			wantErr: "'store.path' is required",
		},
		{
			name:    "bad level",
			cfg:     Config{Store: StoreConfig{Backend: "memory"}, Log: LogConfig{Level: "loud"}},
			wantErr: "unknown log level",
		},
		{
			name:    "bad format",
			cfg:     Config{Store: StoreConfig{Backend: "memory"}, Log: LogConfig{Format: "xml"}},
			wantErr: "unknown log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	defaults := Config{
		Store:   StoreConfig{Backend: "file", Path: "board.json"},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Textfile: "m.prom"},
	}

	t.Run("empty takes defaults", func(t *testing.T) {
		merged := (&Config{}).MergeWithDefaults(defaults)
		assert.Equal(t, defaults, merged)
	})

	t.Run("set fields win", func(t *testing.T) {
		flags := Config{Log: LogConfig{Level: "debug"}, Store: StoreConfig{Path: "other.json"}}
		merged := flags.MergeWithDefaults(defaults)
		assert.Equal(t, "debug", merged.Log.Level)
		assert.Equal(t, "text", merged.Log.Format)
		assert.Equal(t, "file", merged.Store.Backend)
		assert.Equal(t, "other.json", merged.Store.Path)
	})

	t.Run("backend switch uses its default path", func(t *testing.T) {
		flags := Config{Store: StoreConfig{Backend: "sqlite"}}
		merged := flags.MergeWithDefaults(defaults)
		assert.Equal(t, "sqlite", merged.Store.Backend)
		assert.Equal(t, DefaultSQLitePath, merged.Store.Path)
	})
}
