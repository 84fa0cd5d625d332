package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, "x11", cfg.Backend)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, 30, cfg.ATSPI.MaxDepth)
	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ldtp.yaml")
	content := `
backend: snapshot
snapshot: /tmp/tree.yaml
display: ":99"
logger:
  level: debug
  format: json
atspi:
  max_depth: 12
server:
  transport: streamable-http
  port: 9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "snapshot", cfg.Backend)
	assert.Equal(t, "/tmp/tree.yaml", cfg.Snapshot)
	assert.Equal(t, ":99", cfg.Display)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 12, cfg.ATSPI.MaxDepth)
	assert.Equal(t, 9000, cfg.Server.Port)

	opts := cfg.BackendOptions()
	assert.Equal(t, ":99", opts.Display)
	assert.Equal(t, "/tmp/tree.yaml", opts.SnapshotPath)
	assert.Equal(t, 12, opts.MaxDepth)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "x11", cfg.Backend)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LDTP_LOGGER_LEVEL", "error")
	t.Setenv("LDTP_DISPLAY", ":5")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logger.Level)
	assert.Equal(t, ":5", cfg.Display)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty backend", func(c *Config) { c.Backend = "" }},
		{"snapshot without file", func(c *Config) { c.Backend = "snapshot" }},
		{"bad log format", func(c *Config) { c.Logger.Format = "xml" }},
		{"negative depth", func(c *Config) { c.ATSPI.MaxDepth = -1 }},
		{"bad transport", func(c *Config) { c.Server.Transport = "sse" }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
