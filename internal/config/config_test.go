package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Generate.NumProfiles)
	assert.Equal(t, ".", cfg.Generate.OutputDir)
	assert.Equal(t, uint64(0), cfg.Generate.Seed)
	assert.Empty(t, cfg.Generate.CitiesFile)
	assert.True(t, cfg.Generate.SaveExcel)
	assert.True(t, cfg.Generate.SaveCSV)
	assert.True(t, cfg.Generate.CreateMap)
	assert.False(t, cfg.Generate.SaveJSON)
	assert.False(t, cfg.Generate.SaveGeoJSON)
	assert.False(t, cfg.Generate.SaveSQLite)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.DefaultProfiles)
	assert.Equal(t, 10000, cfg.Server.MaxProfiles)
	assert.Equal(t, 5.0, cfg.Server.RateLimit)
	assert.Equal(t, 10, cfg.Server.RateBurst)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
generate:
  num_profiles: 500
  output_dir: out
  seed: 42
  save_excel: false
  save_geojson: true
log:
  level: debug
  format: json
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Generate.NumProfiles)
	assert.Equal(t, "out", cfg.Generate.OutputDir)
	assert.Equal(t, uint64(42), cfg.Generate.Seed)
	assert.False(t, cfg.Generate.SaveExcel)
	assert.True(t, cfg.Generate.SaveGeoJSON)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	// Defaults still apply for unset values
	assert.True(t, cfg.Generate.SaveCSV)
	assert.Equal(t, 10000, cfg.Server.MaxProfiles)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
generate:
  num_profiles: 500
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("GEOPROFILE_GENERATE_NUM_PROFILES", "250")
	t.Setenv("GEOPROFILE_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, 250, cfg.Generate.NumProfiles)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("GEOPROFILE_SERVER_PORT", "3000")
	t.Setenv("GEOPROFILE_GENERATE_SAVE_SQLITE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.True(t, cfg.Generate.SaveSQLite)
}

func TestLoadInvalidFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("generate: [::"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GEOPROFILE_GENERATE_NUM_PROFILES", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "num_profiles must be positive")
}

func TestLoadFileExplicitPath(t *testing.T) {
	dir := chdirTemp(t)

	// config.yaml in cwd is ignored when a path is given
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 1111\n"), 0644))
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 2222\ngenerate:\n  save_json: true\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2222, cfg.Server.Port)
	assert.True(t, cfg.Generate.SaveJSON)
	assert.Equal(t, 1000, cfg.Generate.NumProfiles)
}

func TestLoadFileMissing(t *testing.T) {
	dir := chdirTemp(t)

	_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func validDefaults() *Config {
	cfg := &Config{}
	cfg.Generate.NumProfiles = 1000
	cfg.Server.Port = 8080
	cfg.Server.MaxProfiles = 10000
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"valid", func(*Config) {}, ""},
		{"negative profiles", func(c *Config) { c.Generate.NumProfiles = -1 }, "num_profiles"},
		{"zero max profiles", func(c *Config) { c.Server.MaxProfiles = 0 }, "max_profiles"},
		{"default above max", func(c *Config) { c.Server.DefaultProfiles = 20000 }, "default_profiles"},
		{"negative rate limit", func(c *Config) { c.Server.RateLimit = -1 }, "rate_limit"},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validDefaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

func TestInitLoggerUnknownFormat(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}
