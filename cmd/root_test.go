package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/geoprofile-cli/internal/citytable"
	"github.com/sells-group/geoprofile-cli/internal/config"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"generate", "cities", "serve", "version"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "geoprofile-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "log-level"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "root should have --%s flag", name)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestLoadConfig_ExplicitFileAndLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  num_profiles: 77\nlog:\n  level: info\n"), 0o644))

	c, err := loadConfig(path, "debug")
	require.NoError(t, err)
	assert.Equal(t, 77, c.Generate.NumProfiles)
	assert.Equal(t, "debug", c.Log.Level)

	c, err = loadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestGenerateCommand_Flags(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{"num", "1000"},
		{"output", "."},
		{"seed", "0"},
		{"cities", ""},
		{"excel", "true"},
		{"csv", "true"},
		{"map", "true"},
		{"json", "false"},
		{"geojson", "false"},
		{"sqlite", "false"},
	}
	for _, tt := range tests {
		flag := generateCmd.Flags().Lookup(tt.name)
		require.NotNil(t, flag, "generate should have --%s flag", tt.name)
		assert.Equal(t, tt.def, flag.DefValue, tt.name)
	}
	assert.Equal(t, "n", generateCmd.Flags().Lookup("num").Shorthand)
	assert.Equal(t, "o", generateCmd.Flags().Lookup("output").Shorthand)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestCitiesCommand_Flags(t *testing.T) {
	flag := citiesCmd.Flags().Lookup("json")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func newGenerateCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "generate"}
	addGenerateFlags(c.Flags())
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func fileConfig() config.GenerateConfig {
	return config.GenerateConfig{
		NumProfiles: 250,
		OutputDir:   "from-config",
		Seed:        7,
		SaveExcel:   true,
		SaveCSV:     false,
		CreateMap:   true,
		SaveJSON:    true,
	}
}

func TestGenerateOptions_ConfigWithoutFlags(t *testing.T) {
	opts := generateOptions(newGenerateCmd(t), fileConfig())

	assert.Equal(t, 250, opts.NumProfiles)
	assert.Equal(t, "from-config", opts.OutputDir)
	assert.Equal(t, uint64(7), opts.Seed)
	assert.True(t, opts.SaveExcel)
	assert.False(t, opts.SaveCSV)
	assert.True(t, opts.CreateMap)
	assert.True(t, opts.SaveJSON)
	assert.False(t, opts.SaveGeoJSON)
	assert.False(t, opts.SaveSQLite)
	assert.NotNil(t, opts.Progress)
}

func TestGenerateOptions_FlagsOverrideConfig(t *testing.T) {
	c := newGenerateCmd(t, "-n", "42", "-o", "out", "--seed", "99", "--cities", "extra.yaml",
		"--excel=false", "--csv", "--sqlite", "--geojson")
	opts := generateOptions(c, fileConfig())

	assert.Equal(t, 42, opts.NumProfiles)
	assert.Equal(t, "out", opts.OutputDir)
	assert.Equal(t, uint64(99), opts.Seed)
	assert.Equal(t, "extra.yaml", opts.CitiesFile)
	assert.False(t, opts.SaveExcel)
	assert.True(t, opts.SaveCSV)
	assert.True(t, opts.CreateMap)
	assert.True(t, opts.SaveJSON)
	assert.True(t, opts.SaveGeoJSON)
	assert.True(t, opts.SaveSQLite)
}

func TestPrintCities_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCities(&buf, citytable.Default(), false))

	out := buf.String()
	assert.Contains(t, out, "CITY")
	assert.Contains(t, out, "Berlin")
	assert.Contains(t, out, "München")
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, citytable.Default().Len()+1, lines)
}

func TestPrintCities_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCities(&buf, citytable.Default(), true))

	var got []citytable.City
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, citytable.Default().All(), got)
}

func TestGenerateCommand_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg = &config.Config{Generate: config.GenerateConfig{NumProfiles: 1000, OutputDir: "."}}
	t.Cleanup(func() { cfg = nil })

	c := newGenerateCmd(t, "-n", "20", "-o", dir, "--seed", "3", "--excel=false", "--map=false", "--csv")
	c.SetContext(t.Context())
	require.NoError(t, generateCmd.RunE(c, nil))

	_, err := os.Stat(filepath.Join(dir, "random_data_20.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "random_data_20.xlsx"))
	assert.True(t, os.IsNotExist(err))
}
