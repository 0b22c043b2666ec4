package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Generate GenerateConfig `yaml:"generate" mapstructure:"generate"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// GenerateConfig configures a generate run. CLI flags override these values.
type GenerateConfig struct {
	NumProfiles int    `yaml:"num_profiles" mapstructure:"num_profiles"`
	OutputDir   string `yaml:"output_dir" mapstructure:"output_dir"`
	Seed        uint64 `yaml:"seed" mapstructure:"seed"`
	CitiesFile  string `yaml:"cities_file" mapstructure:"cities_file"`
	SaveExcel   bool   `yaml:"save_excel" mapstructure:"save_excel"`
	SaveCSV     bool   `yaml:"save_csv" mapstructure:"save_csv"`
	CreateMap   bool   `yaml:"create_map" mapstructure:"create_map"`
	SaveJSON    bool   `yaml:"save_json" mapstructure:"save_json"`
	SaveGeoJSON bool   `yaml:"save_geojson" mapstructure:"save_geojson"`
	SaveSQLite  bool   `yaml:"save_sqlite" mapstructure:"save_sqlite"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Port            int     `yaml:"port" mapstructure:"port"`
	DefaultProfiles int     `yaml:"default_profiles" mapstructure:"default_profiles"`
	MaxProfiles     int     `yaml:"max_profiles" mapstructure:"max_profiles"`
	RateLimit       float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst       int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate rejects values no run could use.
func (c *Config) Validate() error {
	if c.Generate.NumProfiles <= 0 {
		return eris.Errorf("config: generate.num_profiles must be positive, got %d", c.Generate.NumProfiles)
	}
	if c.Server.MaxProfiles <= 0 {
		return eris.Errorf("config: server.max_profiles must be positive, got %d", c.Server.MaxProfiles)
	}
	if c.Server.DefaultProfiles > c.Server.MaxProfiles {
		return eris.Errorf("config: server.default_profiles %d exceeds server.max_profiles %d", c.Server.DefaultProfiles, c.Server.MaxProfiles)
	}
	if c.Server.RateLimit < 0 {
		return eris.Errorf("config: server.rate_limit must not be negative, got %g", c.Server.RateLimit)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return eris.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	return nil
}

// Load reads configuration from ./config.yaml (optional) and environment.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from the given YAML file and environment.
// An empty path falls back to an optional config.yaml in the working
// directory; an explicit path must exist.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	v.SetConfigType("yaml")

	// Environment
	v.SetEnvPrefix("GEOPROFILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("generate.num_profiles", 1000)
	v.SetDefault("generate.output_dir", ".")
	v.SetDefault("generate.seed", 0)
	v.SetDefault("generate.cities_file", "")
	v.SetDefault("generate.save_excel", true)
	v.SetDefault("generate.save_csv", true)
	v.SetDefault("generate.create_map", true)
	v.SetDefault("generate.save_json", false)
	v.SetDefault("generate.save_geojson", false)
	v.SetDefault("generate.save_sqlite", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.default_profiles", 100)
	v.SetDefault("server.max_profiles", 10000)
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger. Format is "console" for
// human-readable output or "json".
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.DisableStacktrace = true
	case "json", "":
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return eris.Errorf("config: unknown log format %q", cfg.Format)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
