package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seanly/ldtp2/internal/platform"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LDTP_LOGGER_LEVEL.
const EnvPrefix = "LDTP"

// LoggerConfig controls the zap logger. Format is "console" or "json";
// MaxSize is in megabytes and MaxAge in days.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// ATSPIConfig controls the accessibility tree walk.
type ATSPIConfig struct {
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`
}

// ServerConfig controls the MCP server.
type ServerConfig struct {
	Transport string `mapstructure:"transport" yaml:"transport"`
	Port      int    `mapstructure:"port" yaml:"port"`
}

// Config is the complete runtime configuration.
type Config struct {
	Backend  string       `mapstructure:"backend" yaml:"backend"`
	Display  string       `mapstructure:"display" yaml:"display"`
	Snapshot string       `mapstructure:"snapshot" yaml:"snapshot"`
	Logger   LoggerConfig `mapstructure:"logger" yaml:"logger"`
	ATSPI    ATSPIConfig  `mapstructure:"atspi" yaml:"atspi"`
	Server   ServerConfig `mapstructure:"server" yaml:"server"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("backend", "x11")
	v.SetDefault("display", "")
	v.SetDefault("snapshot", "")

	// -- Logger --
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- AT-SPI --
	v.SetDefault("atspi.max_depth", 30)

	// -- Server --
	v.SetDefault("server.transport", "stdio")
	v.SetDefault("server.port", 8765)
}

// NewDefaultConfig returns a Config holding only default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads the optional config file at path (or ldtp.yaml in the usual
// places when path is empty), applies LDTP_* environment overrides and
// validates the result. Flags should already be bound to v.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ldtp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ldtp")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Backend == "" {
		return fmt.Errorf("backend must be set")
	}
	if c.Backend == "snapshot" && c.Snapshot == "" {
		return fmt.Errorf("snapshot backend requires a snapshot file")
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if c.ATSPI.MaxDepth < 0 {
		return fmt.Errorf("atspi.max_depth must not be negative")
	}
	switch c.Server.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("server.transport must be stdio or streamable-http, got %q", c.Server.Transport)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	return nil
}

// BackendOptions returns the options handed to the platform backend.
func (c *Config) BackendOptions() platform.BackendOptions {
	return platform.BackendOptions{
		Display:      c.Display,
		SnapshotPath: c.Snapshot,
		MaxDepth:     c.ATSPI.MaxDepth,
	}
}
