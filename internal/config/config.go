// Package config loads service settings from configs/config.yml and
// DEVLIB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"device_library/internal/logger"
)

// EnvPrefix is prepended to every environment override, e.g. DEVLIB_VM_BASE_URL.
const EnvPrefix = "DEVLIB"

// Config is the root configuration.
type Config struct {
	Port        string        `mapstructure:"port"`
	Log         logger.Config `mapstructure:"log"`
	DB          DBConfig      `mapstructure:"db"`
	Server      ServerConfig  `mapstructure:"server"`
	VM          ClientConfig  `mapstructure:"vm"`
	Entitlement ClientConfig  `mapstructure:"entitlement"`
	Catalog     CatalogConfig `mapstructure:"catalog"`
	Stream      StreamConfig  `mapstructure:"stream"`
}

// DBConfig points at the SQLite file.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds HTTP server timeouts.
type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// ClientConfig configures an outbound HTTP dependency.
type ClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Retries int           `mapstructure:"retries"`
	Backoff time.Duration `mapstructure:"backoff"`
}

// CatalogConfig optionally extends the built-in catalog.
type CatalogConfig struct {
	ExtraPath string `mapstructure:"extra_path"`
}

// StreamConfig bounds the WebSocket push interval.
type StreamConfig struct {
	DefaultInterval time.Duration `mapstructure:"default_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("log.format", logger.FormatConsole)
	v.SetDefault("db.path", "devices.db")

	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("vm.base_url", "http://127.0.0.1:20111")
	v.SetDefault("vm.timeout", 5*time.Second)
	v.SetDefault("vm.retries", 2)
	v.SetDefault("vm.backoff", 200*time.Millisecond)

	v.SetDefault("entitlement.base_url", "http://127.0.0.1:3000")
	v.SetDefault("entitlement.timeout", 5*time.Second)
	v.SetDefault("entitlement.retries", 1)
	v.SetDefault("entitlement.backoff", 200*time.Millisecond)

	v.SetDefault("catalog.extra_path", "")

	v.SetDefault("stream.default_interval", 5*time.Second)
	v.SetDefault("stream.max_interval", 60*time.Second)
}

// Load reads config.yml from the given directories (first match wins).
// A missing file is not an error; defaults and environment still apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that defaults cannot fix.
func (c *Config) Validate() error {
	if c.VM.BaseURL == "" {
		return errors.New("config: vm.base_url is required")
	}
	if c.Entitlement.BaseURL == "" {
		return errors.New("config: entitlement.base_url is required")
	}
	if c.VM.Retries < 0 || c.Entitlement.Retries < 0 {
		return errors.New("config: retries must be >= 0")
	}
	if c.Stream.DefaultInterval <= 0 || c.Stream.MaxInterval < c.Stream.DefaultInterval {
		return errors.New("config: stream intervals must satisfy 0 < default_interval <= max_interval")
	}
	return nil
}
