// Package config provides configuration types, defaults and loading for
// regform.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides (REGFORM_SERVER_ADDR, ...).
const EnvPrefix = "REGFORM"

// DefaultConfigFile is read from the working directory when no --config flag
// is given and the file exists.
const DefaultConfigFile = "regform.yaml"

// Config holds all configuration options for regform.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Form       FormConfig       `mapstructure:"form"`
	Navigation NavigationConfig `mapstructure:"navigation"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig configures the HTTP front end.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// FormConfig configures the registration form.
type FormConfig struct {
	DefaultPhoneCode string `mapstructure:"default_phone_code"`
	// UISchema points at an optional YAML/JSON overlay file or directory.
	UISchema string `mapstructure:"ui_schema"`
}

// NavigationConfig configures the form to success page hand-off.
type NavigationConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Form: FormConfig{
			DefaultPhoneCode: "+91",
		},
		Navigation: NavigationConfig{
			TTL: 5 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers Defaults on v so every key is known to Unmarshal and
// to environment lookups.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout)
	v.SetDefault("form.default_phone_code", defaults.Form.DefaultPhoneCode)
	v.SetDefault("form.ui_schema", defaults.Form.UISchema)
	v.SetDefault("navigation.ttl", defaults.Navigation.TTL)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.development", defaults.Log.Development)
}

// Load reads configuration into a Config. An explicit path must exist; with an
// empty path DefaultConfigFile is used when present. Environment variables
// override file values.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case path != "":
		v.SetConfigFile(path)
	default:
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			v.SetConfigFile(DefaultConfigFile)
		}
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if c.Navigation.TTL <= 0 {
		errs = append(errs, errors.New("navigation.ttl must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
