package main

import (
	"fmt"
	"log/slog"
	"strings"

	"linesieve/internal/filter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LogConfig holds logging options. When File is set, log output goes to a
// size-rotated file instead of stderr.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max-size-mb"`
	MaxBackups int    `mapstructure:"max-backups"`
	MaxAgeDays int    `mapstructure:"max-age-days"`
}

// PrometheusConfig holds metrics endpoint options.
type PrometheusConfig struct {
	Enable bool   `mapstructure:"enable"`
	Addr   string `mapstructure:"addr"`
}

// Config holds all configuration options for the linesieve application.
// Per-command filter settings are nested so they can also be set from a
// config file or LINESIEVE_* environment variables.
type Config struct {
	// Optional config file path (flag/env only)
	ConfigFile string
	// Input path ("" or "-" for stdin; .gz and .zst are decompressed)
	Input string `mapstructure:"input"`
	// Output path ("" or "-" for stdout, "stderr" for standard error)
	Output string `mapstructure:"output"`
	// Logging options
	Log LogConfig `mapstructure:"log"`
	// Metrics/Prometheus options
	Prometheus PrometheusConfig `mapstructure:"prometheus"`

	// Per-command filter configuration (nested)
	Grep filter.GrepConfig `mapstructure:"grep"`
	Cut  filter.CutConfig  `mapstructure:"cut"`
	Sort filter.SortConfig `mapstructure:"sort"`
	Uniq filter.UniqConfig `mapstructure:"uniq"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Prometheus: PrometheusConfig{Enable: false, Addr: ":2112"},
		Cut:        filter.CutConfig{Delimiter: filter.DefaultDelimiter},
	}
}

// LoadFromViper binds flags to viper, reads file/env, and populates the
// Config fields via mapstructure.
func (c *Config) LoadFromViper(cmd *cobra.Command) error {
	v := viper.GetViper()
	v.SetEnvPrefix("LINESIEVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Bind all flags
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Determine config file path: --config flag or LINESIEVE_CONFIG env
	if c.ConfigFile == "" {
		c.ConfigFile = v.GetString("config")
	}
	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v.Unmarshal(c)
}

// SetupFlags adds the shared command line flags to the provided cobra command.
func (c *Config) SetupFlags(cmd *cobra.Command) {
	// Config file
	cmd.PersistentFlags().StringVar(&c.ConfigFile, "config", c.ConfigFile, "Path to config file (yaml/json/toml)")

	// Streams
	cmd.PersistentFlags().StringVar(&c.Input, "input", c.Input, "Input file ('-' or empty for stdin; .gz and .zst are decompressed)")
	cmd.PersistentFlags().StringVarP(&c.Output, "output", "o", c.Output, "Output file ('-' or empty for stdout, 'stderr' for standard error)")

	// Logging flags
	cmd.PersistentFlags().StringVar(&c.Log.Level, "log.level", c.Log.Level, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&c.Log.File, "log.file", c.Log.File, "Write logs to this file with size-based rotation instead of stderr")

	// Prometheus flags
	cmd.PersistentFlags().BoolVar(&c.Prometheus.Enable, "prometheus.enable", c.Prometheus.Enable, "Enable Prometheus metrics HTTP endpoint")
	cmd.PersistentFlags().StringVar(&c.Prometheus.Addr, "prometheus.addr", c.Prometheus.Addr, "Prometheus metrics listen address (e.g., :2112)")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	if c.Log.File != "" {
		if c.Log.MaxSizeMB <= 0 {
			return fmt.Errorf("log.max-size-mb must be > 0")
		}
		if c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
			return fmt.Errorf("log.max-backups and log.max-age-days must be >= 0")
		}
	}
	if c.Prometheus.Enable && c.Prometheus.Addr == "" {
		return fmt.Errorf("prometheus.addr must be set when prometheus.enable is true")
	}
	return nil
}
