package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SPACEX_DASH_SERVER_ADDR
const EnvPrefix = "SPACEX_DASH"

const (
	DefaultAddr            = ":8050"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultDatasetPath     = "spacex_launch_dash.csv"
	DefaultFetchTimeout    = 30 * time.Second
	DefaultStorePath       = "dashboard.db"
	DefaultOutputDir       = "outputs"
	DefaultSliderStep      = 1000.0
	DefaultMarkInterval    = 5000.0
)

// Config is the dashboard configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Store   StoreConfig   `mapstructure:"store"`
	Output  OutputConfig  `mapstructure:"output"`
	Slider  SliderConfig  `mapstructure:"slider"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatasetConfig points at the launch CSV, a file path or an http(s) URL
type DatasetConfig struct {
	Path         string        `mapstructure:"path"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// StoreConfig holds the SQLite journal path. An empty path disables the journal
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// SliderConfig controls the payload range slider
type SliderConfig struct {
	Step         float64 `mapstructure:"step"`
	MarkInterval float64 `mapstructure:"mark_interval"`
}

// flagKeys maps command line flags to their config keys
var flagKeys = map[string]string{
	"addr":          "server.addr",
	"data":          "dataset.path",
	"db":            "store.path",
	"output-dir":    "output.dir",
	"slider-step":   "slider.step",
	"mark-interval": "slider.mark_interval",
}

// NewFlagSet declares the dashboard command line flags
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "YAML configuration file")
	fs.StringP("addr", "a", DefaultAddr, "HTTP listen address")
	fs.StringP("data", "d", DefaultDatasetPath, "Launch dataset CSV file or http(s) URL")
	fs.String("db", DefaultStorePath, "SQLite journal path (empty disables the journal)")
	fs.StringP("output-dir", "o", DefaultOutputDir, "Directory for export files")
	fs.Float64("slider-step", DefaultSliderStep, "Payload slider step in kg")
	fs.Float64("mark-interval", DefaultMarkInterval, "Payload slider mark interval in kg")
	return fs
}

// Load parses args and merges defaults, the optional config file, environment and flags
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("spacex-dashboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return FromFlags(fs)
}

// FromFlags builds the configuration from an already parsed flag set
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// SPACEX_DASH_STORE_PATH="" disables the journal
	v.AllowEmptyEnv(true)

	for name, key := range flagKeys {
		if flag := fs.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout.String())
	v.SetDefault("dataset.path", DefaultDatasetPath)
	v.SetDefault("dataset.fetch_timeout", DefaultFetchTimeout.String())
	v.SetDefault("store.path", DefaultStorePath)
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("slider.step", DefaultSliderStep)
	v.SetDefault("slider.mark_interval", DefaultMarkInterval)
}

// Validate fills unset values with defaults and rejects invalid ones
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative, got %s", c.Server.ShutdownTimeout)
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Dataset.Path == "" {
		return errors.New("dataset.path is required")
	}
	if c.Dataset.FetchTimeout < 0 {
		return fmt.Errorf("dataset.fetch_timeout must not be negative, got %s", c.Dataset.FetchTimeout)
	}
	if c.Dataset.FetchTimeout == 0 {
		c.Dataset.FetchTimeout = DefaultFetchTimeout
	}

	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}

	if c.Slider.Step <= 0 {
		return fmt.Errorf("slider.step must be positive, got %v", c.Slider.Step)
	}
	if c.Slider.MarkInterval <= 0 {
		return fmt.Errorf("slider.mark_interval must be positive, got %v", c.Slider.MarkInterval)
	}
	return nil
}
