package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LumberjackConfig configures the rotating log file.
type LumberjackConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge"`
	Compress   bool   `mapstructure:"compress"`
}

// LoggingConfig configures level and outputs of the logger.
type LoggingConfig struct {
	Level  string           `mapstructure:"level"`
	Format string           `mapstructure:"format"`
	File   LumberjackConfig `mapstructure:"file"`
}

// Config is the top level configuration of the k8056 tool.
type Config struct {
	// Device is the serial port, e.g. /dev/ttyUSB0 or COM3.
	Device string `mapstructure:"device"`
	// Repeat is the number of extra transmissions of every frame.
	Repeat int `mapstructure:"repeat"`
	// Wait is slept after every transmission.
	Wait    time.Duration
	Logging LoggingConfig
}

// fileConfig mirrors Config without Wait, which ParseWait decodes.
type fileConfig struct {
	Device  string        `mapstructure:"device"`
	Repeat  int           `mapstructure:"repeat"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load reads configuration from an optional YAML/TOML/JSON file and
// K8056_ prefixed environment variables. overrides are applied last.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("K8056")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	wait, err := ParseWait(v.GetString("wait"))
	if err != nil {
		return nil, err
	}
	return &Config{
		Device:  fc.Device,
		Repeat:  fc.Repeat,
		Wait:    wait,
		Logging: fc.Logging,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("device", "")
	v.SetDefault("repeat", 0)
	v.SetDefault("wait", "0s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.maxSize", 10)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 7)
}

// ParseWait accepts a duration ("250ms") or a number of seconds ("0.5").
func ParseWait(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parse wait %q: %w", s, err)
	}
	return d, nil
}

// Validate checks the values the relay client needs.
func (c *Config) Validate() error {
	if c.Device == "" {
		return errors.New("device is required")
	}
	if c.Repeat < 0 {
		return fmt.Errorf("repeat must not be negative: %d", c.Repeat)
	}
	if c.Wait < 0 {
		return fmt.Errorf("wait must not be negative: %s", c.Wait)
	}
	return nil
}
