package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// dumpConfig controls sanedump's own behavior. It has nothing to do
// with the SANE protocol itself; it configures the inspection tool the
// way dittofs's server configures itself -- SANEDUMP_* env vars, then an
// optional config file, then defaults. No command-line flag feeds it:
// the --trace flag is read directly by setupTracing, not through Trace.
type dumpConfig struct {
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=text json"`
	Trace     bool   `mapstructure:"trace"`
}

func defaultDumpConfig() dumpConfig {
	return dumpConfig{
		LogLevel:  "INFO",
		LogFormat: "text",
		Trace:     false,
	}
}

// loadDumpConfig merges defaults, an optional config file, and
// SANEDUMP_*-prefixed environment variables, then validates the
// result.
func loadDumpConfig(v *viper.Viper) (dumpConfig, error) {
	cfg := defaultDumpConfig()

	// Registering the keys as defaults lets Unmarshal see values that
	// come only from the environment.
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("trace", cfg.Trace)

	v.SetEnvPrefix("SANEDUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return dumpConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return dumpConfig{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return dumpConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
