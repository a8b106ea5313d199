// Package config defines the configuration structure for rnamoip-fold runs
// and loads it from a YAML file plus RNAMOIP_* environment overrides via
// viper. No fold logic lives here, only data and validation.
package config

import "fmt"

// EnergyConfig selects the nearest-neighbor thermodynamic parameter set.
type EnergyConfig struct {
	// ParamsPath, when non-empty, is opened and parsed by
	// energy.LoadFromReader to build the Params passed to rna.Options;
	// empty selects energy.DefaultParams().
	ParamsPath string `mapstructure:"params_path"`
}

// FoldConfig holds the tunables that shape one folding run.
type FoldConfig struct {
	// FastPartition selects the O(N^3)/O(N^5) recurrences over the
	// O(N^4)/O(N^8) ones; default true. Omitting this key and writing it
	// as literal false both unmarshal to the Go zero value, so
	// unmarshalAndFinalize checks viper's IsSet on the raw "fold.fast_partition"
	// key before this field is ever populated, to tell "unset" apart from
	// an explicit false.
	FastPartition bool    `mapstructure:"fast_partition"`
	Pseudoknots   bool    `mapstructure:"pseudoknots"`
	Theta         float64 `mapstructure:"theta"` // minimum posterior pairing probability to model
	MotifFile     string  `mapstructure:"motif_file"`
}

// WorkerConfig holds concurrency tunables for the partition-function DP.
type WorkerConfig struct {
	Threads int `mapstructure:"threads"` // 0 selects GOMAXPROCS
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// Config is the root configuration for rnamoip-fold.
type Config struct {
	Energy EnergyConfig `mapstructure:"energy"`
	Fold   FoldConfig   `mapstructure:"fold"`
	Worker WorkerConfig `mapstructure:"worker"`
	Log    LogConfig    `mapstructure:"log"`
}

// Validate performs semantic validation of a fully-populated Config.
func (c *Config) Validate() error {
	if c.Fold.Theta < 0 || c.Fold.Theta > 1 {
		return fmt.Errorf("config: fold.theta %v is out of range [0, 1]", c.Fold.Theta)
	}
	if c.Worker.Threads < 0 {
		return fmt.Errorf("config: worker.threads must be >= 0, got %d", c.Worker.Threads)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	return nil
}
