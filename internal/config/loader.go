package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all rnamoip settings.
const envPrefix = "RNAMOIP"

// newViper builds a pre-configured Viper instance: YAML file type, RNAMOIP_
// env prefix, automatic env binding, and a key replacer mapping "." to "_"
// so that "fold.theta" resolves to RNAMOIP_FOLD_THETA.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// AutomaticEnv only consults the environment for keys viper already
	// knows; binding every key lets Unmarshal see env-only settings too.
	for _, key := range []string{
		"energy.params_path",
		"fold.fast_partition", "fold.pseudoknots", "fold.theta", "fold.motif_file",
		"worker.threads",
		"log.level", "log.format",
	} {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the YAML file at configPath, merges RNAMOIP_* environment
// overrides, applies defaults, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from RNAMOIP_* environment variables
// and defaults, with no config file required.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if !v.IsSet("fold.fast_partition") {
		cfg.Fold.FastPartition = DefaultFastPartition
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
