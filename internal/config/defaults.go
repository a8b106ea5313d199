package config

// Default value constants.
const (
	DefaultTheta         = 0.01
	DefaultFastPartition = true
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
)

// ApplyDefaults fills every zero-value field in cfg with its platform
// default. Fields already set to a non-zero value are left unchanged; a
// fold.theta of exactly 0 counts as unset and becomes DefaultTheta.
//
// fold.fast_partition is handled separately in unmarshalAndFinalize, not
// here: its default is true, which is indistinguishable from an explicit
// "false" once a plain bool has been unmarshalled, so it needs viper's
// IsSet check on the raw key before this function ever sees the struct.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Fold.Theta == 0 {
		cfg.Fold.Theta = DefaultTheta
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
