package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaultsEmptyConfig(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultTheta, cfg.Fold.Theta)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestApplyDefaultsPreservesExistingValues(t *testing.T) {
	cfg := &Config{}
	cfg.Fold.Theta = 0.25
	cfg.Log.Level = "debug"
	ApplyDefaults(cfg)

	assert.Equal(t, 0.25, cfg.Fold.Theta)
	assert.Equal(t, "debug", cfg.Log.Level)
}
