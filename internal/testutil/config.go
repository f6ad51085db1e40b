// Package testutil provides common test utilities for the moviedeck project.
package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/tkarvinen/moviedeck/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	OMDBAPIKey  string
	StateDBFile string
	PosterDir   string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		OMDBAPIKey:  config.OMDBAPIKey,
		StateDBFile: config.StateDBFile,
		PosterDir:   config.PosterDir,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.OMDBAPIKey = state.OMDBAPIKey
	config.StateDBFile = state.StateDBFile
	config.PosterDir = state.PosterDir
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// Note: viper doesn't have an Unset function, so we can't
		// restore the "unset" state. This is a known limitation.
	})
}
