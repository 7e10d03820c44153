package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid match configuration")
	// ErrSettingsUnavailable means no settings were saved yet. Callers fall
	// back to DefaultSettings.
	ErrSettingsUnavailable = errors.New("settings unavailable")
	// ErrNoActiveMatch is returned when pausing or resuming without a match.
	ErrNoActiveMatch = errors.New("no active match")
	// ErrSettingsBusy is returned when too many settings writes are pending.
	// The settings are applied in memory regardless.
	ErrSettingsBusy = errors.New("settings writer busy")
)

// ConfigError reports a MatchConfig field that cannot produce a playable match.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
