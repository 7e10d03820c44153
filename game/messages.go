// File: game/messages.go
package game

import "time"

// --- Session actor messages ---

// TickMessage advances the session by one fixed step. Dt is the wall time
// since the previous tick.
type TickMessage struct {
	Dt time.Duration
}

// InputMessage forwards a host input event.
type InputMessage struct {
	Event InputEvent
}

// StartGameCommand starts a match from the saved settings, or from Config
// when it is set. Answered with CommandResult.
type StartGameCommand struct {
	Config *MatchConfig
}

// ResumeCommand unpauses the active match. Answered with CommandResult.
type ResumeCommand struct{}

// PauseCommand pauses the active match. Answered with CommandResult.
type PauseCommand struct{}

// TogglePauseCommand flips pause on the active match. Answered with CommandResult.
type TogglePauseCommand struct{}

// SaveSettingsCommand normalizes and stores Settings. Answered with SettingsResponse.
type SaveSettingsCommand struct {
	Settings Settings
}

// SettingsRequest asks for the current settings. Answered with SettingsResponse.
type SettingsRequest struct{}

// SnapshotRequest asks for the active match state. Answered with SnapshotResponse.
type SnapshotRequest struct{}

// --- Responses ---

type CommandResult struct {
	Err error
}

type SettingsResponse struct {
	Settings Settings
	Err      error
}

type SnapshotResponse struct {
	Snapshot Snapshot
	Active   bool
}
