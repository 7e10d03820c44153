// File: game/session.go
package game

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lguibr/duopong/utils"
)

// Controller is what a host needs to drive a session. GameSession
// implements it directly and SessionClient implements it through the
// session actor.
type Controller interface {
	NewGame() error
	Resume() error
	TogglePause() error
	Send(ev InputEvent)
	Settings() (Settings, error)
	SaveSettings(s Settings) (Settings, error)
	Snapshot() (Snapshot, bool)
}

// GameSession owns at most one MatchState and reports its outcome to a Sink.
// It is not safe for concurrent use; SessionActor serializes access.
type GameSession struct {
	id       string
	cfg      utils.Config
	store    SettingsStore
	sink     Sink
	logger   *log.Logger
	settings Settings
	match    *MatchState
}

// NewGameSession reads the saved settings once. The store must be safe for
// use from more than one goroutine. A store with nothing saved
// yields DefaultSettings.
func NewGameSession(cfg utils.Config, store SettingsStore, sink Sink, logger *log.Logger) *GameSession {
	if sink == nil {
		sink = MultiSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.New().String()
	s := &GameSession{
		id:     id,
		cfg:    cfg,
		store:  store,
		sink:   sink,
		logger: logger.With("session", id[:8]),
	}
	s.settings = s.loadSettings()
	return s
}

func (s *GameSession) loadSettings() Settings {
	if s.store == nil {
		return DefaultSettings()
	}
	loaded, err := s.store.Load()
	switch {
	case errors.Is(err, ErrSettingsUnavailable):
		s.logger.Debug("no saved settings, using defaults")
		return DefaultSettings()
	case err != nil:
		s.logger.Warn("failed to load settings, using defaults", "err", err)
		return DefaultSettings()
	}
	return loaded.Normalize(DefaultSettings())
}

func (s *GameSession) ID() string { return s.id }

// Active reports whether a match exists, running or paused.
func (s *GameSession) Active() bool { return s.match != nil }

// Match returns the active match or nil.
func (s *GameSession) Match() *MatchState { return s.match }

func (s *GameSession) Settings() (Settings, error) { return s.settings, nil }

// SaveSettings normalizes s against the current settings and writes them.
// The in-memory copy is updated even if the store fails.
func (s *GameSession) SaveSettings(next Settings) (Settings, error) {
	normalized := s.applySettings(next)
	return normalized, s.persist(normalized)
}

// applySettings makes next the current settings without touching the store.
func (s *GameSession) applySettings(next Settings) Settings {
	s.settings = next.Normalize(s.settings)
	return s.settings
}

// persist writes settings to the store. It only reads the store and the
// logger, so it may run outside the goroutine that owns the session.
func (s *GameSession) persist(settings Settings) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(settings); err != nil {
		s.logger.Error("failed to save settings", "err", err)
		return err
	}
	s.logger.Info("settings saved", "players", settings.NumPlayers, "difficulty", settings.AIDifficulty)
	return nil
}

// NewGame replaces any active match with one built from the current settings.
func (s *GameSession) NewGame() error {
	return s.StartMatch(s.settings.MatchConfig())
}

// StartMatch replaces any active match. On a ConfigError the previous match
// is left untouched.
func (s *GameSession) StartMatch(mc MatchConfig) error {
	m, err := NewMatchState(mc, s.cfg)
	if err != nil {
		s.logger.Error("cannot start match", "err", err)
		return err
	}
	if s.match != nil {
		s.logger.Info("replacing active match", "match", s.match.ID)
	}
	s.match = m
	s.logger.Info("match started", "match", m.ID, "players", mc.NumPlayers, "difficulty", mc.Difficulty, "scoreLimit", mc.ScoreLimit)
	s.publish()
	return nil
}

func (s *GameSession) Resume() error {
	if s.match == nil {
		return ErrNoActiveMatch
	}
	s.match.Resume()
	return nil
}

func (s *GameSession) Pause() error {
	if s.match == nil {
		return ErrNoActiveMatch
	}
	s.match.Pause()
	return nil
}

func (s *GameSession) TogglePause() error {
	if s.match == nil {
		return ErrNoActiveMatch
	}
	s.match.TogglePause()
	return nil
}

// Apply forwards ev to the active match and reports whether it changed
// anything.
func (s *GameSession) Apply(ev InputEvent) bool {
	if s.match == nil {
		return false
	}
	return s.match.Apply(ev)
}

// Send is Apply without the result.
func (s *GameSession) Send(ev InputEvent) { s.Apply(ev) }

// Tick advances the active match, publishes its snapshot and, once ended,
// reports the outcome and discards the match.
func (s *GameSession) Tick(dt time.Duration) TickResult {
	if s.match == nil {
		return TickResult{Scorer: NoPlayer}
	}
	res := s.match.Tick(dt)
	if res.Scorer != NoPlayer {
		s.logger.Debug("point scored", "match", s.match.ID, "player", res.Scorer, "scores", s.match.Snapshot().Scores())
	}
	s.publish()

	if res.Ended {
		ev := s.match.Ended()
		ev.SessionID = s.id
		s.logger.Info("match ended", "match", ev.MatchID, "winner", ev.WinnerName, "scores", ev.FinalScores)
		s.sink.MatchEnded(ev)
		s.match = nil
	}
	return res
}

// Snapshot returns the active match's state, or false without a match.
func (s *GameSession) Snapshot() (Snapshot, bool) {
	if s.match == nil {
		return Snapshot{}, false
	}
	snap := s.match.Snapshot()
	snap.SessionID = s.id
	return snap, true
}

func (s *GameSession) publish() {
	if snap, ok := s.Snapshot(); ok {
		s.sink.Publish(snap)
	}
}
