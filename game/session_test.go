// File: game/session_test.go
package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test doubles ---

type fakeStore struct {
	saved   *Settings
	saveErr error
	loadErr error
	saves   int
}

func (f *fakeStore) Load() (Settings, error) {
	if f.loadErr != nil {
		return Settings{}, f.loadErr
	}
	if f.saved == nil {
		return Settings{}, ErrSettingsUnavailable
	}
	return *f.saved, nil
}

func (f *fakeStore) Save(s Settings) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &s
	return nil
}

type recordingSink struct {
	mu        sync.Mutex
	snapshots []Snapshot
	ended     []MatchEnded
}

func (r *recordingSink) Publish(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, snap)
}

func (r *recordingSink) MatchEnded(ev MatchEnded) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ended = append(r.ended, ev)
}

func (r *recordingSink) endedEvents() []MatchEnded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]MatchEnded(nil), r.ended...)
}

func (r *recordingSink) snapshotCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

func newTestSession(store SettingsStore, sink Sink) *GameSession {
	return NewGameSession(utils.DefaultConfig(), store, sink, nil)
}

// --- Tests ---

func TestGameSession_DefaultsWhenNothingSaved(t *testing.T) {
	s := newTestSession(&fakeStore{}, nil)

	got, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
	assert.False(t, s.Active())
	assert.NotEmpty(t, s.ID())
}

func TestGameSession_DefaultsWhenStoreFails(t *testing.T) {
	s := newTestSession(&fakeStore{loadErr: errors.New("disk on fire")}, nil)
	got, _ := s.Settings()
	assert.Equal(t, DefaultSettings(), got)
}

func TestGameSession_LoadsSavedSettings(t *testing.T) {
	saved := Settings{PlayerNames: [2]string{"Ana", "Bo"}, ScoreLimit: 5, AIDifficulty: Insane, NumPlayers: 2, BallSpeed: 6}
	s := newTestSession(&fakeStore{saved: &saved}, nil)

	got, _ := s.Settings()
	assert.Equal(t, saved, got)

	require.NoError(t, s.NewGame())
	m := s.Match()
	assert.Equal(t, 5, m.ScoreLimit)
	assert.Equal(t, "Ana", m.Players[0].Name)
	assert.Equal(t, 6.0, m.Ball.Vx)
}

func TestGameSession_ResumeWithoutMatch(t *testing.T) {
	sink := &recordingSink{}
	s := newTestSession(&fakeStore{}, sink)

	assert.ErrorIs(t, s.Resume(), ErrNoActiveMatch)
	assert.ErrorIs(t, s.Pause(), ErrNoActiveMatch)
	assert.ErrorIs(t, s.TogglePause(), ErrNoActiveMatch)
	assert.False(t, s.Active())
	assert.Zero(t, sink.snapshotCount())
	assert.Equal(t, NoPlayer, s.Tick(tick).Scorer)
	assert.False(t, s.Apply(MoveUp{Player: utils.Player2}))
}

func TestGameSession_PauseAndResume(t *testing.T) {
	s := newTestSession(&fakeStore{}, nil)
	require.NoError(t, s.NewGame())

	require.NoError(t, s.Pause())
	assert.Equal(t, StatusPaused, s.Match().Status())
	require.NoError(t, s.Resume())
	assert.Equal(t, StatusRunning, s.Match().Status())
	require.NoError(t, s.Resume(), "resuming a running match is a no-op")
	assert.Equal(t, StatusRunning, s.Match().Status())
}

func TestGameSession_StartMatchConfigError(t *testing.T) {
	s := newTestSession(&fakeStore{}, nil)
	require.NoError(t, s.NewGame())
	previous := s.Match()

	err := s.StartMatch(MatchConfig{NumPlayers: 1, Difficulty: Easy, ScoreLimit: 0, InitialBallSpeed: 4})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Same(t, previous, s.Match(), "a rejected config keeps the previous match")
}

func TestGameSession_NewGameReplacesMatch(t *testing.T) {
	s := newTestSession(&fakeStore{}, nil)
	require.NoError(t, s.NewGame())
	first := s.Match().ID
	require.NoError(t, s.NewGame())
	assert.NotEqual(t, first, s.Match().ID)
}

func TestGameSession_EndReportsWinnerAndDiscards(t *testing.T) {
	sink := &recordingSink{}
	s := newTestSession(&fakeStore{}, sink)
	require.NoError(t, s.StartMatch(humanConfig(1)))

	m := s.Match()
	m.Ball.X, m.Ball.Y, m.Ball.Vx, m.Ball.Vy = 749, 50, 4, 0
	res := s.Tick(tick)

	require.True(t, res.Ended)
	assert.False(t, s.Active())
	assert.Nil(t, s.Match())

	ended := sink.endedEvents()
	require.Len(t, ended, 1)
	assert.Equal(t, utils.Player1, ended[0].Winner)
	assert.Equal(t, "Player 1", ended[0].WinnerName)
	assert.Equal(t, s.ID(), ended[0].SessionID)
	assert.Equal(t, m.ID, ended[0].MatchID)

	s.Tick(tick)
	assert.Len(t, sink.endedEvents(), 1, "the end is reported once")
	assert.ErrorIs(t, s.Resume(), ErrNoActiveMatch)
}

func TestGameSession_PublishesEveryTick(t *testing.T) {
	sink := &recordingSink{}
	s := newTestSession(&fakeStore{}, sink)
	require.NoError(t, s.NewGame())
	assert.Equal(t, 1, sink.snapshotCount(), "start publishes the initial state")

	for i := 0; i < 3; i++ {
		s.Tick(tick)
	}
	assert.Equal(t, 4, sink.snapshotCount())

	snap, ok := s.Snapshot()
	require.True(t, ok)
	assert.Equal(t, s.ID(), snap.SessionID)
	assert.Equal(t, uint64(3), snap.Tick)
}

func TestGameSession_SaveSettings(t *testing.T) {
	store := &fakeStore{}
	s := newTestSession(store, nil)

	saved, err := s.SaveSettings(Settings{PlayerNames: [2]string{"x", "Ana"}, ScoreLimit: 0, AIDifficulty: "HARD", NumPlayers: 1, BallSpeed: 0})
	require.NoError(t, err)
	assert.Equal(t, Settings{PlayerNames: [2]string{"Computer", "Ana"}, ScoreLimit: 1, AIDifficulty: Hard, NumPlayers: 1, BallSpeed: 4}, saved)
	require.NotNil(t, store.saved)
	assert.Equal(t, saved, *store.saved)

	current, _ := s.Settings()
	assert.Equal(t, saved, current)
}

func TestGameSession_SaveSettingsStoreError(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("read-only")}
	s := newTestSession(store, nil)

	_, err := s.SaveSettings(DefaultSettings())
	assert.EqualError(t, err, "read-only")
	assert.Equal(t, 1, store.saves)
}

func TestMultiSinkAndCache(t *testing.T) {
	cache := &SnapshotCache{}
	rec := &recordingSink{}
	s := newTestSession(&fakeStore{}, MultiSink{cache, rec})

	_, ok := cache.Latest()
	assert.False(t, ok)

	require.NoError(t, s.StartMatch(humanConfig(1)))
	s.Tick(tick)
	latest, ok := cache.Latest()
	require.True(t, ok)
	assert.Equal(t, uint64(1), latest.Tick)
	assert.Equal(t, 2, rec.snapshotCount())

	_, ok = cache.LastEnded()
	assert.False(t, ok)
	m := s.Match()
	m.Ball.X, m.Ball.Y, m.Ball.Vx, m.Ball.Vy = 1, 50, -4, 0
	s.Tick(tick)
	ended, ok := cache.LastEnded()
	require.True(t, ok)
	assert.Equal(t, utils.Player2, ended.Winner)
}
