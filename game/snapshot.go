package game

import (
	"sync/atomic"

	"github.com/lguibr/duopong/utils"
)

// PlayerState is the observable part of a slot.
type PlayerState struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Paddle Paddle `json:"paddle"`
}

// Snapshot is the state published after every tick.
type Snapshot struct {
	SessionID  string                        `json:"sessionId"`
	MatchID    string                        `json:"matchId"`
	Tick       uint64                        `json:"tick"`
	Status     Status                        `json:"status"`
	Arena      utils.Rect                    `json:"arena"`
	Ball       Ball                          `json:"ball"`
	Players    [utils.MaxPlayers]PlayerState `json:"players"`
	ScoreLimit int                           `json:"scoreLimit"`
	Winner     int                           `json:"winner"`
}

// Scores returns both scores in player order.
func (s Snapshot) Scores() [utils.MaxPlayers]int {
	return [utils.MaxPlayers]int{s.Players[0].Paddle.Score, s.Players[1].Paddle.Score}
}

// MatchEnded is emitted once when a score reaches the limit.
type MatchEnded struct {
	SessionID   string                `json:"sessionId"`
	MatchID     string                `json:"matchId"`
	Winner      int                   `json:"winner"`
	WinnerName  string                `json:"winnerName"`
	FinalScores [utils.MaxPlayers]int `json:"finalScores"`
}

// Sink consumes published state. Implementations must not block and must
// not retain pointers into the match.
type Sink interface {
	Publish(snap Snapshot)
	MatchEnded(ev MatchEnded)
}

// MultiSink fans out to several sinks in order.
type MultiSink []Sink

func (ms MultiSink) Publish(snap Snapshot) {
	for _, s := range ms {
		s.Publish(snap)
	}
}

func (ms MultiSink) MatchEnded(ev MatchEnded) {
	for _, s := range ms {
		s.MatchEnded(ev)
	}
}

// SnapshotCache keeps the latest snapshot and end event for readers on
// other goroutines.
type SnapshotCache struct {
	snap  atomic.Pointer[Snapshot]
	ended atomic.Pointer[MatchEnded]
}

func (c *SnapshotCache) Publish(snap Snapshot) {
	c.snap.Store(&snap)
}

func (c *SnapshotCache) MatchEnded(ev MatchEnded) {
	c.ended.Store(&ev)
}

// Latest returns the most recent snapshot, if any.
func (c *SnapshotCache) Latest() (Snapshot, bool) {
	p := c.snap.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}

// LastEnded returns the most recent end event, if any.
func (c *SnapshotCache) LastEnded() (MatchEnded, bool) {
	p := c.ended.Load()
	if p == nil {
		return MatchEnded{}, false
	}
	return *p, true
}
