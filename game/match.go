// File: game/match.go
package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/duopong/utils"
)

// Status is the match state machine. Ended is terminal.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(text []byte) error {
	for _, candidate := range []Status{StatusRunning, StatusPaused, StatusEnded} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("game: unknown status %q", text)
}

// NoPlayer marks the absence of a scorer or winner.
const NoPlayer = -1

// TickResult describes what happened during one tick.
type TickResult struct {
	Scorer int // NoPlayer if nobody scored
	Ended  bool
}

// MatchState owns one ball and two paddles and advances them tick by tick.
type MatchState struct {
	ID         string
	Arena      utils.Rect
	Ball       *Ball
	Players    [utils.MaxPlayers]*Slot
	ScoreLimit int

	config    MatchConfig
	baseServe utils.Vector
	status    Status
	winner    int
	ticks     uint64
}

// NewMatchState validates mc, builds both slots and serves the ball to the
// right.
func NewMatchState(mc MatchConfig, cfg utils.Config) (*MatchState, error) {
	if err := mc.Validate(); err != nil {
		return nil, err
	}

	arena := utils.Rect{W: cfg.ArenaWidth, H: cfg.ArenaHeight}
	m := &MatchState{
		ID:         uuid.New().String(),
		Arena:      arena,
		Ball:       NewBall(cfg.BallSize),
		ScoreLimit: mc.ScoreLimit,
		config:     mc,
		baseServe:  utils.Vector{X: mc.InitialBallSpeed},
		status:     StatusRunning,
		winner:     NoPlayer,
	}

	for i, role := range mc.Roles() {
		x := arena.X
		if i == utils.Player2 {
			x = arena.Right() - cfg.PaddleWidth
		}
		paddle := NewPaddle(x, 0, cfg.PaddleWidth, cfg.PaddleHeight, cfg.HumanPaddleSpeed)

		slot := &Slot{Index: i, Name: mc.PlayerNames[i], Role: role, Paddle: paddle}
		if slot.Name == "" {
			slot.Name = defaultName(i, role)
		}
		if role == RoleAI {
			ai, err := NewAIController(paddle, mc.Difficulty)
			if err != nil {
				return nil, err
			}
			slot.AI = ai
			paddle.SetCenterY(arena.Y + arena.H*cfg.AIStartHeightRate)
		} else {
			paddle.SetCenterY(arena.Center().Y)
		}
		m.Players[i] = slot
	}

	m.Ball.Serve(m.Arena, 1, m.baseServe)
	return m, nil
}

func (m *MatchState) Config() MatchConfig { return m.config }
func (m *MatchState) Status() Status      { return m.status }
func (m *MatchState) Ticks() uint64       { return m.ticks }

// Winner returns the winning player index, or NoPlayer while not ended.
func (m *MatchState) Winner() int { return m.winner }

// TogglePause flips between running and paused. It does nothing once ended.
func (m *MatchState) TogglePause() {
	switch m.status {
	case StatusRunning:
		m.status = StatusPaused
	case StatusPaused:
		m.status = StatusRunning
	}
}

func (m *MatchState) Pause() {
	if m.status == StatusRunning {
		m.status = StatusPaused
	}
}

func (m *MatchState) Resume() {
	if m.status == StatusPaused {
		m.status = StatusRunning
	}
}

// Tick advances the simulation by one fixed step. dt is accepted for the
// clock contract but never scales the physics.
func (m *MatchState) Tick(dt time.Duration) TickResult {
	if m.status != StatusRunning {
		return TickResult{Scorer: NoPlayer}
	}
	m.ticks++

	for _, slot := range m.Players {
		if slot.AI != nil {
			slot.AI.RefreshVision(m.Arena.W)
			slot.AI.Intercept(m.Ball)
		}
	}

	m.Ball.Integrate()

	// player1 first; a ball overlapping both paddles bounces twice.
	for _, slot := range m.Players {
		slot.Paddle.BounceOff(m.Ball)
	}

	if m.Ball.Y < m.Arena.Y || m.Ball.Bounds().Top() > m.Arena.Top() {
		m.Ball.Vy = -m.Ball.Vy
	}

	switch {
	case m.Ball.X < m.Arena.X:
		return m.score(utils.Player2, -1)
	case m.Ball.Bounds().Right() > m.Arena.Right():
		return m.score(utils.Player1, 1)
	}
	return TickResult{Scorer: NoPlayer}
}

// score credits scorer and either ends the match or re-serves toward the
// side that conceded.
func (m *MatchState) score(scorer, concededDirection int) TickResult {
	if m.status == StatusEnded {
		panic("game: score after match ended")
	}
	points := m.Players[scorer].Paddle.AddPoint()
	if points >= m.ScoreLimit {
		m.status = StatusEnded
		m.winner = scorer
		return TickResult{Scorer: scorer, Ended: true}
	}
	m.Ball.Serve(m.Arena, concededDirection, m.baseServe)
	return TickResult{Scorer: scorer}
}

// Apply performs an input event. Paddle input only reaches human slots and
// only while the match is running. It reports whether the state changed.
func (m *MatchState) Apply(ev InputEvent) bool {
	switch e := ev.(type) {
	case TogglePause:
		before := m.status
		m.TogglePause()
		return before != m.status
	case Resize:
		if e.Width <= 0 || e.Height <= 0 {
			return false
		}
		m.Arena.W, m.Arena.H = e.Width, e.Height
		return true
	}

	if m.status != StatusRunning {
		return false
	}

	switch e := ev.(type) {
	case MoveUp:
		if p, ok := m.humanPaddle(e.Player); ok {
			p.MoveUp()
			return true
		}
	case MoveDown:
		if p, ok := m.humanPaddle(e.Player); ok {
			p.MoveDown()
			return true
		}
	case SetPaddleY:
		if p, ok := m.humanPaddle(e.Player); ok {
			p.SetCenterY(e.Y)
			return true
		}
	case TouchDrag:
		third := m.Arena.W / 3
		player := NoPlayer
		switch {
		case e.X < m.Arena.X+third:
			player = utils.Player1
		case e.X > m.Arena.Right()-third:
			player = utils.Player2
		}
		if p, ok := m.humanPaddle(player); ok {
			p.SetCenterY(e.Y)
			return true
		}
	}
	return false
}

func (m *MatchState) humanPaddle(player int) (*Paddle, bool) {
	if player < 0 || player >= len(m.Players) {
		return nil, false
	}
	slot := m.Players[player]
	if slot.IsAI() {
		return nil, false
	}
	return slot.Paddle, true
}

// Snapshot copies the observable state.
func (m *MatchState) Snapshot() Snapshot {
	snap := Snapshot{
		MatchID:    m.ID,
		Tick:       m.ticks,
		Status:     m.status,
		Arena:      m.Arena,
		Ball:       *m.Ball,
		ScoreLimit: m.ScoreLimit,
		Winner:     m.winner,
	}
	for i, slot := range m.Players {
		snap.Players[i] = PlayerState{
			Index:  i,
			Name:   slot.Name,
			Role:   slot.Role,
			Paddle: *slot.Paddle,
		}
	}
	return snap
}

// Ended builds the terminal event. It must only be called once ended.
func (m *MatchState) Ended() MatchEnded {
	if m.status != StatusEnded {
		panic("game: Ended called on a live match")
	}
	ev := MatchEnded{
		MatchID:    m.ID,
		Winner:     m.winner,
		WinnerName: m.Players[m.winner].Name,
	}
	for i, slot := range m.Players {
		ev.FinalScores[i] = slot.Paddle.Score
	}
	return ev
}
