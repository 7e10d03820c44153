// Package host wires a session, its actor, the shell and the renderer into
// a runnable terminal game.
package host

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/shell"
	"github.com/lguibr/duopong/utils"
)

// Game is one player's session and everything around it.
type Game struct {
	Engine  *bollywood.Engine
	Session *game.GameSession
	Client  *game.SessionClient
	Shell   *shell.Shell
}

// NewGame builds a session reading store, ticked by its own actor on engine
// at cfg.TickPeriod. Extra sinks receive the same snapshots as the shell.
func NewGame(engine *bollywood.Engine, cfg utils.Config, store game.SettingsStore, logger *log.Logger, extra ...game.Sink) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sh := shell.New(logger)

	sinks := game.MultiSink{sh}
	sinks = append(sinks, extra...)
	session := game.NewGameSession(cfg, store, sinks, logger)
	client := game.SpawnSession(engine, session, cfg.TickPeriod)
	sh.Attach(client)

	return &Game{Engine: engine, Session: session, Client: client, Shell: sh}
}

// Close stops the session actor. The engine is left running for others.
func (g *Game) Close() {
	g.Client.Stop()
}
