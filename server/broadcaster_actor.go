// File: server/broadcaster_actor.go
package server

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/game"
	"golang.org/x/net/websocket"
)

// writeTimeout bounds each spectator write so one stalled client cannot hold
// up the others for long.
const writeTimeout = 250 * time.Millisecond

// --- Broadcaster messages ---

type AddClient struct {
	Conn *websocket.Conn
}

type RemoveClient struct {
	Conn *websocket.Conn
}

type PublishSnapshot struct {
	Snapshot game.Snapshot
}

type PublishMatchEnded struct {
	Event game.MatchEnded
}

// ClientCountRequest is answered with an int.
type ClientCountRequest struct{}

// Envelope is the JSON frame sent to spectators.
type Envelope struct {
	MessageType string           `json:"messageType"` // "snapshot" or "matchEnded"
	Snapshot    *game.Snapshot   `json:"snapshot,omitempty"`
	MatchEnded  *game.MatchEnded `json:"matchEnded,omitempty"`
}

// BroadcasterActor fans session output out to spectator connections. Only
// its own goroutine touches the client set.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	logger  *log.Logger
	selfPID *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer(logger *log.Logger) bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
			logger:  logger.With("component", "broadcaster"),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.selfPID = ctx.Self()

	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
			a.logger.Info("spectator joined", "remote", msg.Conn.Request().RemoteAddr, "spectators", len(a.clients))
		}

	case RemoveClient:
		if _, ok := a.clients[msg.Conn]; ok {
			delete(a.clients, msg.Conn)
			a.logger.Info("spectator left", "remote", msg.Conn.Request().RemoteAddr, "spectators", len(a.clients))
		}

	case PublishSnapshot:
		snap := msg.Snapshot
		a.broadcast(Envelope{MessageType: "snapshot", Snapshot: &snap})

	case PublishMatchEnded:
		ev := msg.Event
		a.broadcast(Envelope{MessageType: "matchEnded", MatchEnded: &ev})

	case ClientCountRequest:
		ctx.Respond(len(a.clients))

	case bollywood.Stopping:
		for conn := range a.clients {
			_ = conn.Close()
			delete(a.clients, conn)
		}

	case bollywood.Stopped:

	default:
		a.logger.Warn("unknown message", "type", fmt.Sprintf("%T", msg))
	}
}

// broadcast sends env to every client and drops the ones that fail.
func (a *BroadcasterActor) broadcast(env Envelope) {
	for conn := range a.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := websocket.JSON.Send(conn, &env); err != nil {
			a.logger.Debug("dropping spectator", "remote", conn.Request().RemoteAddr, "err", err)
			delete(a.clients, conn)
			_ = conn.Close()
		}
	}
}

// BroadcastSink is a game.Sink that forwards to a BroadcasterActor without
// blocking the caller.
type BroadcastSink struct {
	engine *bollywood.Engine
	pid    *bollywood.PID
}

func (s BroadcastSink) Publish(snap game.Snapshot) {
	s.engine.Send(s.pid, PublishSnapshot{Snapshot: snap}, nil)
}

func (s BroadcastSink) MatchEnded(ev game.MatchEnded) {
	s.engine.Send(s.pid, PublishMatchEnded{Event: ev}, nil)
}

var _ game.Sink = BroadcastSink{}
