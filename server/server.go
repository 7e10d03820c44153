// File: server/server.go
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/game"
)

// Server is the read-only spectator surface of one session.
type Server struct {
	engine      *bollywood.Engine
	broadcaster *bollywood.PID
	cache       *game.SnapshotCache
	logger      *log.Logger
}

// New spawns the broadcaster actor on engine.
func New(engine *bollywood.Engine, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("component", "spectator")
	return &Server{
		engine:      engine,
		broadcaster: engine.Spawn(bollywood.NewProps(NewBroadcasterProducer(logger))),
		cache:       &game.SnapshotCache{},
		logger:      logger,
	}
}

// Sink feeds both the /state cache and the subscribers.
func (s *Server) Sink() game.Sink {
	return game.MultiSink{s.cache, BroadcastSink{engine: s.engine, pid: s.broadcaster}}
}

// ClientCount asks the broadcaster how many spectators are connected.
func (s *Server) ClientCount() (int, error) {
	reply, err := s.engine.Ask(s.broadcaster, ClientCountRequest{}, time.Second)
	if err != nil {
		return 0, err
	}
	n, _ := reply.(int)
	return n, nil
}

// ListenAndServe serves the router on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("spectator server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.engine.Stop(s.broadcaster)
		return srv.Shutdown(shutdownCtx)
	}
}
