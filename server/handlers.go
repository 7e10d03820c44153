// File: server/handlers.go
package server

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/net/websocket"
)

// Router builds the spectator routes with their middlewares.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger.StandardLog(), NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/state", s.HandleGetState)
	r.Handle("/subscribe", websocket.Handler(s.HandleSubscribe))

	return r
}

// HandleGetState returns the latest snapshot, or 204 before the first one.
func (s *Server) HandleGetState(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.cache.Latest()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.logger.Error("failed to write state", "err", err)
	}
}

// HandleSubscribe registers the connection with the broadcaster and blocks
// until the spectator goes away. Anything the spectator sends is ignored.
func (s *Server) HandleSubscribe(ws *websocket.Conn) {
	remote := ws.Request().RemoteAddr
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("subscribe handler panic", "remote", remote, "panic", rec, "stack", string(debug.Stack()))
		}
		s.engine.Send(s.broadcaster, RemoveClient{Conn: ws}, nil)
		_ = ws.Close()
	}()

	if snap, ok := s.cache.Latest(); ok {
		if err := websocket.JSON.Send(ws, &Envelope{MessageType: "snapshot", Snapshot: &snap}); err != nil {
			return
		}
	}
	s.engine.Send(s.broadcaster, AddClient{Conn: ws}, nil)

	var discard []byte
	for {
		if err := websocket.Message.Receive(ws, &discard); err != nil {
			return
		}
	}
}
