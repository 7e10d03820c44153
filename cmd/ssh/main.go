package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/host"
	"github.com/lguibr/duopong/settings"
	"github.com/lguibr/duopong/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := utils.NewLogger(os.Stderr, cfg.LogLevel)

	// Every connection gets its own session actor on one shared engine.
	engine := bollywood.NewEngine(bollywood.WithLogger(logger.With("component", "bollywood")))

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSHAddr),
		wish.WithMiddleware(
			gameMiddleware(engine, cfg, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", cfg.SSHAddr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	engine.Shutdown(2 * time.Second)
}

// gameMiddleware runs one game per SSH session. Settings live only as long
// as the connection.
func gameMiddleware(engine *bollywood.Engine, cfg utils.Config, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("user", sess.User())
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			g := host.NewGame(engine, cfg, settings.NewMemoryStore(), sessLogger)
			defer g.Close()
			sessLogger.Info("game session started", "session", g.Session.ID(), "term", pty.Term)

			if err := host.Run(sess.Context(), g.Shell, sess, sess, sizeTracker.getSize); err != nil && !errors.Is(err, context.Canceled) {
				sessLogger.Error("game error", "err", err)
			}
			sessLogger.Info("game session ended", "session", g.Session.ID())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}
