package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/host"
	"github.com/lguibr/duopong/input"
	"github.com/lguibr/duopong/server"
	"github.com/lguibr/duopong/settings"
	"github.com/lguibr/duopong/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "duopong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := utils.LoadConfig()
	if err != nil {
		return err
	}

	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := utils.NewLogger(logOut, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := bollywood.NewEngine(bollywood.WithLogger(logger.With("component", "bollywood")))
	defer engine.Shutdown(2 * time.Second)

	var sinks []game.Sink
	if cfg.SpectatorAddr != "" {
		spectators := server.New(engine, logger)
		sinks = append(sinks, spectators.Sink())
		go func() {
			if err := spectators.ListenAndServe(ctx, cfg.SpectatorAddr); err != nil {
				logger.Error("spectator server stopped", "err", err)
			}
		}()
	}

	store := settings.NewFileStore(cfg.SettingsPath)
	g := host.NewGame(engine, cfg, store, logger, sinks...)
	defer g.Close()
	logger.Info("session ready", "session", g.Session.ID(), "settings", store.Path())

	release, err := input.Acquire(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer release()

	size := func() (int, int, error) { return input.Size(int(os.Stdout.Fd())) }
	err = host.Run(ctx, g.Shell, os.Stdin, os.Stdout, size)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

