// File: host/loop.go
package host

import (
	"context"
	"io"
	"time"

	"github.com/lguibr/duopong/input"
	"github.com/lguibr/duopong/render"
	"github.com/lguibr/duopong/shell"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Fallback terminal size when the size cannot be read.
const (
	defaultCols = 80
	defaultRows = 24
)

// SizeFunc reports the current terminal size.
type SizeFunc func() (cols, rows int, err error)

// Run drives sh with the Input → Update → Draw cycle until the player quits,
// r is exhausted or ctx is cancelled.
func Run(ctx context.Context, sh *shell.Shell, r io.Reader, w io.Writer, size SizeFunc) error {
	stream := input.StartStream(r)
	defer stream.Close()

	render.HideCursor(w)
	defer render.ShowCursor(w)
	input.EnableMouse(w)
	defer input.DisableMouse(w)
	render.ClearScreen(w)

	ticker := time.NewTicker(targetFrameTime)
	defer ticker.Stop()

	lastCols, lastRows := 0, 0
	for {
		cols, rows := terminalSize(size)

		// ===== INPUT PHASE =====
		keys, open := stream.Read()
		for _, k := range keys {
			if k.Code == input.CodeMouseDrag {
				drag(sh, k, cols, rows)
				continue
			}
			sh.Handle(k)
		}

		// ===== UPDATE PHASE =====
		sh.Poll()

		// ===== DRAW PHASE =====
		if cols != lastCols || rows != lastRows {
			render.ClearScreen(w)
			lastCols, lastRows = cols, rows
		}
		if _, err := io.WriteString(w, render.Frame(sh.View(), cols, rows).String()); err != nil {
			return err
		}

		if sh.Quit() || !open {
			render.ClearScreen(w)
			return nil
		}

		// ===== FRAME TIMING =====
		select {
		case <-ctx.Done():
			render.ClearScreen(w)
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// drag converts a mouse cell on the game screen into arena coordinates.
func drag(sh *shell.Shell, k input.Key, cols, rows int) {
	v := sh.View()
	if v.Screen != shell.ScreenGame || !v.HasSnapshot {
		return
	}
	if p, ok := render.GamePoint(k.Col, k.Row, cols, rows, v.Snapshot.Arena); ok {
		sh.Drag(p.X, p.Y)
	}
}

func terminalSize(size SizeFunc) (int, int) {
	if size == nil {
		return defaultCols, defaultRows
	}
	cols, rows, err := size()
	if err != nil || cols <= 0 || rows <= 0 {
		return defaultCols, defaultRows
	}
	return cols, rows
}
