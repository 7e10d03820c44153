package host

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/settings"
	"github.com/lguibr/duopong/shell"
	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSize() (int, int, error) { return 80, 24, nil }

func newTestGame(t *testing.T) *Game {
	t.Helper()
	engine := bollywood.NewEngine()
	g := NewGame(engine, utils.DefaultConfig(), settings.NewMemoryStore(), nil)
	t.Cleanup(func() {
		g.Close()
		engine.Shutdown(time.Second)
	})
	return g
}

func TestRun_StartThenQuit(t *testing.T) {
	g := newTestGame(t)
	var out bytes.Buffer

	err := Run(context.Background(), g.Shell, bytes.NewReader([]byte("1q")), &out, fixedSize)
	require.NoError(t, err)

	assert.True(t, g.Shell.Quit())
	assert.Equal(t, shell.ScreenGame, g.Shell.Screen())
	assert.Contains(t, out.String(), "first to 1")
}

func TestRun_ResumeWithoutMatchStaysOnMain(t *testing.T) {
	g := newTestGame(t)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), g.Shell, bytes.NewReader([]byte("2")), &out, nil))

	assert.Equal(t, shell.ScreenMain, g.Shell.Screen())
	assert.Contains(t, out.String(), shell.NoticeNoActiveMatch)
}

func TestRun_ContextCancel(t *testing.T) {
	g := newTestGame(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := Run(ctx, g.Shell, pr, io.Discard, fixedSize)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewGame_TicksThroughActor(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Client.NewGame())

	assert.Eventually(t, func() bool {
		snap, ok := g.Client.Snapshot()
		return ok && snap.Tick > 0
	}, time.Second, 5*time.Millisecond)
}

func TestRun_MouseDragMovesHumanPaddle(t *testing.T) {
	g := newTestGame(t)
	var out bytes.Buffer

	// Start, press at 1-based cell (71, 13) in the right third, then quit.
	in := "1\x1b[<0;71;13Mq"
	require.NoError(t, Run(context.Background(), g.Shell, bytes.NewReader([]byte(in)), &out, fixedSize))

	snap, ok := g.Client.Snapshot()
	require.True(t, ok)
	assert.InDelta(t, 600-10.5*600/22, snap.Players[utils.Player2].Paddle.CenterY(), 1e-9)
	assert.Contains(t, out.String(), "\x1b[?1006h")
	assert.Contains(t, out.String(), "\x1b[?1006l")
}
