package render

import (
	"strings"
	"testing"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/shell"
	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() game.Snapshot {
	arena := utils.Rect{W: 800, H: 600}
	return game.Snapshot{
		Status:     game.StatusRunning,
		Arena:      arena,
		ScoreLimit: 3,
		Ball:       game.Ball{X: 375, Y: 275, Width: 50, Height: 50},
		Players: [2]game.PlayerState{
			{Index: 0, Name: "Computer", Paddle: game.Paddle{X: 0, Y: 200, Width: 25, Height: 200, Score: 1}},
			{Index: 1, Name: "Ana", Paddle: game.Paddle{X: 775, Y: 200, Width: 25, Height: 200, Score: 2}},
		},
	}
}

func rowsOf(c *Canvas) []string { return strings.Split(c.Plain(), "\n") }

func TestFrame_Game(t *testing.T) {
	c := Frame(shell.View{Screen: shell.ScreenGame, Snapshot: testSnapshot(), HasSnapshot: true}, 80, 32)
	rows := rowsOf(c)
	require.Len(t, rows, 32)

	assert.True(t, strings.HasPrefix(rows[0], " Computer 1"))
	assert.True(t, strings.HasSuffix(rows[0], "2 Ana"))
	assert.Contains(t, rows[0], "first to 3")

	for row := 15; row <= 18; row++ {
		assert.Equal(t, 'O', rune(rows[row][40]), "ball row %d", row)
	}
	assert.NotContains(t, rows[14], "O")
	assert.Equal(t, '|', rune(rows[12][0]))
	assert.Equal(t, '|', rune(rows[12][79]))
}

func TestFrame_YGrowsUpward(t *testing.T) {
	snap := testSnapshot()
	snap.Ball.Y = 0
	rows := rowsOf(Frame(shell.View{Screen: shell.ScreenGame, Snapshot: snap, HasSnapshot: true}, 80, 32))

	assert.Contains(t, rows[31], "O", "a ball on the floor is drawn on the last row")
	assert.NotContains(t, rows[2], "O")
}

func TestFrame_Paused(t *testing.T) {
	snap := testSnapshot()
	snap.Status = game.StatusPaused
	rows := rowsOf(Frame(shell.View{Screen: shell.ScreenGame, Snapshot: snap, HasSnapshot: true}, 80, 32))
	assert.Contains(t, rows[0], "paused")
}

func TestFrame_Screens(t *testing.T) {
	main := Frame(shell.View{Screen: shell.ScreenMain, Notice: shell.NoticeNoActiveMatch}, 80, 24).Plain()
	for _, item := range shell.MenuItems {
		assert.Contains(t, main, item)
	}
	assert.Contains(t, main, shell.NoticeNoActiveMatch)

	over := Frame(shell.View{Screen: shell.ScreenGameOver, Winner: "Ana wins"}, 80, 24).Plain()
	assert.Contains(t, over, "Ana wins")

	help := Frame(shell.View{Screen: shell.ScreenHelp}, 100, 30).Plain()
	assert.Contains(t, help, "Left paddle")

	settings := Frame(shell.View{Screen: shell.ScreenSettings, Settings: game.DefaultSettings(), Locked: true, Cursor: shell.FieldDifficulty}, 100, 24).Plain()
	assert.Contains(t, settings, "> Difficulty")
	assert.Contains(t, settings, "(locked during match)")
}

func TestGamePoint_InvertsFillRect(t *testing.T) {
	arena := utils.Rect{W: 800, H: 600}

	p, ok := GamePoint(70, 12, 80, 24, arena)
	require.True(t, ok)
	assert.InDelta(t, 705, p.X, 1e-9)
	assert.InDelta(t, 600-10.5*600/22, p.Y, 1e-9)

	c := NewCanvas(80, 24)
	c.FillRect(utils.Rect{X: p.X, Y: p.Y}, arena, headerRows, '*', nil)
	rows := strings.Split(c.Plain(), "\n")
	assert.Equal(t, '*', rune(rows[12][70]))

	for _, cell := range [][2]int{{5, 1}, {-1, 10}, {80, 10}, {5, 24}} {
		_, ok := GamePoint(cell[0], cell[1], 80, 24, arena)
		assert.False(t, ok, "cell %v", cell)
	}
}

func TestCanvas_StringUsesRawModeLineEndings(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0, 'x', &ballColor)
	c.Set(9, 9, 'y', nil)

	out := c.String()
	assert.True(t, strings.HasPrefix(out, cursorHome))
	assert.Contains(t, out, "\r\n")
	assert.Contains(t, out, rgbToAnsi(ballColor)+"x"+resetColor)
	assert.Equal(t, "x", c.Plain()[:1])
}
