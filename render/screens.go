package render

import (
	"fmt"
	"strings"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/shell"
	"github.com/lguibr/duopong/utils"
)

// headerRows is the scoreboard height above the arena on the game screen.
const headerRows = 2

// GamePoint maps a terminal cell on the game screen to arena coordinates.
func GamePoint(col, row, cols, rows int, arena utils.Rect) (utils.Vector, bool) {
	return ArenaPoint(col, row, cols, rows, headerRows, arena)
}

// Frame draws v onto a canvas of the given terminal size.
func Frame(v shell.View, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	switch v.Screen {
	case shell.ScreenGame:
		drawGame(c, v)
	case shell.ScreenSettings:
		drawSettings(c, v)
	case shell.ScreenHelp:
		drawLines(c, 1, strings.Split(shell.HelpText, "\n"))
		c.Text(2, rows-1, "Press any key to go back", nil)
	case shell.ScreenGameOver:
		c.Centered(rows/2-1, v.Winner, &ballColor)
		c.Centered(rows/2+1, "Enter: main menu   q: quit", nil)
	default:
		drawMain(c, v)
	}
	if v.Notice != "" && v.Screen != shell.ScreenGame {
		c.Text(2, rows-2, v.Notice, &playerColors[1])
	}
	return c
}

func drawMain(c *Canvas, v shell.View) {
	_, rows := c.Size()
	top := rows/2 - len(shell.MenuItems)
	c.Centered(top-2, "D U O P O N G", &ballColor)
	for i, item := range shell.MenuItems {
		c.Centered(top+i*2, fmt.Sprintf("%d  %-12s", i+1, item), nil)
	}
}

func drawGame(c *Canvas, v shell.View) {
	cols, _ := c.Size()
	if !v.HasSnapshot {
		c.Centered(0, "waiting for the match", nil)
		return
	}
	snap := v.Snapshot
	left, right := snap.Players[0], snap.Players[1]

	c.Text(1, 0, fmt.Sprintf("%s %d", left.Name, left.Paddle.Score), &playerColors[0])
	score := fmt.Sprintf("%d %s", right.Paddle.Score, right.Name)
	c.Text(cols-1-len([]rune(score)), 0, score, &playerColors[1])
	status := fmt.Sprintf("first to %d", snap.ScoreLimit)
	if snap.Status == game.StatusPaused {
		status = "paused"
	}
	c.Centered(0, status, nil)
	for col := 0; col < cols; col++ {
		c.Set(col, 1, '-', nil)
	}

	for i, p := range snap.Players {
		c.FillRect(p.Paddle.Bounds(), snap.Arena, headerRows, '|', &playerColors[i])
	}
	c.FillRect(snap.Ball.Bounds(), snap.Arena, headerRows, 'O', &ballColor)
}

func drawSettings(c *Canvas, v shell.View) {
	c.Text(2, 1, "Settings", &ballColor)
	for f := shell.FieldNumPlayers; f <= shell.FieldRightName; f++ {
		marker := "  "
		if f == v.Cursor {
			marker = "> "
		}
		c.Text(2, 3+int(f), fmt.Sprintf("%s%-12s %s", marker, f.Label(), f.Value(v.Settings)), nil)
	}
	if v.Locked {
		c.Text(2, 4+int(shell.FieldRightName), "(locked during match)", nil)
	}
	_, rows := c.Size()
	c.Text(2, rows-1, "Up/Down select  Left/Right change  type to edit names  Enter save  Esc back", nil)
}

func drawLines(c *Canvas, top int, lines []string) {
	for i, line := range lines {
		c.Text(2, top+i, line, nil)
	}
}
