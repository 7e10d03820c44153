// File: render/ascii.go
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/lguibr/duopong/utils"
)

// ANSI sequences understood by every terminal we target.
const (
	clearScreen = "\033[2J\033[H"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	resetColor  = "\033[0m"
	clearLine   = "\033[K"
)

func ClearScreen(w io.Writer) { io.WriteString(w, clearScreen) }
func HideCursor(w io.Writer)  { io.WriteString(w, hideCursor) }
func ShowCursor(w io.Writer)  { io.WriteString(w, showCursor) }

// RGB is a 24-bit terminal colour.
type RGB struct{ R, G, B uint8 }

// Player colours, left then right.
var playerColors = [utils.MaxPlayers]RGB{{R: 80, G: 180, B: 255}, {R: 255, G: 140, B: 60}}

var ballColor = RGB{R: 240, G: 240, B: 240}

// rgbToAnsi converts a colour to its foreground escape code.
func rgbToAnsi(c RGB) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

type cell struct {
	ch    rune
	color *RGB
}

// Canvas is a character grid. Row 0 is the top of the terminal.
type Canvas struct {
	cols, rows int
	cells      [][]cell
}

func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, cols)
		for j := range cells[i] {
			cells[i][j].ch = ' '
		}
	}
	return &Canvas{cols: cols, rows: rows, cells: cells}
}

func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// Set writes one cell, ignoring positions off the grid.
func (c *Canvas) Set(col, row int, ch rune, color *RGB) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row][col] = cell{ch: ch, color: color}
}

// Text writes s starting at (col, row).
func (c *Canvas) Text(col, row int, s string, color *RGB) {
	for i, r := range []rune(s) {
		c.Set(col+i, row, r, color)
	}
}

// Centered writes s horizontally centred on row.
func (c *Canvas) Centered(row int, s string, color *RGB) {
	c.Text((c.cols-len([]rune(s)))/2, row, s, color)
}

// FillRect draws r, given in arena coordinates with y growing upward, into
// the rows between top and the bottom of the canvas. Every rectangle covers
// at least one cell so zero-sized objects stay visible.
func (c *Canvas) FillRect(r, arena utils.Rect, top int, ch rune, color *RGB) {
	if arena.W <= 0 || arena.H <= 0 {
		return
	}
	rows := c.rows - top
	sx := float64(c.cols) / arena.W
	sy := float64(rows) / arena.H

	col0 := int(math.Floor((r.X - arena.X) * sx))
	col1 := int(math.Ceil((r.Right()-arena.X)*sx)) - 1
	// Flip: arena top maps to the first row below the header.
	row0 := top + int(math.Floor((arena.Top()-r.Top())*sy))
	row1 := top + int(math.Ceil((arena.Top()-r.Y)*sy)) - 1
	if col1 < col0 {
		col1 = col0
	}
	if row1 < row0 {
		row1 = row0
	}

	for row := row0; row <= row1; row++ {
		if row < top {
			continue
		}
		for col := col0; col <= col1; col++ {
			c.Set(col, row, ch, color)
		}
	}
}

// ArenaPoint maps the centre of a terminal cell back to arena coordinates,
// undoing the scaling and flip of FillRect. It reports false for cells
// outside the arena rows.
func ArenaPoint(col, row, cols, rows, top int, arena utils.Rect) (utils.Vector, bool) {
	avail := rows - top
	if arena.W <= 0 || arena.H <= 0 || cols <= 0 || avail <= 0 {
		return utils.Vector{}, false
	}
	if col < 0 || col >= cols || row < top || row >= rows {
		return utils.Vector{}, false
	}
	sx := float64(cols) / arena.W
	sy := float64(avail) / arena.H
	return utils.Vector{
		X: arena.X + (float64(col)+0.5)/sx,
		Y: arena.Top() - (float64(row-top)+0.5)/sy,
	}, true
}

// String renders the grid for a terminal in raw mode, starting from the
// home position so frames overwrite each other without flicker.
func (c *Canvas) String() string {
	var b strings.Builder
	b.WriteString(cursorHome)
	for i, line := range c.cells {
		var current *RGB
		for _, cl := range line {
			if cl.color != current {
				if cl.color == nil {
					b.WriteString(resetColor)
				} else {
					b.WriteString(rgbToAnsi(*cl.color))
				}
				current = cl.color
			}
			b.WriteRune(cl.ch)
		}
		if current != nil {
			b.WriteString(resetColor)
		}
		b.WriteString(clearLine)
		if i < len(c.cells)-1 {
			b.WriteString("\r\n")
		}
	}
	return b.String()
}

// Plain returns the grid without escape codes, one line per row.
func (c *Canvas) Plain() string {
	lines := make([]string, len(c.cells))
	for i, line := range c.cells {
		var b strings.Builder
		for _, cl := range line {
			b.WriteRune(cl.ch)
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}
