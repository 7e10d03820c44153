// Package shell is the menu layer around a game session: it decides what
// each key means on the current screen and which screen comes next.
package shell

import "fmt"

// Screen is one page of the shell.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenGame
	ScreenSettings
	ScreenHelp
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenGame:
		return "game"
	case ScreenSettings:
		return "settings"
	case ScreenHelp:
		return "help"
	case ScreenGameOver:
		return "gameover"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// MenuItems are the main screen entries, selected by their number.
var MenuItems = []string{
	"Start Game",
	"Resume Game",
	"Settings",
	"Help",
	"Quit",
}

// HelpText is shown on the help screen.
const HelpText = `Controls
  Left paddle     w / s
  Right paddle    i or + or Up / k or Enter or Down
  Pause           Space (returns to the main menu, Resume continues)
  Quit            q

Settings
  Players         0 = computer vs computer, 1 = computer vs you, 2 = two players
  Difficulty      how fast computer paddles move and how early they react
                  (easy, moderate, hard, insane)
  Score limit     first to reach it wins
  Ball speed      horizontal speed of every serve
  Names           shown on the scoreboard; only editable with human players

Settings cannot change while a match is in progress.`
