// File: shell/shell.go
package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/input"
	"github.com/lguibr/duopong/utils"
)

// NoticeNoActiveMatch is shown when Resume finds nothing to resume.
const NoticeNoActiveMatch = "No active match. Start a new game first."

// Shell tracks the current screen and routes keys to the controller. It is
// also a game.Sink so the session can tell it when a match ends. Handle,
// Poll and View must be called from one goroutine; Publish and MatchEnded
// may come from the session actor.
type Shell struct {
	ctrl    game.Controller
	logger  *log.Logger
	cache   game.SnapshotCache
	endedCh chan game.MatchEnded

	screen Screen
	notice string
	winner string
	draft  game.Settings
	cursor Field
	locked bool
	quit   bool
}

// New creates a shell on the main screen. Attach must be called before
// the first key is handled.
func New(logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{
		logger:  logger.With("component", "shell"),
		endedCh: make(chan game.MatchEnded, 1),
		screen:  ScreenMain,
	}
}

// Attach binds the controller the shell drives.
func (s *Shell) Attach(ctrl game.Controller) { s.ctrl = ctrl }

func (s *Shell) Screen() Screen { return s.screen }
func (s *Shell) Notice() string { return s.notice }
func (s *Shell) Quit() bool     { return s.quit }

func (s *Shell) Publish(snap game.Snapshot) { s.cache.Publish(snap) }

func (s *Shell) MatchEnded(ev game.MatchEnded) {
	s.cache.MatchEnded(ev)
	select {
	case s.endedCh <- ev:
	default:
		s.logger.Warn("dropping match end, previous one not consumed", "match", ev.MatchID)
	}
}

// Poll applies events reported by the session since the last call.
func (s *Shell) Poll() {
	for {
		select {
		case ev := <-s.endedCh:
			s.winner = fmt.Sprintf("%s wins", ev.WinnerName)
			s.notice = ""
			s.show(ScreenGameOver)
		default:
			return
		}
	}
}

// Handle applies one key press on the current screen.
func (s *Shell) Handle(k input.Key) {
	if k.Code == input.CodeInterrupt {
		s.quit = true
		return
	}
	switch s.screen {
	case ScreenMain:
		s.handleMain(k)
	case ScreenGame:
		s.handleGame(k)
	case ScreenSettings:
		s.handleSettings(k)
	case ScreenHelp:
		s.show(ScreenMain)
	case ScreenGameOver:
		s.handleGameOver(k)
	}
}

func (s *Shell) show(screen Screen) {
	if s.screen != screen {
		s.logger.Debug("screen", "from", s.screen, "to", screen)
	}
	s.screen = screen
}

func (s *Shell) handleMain(k input.Key) {
	switch {
	case k.Is('1'):
		s.StartGame()
	case k.Is('2'):
		s.ResumeGame()
	case k.Is('3'):
		s.OpenSettings()
	case k.Is('4'):
		s.notice = ""
		s.show(ScreenHelp)
	case k.Is('5'), k.Is('q'):
		s.quit = true
	}
}

// StartGame replaces any active match with one from the saved settings.
func (s *Shell) StartGame() {
	if err := s.ctrl.NewGame(); err != nil {
		s.notice = fmt.Sprintf("Cannot start: %v", err)
		return
	}
	s.notice = ""
	s.show(ScreenGame)
}

// ResumeGame continues the active match. Without one it only sets a notice.
func (s *Shell) ResumeGame() {
	err := s.ctrl.Resume()
	switch {
	case errors.Is(err, game.ErrNoActiveMatch):
		s.notice = NoticeNoActiveMatch
	case err != nil:
		s.notice = fmt.Sprintf("Cannot resume: %v", err)
	default:
		s.notice = ""
		s.show(ScreenGame)
	}
}

// OpenSettings loads a draft of the current settings. The draft is read
// only while a match exists.
func (s *Shell) OpenSettings() {
	current, err := s.ctrl.Settings()
	if err != nil {
		s.notice = fmt.Sprintf("Cannot load settings: %v", err)
		return
	}
	_, s.locked = s.ctrl.Snapshot()
	s.draft = current
	s.cursor = FieldNumPlayers
	s.notice = ""
	s.show(ScreenSettings)
}

func (s *Shell) handleGame(k input.Key) {
	switch {
	case k.Is('w'):
		s.ctrl.Send(game.MoveUp{Player: utils.Player1})
	case k.Is('s'):
		s.ctrl.Send(game.MoveDown{Player: utils.Player1})
	case k.Is('i'), k.Is('+'), k.Code == input.CodeUp:
		s.ctrl.Send(game.MoveUp{Player: utils.Player2})
	case k.Is('k'), k.Code == input.CodeEnter, k.Code == input.CodeDown:
		s.ctrl.Send(game.MoveDown{Player: utils.Player2})
	case k.Code == input.CodeSpace, k.Code == input.CodeEscape:
		if err := s.ctrl.TogglePause(); errors.Is(err, game.ErrNoActiveMatch) {
			s.notice = NoticeNoActiveMatch
		}
		s.show(ScreenMain)
	case k.Is('q'):
		s.quit = true
	}
}

// Drag steers a paddle from a pointer at arena coordinates (x, y). It only
// acts on the game screen; the match decides which paddle, if any, moves.
func (s *Shell) Drag(x, y float64) {
	if s.screen != ScreenGame {
		return
	}
	s.ctrl.Send(game.TouchDrag{X: x, Y: y})
}

func (s *Shell) handleSettings(k input.Key) {
	switch k.Code {
	case input.CodeUp:
		s.cursor = Field(wrap(int(s.cursor)-1, 0, int(fieldCount)-1))
		return
	case input.CodeDown:
		s.cursor = Field(wrap(int(s.cursor)+1, 0, int(fieldCount)-1))
		return
	case input.CodeEscape:
		s.notice = ""
		s.show(ScreenMain)
		return
	case input.CodeEnter:
		saved, err := s.ctrl.SaveSettings(s.draft)
		s.draft = saved
		if err != nil {
			s.notice = fmt.Sprintf("Settings not saved: %v", err)
			return
		}
		s.notice = "Settings saved"
		return
	}

	if s.locked {
		if isEdit(k) {
			s.notice = fmt.Sprintf("%s cannot change during a match", s.cursor.Label())
		}
		return
	}

	if s.cursor.MatchShaping() {
		step := 0
		switch k.Code {
		case input.CodeRight, input.CodeSpace:
			step = 1
		case input.CodeLeft:
			step = -1
		}
		if step != 0 {
			s.draft = s.cursor.cycle(s.draft, step)
		}
		return
	}

	if !s.cursor.editableName(s.draft) {
		return
	}
	idx := 0
	if s.cursor == FieldRightName {
		idx = 1
	}
	name := []rune(s.draft.PlayerNames[idx])
	switch {
	case k.Code == input.CodeBackspace && len(name) > 0:
		name = name[:len(name)-1]
	case k.Code == input.CodeRune && len(name) < maxNameLength:
		name = append(name, k.Rune)
	case k.Code == input.CodeSpace && len(name) < maxNameLength:
		name = append(name, ' ')
	}
	s.draft.PlayerNames[idx] = string(name)
}

// isEdit reports whether k would change a settings field.
func isEdit(k input.Key) bool {
	switch k.Code {
	case input.CodeLeft, input.CodeRight, input.CodeSpace, input.CodeBackspace, input.CodeRune:
		return true
	}
	return false
}

func (s *Shell) handleGameOver(k input.Key) {
	switch {
	case k.Is('q'):
		s.quit = true
	case k.Code == input.CodeEnter, k.Code == input.CodeEscape, k.Is('h'):
		s.winner = ""
		s.show(ScreenMain)
	}
}

// View is everything a renderer needs for the current frame.
type View struct {
	Screen      Screen
	Notice      string
	Snapshot    game.Snapshot
	HasSnapshot bool
	Settings    game.Settings
	Cursor      Field
	Locked      bool
	Winner      string
}

func (s *Shell) View() View {
	v := View{
		Screen:   s.screen,
		Notice:   s.notice,
		Settings: s.draft,
		Cursor:   s.cursor,
		Locked:   s.locked,
		Winner:   s.winner,
	}
	v.Snapshot, v.HasSnapshot = s.cache.Latest()
	return v
}

var _ game.Sink = (*Shell)(nil)
