package game

// InputEvent is a discrete host input applied between ticks.
type InputEvent interface {
	isInputEvent()
}

// MoveUp nudges a human paddle up by its speed.
type MoveUp struct {
	Player int
}

// MoveDown nudges a human paddle down by its speed.
type MoveDown struct {
	Player int
}

// SetPaddleY places a human paddle's centre at Y.
type SetPaddleY struct {
	Player int
	Y      float64
}

// TouchDrag is a drag at arena coordinates. The left third steers player 1,
// the right third player 2.
type TouchDrag struct {
	X, Y float64
}

// TogglePause switches between running and paused.
type TogglePause struct{}

// Resize changes the arena dimensions. AI vision is recomputed lazily.
type Resize struct {
	Width, Height float64
}

func (MoveUp) isInputEvent()      {}
func (MoveDown) isInputEvent()    {}
func (SetPaddleY) isInputEvent()  {}
func (TouchDrag) isInputEvent()   {}
func (TogglePause) isInputEvent() {}
func (Resize) isInputEvent()      {}
