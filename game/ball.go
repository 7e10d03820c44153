package game

import (
	"fmt"

	"github.com/lguibr/duopong/utils"
)

// Ball is square; (X, Y) is its lower-left corner.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
}

func NewBall(size float64) *Ball {
	return &Ball{Width: size, Height: size}
}

func (b *Ball) Bounds() utils.Rect {
	return utils.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

func (b *Ball) CenterY() float64 { return b.Y + b.Height/2 }

func (b *Ball) Velocity() utils.Vector { return utils.Vector{X: b.Vx, Y: b.Vy} }

// Integrate advances the ball by one tick of its velocity.
func (b *Ball) Integrate() {
	b.X += b.Vx
	b.Y += b.Vy
}

// Serve centres the ball in the arena and launches it with base scaled by
// direction, which must be 1 (rightward) or -1 (leftward).
func (b *Ball) Serve(arena utils.Rect, direction int, base utils.Vector) {
	if direction != 1 && direction != -1 {
		panic(fmt.Sprintf("game: serve direction must be ±1, got %d", direction))
	}
	c := arena.Center()
	b.X = c.X - b.Width/2
	b.Y = c.Y - b.Height/2
	v := base.Scale(float64(direction))
	b.Vx, b.Vy = v.X, v.Y
}
