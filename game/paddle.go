// File: game/paddle.go
package game

import (
	"fmt"
	"math"

	"github.com/lguibr/duopong/utils"
)

const (
	// SoftReturnThreshold is the largest reflected |vx| that still gets amplified.
	SoftReturnThreshold = 25.0
	// SoftReturnFactor scales the whole velocity on a soft return.
	SoftReturnFactor = 1.1
)

// Paddle is a vertical bat. Y grows upward and (X, Y) is the lower-left corner.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
	Score  int     `json:"score"`
}

// NewPaddle creates a paddle at (x, y).
func NewPaddle(x, y, width, height, speed float64) *Paddle {
	return &Paddle{X: x, Y: y, Width: width, Height: height, Speed: speed}
}

func (p *Paddle) Bounds() utils.Rect {
	return utils.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// SetCenterY moves the paddle so its centre sits at y.
func (p *Paddle) SetCenterY(y float64) { p.Y = y - p.Height/2 }

// MoveUp and MoveDown do not clamp to the arena.
func (p *Paddle) MoveUp()   { p.Y += p.Speed }
func (p *Paddle) MoveDown() { p.Y -= p.Speed }

// AddPoint increments the score and returns the new value.
func (p *Paddle) AddPoint() int {
	if p.Score < 0 {
		panic(fmt.Sprintf("game: paddle score went negative (%d)", p.Score))
	}
	p.Score++
	return p.Score
}

// BounceOff reflects the ball when it overlaps the paddle and reports
// whether it did. The vertical component gains the strike offset from the
// paddle centre, in half-heights.
func (p *Paddle) BounceOff(ball *Ball) bool {
	if !p.Bounds().Intersects(ball.Bounds()) {
		return false
	}

	offset := 0.0
	if p.Height > 0 {
		offset = (ball.CenterY() - p.CenterY()) / (p.Height / 2)
	}

	bounced := utils.Vector{X: -ball.Vx, Y: ball.Vy}
	if math.Abs(bounced.X) <= SoftReturnThreshold {
		bounced = bounced.Scale(SoftReturnFactor)
	}
	ball.Vx, ball.Vy = bounced.X, bounced.Y+offset
	return true
}
