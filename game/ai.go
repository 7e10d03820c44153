package game

// AIController steers a paddle it does not own. It only reacts once the
// ball's x, less the paddle width, falls within VisionThreshold.
type AIController struct {
	Difficulty      Difficulty `json:"difficulty"`
	VisionRange     int        `json:"visionRange"`
	VisionThreshold float64    `json:"visionThreshold"`

	paddle      *Paddle
	visionWidth float64
	visionValid bool
}

// NewAIController binds an AI to paddle and sets the paddle speed from the
// difficulty profile.
func NewAIController(paddle *Paddle, d Difficulty) (*AIController, error) {
	profile, ok := d.Profile()
	if !ok {
		return nil, &ConfigError{Field: "difficulty", Value: d, Reason: "unknown difficulty"}
	}
	paddle.Speed = profile.Speed
	return &AIController{
		Difficulty:  d,
		VisionRange: profile.VisionRange,
		paddle:      paddle,
	}, nil
}

// UpdateVision recomputes the threshold for the given arena width.
func (ai *AIController) UpdateVision(arenaWidth float64) {
	ai.VisionThreshold = arenaWidth / float64(ai.VisionRange)
	ai.visionWidth = arenaWidth
	ai.visionValid = true
}

// RefreshVision updates the threshold only when arenaWidth changed since the
// last computation. It reports whether a recomputation happened.
func (ai *AIController) RefreshVision(arenaWidth float64) bool {
	if ai.visionValid && ai.visionWidth == arenaWidth {
		return false
	}
	ai.UpdateVision(arenaWidth)
	return true
}

func (ai *AIController) BallInVision(ball *Ball) bool {
	return ball.X-ai.paddle.Width <= ai.VisionThreshold
}

// Intercept is a dead-band tracker: it moves toward the ball only when the
// ball's y lies outside the paddle span.
func (ai *AIController) Intercept(ball *Ball) {
	if !ai.BallInVision(ball) {
		return
	}
	p := ai.paddle
	switch {
	case ball.Y < p.Y:
		p.MoveDown()
	case ball.Y > p.Y+p.Height:
		p.MoveUp()
	}
}
