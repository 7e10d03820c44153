package game

import "strings"

// Difficulty selects the speed and reaction distance of computer paddles.
type Difficulty string

const (
	Easy     Difficulty = "easy"
	Moderate Difficulty = "moderate"
	Hard     Difficulty = "hard"
	Insane   Difficulty = "insane"
)

// AIProfile is the paddle behaviour derived from a Difficulty.
type AIProfile struct {
	Speed       float64 `json:"speed"`
	VisionRange int     `json:"visionRange"`
}

// Higher difficulties move faster but only notice the ball later.
var aiProfiles = map[Difficulty]AIProfile{
	Easy:     {Speed: 5, VisionRange: 4},
	Moderate: {Speed: 10, VisionRange: 3},
	Hard:     {Speed: 30, VisionRange: 2},
	Insane:   {Speed: 40, VisionRange: 1},
}

// Difficulties lists every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Moderate, Hard, Insane}
}

// ParseDifficulty accepts any casing and surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := aiProfiles[d]; !ok {
		return "", &ConfigError{Field: "difficulty", Value: s, Reason: "want easy, moderate, hard or insane"}
	}
	return d, nil
}

// Profile returns the AI profile for d.
func (d Difficulty) Profile() (AIProfile, bool) {
	p, ok := aiProfiles[d]
	return p, ok
}

// Next cycles to the following difficulty, wrapping after Insane.
func (d Difficulty) Next() Difficulty {
	all := Difficulties()
	for i, candidate := range all {
		if candidate == d {
			return all[(i+1)%len(all)]
		}
	}
	return Easy
}
