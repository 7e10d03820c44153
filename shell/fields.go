package shell

import (
	"fmt"

	"github.com/lguibr/duopong/game"
)

// Field is one editable line on the settings screen.
type Field int

const (
	FieldNumPlayers Field = iota
	FieldDifficulty
	FieldScoreLimit
	FieldBallSpeed
	FieldLeftName
	FieldRightName
	fieldCount
)

const (
	maxScoreLimit = 21
	maxBallSpeed  = 12
	maxNameLength = 16
)

func (f Field) Label() string {
	switch f {
	case FieldNumPlayers:
		return "Players"
	case FieldDifficulty:
		return "Difficulty"
	case FieldScoreLimit:
		return "Score limit"
	case FieldBallSpeed:
		return "Ball speed"
	case FieldLeftName:
		return "Left name"
	case FieldRightName:
		return "Right name"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// MatchShaping fields are stepped through fixed values; the rest are typed.
func (f Field) MatchShaping() bool {
	return f == FieldNumPlayers || f == FieldDifficulty || f == FieldScoreLimit || f == FieldBallSpeed
}

// Value renders the field from s.
func (f Field) Value(s game.Settings) string {
	switch f {
	case FieldNumPlayers:
		return fmt.Sprint(s.NumPlayers)
	case FieldDifficulty:
		return string(s.AIDifficulty)
	case FieldScoreLimit:
		return fmt.Sprint(s.ScoreLimit)
	case FieldBallSpeed:
		return fmt.Sprint(s.BallSpeed)
	case FieldLeftName:
		return s.PlayerNames[0]
	case FieldRightName:
		return s.PlayerNames[1]
	}
	return ""
}

// editableName reports whether the name field belongs to a human slot.
func (f Field) editableName(s game.Settings) bool {
	switch f {
	case FieldLeftName:
		return s.NumPlayers == 2
	case FieldRightName:
		return s.NumPlayers >= 1
	}
	return false
}

// cycle steps a value field forward (step 1) or backward (step -1).
func (f Field) cycle(s game.Settings, step int) game.Settings {
	switch f {
	case FieldNumPlayers:
		s.NumPlayers = wrap(s.NumPlayers+step, 0, 2)
	case FieldDifficulty:
		if step > 0 {
			s.AIDifficulty = s.AIDifficulty.Next()
		} else {
			for i := 0; i < len(game.Difficulties())-1; i++ {
				s.AIDifficulty = s.AIDifficulty.Next()
			}
		}
	case FieldScoreLimit:
		s.ScoreLimit = wrap(s.ScoreLimit+step, 1, maxScoreLimit)
	case FieldBallSpeed:
		s.BallSpeed = float64(wrap(int(s.BallSpeed)+step, 1, maxBallSpeed))
	}
	return s
}

func wrap(v, lo, hi int) int {
	switch {
	case v < lo:
		return hi
	case v > hi:
		return lo
	}
	return v
}
