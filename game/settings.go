package game

import (
	"strings"

	"github.com/lguibr/duopong/utils"
)

// Settings is the persisted user preference set.
type Settings struct {
	PlayerNames  [2]string  `toml:"player_names" json:"playerNames"`
	ScoreLimit   int        `toml:"score_limit" json:"scoreLimit"`
	AIDifficulty Difficulty `toml:"ai_difficulty" json:"aiDifficulty"`
	NumPlayers   int        `toml:"num_players" json:"numPlayers"`
	BallSpeed    float64    `toml:"ball_speed" json:"ballSpeed"`
}

// SettingsStore persists Settings. Load returns ErrSettingsUnavailable when
// nothing was saved yet.
type SettingsStore interface {
	Load() (Settings, error)
	Save(s Settings) error
}

// DefaultSettings is used when the store has nothing saved.
func DefaultSettings() Settings {
	return Settings{
		PlayerNames:  [2]string{"Computer", "Player"},
		ScoreLimit:   utils.DefaultScoreLimit,
		AIDifficulty: Difficulty(utils.DefaultDifficulty),
		NumPlayers:   utils.DefaultNumPlayers,
		BallSpeed:    utils.DefaultBallSpeed,
	}
}

// Normalize applies the save rules. Fields that cannot be used fall back to
// previous or to the defaults, and player names follow the player count.
func (s Settings) Normalize(previous Settings) Settings {
	out := s
	if out.ScoreLimit < 1 {
		out.ScoreLimit = previous.ScoreLimit
		if out.ScoreLimit < 1 {
			out.ScoreLimit = utils.DefaultScoreLimit
		}
	}
	if out.BallSpeed < 1 {
		out.BallSpeed = utils.DefaultBallSpeed
	}
	if out.NumPlayers < 0 || out.NumPlayers > 2 {
		out.NumPlayers = utils.DefaultNumPlayers
	}
	out.AIDifficulty = Difficulty(strings.ToLower(strings.TrimSpace(string(out.AIDifficulty))))
	if out.AIDifficulty == "" {
		out.AIDifficulty = Difficulty(utils.DefaultDifficulty)
	}

	for i := range out.PlayerNames {
		out.PlayerNames[i] = strings.TrimSpace(out.PlayerNames[i])
	}
	switch out.NumPlayers {
	case 0:
		out.PlayerNames = [2]string{"Computer1", "Computer2"}
	case 1:
		right := out.PlayerNames[1]
		if right == "" {
			right = "Player"
		}
		out.PlayerNames = [2]string{"Computer", right}
	case 2:
		for i, name := range out.PlayerNames {
			if name == "" {
				out.PlayerNames[i] = defaultName(i, RoleHuman)
			}
		}
	}
	return out
}

// MatchConfig converts the settings into a match description. It does not
// validate; NewMatchState does.
func (s Settings) MatchConfig() MatchConfig {
	return MatchConfig{
		NumPlayers:       s.NumPlayers,
		Difficulty:       s.AIDifficulty,
		ScoreLimit:       s.ScoreLimit,
		InitialBallSpeed: s.BallSpeed,
		PlayerNames:      s.PlayerNames,
	}
}
