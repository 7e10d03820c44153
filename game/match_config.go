package game

// MatchConfig describes a match before it starts. It is copied into the
// MatchState and never changes afterwards.
type MatchConfig struct {
	NumPlayers       int        `json:"numPlayers"` // 0 = both AI, 1 = left AI, 2 = both human
	Difficulty       Difficulty `json:"difficulty"`
	ScoreLimit       int        `json:"scoreLimit"`
	InitialBallSpeed float64    `json:"initialBallSpeed"`
	PlayerNames      [2]string  `json:"playerNames"`
}

// Validate rejects configurations that could never end or cannot be built.
func (mc MatchConfig) Validate() error {
	if mc.NumPlayers < 0 || mc.NumPlayers > 2 {
		return &ConfigError{Field: "numPlayers", Value: mc.NumPlayers, Reason: "want 0, 1 or 2"}
	}
	if _, ok := mc.Difficulty.Profile(); !ok {
		return &ConfigError{Field: "difficulty", Value: mc.Difficulty, Reason: "want easy, moderate, hard or insane"}
	}
	if mc.ScoreLimit < 1 {
		return &ConfigError{Field: "scoreLimit", Value: mc.ScoreLimit, Reason: "must be at least 1"}
	}
	if mc.InitialBallSpeed <= 0 {
		return &ConfigError{Field: "initialBallSpeed", Value: mc.InitialBallSpeed, Reason: "must be positive"}
	}
	return nil
}

// Roles resolves both player slots from NumPlayers.
func (mc MatchConfig) Roles() [2]Role {
	switch mc.NumPlayers {
	case 0:
		return [2]Role{RoleAI, RoleAI}
	case 1:
		return [2]Role{RoleAI, RoleHuman}
	default:
		return [2]Role{RoleHuman, RoleHuman}
	}
}
