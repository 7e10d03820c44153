package utils

// Player slots. Player1 is the left paddle, Player2 the right one.
const (
	Player1 = 0
	Player2 = 1

	MaxPlayers = 2
)

// Defaults used when no settings were saved yet.
const (
	DefaultScoreLimit = 1
	DefaultNumPlayers = 1
	DefaultBallSpeed  = 4
	DefaultDifficulty = "easy"
)
