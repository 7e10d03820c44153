package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_Normalize(t *testing.T) {
	previous := Settings{ScoreLimit: 7}

	testCases := []struct {
		name     string
		in       Settings
		expected Settings
	}{
		{
			"ZeroPlayersNamesComputers",
			Settings{PlayerNames: [2]string{"a", "b"}, ScoreLimit: 3, AIDifficulty: "Moderate", NumPlayers: 0, BallSpeed: 5},
			Settings{PlayerNames: [2]string{"Computer1", "Computer2"}, ScoreLimit: 3, AIDifficulty: Moderate, NumPlayers: 0, BallSpeed: 5},
		},
		{
			"OnePlayerKeepsRightName",
			Settings{PlayerNames: [2]string{"a", " Ana "}, ScoreLimit: 2, AIDifficulty: Easy, NumPlayers: 1, BallSpeed: 4},
			Settings{PlayerNames: [2]string{"Computer", "Ana"}, ScoreLimit: 2, AIDifficulty: Easy, NumPlayers: 1, BallSpeed: 4},
		},
		{
			"TwoPlayersKeepBothNames",
			Settings{PlayerNames: [2]string{"Ana", ""}, ScoreLimit: 2, AIDifficulty: Easy, NumPlayers: 2, BallSpeed: 4},
			Settings{PlayerNames: [2]string{"Ana", "Player 2"}, ScoreLimit: 2, AIDifficulty: Easy, NumPlayers: 2, BallSpeed: 4},
		},
		{
			"BadScoreLimitKeepsPrevious",
			Settings{PlayerNames: [2]string{"", "Bo"}, ScoreLimit: 0, AIDifficulty: Easy, NumPlayers: 1, BallSpeed: 4},
			Settings{PlayerNames: [2]string{"Computer", "Bo"}, ScoreLimit: 7, AIDifficulty: Easy, NumPlayers: 1, BallSpeed: 4},
		},
		{
			"SlowBallAndBadCountFallBack",
			Settings{PlayerNames: [2]string{"", ""}, ScoreLimit: 1, AIDifficulty: "", NumPlayers: 9, BallSpeed: 0.5},
			Settings{PlayerNames: [2]string{"Computer", "Player"}, ScoreLimit: 1, AIDifficulty: Easy, NumPlayers: 1, BallSpeed: 4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.in.Normalize(previous))
		})
	}
}

func TestSettings_MatchConfig(t *testing.T) {
	mc := DefaultSettings().MatchConfig()
	assert.NoError(t, mc.Validate())
	assert.Equal(t, MatchConfig{
		NumPlayers:       1,
		Difficulty:       Easy,
		ScoreLimit:       1,
		InitialBallSpeed: 4,
		PlayerNames:      [2]string{"Computer", "Player"},
	}, mc)
	assert.Equal(t, [2]Role{RoleAI, RoleHuman}, mc.Roles())
}

func TestSettings_UnknownDifficultyFailsAtStart(t *testing.T) {
	s := DefaultSettings()
	s.AIDifficulty = "nightmare"
	s = s.Normalize(DefaultSettings())
	assert.ErrorIs(t, s.MatchConfig().Validate(), ErrInvalidConfig)
}
