// File: utils/config.go
package utils

import "time"

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	TickRate   int           `json:"tickRate"`   // Nominal simulation ticks per second
	TickPeriod time.Duration `json:"tickPeriod"` // Calculated: time.Second / TickRate

	// Arena
	ArenaWidth  float64 `json:"arenaWidth"`  // Logical width of the playing field
	ArenaHeight float64 `json:"arenaHeight"` // Logical height of the playing field (y grows upward)

	// Paddle Properties
	PaddleWidth       float64 `json:"paddleWidth"`       // Thickness of a paddle
	PaddleHeight      float64 `json:"paddleHeight"`      // Length of a paddle along the side
	HumanPaddleSpeed  float64 `json:"humanPaddleSpeed"`  // Distance a human paddle moves per key press
	AIStartHeightRate float64 `json:"aiStartHeightRate"` // AI paddles start with centre y at this fraction of the height

	// Ball Physics & Properties
	BallSize float64 `json:"ballSize"` // Side of the ball bounding square

	// Hosts
	SettingsPath  string `json:"settingsPath"`  // Settings file used by the file store
	SpectatorAddr string `json:"spectatorAddr"` // Spectator HTTP listen address, empty disables it
	SSHAddr       string `json:"sshAddr"`       // Listen address of the SSH host
	SSHHostKey    string `json:"sshHostKey"`    // Host key path for the SSH host
	LogLevel      string `json:"logLevel"`      // debug, info, warn or error
	LogFile       string `json:"logFile"`       // Log destination of the terminal host, empty discards
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	tickRate := 60

	return Config{
		// Timing
		TickRate:   tickRate,
		TickPeriod: time.Second / time.Duration(tickRate),

		// Arena
		ArenaWidth:  800,
		ArenaHeight: 600,

		// Paddle Properties
		PaddleWidth:       25,
		PaddleHeight:      200,
		HumanPaddleSpeed:  75,
		AIStartHeightRate: 0.75,

		// Ball Physics & Properties
		BallSize: 50,

		// Hosts
		SettingsPath:  "gamesettings.pong",
		SpectatorAddr: "",
		SSHAddr:       ":2222",
		SSHHostKey:    ".ssh/duopong_host_key",
		LogLevel:      "info",
		LogFile:       "duopong.log",
	}
}
