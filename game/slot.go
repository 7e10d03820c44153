package game

import "fmt"

// Role tags who drives a paddle. It is fixed when the match is created.
type Role int

const (
	RoleHuman Role = iota
	RoleAI
)

func (r Role) String() string {
	switch r {
	case RoleHuman:
		return "human"
	case RoleAI:
		return "ai"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case "human":
		*r = RoleHuman
	case "ai":
		*r = RoleAI
	default:
		return fmt.Errorf("game: unknown role %q", text)
	}
	return nil
}

// Slot is one side of the match.
type Slot struct {
	Index  int
	Name   string
	Role   Role
	Paddle *Paddle
	AI     *AIController // nil for human slots
}

func (s *Slot) IsAI() bool { return s.Role == RoleAI }

func defaultName(index int, role Role) string {
	if role == RoleAI {
		return "Computer"
	}
	return fmt.Sprintf("Player %d", index+1)
}
