package sim

import "fmt"

// State is the phase of a session.
type State int

const (
	Playing  State = iota // simulation advances every tick
	Paused                // frozen until pause is pressed again
	GameOver              // terminal, entered on collision
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s == GameOver
}
