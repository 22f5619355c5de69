package lander

import "fmt"

// State is the state of an AttemptController.
type State int

// All the states of a controller. Halted follows a successful landing and
// Exhausted follows running out of attempts.
const (
	Idle State = iota
	Running
	Halted
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state as its name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal tells if no attempt can follow without a new start.
func (s State) IsTerminal() bool {
	return s == Halted || s == Exhausted
}
