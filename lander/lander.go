package lander

import "fmt"

// Status is the status of a lander.
type Status int

// All the statuses of a lander.
const (
	Flying Status = iota
	Landed
	Crashed
)

func (s Status) String() string {
	switch s {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	case Crashed:
		return "crashed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText encodes the status as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// A Lander is the falling body of one attempt. Y grows downwards.
type Lander struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VelocityY float64 `json:"velocity_y"`
	Gravity   float64 `json:"gravity"`
	Status    Status  `json:"status"`
}

// NewLander creates a flying lander at the given position.
func NewLander(x, y float64, params SimulationParameters) *Lander {
	return &Lander{
		X:         x,
		Y:         y,
		VelocityY: params.InitialSpeed,
		Gravity:   params.Gravity,
		Status:    Flying,
	}
}

// Step integrates one tick of motion.
func (l *Lander) Step() {
	l.VelocityY += l.Gravity
	l.Y += l.VelocityY
}

// IsFlying tells if the lander is still in the air.
func (l *Lander) IsFlying() bool {
	return l.Status == Flying
}
