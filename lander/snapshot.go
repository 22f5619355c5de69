package lander

// A Snapshot is a copy of the controller state for renderers and monitors.
type Snapshot struct {
	Name    string               `json:"name"`
	State   State                `json:"state"`
	Running bool                 `json:"running"`
	Limits  AttemptLimits        `json:"limits"`
	Params  SimulationParameters `json:"params"`
	GroundY float64              `json:"ground_y"`

	// Lander is nil before the first attempt of a run.
	Lander *Lander `json:"lander,omitempty"`
}

// CurrentVelocity returns the vertical velocity of the live lander, or 0 if
// there is none.
func (s Snapshot) CurrentVelocity() float64 {
	if s.Lander == nil {
		return 0
	}

	return s.Lander.VelocityY
}
