package lander

import "github.com/sarchlab/landersim/sim"

// Hook positions triggered by an AttemptController. The Item of the hook
// context is always an AttemptInfo.
var (
	HookPosReset        = &sim.HookPos{Name: "Reset"}
	HookPosAttemptBegin = &sim.HookPos{Name: "AttemptBegin"}
	HookPosLanded       = &sim.HookPos{Name: "Landed"}
	HookPosCrashed      = &sim.HookPos{Name: "Crashed"}
	HookPosExhausted    = &sim.HookPos{Name: "Exhausted"}
)

// AttemptInfo describes the attempt at the moment a hook is triggered.
type AttemptInfo struct {
	Time   sim.VTimeInSec
	Limits AttemptLimits

	// Params are the parameters the attempt flew with. After a crash,
	// NextParams holds the adjusted parameters for the next attempt.
	Params     SimulationParameters
	NextParams SimulationParameters

	ImpactVelocity float64
}
