package recording

import (
	"log"

	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/sim"
)

// ControllerLogger is a hook that prints the progress of an
// AttemptController.
type ControllerLogger struct {
	sim.LogHookBase

	// Verbose also prints the start of every attempt.
	Verbose bool
}

// NewControllerLogger creates a ControllerLogger writing into logger. A nil
// logger discards the output.
func NewControllerLogger(logger *log.Logger) *ControllerLogger {
	return &ControllerLogger{LogHookBase: sim.MakeLogHookBase(logger)}
}

// Func writes the hook information into the logger.
func (h *ControllerLogger) Func(ctx sim.HookCtx) {
	info, ok := ctx.Item.(lander.AttemptInfo)
	if !ok {
		return
	}

	switch ctx.Pos {
	case lander.HookPosReset:
		h.Printf("setup: %d attempts, gravity %.3f, initial speed %.2f",
			info.Limits.MaxAttempts, info.Params.Gravity,
			info.Params.InitialSpeed)
	case lander.HookPosAttemptBegin:
		if h.Verbose {
			h.Printf("%.2f, attempt %d/%d, gravity %.3f, initial speed %.2f",
				info.Time, info.Limits.AttemptsRun, info.Limits.MaxAttempts,
				info.Params.Gravity, info.Params.InitialSpeed)
		}
	case lander.HookPosCrashed:
		h.Printf("%.2f, attempt %d crashed at %.2f, next gravity %.3f, "+
			"next initial speed %.2f",
			info.Time, info.Limits.AttemptsRun, info.ImpactVelocity,
			info.NextParams.Gravity, info.NextParams.InitialSpeed)
	case lander.HookPosLanded:
		h.Printf("%.2f, successful landing at attempt %d",
			info.Time, info.Limits.AttemptsRun)
	case lander.HookPosExhausted:
		h.Printf("%.2f, simulation ended, no further attempts",
			info.Time)
	}
}
