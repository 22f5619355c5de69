// Package recording provides hooks that observe an AttemptController and
// keep a record of the attempts.
package recording

import (
	"sync"

	"github.com/rs/xid"
	"github.com/sarchlab/landersim/datarecording"
	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/sim"
)

// Table names used by the AttemptRecorder.
const (
	AttemptTableName = "attempts"
	RunTableName     = "runs"
)

// AttemptEntry is one finished attempt.
type AttemptEntry struct {
	RunID          string
	Attempt        int
	Outcome        string
	Gravity        float64
	InitialSpeed   float64
	ImpactVelocity float64
	StartTime      float64
	EndTime        float64
}

// RunEntry is one run that reached a terminal state.
type RunEntry struct {
	RunID       string
	Outcome     string
	AttemptsRun int
	MaxAttempts int
	Successes   int
	EndTime     float64
}

// AttemptRecorder is a hook that writes attempts and runs into a
// DataRecorder. It is also a simulation end handler that flushes the
// recorder.
type AttemptRecorder struct {
	recorder datarecording.DataRecorder

	lock         sync.Mutex
	runID        string
	attemptStart sim.VTimeInSec
}

// NewAttemptRecorder creates an AttemptRecorder and the tables it writes
// into.
func NewAttemptRecorder(
	recorder datarecording.DataRecorder,
) *AttemptRecorder {
	r := &AttemptRecorder{
		recorder: recorder,
		runID:    xid.New().String(),
	}

	recorder.CreateTable(AttemptTableName, AttemptEntry{})
	recorder.CreateTable(RunTableName, RunEntry{})

	return r
}

// RunID returns the ID of the run being recorded.
func (r *AttemptRecorder) RunID() string {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.runID
}

// Handle flushes the recorded attempts.
func (r *AttemptRecorder) Handle(_ sim.VTimeInSec) {
	r.recorder.Flush()
}

// Func records the hook.
func (r *AttemptRecorder) Func(ctx sim.HookCtx) {
	info, ok := ctx.Item.(lander.AttemptInfo)
	if !ok {
		return
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	switch ctx.Pos {
	case lander.HookPosReset:
		r.runID = xid.New().String()
	case lander.HookPosAttemptBegin:
		r.attemptStart = info.Time
	case lander.HookPosLanded:
		r.insertAttempt(info, lander.Landed)
		r.insertRun(info, "landed")
	case lander.HookPosCrashed:
		r.insertAttempt(info, lander.Crashed)
	case lander.HookPosExhausted:
		r.insertRun(info, "exhausted")
	}
}

func (r *AttemptRecorder) insertAttempt(
	info lander.AttemptInfo,
	status lander.Status,
) {
	r.recorder.InsertData(AttemptTableName, AttemptEntry{
		RunID:          r.runID,
		Attempt:        info.Limits.AttemptsRun,
		Outcome:        status.String(),
		Gravity:        info.Params.Gravity,
		InitialSpeed:   info.Params.InitialSpeed,
		ImpactVelocity: info.ImpactVelocity,
		StartTime:      float64(r.attemptStart),
		EndTime:        float64(info.Time),
	})
}

func (r *AttemptRecorder) insertRun(info lander.AttemptInfo, outcome string) {
	r.recorder.InsertData(RunTableName, RunEntry{
		RunID:       r.runID,
		Outcome:     outcome,
		AttemptsRun: info.Limits.AttemptsRun,
		MaxAttempts: info.Limits.MaxAttempts,
		Successes:   info.Limits.Successes,
		EndTime:     float64(info.Time),
	})
}
