package sim

import (
	"log"
	"time"
)

// WallClockPacer is a hook that slows an engine down so that virtual time
// advances together with wall-clock time. A speed of 2 runs twice as fast as
// real time.
type WallClockPacer struct {
	speed float64
	sleep func(time.Duration)
	now   func() time.Time

	started     bool
	lastVirtual VTimeInSec
	lastWall    time.Time
}

// NewWallClockPacer creates a new WallClockPacer.
func NewWallClockPacer(speed float64) *WallClockPacer {
	if speed <= 0 {
		log.Panic("pacing speed must be positive")
	}

	return &WallClockPacer{
		speed: speed,
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// Func sleeps before each event until the wall clock catches up with the
// virtual time of the event.
func (p *WallClockPacer) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	if !p.started {
		p.started = true
		p.lastVirtual = evt.Time()
		p.lastWall = p.now()

		return
	}

	virtualGap := float64(evt.Time()-p.lastVirtual) / p.speed
	wait := VTimeInSec(virtualGap).Duration() - p.now().Sub(p.lastWall)
	if wait > 0 {
		p.sleep(wait)
	}

	p.lastVirtual = evt.Time()
	p.lastWall = p.now()
}
