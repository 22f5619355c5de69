package lander

import (
	"fmt"

	"github.com/sarchlab/landersim/sim"
)

// An AttemptController drops a lander repeatedly. Every crash makes the
// parameters gentler and schedules another attempt after a delay. A
// successful landing halts the run.
//
// Hooks are invoked after the controller releases its lock, so a hook may
// read a Snapshot but the AttemptInfo it receives is already a copy.
type AttemptController struct {
	*sim.ComponentBase

	scheduler  sim.Scheduler
	rand       RandSource
	ranges     ParameterRanges
	adjustment Adjustment
	override   Override

	tickFreq         sim.Freq
	retryDelay       sim.VTimeInSec
	landingThreshold float64
	originX          float64
	startHeight      float64
	groundY          float64

	params SimulationParameters
	limits AttemptLimits
	state  State
	lander *Lander

	// epoch changes whenever pending timers become stale, so a callback
	// that raced with a cancellation is ignored.
	epoch  uint64
	ticker sim.Cancelable
	retry  sim.Cancelable

	pending []sim.HookCtx
}

// Reset draws new parameters and a new attempt budget, zeroes the counters
// and stops any run in progress. Forced values replace the drawn ones before
// the reset hook is triggered.
func (c *AttemptController) Reset() {
	c.Lock()
	c.stopTimers()

	c.limits = AttemptLimits{}
	maxAttempts, params := c.ranges.Draw(c.rand)
	c.limits.MaxAttempts, params = c.override.apply(maxAttempts, params)
	c.params = c.adjustment.Clamp(params)
	c.lander = nil
	c.state = Idle

	c.notify(HookPosReset, c.info())
	c.unlockAndFlush()
}

// Start begins the run. It does nothing if the controller is already
// running.
func (c *AttemptController) Start() {
	c.Lock()

	if c.state == Running {
		c.Unlock()
		return
	}

	c.state = Running
	epoch := c.epoch
	c.ticker = c.scheduler.ScheduleRepeating(c.tickFreq.Period(),
		func(now sim.VTimeInSec) {
			c.tickFromTimer(epoch)
		})
	c.beginAttempt()

	c.unlockAndFlush()
}

// Tick advances the live lander by one step. It does nothing unless a lander
// is flying.
func (c *AttemptController) Tick() {
	c.Lock()
	c.tick()
	c.unlockAndFlush()
}

func (c *AttemptController) tickFromTimer(epoch uint64) {
	c.Lock()

	if epoch == c.epoch {
		c.tick()
	}

	c.unlockAndFlush()
}

func (c *AttemptController) retryFromTimer(epoch uint64) {
	c.Lock()

	if epoch == c.epoch && c.state == Running {
		c.retry = nil
		c.beginAttempt()
	}

	c.unlockAndFlush()
}

func (c *AttemptController) beginAttempt() {
	if c.limits.Exhausted() {
		c.state = Exhausted
		c.stopTimers()
		c.notify(HookPosExhausted, c.info())

		return
	}

	c.limits.AttemptsRun++
	c.lander = NewLander(c.originX, c.startHeight, c.params)
	c.notify(HookPosAttemptBegin, c.info())
}

func (c *AttemptController) tick() {
	if c.lander == nil || !c.lander.IsFlying() {
		return
	}

	c.lander.Step()

	if c.lander.Y < c.groundY {
		return
	}

	c.lander.Y = c.groundY

	if c.lander.VelocityY <= c.landingThreshold {
		c.land()
		return
	}

	c.crash()
}

func (c *AttemptController) land() {
	c.lander.Status = Landed
	c.limits.Successes++
	c.state = Halted
	c.stopTimers()

	info := c.info()
	info.ImpactVelocity = c.lander.VelocityY
	c.notify(HookPosLanded, info)
}

func (c *AttemptController) crash() {
	c.lander.Status = Crashed

	info := c.info()
	info.ImpactVelocity = c.lander.VelocityY

	c.params = c.adjustment.Apply(c.params)
	info.NextParams = c.params
	c.notify(HookPosCrashed, info)

	epoch := c.epoch
	c.retry = c.scheduler.ScheduleOnce(c.retryDelay,
		func(now sim.VTimeInSec) {
			c.retryFromTimer(epoch)
		})
}

// stopTimers cancels the ticker and the pending retry.
func (c *AttemptController) stopTimers() {
	c.epoch++

	if c.ticker != nil {
		c.ticker.Cancel()
		c.ticker = nil
	}

	if c.retry != nil {
		c.retry.Cancel()
		c.retry = nil
	}
}

func (c *AttemptController) info() AttemptInfo {
	return AttemptInfo{
		Time:   c.scheduler.CurrentTime(),
		Limits: c.limits,
		Params: c.params,
	}
}

func (c *AttemptController) notify(pos *sim.HookPos, info AttemptInfo) {
	c.pending = append(c.pending, sim.HookCtx{
		Domain: c,
		Pos:    pos,
		Item:   info,
	})
}

func (c *AttemptController) unlockAndFlush() {
	pending := c.pending
	c.pending = nil
	c.Unlock()

	for _, ctx := range pending {
		c.InvokeHook(ctx)
	}
}

// SetParameters overrides the parameters of the next attempt. Values below
// the floors are raised to the floors.
func (c *AttemptController) SetParameters(p SimulationParameters) {
	c.Lock()
	defer c.Unlock()

	c.params = c.adjustment.Clamp(p)
}

// SetMaxAttempts overrides the attempt budget of the current run.
func (c *AttemptController) SetMaxAttempts(n int) error {
	if n < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", n)
	}

	c.Lock()
	defer c.Unlock()

	if n < c.limits.AttemptsRun {
		return fmt.Errorf("max attempts %d is below the %d attempts run",
			n, c.limits.AttemptsRun)
	}

	c.limits.MaxAttempts = n

	return nil
}

// SetGroundY sets the height at which the lander touches the ground.
func (c *AttemptController) SetGroundY(y float64) {
	c.Lock()
	defer c.Unlock()

	c.groundY = y
}

// State returns the state of the controller.
func (c *AttemptController) State() State {
	c.Lock()
	defer c.Unlock()

	return c.state
}

// IsRunning tells if a run is in progress.
func (c *AttemptController) IsRunning() bool {
	return c.State() == Running
}

// Snapshot returns a copy of the controller state.
func (c *AttemptController) Snapshot() Snapshot {
	c.Lock()
	defer c.Unlock()

	s := Snapshot{
		Name:    c.Name(),
		State:   c.state,
		Running: c.state == Running,
		Limits:  c.limits,
		Params:  c.params,
		GroundY: c.groundY,
	}

	if c.lander != nil {
		l := *c.lander
		s.Lander = &l
	}

	return s
}
