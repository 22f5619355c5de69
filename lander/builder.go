package lander

import (
	"time"

	"github.com/sarchlab/landersim/sim"
)

// Builder can build AttemptControllers.
type Builder struct {
	scheduler  sim.Scheduler
	rand       RandSource
	ranges     ParameterRanges
	adjustment Adjustment
	override   Override

	tickInterval     time.Duration
	retryDelay       time.Duration
	landingThreshold float64
	viewportWidth    float64
	viewportHeight   float64
	groundOffset     float64
	startHeight      float64
}

// MakeBuilder creates a builder with the default parameters.
func MakeBuilder() Builder {
	return Builder{
		ranges:           DefaultParameterRanges(),
		adjustment:       DefaultAdjustment(),
		tickInterval:     50 * time.Millisecond,
		retryDelay:       800 * time.Millisecond,
		landingThreshold: 4.0,
		viewportWidth:    800,
		viewportHeight:   500,
		groundOffset:     100,
		startHeight:      50,
	}
}

// WithScheduler sets the scheduler that drives the ticks and the retries.
func (b Builder) WithScheduler(s sim.Scheduler) Builder {
	b.scheduler = s
	return b
}

// WithRandSource sets the source of randomness used on reset.
func (b Builder) WithRandSource(r RandSource) Builder {
	b.rand = r
	return b
}

// WithSeed uses a seeded RandSource.
func (b Builder) WithSeed(seed int64) Builder {
	b.rand = NewRandSource(seed)
	return b
}

// WithParameterRanges sets the ranges that parameters are drawn from.
func (b Builder) WithParameterRanges(r ParameterRanges) Builder {
	b.ranges = r
	return b
}

// WithAdjustment sets the rule applied after a crash.
func (b Builder) WithAdjustment(a Adjustment) Builder {
	b.adjustment = a
	return b
}

// WithOverride forces values that are otherwise drawn on every reset.
func (b Builder) WithOverride(o Override) Builder {
	b.override = o
	return b
}

// WithTickInterval sets the time between two physics steps.
func (b Builder) WithTickInterval(d time.Duration) Builder {
	b.tickInterval = d
	return b
}

// WithRetryDelay sets the pause between a crash and the next attempt.
func (b Builder) WithRetryDelay(d time.Duration) Builder {
	b.retryDelay = d
	return b
}

// WithLandingThreshold sets the highest impact velocity that still counts as
// a landing.
func (b Builder) WithLandingThreshold(v float64) Builder {
	b.landingThreshold = v
	return b
}

// WithViewport sets the size of the area the lander falls in. The lander
// starts at the horizontal center.
func (b Builder) WithViewport(width, height float64) Builder {
	b.viewportWidth = width
	b.viewportHeight = height

	return b
}

// WithGroundOffset sets the distance between the ground and the bottom of the
// viewport.
func (b Builder) WithGroundOffset(offset float64) Builder {
	b.groundOffset = offset
	return b
}

// WithStartHeight sets where each attempt starts.
func (b Builder) WithStartHeight(y float64) Builder {
	b.startHeight = y
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.scheduler == nil {
		panic("lander controller requires a scheduler")
	}

	if b.tickInterval <= 0 {
		panic("tick interval must be positive")
	}

	if b.retryDelay < 0 {
		panic("retry delay cannot be negative")
	}

	if b.override.MaxAttempts < 0 || b.override.Gravity < 0 ||
		b.override.InitialSpeed < 0 {
		panic("forced values cannot be negative")
	}

	if b.ranges.MinAttempts < 1 || b.ranges.MaxAttempts < b.ranges.MinAttempts {
		panic("invalid attempt range")
	}
}

// Build creates a new AttemptController and sets up its first run.
func (b Builder) Build(name string) *AttemptController {
	b.parametersMustBeValid()

	c := &AttemptController{
		ComponentBase:    sim.NewComponentBase(name),
		scheduler:        b.scheduler,
		rand:             b.rand,
		ranges:           b.ranges,
		adjustment:       b.adjustment,
		override:         b.override,
		tickFreq:         sim.FreqOfPeriod(b.tickInterval),
		retryDelay:       sim.DurationToVTime(b.retryDelay),
		landingThreshold: b.landingThreshold,
		originX:          b.viewportWidth / 2,
		startHeight:      b.startHeight,
		groundY:          b.viewportHeight - b.groundOffset,
	}

	if c.rand == nil {
		c.rand = NewRandSource(time.Now().UnixNano())
	}

	c.Reset()

	return c
}
