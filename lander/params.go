package lander

import "math"

// SimulationParameters are the physical parameters an attempt starts with.
// Gravity is in units per tick squared and InitialSpeed in units per tick.
type SimulationParameters struct {
	Gravity      float64 `json:"gravity"`
	InitialSpeed float64 `json:"initial_speed"`
}

// AttemptLimits counts the attempts of one run.
type AttemptLimits struct {
	MaxAttempts int `json:"max_attempts"`
	AttemptsRun int `json:"attempts_run"`
	Successes   int `json:"successes"`
}

// Exhausted tells if no attempt is left.
func (l AttemptLimits) Exhausted() bool {
	return l.AttemptsRun >= l.MaxAttempts
}

// ParameterRanges bound the values drawn on reset. Max values are exclusive
// for the float parameters and inclusive for MaxAttempts.
type ParameterRanges struct {
	MinAttempts     int
	MaxAttempts     int
	MinGravity      float64
	MaxGravity      float64
	MinInitialSpeed float64
	MaxInitialSpeed float64
}

// DefaultParameterRanges returns the ranges used by a fresh setup.
func DefaultParameterRanges() ParameterRanges {
	return ParameterRanges{
		MinAttempts:     1,
		MaxAttempts:     30,
		MinGravity:      0.05,
		MaxGravity:      0.30,
		MinInitialSpeed: 1,
		MaxInitialSpeed: 6,
	}
}

// Draw picks the attempt budget and the parameters of a new run.
func (r ParameterRanges) Draw(
	rand RandSource,
) (maxAttempts int, params SimulationParameters) {
	maxAttempts = r.MinAttempts + rand.Intn(r.MaxAttempts-r.MinAttempts+1)
	params.Gravity = r.MinGravity +
		rand.Float64()*(r.MaxGravity-r.MinGravity)
	params.InitialSpeed = r.MinInitialSpeed +
		rand.Float64()*(r.MaxInitialSpeed-r.MinInitialSpeed)

	return maxAttempts, params
}

// Adjustment is the rule applied to the parameters after a crash.
type Adjustment struct {
	GravityDecay      float64
	InitialSpeedDecay float64
	GravityFloor      float64
	InitialSpeedFloor float64
}

// DefaultAdjustment returns the decay applied after each crash.
func DefaultAdjustment() Adjustment {
	return Adjustment{
		GravityDecay:      0.9,
		InitialSpeedDecay: 0.85,
		GravityFloor:      0.02,
		InitialSpeedFloor: 0.5,
	}
}

// Apply returns the parameters for the attempt after a crash.
func (a Adjustment) Apply(p SimulationParameters) SimulationParameters {
	return a.Clamp(SimulationParameters{
		Gravity:      p.Gravity * a.GravityDecay,
		InitialSpeed: p.InitialSpeed * a.InitialSpeedDecay,
	})
}

// Clamp raises the parameters to the floors.
func (a Adjustment) Clamp(p SimulationParameters) SimulationParameters {
	return SimulationParameters{
		Gravity:      math.Max(a.GravityFloor, p.Gravity),
		InitialSpeed: math.Max(a.InitialSpeedFloor, p.InitialSpeed),
	}
}

// Override holds values that replace the drawn ones on every reset. Zero
// fields are not forced.
type Override struct {
	MaxAttempts  int
	Gravity      float64
	InitialSpeed float64
}

// apply replaces the drawn values with the forced ones.
func (o Override) apply(
	maxAttempts int,
	p SimulationParameters,
) (int, SimulationParameters) {
	if o.MaxAttempts > 0 {
		maxAttempts = o.MaxAttempts
	}

	if o.Gravity > 0 {
		p.Gravity = o.Gravity
	}

	if o.InitialSpeed > 0 {
		p.InitialSpeed = o.InitialSpeed
	}

	return maxAttempts, p
}
