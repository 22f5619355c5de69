package sim

import (
	"fmt"
	"log"
	"sync"
)

// A Callback is invoked when a timer fires. The argument is the virtual time
// of the firing.
type Callback func(now VTimeInSec)

// A Cancelable can stop a scheduled callback from firing.
type Cancelable interface {
	Cancel()
}

// A Scheduler runs callbacks after a delay or repeatedly at a fixed interval.
type Scheduler interface {
	TimeTeller

	// ScheduleRepeating fires cb every interval, starting one interval from
	// now, until the returned handle is cancelled.
	ScheduleRepeating(interval VTimeInSec, cb Callback) Cancelable

	// ScheduleOnce fires cb once, delay from now.
	ScheduleOnce(delay VTimeInSec, cb Callback) Cancelable
}

// A Timer is the handle of a scheduled callback.
type Timer struct {
	lock      sync.Mutex
	start     VTimeInSec
	interval  VTimeInSec
	freq      Freq
	repeating bool
	cancelled bool
	fired     uint64
	cb        Callback
}

// Cancel stops the timer. A cancelled timer never fires again. Cancelling a
// timer from inside its own callback is allowed.
func (t *Timer) Cancel() {
	t.lock.Lock()
	t.cancelled = true
	t.lock.Unlock()
}

// firing returns the time of the n-th firing of a repeating timer.
func (t *Timer) firing(n uint64) VTimeInSec {
	return t.start + t.freq.NCyclesLater(int(n), 0)
}

// IsCancelled tells if the timer has been cancelled.
func (t *Timer) IsCancelled() bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.cancelled
}

// Fired returns how many times the timer has fired.
func (t *Timer) Fired() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.fired
}

// CallbackEvent is the event that fires a Timer.
type CallbackEvent struct {
	EventBase
	timer *Timer
}

// MakeCallbackEvent creates a new CallbackEvent.
func MakeCallbackEvent(
	handler Handler,
	time VTimeInSec,
	timer *Timer,
) CallbackEvent {
	evt := CallbackEvent{}
	evt.ID = GetIDGenerator().Generate()
	evt.handler = handler
	evt.time = time
	evt.timer = timer

	return evt
}

// Timer returns the timer that the event fires.
func (e CallbackEvent) Timer() *Timer {
	return e.timer
}

// EngineScheduler implements the Scheduler interface on top of an Engine.
// Callbacks run on the goroutine that runs the engine.
type EngineScheduler struct {
	name   string
	Engine Engine
}

// NewEngineScheduler creates a new EngineScheduler.
func NewEngineScheduler(name string, engine Engine) *EngineScheduler {
	return &EngineScheduler{
		name:   name,
		Engine: engine,
	}
}

// Name returns the name of the scheduler.
func (s *EngineScheduler) Name() string {
	return s.name
}

// CurrentTime returns the current time of the underlying engine.
func (s *EngineScheduler) CurrentTime() VTimeInSec {
	return s.Engine.CurrentTime()
}

// ScheduleRepeating fires cb every interval until cancelled. The n-th firing
// happens exactly n intervals after the call.
func (s *EngineScheduler) ScheduleRepeating(
	interval VTimeInSec,
	cb Callback,
) Cancelable {
	if interval <= 0 {
		log.Panic("repeating interval must be positive")
	}

	t := &Timer{
		start:     s.CurrentTime(),
		interval:  interval,
		freq:      Freq(1 / float64(interval)),
		repeating: true,
		cb:        cb,
	}

	s.Engine.Schedule(MakeCallbackEvent(s, t.firing(1), t))

	return t
}

// ScheduleOnce fires cb once after delay.
func (s *EngineScheduler) ScheduleOnce(
	delay VTimeInSec,
	cb Callback,
) Cancelable {
	if delay < 0 {
		log.Panic("delay cannot be negative")
	}

	t := &Timer{
		start:    s.CurrentTime(),
		interval: delay,
		cb:       cb,
	}

	s.Engine.Schedule(MakeCallbackEvent(s, t.start+delay, t))

	return t
}

// Handle fires the timer carried by a CallbackEvent.
func (s *EngineScheduler) Handle(e Event) error {
	evt, ok := e.(CallbackEvent)
	if !ok {
		return fmt.Errorf("scheduler %s cannot handle event %T", s.name, e)
	}

	t := evt.timer

	t.lock.Lock()
	if t.cancelled {
		t.lock.Unlock()
		return nil
	}
	t.fired++
	fired := t.fired
	t.lock.Unlock()

	t.cb(evt.Time())

	if !t.repeating || t.IsCancelled() {
		return nil
	}

	s.Engine.Schedule(MakeCallbackEvent(s, t.firing(fired+1), t))

	return nil
}
