package sim

// A TimeTeller reports the virtual time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// An EventScheduler accepts events that happen at or after the current time.
type EventScheduler interface {
	Schedule(e Event)
}

// A SimulationEndHandler is told when the owner of the engine shuts the
// simulation down.
type SimulationEndHandler interface {
	Handle(now VTimeInSec)
}

// Interruptible is the part of an engine that goroutines other than the one
// calling Run may use.
type Interruptible interface {
	// Pause blocks the engine before its next event until Continue.
	Pause()
	Continue()

	// Exclusive runs f while no event is being handled.
	Exclusive(f func())
}

// An Engine owns the virtual clock and handles events in time order.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler
	Interruptible

	// Run processes all the events until the queue drains. Run can be called
	// again after it returns if more events are scheduled.
	Run() error

	RegisterSimulationEndHandler(handler SimulationEndHandler)
	Finished()
}
