// Package simulation wires an AttemptController to an engine, a data
// recorder and a monitor.
package simulation

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sarchlab/landersim/datarecording"
	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/monitoring"
	"github.com/sarchlab/landersim/recording"
	"github.com/sarchlab/landersim/sim"
)

// A Simulation provides the service requires to run a lander controller.
type Simulation struct {
	id   string
	seed int64

	engine     *sim.SerialEngine
	scheduler  *sim.EngineScheduler
	controller *lander.AttemptController

	dataRecorder    datarecording.DataRecorder
	attemptRecorder *recording.AttemptRecorder
	execRecorder    *datarecording.ExecRecorder
	outputPath      string

	monitor     *monitoring.Monitor
	openBrowser bool

	components    []sim.Component
	compNameIndex map[string]int

	wake          chan struct{}
	terminateOnce sync.Once
}

// ID returns the ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Seed returns the seed of the parameter draws.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetController returns the lander controller.
func (s *Simulation) GetController() *lander.AttemptController {
	return s.controller
}

// GetDataRecorder returns the data recorder used in the simulation. It is
// nil if recording is disabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// OutputPath returns the database file of the recorder, or an empty string
// if recording is disabled.
func (s *Simulation) OutputPath() string {
	return s.outputPath
}

// GetMonitor returns the monitor used in the simulation.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil && c != sim.Component(s.controller) {
		s.monitor.RegisterComponent(c)
	}
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	idx, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[idx]
}

// Components returns all registered components.
func (s *Simulation) Components() []sim.Component {
	return s.components
}

// Setup draws a new run, as the setup button does.
func (s *Simulation) Setup() {
	s.controller.Reset()
}

// RunOnce starts the controller and runs the engine until no event is left.
// It returns the state of the controller at the end.
func (s *Simulation) RunOnce() (lander.Snapshot, error) {
	s.controller.Start()

	err := s.engine.Run()
	if err != nil {
		return s.controller.Snapshot(), fmt.Errorf("running simulation: %w", err)
	}

	return s.controller.Snapshot(), nil
}

// Wake asks a serving simulation to run the engine.
func (s *Simulation) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Serve starts the monitor and runs the engine whenever a command wakes the
// simulation. It returns when ctx is cancelled.
func (s *Simulation) Serve(ctx context.Context) error {
	if s.monitor != nil {
		url, err := s.monitor.StartServer()
		if err != nil {
			return err
		}

		defer func() { _ = s.monitor.StopServer() }()

		if s.openBrowser {
			if err := s.monitor.OpenInBrowser(url); err != nil {
				fmt.Fprintf(os.Stderr, "Cannot open browser: %s\n", err)
			}
		}
	}

	stop := context.AfterFunc(ctx, func() {
		s.engine.Exclusive(s.controller.Reset)
		s.engine.Continue()
	})
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.wake:
			err := s.engine.Run()
			if err != nil {
				return fmt.Errorf("running simulation: %w", err)
			}
		}
	}
}

// Terminate tells the end handlers that the simulation is over and closes
// the recorder. Calls after the first do nothing.
func (s *Simulation) Terminate() {
	s.terminateOnce.Do(func() {
		s.engine.Finished()

		if s.dataRecorder == nil {
			return
		}

		if err := s.dataRecorder.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Closing recorder: %s\n", err)
		}
	})
}
