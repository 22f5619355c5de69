package simulation

import (
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/rs/xid"
	"github.com/sarchlab/landersim/config"
	"github.com/sarchlab/landersim/datarecording"
	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/monitoring"
	"github.com/sarchlab/landersim/recording"
	"github.com/sarchlab/landersim/sim"
)

// Builder can be used to build a simulation.
type Builder struct {
	cfg         config.Config
	monitorOn   bool
	logOutput   io.Writer
	controlName string
}

// MakeBuilder creates a new builder with the default configuration.
func MakeBuilder() Builder {
	return Builder{
		cfg:         config.Default(),
		monitorOn:   true,
		logOutput:   os.Stderr,
		controlName: "Controller",
	}
}

// WithConfig replaces the whole configuration.
func (b Builder) WithConfig(cfg config.Config) Builder {
	b.cfg = cfg
	return b
}

// WithSeed sets the seed of the parameter draws.
func (b Builder) WithSeed(seed int64) Builder {
	b.cfg.Seed = seed
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.cfg.Recording.OutputFile = filename
	return b
}

// WithoutRecording disables the attempt database.
func (b Builder) WithoutRecording() Builder {
	b.cfg.Recording.Enabled = false
	return b
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.cfg.Monitor.Port = port
	return b
}

// WithRealTime paces the engine against the wall clock. A speed of 1 runs in
// real time.
func (b Builder) WithRealTime(speed float64) Builder {
	b.cfg.RealTime = speed
	return b
}

// WithLogOutput sets where the progress of the controller is printed. Nil
// disables the log.
func (b Builder) WithLogOutput(w io.Writer) Builder {
	b.logOutput = w
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.cfg.Monitor.Port != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if err := b.cfg.Validate(); err != nil {
		panic(err)
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		openBrowser:   b.cfg.Monitor.OpenBrowser,
		compNameIndex: make(map[string]int),
		wake:          make(chan struct{}, 1),
	}

	s.engine = sim.NewSerialEngine()
	s.scheduler = sim.NewEngineScheduler("Scheduler", s.engine)

	b.buildController(s)
	b.attachLoggers(s)
	b.buildRecorder(s)
	b.buildMonitor(s)

	if b.cfg.RealTime > 0 {
		s.engine.AcceptHook(sim.NewWallClockPacer(b.cfg.RealTime))
	}

	s.RegisterComponent(s.controller)

	return s
}

func (b Builder) buildController(s *Simulation) {
	p := b.cfg.Physics

	seed := b.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.seed = seed

	s.controller = lander.MakeBuilder().
		WithScheduler(s.scheduler).
		WithSeed(seed).
		WithTickInterval(p.TickInterval).
		WithRetryDelay(p.RetryDelay).
		WithLandingThreshold(p.LandingThreshold).
		WithViewport(p.ViewportWidth, p.ViewportHeight).
		WithGroundOffset(p.GroundOffset).
		WithStartHeight(p.StartHeight).
		WithOverride(lander.Override{
			MaxAttempts:  b.cfg.Override.MaxAttempts,
			Gravity:      b.cfg.Override.Gravity,
			InitialSpeed: b.cfg.Override.InitialSpeed,
		}).
		Build(b.controlName)
}

func (b Builder) attachLoggers(s *Simulation) {
	if b.logOutput == nil {
		return
	}

	s.controller.AcceptHook(recording.NewControllerLogger(
		log.New(b.logOutput, "", log.LstdFlags)))

	if b.cfg.LogEvents {
		s.engine.AcceptHook(sim.NewEventLogger(log.New(b.logOutput, "", 0)))
	}
}

func (b Builder) buildRecorder(s *Simulation) {
	if !b.cfg.Recording.Enabled {
		return
	}

	outputPath := b.cfg.Recording.OutputFile
	if outputPath == "" {
		outputPath = "landersim_" + s.id
	}

	s.dataRecorder = datarecording.New(outputPath)
	s.outputPath = outputPath + ".sqlite3"

	s.attemptRecorder = recording.NewAttemptRecorder(s.dataRecorder)
	s.controller.AcceptHook(s.attemptRecorder)

	s.execRecorder = datarecording.NewExecRecorder(s.dataRecorder)
	s.execRecorder.Start()
	s.execRecorder.Add("Seed", strconv.FormatInt(s.seed, 10))

	s.engine.RegisterSimulationEndHandler(s.attemptRecorder)
	s.engine.RegisterSimulationEndHandler(s.execRecorder)
}

func (b Builder) buildMonitor(s *Simulation) {
	if !b.monitorOn {
		return
	}

	s.monitor = monitoring.NewMonitor()
	if b.cfg.Monitor.Port > 0 {
		s.monitor.WithPortNumber(b.cfg.Monitor.Port)
	}

	s.monitor.RegisterEngine(s.engine)
	s.monitor.RegisterController(s.controller)
	s.monitor.OnStart(s.Wake)

	s.controller.AcceptHook(monitoring.NewAttemptProgress(s.monitor))
}
