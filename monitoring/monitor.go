// Package monitoring turns a simulation into an HTTP server that can be
// inspected and controlled while it runs.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/sim"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"
)

// A Controller is a component that accepts setup and start commands.
type Controller interface {
	sim.Component

	Reset()
	Start()
	Snapshot() lander.Snapshot
}

// Monitor can turn a simulation into a server and allows external monitoring
// controlling of the simulation.
type Monitor struct {
	engine     sim.Engine
	controller Controller
	components []sim.Component
	portNumber int
	wake       func()

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar

	server *http.Server
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		wake: func() {},
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber > 0 && portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine registers the engine that is used in the simulation.
func (m *Monitor) RegisterEngine(e sim.Engine) {
	m.engine = e
}

// RegisterController registers the controller that receives the setup and
// start commands. The controller is also registered as a component.
func (m *Monitor) RegisterController(c Controller) {
	m.controller = c
	m.RegisterComponent(c)
}

// RegisterComponent register a component to be monitored.
func (m *Monitor) RegisterComponent(c sim.Component) {
	m.components = append(m.components, c)
}

// OnStart sets the function called after a start command so that the engine
// gets run.
func (m *Monitor) OnStart(wake func()) {
	m.wake = wake
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:        sim.GetIDGenerator().Generate(),
		Name:      name,
		StartTime: time.Now(),
		Total:     total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar to be shown on the webpage.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// Router returns the handler that serves the monitoring API.
func (m *Monitor) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/setup", m.setup).Methods(http.MethodPost)
	r.HandleFunc("/api/start", m.start).Methods(http.MethodPost)
	r.HandleFunc("/api/state", m.state).Methods(http.MethodGet)
	r.HandleFunc("/api/pause", m.pauseEngine).Methods(http.MethodPost)
	r.HandleFunc("/api/continue", m.continueEngine).Methods(http.MethodPost)
	r.HandleFunc("/api/now", m.now).Methods(http.MethodGet)
	r.HandleFunc("/api/list_components", m.listComponents)
	r.HandleFunc("/api/component/{name}", m.listComponentDetails)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)

	return r
}

// StartServer starts the monitor as a web server and returns the URL it
// listens on.
func (m *Monitor) StartServer() (string, error) {
	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	if err != nil {
		return "", fmt.Errorf("starting monitor: %w", err)
	}

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	m.server = &http.Server{
		Handler:           m.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		err := m.server.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			log.Panic(err)
		}
	}()

	return url, nil
}

// StopServer shuts the web server down.
func (m *Monitor) StopServer() error {
	if m.server == nil {
		return nil
	}

	return m.server.Close()
}

// OpenInBrowser opens the monitor in the default browser.
func (m *Monitor) OpenInBrowser(url string) error {
	return browser.OpenURL(url + "/api/state")
}

func (m *Monitor) setup(w http.ResponseWriter, _ *http.Request) {
	if !m.controllerOr404(w) {
		return
	}

	m.exclusive(m.controller.Reset)
	m.writeJSON(w, m.controller.Snapshot())
}

func (m *Monitor) start(w http.ResponseWriter, _ *http.Request) {
	if !m.controllerOr404(w) {
		return
	}

	m.exclusive(m.controller.Start)
	m.wake()
	m.writeJSON(w, m.controller.Snapshot())
}

// exclusive runs a controller command between two events.
func (m *Monitor) exclusive(command func()) {
	if m.engine == nil {
		command()
		return
	}

	m.engine.Exclusive(command)
}

func (m *Monitor) state(w http.ResponseWriter, _ *http.Request) {
	if !m.controllerOr404(w) {
		return
	}

	m.writeJSON(w, m.controller.Snapshot())
}

func (m *Monitor) controllerOr404(w http.ResponseWriter) bool {
	if m.controller != nil {
		return true
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("No controller registered"))
	dieOnErr(err)

	return false
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	now := m.engine.CurrentTime()
	fmt.Fprintf(w, "{\"now\":%.10f}", now)
}

func (m *Monitor) listComponents(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(m.components))
	for _, c := range m.components {
		names = append(names, c.Name())
	}

	m.writeJSON(w, names)
}

func (m *Monitor) listComponentDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	component := m.findComponentOr404(w, name)
	if component == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(component)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

func (m *Monitor) findComponentOr404(
	w http.ResponseWriter,
	name string,
) sim.Component {
	var component sim.Component
	for _, c := range m.components {
		if c.Name() == name {
			component = c
		}
	}

	if component == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Component not found"))
		dieOnErr(err)
	}

	return component
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	bars := make([]ProgressBarStatus, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		bars = append(bars, b.Status())
	}
	m.progressBarsLock.Unlock()

	m.writeJSON(w, bars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	m.writeJSON(w, rsp)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintf(w, "Error: %s", err)

		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	m.writeJSON(w, prof)
}

func (m *Monitor) writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
