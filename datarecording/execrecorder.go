package datarecording

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sarchlab/landersim/sim"
)

// ExecInfo is one property of the program execution.
type ExecInfo struct {
	Property string
	Value    string
}

// ExecTableName is the table that ExecRecorder writes into.
const ExecTableName = "exec_info"

// ExecRecorder records how the program was executed.
type ExecRecorder struct {
	recorder DataRecorder
	entries  []ExecInfo
}

// NewExecRecorder creates a new ExecRecorder and the table it writes to.
func NewExecRecorder(recorder DataRecorder) *ExecRecorder {
	e := &ExecRecorder{
		recorder: recorder,
	}

	e.recorder.CreateTable(ExecTableName, ExecInfo{})

	return e
}

// Start logs the start of the current execution.
func (e *ExecRecorder) Start() {
	e.Add("Start Time", now())
	e.Add("Command", strings.Join(os.Args, " "))

	ex, err := os.Executable()
	if err == nil {
		e.Add("Executable Directory", filepath.Dir(ex))
	}
}

// Add adds a property of the execution.
func (e *ExecRecorder) Add(property, value string) {
	e.entries = append(e.entries, ExecInfo{property, value})
}

// End writes all properties into the database along with the exit time.
func (e *ExecRecorder) End() {
	for _, entry := range e.entries {
		e.recorder.InsertData(ExecTableName, entry)
	}

	e.recorder.InsertData(ExecTableName, ExecInfo{"End Time", now()})

	e.entries = nil

	e.recorder.Flush()
}

// Handle records the virtual time at which the simulation ended and writes
// the properties.
func (e *ExecRecorder) Handle(now sim.VTimeInSec) {
	e.Add("End Virtual Time", strconv.FormatFloat(float64(now), 'f', -1, 64))
	e.End()
}

func now() string {
	return time.Now().Format("2006-01-02 15:04:05.000000000")
}
