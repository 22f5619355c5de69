package sim

import (
	"log"
	"reflect"
	"strconv"
)

// EventLogger prints one line per event, before the event is handled. The
// line holds the event time, the event type and, when the handler has a
// name, the handler.
type EventLogger struct {
	LogHookBase
}

// NewEventLogger creates an EventLogger writing into logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{LogHookBase: MakeLogHookBase(logger)}
}

// Func prints the event.
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	line := formatEvent(evt)
	h.Logger.Print(line)
}

func formatEvent(evt Event) string {
	typeName := reflect.TypeOf(evt).String()

	if named, ok := evt.Handler().(Named); ok {
		return fmtTime(evt.Time()) + ", " + typeName + " -> " + named.Name()
	}

	return fmtTime(evt.Time()) + ", " + typeName
}

func fmtTime(t VTimeInSec) string {
	return strconv.FormatFloat(float64(t), 'f', 10, 64)
}
