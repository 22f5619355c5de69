package sim

import (
	"io"
	"log"
)

// LogHookBase is embedded by hooks that print what they observe.
type LogHookBase struct {
	*log.Logger
}

// MakeLogHookBase wraps logger. A nil logger discards every line.
func MakeLogHookBase(logger *log.Logger) LogHookBase {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return LogHookBase{Logger: logger}
}
