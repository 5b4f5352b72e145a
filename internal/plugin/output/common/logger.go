package common

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// VerboseLogger adapts an hclog.Logger to the Printf-style logger used by the
// template loader. Messages are logged at debug level.
type VerboseLogger struct {
	logger hclog.Logger
}

// NewVerboseLogger creates a VerboseLogger that writes to the given logger.
// A nil logger discards everything.
func NewVerboseLogger(logger hclog.Logger) *VerboseLogger {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &VerboseLogger{logger: logger}
}

// Printf logs a formatted message.
func (l *VerboseLogger) Printf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
