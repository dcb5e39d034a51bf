package deltalog

import (
	"time"

	"go.uber.org/zap"
)

// Reporter receives diagnostic timing for each top-level comparison. it is an
// injected collaborator, not part of the comparison contract: implementations
// must not assume they run on the caller's goroutine ordering guarantees
// beyond "after the comparison completed".
type Reporter interface {
	Timing(label string, elapsed time.Duration)
}

// nopReporter is the default: diagnostics off unless explicitly configured
type nopReporter struct{}

func (nopReporter) Timing(string, time.Duration) {}

// zapReporter logs comparison timing at debug level
type zapReporter struct {
	log *zap.Logger
}

// NewZapReporter returns a Reporter that writes timing measurements to log.
// a nil log yields a no-op reporter.
func NewZapReporter(log *zap.Logger) Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return zapReporter{log: log}
}

func (r zapReporter) Timing(label string, elapsed time.Duration) {
	r.log.Debug("comparison complete",
		zap.String("label", label),
		zap.Duration("elapsed", elapsed),
	)
}
