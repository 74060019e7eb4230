package partition

import (
	"fmt"
	"log"
	"os"
)

// Logger is the small leveled logging seam Coordinator accepts, mirroring
// the teacher's hook-based options (bfs.Option's OnVisit, dfs.Option's
// OnEnqueue) rather than a hard dependency on a specific logging framework.
// A nil Logger is valid: Coordinator treats it as the no-op implementation.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// noopLogger discards everything; it's the default when no Logger option is
// supplied.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Warnf(string, ...interface{})  {}

// stdLogger is the default non-silent Logger, backed by the standard
// library's log.Logger the way the teacher keeps its own ambient tooling
// dependency-free.
type stdLogger struct {
	debug bool
	l     *log.Logger
}

// NewStdLogger returns a Logger that writes to os.Stderr with a "partkit: "
// prefix. debug controls whether Debugf lines are emitted at all.
func NewStdLogger(debug bool) Logger {
	return &stdLogger{debug: debug, l: log.New(os.Stderr, "partkit: ", log.LstdFlags)}
}

func (s *stdLogger) Debugf(format string, args ...interface{}) {
	if !s.debug {
		return
	}
	s.l.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
}

func (s *stdLogger) Infof(format string, args ...interface{}) {
	s.l.Output(2, "INFO "+fmt.Sprintf(format, args...))
}

func (s *stdLogger) Warnf(format string, args ...interface{}) {
	s.l.Output(2, "WARN "+fmt.Sprintf(format, args...))
}
