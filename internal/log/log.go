// internal/log/log.go
//
// Package log provides reaper's logging abstraction. It wraps logrus so
// that internal packages get structured, leveled output without each one
// reaching for its own formatting conventions.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the interface reaper uses for logging.
//
// It is intentionally small so that it can be easily adapted to other
// logging frameworks if needed.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// WithField returns a Logger that attaches key=value to every
	// subsequent entry, used to tag log lines with the URL or host
	// currently being processed.
	WithField(key string, value any) Logger
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New creates a new Logger instance.
//
// If debug is true, the logger emits Debug-level entries as well;
// otherwise it uses Info as a reasonable default.
func New(debug bool) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (s *logrusLogger) Debugf(format string, args ...any) { s.entry.Debugf(format, args...) }
func (s *logrusLogger) Infof(format string, args ...any)  { s.entry.Infof(format, args...) }
func (s *logrusLogger) Warnf(format string, args ...any)  { s.entry.Warnf(format, args...) }
func (s *logrusLogger) Errorf(format string, args ...any) { s.entry.Errorf(format, args...) }

func (s *logrusLogger) WithField(key string, value any) Logger {
	return &logrusLogger{entry: s.entry.WithField(key, value)}
}
