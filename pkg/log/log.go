// Package log provides the logging interface shared by every
// component of the emulator.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the interface that wraps the logging methods used by
// the emulator. It is satisfied by *logrus.Logger and *logrus.Entry.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at info level.
func New() Logger {
	return newLogrus(logrus.InfoLevel)
}

// NewWithLevel returns a Logger at the named level, one of
// "panic", "fatal", "error", "warn", "info", "debug" or "trace".
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newLogrus(lvl), nil
}

// NewWriter returns a debug level Logger writing to w.
func NewWriter(w io.Writer) Logger {
	l := newLogrus(logrus.DebugLevel)
	l.SetOutput(w)
	return l
}

// WithComponent tags every line written through l with the
// component name, when l is backed by logrus.
func WithComponent(l Logger, name string) Logger {
	switch lg := l.(type) {
	case *logrus.Logger:
		return lg.WithField("component", name)
	case *logrus.Entry:
		return lg.WithField("component", name)
	}
	return l
}

func newLogrus(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
