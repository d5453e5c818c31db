// Package clog is the thin structured-logging seam every ccgcount package
// logs through. It binds a component name as a logrus field so verbose-mode
// diagnostics (MissingMapping warnings, skipped UC literals, anytime-counter
// pre-filter and early-termination notes) carry consistent context without each call site
// re-stating it.
package clog

import "github.com/sirupsen/logrus"

// Logger is a component-scoped logger. The zero value is not usable; build
// one with New.
type Logger struct {
	entry *logrus.Entry
}

// base is the process-wide logrus instance. Default level is Warn; SetVerbose
// lowers it to Debug for -v on the CLI.
var base = logrus.New()

func init() {
	base.SetLevel(logrus.WarnLevel)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})
}

// SetVerbose switches the process-wide log level between Warn (default) and
// Debug (verbose mode).
func SetVerbose(v bool) {
	if v {
		base.SetLevel(logrus.DebugLevel)
	} else {
		base.SetLevel(logrus.WarnLevel)
	}
}

// Verbose reports whether the process is currently in verbose mode. Used by
// callers implementing the "warn-and-skip in verbose mode, fatal otherwise"
// MissingMapping policy (see ccgerr.IsFatal).
func Verbose() bool {
	return base.GetLevel() == logrus.DebugLevel
}

// New returns a Logger scoped to component, e.g. clog.New("transpile").
func New(component string) *Logger {
	return &Logger{entry: base.WithField("component", component)}
}

// Debugf logs a verbose-only diagnostic.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Warnf logs a warn-and-continue diagnostic (e.g. a MissingMapping skip).
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Errorf logs a diagnostic immediately preceding a fatal return.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}
