// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package dlislog wraps logr.Logger into the warning/diagnostic channel
// used throughout the parsing engine (SUL layout warnings, skipped malformed
// EFLRs, object-table insert conflicts).
package dlislog

import "github.com/go-logr/logr"

// Verbosity levels, passed to logr's V().
const (
	LevelInfo  = 0
	LevelDebug = 1
	LevelTrace = 2
)

// Logger wraps a logr.Logger with the small set of methods the rest of the
// module calls. A Logger with no sink discards everything.
type Logger struct {
	log logr.Logger
}

// New wraps an existing logr.Logger. A zero-value logr.Logger discards.
func New(log logr.Logger) *Logger {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Logger{log: log}
}

// Discard returns a Logger that drops everything, the default when no
// WithLogger option is supplied.
func Discard() *Logger {
	return &Logger{log: logr.Discard()}
}

// Debug logs at LevelDebug verbosity.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(LevelDebug).Info(msg, keysAndValues...)
}

// Info logs at the default verbosity.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, keysAndValues...)
}

// Trace logs at LevelTrace verbosity, for per-record chatter.
func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.log.V(LevelTrace).Info(msg, keysAndValues...)
}

// Error logs a non-fatal error condition.
func (l *Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(err, msg, keysAndValues...)
}

// Warning logs a recoverable anomaly (e.g. ErrLabelInconsistent) at Info
// level tagged with the sentinel error, so the warning is visible without
// aborting the parse.
func (l *Logger) Warning(err error, context string, keysAndValues ...interface{}) {
	kv := append([]interface{}{"reason", err}, keysAndValues...)
	l.log.Info(context, kv...)
}
