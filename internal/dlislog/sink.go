// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlislog

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
)

var (
	infoColor  = color.New(color.FgGreen).SprintFunc()
	debugColor = color.New(color.FgCyan).SprintFunc()
	traceColor = color.New(color.FgYellow).SprintFunc()
	errorColor = color.New(color.FgRed).SprintFunc()
)

// SimpleLogSink is a human-readable, optionally colored logr.LogSink meant
// for cmd/dlisdump's -v output. Production embedders are expected to supply
// their own logr.Logger via WithLogger instead.
type SimpleLogSink struct {
	writer   io.Writer
	minLevel int
	name     string
	kv       []interface{}
	mu       sync.Mutex
	useColor bool
}

// NewSimpleLogSink builds a sink writing to w (os.Stdout if nil) at the
// given minimum verbosity.
func NewSimpleLogSink(w io.Writer, minLevel int, useColor bool) *SimpleLogSink {
	if w == nil {
		w = os.Stdout
	}
	return &SimpleLogSink{writer: w, minLevel: minLevel, useColor: useColor}
}

func (s *SimpleLogSink) Init(info logr.RuntimeInfo) {}

func (s *SimpleLogSink) Enabled(level int) bool { return level <= s.minLevel }

func (s *SimpleLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	label := "INFO"
	paint := infoColor
	switch level {
	case LevelDebug:
		label, paint = "DEBUG", debugColor
	case LevelTrace:
		label, paint = "TRACE", traceColor
	}
	s.emit(label, paint, msg, keysAndValues)
}

func (s *SimpleLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv := append([]interface{}{"error", err}, keysAndValues...)
	s.emit("ERROR", errorColor, msg, kv)
}

func (s *SimpleLogSink) emit(label string, paint func(a ...interface{}) string, msg string, kv []interface{}) {
	tag := label
	if s.useColor {
		tag = paint(label)
	}
	fmt.Fprintf(s.writer, "[%s] %s", tag, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(s.writer, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(s.writer)
}

func (s *SimpleLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	cp := *s
	cp.kv = append(append([]interface{}{}, s.kv...), keysAndValues...)
	return &cp
}

func (s *SimpleLogSink) WithName(name string) logr.LogSink {
	cp := *s
	cp.name = name
	return &cp
}
