// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"github.com/go-logr/logr"

	"github.com/dlisparse/dlis/internal/dlislog"
)

// WarningFunc receives a non-fatal condition encountered during parsing,
// such as a Storage Unit Label with an inconsistent layout field. It is
// called synchronously on the goroutine performing the parse.
type WarningFunc func(err error, context string)

// Options configures a File. The zero value is a lazy, silently-logging
// configuration suitable for most callers; use the With* constructors to
// change individual knobs.
type Options struct {
	// EagerIndex builds the full object table during Open instead of
	// deferring it to first access. Load always behaves as if this is
	// true; Open honors it.
	EagerIndex bool

	// MaxObjects bounds how many Logical Records the index build walks
	// before stopping, protecting against runaway files during recovery.
	// Records whose EFLR fails to parse are not counted. Zero means
	// unbounded.
	MaxObjects int

	// Logger receives non-fatal warnings as Info-level entries. The zero
	// value discards everything.
	Logger logr.Logger

	// WarningSink receives non-fatal warnings (in addition to Logger). May
	// be nil.
	WarningSink WarningFunc
}

// Option mutates an Options in place.
type Option func(*Options)

// WithEagerIndex toggles eager object-table construction during Open.
func WithEagerIndex(eager bool) Option {
	return func(o *Options) { o.EagerIndex = eager }
}

// WithMaxObjects bounds how many Logical Records the index build walks.
func WithMaxObjects(n int) Option {
	return func(o *Options) { o.MaxObjects = n }
}

// WithLogger installs a structured logger for parse diagnostics.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithWarningSink installs a callback for non-fatal warnings.
func WithWarningSink(fn WarningFunc) Option {
	return func(o *Options) { o.WarningSink = fn }
}

func defaultOptions() *Options {
	return &Options{}
}

func (o *Options) logger() *dlislog.Logger {
	return dlislog.New(o.Logger)
}

func (o *Options) warn(err error, context string) {
	o.logger().Warning(err, context)
	if o.WarningSink != nil {
		o.WarningSink(err, context)
	}
}
