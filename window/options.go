// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"io"
)

// Option configures a sliding-window scan via functional arguments.
// Nil arguments are ignored, so the defaults stay in place.
type Option func(*Options)

// Options holds step hooks and the trace writer for one scan.
//
// Hooks run synchronously on the scanning goroutine and must not retain or
// modify the input sequence. They observe the window after the step has
// been applied.
type Options struct {
	// OnExpand is called after Right advances and the entering element has
	// been added to the window state.
	OnExpand func(w Window)

	// OnShrink is called after Left advances and the leaving element has
	// been removed. The window may be empty (Left == Right+1).
	OnShrink func(w Window)

	// OnRecord is called when the result accumulator improves.
	OnRecord func(w Window)

	// Trace, if non-nil, receives one line per step ("expand [0,2]").
	Trace io.Writer
}

// DefaultOptions returns Options with no-op hooks and no trace.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(Window) {},
		OnShrink: func(Window) {},
		OnRecord: func(Window) {},
		Trace:    nil,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithOnExpand registers a callback fired after every expansion.
func WithOnExpand(fn func(w Window)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnShrink registers a callback fired after every shrink.
func WithOnShrink(fn func(w Window)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnShrink = fn
		}
	}
}

// WithOnRecord registers a callback fired whenever the best result improves.
func WithOnRecord(fn func(w Window)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRecord = fn
		}
	}
}

// WithTrace writes a line per step to wr. Write errors are ignored; tracing
// never changes the result of a scan.
func WithTrace(wr io.Writer) Option {
	return func(o *Options) {
		if wr != nil {
			o.Trace = wr
		}
	}
}

// Expand fires OnExpand and the trace for the window [left, right].
func (o *Options) Expand(left, right int) {
	w := Window{Left: left, Right: right}
	o.OnExpand(w)
	o.trace("expand", w)
}

// Shrink fires OnShrink and the trace for the window [left, right].
func (o *Options) Shrink(left, right int) {
	w := Window{Left: left, Right: right}
	o.OnShrink(w)
	o.trace("shrink", w)
}

// Record fires OnRecord and the trace for the window [left, right].
func (o *Options) Record(left, right int) {
	w := Window{Left: left, Right: right}
	o.OnRecord(w)
	o.trace("record", w)
}

func (o *Options) trace(step string, w Window) {
	if o.Trace == nil {
		return
	}
	_, _ = fmt.Fprintf(o.Trace, "%s %s\n", step, w)
}
