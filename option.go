// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package loom

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/loom/internal/loomclock"
	"go.uber.org/loom/loomevent"
)

// Option configures a Registry or a Resolver.
type Option interface {
	apply(*options)
}

type options struct {
	logger         loomevent.Logger
	tracerProvider trace.TracerProvider
	clock          loomclock.Clock
}

func newOptions(opts []Option) options {
	o := options{
		logger:         loomevent.NopLogger,
		tracerProvider: otel.GetTracerProvider(),
		clock:          loomclock.System,
	}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

// WithLogger specifies how loom should report what it's doing. Events are
// dropped by default.
func WithLogger(l loomevent.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ l loomevent.Logger }

func (o loggerOption) apply(opts *options) {
	if o.l != nil {
		opts.logger = o.l
	}
}

func (o loggerOption) String() string {
	return "WithLogger()"
}

// WithTracerProvider specifies the OpenTelemetry tracer provider used to
// record one span per call to Resolve. The global provider is used by
// default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return tracerProviderOption{tp}
}

type tracerProviderOption struct{ tp trace.TracerProvider }

func (o tracerProviderOption) apply(opts *options) {
	if o.tp != nil {
		opts.tracerProvider = o.tp
	}
}

func (o tracerProviderOption) String() string {
	return "WithTracerProvider()"
}

// withClock sets the clock runtimes are measured with.
func withClock(c loomclock.Clock) Option {
	return clockOption{c}
}

type clockOption struct{ c loomclock.Clock }

func (o clockOption) apply(opts *options) {
	opts.clock = o.c
}

func (o clockOption) String() string {
	return "withClock()"
}

// RegisterOption configures a single registration. Lifetime values are
// RegisterOptions.
type RegisterOption interface {
	applyRegister(*registerOptions)
}

type registerOptions struct {
	lifetime Lifetime
}
