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

package loomevent

import (
	"context"
	"log/slog"
)

var _ Logger = (*SlogLogger)(nil)

// SlogLogger is a loom event logger that logs events using a slog logger.
type SlogLogger struct {
	Logger *slog.Logger

	ctx        context.Context
	logLevel   slog.Level
	errorLevel *slog.Level
}

// UseContext sets the context that will be used when logging to slog.
func (l *SlogLogger) UseContext(ctx context.Context) {
	l.ctx = ctx
}

// UseLogLevel sets the level of non-error logs emitted by loom to level.
func (l *SlogLogger) UseLogLevel(level slog.Level) {
	l.logLevel = level
}

// UseErrorLevel sets the level of error logs emitted by loom to level.
func (l *SlogLogger) UseErrorLevel(level slog.Level) {
	l.errorLevel = &level
}

func (l *SlogLogger) context() context.Context {
	if l.ctx == nil {
		return context.Background()
	}
	return l.ctx
}

func (l *SlogLogger) logEvent(msg string, fields ...any) {
	l.Logger.Log(l.context(), l.logLevel, msg, fields...)
}

func (l *SlogLogger) logError(msg string, fields ...any) {
	lvl := slog.LevelError
	if l.errorLevel != nil {
		lvl = *l.errorLevel
	}

	l.Logger.Log(l.context(), lvl, msg, fields...)
}

// LogEvent logs the given event to the provided slog logger.
func (l *SlogLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.logEvent("registered",
			slog.String("dependency", e.Dependency),
			slog.String("implementation", e.Implementation),
			slog.String("lifetime", e.Lifetime),
			slog.String("caller", e.CallerName),
		)
	case *Resolving:
		l.logEvent("resolving",
			slog.String("resolution", e.ResolutionID),
			slog.String("type", e.TypeName),
		)
	case *Resolved:
		if e.Err != nil {
			l.logError("resolve failed",
				slog.String("resolution", e.ResolutionID),
				slog.String("type", e.TypeName),
				slogErr(e.Err),
			)
		} else {
			l.logEvent("resolved",
				slog.String("resolution", e.ResolutionID),
				slog.String("type", e.TypeName),
				slog.Int("count", e.Count),
				slog.String("runtime", e.Runtime.String()),
			)
		}
	case *Excluded:
		l.logEvent("excluded",
			slog.String("resolution", e.ResolutionID),
			slog.String("implementation", e.Implementation),
		)
	case *ConstructorFailed:
		l.logEvent("constructor failed",
			slog.String("resolution", e.ResolutionID),
			slog.String("implementation", e.Implementation),
			slog.String("constructor", e.ConstructorName),
			slogErr(e.Err),
		)
	case *Constructed:
		if e.Err != nil {
			l.logError("construction failed",
				slog.String("resolution", e.ResolutionID),
				slog.String("implementation", e.Implementation),
				slogErr(e.Err),
			)
		} else {
			l.logEvent("constructed",
				slog.String("resolution", e.ResolutionID),
				slog.String("implementation", e.Implementation),
				slog.String("constructor", e.ConstructorName),
				slog.String("runtime", e.Runtime.String()),
			)
		}
	case *SingletonCached:
		l.logEvent("singleton cached",
			slog.String("resolution", e.ResolutionID),
			slog.String("implementation", e.Implementation),
		)
	}
}

func slogErr(err error) slog.Attr {
	return slog.String("error", err.Error())
}
