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
	"go.uber.org/zap"
)

// ZapLogger is a loom event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.Logger.Info("registered",
			zap.String("dependency", e.Dependency),
			zap.String("implementation", e.Implementation),
			zap.String("lifetime", e.Lifetime),
			zap.String("caller", e.CallerName),
		)
	case *Resolving:
		l.Logger.Info("resolving",
			zap.String("resolution", e.ResolutionID),
			zap.String("type", e.TypeName),
		)
	case *Resolved:
		if e.Err != nil {
			l.Logger.Error("resolve failed",
				zap.String("resolution", e.ResolutionID),
				zap.String("type", e.TypeName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("resolved",
				zap.String("resolution", e.ResolutionID),
				zap.String("type", e.TypeName),
				zap.Int("count", e.Count),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *Excluded:
		l.Logger.Info("excluded",
			zap.String("resolution", e.ResolutionID),
			zap.String("implementation", e.Implementation),
		)
	case *ConstructorFailed:
		l.Logger.Info("constructor failed",
			zap.String("resolution", e.ResolutionID),
			zap.String("implementation", e.Implementation),
			zap.String("constructor", e.ConstructorName),
			zap.Error(e.Err),
		)
	case *Constructed:
		if e.Err != nil {
			l.Logger.Warn("construction failed",
				zap.String("resolution", e.ResolutionID),
				zap.String("implementation", e.Implementation),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("constructed",
				zap.String("resolution", e.ResolutionID),
				zap.String("implementation", e.Implementation),
				zap.String("constructor", e.ConstructorName),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *SingletonCached:
		l.Logger.Info("singleton cached",
			zap.String("resolution", e.ResolutionID),
			zap.String("implementation", e.Implementation),
		)
	}
}
