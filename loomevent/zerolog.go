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
	"github.com/rs/zerolog"
)

// ZerologLogger is a loom event logger that logs events to zerolog.
type ZerologLogger struct {
	Logger zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

// LogEvent logs the given event to the provided zerolog logger.
func (l *ZerologLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.Logger.Info().
			Str("dependency", e.Dependency).
			Str("implementation", e.Implementation).
			Str("lifetime", e.Lifetime).
			Str("caller", e.CallerName).
			Msg("registered")
	case *Resolving:
		l.Logger.Info().
			Str("resolution", e.ResolutionID).
			Str("type", e.TypeName).
			Msg("resolving")
	case *Resolved:
		if e.Err != nil {
			l.Logger.Error().
				Str("resolution", e.ResolutionID).
				Str("type", e.TypeName).
				Err(e.Err).
				Msg("resolve failed")
		} else {
			l.Logger.Info().
				Str("resolution", e.ResolutionID).
				Str("type", e.TypeName).
				Int("count", e.Count).
				Str("runtime", e.Runtime.String()).
				Msg("resolved")
		}
	case *Excluded:
		l.Logger.Info().
			Str("resolution", e.ResolutionID).
			Str("implementation", e.Implementation).
			Msg("excluded")
	case *ConstructorFailed:
		l.Logger.Info().
			Str("resolution", e.ResolutionID).
			Str("implementation", e.Implementation).
			Str("constructor", e.ConstructorName).
			Err(e.Err).
			Msg("constructor failed")
	case *Constructed:
		if e.Err != nil {
			l.Logger.Warn().
				Str("resolution", e.ResolutionID).
				Str("implementation", e.Implementation).
				Err(e.Err).
				Msg("construction failed")
		} else {
			l.Logger.Info().
				Str("resolution", e.ResolutionID).
				Str("implementation", e.Implementation).
				Str("constructor", e.ConstructorName).
				Str("runtime", e.Runtime.String()).
				Msg("constructed")
		}
	case *SingletonCached:
		l.Logger.Info().
			Str("resolution", e.ResolutionID).
			Str("implementation", e.Implementation).
			Msg("singleton cached")
	}
}
