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
	"fmt"
	"io"
)

// ConsoleLogger is a loom event logger that attempts to write
// human-readable messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Loom] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		l.logf("REGISTER\t%v <= %v (%v, caller: %v)", e.Dependency, e.Implementation, e.Lifetime, e.CallerName)
	case *Resolving:
		l.logf("RESOLVE\t\t%v [%v]", e.TypeName, e.ResolutionID)
	case *Resolved:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to resolve %v [%v]: %v", e.TypeName, e.ResolutionID, e.Err)
		} else {
			l.logf("RESOLVED\t%v [%v] %d instance(s) in %v", e.TypeName, e.ResolutionID, e.Count, e.Runtime)
		}
	case *Excluded:
		l.logf("EXCLUDE\t\t%v [%v] already under construction", e.Implementation, e.ResolutionID)
	case *ConstructorFailed:
		l.logf("SKIP\t\t%v via %v [%v]: %v", e.Implementation, e.ConstructorName, e.ResolutionID, e.Err)
	case *Constructed:
		if e.Err != nil {
			l.logf("ERROR\t\tCould not construct %v [%v]: %v", e.Implementation, e.ResolutionID, e.Err)
		} else {
			l.logf("CONSTRUCT\t%v via %v [%v] in %v", e.Implementation, e.ConstructorName, e.ResolutionID, e.Runtime)
		}
	case *SingletonCached:
		l.logf("SINGLETON\t%v [%v]", e.Implementation, e.ResolutionID)
	}
}
