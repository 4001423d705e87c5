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

import "time"

// Event defines an event emitted by loom.
type Event interface {
	event() // Only loomevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()        {}
func (*Resolving) event()         {}
func (*Resolved) event()          {}
func (*Excluded) event()          {}
func (*ConstructorFailed) event() {}
func (*Constructed) event()       {}
func (*SingletonCached) event()   {}

// Registered is emitted when an implementation is added to a registry.
type Registered struct {
	// Dependency is the name of the abstraction the implementation was
	// registered under.
	Dependency string
	// Implementation is the name of the type that will be constructed.
	Implementation string
	Lifetime       string
	// CallerName is the function that made the registration.
	CallerName string
}

// Resolving is emitted when a top-level resolution starts.
type Resolving struct {
	// ResolutionID correlates all events emitted while serving one call.
	ResolutionID string
	TypeName     string
}

// Resolved is emitted when a top-level resolution finishes.
type Resolved struct {
	ResolutionID string
	TypeName     string
	// Count is the number of instances returned to the caller.
	Count   int
	Runtime time.Duration
	// Err is set only for usage errors.
	Err error
}

// Excluded is emitted when a candidate is skipped because its
// implementation is already being constructed higher up the same call
// chain.
type Excluded struct {
	ResolutionID   string
	Implementation string
}

// ConstructorFailed is emitted for every constructor attempt that did not
// produce an instance. Resolution moves on to the next constructor.
type ConstructorFailed struct {
	ResolutionID    string
	Implementation  string
	ConstructorName string
	Err             error
}

// Constructed is emitted after loom tried to construct an implementation.
// If every constructor failed, Err holds the combined reasons and the
// implementation is left out of the result.
type Constructed struct {
	ResolutionID    string
	Implementation  string
	ConstructorName string
	Runtime         time.Duration
	Err             error
}

// SingletonCached is emitted when a singleton instance is stored for reuse.
type SingletonCached struct {
	ResolutionID   string
	Implementation string
}
