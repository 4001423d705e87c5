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

import "fmt"

// OpenGenericError is returned when Resolve is asked for an open generic
// definition. Only instantiations of a generic family can be resolved.
type OpenGenericError struct {
	Type *Type
}

func (e *OpenGenericError) Error() string {
	return fmt.Sprintf("cannot resolve open generic type %v: "+
		"resolve an instantiation such as %v.Of(...) instead", e.Type, e.Type.generic.name)
}

// ConstructorError describes why an implementation could not be built. It
// is reported through loomevent.Constructed and loomevent.ConstructorFailed
// events and by Registry.Validate, never returned by Resolve.
type ConstructorError struct {
	Implementation *Type
	// Constructor is empty when the failure isn't tied to a single
	// constructor.
	Constructor string
	Reason      error
}

func (e *ConstructorError) Error() string {
	if e.Constructor == "" {
		return fmt.Sprintf("cannot construct %v: %v", e.Implementation, e.Reason)
	}
	return fmt.Sprintf("cannot construct %v via %v: %v", e.Implementation, e.Constructor, e.Reason)
}

func (e *ConstructorError) Unwrap() error { return e.Reason }
