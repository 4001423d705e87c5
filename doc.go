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

// Package loom is a dependency resolution engine.
//
// Implementations are registered against the dependencies they satisfy in a
// Registry. A Resolver then builds every registered implementation of a
// dependency on demand, resolving constructor parameters recursively.
//
//
// Describing types
//
// loom works on type descriptors rather than on Go types directly. Use
// TypeOf for a plain Go type and Describe to attach constructors:
//
//   var (
//   	Logger  = loom.TypeOf[log.Logger]()
//   	Service = loom.Describe[*Service](loom.Constructors(NewService))
//   )
//
// A constructor is any function returning the implementation and an
// optional error. Its parameters are resolved through the same Resolver. A
// slice parameter []E receives every implementation of E. Constructors are
// tried from the fewest parameters to the most, and the first one that
// succeeds wins. Structs and pointers to structs without constructors are
// built from their zero value.
//
//
// Lifetimes
//
// Implementations are registered PerRequest by default and constructed on
// every resolution. Singleton implementations are constructed once per
// registration and shared afterwards, even across goroutines.
//
//
// Generics
//
// Go can't instantiate generic types at run time, so generic families are
// described with NewGeneric. An open definition such as Store[_] can be
// registered once and resolved for any instantiation, such as Store[User].
// The family's Specializer builds the constructors of each instantiation.
//
//
// Cycles
//
// An implementation is never constructed inside its own construction. When a
// constructor needs an implementation that's already being built higher up
// the same call, that candidate is skipped, and the constructor fails unless
// another candidate can satisfy it.
//
//
// Errors
//
// Resolve only fails for usage errors, such as asking for an open generic
// definition. Implementations that can't be constructed are left out of the
// result; use WithLogger to see why, or Registry.Validate to find problems
// ahead of time.
package loom // import "go.uber.org/loom"
