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

// Package loomtest holds helpers for testing code that uses loom.
package loomtest

import (
	"context"
	"strings"

	"go.uber.org/loom"
	"go.uber.org/loom/loomevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// testPrinter adapts a TB to an io.Writer.
type testPrinter struct {
	TB
}

func (p testPrinter) Write(b []byte) (int, error) {
	p.Logf("%s", strings.TrimSuffix(string(b), "\n"))
	return len(b), nil
}

// NewTestLogger returns a loomevent.Logger that logs events to the TB.
func NewTestLogger(t TB) loomevent.Logger {
	return &loomevent.ConsoleLogger{W: testPrinter{t}}
}

// New builds a Registry and a Resolver over it that log to the TB. Options
// are applied after the test logger, so WithLogger replaces it.
func New(t TB, opts ...loom.Option) (*loom.Registry, *loom.Resolver) {
	opts = append([]loom.Option{loom.WithLogger(NewTestLogger(t))}, opts...)
	reg := loom.NewRegistry(opts...)
	return reg, loom.NewResolver(reg, opts...)
}

// MustResolve resolves typ, failing the test if resolution returns an error
// or builds nothing.
func MustResolve(t TB, r *loom.Resolver, typ *loom.Type) []any {
	values, err := r.Resolve(context.Background(), typ)
	if err != nil {
		t.Errorf("resolving %v failed: %v", typ, err)
		t.FailNow()
		return nil
	}
	if len(values) == 0 {
		t.Errorf("resolving %v built nothing", typ)
		t.FailNow()
	}
	return values
}

// MustValidate fails the test if the registry has problems.
func MustValidate(t TB, reg *loom.Registry) {
	if err := reg.Validate(); err != nil {
		t.Errorf("registry isn't valid: %v", err)
		t.FailNow()
	}
}
