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
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Validate checks every registration for problems that would keep it from
// ever being resolved. It reports, combined into one error:
//
//   - implementations that aren't assignable to the Go type they were
//     registered for
//   - implementations without a usable constructor
//   - implementations none of whose constructors can have every parameter
//     satisfied by the registry
//   - open generic implementations without a Specializer
//
// Validate only looks at the registry. It never runs a constructor.
func (reg *Registry) Validate() error {
	keys, byKey := reg.registered()

	var errs error
	for _, k := range keys {
		for _, rec := range byKey[k] {
			errs = multierr.Append(errs, reg.validateRecord(k, rec))
		}
	}
	return errs
}

func (reg *Registry) validateRecord(k Key, rec *Record) error {
	impl := rec.implementation

	if impl.IsGenericDefinition() {
		if impl.generic.specializer == nil {
			return errors.Errorf("%v registered for %v by %v has no specializer", impl, k, rec.caller)
		}
		return nil
	}

	if k.rtype != nil && impl.generic == nil && !impl.AssignableTo(typeFor(k.rtype)) {
		return errors.Errorf("%v registered by %v is not assignable to %v", impl, rec.caller, k)
	}

	ctors := impl.constructors()
	if len(ctors) == 0 {
		return &ConstructorError{Implementation: impl, Reason: errNoConstructor}
	}

	var errs error
	for _, c := range ctors {
		err := reg.satisfiable(c)
		if err == nil {
			return nil
		}
		errs = multierr.Append(errs, &ConstructorError{
			Implementation: impl,
			Constructor:    c.name,
			Reason:         err,
		})
	}
	return errs
}

// satisfiable reports whether every parameter of c has at least one
// candidate in the registry.
func (reg *Registry) satisfiable(c *Constructor) error {
	for i, p := range c.params {
		if p.elem != nil || p.isValue() {
			continue
		}
		if p.IsGenericDefinition() {
			return errors.Errorf("parameter %d: open generic type %v cannot be resolved", i, p)
		}
		if len(reg.Implementations(p)) == 0 {
			return errors.Errorf("parameter %d: nothing is registered for %v", i, p)
		}
	}
	return nil
}
