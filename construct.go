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
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/loom/loomevent"
	"go.uber.org/multierr"
)

var (
	errNoConstructor = errors.New("no usable constructor")
	errNilInstance   = errors.New("constructor returned nil")
)

func (r *Resolver) resolve(res *resolution, t *Type) []Instance {
	if t.generic != nil {
		return r.resolveGeneric(res, t)
	}
	return r.resolveNonGeneric(res, t)
}

func (r *Resolver) resolveNonGeneric(res *resolution, t *Type) []Instance {
	if t.isValue() {
		return []Instance{{Value: reflect.Zero(t.rtype).Interface(), Type: t}}
	}

	var out []Instance
	for _, rec := range r.reg.Implementations(t) {
		if res.excludes(rec.implementation) {
			continue
		}
		if inst, ok := r.instantiate(res, rec); ok {
			out = append(out, inst)
		}
	}
	return out
}

func (r *Resolver) resolveGeneric(res *resolution, t *Type) []Instance {
	var out []Instance
	for _, rec := range r.reg.Implementations(t) {
		impl := rec.implementation
		if res.excludes(impl) {
			continue
		}

		if !impl.IsGenericDefinition() {
			if inst, ok := r.instantiate(res, rec); ok {
				out = append(out, inst)
			}
			continue
		}

		// Open definitions can only be specialized for an instantiation
		// with the same number of type arguments.
		if t.args == nil || impl.generic.arity != len(t.args) {
			continue
		}
		specialized, err := impl.generic.specialize(t.args)
		if err != nil || res.excludes(specialized) {
			continue
		}
		if v, ok := r.construct(res, specialized); ok {
			out = append(out, Instance{Value: v, Type: specialized})
		}
	}
	return out
}

// instantiate builds rec according to its lifetime.
func (r *Resolver) instantiate(res *resolution, rec *Record) (Instance, bool) {
	if rec.lifetime == Singleton {
		return r.singleton(res, rec)
	}

	v, ok := r.construct(res, rec.implementation)
	if !ok {
		return Instance{}, false
	}
	return Instance{Value: v, Type: rec.implementation}, true
}

func (r *Resolver) singleton(res *resolution, rec *Record) (Instance, bool) {
	if inst, ok := rec.cached(); ok {
		return inst, true
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if inst, ok := rec.cached(); ok {
		return inst, true
	}

	v, ok := r.construct(res, rec.implementation)
	if !ok {
		return Instance{}, false
	}
	inst := Instance{Value: v, Type: rec.implementation}
	rec.instance.Store(&inst)

	r.log.LogEvent(&loomevent.SingletonCached{
		ResolutionID:   res.id,
		Implementation: rec.implementation.String(),
	})
	return inst, true
}

// construct tries the constructors of impl by ascending parameter count
// and returns the first instance built.
func (r *Resolver) construct(res *resolution, impl *Type) (any, bool) {
	start := r.clock.Now()

	res.push(impl)
	defer res.pop()

	ctors := impl.constructors()
	if len(ctors) == 0 {
		r.log.LogEvent(&loomevent.Constructed{
			ResolutionID:   res.id,
			Implementation: impl.String(),
			Runtime:        r.clock.Since(start),
			Err:            &ConstructorError{Implementation: impl, Reason: errNoConstructor},
		})
		return nil, false
	}

	var errs error
	for _, c := range ctors {
		v, err := r.tryConstructor(res, c)
		if err == nil {
			r.log.LogEvent(&loomevent.Constructed{
				ResolutionID:    res.id,
				Implementation:  impl.String(),
				ConstructorName: c.name,
				Runtime:         r.clock.Since(start),
			})
			return v, true
		}

		r.log.LogEvent(&loomevent.ConstructorFailed{
			ResolutionID:    res.id,
			Implementation:  impl.String(),
			ConstructorName: c.name,
			Err:             err,
		})
		errs = multierr.Append(errs, &ConstructorError{
			Implementation: impl,
			Constructor:    c.name,
			Reason:         err,
		})
	}

	r.log.LogEvent(&loomevent.Constructed{
		ResolutionID:   res.id,
		Implementation: impl.String(),
		Runtime:        r.clock.Since(start),
		Err:            errs,
	})
	return nil, false
}

// tryConstructor binds every parameter of c and calls it. It gives up at
// the first parameter that cannot be bound.
func (r *Resolver) tryConstructor(res *resolution, c *Constructor) (any, error) {
	args := make([]any, len(c.params))
	for i, p := range c.params {
		arg, err := r.bind(res, p)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %d", i)
		}
		args[i] = arg
	}

	v, err := c.invoke(args)
	if err != nil {
		return nil, err
	}
	if isNil(v) {
		return nil, errNilInstance
	}
	return v, nil
}

// bind resolves the argument for one constructor parameter. A scalar
// parameter needs exactly one candidate. A collection parameter takes every
// candidate, possibly none. Value types resolve to their zero value
// without a registry lookup, so a collection of them is always empty.
func (r *Resolver) bind(res *resolution, p *Type) (any, error) {
	if p.elem != nil {
		items := []any{}
		if p.elem.isValue() {
			return items, nil
		}
		for _, inst := range r.resolve(res, p.elem) {
			if satisfies(inst, p.elem) {
				items = append(items, inst.Value)
			}
		}
		return items, nil
	}

	instances := r.resolve(res, p)
	switch len(instances) {
	case 0:
		return nil, errors.Errorf("no implementation of %v could be built", p)
	case 1:
	default:
		return nil, errors.Errorf("%v is ambiguous: %d implementations could be built", p, len(instances))
	}

	inst := instances[0]
	if !satisfies(inst, p) {
		return nil, errors.Errorf("%v built for %v is not assignable to it", inst.Type, p)
	}
	return inst.Value, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
