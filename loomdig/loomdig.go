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

// Package loomdig exposes loom registrations to a dig container.
//
// dig builds each type at most once per container, so an implementation
// provided through loomdig is resolved once no matter its loom lifetime.
package loomdig

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/dig"
	"go.uber.org/loom"
	"go.uber.org/loom/internal/loomreflect"
)

var _nilError = reflect.Zero(loomreflect.ErrorType())

// Provide adds a constructor for t to c. The constructor resolves t
// through r and fails unless exactly one implementation is built.
//
//	loomdig.Provide(c, resolver, loom.TypeOf[Logger]())
//	c.Invoke(func(l Logger) { ... })
func Provide(c *dig.Container, r *loom.Resolver, t *loom.Type, opts ...dig.ProvideOption) error {
	rt, err := goType(t)
	if err != nil {
		return err
	}

	ft := reflect.FuncOf(nil, []reflect.Type{rt, loomreflect.ErrorType()}, false)
	fv := reflect.MakeFunc(ft, func([]reflect.Value) []reflect.Value {
		values, err := r.Resolve(context.Background(), t)
		if err == nil && len(values) != 1 {
			err = errors.Errorf("loomdig: %v resolved to %d instances, expected exactly one", t, len(values))
		}
		if err != nil {
			return []reflect.Value{reflect.Zero(rt), reflect.ValueOf(&err).Elem()}
		}

		out := reflect.New(rt).Elem()
		out.Set(reflect.ValueOf(values[0]))
		return []reflect.Value{out, _nilError}
	})

	return errors.Wrapf(c.Provide(fv.Interface(), opts...), "loomdig: providing %v", t)
}

// ProvideAll adds every implementation of t to the named value group of c.
// Implementations that loom can't build are left out of the group.
//
//	loomdig.ProvideAll(c, resolver, loom.TypeOf[Handler](), "handlers")
//
//	type params struct {
//		dig.In
//
//		Handlers []Handler `group:"handlers"`
//	}
func ProvideAll(c *dig.Container, r *loom.Resolver, t *loom.Type, group string) error {
	rt, err := goType(t)
	if err != nil {
		return err
	}
	if group == "" {
		return errors.New("loomdig: a value group name is required")
	}

	st := reflect.SliceOf(rt)
	ft := reflect.FuncOf(nil, []reflect.Type{st, loomreflect.ErrorType()}, false)
	fv := reflect.MakeFunc(ft, func([]reflect.Value) []reflect.Value {
		values, err := r.Resolve(context.Background(), t)
		if err != nil {
			return []reflect.Value{reflect.Zero(st), reflect.ValueOf(&err).Elem()}
		}

		out := reflect.MakeSlice(st, len(values), len(values))
		for i, v := range values {
			out.Index(i).Set(reflect.ValueOf(v))
		}
		return []reflect.Value{out, _nilError}
	})

	return errors.Wrapf(
		c.Provide(fv.Interface(), dig.Group(group+",flatten")),
		"loomdig: providing %v to group %q", t, group,
	)
}

func goType(t *loom.Type) (reflect.Type, error) {
	if t == nil {
		return nil, errors.New("loomdig: nil type")
	}
	if t.IsGeneric() || t.ReflectType() == nil {
		return nil, errors.Errorf("loomdig: %v has no Go type", t)
	}
	return t.ReflectType(), nil
}
