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
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/loom/internal/loomreflect"
)

// Constructor builds one implementation from resolved parameters.
//
// A Constructor is itself a TypeOption, so explicit constructors can be
// passed straight to Describe.
type Constructor struct {
	name   string
	params []*Type
	build  func(args []any) (any, error)
}

// NewConstructor builds a Constructor from its parameter descriptors and a
// build function. build receives one argument per parameter, in order. A
// collection parameter receives a []any.
func NewConstructor(name string, params []*Type, build func(args []any) (any, error)) *Constructor {
	if build == nil {
		panic(fmt.Sprintf("loom: constructor %q has no build function", name))
	}
	for i, p := range params {
		if p == nil {
			panic(fmt.Sprintf("loom: parameter %d of constructor %q is nil", i, name))
		}
	}
	return &Constructor{
		name:   name,
		params: append([]*Type(nil), params...),
		build:  build,
	}
}

// Name returns the name used for the constructor in events and errors.
func (c *Constructor) Name() string { return c.name }

// Params returns the parameter descriptors of the constructor.
func (c *Constructor) Params() []*Type {
	params := make([]*Type, len(c.params))
	copy(params, c.params)
	return params
}

func (c *Constructor) String() string { return c.name }

func (c *Constructor) applyType(t *Type) {
	t.ctors = append(t.ctors, c)
}

// invoke calls the build function. A panic inside it is reported as an
// error.
func (c *Constructor) invoke(args []any) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = errors.Errorf("constructor %v panicked: %v", c.name, r)
		}
	}()
	return c.build(args)
}

// Constructors declares Go functions as constructors of a type. Each
// function must have the form
//
//	func(P1, P2, ...) R
//	func(P1, P2, ...) (R, error)
//
// Every parameter is resolved through the Resolver. A slice parameter []E
// receives every implementation of E that can be built, and is empty when E
// is a value type such as string or int. Constructors panics
// if a function doesn't have one of these forms.
func Constructors(fns ...any) TypeOption {
	ctors := make([]*Constructor, len(fns))
	for i, fn := range fns {
		ctors[i] = newFuncConstructor(fn)
	}
	return typeOptionFunc(func(t *Type) {
		t.ctors = append(t.ctors, ctors...)
	})
}

func newFuncConstructor(fn any) *Constructor {
	if fn == nil {
		panic("loom: nil constructor")
	}

	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	name := loomreflect.FuncName(fn)
	if err := checkFuncShape(ft); err != nil {
		panic(fmt.Sprintf("loom: invalid constructor %v: %v", name, err))
	}

	params := make([]*Type, ft.NumIn())
	for i := range params {
		params[i] = paramType(ft.In(i))
	}

	return &Constructor{
		name:   name,
		params: params,
		build: func(args []any) (any, error) {
			in := make([]reflect.Value, len(args))
			for i, arg := range args {
				v, err := convertArg(arg, ft.In(i), params[i].elem != nil)
				if err != nil {
					return nil, errors.Wrapf(err, "parameter %d of %v", i, name)
				}
				in[i] = v
			}

			out := fv.Call(in)
			if len(out) == 2 && !out[1].IsNil() {
				return nil, out[1].Interface().(error)
			}
			return out[0].Interface(), nil
		},
	}
}

func checkFuncShape(ft reflect.Type) error {
	if ft.Kind() != reflect.Func {
		return errors.Errorf("must be a function, got %v", ft)
	}
	if ft.IsVariadic() {
		return errors.New("variadic functions are not supported")
	}
	switch ft.NumOut() {
	case 1:
		if ft.Out(0) == loomreflect.ErrorType() {
			return errors.New("must return a value")
		}
	case 2:
		if ft.Out(1) != loomreflect.ErrorType() {
			return errors.Errorf("second result must be error, got %v", ft.Out(1))
		}
	default:
		return errors.Errorf("must return one value and an optional error, got %d results", ft.NumOut())
	}
	return nil
}

// paramType maps a Go parameter type to its descriptor. Slices become
// collections, except []byte which is treated as a single value.
func paramType(rt reflect.Type) *Type {
	if rt.Kind() == reflect.Slice && rt.Elem().Kind() != reflect.Uint8 {
		return SliceOf(typeFor(rt.Elem()))
	}
	return typeFor(rt)
}

func convertArg(arg any, to reflect.Type, collection bool) (reflect.Value, error) {
	if !collection {
		return assignable(arg, to)
	}

	items, ok := arg.([]any)
	if !ok {
		return assignable(arg, to)
	}
	s := reflect.MakeSlice(to, len(items), len(items))
	for i, item := range items {
		v, err := assignable(item, to.Elem())
		if err != nil {
			return reflect.Value{}, errors.Wrapf(err, "element %d", i)
		}
		s.Index(i).Set(v)
	}
	return s, nil
}

func assignable(arg any, to reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(to), nil
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(to) {
		return reflect.Value{}, errors.Errorf("cannot use %v as %v", v.Type(), to)
	}
	return v, nil
}

// implicitConstructor returns the zero-parameter constructor of a struct
// or pointer-to-struct type, or nil for any other type.
func implicitConstructor(rt reflect.Type) *Constructor {
	switch {
	case rt.Kind() == reflect.Ptr && rt.Elem().Kind() == reflect.Struct:
		return &Constructor{
			name: fmt.Sprintf("new(%v)", rt.Elem()),
			build: func([]any) (any, error) {
				return reflect.New(rt.Elem()).Interface(), nil
			},
		}
	case rt.Kind() == reflect.Struct:
		return &Constructor{
			name: fmt.Sprintf("%v{}", rt),
			build: func([]any) (any, error) {
				return reflect.New(rt).Elem().Interface(), nil
			},
		}
	}
	return nil
}
