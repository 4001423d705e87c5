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

package loom_test

import (
	"errors"
	"fmt"

	"go.uber.org/loom"
)

type Interface1 interface {
	Name() string
}

type Class1 struct{ id int }

func (*Class1) Name() string { return "Class1" }

type Class2 struct{ id int }

func (*Class2) Name() string { return "Class2" }

// notInterface1 is registered for Interface1 but doesn't implement it.
type notInterface1 struct{ id int }

type failing struct{}

func (*failing) Name() string { return "failing" }

func newFailing() (*failing, error) {
	return nil, errors.New("great sadness")
}

var (
	interface1Type = loom.TypeOf[Interface1]()
	class1Type     = loom.TypeOf[*Class1]()
	class2Type     = loom.TypeOf[*Class2]()
)

type genericImplementation struct {
	arg *loom.Type
}

func (g *genericImplementation) String() string {
	return fmt.Sprintf("GenericImplementation[%v]", g.arg)
}

type repository struct {
	item any
}

var (
	IGenericInterface = loom.NewGeneric("IGenericInterface", 1)

	GenericImplementation = loom.NewGeneric("GenericImplementation", 1,
		loom.ImplementsGeneric(IGenericInterface),
		loom.Specializer(func(args []*loom.Type) []*loom.Constructor {
			return []*loom.Constructor{
				loom.NewConstructor("newGenericImplementation", nil, func([]any) (any, error) {
					return &genericImplementation{arg: args[0]}, nil
				}),
			}
		}),
	)

	OtherGenericImplementation = loom.NewGeneric("OtherGenericImplementation", 1,
		loom.ImplementsGeneric(IGenericInterface),
		loom.Specializer(func(args []*loom.Type) []*loom.Constructor {
			return []*loom.Constructor{
				loom.NewConstructor("newOtherGenericImplementation", nil, func([]any) (any, error) {
					return &genericImplementation{arg: args[0]}, nil
				}),
			}
		}),
	)

	// Repository[T] needs a T to be built.
	Repository = loom.NewGeneric("Repository", 1,
		loom.Specializer(func(args []*loom.Type) []*loom.Constructor {
			return []*loom.Constructor{
				loom.NewConstructor("newRepository", []*loom.Type{args[0]}, func(in []any) (any, error) {
					return &repository{item: in[0]}, nil
				}),
			}
		}),
	)

	Pair = loom.NewGeneric("Pair", 2)
)
