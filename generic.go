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
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Generic is an open generic family: a shape parameterized by a fixed
// number of type arguments, such as Store[_].
//
// A family used as a dependency only needs a name and an arity. A family
// used as an implementation also needs a Specializer, which builds the
// constructors of each instantiation once its type arguments are known.
//
//	var Store = loom.NewGeneric("Store", 1)
//	var MemoryStore = loom.NewGeneric("MemoryStore", 1,
//		loom.ImplementsGeneric(Store),
//		loom.Specializer(func(args []*loom.Type) []*loom.Constructor {
//			return []*loom.Constructor{
//				loom.NewConstructor("NewMemoryStore", nil, func([]any) (any, error) {
//					return &memoryStore{elem: args[0]}, nil
//				}),
//			}
//		}),
//	)
//
//	reg.Register(Store.Definition(), MemoryStore.Definition())
//	stores, err := resolver.Resolve(ctx, Store.Of(loom.TypeOf[User]()))
type Generic struct {
	name        string
	arity       int
	implements  []*Generic
	specializer func(args []*Type) []*Constructor

	def *Type

	mu        sync.Mutex
	instances []*Type
}

// GenericOption configures a Generic.
type GenericOption interface {
	applyGeneric(*Generic)
}

type genericOptionFunc func(*Generic)

func (f genericOptionFunc) applyGeneric(g *Generic) { f(g) }

// ImplementsGeneric declares that every instantiation of the family is
// assignable to the instantiation of the given families with the same
// type arguments.
func ImplementsGeneric(families ...*Generic) GenericOption {
	return genericOptionFunc(func(g *Generic) {
		g.implements = append(g.implements, families...)
	})
}

// Specializer sets the function that builds the constructors of an
// instantiation from its type arguments.
func Specializer(fn func(args []*Type) []*Constructor) GenericOption {
	return genericOptionFunc(func(g *Generic) {
		g.specializer = fn
	})
}

// NewGeneric builds a generic family. It panics if arity is not positive.
func NewGeneric(name string, arity int, opts ...GenericOption) *Generic {
	if arity <= 0 {
		panic(fmt.Sprintf("loom: generic %q must take at least one type argument", name))
	}

	g := &Generic{name: name, arity: arity}
	for _, opt := range opts {
		opt.applyGeneric(g)
	}

	holes := make([]string, arity)
	for i := range holes {
		holes[i] = "_"
	}
	g.def = &Type{
		name:    fmt.Sprintf("%s[%s]", name, strings.Join(holes, ",")),
		generic: g,
	}
	return g
}

// Name returns the name the family was built with.
func (g *Generic) Name() string { return g.name }

// Arity returns the number of type arguments the family takes.
func (g *Generic) Arity() int { return g.arity }

// Definition returns the open definition of the family, used to register
// the family as a whole.
func (g *Generic) Definition() *Type { return g.def }

// Of returns the instantiation of the family with the given type
// arguments. Equal arguments always yield the same *Type. It panics if the
// number of arguments doesn't match the family's arity.
func (g *Generic) Of(args ...*Type) *Type {
	t, err := g.specialize(args)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func (g *Generic) String() string { return g.def.String() }

func (g *Generic) specialize(args []*Type) (*Type, error) {
	if len(args) != g.arity {
		return nil, errors.Errorf("loom: %v takes %d type argument(s), got %d", g, g.arity, len(args))
	}
	for i, a := range args {
		if a == nil {
			return nil, errors.Errorf("loom: type argument %d of %v is nil", i, g)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, t := range g.instances {
		if typesEqual(t.args, args) {
			return t, nil
		}
	}

	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.String()
	}
	t := &Type{
		name:    fmt.Sprintf("%s[%s]", g.name, strings.Join(names, ",")),
		generic: g,
		args:    append([]*Type(nil), args...),
	}
	g.instances = append(g.instances, t)
	return t, nil
}

// implementsFamily reports whether instances of g are assignable to the
// same instantiation of u.
func (g *Generic) implementsFamily(u *Generic) bool {
	if g == u {
		return true
	}
	for _, f := range g.implements {
		if f.implementsFamily(u) {
			return true
		}
	}
	return false
}
