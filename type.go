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
	"sort"
	"sync"
)

// Type describes a dependency or an implementation known to loom.
//
// A Type is one of:
//
//   - a Go type, built with TypeOf or Describe
//   - an open generic definition, built with Generic.Definition
//   - a parameterized generic instantiation, built with Generic.Of
//   - a collection, built with SliceOf, which as a constructor parameter
//     receives every implementation of its element type
//
// Types are immutable once built and safe for concurrent use.
type Type struct {
	name  string
	rtype reflect.Type

	generic *Generic
	args    []*Type // nil for open definitions
	elem    *Type   // collections only

	ctors      []*Constructor
	implements []*Type

	// Instantiations get their constructors from the family's Specializer
	// the first time they're needed.
	specializeOnce sync.Once
}

// TypeOption configures a Type built by Describe.
type TypeOption interface {
	applyType(*Type)
}

type typeOptionFunc func(*Type)

func (f typeOptionFunc) applyType(t *Type) { f(t) }

// TypeOf returns a descriptor for the Go type T with no declared
// constructors. Struct and pointer-to-struct types are still constructible
// through their zero value.
//
//	loom.TypeOf[Logger]()
func TypeOf[T any]() *Type {
	return typeFor(reflect.TypeOf((*T)(nil)).Elem())
}

// Describe returns a descriptor for the Go type T configured with the given
// options, typically its constructors.
//
//	loom.Describe[*Service](loom.Constructors(NewService, NewServiceWithCache))
func Describe[T any](opts ...TypeOption) *Type {
	t := TypeOf[T]()
	for _, opt := range opts {
		opt.applyType(t)
	}
	return t
}

// Implements declares that a Type satisfies the given descriptors in
// addition to whatever Go assignability already allows. It's needed when
// a Go type implements a generic instantiation.
func Implements(types ...*Type) TypeOption {
	return typeOptionFunc(func(t *Type) {
		for _, u := range types {
			if u == nil {
				panic("loom: nil type passed to Implements")
			}
			t.implements = append(t.implements, u)
		}
	})
}

// SliceOf returns a collection descriptor. A constructor parameter of this
// type receives every implementation of elem that can be built. It is
// always empty when elem is a value type.
func SliceOf(elem *Type) *Type {
	if elem == nil {
		panic("loom: nil element type passed to SliceOf")
	}
	t := &Type{elem: elem}
	if elem.rtype != nil && elem.generic == nil {
		t.rtype = reflect.SliceOf(elem.rtype)
	}
	return t
}

func typeFor(rt reflect.Type) *Type {
	return &Type{rtype: rt}
}

// String returns a human-readable name for the type.
func (t *Type) String() string {
	switch {
	case t == nil:
		return "<nil>"
	case t.name != "":
		return t.name
	case t.elem != nil:
		return "[]" + t.elem.String()
	case t.rtype != nil:
		return t.rtype.String()
	}
	return "<unknown>"
}

// ReflectType returns the Go type behind t, or nil for generic descriptors.
func (t *Type) ReflectType() reflect.Type {
	if t.generic != nil {
		return nil
	}
	return t.rtype
}

// Generic returns the family t belongs to, or nil for non-generic types.
func (t *Type) Generic() *Generic { return t.generic }

// Args returns the type arguments of a generic instantiation.
func (t *Type) Args() []*Type {
	args := make([]*Type, len(t.args))
	copy(args, t.args)
	return args
}

// IsGeneric reports whether t is an open generic definition or one of its
// instantiations.
func (t *Type) IsGeneric() bool { return t.generic != nil }

// IsGenericDefinition reports whether t is an open generic definition.
func (t *Type) IsGenericDefinition() bool {
	return t.generic != nil && t.args == nil
}

// Key returns the registry key t normalizes to.
func (t *Type) Key() Key {
	switch {
	case t.generic != nil:
		return Key{generic: t.generic}
	case t.rtype != nil:
		return Key{rtype: t.rtype}
	}
	return Key{desc: t}
}

// Equal reports whether t and u describe the same type.
func (t *Type) Equal(u *Type) bool {
	if t == u {
		return true
	}
	if t == nil || u == nil {
		return false
	}
	if t.generic != nil || u.generic != nil {
		return t.generic == u.generic && typesEqual(t.args, u.args) &&
			(t.args == nil) == (u.args == nil)
	}
	if t.elem != nil || u.elem != nil {
		return t.elem.Equal(u.elem)
	}
	return t.rtype != nil && t.rtype == u.rtype
}

// AssignableTo reports whether a value described by t can be used where u
// is expected.
func (t *Type) AssignableTo(u *Type) bool {
	if t.Equal(u) {
		return true
	}
	for _, d := range t.implements {
		if d.Equal(u) {
			return true
		}
	}
	if t.generic != nil || u.generic != nil {
		if t.args == nil || u.args == nil || t.generic == nil || u.generic == nil {
			return false
		}
		return t.generic.implementsFamily(u.generic) && typesEqual(t.args, u.args)
	}
	if t.elem != nil || u.elem != nil {
		return false
	}
	return t.rtype != nil && u.rtype != nil && t.rtype.AssignableTo(u.rtype)
}

// isValue reports whether t is a primitive Go type that is resolved to its
// zero value without consulting the registry.
func (t *Type) isValue() bool {
	if t.generic != nil || t.elem != nil || t.rtype == nil {
		return false
	}
	switch t.rtype.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	}
	return false
}

// constructors returns the declared constructors ordered by ascending
// parameter count, declaration order breaking ties.
func (t *Type) constructors() []*Constructor {
	if t.generic != nil && t.args != nil && t.generic.specializer != nil {
		t.specializeOnce.Do(t.specialize)
	}

	ctors := make([]*Constructor, len(t.ctors))
	copy(ctors, t.ctors)
	if len(ctors) == 0 && t.generic == nil && t.rtype != nil {
		if c := implicitConstructor(t.rtype); c != nil {
			ctors = append(ctors, c)
		}
	}
	sort.SliceStable(ctors, func(i, j int) bool {
		return len(ctors[i].params) < len(ctors[j].params)
	})
	return ctors
}

func (t *Type) specialize() {
	defer func() {
		// A panicking Specializer leaves the instantiation without
		// constructors.
		_ = recover()
	}()
	t.ctors = append(t.ctors, t.generic.specializer(t.Args())...)
}

func typesEqual(a, b []*Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Key is the normalized identity a registry indexes implementations by. A
// generic family is keyed by its open definition, every other type by
// itself.
type Key struct {
	rtype   reflect.Type
	generic *Generic
	desc    *Type
}

func (k Key) String() string {
	switch {
	case k.generic != nil:
		return k.generic.def.String()
	case k.rtype != nil:
		return k.rtype.String()
	}
	return k.desc.String()
}
