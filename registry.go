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
	"bytes"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/loom/internal/loomreflect"
	"go.uber.org/loom/loomevent"
)

// Record is one registered implementation of a dependency.
type Record struct {
	implementation *Type
	lifetime       Lifetime
	caller         string

	// Guards construction of the singleton instance.
	mu       sync.Mutex
	instance atomic.Pointer[Instance]
}

// Implementation returns the descriptor that is constructed for this
// record.
func (r *Record) Implementation() *Type { return r.implementation }

// Lifetime returns the lifetime the record was registered with.
func (r *Record) Lifetime() Lifetime { return r.lifetime }

// Caller returns the function that registered the record.
func (r *Record) Caller() string { return r.caller }

func (r *Record) String() string {
	return fmt.Sprintf("%v (%v)", r.implementation, r.lifetime)
}

// cached returns the singleton instance, if one was built.
func (r *Record) cached() (Instance, bool) {
	if p := r.instance.Load(); p != nil {
		return *p, true
	}
	return Instance{}, false
}

type entry struct {
	mu      sync.RWMutex
	records []*Record
}

// Registry maps dependencies to the implementations registered for them.
// Implementations of the same dependency are kept in registration order.
//
// A Registry is safe for concurrent use. Records are never removed.
type Registry struct {
	log loomevent.Logger

	mu      sync.RWMutex
	keys    []Key // insertion order
	entries map[Key]*entry
}

// NewRegistry builds an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	o := newOptions(opts)
	return &Registry{
		log:     o.logger,
		entries: make(map[Key]*entry),
	}
}

// Register adds implementation as a candidate for dependency. Registering
// several implementations for the same dependency, or the same one twice,
// makes them all candidates.
//
// Register doesn't check that implementation is assignable to dependency;
// Resolve drops instances that aren't. It panics if either descriptor is
// nil.
func (reg *Registry) Register(dependency, implementation *Type, opts ...RegisterOption) {
	if dependency == nil {
		panic("loom: nil dependency passed to Register")
	}
	if implementation == nil {
		panic("loom: nil implementation passed to Register")
	}

	o := registerOptions{lifetime: PerRequest}
	for _, opt := range opts {
		opt.applyRegister(&o)
	}
	rec := &Record{
		implementation: implementation,
		lifetime:       o.lifetime,
		caller:         loomreflect.Caller(),
	}

	e := reg.entry(dependency.Key())
	e.mu.Lock()
	e.records = append(e.records, rec)
	e.mu.Unlock()

	reg.log.LogEvent(&loomevent.Registered{
		Dependency:     dependency.String(),
		Implementation: implementation.String(),
		Lifetime:       rec.lifetime.String(),
		CallerName:     rec.caller,
	})
}

// Bind registers I as an implementation of D.
//
//	loom.Bind[Logger, *ConsoleLogger](reg, loom.Singleton)
func Bind[D, I any](reg *Registry, opts ...RegisterOption) {
	reg.Register(TypeOf[D](), TypeOf[I](), opts...)
}

// entry returns the list for key, creating it if needed.
func (reg *Registry) entry(key Key) *entry {
	reg.mu.RLock()
	e, ok := reg.entries[key]
	reg.mu.RUnlock()
	if ok {
		return e
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if e, ok := reg.entries[key]; ok {
		return e
	}
	e = &entry{}
	reg.entries[key] = e
	reg.keys = append(reg.keys, key)
	return e
}

func (reg *Registry) lookup(key Key) []*Record {
	reg.mu.RLock()
	e, ok := reg.entries[key]
	reg.mu.RUnlock()
	if !ok {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	records := make([]*Record, len(e.records))
	copy(records, e.records)
	return records
}

// Implementations returns a snapshot of the records registered for t, in
// registration order.
//
// If t is an instantiation of a generic family, only records whose
// implementation is an open generic definition or is assignable to t are
// returned.
func (reg *Registry) Implementations(t *Type) []*Record {
	if t == nil {
		return nil
	}
	records := reg.lookup(t.Key())
	if t.generic == nil || t.args == nil {
		return records
	}

	// lookup returns a fresh copy, so filtering in place is safe.
	filtered := records[:0]
	for _, rec := range records {
		if rec.implementation.IsGenericDefinition() || rec.implementation.AssignableTo(t) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// registered returns every key and its records in insertion order.
func (reg *Registry) registered() ([]Key, map[Key][]*Record) {
	reg.mu.RLock()
	keys := make([]Key, len(reg.keys))
	copy(keys, reg.keys)
	reg.mu.RUnlock()

	byKey := make(map[Key][]*Record, len(keys))
	for _, k := range keys {
		byKey[k] = reg.lookup(k)
	}
	return keys, byKey
}

func (reg *Registry) String() string {
	keys, byKey := reg.registered()

	b := &bytes.Buffer{}
	fmt.Fprintln(b, "{registry:")
	for _, k := range keys {
		fmt.Fprintln(b, k, "->", byKey[k])
	}
	fmt.Fprintln(b, "}")
	return b.String()
}
