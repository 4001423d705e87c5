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
	"context"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/loom/internal/loomclock"
	"go.uber.org/loom/loomevent"
)

const _tracerName = "go.uber.org/loom"

// Instance is one resolved implementation along with the descriptor it
// was built from. For generic families Type is the specialization, such
// as MemoryStore[User].
type Instance struct {
	Value any
	Type  *Type
}

// Resolver builds implementations registered in a Registry.
//
// A Resolver holds no state of its own beyond singleton instances, which
// live in the registry's records. It is safe for concurrent use, with one
// exception: two goroutines building the first instances of singletons that
// depend on each other, in opposite orders, can deadlock.
type Resolver struct {
	reg    *Registry
	log    loomevent.Logger
	tracer trace.Tracer
	clock  loomclock.Clock
}

// NewResolver builds a Resolver over reg.
func NewResolver(reg *Registry, opts ...Option) *Resolver {
	if reg == nil {
		panic("loom: nil registry passed to NewResolver")
	}
	o := newOptions(opts)
	return &Resolver{
		reg:    reg,
		log:    o.logger,
		tracer: o.tracerProvider.Tracer(_tracerName),
		clock:  o.clock,
	}
}

// Resolve builds every registered implementation of t that can be built,
// in registration order. Implementations that fail to build are left out;
// an empty result is not an error.
//
// Resolve returns an *OpenGenericError if t is an open generic definition.
// The context is used for tracing only and doesn't cancel resolution.
func (r *Resolver) Resolve(ctx context.Context, t *Type) ([]any, error) {
	instances, err := r.ResolveInstances(ctx, t)
	if err != nil {
		return nil, err
	}

	values := make([]any, len(instances))
	for i, inst := range instances {
		values[i] = inst.Value
	}
	return values, nil
}

// ResolveInstances is like Resolve but also reports the descriptor each
// value was built from.
func (r *Resolver) ResolveInstances(ctx context.Context, t *Type) (instances []Instance, err error) {
	if t == nil {
		panic("loom: nil type passed to Resolve")
	}

	res := newResolution(r.log)
	_, span := r.tracer.Start(ctx, "loom.Resolve", trace.WithAttributes(
		attribute.String("loom.type", t.String()),
		attribute.String("loom.resolution_id", res.id),
	))

	start := r.clock.Now()
	r.log.LogEvent(&loomevent.Resolving{
		ResolutionID: res.id,
		TypeName:     t.String(),
	})
	defer func() {
		r.log.LogEvent(&loomevent.Resolved{
			ResolutionID: res.id,
			TypeName:     t.String(),
			Count:        len(instances),
			Runtime:      r.clock.Since(start),
			Err:          err,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Int("loom.count", len(instances)))
		span.End()
	}()

	if t.IsGenericDefinition() {
		return nil, &OpenGenericError{Type: t}
	}

	for _, inst := range r.resolve(res, t) {
		if satisfies(inst, t) {
			instances = append(instances, inst)
		}
	}
	return instances, nil
}

// ResolveAs resolves every implementation of T.
//
//	loggers, err := loom.ResolveAs[Logger](ctx, resolver)
func ResolveAs[T any](ctx context.Context, r *Resolver) ([]T, error) {
	values, err := r.Resolve(ctx, TypeOf[T]())
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(values))
	for _, v := range values {
		if tv, ok := v.(T); ok {
			out = append(out, tv)
		}
	}
	return out, nil
}

// satisfies reports whether inst can be used where t is expected. Go
// types are checked against the dynamic type of the value as well as the
// descriptor.
func satisfies(inst Instance, t *Type) bool {
	if !inst.Type.AssignableTo(t) {
		return false
	}
	if t.generic != nil || t.rtype == nil {
		return true
	}
	return reflect.TypeOf(inst.Value).AssignableTo(t.rtype)
}
