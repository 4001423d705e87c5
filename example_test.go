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
	"context"
	"fmt"
	"os"

	"go.uber.org/loom"
	"go.uber.org/loom/loomevent"
)

type Clock interface{ Now() string }

type fixedClock struct{}

func (fixedClock) Now() string { return "12:00" }

type Reporter struct {
	clocks []Clock
}

func NewReporter(clocks []Clock) *Reporter {
	return &Reporter{clocks: clocks}
}

func Example() {
	reg := loom.NewRegistry()
	loom.Bind[Clock, fixedClock](reg, loom.Singleton)
	reg.Register(
		loom.TypeOf[*Reporter](),
		loom.Describe[*Reporter](loom.Constructors(NewReporter)),
	)

	r := loom.NewResolver(reg)
	reporters, err := loom.ResolveAs[*Reporter](context.Background(), r)
	if err != nil {
		panic(err)
	}

	for _, rep := range reporters {
		for _, c := range rep.clocks {
			fmt.Println(c.Now())
		}
	}
	// Output:
	// 12:00
}

func ExampleGeneric() {
	store := loom.NewGeneric("Store", 1)
	memoryStore := loom.NewGeneric("MemoryStore", 1,
		loom.ImplementsGeneric(store),
		loom.Specializer(func(args []*loom.Type) []*loom.Constructor {
			return []*loom.Constructor{
				loom.NewConstructor("newMemoryStore", nil, func([]any) (any, error) {
					return fmt.Sprintf("memory store of %v", args[0]), nil
				}),
			}
		}),
	)

	reg := loom.NewRegistry()
	reg.Register(store.Definition(), memoryStore.Definition())

	r := loom.NewResolver(reg)
	instances, err := r.ResolveInstances(context.Background(), store.Of(loom.TypeOf[string]()))
	if err != nil {
		panic(err)
	}

	for _, inst := range instances {
		fmt.Println(inst.Type, "=>", inst.Value)
	}
	// Output:
	// MemoryStore[string] => memory store of string
}

func ExampleWithLogger() {
	reg := loom.NewRegistry()
	reg.Register(interface1Type, loom.Describe[*failing](loom.Constructors(newFailing)))

	r := loom.NewResolver(reg, loom.WithLogger(&loomevent.ConsoleLogger{W: os.Stdout}))
	values, _ := r.Resolve(context.Background(), interface1Type)
	fmt.Println(len(values), "instance(s)")
}
