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

package loomevent

import (
	"errors"
	"fmt"
	"time"
)

type eventCase struct {
	name        string
	give        Event
	wantMessage string
	wantFields  map[string]string
}

// eventCases lists one case per event type. Every logger test runs them all.
func eventCases() []eventCase {
	someError := errors.New("some error")

	return []eventCase{
		{
			name: "Registered",
			give: &Registered{
				Dependency:     "loom_test.Logger",
				Implementation: "*loom_test.ConsoleLogger",
				Lifetime:       "singleton",
				CallerName:     "main.main",
			},
			wantMessage: "registered",
			wantFields: map[string]string{
				"dependency":     "loom_test.Logger",
				"implementation": "*loom_test.ConsoleLogger",
				"lifetime":       "singleton",
				"caller":         "main.main",
			},
		},
		{
			name:        "Resolving",
			give:        &Resolving{ResolutionID: "r1", TypeName: "loom_test.Logger"},
			wantMessage: "resolving",
			wantFields: map[string]string{
				"resolution": "r1",
				"type":       "loom_test.Logger",
			},
		},
		{
			name: "Resolved",
			give: &Resolved{
				ResolutionID: "r1",
				TypeName:     "loom_test.Logger",
				Count:        2,
				Runtime:      3 * time.Millisecond,
			},
			wantMessage: "resolved",
			wantFields: map[string]string{
				"resolution": "r1",
				"type":       "loom_test.Logger",
				"count":      "2",
				"runtime":    "3ms",
			},
		},
		{
			name:        "ResolvedError",
			give:        &Resolved{ResolutionID: "r1", TypeName: "Store[_]", Err: someError},
			wantMessage: "resolve failed",
			wantFields: map[string]string{
				"resolution": "r1",
				"type":       "Store[_]",
				"error":      "some error",
			},
		},
		{
			name:        "Excluded",
			give:        &Excluded{ResolutionID: "r1", Implementation: "*loom_test.A"},
			wantMessage: "excluded",
			wantFields: map[string]string{
				"resolution":     "r1",
				"implementation": "*loom_test.A",
			},
		},
		{
			name: "ConstructorFailed",
			give: &ConstructorFailed{
				ResolutionID:    "r1",
				Implementation:  "*loom_test.A",
				ConstructorName: "loom_test.NewA()",
				Err:             someError,
			},
			wantMessage: "constructor failed",
			wantFields: map[string]string{
				"resolution":     "r1",
				"implementation": "*loom_test.A",
				"constructor":    "loom_test.NewA()",
				"error":          "some error",
			},
		},
		{
			name: "Constructed",
			give: &Constructed{
				ResolutionID:    "r1",
				Implementation:  "*loom_test.A",
				ConstructorName: "loom_test.NewA()",
				Runtime:         time.Millisecond,
			},
			wantMessage: "constructed",
			wantFields: map[string]string{
				"resolution":     "r1",
				"implementation": "*loom_test.A",
				"constructor":    "loom_test.NewA()",
				"runtime":        "1ms",
			},
		},
		{
			name: "ConstructedError",
			give: &Constructed{
				ResolutionID:   "r1",
				Implementation: "*loom_test.A",
				Err:            someError,
			},
			wantMessage: "construction failed",
			wantFields: map[string]string{
				"resolution":     "r1",
				"implementation": "*loom_test.A",
				"error":          "some error",
			},
		},
		{
			name:        "SingletonCached",
			give:        &SingletonCached{ResolutionID: "r1", Implementation: "*loom_test.A"},
			wantMessage: "singleton cached",
			wantFields: map[string]string{
				"resolution":     "r1",
				"implementation": "*loom_test.A",
			},
		},
	}
}

func stringify(fields map[string]interface{}, drop ...string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = fmt.Sprint(v)
	}
	for _, k := range drop {
		delete(out, k)
	}
	return out
}
