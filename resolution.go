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
	"github.com/google/uuid"
	"go.uber.org/loom/loomevent"
)

// resolution is the recursion guard of one top-level Resolve call. It is
// owned by the goroutine running the call and is never shared.
type resolution struct {
	id  string
	log loomevent.Logger

	// Implementations currently under construction, outermost first.
	stack []*Type
}

func newResolution(log loomevent.Logger) *resolution {
	return &resolution{
		id:  uuid.NewString(),
		log: log,
	}
}

func (res *resolution) push(t *Type) {
	res.stack = append(res.stack, t)
}

func (res *resolution) pop() {
	res.stack = res.stack[:len(res.stack)-1]
}

// excludes reports whether t is already under construction, emitting an
// Excluded event if so.
func (res *resolution) excludes(t *Type) bool {
	for _, s := range res.stack {
		if s.Equal(t) {
			res.log.LogEvent(&loomevent.Excluded{
				ResolutionID:   res.id,
				Implementation: t.String(),
			})
			return true
		}
	}
	return false
}
