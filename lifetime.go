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

	"github.com/pkg/errors"
)

// Lifetime controls how often an implementation is constructed.
//
// A Lifetime is also a RegisterOption:
//
//	reg.Register(dep, impl, loom.Singleton)
type Lifetime int

const (
	// PerRequest implementations are constructed every time they are
	// resolved. This is the default.
	PerRequest Lifetime = iota
	// Singleton implementations are constructed at most once per record
	// and shared afterwards.
	Singleton
)

var _lifetimeNames = map[Lifetime]string{
	PerRequest: "per_request",
	Singleton:  "singleton",
}

func (l Lifetime) String() string {
	if s, ok := _lifetimeNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Lifetime(%d)", int(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Lifetime) MarshalText() ([]byte, error) {
	if _, ok := _lifetimeNames[l]; !ok {
		return nil, errors.Errorf("unknown lifetime %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The empty string
// decodes to PerRequest.
func (l *Lifetime) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		*l = PerRequest
		return nil
	}
	for lt, name := range _lifetimeNames {
		if name == s {
			*l = lt
			return nil
		}
	}
	return errors.Errorf("unknown lifetime %q", s)
}

func (l Lifetime) applyRegister(o *registerOptions) {
	o.lifetime = l
}
