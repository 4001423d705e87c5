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

package loomconfig

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/loom"
)

// Catalog maps the names used in manifests to type descriptors. It is safe
// for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	types map[string]*loom.Type
}

// NewCatalog builds an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{types: make(map[string]*loom.Type)}
}

// Add names a descriptor. It panics if the name is empty or already taken,
// or if t is nil.
func (c *Catalog) Add(name string, t *loom.Type) *Catalog {
	if name == "" {
		panic("loomconfig: empty name passed to Catalog.Add")
	}
	if t == nil {
		panic(fmt.Sprintf("loomconfig: nil type passed to Catalog.Add for %q", name))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.types[name]; ok {
		panic(fmt.Sprintf("loomconfig: %q is already in the catalog", name))
	}
	c.types[name] = t
	return c
}

// Lookup returns the descriptor named name.
func (c *Catalog) Lookup(name string) (*loom.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.types[name]
	return t, ok
}

// Names returns every name in the catalog, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) lookup(name string) (*loom.Type, error) {
	if t, ok := c.Lookup(name); ok {
		return t, nil
	}
	return nil, errors.Errorf("unknown type %q", name)
}
