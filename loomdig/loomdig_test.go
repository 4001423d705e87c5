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

package loomdig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"go.uber.org/loom"
	"go.uber.org/loom/loomdig"
)

type greeter interface{ Greet() string }

type english struct{ id int }

func (*english) Greet() string { return "hello" }

type french struct{ id int }

func (*french) Greet() string { return "bonjour" }

var greeterType = loom.TypeOf[greeter]()

func TestProvide(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		reg := loom.NewRegistry()
		reg.Register(greeterType, loom.TypeOf[*english]())

		c := dig.New()
		require.NoError(t, loomdig.Provide(c, loom.NewResolver(reg), greeterType))
		require.NoError(t, c.Invoke(func(g greeter) {
			assert.Equal(t, "hello", g.Greet())
		}))
	})

	t.Run("Named", func(t *testing.T) {
		reg := loom.NewRegistry()
		reg.Register(greeterType, loom.TypeOf[*french]())

		c := dig.New()
		require.NoError(t, loomdig.Provide(c, loom.NewResolver(reg), greeterType, dig.Name("fr")))

		type params struct {
			dig.In

			Greeter greeter `name:"fr"`
		}
		require.NoError(t, c.Invoke(func(p params) {
			assert.Equal(t, "bonjour", p.Greeter.Greet())
		}))
	})

	t.Run("Ambiguous", func(t *testing.T) {
		reg := loom.NewRegistry()
		reg.Register(greeterType, loom.TypeOf[*english]())
		reg.Register(greeterType, loom.TypeOf[*french]())

		c := dig.New()
		require.NoError(t, loomdig.Provide(c, loom.NewResolver(reg), greeterType))

		err := c.Invoke(func(greeter) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolved to 2 instances, expected exactly one")
	})

	t.Run("Nothing", func(t *testing.T) {
		c := dig.New()
		require.NoError(t, loomdig.Provide(c, loom.NewResolver(loom.NewRegistry()), greeterType))

		err := c.Invoke(func(greeter) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resolved to 0 instances")
	})

	t.Run("Generic", func(t *testing.T) {
		box := loom.NewGeneric("Box", 1)

		err := loomdig.Provide(dig.New(), loom.NewResolver(loom.NewRegistry()), box.Of(greeterType))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Box[loomdig_test.greeter] has no Go type")
	})

	t.Run("AlreadyProvided", func(t *testing.T) {
		r := loom.NewResolver(loom.NewRegistry())
		c := dig.New()
		require.NoError(t, loomdig.Provide(c, r, greeterType))

		err := loomdig.Provide(c, r, greeterType)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loomdig: providing loomdig_test.greeter")
	})
}

func TestProvideAll(t *testing.T) {
	t.Run("Group", func(t *testing.T) {
		reg := loom.NewRegistry()
		reg.Register(greeterType, loom.TypeOf[*english]())
		reg.Register(greeterType, loom.TypeOf[*french]())

		c := dig.New()
		require.NoError(t, loomdig.ProvideAll(c, loom.NewResolver(reg), greeterType, "greeters"))

		type params struct {
			dig.In

			Greeters []greeter `group:"greeters"`
		}
		require.NoError(t, c.Invoke(func(p params) {
			var words []string
			for _, g := range p.Greeters {
				words = append(words, g.Greet())
			}
			assert.ElementsMatch(t, []string{"hello", "bonjour"}, words)
		}))
	})

	t.Run("MissingGroup", func(t *testing.T) {
		err := loomdig.ProvideAll(dig.New(), loom.NewResolver(loom.NewRegistry()), greeterType, "")
		assert.EqualError(t, err, "loomdig: a value group name is required")
	})

	t.Run("Nil", func(t *testing.T) {
		err := loomdig.ProvideAll(dig.New(), loom.NewResolver(loom.NewRegistry()), nil, "g")
		assert.EqualError(t, err, "loomdig: nil type")
	})
}
