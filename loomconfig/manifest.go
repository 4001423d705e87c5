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

// Package loomconfig registers implementations from declarative manifests.
//
// A manifest lists bindings by name:
//
//	bindings:
//	  - dependency: Logger
//	    implementation: ConsoleLogger
//	    lifetime: singleton
//	  - dependency: Store
//	    implementation: MemoryStore
//
// Names are mapped to descriptors through a Catalog, and Apply registers
// every binding in order.
package loomconfig

import (
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/loom"
	"go.uber.org/multierr"
)

// Binding maps a dependency to one implementation.
type Binding struct {
	Dependency     string `mapstructure:"dependency" validate:"required"`
	Implementation string `mapstructure:"implementation" validate:"required"`
	// Lifetime is per_request or singleton. It defaults to per_request.
	Lifetime string `mapstructure:"lifetime" validate:"omitempty,oneof=per_request singleton"`
}

// Manifest is a list of bindings.
type Manifest struct {
	Bindings []Binding `mapstructure:"bindings" validate:"dive"`
}

var (
	_validate *validator.Validate
	_once     sync.Once
)

func getValidator() *validator.Validate {
	_once.Do(func() {
		_validate = validator.New(validator.WithRequiredStructEnabled())
		_validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return _validate
}

// Load reads a manifest from a YAML, JSON, or TOML file. The format is
// taken from the file extension.
func Load(path string) (*Manifest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "loomconfig: reading %v", path)
	}
	return decode(v)
}

// Read reads a manifest in the given format, such as "yaml" or "json".
func Read(r io.Reader, format string) (*Manifest, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrapf(err, "loomconfig: reading %v manifest", format)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Manifest, error) {
	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, errors.Wrap(err, "loomconfig: decoding manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every binding names a dependency and an
// implementation, and that lifetimes are known.
func (m *Manifest) Validate() error {
	err := getValidator().Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "loomconfig: validating manifest")
	}

	var errs error
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Manifest.")
		errs = multierr.Append(errs, errors.Errorf("loomconfig: %v %v", field, describe(e)))
	}
	return errs
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// Apply registers every binding of m in reg, in order. Names are looked up
// in c. If any name is unknown or any lifetime is invalid, nothing is
// registered and all problems are reported together.
func (m *Manifest) Apply(reg *loom.Registry, c *Catalog) error {
	type registration struct {
		dependency, implementation *loom.Type
		lifetime                   loom.Lifetime
	}

	var (
		regs []registration
		errs error
	)
	for i, b := range m.Bindings {
		dep, depErr := c.lookup(b.Dependency)
		impl, implErr := c.lookup(b.Implementation)
		var lifetime loom.Lifetime
		ltErr := lifetime.UnmarshalText([]byte(b.Lifetime))

		if err := multierr.Combine(depErr, implErr, ltErr); err != nil {
			for _, e := range multierr.Errors(err) {
				errs = multierr.Append(errs, errors.Wrapf(e, "loomconfig: bindings[%d]", i))
			}
			continue
		}
		regs = append(regs, registration{dep, impl, lifetime})
	}
	if errs != nil {
		return errs
	}

	for _, r := range regs {
		reg.Register(r.dependency, r.implementation, r.lifetime)
	}
	return nil
}
