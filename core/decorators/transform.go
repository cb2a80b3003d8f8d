/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package decorators

import (
	"github.com/google/htmlkit/core/element"
	"github.com/google/htmlkit/core/values"
)

// Transform converts a value before a decorator formats it.
type Transform interface {
	Transform(value any) (any, error)
}

// TransformFunc adapts a function to the Transform interface.
type TransformFunc func(value any) (any, error)

func (f TransformFunc) Transform(value any) (any, error) {
	return f(value)
}

// PropertyTransform projects a property out of structured values. Scalars
// and lists pass through unchanged.
type PropertyTransform struct {
	Property string
	Accessor values.Accessor
}

func NewPropertyTransform(property string) *PropertyTransform {
	return &PropertyTransform{Property: property, Accessor: values.DefaultAccessor}
}

func (t *PropertyTransform) Transform(value any) (any, error) {
	if !values.IsStructured(value) {
		return value, nil
	}
	return accessorOrDefault(t.Accessor).Property(value, t.Property)
}

// OptionFieldName is the form field of the checkboxes rendered by
// OptionTransform.
const OptionFieldName = "id"

// OptionTransform renders a checkbox to select the row in a form. The
// checkbox value is the property of structured values or the value itself.
type OptionTransform struct {
	Property string
	Accessor values.Accessor
}

func NewOptionTransform(property string) *OptionTransform {
	return &OptionTransform{Property: property, Accessor: values.DefaultAccessor}
}

func (t *OptionTransform) Transform(value any) (any, error) {
	if t.Property != "" && values.IsStructured(value) {
		var err error
		value, err = accessorOrDefault(t.Accessor).Property(value, t.Property)
		if err != nil {
			return nil, err
		}
	}
	text, err := values.Format(value)
	if err != nil {
		return nil, err
	}
	return `<input type="checkbox" name="` + OptionFieldName + `[]" value="` + element.Escape(text) + `" />`, nil
}

func accessorOrDefault(accessor values.Accessor) values.Accessor {
	if accessor == nil {
		return values.DefaultAccessor
	}
	return accessor
}
