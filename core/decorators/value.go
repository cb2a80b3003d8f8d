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

// Package decorators provides the cell decorators of array tables: plain
// values, static text, anchors, row actions and data summaries.
package decorators

import (
	"strings"

	"github.com/google/htmlkit/core/tables"
	"github.com/google/htmlkit/core/values"
)

// ValueDecorator sets the cell to the display text of its value. The value
// can be narrowed to a property and converted by a transform first.
type ValueDecorator struct {
	property  string
	transform Transform
	accessor  values.Accessor
	cellClass string
}

// NewValueDecorator creates a decorator for property. An empty property
// uses the value itself.
func NewValueDecorator(property string) *ValueDecorator {
	return &ValueDecorator{property: property, accessor: values.DefaultAccessor}
}

func (d *ValueDecorator) SetTransform(transform Transform) {
	d.transform = transform
}

func (d *ValueDecorator) SetAccessor(accessor values.Accessor) {
	d.accessor = accessorOrDefault(accessor)
}

// SetCellClass sets a style class added to every decorated cell.
func (d *ValueDecorator) SetCellClass(class string) {
	d.cellClass = class
}

func (d *ValueDecorator) Decorate(cell *tables.Cell, row *tables.Row, rowNumber int, remaining []any) error {
	value, err := d.Value(cell)
	if err != nil {
		return err
	}
	text, err := d.DecorateValue(value)
	if err != nil {
		return err
	}
	cell.SetValue(text)

	if d.cellClass != "" {
		return cell.AddToClass(d.cellClass)
	}
	return nil
}

// Value returns the value of the cell narrowed to the configured property.
func (d *ValueDecorator) Value(cell *tables.Cell) (any, error) {
	value := cell.Value()
	if d.property == "" {
		return value, nil
	}
	return d.accessor.Property(value, d.property)
}

// DecorateValue transforms and formats value. Lists are decorated element
// by element and joined with ", ".
func (d *ValueDecorator) DecorateValue(value any) (string, error) {
	if d.transform != nil {
		var err error
		value, err = d.transform.Transform(value)
		if err != nil {
			return "", err
		}
	}

	if !values.IsList(value) {
		return values.Format(value)
	}

	items := values.Items(value)
	parts := make([]string, len(items))
	for i, item := range items {
		part, err := d.DecorateValue(item)
		if err != nil {
			return "", err
		}
		parts[i] = part
	}
	return strings.Join(parts, values.ListSeparator), nil
}
