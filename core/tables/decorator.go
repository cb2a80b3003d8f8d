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

package tables

import "github.com/google/htmlkit/core/values"

// Decorator sets the content of a cell. It receives the row the cell will be
// added to, the 1-based row number (0 for the header) and the values that
// are still to be processed after the current one. The remaining values must
// not be modified.
type Decorator interface {
	Decorate(cell *Cell, row *Row, rowNumber int, remaining []any) error
}

// DecoratorFunc adapts a function to the Decorator interface.
type DecoratorFunc func(cell *Cell, row *Row, rowNumber int, remaining []any) error

func (f DecoratorFunc) Decorate(cell *Cell, row *Row, rowNumber int, remaining []any) error {
	return f(cell, row, rowNumber, remaining)
}

// GroupDecorator decides whether a group row is emitted before the data row
// of the current value. The cell spans all columns and holds the raw value.
type GroupDecorator interface {
	DecorateGroup(cell *Cell, row *Row, rowNumber int, remaining []any) (bool, error)
}

// GroupDecoratorFunc adapts a function to the GroupDecorator interface.
type GroupDecoratorFunc func(cell *Cell, row *Row, rowNumber int, remaining []any) (bool, error)

func (f GroupDecoratorFunc) DecorateGroup(cell *Cell, row *Row, rowNumber int, remaining []any) (bool, error) {
	return f(cell, row, rowNumber, remaining)
}

// ColumnDecorator defines one column: a value decorator for the body cells
// and an optional header decorator.
type ColumnDecorator struct {
	value  Decorator
	header Decorator
}

func NewColumnDecorator(value, header Decorator) ColumnDecorator {
	return ColumnDecorator{value: value, header: header}
}

func (c ColumnDecorator) ValueDecorator() Decorator {
	return c.value
}

// HeaderDecorator returns nil when the column has no header decorator.
func (c ColumnDecorator) HeaderDecorator() Decorator {
	return c.header
}

// passThrough formats the raw value, used when a table has no columns.
var passThrough = DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
	text, err := values.Format(cell.Value())
	if err != nil {
		return err
	}
	cell.SetValue(text)
	return nil
})
