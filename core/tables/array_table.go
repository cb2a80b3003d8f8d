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

import (
	"strconv"

	"github.com/google/htmlkit/core/element"
	"github.com/pkg/errors"
)

const (
	// StyleGroup marks group rows.
	StyleGroup = "group"

	AttributeColspan = "colspan"
)

// ErrInvalidOperation is returned when rows are added to an ArrayTable
// directly instead of through its decorators.
var ErrInvalidOperation = errors.New("invalid operation")

// ArrayTable is a table populated from a list of values. Every value yields
// the rows of the group decorators that accept it followed by one data row
// with a cell per column decorator. Population runs once, on first render.
type ArrayTable struct {
	*Table

	values           []any
	columnDecorators []ColumnDecorator
	groupDecorators  []GroupDecorator
	hasHeader        bool

	exportDecorators      []ColumnDecorator
	exportGroupDecorators []GroupDecorator

	populated   bool
	populateErr error
}

// NewArrayTable creates a table for values. The list is copied.
func NewArrayTable(values []any) *ArrayTable {
	return &ArrayTable{
		Table:  NewTable(),
		values: append([]any(nil), values...),
	}
}

// SetHeader always fails, the header is built by the header decorators.
func (t *ArrayTable) SetHeader(*Row) error {
	return errors.Wrap(ErrInvalidOperation, "could not set header: the header of an array table is built by its header decorators")
}

// AddRow always fails, rows are built by the decorators.
func (t *ArrayTable) AddRow(*Row) error {
	return errors.Wrap(ErrInvalidOperation, "could not add row: rows of an array table are built from its values by its decorators")
}

// HasRows reports whether the table has values to populate or populated rows.
func (t *ArrayTable) HasRows() bool {
	if !t.populated {
		return len(t.values) > 0
	}
	return t.Table.HasRows()
}

// Values returns a copy of the values of the table.
func (t *ArrayTable) Values() []any {
	return append([]any(nil), t.values...)
}

// AddDecorator adds a column. header may be nil. With prepend the column is
// inserted before the existing columns.
func (t *ArrayTable) AddDecorator(value, header Decorator, prepend bool) {
	t.columnDecorators = addColumn(t.columnDecorators, NewColumnDecorator(value, header), prepend)
	if header != nil {
		t.hasHeader = true
	}
}

// AddGroupDecorator adds a group decorator, before the existing ones with
// prepend.
func (t *ArrayTable) AddGroupDecorator(group GroupDecorator, prepend bool) {
	t.groupDecorators = addGroup(t.groupDecorators, group, prepend)
}

func (t *ArrayTable) ColumnDecorators() []ColumnDecorator {
	return t.columnDecorators
}

func (t *ArrayTable) CountColumns() int {
	return max(len(t.columnDecorators), 1)
}

// Populate builds the header and body rows. It runs the decorators once;
// later calls return the result of the first call.
func (t *ArrayTable) Populate() error {
	if t.populated {
		return t.populateErr
	}
	t.populated = true

	if len(t.columnDecorators) == 0 {
		t.columnDecorators = []ColumnDecorator{NewColumnDecorator(passThrough, nil)}
	}

	addRow := func(row *Row) error {
		t.Table.AddRow(row)
		return nil
	}
	p := populator{
		columns:    t.columnDecorators,
		groups:     t.groupDecorators,
		withHeader: t.hasHeader,
		setHeader: func(row *Row) error {
			t.Table.SetHeader(row)
			return nil
		},
		addGroupRow: addRow,
		addDataRow:  addRow,
	}
	t.populateErr = p.run(t.values, t.Table.CountRows()+1)
	return t.populateErr
}

// Render populates the table when needed and renders the requested part.
func (t *ArrayTable) Render(part element.Part) (string, error) {
	if err := t.Populate(); err != nil {
		return "", err
	}
	return t.Table.Render(part), nil
}

func (t *ArrayTable) HTML() (string, error) {
	return t.Render(element.Full)
}

func addColumn(columns []ColumnDecorator, column ColumnDecorator, prepend bool) []ColumnDecorator {
	if prepend {
		return append([]ColumnDecorator{column}, columns...)
	}
	return append(columns, column)
}

func addGroup(groups []GroupDecorator, group GroupDecorator, prepend bool) []GroupDecorator {
	if prepend {
		return append([]GroupDecorator{group}, groups...)
	}
	return append(groups, group)
}

// populator runs column and group decorators over a list of values and hands
// the finished rows to its sinks.
type populator struct {
	columns    []ColumnDecorator
	groups     []GroupDecorator
	withHeader bool

	setHeader   func(row *Row) error
	addGroupRow func(row *Row) error
	addDataRow  func(row *Row) error
}

func (p populator) run(values []any, firstRowNumber int) error {
	if p.withHeader {
		if err := p.header(); err != nil {
			return err
		}
	}

	rowNumber := firstRowNumber
	for i, value := range values {
		remaining := values[i+1 : len(values) : len(values)]
		if err := p.groupRows(value, rowNumber, remaining); err != nil {
			return err
		}
		if err := p.dataRow(value, rowNumber, remaining); err != nil {
			return err
		}
		rowNumber++
	}
	return nil
}

func (p populator) header() error {
	row := NewRow()
	for i, column := range p.columns {
		cell := NewHeaderCell(nil)
		if header := column.HeaderDecorator(); header != nil {
			if err := header.Decorate(cell, row, 0, []any{}); err != nil {
				return errors.Wrapf(err, "could not decorate header of column %d", i+1)
			}
		}
		row.AddCell(cell)
	}
	return p.setHeader(row)
}

func (p populator) groupRows(value any, rowNumber int, remaining []any) error {
	colspan := strconv.Itoa(max(len(p.columns), 1))
	for _, group := range p.groups {
		cell := NewCell(value)
		if err := cell.SetAttribute(AttributeColspan, colspan); err != nil {
			return err
		}
		row := NewRow()
		row.SetClass(StyleGroup)
		row.AddCell(cell)

		include, err := group.DecorateGroup(cell, row, rowNumber, remaining)
		if err != nil {
			return errors.Wrapf(err, "could not decorate group row %d", rowNumber)
		}
		if !include {
			continue
		}
		if err := p.addGroupRow(row); err != nil {
			return err
		}
	}
	return nil
}

func (p populator) dataRow(value any, rowNumber int, remaining []any) error {
	row := NewRow()
	for _, column := range p.columns {
		cell := NewCell(value)
		if err := column.ValueDecorator().Decorate(cell, row, rowNumber, remaining); err != nil {
			return errors.Wrapf(err, "could not decorate row %d", rowNumber)
		}
		row.AddCell(cell)
	}
	return p.addDataRow(row)
}
