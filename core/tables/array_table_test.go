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
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/htmlkit/core/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefixDecorator(prefix string) Decorator {
	return DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
		cell.SetValue(fmt.Sprintf("%s%v", prefix, cell.Value()))
		return nil
	})
}

func staticHeader(label string) Decorator {
	return DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
		cell.SetValue(label)
		return nil
	})
}

func TestArrayTableRowsAndColumns(t *testing.T) {
	table := NewArrayTable([]any{"a", "b", "c"})
	table.AddDecorator(prefixDecorator("1:"), nil, false)
	table.AddDecorator(prefixDecorator("2:"), nil, false)

	require.NoError(t, table.Populate())
	require.Equal(t, 3, table.CountRows())
	assert.Nil(t, table.Header())

	for i, row := range table.Rows() {
		require.Len(t, row.Cells(), 2)
		want := []string{"abc"[i : i+1], "abc"[i : i+1]}
		assert.Equal(t, []string{"1:" + want[0], "2:" + want[1]}, row.Texts())
	}
}

func TestArrayTableDefaultColumn(t *testing.T) {
	table := NewArrayTable([]any{1, []int{2, 3}, nil})

	require.NoError(t, table.Populate())
	require.Equal(t, 3, table.CountRows())
	for _, row := range table.Rows() {
		assert.Len(t, row.Cells(), 1)
	}
	assert.Equal(t, "2, 3", table.Rows()[1].Cells()[0].Value())
	assert.Equal(t, "", table.Rows()[2].Cells()[0].Value())
	assert.Equal(t, 1, table.CountColumns())
}

func TestArrayTableKeepsFalsyValues(t *testing.T) {
	table := NewArrayTable([]any{1, 0, "", false, nil, "last"})

	require.NoError(t, table.Populate())
	assert.Equal(t, 6, table.CountRows())
}

func TestArrayTableHeader(t *testing.T) {
	table := NewArrayTable([]any{"x"})
	table.AddDecorator(prefixDecorator(""), nil, false)
	table.AddDecorator(prefixDecorator(""), staticHeader("Name"), false)

	require.NoError(t, table.Populate())
	header := table.Header()
	require.NotNil(t, header)
	require.Len(t, header.Cells(), 2)
	assert.Equal(t, "th", header.Cells()[0].Tag())
	assert.Equal(t, []string{"", "Name"}, header.Texts())
	assert.Equal(t, 1, table.CountRows())
}

func TestArrayTableHeaderReceivesRowZero(t *testing.T) {
	var gotRow int
	var gotRemaining []any
	table := NewArrayTable([]any{"x", "y"})
	table.AddDecorator(prefixDecorator(""), DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
		gotRow = rowNumber
		gotRemaining = remaining
		return nil
	}), false)

	require.NoError(t, table.Populate())
	assert.Equal(t, 0, gotRow)
	assert.NotNil(t, gotRemaining)
	assert.Empty(t, gotRemaining)
}

func TestArrayTableRowNumbersAndRemainingValues(t *testing.T) {
	type call struct {
		rowNumber int
		remaining []any
	}
	var calls []call
	table := NewArrayTable([]any{"a", "b", "c"})
	table.AddDecorator(DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
		calls = append(calls, call{rowNumber, append([]any(nil), remaining...)})
		return nil
	}), nil, false)
	table.AddDecorator(prefixDecorator(""), nil, false)

	require.NoError(t, table.Populate())
	assert.Equal(t, []call{
		{1, []any{"b", "c"}},
		{2, []any{"c"}},
		{3, nil},
	}, calls)
}

func TestArrayTableDoesNotMutateInput(t *testing.T) {
	input := []any{"a", "b"}
	table := NewArrayTable(input)
	table.AddDecorator(DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
		remaining = append(remaining, "extra")
		cell.SetValue("changed")
		return nil
	}), nil, false)

	require.NoError(t, table.Populate())
	assert.Equal(t, []any{"a", "b"}, input)
	assert.Equal(t, []any{"a", "b"}, table.Values())
}

func TestArrayTableGroupRows(t *testing.T) {
	var last string
	byInitial := GroupDecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) (bool, error) {
		initial := cell.Value().(string)[:1]
		if initial == last {
			return false, nil
		}
		last = initial
		cell.SetValue(strings.ToUpper(initial))
		return true, nil
	})
	always := GroupDecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) (bool, error) {
		cell.SetValue(fmt.Sprintf("#%d", rowNumber))
		return true, nil
	})

	table := NewArrayTable([]any{"apple", "avocado", "banana"})
	table.AddDecorator(prefixDecorator(""), nil, false)
	table.AddDecorator(prefixDecorator(""), nil, false)
	table.AddDecorator(prefixDecorator(""), nil, false)
	table.AddGroupDecorator(always, false)
	table.AddGroupDecorator(byInitial, true)

	require.NoError(t, table.Populate())

	var texts []string
	for _, row := range table.Rows() {
		texts = append(texts, strings.Join(row.Texts(), "|"))
	}
	assert.Equal(t, []string{
		"A", "#1", "apple|apple|apple",
		"#2", "avocado|avocado|avocado",
		"B", "#3", "banana|banana|banana",
	}, texts)

	group := table.Rows()[0]
	require.Len(t, group.Cells(), 1)
	colspan, ok := group.Cells()[0].Attribute(AttributeColspan)
	assert.True(t, ok)
	assert.Equal(t, "3", colspan)
	assert.True(t, group.HasClass(StyleGroup))
}

func TestArrayTableGroupColspanWithoutColumns(t *testing.T) {
	table := NewArrayTable([]any{"x"})
	table.AddGroupDecorator(GroupDecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) (bool, error) {
		return true, nil
	}), false)

	require.NoError(t, table.Populate())
	require.Equal(t, 2, table.CountRows())
	colspan, _ := table.Rows()[0].Cells()[0].Attribute(AttributeColspan)
	assert.Equal(t, "1", colspan)
}

func TestArrayTablePrependColumn(t *testing.T) {
	table := NewArrayTable([]any{"v"})
	table.AddDecorator(prefixDecorator("b"), nil, false)
	table.AddDecorator(prefixDecorator("a"), nil, true)

	require.NoError(t, table.Populate())
	assert.Equal(t, []string{"av", "bv"}, table.Rows()[0].Texts())
}

func TestArrayTableRejectsManualRows(t *testing.T) {
	table := NewArrayTable(nil)
	assert.ErrorIs(t, table.SetHeader(NewRow()), ErrInvalidOperation)
	assert.ErrorIs(t, table.AddRow(NewRow()), ErrInvalidOperation)
	assert.False(t, table.HasRows())
}

func TestArrayTableRenderIsIdempotent(t *testing.T) {
	calls := 0
	table := NewArrayTable([]any{"a", "b"})
	table.AddDecorator(DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
		calls++
		cell.SetValue(fmt.Sprintf("<b>%v</b>", cell.Value()))
		return nil
	}), staticHeader("Value"), false)

	first, err := table.HTML()
	require.NoError(t, err)
	second, err := table.HTML()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, table.CountRows())
	assert.Equal(t, "<table class=\"table\">\n\t<thead>\n\t\t<tr><th>Value</th></tr>\n\t</thead>\n"+
		"\t<tbody>\n\t\t<tr><td><b>a</b></td></tr>\n\t\t<tr><td><b>b</b></td></tr>\n\t</tbody>\n</table>", first)
}

func TestArrayTablePopulateErrorIsMemoized(t *testing.T) {
	calls := 0
	table := NewArrayTable([]any{map[string]int{"a": 1}, "b"})
	table.AddDecorator(DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
		calls++
		text, err := values.Format(cell.Value())
		cell.SetValue(text)
		return err
	}), nil, false)

	_, err := table.HTML()
	require.Error(t, err)
	var unsupported *values.UnsupportedValueError
	assert.True(t, errors.As(err, &unsupported))

	_, again := table.HTML()
	assert.Equal(t, err, again)
	assert.Equal(t, 1, calls)
}

type recordingFormat struct {
	title   string
	header  []string
	rows    []string
	groups  []bool
	file    *os.File
	initErr error
	aborted bool
}

func (f *recordingFormat) InitExport(title string) error {
	f.title = title
	return f.initErr
}

func (f *recordingFormat) AddExportHeaderRow(row *Row) error {
	f.header = row.Texts()
	return nil
}

func (f *recordingFormat) AddExportDataRow(row *Row, isGroupRow bool) error {
	f.rows = append(f.rows, strings.Join(row.Texts(), ","))
	f.groups = append(f.groups, isGroupRow)
	return nil
}

func (f *recordingFormat) FinishExport() (*os.File, error) {
	return f.file, nil
}

func (f *recordingFormat) AbortExport() error {
	f.aborted = true
	return nil
}

func TestPopulateExport(t *testing.T) {
	table := NewArrayTable([]any{"a", "b"})
	table.AddDecorator(prefixDecorator("display:"), staticHeader("Display"), false)
	table.AddExportDecorator(prefixDecorator("export:"), staticHeader("Export"))
	table.AddExportDecorator(prefixDecorator(""), nil)
	table.AddExportGroupDecorator(GroupDecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) (bool, error) {
		return rowNumber == 1, nil
	}))

	format := &recordingFormat{}
	_, err := table.PopulateExport(format, "Letters")
	require.NoError(t, err)

	assert.Equal(t, "Letters", format.title)
	assert.Equal(t, []string{"Export", ""}, format.header)
	assert.Equal(t, []string{"a", "export:a,a", "export:b,b"}, format.rows)
	assert.Equal(t, []bool{true, false, false}, format.groups)
	assert.Equal(t, 0, table.CountRows(), "export must not populate the displayed table")
}

func TestPopulateExportFallsBackToDisplayColumns(t *testing.T) {
	table := NewArrayTable([]any{"a"})
	table.AddDecorator(prefixDecorator("display:"), nil, false)

	format := &recordingFormat{}
	_, err := table.PopulateExport(format, "")
	require.NoError(t, err)
	assert.Nil(t, format.header)
	assert.Equal(t, []string{"display:a"}, format.rows)
}

func TestPopulateExportInitError(t *testing.T) {
	table := NewArrayTable([]any{"a"})
	format := &recordingFormat{initErr: errors.New("disk full")}
	_, err := table.PopulateExport(format, "x")
	assert.ErrorContains(t, err, "disk full")
}

func TestPopulateExportAbortsOnDecorationError(t *testing.T) {
	table := NewArrayTable([]any{"a", "b"})
	table.AddExportDecorator(DecoratorFunc(func(cell *Cell, row *Row, rowNumber int, remaining []any) error {
		if rowNumber == 2 {
			return errors.New("boom")
		}
		cell.SetValue(cell.Value())
		return nil
	}), nil)

	format := &recordingFormat{}
	f, err := table.PopulateExport(format, "x")
	assert.ErrorContains(t, err, "boom")
	assert.Nil(t, f)
	assert.True(t, format.aborted)
}
