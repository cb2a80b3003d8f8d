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

package export

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/htmlkit/core/tables"
	"github.com/pkg/errors"
)

// TextFormat renders an export as a bordered text table. The title is
// written above the table, group rows are rendered bold in the first column.
type TextFormat struct {
	Border lipgloss.Border

	title  string
	header []string
	rows   [][]string
	groups map[int]bool
	active bool
}

func NewTextFormat() *TextFormat {
	return &TextFormat{Border: lipgloss.NormalBorder()}
}

func (f *TextFormat) InitExport(title string) error {
	f.title = title
	f.header = nil
	f.rows = nil
	f.groups = make(map[int]bool)
	f.active = true
	return nil
}

func (f *TextFormat) AddExportHeaderRow(row *tables.Row) error {
	if !f.active {
		return ErrNotInitialized
	}
	header, err := rowTexts(row)
	if err != nil {
		return err
	}
	f.header = header
	return nil
}

func (f *TextFormat) AddExportDataRow(row *tables.Row, isGroupRow bool) error {
	if !f.active {
		return ErrNotInitialized
	}
	texts, err := rowTexts(row)
	if err != nil {
		return err
	}
	if isGroupRow {
		f.groups[len(f.rows)] = true
	}
	f.rows = append(f.rows, texts)
	return nil
}

// Render returns the text of the collected rows.
func (f *TextFormat) Render() string {
	columns := len(f.header)
	for _, row := range f.rows {
		columns = max(columns, len(row))
	}

	rows := make([][]string, len(f.rows))
	for i, row := range f.rows {
		rows[i] = pad(row, columns)
	}

	bold := lipgloss.NewStyle().Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(f.Border).
		BorderRow(false).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || (row >= 0 && f.groups[row]) {
				return cell.Inherit(bold)
			}
			return cell
		})
	if len(f.header) > 0 {
		t = t.Headers(pad(f.header, columns)...)
	}

	out := t.Render()
	if f.title != "" {
		out = bold.Render(f.title) + "\n" + out
	}
	return out + "\n"
}

func (f *TextFormat) FinishExport() (*os.File, error) {
	if !f.active {
		return nil, ErrNotInitialized
	}
	f.active = false

	file, err := createFile(f.title, ".txt")
	if err != nil {
		return nil, err
	}
	if _, err := file.WriteString(f.Render()); err != nil {
		discard(file)
		return nil, errors.Wrap(err, "could not write text export")
	}
	return rewind(file)
}

// AbortExport drops the collected rows. Text exports create their file in
// FinishExport, so there is nothing on disk yet.
func (f *TextFormat) AbortExport() error {
	f.active = false
	f.header, f.rows, f.groups = nil, nil, nil
	return nil
}

func pad(row []string, columns int) []string {
	if len(row) >= columns {
		return row
	}
	padded := make([]string, columns)
	copy(padded, row)
	return padded
}
