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

// Package tables builds HTML tables as a header row, body rows and a footer
// row. ArrayTable populates a table from a list of values through column
// and group decorators.
package tables

import (
	"strings"

	"github.com/google/htmlkit/core/element"
)

const StyleTable = "table"

// Table holds an optional header and footer row and the ordered body rows.
type Table struct {
	*element.Element
	header *Row
	footer *Row
	rows   []*Row
}

func NewTable() *Table {
	t := &Table{Element: element.New("table", true)}
	t.SetClass(StyleTable)
	return t
}

func (t *Table) SetHeader(row *Row) {
	t.header = row
}

func (t *Table) Header() *Row {
	return t.header
}

func (t *Table) SetFooter(row *Row) {
	t.footer = row
}

func (t *Table) Footer() *Row {
	return t.footer
}

func (t *Table) AddRow(row *Row) {
	t.rows = append(t.rows, row)
}

func (t *Table) Rows() []*Row {
	return t.rows
}

func (t *Table) HasRows() bool {
	return len(t.rows) > 0
}

// CountRows counts the body rows. Header and footer are not included.
func (t *Table) CountRows() int {
	return len(t.rows)
}

// Render renders the requested part of the table.
func (t *Table) Render(part element.Part) string {
	return t.Element.Render(part, t.content())
}

func (t *Table) HTML() string {
	return t.Render(element.Full)
}

func (t *Table) content() string {
	var sb strings.Builder
	sb.WriteString("\n")
	if t.header != nil {
		sb.WriteString("\t<thead>\n\t\t")
		sb.WriteString(t.header.HTML())
		sb.WriteString("\n\t</thead>\n")
	}
	sb.WriteString("\t<tbody>\n")
	for _, row := range t.rows {
		sb.WriteString("\t\t")
		sb.WriteString(row.HTML())
		sb.WriteString("\n")
	}
	sb.WriteString("\t</tbody>\n")
	if t.footer != nil {
		sb.WriteString("\t<tfoot>\n\t\t")
		sb.WriteString(t.footer.HTML())
		sb.WriteString("\n\t</tfoot>\n")
	}
	return sb.String()
}
