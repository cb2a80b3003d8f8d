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
	"strings"

	"github.com/google/htmlkit/core/element"
)

// Row is an ordered sequence of cells.
type Row struct {
	*element.Element
	cells []*Cell
}

func NewRow() *Row {
	return &Row{Element: element.New("tr", true)}
}

func (r *Row) AddCell(cell *Cell) {
	r.cells = append(r.cells, cell)
}

func (r *Row) HasCells() bool {
	return len(r.cells) > 0
}

func (r *Row) Cells() []*Cell {
	return r.cells
}

// Texts returns the display text of every cell.
func (r *Row) Texts() []string {
	texts := make([]string, len(r.cells))
	for i, cell := range r.cells {
		texts[i] = cell.Text()
	}
	return texts
}

func (r *Row) HTML() string {
	var sb strings.Builder
	for _, cell := range r.cells {
		sb.WriteString(cell.HTML())
	}
	return r.Render(element.Full, sb.String())
}
