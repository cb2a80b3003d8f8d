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
	"fmt"

	"github.com/google/htmlkit/core/element"
	"github.com/google/htmlkit/core/values"
)

// Cell is a table cell holding one value. Decorators replace the raw row
// value with rendered markup.
type Cell struct {
	*element.Element
	value any
}

func NewCell(value any) *Cell {
	return &Cell{Element: element.New("td", true), value: value}
}

// NewHeaderCell creates a th cell.
func NewHeaderCell(value any) *Cell {
	c := NewCell(value)
	c.SetTag("th", true)
	return c
}

func (c *Cell) SetValue(value any) {
	c.value = value
}

func (c *Cell) Value() any {
	return c.value
}

// Text returns the cell value as display text.
func (c *Cell) Text() string {
	text, err := values.Format(c.value)
	if err != nil {
		return fmt.Sprint(c.value)
	}
	return text
}

// HTML renders the cell. The value is written as markup.
func (c *Cell) HTML() string {
	return c.Render(element.Full, c.Text())
}
