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

import "github.com/google/htmlkit/core/tables"

// StyleAction marks action cells and their anchors.
const StyleAction = "action"

// ActionCheck decides per row whether an action is shown and whether it is
// disabled. It receives the raw cell value.
type ActionCheck func(value any, rowNumber int) (display, disabled bool)

// ActionDecorator renders a row action: an anchor with a fixed label. A
// hidden action leaves the cell empty, a disabled action shows the label
// without a link.
type ActionDecorator struct {
	*AnchorDecorator

	actionLabel string
	check       ActionCheck
}

func NewActionDecorator(label string, href HrefFunc) *ActionDecorator {
	d := &ActionDecorator{
		AnchorDecorator: NewAnchorDecorator("", href),
		actionLabel:     label,
	}
	d.label = func(any) (string, error) { return d.actionLabel, nil }
	d.anchorClass = StyleAction
	return d
}

// SetProperty narrows the value passed to the href and message functions.
func (d *ActionDecorator) SetProperty(property string) {
	d.property = property
}

func (d *ActionDecorator) SetCheck(check ActionCheck) {
	d.check = check
}

func (d *ActionDecorator) Label() string {
	return d.actionLabel
}

func (d *ActionDecorator) Decorate(cell *tables.Cell, row *tables.Row, rowNumber int, remaining []any) error {
	if err := cell.AddToClass(StyleAction); err != nil {
		return err
	}

	display, disabled := true, false
	if d.check != nil {
		display, disabled = d.check(cell.Value(), rowNumber)
	}
	if !display {
		cell.SetValue("")
		return nil
	}
	if disabled {
		cell.SetValue(d.actionLabel)
		return nil
	}
	return d.AnchorDecorator.Decorate(cell, row, rowNumber, remaining)
}
