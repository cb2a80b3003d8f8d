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
	"strings"

	"github.com/google/htmlkit/core/element"
	"github.com/google/htmlkit/core/tables"
	"github.com/google/htmlkit/core/values"
	"github.com/pkg/errors"
)

// AttributeOnClick holds the confirmation prompt of an anchor.
const AttributeOnClick = "onclick"

// HrefFunc computes the target of an anchor from the undecorated value.
type HrefFunc func(value any) (string, error)

// MessageFunc computes a confirmation message for the value. An empty
// message means no confirmation is asked.
type MessageFunc func(value any) string

// HrefTemplate returns an HrefFunc replacing placeholder in template with
// the formatted value.
func HrefTemplate(template, placeholder string) HrefFunc {
	return func(value any) (string, error) {
		text, err := values.Format(value)
		if err != nil {
			return "", err
		}
		return strings.ReplaceAll(template, placeholder, text), nil
	}
}

// AnchorDecorator sets the cell to a link. The label is the decorated value,
// the href comes from the HrefFunc.
type AnchorDecorator struct {
	*ValueDecorator

	href        HrefFunc
	message     MessageFunc
	label       func(value any) (string, error)
	anchorClass string
}

func NewAnchorDecorator(property string, href HrefFunc) *AnchorDecorator {
	d := &AnchorDecorator{ValueDecorator: NewValueDecorator(property), href: href}
	d.label = d.DecorateValue
	return d
}

// SetMessage asks for confirmation with a fixed message. An empty message
// disables the confirmation.
func (d *AnchorDecorator) SetMessage(message string) {
	if message == "" {
		d.message = nil
		return
	}
	d.message = func(any) string { return message }
}

// SetMessageFunc computes the confirmation message per value.
func (d *AnchorDecorator) SetMessageFunc(message MessageFunc) {
	d.message = message
}

func (d *AnchorDecorator) Decorate(cell *tables.Cell, row *tables.Row, rowNumber int, remaining []any) error {
	value, err := d.Value(cell)
	if err != nil {
		return err
	}
	label, err := d.label(value)
	if err != nil {
		return err
	}
	if d.href == nil {
		return errors.Wrap(element.ErrConfiguration, "could not decorate anchor: no href function set")
	}
	href, err := d.href(value)
	if err != nil {
		return errors.Wrap(err, "could not compute anchor href")
	}

	anchor, err := element.NewAnchor(label, href)
	if err != nil {
		return err
	}
	if err := d.processAnchor(anchor, value); err != nil {
		return err
	}

	cell.SetValue(anchor.HTML())
	return nil
}

func (d *AnchorDecorator) processAnchor(anchor *element.Anchor, value any) error {
	if d.anchorClass != "" {
		if err := anchor.AddToClass(d.anchorClass); err != nil {
			return err
		}
	}
	if d.message == nil {
		return nil
	}
	if message := d.message(value); message != "" {
		message = strings.ReplaceAll(message, `'`, `\'`)
		return anchor.SetAttribute(AttributeOnClick, "return confirm('"+message+"');")
	}
	return nil
}
