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

package element

import "github.com/pkg/errors"

const AttributeHref = "href"

// Anchor is a hyperlink with a label.
type Anchor struct {
	*Element
	label string
}

// NewAnchor creates an anchor. An empty href defaults to "#".
func NewAnchor(label, href string) (*Anchor, error) {
	a := &Anchor{Element: New("a", true)}
	if err := a.SetLabel(label); err != nil {
		return nil, err
	}
	if href == "" {
		href = "#"
	}
	a.SetHref(href)
	return a, nil
}

func (a *Anchor) SetLabel(label string) error {
	if label == "" {
		return errors.Wrap(ErrConfiguration, "could not set label: provided label is empty")
	}
	a.label = label
	return nil
}

func (a *Anchor) Label() string {
	return a.label
}

func (a *Anchor) SetHref(href string) {
	a.attributes.Set(AttributeHref, href)
}

func (a *Anchor) Href() string {
	href, _ := a.Attribute(AttributeHref)
	return href
}

// HTML renders the anchor. The label is markup and is not escaped.
func (a *Anchor) HTML() string {
	return a.Render(Full, a.label)
}
