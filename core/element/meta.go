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

const (
	AttributeName     = "name"
	AttributeProperty = "property"
	AttributeContent  = "content"
)

// Meta is a meta tag identified either by name or by property. It carries
// no id or style classes.
type Meta struct {
	*Element
}

func NewMeta() *Meta {
	return &Meta{Element: New("meta", false)}
}

// SetName identifies the tag by name and clears the property.
func (m *Meta) SetName(name string) {
	m.attributes.Set(AttributeName, name)
	m.attributes.Delete(AttributeProperty)
}

func (m *Meta) Name() string {
	name, _ := m.attributes.Get(AttributeName)
	return name
}

// SetProperty identifies the tag by property and clears the name.
func (m *Meta) SetProperty(property string) {
	m.attributes.Set(AttributeProperty, property)
	m.attributes.Delete(AttributeName)
}

func (m *Meta) Property() string {
	property, _ := m.attributes.Get(AttributeProperty)
	return property
}

func (m *Meta) SetContent(content string) {
	m.attributes.Set(AttributeContent, content)
}

func (m *Meta) Content() string {
	content, _ := m.attributes.Get(AttributeContent)
	return content
}

// SetAttribute ignores id and class. name and property replace each other
// as with SetName and SetProperty.
func (m *Meta) SetAttribute(name, value string) error {
	switch name {
	case AttributeID, AttributeClass:
		return nil
	case AttributeName:
		m.SetName(value)
		return nil
	case AttributeProperty:
		m.SetProperty(value)
		return nil
	}
	return m.Element.SetAttribute(name, value)
}

func (m *Meta) SetID(string) {}

func (m *Meta) SetClass(string) {}

func (m *Meta) AddToClass(string) error { return nil }

func (m *Meta) RemoveFromClass(string) error { return nil }
