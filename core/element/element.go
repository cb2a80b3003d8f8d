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

// Package element provides the HTML element model shared by tables,
// decorators and pagination: a tag with an id, an ordered set of style
// classes and ordered attributes, rendered as open tag, content and close tag.
package element

import (
	"strings"

	"github.com/google/safehtml"
	"github.com/pkg/errors"
)

const (
	AttributeID    = "id"
	AttributeClass = "class"
)

// Part selects which part of an element is rendered.
type Part int

const (
	Full Part = iota
	Open
	Content
	Close
)

// Node is anything that renders itself to markup.
type Node interface {
	HTML() string
}

// Element holds the tag and attribute state of an HTML element. Types
// embedding it provide the content and call Render.
type Element struct {
	tag         string
	hasCloseTag bool
	id          string
	class       *ClassSet
	attributes  *OrderedMap[string, string]
}

// New creates an element for tag. Elements without a close tag render as
// <tag ... />.
func New(tag string, hasCloseTag bool) *Element {
	return &Element{
		tag:         tag,
		hasCloseTag: hasCloseTag,
		class:       NewClassSet(),
		attributes:  NewOrderedMap[string, string](),
	}
}

func (e *Element) Tag() string {
	return e.tag
}

// SetTag changes the tag, used by header cells to become th.
func (e *Element) SetTag(tag string, hasCloseTag bool) {
	e.tag = tag
	e.hasCloseTag = hasCloseTag
}

func (e *Element) SetID(id string) {
	e.id = id
}

func (e *Element) ID() string {
	return e.id
}

// SetClass replaces all style classes with class. An empty class clears them.
func (e *Element) SetClass(class string) {
	e.class.Clear()
	e.class.Add(class)
}

// AddToClass adds one or more space separated style classes.
func (e *Element) AddToClass(class string) error {
	if strings.TrimSpace(class) == "" {
		return errors.Wrap(ErrConfiguration, "could not add class: provided class is empty")
	}
	e.class.Add(class)
	return nil
}

func (e *Element) RemoveFromClass(class string) error {
	if class == "" {
		return errors.Wrap(ErrConfiguration, "could not remove class: provided class is empty")
	}
	e.class.Remove(class)
	return nil
}

func (e *Element) Class() string {
	return e.class.String()
}

func (e *Element) HasClass(class string) bool {
	return e.class.Has(class)
}

// SetAttribute sets an attribute. The id and class attributes are routed to
// SetID and SetClass.
func (e *Element) SetAttribute(name, value string) error {
	if name == "" {
		return errors.Wrap(ErrConfiguration, "could not set attribute: provided name is empty")
	}
	switch name {
	case AttributeID:
		e.SetID(value)
	case AttributeClass:
		e.SetClass(value)
	default:
		e.attributes.Set(name, value)
	}
	return nil
}

func (e *Element) RemoveAttribute(name string) {
	switch name {
	case AttributeID:
		e.id = ""
	case AttributeClass:
		e.class.Clear()
	default:
		e.attributes.Delete(name)
	}
}

// Attribute returns the value of an attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	switch name {
	case AttributeID:
		return e.id, e.id != ""
	case AttributeClass:
		return e.Class(), e.class.Len() > 0
	}
	return e.attributes.Get(name)
}

// Attributes returns the names of the plain attributes in the order they were set.
func (e *Element) Attributes() []string {
	return e.attributes.Keys()
}

// ResetAttributes clears the classes and plain attributes.
func (e *Element) ResetAttributes() {
	e.class.Clear()
	e.attributes.Clear()
}

// Render renders the requested part of the element around content.
func (e *Element) Render(part Part, content string) string {
	var sb strings.Builder
	if part == Full || part == Open {
		sb.WriteString(e.OpenTag())
	}
	if part == Full || part == Content {
		sb.WriteString(content)
	}
	if part == Full || part == Close {
		sb.WriteString(e.CloseTag())
	}
	return sb.String()
}

func (e *Element) OpenTag() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(e.tag)
	if e.id != "" {
		writeAttribute(&sb, AttributeID, e.id)
	}
	if e.class.Len() > 0 {
		writeAttribute(&sb, AttributeClass, e.class.String())
	}
	e.attributes.Range(func(name, value string) bool {
		writeAttribute(&sb, name, value)
		return true
	})
	if !e.hasCloseTag {
		sb.WriteString(" /")
	}
	sb.WriteString(">")
	return sb.String()
}

func (e *Element) CloseTag() string {
	if !e.hasCloseTag {
		return ""
	}
	return "</" + e.tag + ">"
}

// HTML renders the element without content.
func (e *Element) HTML() string {
	return e.Render(Full, "")
}

func writeAttribute(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(Escape(value))
	sb.WriteString(`"`)
}

// Escape escapes text for use in element content or attribute values.
func Escape(text string) string {
	return safehtml.HTMLEscaped(text).String()
}
