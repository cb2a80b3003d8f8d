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

// Package values turns arbitrary application values into cell text and
// projects named properties out of them.
package values

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ListSeparator joins the formatted elements of a list.
const ListSeparator = ", "

// UnsupportedValueError is returned when a value has no string form.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("could not decorate value: %T %v is unsupported for display", e.Value, e.Value)
}

// Format returns the display string of value: nil is empty, scalars and
// fmt.Stringer values use their string form, lists are formatted element by
// element and joined with ", ". Anything else is an UnsupportedValueError.
func Format(value any) (string, error) {
	if isNil(value) {
		return "", nil
	}

	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case json.RawMessage:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			part, err := Format(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = part
		}
		return strings.Join(parts, ListSeparator), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return "", nil
		}
	}
	return "", &UnsupportedValueError{Value: value}
}

// IsList reports whether value is a slice or array.
func IsList(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		switch value.(type) {
		case []byte, json.RawMessage:
			return false
		}
		return true
	}
	return false
}

// Items returns the elements of a list value, or nil when value is not a list.
func Items(value any) []any {
	if !IsList(value) {
		return nil
	}
	if items, ok := value.([]any); ok {
		return items
	}
	rv := reflect.ValueOf(value)
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// IsStructured reports whether value is a record: a map, a struct or a
// pointer to one.
func IsStructured(value any) bool {
	if value == nil {
		return false
	}
	if _, ok := value.(Getter); ok {
		return true
	}
	rv := reflect.Indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		return true
	}
	return false
}

// TypeName returns a short type marker for value, used as a fallback title.
func TypeName(value any) string {
	t := reflect.TypeOf(value)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// isNil reports whether value is nil or a typed nil pointer, map, slice or
// interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
