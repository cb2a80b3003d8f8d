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

package values

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PathSeparator separates the segments of a nested property path.
const PathSeparator = "."

// Accessor projects a named, possibly nested, property out of a value.
type Accessor interface {
	Property(value any, path string) (any, error)
}

// AccessorFunc adapts a function to the Accessor interface.
type AccessorFunc func(value any, path string) (any, error)

func (f AccessorFunc) Property(value any, path string) (any, error) {
	return f(value, path)
}

// Getter is implemented by application values that expose their own
// properties without reflection.
type Getter interface {
	Property(name string) (any, bool)
}

// StructuralAccessor resolves dotted paths over Getter values, maps with
// string keys, lists indexed by number and exported struct fields. A
// missing property resolves to nil.
type StructuralAccessor struct{}

// DefaultAccessor is used by decorators that are not given an accessor.
var DefaultAccessor Accessor = StructuralAccessor{}

func (StructuralAccessor) Property(value any, path string) (any, error) {
	if path == "" {
		return value, nil
	}
	current := value
	for _, segment := range strings.Split(path, PathSeparator) {
		if current == nil {
			return nil, nil
		}
		current = lookup(current, segment)
	}
	return current, nil
}

func lookup(value any, name string) any {
	switch v := value.(type) {
	case Getter:
		result, _ := v.Property(name)
		return result
	case map[string]any:
		return v[name]
	case map[string]string:
		if s, ok := v[name]; ok {
			return s
		}
		return nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		item := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !item.IsValid() {
			return nil
		}
		return item.Interface()
	case reflect.Slice, reflect.Array:
		index, err := strconv.Atoi(name)
		if err != nil || index < 0 || index >= rv.Len() {
			return nil
		}
		return rv.Index(index).Interface()
	case reflect.Struct:
		field := rv.FieldByName(name)
		if !field.IsValid() {
			field = rv.FieldByName(exported(name))
		}
		if !field.IsValid() || !field.CanInterface() {
			return nil
		}
		return field.Interface()
	}
	return nil
}

func exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
