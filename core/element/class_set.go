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

import "strings"

// ClassSet is an insertion ordered set of style class names.
type ClassSet struct {
	names *OrderedMap[string, struct{}]
}

func NewClassSet() *ClassSet {
	return &ClassSet{names: NewOrderedMap[string, struct{}]()}
}

// Add adds every whitespace separated name of class. Names already in the set
// keep their original position.
func (s *ClassSet) Add(class string) {
	for _, name := range strings.Fields(class) {
		s.names.Set(name, struct{}{})
	}
}

func (s *ClassSet) Remove(name string) {
	s.names.Delete(name)
}

func (s *ClassSet) Has(name string) bool {
	return s.names.Has(name)
}

func (s *ClassSet) Clear() {
	s.names.Clear()
}

func (s *ClassSet) Len() int {
	return s.names.Len()
}

// String joins the names with a single space.
func (s *ClassSet) String() string {
	return strings.Join(s.names.Keys(), " ")
}
