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

// Package listing narrows a list of table values to one page: values are
// filtered by a search query, ordered by a named order method and sliced to
// the requested page.
package listing

import (
	"cmp"
	"strings"

	"github.com/google/htmlkit/core/element"
	"github.com/google/htmlkit/core/query"
	"github.com/google/htmlkit/core/values"
)

// SearchFunc reports whether value matches the search query.
type SearchFunc func(value any, search string) bool

// CompareFunc orders two values, negative when a sorts before b.
type CompareFunc func(a, b any) int

// OrderMethod is a named way to order the values.
type OrderMethod struct {
	Name    string
	Label   string
	Compare CompareFunc
}

// Listing holds the full value list and the ways it can be searched and
// ordered.
type Listing struct {
	values []any
	search SearchFunc
	orders *element.OrderedMap[string, OrderMethod]
}

func New(values []any) *Listing {
	return &Listing{values: values, orders: element.NewOrderedMap[string, OrderMethod]()}
}

func (l *Listing) SetSearch(search SearchFunc) {
	l.search = search
}

func (l *Listing) HasSearch() bool {
	return l.search != nil
}

// AddOrderMethod registers an order method. Methods are offered in the
// order they are added.
func (l *Listing) AddOrderMethod(name, label string, compare CompareFunc) {
	l.orders.Set(name, OrderMethod{Name: name, Label: label, Compare: compare})
}

func (l *Listing) OrderMethods() []OrderMethod {
	methods := make([]OrderMethod, 0, l.orders.Len())
	l.orders.Range(func(_ string, method OrderMethod) bool {
		methods = append(methods, method)
		return true
	})
	return methods
}

func (l *Listing) HasOrderMethods() bool {
	return l.orders.Len() > 0
}

// Result is one page of a listing.
type Result struct {
	Values []any // values on the page
	Total  int   // number of values matching the search
	Pages  int   // number of pages, at least 1
	Page   int   // current page, clamped to the available pages
	Offset int   // index of the first value on the page
}

// Apply searches, orders and pages the values according to q. A page past
// the last one yields the last page. Unknown order methods keep the
// original order.
func (l *Listing) Apply(q *query.Query) Result {
	matched := l.values
	if l.search != nil && q.Search != "" {
		matched = make([]any, 0, len(l.values))
		for _, value := range l.values {
			if l.search(value, q.Search) {
				matched = append(matched, value)
			}
		}
	}

	result := Result{Total: len(matched), Pages: q.Pages(len(matched))}
	result.Page = min(max(q.Page, 1), result.Pages)
	result.Offset = (result.Page - 1) * q.RowsPerPage
	end := min(result.Offset+q.RowsPerPage, len(matched))

	method, ok := l.orders.Get(q.OrderMethod)
	if !ok || method.Compare == nil {
		result.Values = matched[result.Offset:end:end]
		return result
	}

	compare := method.Compare
	if q.OrderDirection == query.DirectionDesc {
		compare = func(a, b any) int { return method.Compare(b, a) }
	}
	top := sortedTopK(matched, compare, end)
	result.Values = top[result.Offset:end:end]
	return result
}

// Select returns all values matching the search of q in the order of q,
// without paging. Exports use it to write the whole listing.
func (l *Listing) Select(q *query.Query) []any {
	all := q.Clone()
	all.Page = 1
	all.RowsPerPage = max(len(l.values), 1)
	return l.Apply(all).Values
}

// PropertySearch matches values whose properties contain the search query,
// ignoring case.
func PropertySearch(accessor values.Accessor, properties ...string) SearchFunc {
	if accessor == nil {
		accessor = values.DefaultAccessor
	}
	return func(value any, search string) bool {
		search = strings.ToLower(search)
		for _, property := range properties {
			v, err := accessor.Property(value, property)
			if err != nil {
				continue
			}
			text, err := values.Format(v)
			if err != nil {
				continue
			}
			if strings.Contains(strings.ToLower(text), search) {
				return true
			}
		}
		return false
	}
}

// PropertyOrder compares values by a property. Numbers compare by value,
// anything else by its display text. Missing values sort first.
func PropertyOrder(accessor values.Accessor, property string) CompareFunc {
	if accessor == nil {
		accessor = values.DefaultAccessor
	}
	return func(a, b any) int {
		va, _ := accessor.Property(a, property)
		vb, _ := accessor.Property(b, property)
		return compareValues(va, vb)
	}
}

func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	ta, _ := values.Format(a)
	tb, _ := values.Format(b)
	return cmp.Compare(strings.ToLower(ta), strings.ToLower(tb))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
