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

package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/safehtml"
)

// URL parameters of a table view.
const (
	ParamPage           = "page"
	ParamRows           = "rows"
	ParamSearch         = "search"
	ParamOrderMethod    = "order"
	ParamOrderDirection = "direction"
)

const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"

	// PagePlaceholder and DirectionPlaceholder mark the variable part of
	// the templates returned by PaginationTemplate and DirectionTemplate.
	PagePlaceholder      = "%page%"
	DirectionPlaceholder = "%direction%"

	DefaultRowsPerPage = 10
)

// Query represents the state of a table view as carried in its URL: the
// current page, the page size, the search query and the order.
type Query struct {
	// Base path (e.g., "/table")
	Path string

	Page           int    // Current page, 1-based
	RowsPerPage    int    // Number of rows on a page
	Search         string // Search query, empty for none
	OrderMethod    string // Name of the order method, empty for the default order
	OrderDirection string // DirectionAsc or DirectionDesc
}

// NewQuery creates a Query from a URL. Missing or invalid parameters keep
// their defaults: page 1 and DefaultRowsPerPage rows.
func NewQuery(u *url.URL) *Query {
	return NewQueryWithRows(u, DefaultRowsPerPage)
}

// NewQueryWithRows creates a Query from a URL with rows as the default page
// size.
func NewQueryWithRows(u *url.URL, rows int) *Query {
	if rows <= 0 {
		rows = DefaultRowsPerPage
	}
	state := &Query{
		Path:        u.Path,
		Page:        1,
		RowsPerPage: rows,
	}

	q := u.Query()

	if page, err := strconv.Atoi(q.Get(ParamPage)); err == nil && page > 0 {
		state.Page = page
	}
	if rows, err := strconv.Atoi(q.Get(ParamRows)); err == nil && rows > 0 {
		state.RowsPerPage = rows
	}
	state.Search = strings.TrimSpace(q.Get(ParamSearch))
	state.OrderMethod = q.Get(ParamOrderMethod)
	state.OrderDirection = normalizeDirection(q.Get(ParamOrderDirection))

	return state
}

func normalizeDirection(direction string) string {
	switch strings.ToLower(direction) {
	case DirectionAsc:
		return DirectionAsc
	case DirectionDesc:
		return DirectionDesc
	}
	return ""
}

// Clone creates a copy of the Query
func (s *Query) Clone() *Query {
	clone := *s
	return &clone
}

func (s *Query) values() url.Values {
	q := url.Values{}
	q.Set(ParamPage, strconv.Itoa(s.Page))
	q.Set(ParamRows, strconv.Itoa(s.RowsPerPage))
	if s.OrderMethod != "" || s.OrderDirection != "" {
		q.Set(ParamOrderMethod, s.OrderMethod)
		q.Set(ParamOrderDirection, s.OrderDirection)
	}
	if s.Search != "" {
		q.Set(ParamSearch, s.Search)
	}
	return q
}

func (s *Query) encode(q url.Values) string {
	u := &url.URL{Path: s.Path, RawQuery: q.Encode()}
	return u.String()
}

// ToURL converts the Query back to a URL string. Page and rows are always
// included, the order only when set and the search only when not empty.
func (s *Query) ToURL() string {
	return s.encode(s.values())
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	return safehtml.URLSanitized(s.ToURL())
}

// PaginationTemplate returns the URL of the view with the page replaced by
// %page%, ready for a pagination href.
func (s *Query) PaginationTemplate() string {
	q := s.values()
	q.Set(ParamPage, PagePlaceholder)
	return unescapePlaceholder(s.encode(q), PagePlaceholder)
}

// DirectionTemplate returns the URL of the view with the order direction
// replaced by %direction%.
func (s *Query) DirectionTemplate() string {
	q := s.values()
	q.Set(ParamOrderMethod, s.OrderMethod)
	q.Set(ParamOrderDirection, DirectionPlaceholder)
	return unescapePlaceholder(s.encode(q), DirectionPlaceholder)
}

func unescapePlaceholder(u, placeholder string) string {
	return strings.ReplaceAll(u, url.QueryEscape(placeholder), placeholder)
}

// WithPage returns a URL for another page of the view
func (s *Query) WithPage(page int) safehtml.URL {
	newState := s.Clone()
	newState.Page = page
	return newState.ToSafeURL()
}

// WithRowsPerPage returns a URL with another page size. The page is reset
// to the first one.
func (s *Query) WithRowsPerPage(rows int) safehtml.URL {
	newState := s.Clone()
	newState.RowsPerPage = rows
	newState.Page = 1
	return newState.ToSafeURL()
}

// WithSearch returns a URL searching for search, starting at the first page.
func (s *Query) WithSearch(search string) safehtml.URL {
	newState := s.Clone()
	newState.Search = search
	newState.Page = 1
	return newState.ToSafeURL()
}

// WithOrder returns a URL ordering by method. Ordering by the current
// method again flips the direction.
func (s *Query) WithOrder(method string) safehtml.URL {
	newState := s.Clone()
	if s.OrderMethod == method {
		newState.OrderDirection = OppositeDirection(s.OrderDirection)
	} else {
		newState.OrderMethod = method
		newState.OrderDirection = DirectionAsc
	}
	return newState.ToSafeURL()
}

// OppositeDirection returns the other order direction. An unset direction
// counts as ascending.
func OppositeDirection(direction string) string {
	if direction == DirectionAsc || direction == "" {
		return DirectionDesc
	}
	return DirectionAsc
}

// IsChanged reports whether the view differs from previous. A changed page
// size or search query resets the page to the first one.
func (s *Query) IsChanged(previous *Query) bool {
	if previous == nil {
		return false
	}
	changed := s.Page != previous.Page ||
		s.OrderMethod != previous.OrderMethod ||
		s.OrderDirection != previous.OrderDirection
	if s.RowsPerPage != previous.RowsPerPage || s.Search != previous.Search {
		changed = true
		s.Page = 1
	}
	return changed
}

// Offset returns the index of the first value on the current page.
func (s *Query) Offset() int {
	return (max(s.Page, 1) - 1) * s.RowsPerPage
}

// Pages returns the number of pages needed for total values, at least 1.
func (s *Query) Pages(total int) int {
	if s.RowsPerPage <= 0 || total <= 0 {
		return 1
	}
	return (total + s.RowsPerPage - 1) / s.RowsPerPage
}
