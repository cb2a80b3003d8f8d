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
	"testing"
)

func parse(t *testing.T, raw string) *Query {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("could not parse %q: %v", raw, err)
	}
	return NewQuery(u)
}

func TestNewQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q := parse(t, "/table")
		if q.Page != 1 || q.RowsPerPage != DefaultRowsPerPage {
			t.Errorf("Expected page 1 with %d rows, got page %d with %d rows", DefaultRowsPerPage, q.Page, q.RowsPerPage)
		}
		if q.Search != "" || q.OrderMethod != "" || q.OrderDirection != "" {
			t.Errorf("Expected no search and order, got %+v", q)
		}
	})

	t.Run("All parameters", func(t *testing.T) {
		q := parse(t, "/table?page=3&rows=25&search=red+lamp&order=name&direction=DESC")
		expected := Query{Path: "/table", Page: 3, RowsPerPage: 25, Search: "red lamp", OrderMethod: "name", OrderDirection: DirectionDesc}
		if *q != expected {
			t.Errorf("Expected %+v, got %+v", expected, *q)
		}
	})

	t.Run("Invalid values", func(t *testing.T) {
		q := parse(t, "/table?page=-2&rows=abc&direction=sideways")
		if q.Page != 1 || q.RowsPerPage != DefaultRowsPerPage || q.OrderDirection != "" {
			t.Errorf("Expected defaults for invalid values, got %+v", q)
		}
	})
}

func TestToURLRoundTrip(t *testing.T) {
	q := parse(t, "/table?page=2&rows=5&search=a%26b&order=price&direction=asc")
	back := parse(t, q.ToURL())
	if *back != *q {
		t.Errorf("Expected %+v after round trip, got %+v", *q, *back)
	}

	plain := parse(t, "/table")
	if got := plain.ToURL(); got != "/table?page=1&rows=10" {
		t.Errorf("Expected only page and rows, got %s", got)
	}
}

func TestTemplates(t *testing.T) {
	q := parse(t, "/table?page=4&rows=10&order=name&direction=asc")

	if got, want := q.PaginationTemplate(), "/table?direction=asc&order=name&page=%page%&rows=10"; got != want {
		t.Errorf("Expected pagination template %s, got %s", want, got)
	}
	if got, want := q.DirectionTemplate(), "/table?direction=%direction%&order=name&page=4&rows=10"; got != want {
		t.Errorf("Expected direction template %s, got %s", want, got)
	}
}

func TestWithURLs(t *testing.T) {
	q := parse(t, "/table?page=4&rows=10&order=name&direction=asc")

	if got := parse(t, q.WithPage(7).String()); got.Page != 7 {
		t.Errorf("Expected page 7, got %d", got.Page)
	}
	if got := parse(t, q.WithRowsPerPage(50).String()); got.Page != 1 || got.RowsPerPage != 50 {
		t.Errorf("Expected page 1 with 50 rows, got %+v", got)
	}
	if got := parse(t, q.WithSearch("chair").String()); got.Page != 1 || got.Search != "chair" {
		t.Errorf("Expected page 1 searching chair, got %+v", got)
	}
	if got := parse(t, q.WithOrder("name").String()); got.OrderDirection != DirectionDesc {
		t.Errorf("Expected flipped direction, got %s", got.OrderDirection)
	}
	if got := parse(t, q.WithOrder("price").String()); got.OrderMethod != "price" || got.OrderDirection != DirectionAsc {
		t.Errorf("Expected ascending price order, got %+v", got)
	}
	if q.Page != 4 {
		t.Errorf("Expected the original query to be unchanged, got page %d", q.Page)
	}
}

func TestIsChanged(t *testing.T) {
	previous := parse(t, "/table?page=3&rows=10")

	same := parse(t, "/table?page=3&rows=10")
	if same.IsChanged(previous) {
		t.Errorf("Expected no change")
	}

	paged := parse(t, "/table?page=4&rows=10")
	if !paged.IsChanged(previous) || paged.Page != 4 {
		t.Errorf("Expected a page change to keep page 4, got %d", paged.Page)
	}

	resized := parse(t, "/table?page=3&rows=20")
	if !resized.IsChanged(previous) || resized.Page != 1 {
		t.Errorf("Expected a page size change to reset the page, got %d", resized.Page)
	}

	searched := parse(t, "/table?page=3&rows=10&search=x")
	if !searched.IsChanged(previous) || searched.Page != 1 {
		t.Errorf("Expected a search change to reset the page, got %d", searched.Page)
	}

	if same.IsChanged(nil) {
		t.Errorf("Expected no change without a previous state")
	}
}

func TestPaging(t *testing.T) {
	q := parse(t, "/table?page=3&rows=10")
	if q.Offset() != 20 {
		t.Errorf("Expected offset 20, got %d", q.Offset())
	}
	tests := []struct{ total, pages int }{{0, 1}, {1, 1}, {10, 1}, {11, 2}, {95, 10}}
	for _, tt := range tests {
		if got := q.Pages(tt.total); got != tt.pages {
			t.Errorf("Pages(%d): expected %d, got %d", tt.total, tt.pages, got)
		}
	}
}
