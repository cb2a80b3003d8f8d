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

package views

import (
	"strconv"

	"github.com/google/htmlkit/core/listing"
	"github.com/google/htmlkit/core/pagination"
	"github.com/google/htmlkit/core/query"
	"github.com/google/htmlkit/core/tables"
	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
)

// PageViewModel contains a rendered table page formatted for template consumption
type PageViewModel struct {
	Title      string
	Table      safehtml.HTML // Table markup built by the decorators
	Pagination safehtml.HTML // Page anchors, empty for a single page
	CurrentURL safehtml.URL  // Current URL
	Path       string        // Base path the search form posts to

	// Search form
	HasSearch bool
	Search    string

	// Order links, one per order method
	Orders []OrderLink

	// Page size links
	RowsOptions []RowsOption
	RowsPerPage int

	// Paging info
	TotalRows int // Number of rows matching the search
	FirstRow  int // 1-based number of the first displayed row, 0 when empty
	LastRow   int // 1-based number of the last displayed row
	Page      int
	Pages     int
}

// OrderLink is a link ordering the table by one order method
type OrderLink struct {
	Label     string
	URL       safehtml.URL
	Active    bool
	Direction string // Direction of the active order, empty otherwise
}

// RowsOption is a link showing another number of rows per page
type RowsOption struct {
	Rows     int
	URL      safehtml.URL
	Selected bool
}

// DefaultRowsOptions are the page sizes offered by the page.
var DefaultRowsOptions = []int{10, 25, 50, 100}

// BuildPageViewModel renders table and pagination into a view model. The
// table is populated by this call; decoration errors are returned.
func BuildPageViewModel(title string, table *tables.ArrayTable, p *pagination.Pagination, q *query.Query, l *listing.Listing, result listing.Result) (PageViewModel, error) {
	tableHTML, err := table.HTML()
	if err != nil {
		return PageViewModel{}, err
	}

	vm := PageViewModel{
		Title: title,
		// The markup is built by elements that escape attribute values;
		// decorator output is markup by contract.
		Table:       uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(tableHTML),
		CurrentURL:  q.ToSafeURL(),
		Path:        q.Path,
		HasSearch:   l.HasSearch(),
		Search:      q.Search,
		RowsPerPage: q.RowsPerPage,
		TotalRows:   result.Total,
		Page:        result.Page,
		Pages:       result.Pages,
	}

	if result.Pages > 1 {
		paginationHTML, err := p.HTML()
		if err != nil {
			return PageViewModel{}, err
		}
		vm.Pagination = uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(paginationHTML)
	}

	if len(result.Values) > 0 {
		vm.FirstRow = result.Offset + 1
		vm.LastRow = result.Offset + len(result.Values)
	}

	for _, method := range l.OrderMethods() {
		link := OrderLink{
			Label: method.Label,
			URL:   q.WithOrder(method.Name),
		}
		if method.Name == q.OrderMethod {
			link.Active = true
			link.Direction = q.OrderDirection
			if link.Direction == "" {
				link.Direction = query.DirectionAsc
			}
		}
		vm.Orders = append(vm.Orders, link)
	}

	for _, rows := range DefaultRowsOptions {
		vm.RowsOptions = append(vm.RowsOptions, RowsOption{
			Rows:     rows,
			URL:      q.WithRowsPerPage(rows),
			Selected: rows == q.RowsPerPage,
		})
	}

	return vm, nil
}

// Summary returns the "first-last of total" text of the page.
func (vm PageViewModel) Summary() string {
	if vm.TotalRows == 0 {
		return "No rows"
	}
	return strconv.Itoa(vm.FirstRow) + "-" + strconv.Itoa(vm.LastRow) + " of " + strconv.Itoa(vm.TotalRows)
}
