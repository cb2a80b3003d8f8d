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

package pagination

import (
	"strings"
	"testing"

	"github.com/google/htmlkit/core/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(t *testing.T, p *Pagination) []string {
	t.Helper()
	anchors, err := p.Anchors()
	require.NoError(t, err)
	var out []string
	for _, a := range anchors {
		out = append(out, a.Label())
	}
	return out
}

func TestGaps(t *testing.T) {
	tests := []struct {
		pages, page int
		want        []Gap
	}{
		{pages: 5, page: 3, want: nil},
		{pages: 10, page: 1, want: nil},
		{pages: 20, page: 1, want: []Gap{{Start: 8, Stop: 19}}},
		{pages: 20, page: 5, want: []Gap{{Start: 8, Stop: 19}}},
		{pages: 20, page: 20, want: []Gap{{Start: 3, Stop: 13}}},
		{pages: 20, page: 15, want: []Gap{{Start: 3, Stop: 13}}},
		{pages: 20, page: 10, want: []Gap{{Start: 3, Stop: 8}, {Start: 13, Stop: 19}}},
	}
	for _, tt := range tests {
		p := New(tt.pages, tt.page)
		assert.Equal(t, tt.want, p.Gaps(), "pages=%d page=%d", tt.pages, tt.page)
	}
}

func TestAnchorsFirstPage(t *testing.T) {
	p := New(20, 1)
	want := []string{"&laquo;", "1", "2", "3", "4", "5", "6", "7", "...", "19", "20", "&raquo;"}
	assert.Equal(t, want, labels(t, p))
}

func TestAnchorsLastPage(t *testing.T) {
	p := New(20, 20)
	want := []string{"&laquo;", "1", "2", "...", "13", "14", "15", "16", "17", "18", "19", "20", "&raquo;"}
	assert.Equal(t, want, labels(t, p))
}

func TestAnchorsMiddlePage(t *testing.T) {
	p := New(20, 10)
	got := labels(t, p)
	want := []string{"&laquo;", "1", "2", "...", "8", "9", "10", "11", "12", "...", "19", "20", "&raquo;"}
	assert.Equal(t, want, got)
}

func TestAnchorsFewPages(t *testing.T) {
	p := New(5, 3)
	assert.Empty(t, p.Gaps())
	assert.Equal(t, []string{"&laquo;", "1", "2", "3", "4", "5", "&raquo;"}, labels(t, p))

	anchors, err := p.Anchors()
	require.NoError(t, err)
	assert.True(t, anchors[3].HasClass("active"))
	assert.False(t, anchors[2].HasClass("active"))
}

func TestAnchorsWithoutCurrentPage(t *testing.T) {
	p := New(3, 0)
	assert.Equal(t, []string{"1", "2", "3"}, labels(t, p))
}

func TestAnchorsControls(t *testing.T) {
	p := New(3, 1)
	p.SetHref("/list?page=%page%")
	p.SetOnClick("load(%page%)")

	anchors, err := p.Anchors()
	require.NoError(t, err)
	prev, next := anchors[0], anchors[len(anchors)-1]
	assert.Equal(t, "prev disabled", prev.Class())
	assert.Equal(t, "/list?page=1", prev.Href())
	assert.Equal(t, "next", next.Class())
	assert.Equal(t, "/list?page=2", next.Href())
	onClick, ok := next.Attribute(AttributeOnClick)
	assert.True(t, ok)
	assert.Equal(t, "load(2)", onClick)

	p = New(3, 3)
	p.SetHref("/list?page=%page%")
	anchors, err = p.Anchors()
	require.NoError(t, err)
	next = anchors[len(anchors)-1]
	assert.Equal(t, "next disabled", next.Class())
	assert.Equal(t, "/list?page=3", next.Href())
}

func TestAnchorsHiddenControls(t *testing.T) {
	p := New(2, 1)
	style := DefaultStyle()
	style.PreviousShow = false
	style.NextShow = false
	p.SetStyle(style)
	assert.Equal(t, []string{"1", "2"}, labels(t, p))
}

func TestEllipsisIsDisabled(t *testing.T) {
	anchors, err := New(20, 1).Anchors()
	require.NoError(t, err)
	var ellipses int
	for _, a := range anchors {
		if a.Label() == "..." {
			ellipses++
			assert.Equal(t, "disabled", a.Class())
			assert.Equal(t, "#", a.Href())
		}
	}
	assert.Equal(t, 1, ellipses)
}

func TestLinks(t *testing.T) {
	p := New(20, 20)
	_, err := p.NextLink()
	assert.ErrorIs(t, err, element.ErrConfiguration)
	_, err = p.PreviousLink()
	assert.ErrorIs(t, err, element.ErrConfiguration)

	p.SetHref("?page=%page%")
	next, err := p.NextLink()
	require.NoError(t, err)
	assert.Empty(t, next)
	previous, err := p.PreviousLink()
	require.NoError(t, err)
	assert.Equal(t, "?page=19", previous)

	p = New(20, 1)
	p.SetHref("?page=%page%")
	previous, err = p.PreviousLink()
	require.NoError(t, err)
	assert.Empty(t, previous)
	next, err = p.NextLink()
	require.NoError(t, err)
	assert.Equal(t, "?page=2", next)
}

func TestPagesAreClamped(t *testing.T) {
	p := New(0, 1)
	assert.Equal(t, 1, p.Pages())
	assert.Equal(t, 1, p.Page())
}

func TestHTML(t *testing.T) {
	p := New(3, 2)
	p.SetHref("?page=%page%")

	html, err := p.HTML()
	require.NoError(t, err)
	want := `<div class="pagination"><ul>` + "\n" +
		`<li><a class="prev" href="?page=1">&laquo;</a></li>` +
		`<li><a href="?page=1">1</a></li>` +
		`<li class="active"><a class="active" href="?page=2">2</a></li>` +
		`<li><a href="?page=3">3</a></li>` +
		`<li><a class="next" href="?page=3">&raquo;</a></li>` +
		"</ul>\n</div>"
	assert.Equal(t, want, html)
}

func TestHTMLMiddlePageHasTwoEllipses(t *testing.T) {
	html, err := New(20, 10).HTML()
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(html, ">...</a>"))
}
