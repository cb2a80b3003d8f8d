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

// Package pagination renders the page navigation of paginated tables. Long
// page ranges are collapsed into ellipsis entries around the current page.
package pagination

import (
	"strconv"
	"strings"

	"github.com/google/htmlkit/core/element"
	"github.com/pkg/errors"
)

const (
	// StylePagination is the style class of the pagination element.
	StylePagination = "pagination"

	// AttributeOnClick holds the onclick template of the page anchors.
	AttributeOnClick = "onclick"

	// PagePlaceholder is replaced by the page number in the href and onclick
	// templates.
	PagePlaceholder = "%page%"

	// maxUncollapsed is the largest page count rendered without gaps.
	maxUncollapsed = 10
)

// Style holds the labels and style classes of the rendered anchors.
type Style struct {
	Ellipsis      string `yaml:"ellipsis"`
	PreviousLabel string `yaml:"previous_label"`
	PreviousClass string `yaml:"previous_class"`
	PreviousShow  bool   `yaml:"previous_show"`
	NextLabel     string `yaml:"next_label"`
	NextClass     string `yaml:"next_class"`
	NextShow      bool   `yaml:"next_show"`
	ActiveClass   string `yaml:"active_class"`
	DisabledClass string `yaml:"disabled_class"`
}

func DefaultStyle() Style {
	return Style{
		Ellipsis:      "...",
		PreviousLabel: "&laquo;",
		PreviousClass: "prev",
		PreviousShow:  true,
		NextLabel:     "&raquo;",
		NextClass:     "next",
		NextShow:      true,
		ActiveClass:   "active",
		DisabledClass: "disabled",
	}
}

// Gap is a run of pages collapsed into one ellipsis entry. Pages strictly
// between Start and Stop are hidden, Start itself is hidden too and the
// ellipsis is rendered right before Stop.
type Gap struct {
	Start int
	Stop  int
}

// Pagination is a div element holding the page anchors.
type Pagination struct {
	*element.Element

	pages   int
	page    int
	href    string
	onClick string
	style   Style
}

// New creates a pagination for pages pages with page as the current one.
// pages is at least 1, page is taken as given.
func New(pages, page int) *Pagination {
	p := &Pagination{
		Element: element.New("div", true),
		pages:   max(pages, 1),
		page:    page,
		style:   DefaultStyle(),
	}
	p.SetClass(StylePagination)
	return p
}

func (p *Pagination) Pages() int {
	return p.pages
}

func (p *Pagination) Page() int {
	return p.page
}

// SetHref sets the URL template of the page anchors. %page% is replaced by
// the page number.
func (p *Pagination) SetHref(href string) {
	p.href = href
}

func (p *Pagination) Href() string {
	return p.href
}

// SetOnClick sets the onclick template of the page anchors.
func (p *Pagination) SetOnClick(onClick string) {
	p.onClick = onClick
}

func (p *Pagination) OnClick() string {
	return p.onClick
}

func (p *Pagination) SetStyle(style Style) {
	p.style = style
}

func (p *Pagination) Style() Style {
	return p.style
}

// PreviousLink returns the URL of the previous page, or "" on the first page.
func (p *Pagination) PreviousLink() (string, error) {
	if p.href == "" {
		return "", errors.Wrap(element.ErrConfiguration, "could not get the previous link: no href set, use SetHref first")
	}
	if p.page <= 1 {
		return "", nil
	}
	return p.pageURL(p.href, p.page-1), nil
}

// NextLink returns the URL of the next page, or "" on the last page.
func (p *Pagination) NextLink() (string, error) {
	if p.href == "" {
		return "", errors.Wrap(element.ErrConfiguration, "could not get the next link: no href set, use SetHref first")
	}
	if p.page == p.pages {
		return "", nil
	}
	return p.pageURL(p.href, p.page+1), nil
}

// Gaps returns the collapsed page ranges in ascending order: none for 10
// pages or less, otherwise one gap at the far side of the current page or,
// when the current page is in the middle, one on each side.
func (p *Pagination) Gaps() []Gap {
	switch {
	case p.pages <= maxUncollapsed:
		return nil
	case p.page < 6:
		return []Gap{{Start: 8, Stop: p.pages - 1}}
	case p.page > p.pages-6:
		return []Gap{{Start: 3, Stop: p.pages - 7}}
	default:
		return []Gap{
			{Start: 3, Stop: p.page - 2},
			{Start: p.page + 3, Stop: p.pages - 1},
		}
	}
}

// Anchors returns the anchors to render: the previous control, the page
// numbers with ellipsis entries for the gaps and the next control. The
// controls are omitted when there is no current page.
func (p *Pagination) Anchors() ([]*element.Anchor, error) {
	var anchors []*element.Anchor
	add := func(label string, page int, class string) error {
		anchor, err := p.anchor(label, page, class)
		if err != nil {
			return err
		}
		anchors = append(anchors, anchor)
		return nil
	}

	if p.page != 0 && p.style.PreviousShow {
		class, page := p.style.PreviousClass, p.page-1
		if p.page == 1 {
			class, page = joinClass(class, p.style.DisabledClass), p.page
		}
		if err := add(p.style.PreviousLabel, page, class); err != nil {
			return nil, err
		}
	}

	gaps := p.Gaps()
	var current *Gap
	for i := 1; i <= p.pages; i++ {
		if i == p.page {
			if err := add(strconv.Itoa(i), i, p.style.ActiveClass); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case current != nil && i == current.Stop:
			current = nil
			ellipsis, err := element.NewAnchor(p.style.Ellipsis, "")
			if err != nil {
				return nil, err
			}
			ellipsis.SetClass(p.style.DisabledClass)
			anchors = append(anchors, ellipsis)
		case current != nil && current.Start < i && i < current.Stop:
			continue
		case current == nil && len(gaps) > 0 && i == gaps[0].Start:
			current = &gaps[0]
			gaps = gaps[1:]
			continue
		}

		if err := add(strconv.Itoa(i), i, ""); err != nil {
			return nil, err
		}
	}

	if p.page != 0 && p.style.NextShow {
		class, page := p.style.NextClass, p.page+1
		if p.page == p.pages {
			class, page = joinClass(class, p.style.DisabledClass), p.page
		}
		if err := add(p.style.NextLabel, page, class); err != nil {
			return nil, err
		}
	}

	return anchors, nil
}

// HTML renders the pagination as a list of anchors inside the div. The item
// of the current page carries the active class.
func (p *Pagination) HTML() (string, error) {
	anchors, err := p.Anchors()
	if err != nil {
		return "", err
	}

	current := strconv.Itoa(p.page)
	var sb strings.Builder
	sb.WriteString("<ul>\n")
	for _, anchor := range anchors {
		if anchor.Label() == current {
			sb.WriteString(`<li class="` + element.Escape(p.style.ActiveClass) + `">`)
		} else {
			sb.WriteString("<li>")
		}
		sb.WriteString(anchor.HTML())
		sb.WriteString("</li>")
	}
	sb.WriteString("</ul>\n")

	return p.Render(element.Full, sb.String()), nil
}

func (p *Pagination) anchor(label string, page int, class string) (*element.Anchor, error) {
	anchor, err := element.NewAnchor(label, "")
	if err != nil {
		return nil, err
	}
	if p.href != "" {
		anchor.SetHref(p.pageURL(p.href, page))
	}
	if p.onClick != "" {
		if err := anchor.SetAttribute(AttributeOnClick, p.pageURL(p.onClick, page)); err != nil {
			return nil, err
		}
	}
	if class != "" {
		anchor.SetClass(class)
	}
	return anchor, nil
}

func (p *Pagination) pageURL(template string, page int) string {
	return strings.ReplaceAll(template, PagePlaceholder, strconv.Itoa(page))
}

func joinClass(class, extra string) string {
	return strings.TrimSpace(class + " " + extra)
}
