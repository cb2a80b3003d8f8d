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

// Package htmlparser post-processes rendered markup: relative links and
// image sources are made absolute so the markup can be used outside the
// site, e.g. in mails or feeds.
package htmlparser

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser holds a parsed HTML document.
type Parser struct {
	doc       *html.Node
	stripBody bool
}

// Parse parses markup. Fragments are wrapped in a html and body element by
// the parser; by default HTML strips the wrapper again.
func Parse(markup string) (*Parser, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse html")
	}
	return &Parser{doc: doc, stripBody: true}, nil
}

// SetStripBody sets whether HTML renders only the contents of the body.
func (p *Parser) SetStripBody(stripBody bool) {
	p.stripBody = stripBody
}

// HTML renders the document.
func (p *Parser) HTML() (string, error) {
	var sb strings.Builder
	if !p.stripBody {
		if err := html.Render(&sb, p.doc); err != nil {
			return "", errors.Wrap(err, "could not render html")
		}
		return sb.String(), nil
	}

	body := find(p.doc, atom.Body)
	if body == nil {
		return "", nil
	}
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			return "", errors.Wrap(err, "could not render html")
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// MakeAnchorsAbsolute prefixes baseURL to every relative anchor href.
// Fragments, absolute http(s) URLs and mailto links are kept.
func (p *Parser) MakeAnchorsAbsolute(baseURL string) {
	walk(p.doc, atom.A, func(n *html.Node) {
		href, ok := attribute(n, "href")
		if !ok || href == "" || hasAnyPrefix(href, "#", "http://", "https://", "mailto:") {
			return
		}
		setAttribute(n, "href", baseURL+href)
	})
}

// MakeImagesAbsolute prefixes baseURL to every relative image source.
func (p *Parser) MakeImagesAbsolute(baseURL string) {
	walk(p.doc, atom.Img, func(n *html.Node) {
		src, _ := attribute(n, "src")
		if hasAnyPrefix(src, "http://", "https://") {
			return
		}
		setAttribute(n, "src", baseURL+src)
	})
}

// Text returns the text content of markup with entities decoded.
func Text(markup string) (string, error) {
	if !strings.ContainsAny(markup, "<&") {
		return markup, nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div})
	if err != nil {
		return "", errors.Wrap(err, "could not parse html")
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(&sb, n)
	}
	return sb.String(), nil
}

func collectText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(sb, child)
	}
}

func walk(n *html.Node, tag atom.Atom, f func(*html.Node)) {
	if n.Type == html.ElementNode && n.DataAtom == tag {
		f(n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, tag, f)
	}
}

func find(n *html.Node, tag atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := find(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func attribute(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func setAttribute(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
