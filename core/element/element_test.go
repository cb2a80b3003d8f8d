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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementRender(t *testing.T) {
	e := New("div", true)
	e.SetID("main")
	require.NoError(t, e.AddToClass("b a"))
	require.NoError(t, e.AddToClass("b"))
	require.NoError(t, e.SetAttribute("data-x", `say "hi"`))
	require.NoError(t, e.SetAttribute("title", "t"))

	assert.Equal(t, `<div id="main" class="b a" data-x="say &#34;hi&#34;" title="t">`, e.OpenTag())
	assert.Equal(t, "</div>", e.CloseTag())
	assert.Equal(t, "x", e.Render(Content, "x"))
	assert.Equal(t, `<div id="main" class="b a" data-x="say &#34;hi&#34;" title="t">x</div>`, e.Render(Full, "x"))
}

func TestElementWithoutCloseTag(t *testing.T) {
	e := New("br", false)
	assert.Equal(t, "<br />", e.HTML())
}

func TestElementClassHandling(t *testing.T) {
	e := New("span", true)

	err := e.AddToClass("  ")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.ErrorIs(t, e.RemoveFromClass(""), ErrConfiguration)

	require.NoError(t, e.AddToClass("one two"))
	require.NoError(t, e.RemoveFromClass("one"))
	assert.Equal(t, "two", e.Class())

	e.SetClass("three four")
	assert.Equal(t, "three four", e.Class())
	assert.True(t, e.HasClass("four"))

	require.NoError(t, e.SetAttribute("class", ""))
	assert.Equal(t, "", e.Class())
}

func TestElementAttributes(t *testing.T) {
	e := New("td", true)
	assert.ErrorIs(t, e.SetAttribute("", "x"), ErrConfiguration)

	require.NoError(t, e.SetAttribute("id", "cell"))
	assert.Equal(t, "cell", e.ID())
	assert.Empty(t, e.Attributes())

	require.NoError(t, e.SetAttribute("colspan", "3"))
	require.NoError(t, e.SetAttribute("align", "left"))
	require.NoError(t, e.SetAttribute("colspan", "4"))
	assert.Equal(t, []string{"colspan", "align"}, e.Attributes())

	value, ok := e.Attribute("colspan")
	assert.True(t, ok)
	assert.Equal(t, "4", value)

	e.RemoveAttribute("align")
	_, ok = e.Attribute("align")
	assert.False(t, ok)

	e.ResetAttributes()
	assert.Empty(t, e.Attributes())
	assert.Equal(t, "cell", e.ID())
}

func TestAnchor(t *testing.T) {
	_, err := NewAnchor("", "/x")
	assert.ErrorIs(t, err, ErrConfiguration)

	a, err := NewAnchor("Home", "")
	require.NoError(t, err)
	assert.Equal(t, "#", a.Href())
	assert.Equal(t, `<a href="#">Home</a>`, a.HTML())

	a.SetHref("/index?a=1&b=2")
	require.NoError(t, a.SetAttribute("onclick", "go()"))
	require.NoError(t, a.AddToClass("nav"))
	assert.Equal(t, `<a class="nav" href="/index?a=1&amp;b=2" onclick="go()">Home</a>`, a.HTML())
}

func TestImageSpanMeta(t *testing.T) {
	img := NewImage("/img/logo.png")
	require.NoError(t, img.AddToClass("data"))
	assert.Equal(t, "/img/logo.png", img.Source())
	assert.Equal(t, `<img class="data" src="/img/logo.png" />`, img.HTML())

	span := NewSpan("<b>bold</b>")
	assert.Equal(t, "<span><b>bold</b></span>", span.HTML())

	meta := NewMeta()
	meta.SetName("description")
	meta.SetContent("a page")
	assert.Equal(t, `<meta name="description" content="a page" />`, meta.HTML())

	meta.SetProperty("og:title")
	assert.Equal(t, "", meta.Name())
	assert.Equal(t, "og:title", meta.Property())
	assert.Equal(t, `<meta content="a page" property="og:title" />`, meta.HTML())

	meta.SetClass("ignored")
	meta.SetID("ignored")
	assert.Equal(t, "", meta.Class())
}

func TestMetaAttributes(t *testing.T) {
	meta := NewMeta()
	meta.SetProperty("og:title")
	require.NoError(t, meta.SetAttribute(AttributeID, "x"))
	require.NoError(t, meta.SetAttribute(AttributeClass, "y"))
	require.NoError(t, meta.SetAttribute(AttributeContent, "Lamp"))
	require.NoError(t, meta.SetAttribute(AttributeName, "title"))

	assert.Equal(t, "", meta.Property())
	assert.Equal(t, `<meta content="Lamp" name="title" />`, meta.HTML())
	assert.ErrorIs(t, meta.SetAttribute("", "x"), ErrConfiguration)
}

func TestClassSetKeepsInsertionOrder(t *testing.T) {
	s := NewClassSet()
	s.Add("c a")
	s.Add("b a")
	assert.Equal(t, "c a b", s.String())
	s.Remove("a")
	assert.Equal(t, "c b", s.String())
	assert.Equal(t, 2, s.Len())
}

func TestOrderedMap(t *testing.T) {
	om := NewOrderedMap[string, int]()
	om.Set("first", 1)
	om.Set("second", 2)
	om.Set("third", 3)
	om.Set("first", 10)

	assert.Equal(t, []string{"first", "second", "third"}, om.Keys())
	val, ok := om.Get("first")
	assert.True(t, ok)
	assert.Equal(t, 10, val)

	om.Delete("second")
	om.Delete("missing")
	assert.Equal(t, []string{"first", "third"}, om.Keys())

	count := 0
	om.Range(func(k string, v int) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
