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

const AttributeSrc = "src"

// Image is an img element.
type Image struct {
	*Element
}

func NewImage(source string) *Image {
	i := &Image{Element: New("img", false)}
	i.SetSource(source)
	return i
}

func (i *Image) SetSource(source string) {
	i.attributes.Set(AttributeSrc, source)
}

func (i *Image) Source() string {
	src, _ := i.Attribute(AttributeSrc)
	return src
}
