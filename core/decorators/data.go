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

package decorators

import (
	"strings"

	"github.com/google/htmlkit/core/element"
	"github.com/google/htmlkit/core/imageurl"
	"github.com/google/htmlkit/core/tables"
	"github.com/google/htmlkit/core/values"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultImage is shown for data without an image.
	DefaultImage = "img/data.png"
	// StyleImage is the style class of the thumbnail.
	StyleImage = "data"

	FieldID     = "id"
	FieldTitle  = "title"
	FieldTeaser = "teaser"
	FieldImage  = "image"

	// DefaultTitle is used when the data has no title.
	DefaultTitle = "Data"

	ThumbnailSize = 50
)

// DataDecorator summarizes a data value in one cell: an optional thumbnail,
// the title, linked to the action URL when the data has an id, and a teaser.
type DataDecorator struct {
	accessor     values.Accessor
	action       string
	images       imageurl.Generator
	defaultImage string
	logger       logrus.FieldLogger

	propertyID     string
	propertyTitle  string
	propertyTeaser string
	propertyImage  string
}

// NewDataDecorator creates a data decorator. action is a URL template where
// %id% is replaced by the id of the data; empty disables the link. Without
// an image generator no thumbnails are rendered.
func NewDataDecorator(accessor values.Accessor, action string, images imageurl.Generator, defaultImage string) *DataDecorator {
	if defaultImage == "" {
		defaultImage = DefaultImage
	}
	return &DataDecorator{
		accessor:      accessorOrDefault(accessor),
		action:        action,
		images:        images,
		defaultImage:  defaultImage,
		logger:        logrus.StandardLogger(),
		propertyID:    "id",
		propertyImage: "image",
	}
}

func (d *DataDecorator) SetLogger(logger logrus.FieldLogger) {
	d.logger = logger
}

// MapProperty sets the property read for field, one of id, title, teaser
// or image. An empty property disables the field.
func (d *DataDecorator) MapProperty(field, property string) error {
	switch field {
	case FieldID:
		d.propertyID = property
	case FieldTitle:
		d.propertyTitle = property
	case FieldTeaser:
		d.propertyTeaser = property
	case FieldImage:
		d.propertyImage = property
	default:
		return errors.Wrapf(element.ErrConfiguration, "could not map property: invalid field %q, try id, title, teaser or image", field)
	}
	return nil
}

func (d *DataDecorator) Decorate(cell *tables.Cell, row *tables.Row, rowNumber int, remaining []any) error {
	data := cell.Value()

	url, err := d.dataURL(data)
	if err != nil {
		return err
	}
	title, err := d.dataTitle(data)
	if err != nil {
		return err
	}
	if title == "" {
		title = DefaultTitle
	}
	teaser, err := d.field(data, d.propertyTeaser)
	if err != nil {
		return err
	}

	var sb strings.Builder
	if d.images != nil {
		image, err := d.field(data, d.propertyImage)
		if err != nil {
			return err
		}
		html, err := d.imageHTML(image)
		if err != nil {
			return err
		}
		sb.WriteString(html)
	}

	if url != "" {
		anchor, err := element.NewAnchor(title, url)
		if err != nil {
			return err
		}
		sb.WriteString(anchor.HTML())
	} else {
		sb.WriteString(title)
	}

	if teaser != "" {
		sb.WriteString(`<div class="info">`)
		sb.WriteString(teaser)
		sb.WriteString(`</div>`)
	}

	cell.SetValue(sb.String())
	return nil
}

func (d *DataDecorator) field(data any, property string) (string, error) {
	if property == "" {
		return "", nil
	}
	value, err := d.accessor.Property(data, property)
	if err != nil {
		return "", err
	}
	return values.Format(value)
}

func (d *DataDecorator) dataTitle(data any) (string, error) {
	if d.propertyTitle != "" {
		return d.field(data, d.propertyTitle)
	}
	switch {
	case data == nil:
		return "", nil
	case values.IsList(data):
		return "array", nil
	}
	if text, err := values.Format(data); err == nil {
		return text, nil
	}
	return values.TypeName(data), nil
}

func (d *DataDecorator) dataURL(data any) (string, error) {
	if d.action == "" {
		return "", nil
	}
	id, err := d.field(data, d.propertyID)
	if err != nil || id == "" {
		return "", err
	}
	url := strings.ReplaceAll(d.action, "%id%", id)
	return strings.ReplaceAll(url, "%25id%25", id), nil
}

func (d *DataDecorator) imageHTML(path string) (string, error) {
	if path == "" {
		path = d.defaultImage
	}

	url, err := d.images.GenerateURL(path, imageurl.ModeCrop, imageurl.Options{Width: ThumbnailSize, Height: ThumbnailSize})
	if err != nil {
		var generationErr *imageurl.GenerationError
		if !errors.As(err, &generationErr) {
			return "", err
		}
		d.logger.WithField("image", path).WithError(err).Warn("Could not generate data thumbnail")
		return `<span style="color: red;">` + element.Escape(err.Error()) + `</span>`, nil
	}

	image := element.NewImage(url)
	if err := image.AddToClass(StyleImage); err != nil {
		return "", err
	}
	return image.HTML(), nil
}
