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

package rendering

import (
	"embed"
	"io"

	"github.com/google/htmlkit/core/views"
	"github.com/google/safehtml/template"
	"github.com/pkg/errors"
)

//go:embed templates/*
var templateFS embed.FS

// PageRenderer handles rendering of page view models to HTML
type PageRenderer struct {
	pageTemplate  *template.Template
	errorTemplate *template.Template
}

// ErrorViewModel is rendered when a page could not be built
type ErrorViewModel struct {
	Title   string
	Status  int
	Message string
}

// NewPageRenderer creates a new page renderer
func NewPageRenderer() (*PageRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	pageTemplate, err := template.New("page.html").ParseFS(trustedFS, "templates/page.html")
	if err != nil {
		return nil, errors.Wrap(err, "could not parse page template")
	}

	errorTemplate, err := template.New("error.html").ParseFS(trustedFS, "templates/error.html")
	if err != nil {
		return nil, errors.Wrap(err, "could not parse error template")
	}

	return &PageRenderer{
		pageTemplate:  pageTemplate,
		errorTemplate: errorTemplate,
	}, nil
}

// Render renders a PageViewModel to the provided writer
func (r *PageRenderer) Render(w io.Writer, vm views.PageViewModel) error {
	return r.pageTemplate.Execute(w, vm)
}

// RenderError renders an ErrorViewModel to the provided writer
func (r *PageRenderer) RenderError(w io.Writer, vm ErrorViewModel) error {
	return r.errorTemplate.Execute(w, vm)
}
