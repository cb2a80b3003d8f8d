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

// Package server serves paginated, searchable and orderable tables over
// HTTP and exports them as CSV or text.
package server

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/htmlkit/core/config"
	"github.com/google/htmlkit/core/export"
	"github.com/google/htmlkit/core/listing"
	"github.com/google/htmlkit/core/pagination"
	"github.com/google/htmlkit/core/query"
	"github.com/google/htmlkit/core/rendering"
	"github.com/google/htmlkit/core/tables"
	"github.com/google/htmlkit/core/views"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Source is one table served by the server.
type Source struct {
	Name   string
	Title  string
	Values []any

	// Listing registers the search and order methods of the table.
	Listing func(l *listing.Listing)
	// Decorate registers the decorators of a freshly created table. It is
	// called for every request since decorators may keep per-table state.
	Decorate func(table *tables.ArrayTable) error
}

func (s *Source) listing() *listing.Listing {
	l := listing.New(s.Values)
	if s.Listing != nil {
		s.Listing(l)
	}
	return l
}

// NewTable creates a decorated table for values.
func (s *Source) NewTable(values []any) (*tables.ArrayTable, error) {
	table := tables.NewArrayTable(values)
	if s.Decorate != nil {
		if err := s.Decorate(table); err != nil {
			return nil, errors.Wrapf(err, "could not decorate table %s", s.Name)
		}
	}
	return table, nil
}

// Server represents the application server with all its dependencies
type Server struct {
	renderer    *rendering.PageRenderer
	sources     map[string]*Source
	order       []string
	style       pagination.Style
	rowsPerPage int
	logger      logrus.FieldLogger
	thumbnails  http.Handler
	thumbPrefix string
}

// NewServer creates a new server configured by cfg
func NewServer(cfg *config.Config, logger logrus.FieldLogger) (*Server, error) {
	renderer, err := rendering.NewPageRenderer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create renderer")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Server{
		renderer:    renderer,
		sources:     make(map[string]*Source),
		style:       cfg.Pagination,
		rowsPerPage: cfg.Table.RowsPerPage,
		logger:      logger,
	}
	// Thumbnails are only mounted below a non-root path.
	base := strings.TrimRight(cfg.Images.BaseURL, "/")
	if cfg.Images.SourceDir != "" && cfg.Images.CacheDir != "" && strings.HasPrefix(base, "/") {
		s.thumbPrefix = base + "/"
		s.thumbnails = http.StripPrefix(s.thumbPrefix, http.FileServer(http.Dir(cfg.Images.CacheDir)))
	}
	return s, nil
}

// AddSource registers a table. The first source is the landing table.
func (s *Server) AddSource(source *Source) {
	if _, ok := s.sources[source.Name]; !ok {
		s.order = append(s.order, source.Name)
	}
	s.sources[source.Name] = source
}

// Source returns the registered table with name.
func (s *Server) Source(name string) (*Source, bool) {
	source, ok := s.sources[name]
	return source, ok
}

// TableHandlerResult represents the result of handling a table request
type TableHandlerResult struct {
	Error      error
	StatusCode int
	Message    string
}

// Page is a table request resolved to one page of a source.
type Page struct {
	Query      *query.Query
	Listing    *listing.Listing
	Result     listing.Result
	Table      *tables.ArrayTable
	Pagination *pagination.Pagination
}

// BuildPage resolves the request URL to the page of the source: the values
// are searched, ordered and paged, decorated into a table and the
// pagination is configured to link to the other pages.
func (s *Server) BuildPage(source *Source, requestURL *url.URL) (*Page, error) {
	q := query.NewQueryWithRows(requestURL, s.rowsPerPage)
	l := source.listing()
	result := l.Apply(q)
	q.Page = result.Page

	table, err := source.NewTable(result.Values)
	if err != nil {
		return nil, err
	}

	p := pagination.New(result.Pages, result.Page)
	p.SetStyle(s.style)
	p.SetHref(q.PaginationTemplate())

	return &Page{Query: q, Listing: l, Result: result, Table: table, Pagination: p}, nil
}

// HandleTableRequest processes a table request and writes the response
// Returns an error result if the request is invalid, nil on success
func (s *Server) HandleTableRequest(w io.Writer, requestURL *url.URL, name string) *TableHandlerResult {
	source, ok := s.sources[name]
	if !ok {
		return &TableHandlerResult{StatusCode: http.StatusNotFound, Message: "Table '" + name + "' not found"}
	}

	page, err := s.BuildPage(source, requestURL)
	if err != nil {
		return &TableHandlerResult{Error: err, StatusCode: http.StatusInternalServerError, Message: "Could not build table"}
	}

	vm, err := views.BuildPageViewModel(source.Title, page.Table, page.Pagination, page.Query, page.Listing, page.Result)
	if err != nil {
		return &TableHandlerResult{Error: err, StatusCode: http.StatusInternalServerError, Message: "Could not render table"}
	}

	// Render into a buffer so a template error does not leave half a page.
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, vm); err != nil {
		return &TableHandlerResult{Error: err, StatusCode: http.StatusInternalServerError, Message: "Could not render page"}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &TableHandlerResult{Error: err}
	}
	return nil
}

// Export writes the values of source matching q, searched and ordered but
// not paged, to format and returns the export file positioned at its start.
// The caller removes the file.
func (s *Server) Export(source *Source, q *query.Query, format tables.ExportFormat) (*os.File, error) {
	table, err := source.NewTable(source.listing().Select(q))
	if err != nil {
		return nil, err
	}
	return table.PopulateExport(format, source.Title)
}

// HandleExportRequest writes the searched and ordered values of a source
// in the format named by the format parameter.
func (s *Server) HandleExportRequest(w http.ResponseWriter, r *http.Request, name string) *TableHandlerResult {
	source, ok := s.sources[name]
	if !ok {
		return &TableHandlerResult{StatusCode: http.StatusNotFound, Message: "Table '" + name + "' not found"}
	}

	formatName := r.URL.Query().Get("format")
	format, err := export.NewFormat(formatName)
	if err != nil {
		return &TableHandlerResult{Error: err, StatusCode: http.StatusBadRequest, Message: "Unknown export format"}
	}

	f, err := s.Export(source, query.NewQueryWithRows(r.URL, s.rowsPerPage), format)
	if err != nil {
		return &TableHandlerResult{Error: err, StatusCode: http.StatusInternalServerError, Message: "Could not export table"}
	}
	defer removeFile(f, s.logger)

	contentType, extension := export.ContentType(formatName)
	w.Header().Set("Content-Type", contentType)
	http.ServeContent(w, r, source.Name+extension, time.Now(), f)
	return nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		if len(s.order) == 0 {
			s.writeError(w, r, &TableHandlerResult{StatusCode: http.StatusNotFound, Message: "No tables configured"})
			return
		}
		http.Redirect(w, r, "/table/"+url.PathEscape(s.order[0]), http.StatusFound)
	})
	mux.HandleFunc("GET /table/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if result := s.HandleTableRequest(w, r.URL, r.PathValue("name")); result != nil {
			s.writeError(w, r, result)
		}
	})
	mux.HandleFunc("GET /export/{name}", func(w http.ResponseWriter, r *http.Request) {
		if result := s.HandleExportRequest(w, r, r.PathValue("name")); result != nil {
			s.writeError(w, r, result)
		}
	})
	if s.thumbnails != nil {
		mux.Handle("GET "+s.thumbPrefix, s.thumbnails)
	}
	return s.logRequests(mux)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, result *TableHandlerResult) {
	entry := s.logger.WithField("path", r.URL.Path)
	if result.Error != nil {
		entry = entry.WithError(result.Error)
	}
	if result.StatusCode == 0 {
		// The response was partially written, only log.
		entry.Error("Failed to write response")
		return
	}
	if result.StatusCode >= http.StatusInternalServerError {
		entry.Error(result.Message)
	} else {
		entry.Warn(result.Message)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(result.StatusCode)
	vm := rendering.ErrorViewModel{Title: http.StatusText(result.StatusCode), Status: result.StatusCode, Message: result.Message}
	if err := s.renderer.RenderError(w, vm); err != nil {
		entry.WithError(err).Error("Template rendering error")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"query":    r.URL.RawQuery,
			"status":   recorder.status,
			"duration": time.Since(start).String(),
		}).Debug("Handled request")
	})
}
