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

package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/htmlkit/core/config"
	"github.com/google/htmlkit/core/decorators"
	"github.com/google/htmlkit/core/listing"
	"github.com/google/htmlkit/core/tables"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func products() []any {
	return []any{
		map[string]any{"name": "Lamp", "category": "Light"},
		map[string]any{"name": "Chair", "category": "Seat"},
		map[string]any{"name": "Candle", "category": "Light"},
		map[string]any{"name": "Bench", "category": "Seat"},
		map[string]any{"name": "Stool", "category": "Seat"},
	}
}

func newTestServer(t *testing.T) (*Server, *test.Hook) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Table.RowsPerPage = 2

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s, err := NewServer(cfg, logger)
	require.NoError(t, err)
	s.AddSource(&Source{
		Name:   "products",
		Title:  "Products",
		Values: products(),
		Listing: func(l *listing.Listing) {
			l.SetSearch(listing.PropertySearch(nil, "name", "category"))
			l.AddOrderMethod("name", "Name", listing.PropertyOrder(nil, "name"))
		},
		Decorate: func(table *tables.ArrayTable) error {
			table.AddDecorator(decorators.NewValueDecorator("name"), decorators.NewStaticDecorator("Name"), false)
			table.AddDecorator(decorators.NewValueDecorator("category"), decorators.NewStaticDecorator("Category"), false)
			return nil
		},
	})
	return s, hook
}

func get(t *testing.T, h http.Handler, target string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestTablePage(t *testing.T) {
	s, _ := newTestServer(t)

	res, body := get(t, s.Handler(), "/table/products")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<th>Name</th>")
	assert.Contains(t, body, "<td>Lamp</td>")
	assert.Contains(t, body, "<td>Chair</td>")
	assert.NotContains(t, body, "<td>Candle</td>")
	assert.Contains(t, body, "1-2 of 5")
	assert.Contains(t, body, `class="pagination"`)
}

func TestTablePageQuery(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	_, body := get(t, h, "/table/products?page=2")
	assert.Contains(t, body, "<td>Candle</td>")
	assert.Contains(t, body, "3-4 of 5")

	_, body = get(t, h, "/table/products?search=light")
	assert.Contains(t, body, "<td>Lamp</td>")
	assert.Contains(t, body, "<td>Candle</td>")
	assert.NotContains(t, body, "<td>Chair</td>")
	assert.Contains(t, body, "1-2 of 2")
	assert.NotContains(t, body, `class="pagination"`)

	_, body = get(t, h, "/table/products?order=name&direction=desc")
	assert.Contains(t, body, "<td>Stool</td>")
	assert.Contains(t, body, "<td>Lamp</td>")
	assert.NotContains(t, body, "<td>Bench</td>")
}

func TestTablePageNotFound(t *testing.T) {
	s, hook := newTestServer(t)

	res, body := get(t, s.Handler(), "/table/users")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Table &#39;users&#39; not found")

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned, "not found is logged as a warning")
}

func TestTablePageDecorationError(t *testing.T) {
	s, hook := newTestServer(t)
	s.AddSource(&Source{
		Name:   "broken",
		Values: products(),
		Decorate: func(table *tables.ArrayTable) error {
			table.AddDecorator(decorators.NewAnchorDecorator("name", nil), nil, false)
			return nil
		},
	})

	res, _ := get(t, s.Handler(), "/table/broken")
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var logged bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel && entry.Data[logrus.ErrorKey] != nil {
			logged = true
		}
	}
	assert.True(t, logged)
}

func TestRedirect(t *testing.T) {
	s, _ := newTestServer(t)

	res, _ := get(t, s.Handler(), "/")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/table/products", res.Header.Get("Location"))
}

func TestExportCSV(t *testing.T) {
	s, _ := newTestServer(t)

	res, body := get(t, s.Handler(), "/export/products?search=seat&order=name")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/csv")
	assert.Equal(t, "Name,Category\nBench,Seat\nChair,Seat\nStool,Seat\n", body)
}

func TestExportText(t *testing.T) {
	s, _ := newTestServer(t)

	res, body := get(t, s.Handler(), "/export/products?format=text")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, body, "Products")
	for _, name := range []string{"Lamp", "Chair", "Candle", "Bench", "Stool"} {
		assert.Contains(t, body, name)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	s, _ := newTestServer(t)

	res, _ := get(t, s.Handler(), "/export/products?format=pdf")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestThumbnails(t *testing.T) {
	cacheDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "lamp.png"), []byte("png"), 0o644))

	tests := []struct {
		name    string
		baseURL string
		path    string
		status  int
	}{
		{"served", "/thumbnails", "/thumbnails/lamp.png", http.StatusOK},
		{"trailing slash", "/thumbnails/", "/thumbnails/lamp.png", http.StatusOK},
		{"empty base url", "", "/lamp.png", http.StatusNotFound},
		{"root base url", "/", "/lamp.png", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Images.SourceDir = t.TempDir()
			cfg.Images.CacheDir = cacheDir
			cfg.Images.BaseURL = tt.baseURL

			logger, _ := test.NewNullLogger()
			s, err := NewServer(cfg, logger)
			require.NoError(t, err)

			res, body := get(t, s.Handler(), tt.path)
			assert.Equal(t, tt.status, res.StatusCode)
			if tt.status == http.StatusOK {
				assert.Equal(t, "png", body)
			}
		})
	}
}
