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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/htmlkit/core/csvimport"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "127.0.0.1:8097", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Table.RowsPerPage)
	assert.Equal(t, "...", cfg.Pagination.Ellipsis)
	assert.True(t, cfg.Pagination.NextShow)
	assert.True(t, cfg.Import.HasHeader)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromReader(t *testing.T) {
	t.Setenv("HTMLKIT_TEST_ADDR", ":9000")

	cfg, err := LoadFromReader(strings.NewReader(`
server:
  addr: ${HTMLKIT_TEST_ADDR}
log:
  level: debug
table:
  rows_per_page: 25
pagination:
  ellipsis: "…"
  next_show: false
images:
  source_dir: /srv/images
import:
  columns:
    id:
      display_name: Product ID
      type: string
`))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 25, cfg.Table.RowsPerPage)
	assert.Equal(t, "Products", cfg.Table.Title, "unset values keep their default")
	assert.Equal(t, "…", cfg.Pagination.Ellipsis)
	assert.False(t, cfg.Pagination.NextShow)
	assert.True(t, cfg.Pagination.PreviousShow)
	assert.Equal(t, "prev", cfg.Pagination.PreviousClass)
	assert.Equal(t, "/srv/images", cfg.Images.SourceDir)
	assert.Equal(t, "/thumbnails", cfg.Images.BaseURL)
	assert.Equal(t, csvimport.ColumnSource{DisplayName: "Product ID", Type: csvimport.ColumnTypeString}, cfg.Import.ColumnSources["id"])
	assert.Equal(t, ',', cfg.Import.Delimiter)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestLoadFromReaderInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "syntax", yaml: "server: ["},
		{name: "rows", yaml: "table:\n  rows_per_page: 0\n"},
		{name: "level", yaml: "log:\n  level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table:\n  title: Stock\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Stock", cfg.Table.Title)
}
