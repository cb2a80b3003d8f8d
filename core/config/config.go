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

// Package config loads the YAML configuration of the table server and the
// command line tools.
package config

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/google/htmlkit/core/csvimport"
	"github.com/google/htmlkit/core/pagination"
	"github.com/google/htmlkit/core/query"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server     ServerConfig            `yaml:"server"`
	Log        LogConfig               `yaml:"log"`
	Table      TableConfig             `yaml:"table"`
	Pagination pagination.Style        `yaml:"pagination"`
	Images     ImagesConfig            `yaml:"images"`
	Import     csvimport.ImportOptions `yaml:"import"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// TableConfig holds the defaults of rendered tables.
type TableConfig struct {
	Title       string `yaml:"title"`
	RowsPerPage int    `yaml:"rows_per_page"`
}

// ImagesConfig configures the thumbnail generator. Thumbnails are disabled
// when SourceDir is empty.
type ImagesConfig struct {
	SourceDir    string `yaml:"source_dir"`
	CacheDir     string `yaml:"cache_dir"`
	BaseURL      string `yaml:"base_url"`
	DefaultImage string `yaml:"default_image"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: "127.0.0.1:8097"},
		Log:    LogConfig{Level: "info"},
		Table: TableConfig{
			Title:       "Products",
			RowsPerPage: query.DefaultRowsPerPage,
		},
		Pagination: pagination.DefaultStyle(),
		Images: ImagesConfig{
			CacheDir: os.TempDir() + "/htmlkit-thumbnails",
			BaseURL:  "/thumbnails",
		},
		Import: csvimport.DefaultOptions(),
	}
}

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads the configuration file at path over the defaults. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return LoadFromReader(bytes.NewReader(data))
}

// LoadFromReader decodes a YAML configuration over the defaults. ${VAR}
// references are replaced by the environment.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have no usable fallback.
func (c *Config) Validate() error {
	if c.Table.RowsPerPage <= 0 {
		return errors.Errorf("invalid table.rows_per_page %d: must be positive", c.Table.RowsPerPage)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the configured logrus level.
func (c *Config) LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel, errors.Wrapf(err, "invalid log.level %q", c.Log.Level)
	}
	return level, nil
}

// expandEnvVars replaces ${VAR_NAME} with environment variable values.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}"))
	})
}
