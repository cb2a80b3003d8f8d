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

package demo

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/google/htmlkit/core/csvimport"
	"github.com/google/htmlkit/core/decorators"
	"github.com/google/htmlkit/core/listing"
	"github.com/google/htmlkit/core/server"
	"github.com/google/htmlkit/core/tables"
	"github.com/pkg/errors"
)

// DatasetExtension is the extension of the files loaded by a Store.
const DatasetExtension = ".csv"

// Store manages CSV datasets loaded from files. It is safe for concurrent
// use.
type Store struct {
	mu sync.RWMutex

	options  csvimport.ImportOptions
	datasets map[string]*csvimport.Dataset
}

// NewStore creates a new empty Store importing files with options.
func NewStore(options csvimport.ImportOptions) *Store {
	return &Store{
		options:  options,
		datasets: make(map[string]*csvimport.Dataset),
	}
}

// LoadFromDirectory imports every CSV file of dir. The file name without
// extension is the dataset name.
func (s *Store) LoadFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "failed to read data directory")
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), DatasetExtension) {
			continue
		}
		if err := s.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile imports one CSV file.
func (s *Store) LoadFile(path string) error {
	dataset, err := csvimport.ImportFromFile(path, s.options)
	if err != nil {
		return errors.Wrapf(err, "failed to import %s", path)
	}
	s.Add(DatasetName(path), dataset)
	return nil
}

func (s *Store) Add(name string, dataset *csvimport.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[name] = dataset
}

// Get returns a dataset by name, or nil if not found.
func (s *Store) Get(name string) *csvimport.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasets[name]
}

// Names returns the sorted names of all datasets.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sources returns the table sources of all datasets, sorted by name.
func (s *Store) Sources() []*server.Source {
	var sources []*server.Source
	for _, name := range s.Names() {
		sources = append(sources, NewDatasetSource(name, s.Get(name)))
	}
	return sources
}

// DatasetName returns the name of the dataset of the file at path.
func DatasetName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// NewDatasetSource creates a table with one column per dataset column. All
// string columns are searched and every column is an order method.
func NewDatasetSource(name string, dataset *csvimport.Dataset) *server.Source {
	return &server.Source{
		Name:   name,
		Title:  title(name),
		Values: dataset.Values,
		Listing: func(l *listing.Listing) {
			var searched []string
			for _, column := range dataset.Columns {
				if column.Type == csvimport.ColumnTypeString {
					searched = append(searched, column.Name)
				}
				l.AddOrderMethod(column.Name, column.DisplayName, listing.PropertyOrder(nil, column.Name))
			}
			if len(searched) > 0 {
				l.SetSearch(listing.PropertySearch(nil, searched...))
			}
		},
		Decorate: func(table *tables.ArrayTable) error {
			for _, column := range dataset.Columns {
				table.AddDecorator(decorators.NewValueDecorator(column.Name), decorators.NewStaticDecorator(column.DisplayName), false)
			}
			return nil
		},
	}
}

func title(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
