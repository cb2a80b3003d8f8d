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

// Package export provides sinks for table exports: CSV files and plain text
// tables for terminals.
package export

import (
	"os"
	"regexp"
	"strings"

	"github.com/google/htmlkit/core/htmlparser"
	"github.com/google/htmlkit/core/tables"
	"github.com/pkg/errors"
)

// Names of the export formats.
const (
	FormatCSV  = "csv"
	FormatText = "text"
)

var (
	// ErrNotInitialized is returned when rows are added before InitExport.
	ErrNotInitialized = errors.New("export not initialized")
	ErrUnknownFormat  = errors.New("unknown export format")

	unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// NewFormat returns a fresh sink for the format name. An empty name is CSV.
func NewFormat(name string) (tables.ExportFormat, error) {
	switch name {
	case "", FormatCSV:
		return NewCSVFormat(), nil
	case FormatText:
		return NewTextFormat(), nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// ContentType returns the MIME type and file extension of the format name.
func ContentType(name string) (string, string) {
	if name == FormatText {
		return "text/plain; charset=utf-8", ".txt"
	}
	return "text/csv; charset=utf-8", ".csv"
}

// createFile creates the temporary file an export is written to.
func createFile(title, extension string) (*os.File, error) {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(title, "-"), "-")
	if name == "" {
		name = "export"
	}
	f, err := os.CreateTemp("", name+"-*"+extension)
	if err != nil {
		return nil, errors.Wrap(err, "could not create export file")
	}
	return f, nil
}

// rewind positions f at its start for the caller of FinishExport.
func rewind(f *os.File) (*os.File, error) {
	if _, err := f.Seek(0, 0); err != nil {
		discard(f)
		return nil, errors.Wrap(err, "could not rewind export file")
	}
	return f, nil
}

// discard closes and removes an export file that will not be handed out.
func discard(f *os.File) error {
	closeErr := f.Close()
	if err := os.Remove(f.Name()); err != nil {
		return errors.Wrap(err, "could not remove export file")
	}
	if closeErr != nil {
		return errors.Wrap(closeErr, "could not close export file")
	}
	return nil
}

// rowTexts returns the plain text of the cells of row. Decorated cells hold
// markup which is reduced to its text content.
func rowTexts(row *tables.Row) ([]string, error) {
	texts := row.Texts()
	for i, text := range texts {
		plain, err := htmlparser.Text(text)
		if err != nil {
			return nil, err
		}
		texts[i] = strings.TrimSpace(plain)
	}
	return texts, nil
}
