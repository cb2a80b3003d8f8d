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

package export

import (
	"encoding/csv"
	"os"

	"github.com/google/htmlkit/core/tables"
	"github.com/pkg/errors"
)

// CSVFormat writes an export as comma separated values. Group rows are
// written as a record holding only the group text.
type CSVFormat struct {
	Comma rune

	file   *os.File
	writer *csv.Writer
}

func NewCSVFormat() *CSVFormat {
	return &CSVFormat{Comma: ','}
}

func (f *CSVFormat) InitExport(title string) error {
	file, err := createFile(title, ".csv")
	if err != nil {
		return err
	}
	f.file = file
	f.writer = csv.NewWriter(file)
	if f.Comma != 0 {
		f.writer.Comma = f.Comma
	}
	return nil
}

func (f *CSVFormat) AddExportHeaderRow(row *tables.Row) error {
	return f.write(row)
}

func (f *CSVFormat) AddExportDataRow(row *tables.Row, isGroupRow bool) error {
	return f.write(row)
}

func (f *CSVFormat) FinishExport() (*os.File, error) {
	if f.writer == nil {
		return nil, ErrNotInitialized
	}
	f.writer.Flush()
	if err := f.writer.Error(); err != nil {
		f.AbortExport()
		return nil, errors.Wrap(err, "could not write csv export")
	}
	file := f.file
	f.file, f.writer = nil, nil
	return rewind(file)
}

// AbortExport closes and removes the file of an unfinished export.
func (f *CSVFormat) AbortExport() error {
	if f.file == nil {
		return nil
	}
	file := f.file
	f.file, f.writer = nil, nil
	return discard(file)
}

func (f *CSVFormat) write(row *tables.Row) error {
	if f.writer == nil {
		return ErrNotInitialized
	}
	record, err := rowTexts(row)
	if err != nil {
		return err
	}
	return errors.Wrap(f.writer.Write(record), "could not write csv record")
}
