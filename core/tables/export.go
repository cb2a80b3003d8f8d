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

package tables

import (
	"os"

	"github.com/pkg/errors"
)

// ExportFormat receives the rows of a table export.
type ExportFormat interface {
	InitExport(title string) error
	AddExportHeaderRow(row *Row) error
	AddExportDataRow(row *Row, isGroupRow bool) error
	// FinishExport completes the export and returns the exported file,
	// positioned at its start.
	FinishExport() (*os.File, error)
	// AbortExport discards an export that failed after InitExport and
	// releases its resources.
	AbortExport() error
}

// AddExportDecorator adds a column used when exporting the table.
func (t *ArrayTable) AddExportDecorator(value, header Decorator) {
	t.exportDecorators = append(t.exportDecorators, NewColumnDecorator(value, header))
}

// AddExportGroupDecorator adds a group decorator used when exporting.
func (t *ArrayTable) AddExportGroupDecorator(group GroupDecorator) {
	t.exportGroupDecorators = append(t.exportGroupDecorators, group)
}

// PopulateExport runs the export decorators over all values of the table
// and writes the rows to format. Without export decorators the display
// decorators are used. Every call decorates the values again; the displayed
// table is not touched.
func (t *ArrayTable) PopulateExport(format ExportFormat, title string) (*os.File, error) {
	columns := t.exportDecorators
	groups := t.exportGroupDecorators
	if len(columns) == 0 {
		columns = t.columnDecorators
		groups = t.groupDecorators
	}
	if len(columns) == 0 {
		columns = []ColumnDecorator{NewColumnDecorator(passThrough, nil)}
	}

	withHeader := false
	for _, column := range columns {
		if column.HeaderDecorator() != nil {
			withHeader = true
			break
		}
	}

	if err := format.InitExport(title); err != nil {
		return nil, errors.Wrap(err, "could not initialize export")
	}

	p := populator{
		columns:    columns,
		groups:     groups,
		withHeader: withHeader,
		setHeader:  format.AddExportHeaderRow,
		addGroupRow: func(row *Row) error {
			return format.AddExportDataRow(row, true)
		},
		addDataRow: func(row *Row) error {
			return format.AddExportDataRow(row, false)
		},
	}
	if err := p.run(t.values, 1); err != nil {
		if abortErr := format.AbortExport(); abortErr != nil {
			return nil, errors.Wrapf(err, "could not export table (abort failed: %v)", abortErr)
		}
		return nil, errors.Wrap(err, "could not export table")
	}

	return format.FinishExport()
}
