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

// Package csvimport loads CSV data as table values. Every data row becomes
// a map from column name to a typed value.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ColumnType specifies the data type for a column
type ColumnType string

const (
	// ColumnTypeAuto auto-detects type from data (default)
	ColumnTypeAuto   ColumnType = ""
	ColumnTypeString ColumnType = "string"
	ColumnTypeInt    ColumnType = "int"
	ColumnTypeFloat  ColumnType = "float"
	ColumnTypeBool   ColumnType = "bool"
)

var (
	ErrEmpty  = errors.New("CSV file is empty")
	ErrNoRows = errors.New("CSV file has no data rows")
)

// ColumnSource defines how a column is imported
type ColumnSource struct {
	// Name is the key of the column in the row values (defaults to the header)
	Name string `yaml:"name"`
	// DisplayName is the column header shown in tables (defaults to the header)
	DisplayName string `yaml:"display_name"`
	// Type specifies the data type for this column (default: auto-detect)
	Type ColumnType `yaml:"type"`
}

// Column describes an imported column.
type Column struct {
	Name        string
	DisplayName string
	Type        ColumnType
}

// Dataset holds the imported columns in file order and one map per row.
type Dataset struct {
	Columns []Column
	Values  []any
}

// ImportOptions configures CSV import behavior
type ImportOptions struct {
	// HasHeader indicates whether the first row contains column headers
	HasHeader bool `yaml:"has_header"`
	// Delimiter is the field delimiter (defaults to comma)
	Delimiter rune `yaml:"-"`
	// ColumnSources provides configuration for specific columns by header name
	ColumnSources map[string]ColumnSource `yaml:"columns"`
	// SampleSize is the number of rows to sample for type detection (default: 100)
	SampleSize int `yaml:"sample_size"`
}

// DefaultOptions returns default import options
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader:     true,
		Delimiter:     ',',
		ColumnSources: make(map[string]ColumnSource),
		SampleSize:    100,
	}
}

// ImportFromFile imports a CSV file
func ImportFromFile(filepath string, options ImportOptions) (*Dataset, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return ImportFromReader(file, options)
}

// ImportFromReader imports CSV data from an io.Reader
func ImportFromReader(reader io.Reader, options ImportOptions) (*Dataset, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV")
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	var headers []string
	var dataRows [][]string
	if options.HasHeader {
		headers = records[0]
		dataRows = records[1:]
	} else {
		// Generate column names if no header
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
		dataRows = records
	}
	if len(dataRows) == 0 {
		return nil, ErrNoRows
	}

	sampleSize := options.SampleSize
	if sampleSize <= 0 {
		sampleSize = 100
	}

	dataset := &Dataset{Columns: make([]Column, len(headers))}
	for i, header := range headers {
		header = strings.TrimSpace(header)
		source := options.ColumnSources[header]
		column := Column{Name: header, DisplayName: header, Type: source.Type}
		if source.Name != "" {
			column.Name = source.Name
		}
		if source.DisplayName != "" {
			column.DisplayName = source.DisplayName
		}
		if column.Type == ColumnTypeAuto {
			column.Type = detectColumnType(i, dataRows, sampleSize)
		}
		dataset.Columns[i] = column
	}

	dataset.Values = make([]any, len(dataRows))
	for r, row := range dataRows {
		record := make(map[string]any, len(dataset.Columns))
		for i, column := range dataset.Columns {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			record[column.Name] = parseValue(value, column.Type)
		}
		dataset.Values[r] = record
	}

	return dataset, nil
}

// parseValue converts value to the column type. Empty and unparsable
// values of typed columns are nil.
func parseValue(value string, columnType ColumnType) any {
	if columnType == ColumnTypeString {
		return value
	}
	if value == "" {
		return nil
	}

	switch columnType {
	case ColumnTypeInt:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case ColumnTypeFloat:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case ColumnTypeBool:
		if b, err := ParseBool(value); err == nil {
			return b
		}
	}
	return nil
}

// detectColumnType samples a column: integers, then floats, then booleans;
// anything else is a string column. Columns without values are strings.
func detectColumnType(column int, dataRows [][]string, sampleSize int) ColumnType {
	isInt, isFloat, isBool := true, true, true
	hasNonEmpty := false

	for j := 0; j < sampleSize && j < len(dataRows); j++ {
		if column >= len(dataRows[j]) {
			continue
		}
		value := strings.TrimSpace(dataRows[j][column])
		if value == "" {
			continue
		}
		hasNonEmpty = true

		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			isFloat = false
		}
		if _, err := ParseBool(value); err != nil {
			isBool = false
		}
	}

	switch {
	case !hasNonEmpty:
		return ColumnTypeString
	case isInt:
		return ColumnTypeInt
	case isFloat:
		return ColumnTypeFloat
	case isBool:
		return ColumnTypeBool
	}
	return ColumnTypeString
}

// ParseBool parses the boolean spellings found in CSV exports.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "t", "y":
		return true, nil
	case "false", "no", "f", "n":
		return false, nil
	}
	return false, errors.Errorf("cannot parse %q as boolean", s)
}
