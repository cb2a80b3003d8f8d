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

package decorators

import "github.com/google/htmlkit/core/tables"

// StaticDecorator sets every cell to the same text, ignoring its value.
type StaticDecorator struct {
	value string
}

func NewStaticDecorator(value string) *StaticDecorator {
	return &StaticDecorator{value: value}
}

func (d *StaticDecorator) Decorate(cell *tables.Cell, row *tables.Row, rowNumber int, remaining []any) error {
	cell.SetValue(d.value)
	return nil
}
