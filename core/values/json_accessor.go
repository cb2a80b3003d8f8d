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

package values

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// JSONAccessor resolves gjson paths over JSON documents held as
// json.RawMessage, []byte or string values. Other values are delegated to
// Fallback, or to DefaultAccessor when Fallback is nil.
type JSONAccessor struct {
	Fallback Accessor
}

func (a JSONAccessor) Property(value any, path string) (any, error) {
	if path == "" {
		return value, nil
	}
	var result gjson.Result
	switch v := value.(type) {
	case json.RawMessage:
		result = gjson.GetBytes(v, path)
	case []byte:
		result = gjson.GetBytes(v, path)
	case string:
		result = gjson.Get(v, path)
	default:
		fallback := a.Fallback
		if fallback == nil {
			fallback = DefaultAccessor
		}
		return fallback.Property(value, path)
	}

	if !result.Exists() {
		return nil, nil
	}
	if result.IsObject() {
		return json.RawMessage(result.Raw), nil
	}
	return result.Value(), nil
}
