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
	"os"

	"github.com/sirupsen/logrus"
)

// removeFile closes and deletes a temporary export file.
func removeFile(f *os.File, logger logrus.FieldLogger) {
	name := f.Name()
	if err := f.Close(); err != nil {
		logger.WithError(err).WithField("file", name).Warn("Could not close export file")
	}
	if err := os.Remove(name); err != nil {
		logger.WithError(err).WithField("file", name).Warn("Could not remove export file")
	}
}
