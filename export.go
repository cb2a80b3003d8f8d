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

package main

import (
	"io"
	"os"

	"github.com/google/htmlkit/core/export"
	"github.com/google/htmlkit/core/query"
	"github.com/google/htmlkit/core/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) exportCommand() *cobra.Command {
	var flags queryFlags
	var format string
	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export a CSV file as CSV or as a text table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.loadSource(args[0])
			if err != nil {
				return err
			}
			return a.export(cmd.OutOrStdout(), source, &flags, format)
		},
	}
	flags.register(cmd, false)
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "export format (csv, text)")
	return cmd
}

func (a *app) export(w io.Writer, source *server.Source, flags *queryFlags, formatName string) error {
	format, err := export.NewFormat(formatName)
	if err != nil {
		return err
	}
	s, err := server.NewServer(a.cfg, a.logger)
	if err != nil {
		return err
	}

	f, err := s.Export(source, query.NewQueryWithRows(flags.url(source.Name), a.cfg.Table.RowsPerPage), format)
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return err
	}
	a.logger.WithFields(logrus.Fields{"table": source.Name, "format": formatName, "bytes": n}).Info("Exported table")
	return nil
}
