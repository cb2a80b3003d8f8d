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
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/htmlkit/core/csvimport"
	"github.com/google/htmlkit/core/htmlparser"
	"github.com/google/htmlkit/core/query"
	"github.com/google/htmlkit/core/server"
	"github.com/google/htmlkit/demo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// queryFlags are the table request parameters given on the command line.
type queryFlags struct {
	page      int
	rows      int
	search    string
	order     string
	direction string
}

func (f *queryFlags) register(cmd *cobra.Command, paging bool) {
	if paging {
		cmd.Flags().IntVar(&f.page, "page", 1, "page to render")
		cmd.Flags().IntVar(&f.rows, "rows", 0, "rows per page, overrides the configuration")
	}
	cmd.Flags().StringVar(&f.search, "search", "", "only include rows matching the search")
	cmd.Flags().StringVar(&f.order, "order", "", "order by column")
	cmd.Flags().StringVar(&f.direction, "direction", query.DirectionAsc, "order direction (asc, desc)")
}

// url returns the table URL the flags stand for.
func (f *queryFlags) url(name string) *url.URL {
	params := url.Values{}
	if f.page > 0 {
		params.Set(query.ParamPage, strconv.Itoa(f.page))
	}
	if f.rows > 0 {
		params.Set(query.ParamRows, strconv.Itoa(f.rows))
	}
	if f.search != "" {
		params.Set(query.ParamSearch, f.search)
	}
	if f.order != "" {
		params.Set(query.ParamOrderMethod, f.order)
		params.Set(query.ParamOrderDirection, f.direction)
	}
	return &url.URL{Path: "/table/" + name, RawQuery: params.Encode()}
}

// loadSource imports the CSV file at path as a table.
func (a *app) loadSource(path string) (*server.Source, error) {
	dataset, err := csvimport.ImportFromFile(path, a.cfg.Import)
	if err != nil {
		return nil, err
	}
	return demo.NewDatasetSource(demo.DatasetName(path), dataset), nil
}

func (a *app) renderCommand() *cobra.Command {
	var flags queryFlags
	var baseURL string
	cmd := &cobra.Command{
		Use:   "render <file.csv>",
		Short: "Render one page of a CSV file as an HTML table with pagination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.loadSource(args[0])
			if err != nil {
				return err
			}
			markup, err := a.render(source, &flags, baseURL)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
			return err
		},
	}
	flags.register(cmd, true)
	cmd.Flags().StringVar(&baseURL, "base-url", "", "make links and images absolute to this URL")
	return cmd
}

func (a *app) render(source *server.Source, flags *queryFlags, baseURL string) (string, error) {
	s, err := server.NewServer(a.cfg, a.logger)
	if err != nil {
		return "", err
	}
	page, err := s.BuildPage(source, flags.url(source.Name))
	if err != nil {
		return "", err
	}

	markup, err := page.Table.HTML()
	if err != nil {
		return "", err
	}
	if page.Result.Pages > 1 {
		pagination, err := page.Pagination.HTML()
		if err != nil {
			return "", err
		}
		markup += "\n" + pagination
	}

	if baseURL != "" {
		parser, err := htmlparser.Parse(markup)
		if err != nil {
			return "", err
		}
		parser.MakeAnchorsAbsolute(baseURL)
		parser.MakeImagesAbsolute(baseURL)
		if markup, err = parser.HTML(); err != nil {
			return "", err
		}
	}

	a.logger.WithFields(logrus.Fields{
		"table": source.Name,
		"page":  page.Result.Page,
		"pages": page.Result.Pages,
		"rows":  len(page.Result.Values),
	}).Info("Rendered table")
	return markup, nil
}
