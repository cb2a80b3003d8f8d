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
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/htmlkit/core/imageurl"
	"github.com/google/htmlkit/core/server"
	"github.com/google/htmlkit/demo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCommand() *cobra.Command {
	var addr, dataDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the product catalog and CSV tables over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			s, err := a.newServer(dataDir)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.listen(ctx, s)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the configuration")
	cmd.Flags().StringVar(&dataDir, "data", "", "directory of CSV files served as additional tables")
	return cmd
}

// newServer creates the server with the catalog and the tables of dataDir.
func (a *app) newServer(dataDir string) (*server.Server, error) {
	s, err := server.NewServer(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}

	var images imageurl.Generator
	if a.cfg.Images.SourceDir != "" {
		images = imageurl.NewThumbnailGenerator(a.cfg.Images.SourceDir, a.cfg.Images.CacheDir, a.cfg.Images.BaseURL)
	}
	catalog, err := demo.LoadCatalog()
	if err != nil {
		return nil, err
	}
	source := demo.NewCatalogSource(catalog.Values, demo.CatalogOptions{
		Images:       images,
		DefaultImage: a.cfg.Images.DefaultImage,
		Logger:       a.logger,
	})
	if a.cfg.Table.Title != "" {
		source.Title = a.cfg.Table.Title
	}
	s.AddSource(source)

	if dataDir != "" {
		store := demo.NewStore(a.cfg.Import)
		if err := store.LoadFromDirectory(dataDir); err != nil {
			return nil, err
		}
		for _, source := range store.Sources() {
			s.AddSource(source)
			a.logger.WithFields(logrus.Fields{"table": source.Name, "rows": len(source.Values)}).Info("Loaded table")
		}
	}
	return s, nil
}

func (a *app) listen(ctx context.Context, s *server.Server) error {
	httpServer := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.logger.WithField("addr", httpServer.Addr).Info("Listening")
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
