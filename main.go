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

// Command htmlkit serves, renders and exports paginated HTML tables.
package main

import (
	"io"
	"os"

	"github.com/google/htmlkit/core/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds the state shared by the commands.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{logger: logrus.New()}

	root := &cobra.Command{
		Use:   "htmlkit",
		Short: "Render lists of values as paginated HTML tables",
		Long: `htmlkit renders lists of values as HTML tables with decorated cells,
group rows and pagination links.

Examples:
  htmlkit serve --data ./tables
  htmlkit render products.csv --page 2 --rows 20
  htmlkit export products.csv --format text`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides the configuration")

	root.AddCommand(a.serveCommand(), a.renderCommand(), a.exportCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetLevel(level)
	a.cfg = cfg
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
