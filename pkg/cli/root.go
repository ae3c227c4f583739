// Copyright (c) 2025, OpenArc Project.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/openarc/telemetry/pkg/buildinfo"
	"github.com/openarc/telemetry/pkg/logging"
)

const name = "arctel"

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "config file path",
		Sources: cli.EnvVars("ARCTEL_CONFIG"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, warn, error)",
		Value: "info",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "output format (json, yaml, table)",
		Value: "json",
	}

	outputFlag = &cli.StringFlag{
		Name:  "output",
		Usage: "output file path (default: stdout)",
	}
)

// New builds the root arctel command.
func New() *cli.Command {
	build := buildinfo.Current()

	return &cli.Command{
		Name:    name,
		Usage:   "OpenArc session telemetry",
		Version: fmt.Sprintf("%s (%s, %s)", build.Name, build.Revision, build.Date),
		Description: `Collects anonymous diagnostic facts about the host and the running
build, and either submits them to the configured telemetry service or
renders them locally for inspection.`,
		Flags: []cli.Flag{
			configFlag,
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(
				name, build.Name, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			sessionCmd(),
			idCmd(),
			verifyCmd(),
		},
	}
}

// Execute runs the root command. It is called by main and handles
// SIGINT/SIGTERM by canceling the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
