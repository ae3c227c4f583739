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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/openarc/telemetry/pkg/config"
	"github.com/openarc/telemetry/pkg/webservice"
)

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify login credentials against the verification endpoint",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "username",
				Usage:   "Username to verify (default: configured username)",
				Sources: cli.EnvVars("ARCTEL_USERNAME"),
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Token to verify (default: configured token)",
				Sources: cli.EnvVars("ARCTEL_TOKEN"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			username := cmd.String("username")
			if username == "" {
				username = settings.Username
			}
			token := cmd.String("token")
			if token == "" {
				token = settings.Token
			}

			if settings.VerifyEndpoint == "" {
				slog.Warn("no verification endpoint configured")
			}

			result := webservice.VerifyLogin(
				webservice.NewClient(), settings.VerifyEndpoint,
				username, token,
				func() { slog.Debug("verification completed") },
			)

			if !<-result {
				return cli.Exit("not verified", 1)
			}
			fmt.Println("verified")
			return nil
		},
	}
}
