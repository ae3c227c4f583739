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
	"github.com/openarc/telemetry/pkg/serializer"
	"github.com/openarc/telemetry/pkg/session"
	"github.com/openarc/telemetry/pkg/webservice"
)

func sessionCmd() *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: "Run one telemetry session over the current host",
		Description: `Collect the session fields a real application run would report: the
anonymous installation identifier, build identity, CPU capabilities, OS
platform, and configured runtime values.

With telemetry enabled and credentials configured, the session is
submitted to the telemetry endpoint. Otherwise (the default), the payload
is rendered locally in JSON, YAML, or table form.

# Examples

Preview the payload without submitting:
  arctel session --format table

Submit using credentials from the environment:
  ARCTEL_ENABLE_TELEMETRY=true ARCTEL_USERNAME=alice ARCTEL_TOKEN=... \
    ARCTEL_TELEMETRY_ENDPOINT=https://telemetry.example.com/submit arctel session`,
		Flags: []cli.Flag{
			formatFlag,
			outputFlag,
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "Render the payload locally even when telemetry is enabled",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			src := session.CollectSources(ctx, nil)

			if settings.EnableTelemetry && settings.HasCredentials() && !cmd.Bool("preview") {
				s := session.New(settings, src)
				s.Close()
				slog.Info("telemetry session submitted",
					"endpoint", settings.TelemetryEndpoint)
				return nil
			}

			// Local preview: run the same session against the payload
			// builder instead of the network.
			pb := webservice.NewPayloadBackend()
			s := session.New(settings, src, session.WithBackend(pb))
			s.Close()

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			return w.Serialize(pb.Payload())
		},
	}
}
