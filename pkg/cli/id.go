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

	"github.com/urfave/cli/v3"

	"github.com/openarc/telemetry/pkg/config"
	"github.com/openarc/telemetry/pkg/idstore"
)

func idCmd() *cli.Command {
	return &cli.Command{
		Name:  "id",
		Usage: "Manage the anonymous installation identifier",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the identifier, creating it on first use",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					store, err := storeFromConfig(cmd)
					if err != nil {
						return err
					}
					fmt.Printf("%016x\n", store.GetID())
					return nil
				},
			},
			{
				Name:  "regenerate",
				Usage: "Replace the identifier with a freshly generated value",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					store, err := storeFromConfig(cmd)
					if err != nil {
						return err
					}
					fmt.Printf("%016x\n", store.RegenerateID())
					return nil
				},
			},
		},
	}
}

func storeFromConfig(cmd *cli.Command) (*idstore.Store, error) {
	settings, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if settings.ConfigDir == "" {
		return nil, fmt.Errorf("no config directory available for the identifier file")
	}
	return idstore.New(settings.ConfigDir), nil
}
