// Copyright 2026 Blink Labs Software
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

package main

import (
	"context"
	"fmt"
	"io"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type submitResult struct {
	Call      string `json:"call"`
	BlockHash string `json:"blockHash,omitempty"`
}

func (c *cli) twinCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <ip>",
		Short: "Create a twin for the signer account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
				if err := client.CreateTwin(ctx, args[0]); err != nil {
					return err
				}
				c.logger.Debug("twin creation accepted", zap.String("ip", args[0]))
				result := submitResult{Call: "TfgridModule.create_twin"}
				return c.render(result, func(w io.Writer) error {
					_, err := fmt.Fprintf(
						w,
						"Twin creation for %s accepted by the pool\n",
						client.Signer().AccountID(),
					)
					return err
				})
			})
		},
	}
}

func (c *cli) farmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farm",
		Short: "Farm transactions",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a farm owned by the signer twin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
				hash, err := client.CreateFarm(ctx, args[0])
				if err != nil {
					return err
				}
				result := submitResult{Call: "TfgridModule.create_farm"}
				if hash != nil {
					result.BlockHash = hash.String()
				}
				return c.render(result, func(w io.Writer) error {
					_, err := fmt.Fprintf(
						w,
						"Farm %s included in block %s\n",
						args[0],
						result.BlockHash,
					)
					return err
				})
			})
		},
	})
	return cmd
}
