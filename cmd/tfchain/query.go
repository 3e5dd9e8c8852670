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
	"strconv"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/ledger"
	"github.com/spf13/cobra"
)

func parseID(name string, value string, bits int) (uint64, error) {
	id, err := strconv.ParseUint(value, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("could not parse %s: %w", name, err)
	}
	return id, nil
}

func (c *cli) farmsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farms",
		Short: "Farm operations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <farm_id>",
			Short: "Get farm",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID("farm_id", args[0], 32)
				if err != nil {
					return err
				}
				return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
					farm, err := client.GetFarm(ctx, uint32(id))
					if err != nil {
						return fmt.Errorf("could not find farm: %w", err)
					}
					return c.render(farm, func(w io.Writer) error {
						return writeFarm(w, farm)
					})
				})
			},
		},
		&cobra.Command{
			Use:   "id <name>",
			Short: "Get the ID of a farm by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
					id, err := client.GetFarmIDByName(ctx, args[0])
					if err != nil {
						return err
					}
					return c.render(id, func(w io.Writer) error {
						_, err := fmt.Fprintf(w, "Farm ID for farm %s: %d\n", args[0], id)
						return err
					})
				})
			},
		},
	)
	return cmd
}

func (c *cli) balanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance operations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <account>",
		Short: "Get balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := ledger.ParseAccountID(args[0])
			if err != nil {
				return fmt.Errorf("%s is not a valid account (%w)", args[0], err)
			}
			return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
				balance, err := client.GetAccountBalance(ctx, account)
				if err != nil {
					return err
				}
				return c.render(balance, func(w io.Writer) error {
					return writeBalance(w, account, balance)
				})
			})
		},
	})
	return cmd
}

func (c *cli) nodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Get a node registered on chain",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <node_id>",
		Short: "Get Node by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("node_id", args[0], 32)
			if err != nil {
				return err
			}
			return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
				node, err := client.GetNode(ctx, uint32(id))
				if err != nil {
					return err
				}
				return c.render(node, func(w io.Writer) error {
					return writeNode(w, node)
				})
			})
		},
	})
	return cmd
}

func (c *cli) contractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Get a contract registered on chain",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <contract_id>",
		Short: "Get Contract by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("contract_id", args[0], 64)
			if err != nil {
				return err
			}
			return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
				contract, err := client.GetContract(ctx, id)
				if err != nil {
					return err
				}
				return c.render(contract, func(w io.Writer) error {
					return writeContract(w, contract)
				})
			})
		},
	})
	return cmd
}

func (c *cli) twinCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twin",
		Short: "Get or create a twin registered on chain",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <twin_id>",
			Short: "Get Twin by ID",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID("twin_id", args[0], 32)
				if err != nil {
					return err
				}
				return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
					twin, err := client.GetTwin(ctx, uint32(id))
					if err != nil {
						return err
					}
					return c.render(twin, func(w io.Writer) error {
						return writeTwin(w, twin)
					})
				})
			},
		},
		c.twinCreateCommand(),
	)
	return cmd
}

func (c *cli) blockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Block operations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <hash|height>",
			Short: "Get a block by hash or height",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
					hash, err := resolveBlock(ctx, client, args[0])
					if err != nil {
						return err
					}
					block, err := client.GetBlock(ctx, hash)
					if err != nil {
						return err
					}
					meta, err := client.Conn().Metadata(ctx, &hash)
					if err != nil {
						return err
					}
					return c.render(block, func(w io.Writer) error {
						return writeBlock(w, meta, block)
					})
				})
			},
		},
		&cobra.Command{
			Use:   "hash <height>",
			Short: "Get the hash of the block at a height",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				height, err := parseID("height", args[0], 32)
				if err != nil {
					return err
				}
				return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
					hash, err := client.GetBlockHash(ctx, ledger.BlockNumber(height))
					if err != nil {
						return err
					}
					return c.render(hash, func(w io.Writer) error {
						_, err := fmt.Fprintln(w, hash)
						return err
					})
				})
			},
		},
		&cobra.Command{
			Use:   "number",
			Short: "Get the number of the best block",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
					number, err := client.GetBlockNumber(ctx)
					if err != nil {
						return err
					}
					return c.render(number, func(w io.Writer) error {
						_, err := fmt.Fprintln(w, number)
						return err
					})
				})
			},
		},
	)
	return cmd
}

func (c *cli) eventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events [block_hash]",
		Short: "List the events of a block, the best block by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var at *ledger.Hash
			if len(args) == 1 {
				hash, err := ledger.ParseHash(args[0])
				if err != nil {
					return err
				}
				at = &hash
			}
			return c.withClient(cmd, func(ctx context.Context, client *tfchain.Client) error {
				events, err := client.GetBlockEvents(ctx, at)
				if err != nil && len(events) == 0 {
					return err
				}
				if renderErr := c.render(events, func(w io.Writer) error {
					return writeEvents(w, events)
				}); renderErr != nil {
					return renderErr
				}
				// Partial results are printed before the decode failure is reported
				return err
			})
		},
	}
}

// resolveBlock accepts either a block hash or a decimal height
func resolveBlock(ctx context.Context, client *tfchain.Client, arg string) (ledger.Hash, error) {
	if height, err := strconv.ParseUint(arg, 10, 32); err == nil {
		return client.GetBlockHash(ctx, ledger.BlockNumber(height))
	}
	return ledger.ParseHash(arg)
}
