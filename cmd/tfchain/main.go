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
	"io"
	"os"
	"os/signal"
	"syscall"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/cmd/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time
var Version = "devel"

type cli struct {
	flags  *common.GlobalFlags
	logger *zap.Logger
	out    io.Writer
	errOut io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the exit code. Errors are logged to
// stderr, including the ones cobra reports before the flags are parsed
func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	c := &cli{
		flags:  common.NewGlobalFlags(),
		logger: newLogger(stderr, false),
		out:    stdout,
		errOut: stderr,
	}
	cmd := c.rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		c.logger.Error("command failed", zap.Error(err))
	}
	_ = c.logger.Sync()
	if err != nil {
		return 1
	}
	return 0
}

func newLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

func (c *cli) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tfchain",
		Short:         "A tfchain command line client",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.logger = newLogger(c.errOut, c.flags.Debug)
			return c.flags.Validate()
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(
		&c.flags.Websocket,
		"websocket",
		"s",
		"",
		"substrate websocket connection (default "+common.DefaultWebsocket+")",
	)
	flags.StringVar(
		&c.flags.Network,
		"network",
		"",
		"named network to connect to (mainnet, testnet, qanet, devnet, local)",
	)
	flags.StringVar(
		&c.flags.NetworksFile,
		"networks-file",
		"",
		"JSON file defining additional named networks",
	)
	flags.StringVarP(
		&c.flags.Output,
		"output",
		"o",
		c.flags.Output,
		"output format: text, json or cbor",
	)
	flags.BoolVar(&c.flags.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&c.flags.Trace, "trace", false, "print trace spans to stderr")
	flags.StringVar(
		&c.flags.Seed,
		"seed",
		c.flags.Seed,
		"signer secret URI (sr25519) or hex seed (ed25519)",
	)
	flags.StringVar(
		&c.flags.Scheme,
		"scheme",
		c.flags.Scheme,
		"signature scheme of the seed: sr25519 or ed25519",
	)
	cmd.AddCommand(
		c.farmsCommand(),
		c.balanceCommand(),
		c.nodeCommand(),
		c.contractCommand(),
		c.twinCommand(),
		c.farmCommand(),
		c.blockCommand(),
		c.eventsCommand(),
	)
	return cmd
}

// withClient connects, runs fn and closes the connection
func (c *cli) withClient(
	cmd *cobra.Command,
	fn func(ctx context.Context, client *tfchain.Client) error,
) error {
	ctx := cmd.Context()
	session, err := common.Connect(ctx, c.flags, c.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(context.WithoutCancel(ctx)); err != nil {
			c.logger.Warn("failed to close connection", zap.Error(err))
		}
	}()
	return fn(ctx, session.Client)
}
