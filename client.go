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

// Package tfchain implements a client for TFChain, the Substrate based ledger of the
// ThreeFold grid.
//
// A Client reads and decodes chain state (twins, farms, nodes, contracts, accounts,
// blocks and events) and submits signed transactions. The transport is supplied as a
// Conn, for example one created by the substrate package.
package tfchain

import (
	"log/slog"

	"github.com/blinklabs-io/gotfchain/keys"
	"github.com/blinklabs-io/gotfchain/ledger"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/blinklabs-io/gotfchain"

// Client is safe for concurrent use. It holds no state besides its configuration
type Client struct {
	conn           Conn
	network        Network
	signer         keys.Signer
	logger         *slog.Logger
	metrics        *clientMetrics
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
	// Block to read state at, nil for the best block
	at *ledger.Hash
}

// NewClient returns a new Client with the specified options. A connection must be
// provided with WithConn
func NewClient(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{
		network: NetworkInvalid,
	}
	// Apply provided options functions
	for _, option := range options {
		option(c)
	}
	if c.conn == nil {
		return nil, ErrNoConn
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.logger = c.logger.With("component", "tfchain")
	if c.network != NetworkInvalid {
		c.logger = c.logger.With("network", c.network.Name)
	}
	if c.tracerProvider == nil {
		c.tracerProvider = noop.NewTracerProvider()
	}
	c.tracer = c.tracerProvider.Tracer(tracerName)
	if c.metrics == nil {
		c.metrics = newClientMetrics(nil)
	}
	return c, nil
}

// New is an alias to NewClient
func New(options ...ClientOptionFunc) (*Client, error) {
	return NewClient(options...)
}

// At returns a client that reads state as of the given block. Submission is not
// affected
func (c *Client) At(hash ledger.Hash) *Client {
	ret := *c
	ret.at = &hash
	ret.logger = c.logger.With("at", hash.String())
	return &ret
}

// Conn returns the underlying connection
func (c *Client) Conn() Conn {
	return c.conn
}

// Network returns the configured network, or NetworkInvalid when none was set
func (c *Client) Network() Network {
	return c.network
}

// Signer returns the configured signer, if any
func (c *Client) Signer() keys.Signer {
	return c.signer
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}
