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

package tfchain

import (
	"log/slog"

	"github.com/blinklabs-io/gotfchain/keys"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithConn specifies the connection to the node
func WithConn(conn Conn) ClientOptionFunc {
	return func(c *Client) {
		c.conn = conn
	}
}

// WithNetwork records the network the connection belongs to. It is only used to
// annotate logs
func WithNetwork(network Network) ClientOptionFunc {
	return func(c *Client) {
		c.network = network
	}
}

// WithSigner specifies the signer used for transaction submission
func WithSigner(signer keys.Signer) ClientOptionFunc {
	return func(c *Client) {
		c.signer = signer
	}
}

// WithLogger specifies the logger. Logging is discarded by default
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics registers the client metrics on the given registerer
func WithMetrics(reg prometheus.Registerer) ClientOptionFunc {
	return func(c *Client) {
		c.metrics = newClientMetrics(reg)
	}
}

// WithTracerProvider specifies the provider for query and submission spans. A no-op
// provider is used by default
func WithTracerProvider(tp trace.TracerProvider) ClientOptionFunc {
	return func(c *Client) {
		c.tracerProvider = tp
	}
}
