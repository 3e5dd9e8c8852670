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

package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tfchain "github.com/blinklabs-io/gotfchain"
	"github.com/blinklabs-io/gotfchain/keys"
	"github.com/blinklabs-io/gotfchain/substrate"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// Session is a connected client plus the resources that must be released with it
type Session struct {
	Client         *tfchain.Client
	tracerProvider *sdktrace.TracerProvider
}

// Connect dials the configured endpoint and builds a client with the requested
// signer, logging and tracing
func Connect(ctx context.Context, f *GlobalFlags, logger *zap.Logger) (*Session, error) {
	url, network, err := f.Endpoint()
	if err != nil {
		return nil, err
	}
	scheme, err := keys.ParseScheme(f.Scheme)
	if err != nil {
		return nil, err
	}
	signer, err := keys.New(scheme, f.Seed)
	if err != nil {
		return nil, fmt.Errorf("load signer: %w", err)
	}
	s := &Session{}
	opts := []tfchain.ClientOptionFunc{
		tfchain.WithNetwork(network),
		tfchain.WithSigner(signer),
	}
	if f.Debug {
		opts = append(
			opts,
			tfchain.WithLogger(
				slog.New(
					slog.NewTextHandler(
						os.Stderr,
						&slog.HandlerOptions{Level: slog.LevelDebug},
					),
				),
			),
		)
	}
	if f.Trace {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(os.Stderr),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		s.tracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
		)
		opts = append(opts, tfchain.WithTracerProvider(s.tracerProvider))
	}
	logger.Debug(
		"connecting",
		zap.String("url", url),
		zap.String("network", network.Name),
		zap.String("signer", signer.AccountID().String()),
	)
	conn, err := substrate.Dial(ctx, url)
	if err != nil {
		_ = s.shutdownTracing(ctx)
		return nil, err
	}
	opts = append(opts, tfchain.WithConn(conn))
	s.Client, err = tfchain.NewClient(opts...)
	if err != nil {
		_ = conn.Close()
		_ = s.shutdownTracing(ctx)
		return nil, err
	}
	return s, nil
}

// Close closes the connection and flushes any pending spans
func (s *Session) Close(ctx context.Context) error {
	return errors.Join(s.Client.Close(), s.shutdownTracing(ctx))
}

func (s *Session) shutdownTracing(ctx context.Context) error {
	if s.tracerProvider == nil {
		return nil
	}
	return s.tracerProvider.Shutdown(ctx)
}
