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
	"context"
	"errors"
	"time"

	"github.com/blinklabs-io/gotfchain/scale"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// operation tracks the span, metrics and log line of one client call
type operation struct {
	client *Client
	name   string
	start  time.Time
	span   trace.Span
}

func (c *Client) begin(
	ctx context.Context,
	name string,
	attrs ...attribute.KeyValue,
) (context.Context, *operation) {
	if c.at != nil {
		attrs = append(attrs, attribute.String("tfchain.at", c.at.String()))
	}
	ctx, span := c.tracer.Start(
		ctx,
		"tfchain."+name,
		trace.WithAttributes(attrs...),
	)
	return ctx, &operation{
		client: c,
		name:   name,
		start:  time.Now(),
		span:   span,
	}
}

func (o *operation) end(err error) {
	result := resultFor(err)
	elapsed := time.Since(o.start)
	metrics := o.client.metrics
	metrics.queries.WithLabelValues(o.name, result).Inc()
	metrics.queryDuration.WithLabelValues(o.name).Observe(elapsed.Seconds())
	if result == resultDecodeError {
		metrics.decodeFailures.WithLabelValues(o.name, "value").Inc()
	}
	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	}
	o.span.End()
	if err != nil && result != resultNotFound {
		o.client.logger.Debug(
			"query failed",
			"op", o.name,
			"result", result,
			"duration", elapsed,
			"error", err,
		)
		return
	}
	o.client.logger.Debug(
		"query",
		"op", o.name,
		"result", result,
		"duration", elapsed,
	)
}

func resultFor(err error) string {
	if err == nil {
		return resultOK
	}
	if errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrBlockNotFound) ||
		errors.Is(err, ErrEventsNotFound) {
		return resultNotFound
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return resultTransportError
	}
	var decodeErr *scale.DecodeError
	if errors.As(err, &decodeErr) {
		return resultDecodeError
	}
	return resultError
}
