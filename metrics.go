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
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "tfchain"

// Query results used as metric labels
const (
	resultOK             = "ok"
	resultNotFound       = "not_found"
	resultDecodeError    = "decode_error"
	resultTransportError = "transport_error"
	resultError          = "error"
)

type clientMetrics struct {
	queries        *prometheus.CounterVec
	queryDuration  *prometheus.HistogramVec
	decodeFailures *prometheus.CounterVec
	submissions    *prometheus.CounterVec
}

// newClientMetrics creates the client collectors and registers them on reg when it is
// not nil. Collectors already registered by another client are shared
func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	return &clientMetrics{
		queries: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "queries_total",
				Help:      "State queries by operation and result",
			},
			[]string{"op", "result"},
		)),
		queryDuration: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "query_duration_seconds",
				Help:      "State query latency by operation",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		)),
		decodeFailures: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "decode_failures_total",
				Help:      "Values or events that could not be decoded",
			},
			// kind is "value" or "event"
			[]string{"op", "kind"},
		)),
		submissions: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "submissions_total",
				Help:      "Transaction submissions by call and outcome",
			},
			[]string{"call", "result"},
		)),
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T) T {
	if reg == nil {
		return collector
	}
	if err := reg.Register(collector); err != nil {
		var alreadyErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyErr) {
			if existing, ok := alreadyErr.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return collector
}
