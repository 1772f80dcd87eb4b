/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace of every metric registered by the client
	Namespace = "cpaper"
	subsystem = "client"
)

// label names
const (
	ChaincodeLabel = "chaincode"
	FcnLabel       = "fcn"
	FailLabel      = "fail"
)

var (
	executionsReceived = prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      "executions_received",
		Help:      "The number of invoke transactions received.",
	}
	executionsFailed = prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      "executions_failed",
		Help:      "The number of invoke transactions that failed (timeouts excluded).",
	}
	executionDuration = prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      "execution_duration",
		Help:      "The time to complete an invoke transaction, in seconds.",
		Buckets:   prometheus.DefBuckets,
	}
	queriesReceived = prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      "queries_received",
		Help:      "The number of queries received.",
	}
	queriesFailed = prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      "queries_failed",
		Help:      "The number of queries that failed (timeouts excluded).",
	}
	queryDuration = prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      "query_duration",
		Help:      "The time to complete a query, in seconds.",
		Buckets:   prometheus.DefBuckets,
	}
	timeouts = prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      "timeouts",
		Help:      "The number of invokes and queries that timed out waiting for a terminal notification.",
	}
)

// ClientMetrics contains the metrics used by the commercial paper client
type ClientMetrics struct {
	ExecutionsReceived metrics.Counter
	ExecutionsFailed   metrics.Counter
	ExecutionDuration  metrics.Histogram
	QueriesReceived    metrics.Counter
	QueriesFailed      metrics.Counter
	QueryDuration      metrics.Histogram
	Timeouts           metrics.Counter
}

// NewClientMetrics builds a new instance of ClientMetrics whose collectors are
// registered with the given registerer
func NewClientMetrics(r prometheus.Registerer) *ClientMetrics {
	labels := []string{ChaincodeLabel, FcnLabel}
	failLabels := []string{ChaincodeLabel, FcnLabel, FailLabel}

	return &ClientMetrics{
		ExecutionsReceived: newCounter(r, executionsReceived, labels),
		ExecutionsFailed:   newCounter(r, executionsFailed, failLabels),
		ExecutionDuration:  newHistogram(r, executionDuration, labels),
		QueriesReceived:    newCounter(r, queriesReceived, labels),
		QueriesFailed:      newCounter(r, queriesFailed, failLabels),
		QueryDuration:      newHistogram(r, queryDuration, labels),
		Timeouts:           newCounter(r, timeouts, labels),
	}
}

// NewDiscardClientMetrics returns ClientMetrics that record nothing
func NewDiscardClientMetrics() *ClientMetrics {
	return &ClientMetrics{
		ExecutionsReceived: discard.NewCounter(),
		ExecutionsFailed:   discard.NewCounter(),
		ExecutionDuration:  discard.NewHistogram(),
		QueriesReceived:    discard.NewCounter(),
		QueriesFailed:      discard.NewCounter(),
		QueryDuration:      discard.NewHistogram(),
		Timeouts:           discard.NewCounter(),
	}
}

func newCounter(r prometheus.Registerer, opts prometheus.CounterOpts, labels []string) metrics.Counter {
	cv := prometheus.NewCounterVec(opts, labels)
	r.MustRegister(cv)
	return kitprometheus.NewCounter(cv)
}

func newHistogram(r prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) metrics.Histogram {
	hv := prometheus.NewHistogramVec(opts, labels)
	r.MustRegister(hv)
	return kitprometheus.NewHistogram(hv)
}
