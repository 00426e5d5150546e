//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package metrics implements Prometheus instrumentation for the key
// agreement rounds.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace is the Prometheus namespace for all metrics.
	Namespace = "groupdh"

	// Label names.
	LabelParticipant = "participant"
	LabelStatus      = "status"

	// Status values.
	StatusSuccess = "success"
	StatusError   = "error"
)

// Collector collects key agreement metrics. It implements the
// ring.Observer interface.
type Collector struct {
	registry *prometheus.Registry

	RoundsTotal    *prometheus.CounterVec
	RoundDuration  *prometheus.HistogramVec
	AgreementTotal *prometheus.CounterVec
	BytesSent      prometheus.Counter
	BytesReceived  prometheus.Counter
}

// New creates a new collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		RoundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "rounds_total",
				Help:      "Total number of completed rounds by participant",
			},
			[]string{LabelParticipant},
		),
		RoundDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "round_duration_seconds",
				Help:      "Duration of key agreement rounds in seconds",
				Buckets: []float64{
					.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5,
				},
			},
			[]string{LabelParticipant},
		),
		AgreementTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "agreements_total",
				Help:      "Total number of key agreements by status",
			},
			[]string{LabelStatus},
		),
		BytesSent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "sent_bytes_total",
				Help:      "Total number of bytes sent to peers",
			},
		),
		BytesReceived: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "received_bytes_total",
				Help:      "Total number of bytes received from peers",
			},
		),
	}
	c.registry.MustRegister(c.RoundsTotal, c.RoundDuration,
		c.AgreementTotal, c.BytesSent, c.BytesReceived)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Round records a completed protocol round.
func (c *Collector) Round(id, round int, duration time.Duration) {
	label := strconv.Itoa(id)
	c.RoundsTotal.WithLabelValues(label).Inc()
	c.RoundDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// Agreement records the outcome of a key agreement and its traffic.
func (c *Collector) Agreement(err error, sent, received uint64) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	c.AgreementTotal.WithLabelValues(status).Inc()
	c.BytesSent.Add(float64(sent))
	c.BytesReceived.Add(float64(received))
}

// Handler returns an HTTP handler serving the collector's metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
