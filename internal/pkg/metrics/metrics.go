// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orderdesk"

// Save outcomes used as the "outcome" label of SavesTotal.
const (
	SaveCreated  = "created"
	SaveUpdated  = "updated"
	SaveRejected = "rejected"
	SaveFailed   = "failed"
)

type ServerMetrics struct {
	Requests       *prometheus.CounterVec
	LatencyMS      *prometheus.HistogramVec
	SessionsOpened prometheus.Counter
	SavesTotal     *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewServerMetrics registers the collectors on reg. Pass
// prometheus.NewRegistry() in tests so repeated construction does not panic.
func NewServerMetrics(reg *prometheus.Registry) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})
	opened := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sessions",
		Name:      "opened_total",
		Help:      "Editing sessions opened.",
	})
	saves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "saves_total",
		Help:      "Order save attempts by outcome.",
	}, []string{"outcome"})

	reg.MustRegister(requests, latency, opened, saves)
	return &ServerMetrics{
		Requests:       requests,
		LatencyMS:      latency,
		SessionsOpened: opened,
		SavesTotal:     saves,
		gatherer:       reg,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
