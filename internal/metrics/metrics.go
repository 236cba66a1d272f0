// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the page server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-public-env/internal/render"
)

const namespace = "publicenv"

// Metrics records page renders, server-inserted script flushes and static
// cache use on its own registry.
type Metrics struct {
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	scripts        *prometheus.CounterVec
	sections       *prometheus.CounterVec
	cache          *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them together with the Go and
// process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of rendered documents",
		}, []string{"route", "status", "dynamic"}),

		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of document renders in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		scripts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inserted_html_total",
			Help:      "Server-inserted HTML hook invocations by outcome",
		}, []string{"outcome"}), // outcome: inserted, suppressed

		sections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "streamed_sections_total",
			Help:      "Total number of streamed sections",
		}, []string{"route"}),

		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "static_cache_total",
			Help:      "Static cache lookups and stores by result",
		}, []string{"result"}), // result: hit, miss, store
	}

	registry.MustRegister(
		m.renders,
		m.renderDuration,
		m.scripts,
		m.sections,
		m.cache,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRender records a finished render of route.
func (m *Metrics) ObserveRender(route string, res render.Result, elapsed time.Duration) {
	m.renders.WithLabelValues(route, strconv.Itoa(res.Status), strconv.FormatBool(res.Dynamic)).Inc()
	m.renderDuration.WithLabelValues(route).Observe(elapsed.Seconds())
	m.scripts.WithLabelValues("inserted").Add(float64(res.Inserted))
	m.scripts.WithLabelValues("suppressed").Add(float64(res.Suppressed))
	m.sections.WithLabelValues(route).Add(float64(res.Sections))
}

// CacheHit records a document served from the static cache.
func (m *Metrics) CacheHit() { m.cache.WithLabelValues("hit").Inc() }

// CacheMiss records a lookup that had to render.
func (m *Metrics) CacheMiss() { m.cache.WithLabelValues("miss").Inc() }

// CacheStore records a render kept in the static cache.
func (m *Metrics) CacheStore() { m.cache.WithLabelValues("store").Inc() }

// Registry returns the registry backing the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
