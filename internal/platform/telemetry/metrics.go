package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "freelance_books"

// Metrics holds the Prometheus instruments of the service.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	invoicesCreated    *prometheus.CounterVec
	invoiceNumberClash prometheus.Counter
	invoicePDFDuration *prometheus.HistogramVec
}

// NewMetrics creates the instruments on a fresh registry that also carries
// the Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		invoicesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_created_total",
			Help:      "Invoices created by initial status.",
		}, []string{"status"}),
		invoiceNumberClash: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_number_conflicts_total",
			Help:      "Invoice creations rejected because the number was already taken.",
		}),
		invoicePDFDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invoice_pdf_render_seconds",
			Help:      "Invoice PDF render latency by result.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"result"}),
	}
	registry.MustRegister(m.httpRequests, m.httpDuration, m.invoicesCreated, m.invoiceNumberClash, m.invoicePDFDuration)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one finished request. route is the matched
// route template so path parameters do not explode cardinality.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) InvoiceCreated(status domain.InvoiceStatus) {
	if m == nil {
		return
	}
	m.invoicesCreated.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) InvoiceNumberConflict() {
	if m == nil {
		return
	}
	m.invoiceNumberClash.Inc()
}

func (m *Metrics) InvoicePDFRendered(duration time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.invoicePDFDuration.WithLabelValues(result).Observe(duration.Seconds())
}
