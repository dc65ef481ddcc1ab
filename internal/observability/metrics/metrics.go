// Package metrics expone los contadores Prometheus del servicio.
package metrics

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics mide el tráfico HTTP del propio servicio y las llamadas
// al servicio clínico remoto.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	upstreamTotal   *prometheus.CounterVec
	wsClientsActive prometheus.Gauge
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pochita",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requests atendidos",
		}, []string{"method", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pochita",
			Subsystem: "http",
			Name:      "request_latency_seconds",
			Help:      "Latencia de los requests atendidos",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pochita",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total de llamadas al servicio clínico remoto",
		}, []string{"outcome"}),
		wsClientsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pochita",
			Subsystem: "ws",
			Name:      "clients_active",
			Help:      "Conexiones WebSocket activas",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency, m.upstreamTotal, m.wsClientsActive)
	return m
}

func (m *HTTPMetrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *HTTPMetrics) ObserveUpstream(outcome string) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(outcome).Inc()
}

func (m *HTTPMetrics) SetWSClients(n int) {
	if m == nil {
		return
	}
	m.wsClientsActive.Set(float64(n))
}

// Middleware instrumenta cada request con contador y latencia.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		m.ObserveRequest(r.Method, rw.status, time.Since(start))
	})
}

// Handler expone /metrics en formato Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack delega en el writer original; sin esto el upgrade a WebSocket
// fallaría detrás del middleware.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("metrics: response writer does not support hijacking")
	}
	return h.Hijack()
}
