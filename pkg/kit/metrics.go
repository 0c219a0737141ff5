package kit

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const (
	labelService = "service"
	labelMethod  = "method"
	labelPath    = "path"
	labelStatus  = "status"
	labelCode    = "code"

	defaultStatusCode = http.StatusOK
)

type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{labelService, labelMethod, labelPath, labelStatus},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP latency",
			},
			[]string{labelService, labelMethod, labelPath},
		),
	}

	reg.MustRegister(m.Requests, m.Latency)
	return m
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (m *Metrics) Middleware(service string, pathLabel func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{
				ResponseWriter: w,
				status:         defaultStatusCode,
			}

			start := time.Now()
			next.ServeHTTP(sw, r)

			path := pathLabel(r)
			m.Latency.WithLabelValues(service, r.Method, path).
				Observe(time.Since(start).Seconds())

			m.Requests.WithLabelValues(service, r.Method, path, strconv.Itoa(sw.status)).
				Inc()
		})
	}
}

// RPCMetrics are the gRPC server series. QueueWait and State are fed by
// WorkerPool and GRPCServer.
type RPCMetrics struct {
	Requests  *prometheus.CounterVec
	Latency   *prometheus.HistogramVec
	InFlight  prometheus.Gauge
	QueueWait prometheus.Histogram
	State     prometheus.Gauge
}

func NewRPCMetrics(reg prometheus.Registerer, service string) *RPCMetrics {
	constLabels := prometheus.Labels{labelService: service}

	m := &RPCMetrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "rpc_requests_total",
				Help:        "Total unary RPCs by method and status code",
				ConstLabels: constLabels,
			},
			[]string{labelMethod, labelCode},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "rpc_request_duration_seconds",
				Help:        "Unary RPC latency",
				ConstLabels: constLabels,
			},
			[]string{labelMethod},
		),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "rpc_requests_in_flight",
			Help:        "Unary RPCs currently executing",
			ConstLabels: constLabels,
		}),
		QueueWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "rpc_worker_wait_seconds",
			Help:        "Time spent waiting for a worker slot",
			ConstLabels: constLabels,
			Buckets:     []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5},
		}),
		State: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "server_lifecycle_state",
			Help:        "0=starting 1=serving 2=draining 3=stopped",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(m.Requests, m.Latency, m.InFlight, m.QueueWait, m.State)
	return m
}

func (m *RPCMetrics) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		start := time.Now()
		resp, err := handler(ctx, req)

		m.Latency.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		m.Requests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}
