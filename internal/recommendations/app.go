package recommendations

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	recpb "BookMarket/api/recommendations/v1"
	"BookMarket/pkg/kit"
)

const DefaultWorkers = 10

type GRPCDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	Workers       int
	ShutdownGrace time.Duration
}

// NewGRPCServer wires the Recommendations service behind the interceptor
// chain: request id, access log, metrics, worker pool, panic recovery.
func NewGRPCServer(recs Recommender, deps GRPCDeps) *kit.GRPCServer {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Workers <= 0 {
		deps.Workers = DefaultWorkers
	}

	interceptors := []grpc.UnaryServerInterceptor{
		kit.UnaryRequestID(),
		kit.UnaryLogging(deps.Log),
	}

	var (
		queueWait  prometheus.Observer
		stateGauge prometheus.Gauge
	)
	if deps.Registry != nil {
		metrics := kit.NewRPCMetrics(deps.Registry, deps.Service)
		interceptors = append(interceptors, metrics.UnaryInterceptor())
		queueWait = metrics.QueueWait
		stateGauge = metrics.State
	}

	pool := kit.NewWorkerPool(deps.Workers, queueWait)
	interceptors = append(interceptors,
		pool.UnaryInterceptor(),
		kit.UnaryRecoverer(deps.Log),
	)

	gs := kit.NewGRPCServer(kit.GRPCServerConfig{
		Log:           deps.Log,
		ShutdownGrace: deps.ShutdownGrace,
		StateGauge:    stateGauge,
	}, grpc.ChainUnaryInterceptor(interceptors...))

	recpb.RegisterRecommendationsServer(gs.Registrar(), &Server{Recs: recs, Log: deps.Log})
	return gs
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsToken string
}

// NewAdminHandler serves /healthz, /readyz and /metrics for the gRPC process.
// /readyz is 200 only while the server is Serving. An empty MetricsToken
// leaves /metrics open; the admin port is not meant to be public.
func NewAdminHandler(gs *kit.GRPCServer, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)

	if deps.Registry != nil {
		metrics := kit.NewMetrics(deps.Registry)
		r.Use(metrics.Middleware(deps.Service, kit.RouteLabel))

		h := promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
		if deps.MetricsToken != "" {
			h = kit.MetricsAuth(deps.MetricsToken)(h)
		}
		r.Handle("/metrics", h)
	}

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if st := gs.State(); st != kit.StateServing {
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", map[string]any{"state": st.String()})
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	return r
}
