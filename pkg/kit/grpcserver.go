package kit

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// State is the server lifecycle: Starting → Serving → Draining → Stopped.
type State int32

const (
	StateStarting State = iota
	StateServing
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateServing:
		return "serving"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

var ErrAlreadyStarted = errors.New("grpc server already started")

const DefaultShutdownGrace = 30 * time.Second

// forceStopWait bounds how long a forced stop may take before Serve returns
// anyway.
const forceStopWait = 2 * time.Second

type GRPCServerConfig struct {
	Log *zap.Logger
	// ShutdownGrace bounds the drain; zero means DefaultShutdownGrace.
	ShutdownGrace time.Duration
	// StateGauge, if set, mirrors State().
	StateGauge prometheus.Gauge
}

// GRPCServer wraps grpc.Server with a signal-driven, deadline-bounded drain
// and a standard health service that reports NOT_SERVING once draining.
type GRPCServer struct {
	srv    *grpc.Server
	health *health.Server
	log    *zap.Logger
	grace  time.Duration
	gauge  prometheus.Gauge
	state  atomic.Int32
}

func NewGRPCServer(cfg GRPCServerConfig, opts ...grpc.ServerOption) *GRPCServer {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = DefaultShutdownGrace
	}

	s := &GRPCServer{
		srv:    grpc.NewServer(opts...),
		health: health.NewServer(),
		log:    cfg.Log,
		grace:  cfg.ShutdownGrace,
		gauge:  cfg.StateGauge,
	}
	healthpb.RegisterHealthServer(s.srv, s.health)
	s.setState(StateStarting)
	return s
}

// Registrar is where services are registered before Serve.
func (s *GRPCServer) Registrar() grpc.ServiceRegistrar { return s.srv }

func (s *GRPCServer) State() State { return State(s.state.Load()) }

func (s *GRPCServer) setState(st State) {
	s.state.Store(int32(st))
	if s.gauge != nil {
		s.gauge.Set(float64(st))
	}
}

// Serve accepts on lis until ctx ends, then drains. In-flight calls get up to
// the grace period; after that the server is stopped hard and the timeout is
// logged. It returns nil after a drain and the Serve error otherwise.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	if !s.state.CompareAndSwap(int32(StateStarting), int32(StateServing)) {
		return ErrAlreadyStarted
	}
	s.setState(StateServing)

	for name := range s.srv.GetServiceInfo() {
		s.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("grpc server starting", zap.String("addr", lis.Addr().String()))
		errCh <- s.srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		s.health.Shutdown()
		s.setState(StateStopped)
		return err
	}

	if s.drain() {
		<-errCh
	}
	return nil
}

// drain reports whether the server stopped cleanly. After a forced stop,
// handlers that ignore their context are abandoned and Serve returns without
// waiting for them.
func (s *GRPCServer) drain() bool {
	s.setState(StateDraining)
	s.log.Info("shutdown started", zap.Duration("grace", s.grace))
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(s.grace)
	defer timer.Stop()

	select {
	case <-stopped:
		s.log.Info("shutdown complete")
		s.setState(StateStopped)
		return true
	case <-timer.C:
	}

	s.log.Warn("shutdown grace period expired, forcing stop", zap.Duration("grace", s.grace))

	forced := make(chan struct{})
	go func() {
		s.srv.Stop()
		close(forced)
	}()
	select {
	case <-forced:
	case <-time.After(forceStopWait):
		s.log.Warn("forced stop still waiting on handlers, abandoning them")
	}

	s.log.Info("shutdown complete", zap.Bool("forced", true))
	s.setState(StateStopped)
	return false
}
