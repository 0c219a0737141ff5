package marketplace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	recpb "BookMarket/api/recommendations/v1"
	"BookMarket/pkg/kit"
)

// Dial opens a lazy plaintext connection to the recommendations service.
// No I/O happens until the first call.
func Dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(kit.UnaryClientRequestID()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial recommendations %s: %w", addr, err)
	}
	return conn, nil
}

type BreakerSettings struct {
	// ConsecutiveFailures trips the breaker; zero means 5.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open; zero means 10s.
	OpenTimeout time.Duration
}

// BreakerClient fails fast while the recommendations service keeps failing.
// Answers the service gives on purpose (NotFound, InvalidArgument) do not
// count against it.
type BreakerClient struct {
	next recpb.RecommendationsClient
	cb   *gobreaker.CircuitBreaker[*recpb.RecommendationResponse]
}

func NewBreakerClient(next recpb.RecommendationsClient, st BreakerSettings, log *zap.Logger) *BreakerClient {
	if log == nil {
		log = zap.NewNop()
	}
	if st.ConsecutiveFailures == 0 {
		st.ConsecutiveFailures = 5
	}
	if st.OpenTimeout <= 0 {
		st.OpenTimeout = 10 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[*recpb.RecommendationResponse](gobreaker.Settings{
		Name:        "recommendations",
		MaxRequests: 1,
		Timeout:     st.OpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= st.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			switch status.Code(err) {
			case codes.OK, codes.NotFound, codes.InvalidArgument:
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &BreakerClient{next: next, cb: cb}
}

func (b *BreakerClient) Recommend(ctx context.Context, in *recpb.RecommendationRequest, opts ...grpc.CallOption) (*recpb.RecommendationResponse, error) {
	resp, err := b.cb.Execute(func() (*recpb.RecommendationResponse, error) {
		return b.next.Recommend(ctx, in, opts...)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return resp, err
}

// HealthChecker reports whether the recommendations service can take calls.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// GRPCHealth asks the standard health service about the Recommendations
// service specifically.
type GRPCHealth struct {
	Client healthpb.HealthClient
}

func (h GRPCHealth) Check(ctx context.Context) error {
	resp, err := h.Client.Check(ctx, &healthpb.HealthCheckRequest{Service: recpb.Recommendations_ServiceDesc.ServiceName})
	if err != nil {
		return err
	}
	if st := resp.GetStatus(); st != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("recommendations status=%s", st)
	}
	return nil
}
