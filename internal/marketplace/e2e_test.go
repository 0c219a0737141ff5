package marketplace_test

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	recpb "BookMarket/api/recommendations/v1"
	"BookMarket/internal/catalog"
	"BookMarket/internal/marketplace"
	"BookMarket/internal/recommendations"
	"BookMarket/pkg/kit"
)

func TestMarketplace_AgainstRecommendationsService(t *testing.T) {
	gs := recommendations.NewGRPCServer(recommendations.NewService(catalog.Default()), recommendations.GRPCDeps{
		Log:           zap.NewNop(),
		ShutdownGrace: time.Second,
	})

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- gs.Serve(ctx, lis) }()
	stop := sync.OnceFunc(func() {
		cancel()
		<-served
	})
	t.Cleanup(stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(kit.UnaryClientRequestID()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	s := newServer(marketplace.NewBreakerClient(recpb.NewRecommendationsClient(conn), marketplace.BreakerSettings{}, zap.NewNop()))
	h := marketplace.NewHandler(s, marketplace.HTTPDeps{
		Log:    zap.NewNop(),
		Health: marketplace.GRPCHealth{Client: healthpb.NewHealthClient(conn)},
	})

	deadline := time.Now().Add(5 * time.Second)
	for gs.State() != kit.StateServing && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if resp, body := get(t, h, "/readyz", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("readyz=%d body=%s", resp.StatusCode, body)
	}

	resp, body := get(t, h, "/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	for _, want := range []string{"The Maltese Falcon", "Murder on the Orient Express", "The Hound of the Baskervilles"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}

	stop()

	if resp, _ := get(t, h, "/readyz", nil); resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readyz after drain=%d want=503", resp.StatusCode)
	}
	resp, body = get(t, h, "/", nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `class="unavailable"`) {
		t.Fatalf("degraded homepage status=%d body=%s", resp.StatusCode, body)
	}
}
