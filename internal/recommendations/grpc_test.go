package recommendations_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	recpb "BookMarket/api/recommendations/v1"
	"BookMarket/internal/catalog"
	"BookMarket/internal/recommendations"
	"BookMarket/pkg/kit"
)

type testServer struct {
	gs     *kit.GRPCServer
	client recpb.RecommendationsClient
}

func startServer(t *testing.T, recs recommendations.Recommender, reg *prometheus.Registry) testServer {
	t.Helper()

	gs := recommendations.NewGRPCServer(recs, recommendations.GRPCDeps{
		Log:           zap.NewNop(),
		Service:       "recommendations",
		Registry:      reg,
		Workers:       4,
		ShutdownGrace: time.Second,
	})

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- gs.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-served
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return testServer{gs: gs, client: recpb.NewRecommendationsClient(conn)}
}

func TestRecommendRPC_Mystery(t *testing.T) {
	ts := startServer(t, recommendations.NewService(catalog.Default()), nil)

	resp, err := ts.client.Recommend(context.Background(), &recpb.RecommendationRequest{
		UserId:     1,
		Category:   recpb.BookCategory_MYSTERY,
		MaxResults: 3,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	titles := map[string]bool{}
	for _, r := range resp.GetRecommendations() {
		titles[r.GetTitle()] = true
	}
	for _, want := range []string{"The Maltese Falcon", "Murder on the Orient Express", "The Hound of the Baskervilles"} {
		if !titles[want] {
			t.Fatalf("missing %q in %v", want, titles)
		}
	}
}

func TestRecommendRPC_NotFound(t *testing.T) {
	ts := startServer(t, recommendations.NewService(catalog.Default()), nil)

	resp, err := ts.client.Recommend(context.Background(), &recpb.RecommendationRequest{
		Category:   recpb.BookCategory(42),
		MaxResults: 3,
	})
	if resp != nil {
		t.Fatalf("partial response %v", resp)
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected gRPC status error, got %v", err)
	}
	if st.Code() != codes.NotFound || st.Message() != "Category not found" {
		t.Fatalf("status=%s %q", st.Code(), st.Message())
	}
}

func TestRecommendRPC_NegativeMaxResults(t *testing.T) {
	ts := startServer(t, recommendations.NewService(catalog.Default()), nil)

	resp, err := ts.client.Recommend(context.Background(), &recpb.RecommendationRequest{
		Category:   recpb.BookCategory_SELF_HELP,
		MaxResults: -5,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if n := len(resp.GetRecommendations()); n != 0 {
		t.Fatalf("len=%d want=0", n)
	}
}

type panicky struct {
	next recommendations.Recommender
}

func (p panicky) Recommend(ctx context.Context, req recommendations.Request) ([]catalog.Recommendation, error) {
	if req.Category == catalog.SelfHelp {
		panic("sampling exploded")
	}
	return p.next.Recommend(ctx, req)
}

func TestRecommendRPC_PanicIsIsolated(t *testing.T) {
	ts := startServer(t, panicky{next: recommendations.NewService(catalog.Default())}, nil)

	_, err := ts.client.Recommend(context.Background(), &recpb.RecommendationRequest{
		Category:   recpb.BookCategory_SELF_HELP,
		MaxResults: 1,
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code=%s want=Internal", status.Code(err))
	}

	resp, err := ts.client.Recommend(context.Background(), &recpb.RecommendationRequest{
		Category:   recpb.BookCategory_MYSTERY,
		MaxResults: 1,
	})
	if err != nil {
		t.Fatalf("service did not survive the panic: %v", err)
	}
	if len(resp.GetRecommendations()) != 1 {
		t.Fatalf("len=%d want=1", len(resp.GetRecommendations()))
	}
	if ts.gs.State() != kit.StateServing {
		t.Fatalf("state=%s want=serving", ts.gs.State())
	}
}

func TestRecommendRPC_Concurrent(t *testing.T) {
	ts := startServer(t, recommendations.NewService(catalog.Default()), prometheus.NewRegistry())
	cats := []recpb.BookCategory{
		recpb.BookCategory_MYSTERY,
		recpb.BookCategory_SCIENCE_FICTION,
		recpb.BookCategory_SELF_HELP,
	}

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k := int32(i % 5)
			resp, err := ts.client.Recommend(context.Background(), &recpb.RecommendationRequest{
				UserId:     int64(i),
				Category:   cats[i%len(cats)],
				MaxResults: k,
			})
			if err != nil {
				errs <- err
				return
			}
			if got, want := len(resp.GetRecommendations()), min(int(k), 3); got != want {
				errs <- status.Errorf(codes.Internal, "len=%d want=%d", got, want)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}

func TestAdminHandler_Readyz(t *testing.T) {
	reg := prometheus.NewRegistry()
	gs := recommendations.NewGRPCServer(recommendations.NewService(catalog.Default()), recommendations.GRPCDeps{
		Log:      zap.NewNop(),
		Service:  "recommendations",
		Registry: reg,
	})
	h := recommendations.NewAdminHandler(gs, recommendations.HTTPDeps{
		Log:      zap.NewNop(),
		Service:  "recommendations",
		Registry: reg,
	})

	get := func(path string) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec.Code
	}

	if code := get("/readyz"); code != http.StatusServiceUnavailable {
		t.Fatalf("readyz before serve=%d want=503", code)
	}
	if code := get("/healthz"); code != http.StatusOK {
		t.Fatalf("healthz=%d", code)
	}
	if code := get("/metrics"); code != http.StatusOK {
		t.Fatalf("metrics=%d", code)
	}

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- gs.Serve(ctx, bufconn.Listen(1<<20)) }()

	deadline := time.Now().Add(5 * time.Second)
	for gs.State() != kit.StateServing && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if code := get("/readyz"); code != http.StatusOK {
		t.Fatalf("readyz while serving=%d want=200", code)
	}

	cancel()
	if err := <-served; err != nil {
		t.Fatalf("Serve: %v", err)
	}
	if code := get("/readyz"); code != http.StatusServiceUnavailable {
		t.Fatalf("readyz after stop=%d want=503", code)
	}
}
