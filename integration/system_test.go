//go:build integration
// +build integration

package integration

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	recpb "BookMarket/api/recommendations/v1"
	"BookMarket/internal/marketplace"
)

var (
	marketplaceURL      = getenv("E2E_MARKETPLACE_URL", "http://localhost:5000")
	recommendationsAddr = getenv("E2E_RECOMMENDATIONS_ADDR", "localhost:50051")
)

func TestSystem_Homepage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, marketplaceURL+"/readyz")

	body := getPage(t, marketplaceURL+"/")
	if n := strings.Count(body, "<li "); n == 0 || n > 3 {
		t.Fatalf("homepage lists %d books, want 1..3:\n%s", n, body)
	}

	if os.Getenv("E2E_RESTART_RECOMMENDATIONS") == "1" {
		restartContainer(t, ctx, "recommendations")
		waitReady(t, ctx, marketplaceURL+"/readyz")
		if body := getPage(t, marketplaceURL+"/"); !strings.Contains(body, "<li ") {
			t.Fatalf("homepage did not recover after restart:\n%s", body)
		}
	}
}

func TestSystem_RecommendRPC(t *testing.T) {
	conn, err := marketplace.Dial(recommendationsAddr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	client := recpb.NewRecommendationsClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, cat := range []recpb.BookCategory{
		recpb.BookCategory_MYSTERY,
		recpb.BookCategory_SCIENCE_FICTION,
		recpb.BookCategory_SELF_HELP,
	} {
		resp, err := client.Recommend(ctx, &recpb.RecommendationRequest{UserId: 1, Category: cat, MaxResults: 2})
		if err != nil {
			t.Fatalf("%s: %v", cat, err)
		}
		if n := len(resp.GetRecommendations()); n != 2 {
			t.Fatalf("%s: len=%d want=2", cat, n)
		}
	}

	_, err = client.Recommend(ctx, &recpb.RecommendationRequest{UserId: 1, Category: recpb.BookCategory(42), MaxResults: 2})
	if st, _ := status.FromError(err); st.Code() != codes.NotFound || st.Message() != "Category not found" {
		t.Fatalf("unknown category: %v", err)
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == 200 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func getPage(t *testing.T, url string) string {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status=%d", url, resp.StatusCode)
	}
	return string(raw)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
