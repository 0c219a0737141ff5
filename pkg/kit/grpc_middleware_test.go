package kit

import (
	"context"
	"errors"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/test.Service/Method"}

func TestUnaryRecoverer(t *testing.T) {
	ic := UnaryRecoverer(zap.NewNop())

	resp, err := ic(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		panic("boom")
	})
	if resp != nil {
		t.Fatalf("resp=%v want nil", resp)
	}
	if status.Code(err) != codes.Internal {
		t.Fatalf("code=%s want=Internal", status.Code(err))
	}
}

func TestUnaryRecoverer_PassThrough(t *testing.T) {
	ic := UnaryRecoverer(zap.NewNop())
	want := status.Error(codes.NotFound, "nope")

	_, err := ic(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		return nil, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("err=%v want=%v", err, want)
	}
}

func TestUnaryRequestID_ReusesIncoming(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDMetadataKey, "req-1"))

	var got string
	_, err := UnaryRequestID()(ctx, nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		got = RPCRequestID(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got != "req-1" {
		t.Fatalf("request id=%q want=req-1", got)
	}
}

func TestUnaryRequestID_Mints(t *testing.T) {
	var got string
	_, _ = UnaryRequestID()(context.Background(), nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		got = RPCRequestID(ctx)
		return nil, nil
	})
	if len(got) != 36 {
		t.Fatalf("request id=%q, want a uuid", got)
	}
}

func TestUnaryLogging_ReturnsHandlerResult(t *testing.T) {
	ic := UnaryLogging(zap.NewNop())

	resp, err := ic(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Fatalf("resp=%v err=%v", resp, err)
	}
}

func TestUnaryClientRequestID(t *testing.T) {
	var got []string
	invoker := func(ctx context.Context, _ string, _, _ any, _ *grpc.ClientConn, _ ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(RequestIDMetadataKey)
		return nil
	}
	ic := UnaryClientRequestID()

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "http-7")
	if err := ic(ctx, "/m", nil, nil, nil, invoker); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(got) != 1 || got[0] != "http-7" {
		t.Fatalf("metadata=%v want=[http-7]", got)
	}

	got = nil
	_ = ic(context.Background(), "/m", nil, nil, nil, invoker)
	if len(got) != 0 {
		t.Fatalf("metadata=%v want none", got)
	}
}
