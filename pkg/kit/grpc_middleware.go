package kit

import (
	"context"
	"runtime/debug"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDMetadataKey carries the request id across the RPC boundary.
const RequestIDMetadataKey = "x-request-id"

type rpcCtxKey struct{}

// RPCRequestID returns the id assigned by UnaryRequestID.
func RPCRequestID(ctx context.Context) string {
	id, _ := ctx.Value(rpcCtxKey{}).(string)
	return id
}

// UnaryRequestID reuses the caller's x-request-id or mints a new one.
func UnaryRequestID() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(RequestIDMetadataKey); len(v) > 0 {
				id = v[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDMetadataKey, id))
		return handler(context.WithValue(ctx, rpcCtxKey{}, id), req)
	}
}

// UnaryRecoverer turns a handler panic into codes.Internal for that call only.
func UnaryRecoverer(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if p := recover(); p != nil {
				log.Error("rpc panic",
					zap.String("method", info.FullMethod),
					zap.String("request_id", RPCRequestID(ctx)),
					zap.Any("panic", p),
					zap.ByteString("stack", debug.Stack()),
				)
				resp = nil
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// UnaryLogging writes one access line per call. Client-side codes log at info,
// server faults at error.
func UnaryLogging(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("request_id", RPCRequestID(ctx)),
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}

		switch code {
		case codes.Internal, codes.Unknown, codes.DataLoss:
			log.Error("rpc", append(fields, zap.Error(err))...)
		default:
			log.Info("rpc", fields...)
		}
		return resp, err
	}
}

// UnaryClientRequestID forwards the chi request id of an inbound HTTP request
// to the RPC it triggers.
func UnaryClientRequestID() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if id := chimw.GetReqID(ctx); id != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, RequestIDMetadataKey, id)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
