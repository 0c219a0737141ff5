package kit

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// WorkerPool bounds how many unary handlers run at once. Callers beyond the
// capacity wait in FIFO order with no queue limit; a waiter whose context ends
// leaves the queue with the context's status code.
type WorkerPool struct {
	sem      *semaphore.Weighted
	capacity int64
	wait     prometheus.Observer
}

// NewWorkerPool returns a pool of the given capacity. wait may be nil.
func NewWorkerPool(capacity int, wait prometheus.Observer) *WorkerPool {
	if capacity < 1 {
		capacity = 1
	}
	return &WorkerPool{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: int64(capacity),
		wait:     wait,
	}
}

func (p *WorkerPool) Capacity() int { return int(p.capacity) }

// Do runs fn once a worker slot is free.
func (p *WorkerPool) Do(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	start := time.Now()
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	defer p.sem.Release(1)

	if p.wait != nil {
		p.wait.Observe(time.Since(start).Seconds())
	}
	return fn(ctx)
}

func (p *WorkerPool) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return p.Do(ctx, func(ctx context.Context) (any, error) {
			return handler(ctx, req)
		})
	}
}
