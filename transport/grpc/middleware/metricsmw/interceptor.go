package metricsmw

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Reporter is satisfied by *metrics.RPC.
type Reporter interface {
	ObserveRPC(ctx context.Context, fullMethod string, code codes.Code, d time.Duration)
}

func Unary(r Reporter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if r != nil {
			r.ObserveRPC(ctx, info.FullMethod, status.Code(err), time.Since(start))
		}
		return resp, err
	}
}
