// Package errorsmw turns handler errors into gRPC statuses carrying the
// ErrorResponse details.
package errorsmw

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/vortex-fintech/go-iban/errors"
)

func Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, toGRPC(err)
	}
}

func toGRPC(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	return errors.ToErrorResponse(err).ToGRPC()
}
