package graceful

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"
)

// GRPCServer adapts *grpc.Server to Server.
type GRPCServer struct {
	Srv      *grpc.Server
	Listener net.Listener
	ID       string
}

func (g *GRPCServer) Name() string {
	if g.ID == "" {
		return "grpc"
	}
	return g.ID
}

func (g *GRPCServer) Serve(ctx context.Context) error {
	if g.Srv == nil || g.Listener == nil {
		return errors.New("graceful: grpc server and listener are required")
	}

	errCh := make(chan error, 1)
	go func() { errCh <- g.Srv.Serve(g.Listener) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (g *GRPCServer) GracefulStopWithTimeout(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.Srv.GracefulStop()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (g *GRPCServer) ForceStop() { g.Srv.Stop() }
