package graceful

import (
	"context"
	"net"
	"net/http"
)

// HTTPServer adapts *http.Server to Server. When Listener is nil the server
// listens on Srv.Addr.
type HTTPServer struct {
	Srv      *http.Server
	Listener net.Listener
	ID       string
}

func (h *HTTPServer) Name() string {
	if h.ID == "" {
		return "http"
	}
	return h.ID
}

func (h *HTTPServer) Serve(ctx context.Context) error {
	h.Srv.BaseContext = func(net.Listener) context.Context { return ctx }

	errCh := make(chan error, 1)
	go func() {
		if h.Listener != nil {
			errCh <- h.Srv.Serve(h.Listener)
			return
		}
		errCh <- h.Srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (h *HTTPServer) GracefulStopWithTimeout(ctx context.Context) error {
	return h.Srv.Shutdown(ctx)
}

func (h *HTTPServer) ForceStop() { _ = h.Srv.Close() }
