// Package graceful runs long-lived servers and stops them together.
package graceful

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/go-iban/logger"
)

type Server interface {
	Serve(ctx context.Context) error
	GracefulStopWithTimeout(ctx context.Context) error
	ForceStop()
	Name() string
}

// Metrics is satisfied by *metrics.Shutdown.
type Metrics interface {
	IncStopTotal(result string)
	ObserveGracefulDuration(d time.Duration)
	IncServeError(name string)
	IncServerStopResult(name, result string)
}

type nopMetrics struct{}

func (nopMetrics) IncStopTotal(string)                   {}
func (nopMetrics) ObserveGracefulDuration(time.Duration) {}
func (nopMetrics) IncServeError(string)                  {}
func (nopMetrics) IncServerStopResult(string, string)    {}

type Config struct {
	ShutdownTimeout time.Duration
	HandleSignals   bool
	IsNormalError   func(error) bool
	Logger          logger.LoggerInterface
	Metrics         Metrics
}

type Manager struct {
	cfg     Config
	mu      sync.Mutex
	servers []Server
	stopped bool
}

func New(cfg Config) *Manager {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.IsNormalError == nil {
		cfg.IsNormalError = IsNormalError
	}
	if cfg.Metrics == nil {
		cfg.Metrics = nopMetrics{}
	}
	return &Manager{cfg: cfg}
}

func (m *Manager) Add(s Server) {
	m.mu.Lock()
	m.servers = append(m.servers, s)
	m.mu.Unlock()
}

// Run serves every added server until ctx ends or one of them fails, then
// stops all of them. Errors accepted by IsNormalError are not returned.
func (m *Manager) Run(ctx context.Context) error {
	if m.cfg.HandleSignals {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range m.snapshot() {
		g.Go(func() error { return m.serve(gctx, s) })
	}

	waitCh := make(chan error, 1)
	go func() { waitCh <- g.Wait() }()

	select {
	case <-ctx.Done():
		m.cfg.Logger.Infow("context done, stopping servers")
		m.Stop()
		select {
		case err := <-waitCh:
			return m.filter(err)
		case <-time.After(m.cfg.ShutdownTimeout + 2*time.Second):
			return fmt.Errorf("graceful: servers still running %s after shutdown timeout", m.cfg.ShutdownTimeout)
		}
	case err := <-waitCh:
		if m.filter(err) != nil {
			m.cfg.Logger.Warnw("server group failed, stopping servers", "err", err)
		}
		m.Stop()
		return m.filter(err)
	}
}

func (m *Manager) serve(ctx context.Context, s Server) error {
	name := nameOf(s)
	m.cfg.Logger.Infow("serve start", "name", name)

	err := s.Serve(ctx)
	if err != nil && !m.cfg.IsNormalError(err) && ctx.Err() == nil {
		m.cfg.Logger.Errorw("serve error", "name", name, "err", err)
		m.cfg.Metrics.IncServeError(name)
		return err
	}
	m.cfg.Logger.Infow("serve stop", "name", name)
	return nil
}

// Stop asks every server to stop within ShutdownTimeout and forces the ones
// that do not. Only the first call has an effect.
func (m *Manager) Stop() {
	servers, first := m.markStopped()
	if !first {
		return
	}

	started := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.ShutdownTimeout)
	defer cancel()

	var (
		wg     sync.WaitGroup
		forced atomic.Bool
	)
	for _, s := range servers {
		wg.Go(func() {
			if !m.stopOne(ctx, s) {
				forced.Store(true)
			}
		})
	}
	wg.Wait()

	m.cfg.Metrics.ObserveGracefulDuration(time.Since(started))
	m.cfg.Metrics.IncStopTotal(stopResult(!forced.Load()))
}

func (m *Manager) markStopped() ([]Server, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return nil, false
	}
	m.stopped = true
	return slices.Clone(m.servers), true
}

// stopOne reports whether s stopped gracefully.
func (m *Manager) stopOne(ctx context.Context, s Server) bool {
	name := nameOf(s)
	err := s.GracefulStopWithTimeout(ctx)
	if err == nil {
		err = ctx.Err()
	}
	ok := err == nil
	if ok {
		m.cfg.Logger.Infow("graceful stop done", "name", name)
	} else {
		m.cfg.Logger.Warnw("graceful stop failed, forcing", "name", name, "err", err)
		s.ForceStop()
	}
	m.cfg.Metrics.IncServerStopResult(name, stopResult(ok))
	return ok
}

func stopResult(graceful bool) string {
	if graceful {
		return "success"
	}
	return "force"
}

func (m *Manager) filter(err error) error {
	if err == nil || m.cfg.IsNormalError(err) {
		return nil
	}
	return err
}

func (m *Manager) snapshot() []Server {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.servers)
}

// IsNormalError accepts the errors a server returns when it is closed on
// purpose.
func IsNormalError(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, http.ErrServerClosed) || errors.Is(err, context.Canceled) {
		return true
	}
	return strings.Contains(err.Error(), "use of closed network connection")
}

func nameOf(s Server) string {
	if s == nil || s.Name() == "" {
		return "server"
	}
	return s.Name()
}
