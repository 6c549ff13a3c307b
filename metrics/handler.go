package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultMetricsPath   = "/metrics"
	defaultHealthPath    = "/health"
	defaultHealthTimeout = 500 * time.Millisecond
)

// HealthFunc reports whether the service can take traffic.
type HealthFunc func(ctx context.Context, r *http.Request) error

// Options configures the /metrics and /health endpoints.
type Options struct {
	Registry      *prometheus.Registry
	Register      func(reg prometheus.Registerer) error
	Health        HealthFunc
	MetricsPath   string
	HealthPath    string
	HealthTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.MetricsPath == "" {
		o.MetricsPath = defaultMetricsPath
	}
	if o.HealthPath == "" {
		o.HealthPath = defaultHealthPath
	}
	if o.HealthTimeout <= 0 {
		o.HealthTimeout = defaultHealthTimeout
	}
	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}
	return o
}

// New builds the handler serving /metrics and /health. Process and Go
// runtime collectors are always registered; Register adds service metrics.
// Reusing a registry is fine: collectors already present are skipped.
func New(opts Options) (http.Handler, *prometheus.Registry, error) {
	opts = opts.withDefaults()
	reg := opts.Registry

	runtime := []prometheus.Collector{
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	}
	for _, c := range runtime {
		if err := registerCollector(reg, c); err != nil {
			return nil, nil, err
		}
	}
	if opts.Register != nil {
		if err := opts.Register(reg); err != nil {
			return nil, nil, err
		}
	}

	r := chi.NewRouter()
	r.Method(http.MethodGet, opts.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get(opts.HealthPath, health(opts.Health, opts.HealthTimeout))
	return r, reg, nil
}

// registerCollector registers c and treats a collector that is already
// present as success.
func registerCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil && !alreadyRegistered(err) {
		return err
	}
	return nil
}

func alreadyRegistered(err error) bool {
	var are prometheus.AlreadyRegisteredError
	return errors.As(err, &are)
}

func health(check HealthFunc, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := runCheck(r, check, timeout); err != nil {
			http.Error(w, "UNHEALTHY: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// runCheck runs check with a deadline. A check that ignores ctx is abandoned
// once the deadline passes.
func runCheck(r *http.Request, check HealthFunc, timeout time.Duration) error {
	if check == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- check(ctx, r) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errors.New("health timeout")
	}
}
