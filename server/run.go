package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	"github.com/vortex-fintech/go-iban/graceful"
	"github.com/vortex-fintech/go-iban/iban"
	"github.com/vortex-fintech/go-iban/logger"
	"github.com/vortex-fintech/go-iban/metrics"
	"github.com/vortex-fintech/go-iban/observe"
	"github.com/vortex-fintech/go-iban/transport/grpc/ibanrpc"
	"github.com/vortex-fintech/go-iban/transport/grpc/middleware/errorsmw"
	"github.com/vortex-fintech/go-iban/transport/grpc/middleware/metricsmw"
)

// Config describes one service process. The gRPC listener is only started
// when GRPCAddr or GRPCListener is set.
type Config struct {
	Addr            string
	Listener        net.Listener
	GRPCAddr        string
	GRPCListener    net.Listener
	Workers         int
	ShutdownTimeout time.Duration
	MetricsPrefix   string
	Table           *iban.Table
	Logger          logger.LoggerInterface
}

func (c *Config) defaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.MetricsPrefix == "" {
		c.MetricsPrefix = "ibancheck"
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
}

// Run serves the validation API together with /metrics and /health until
// ctx is canceled, then shuts every listener down gracefully.
func Run(ctx context.Context, cfg Config) error {
	cfg.defaults()

	validations := metrics.NewValidation(cfg.MetricsPrefix)
	rpcs := metrics.NewRPC(cfg.MetricsPrefix)
	shutdown := metrics.NewShutdown(cfg.MetricsPrefix)
	ops, _, err := metrics.New(metrics.Options{
		Register: func(reg prometheus.Registerer) error {
			for _, r := range []func(prometheus.Registerer) error{validations.Register, rpcs.Register, shutdown.Register} {
				if err := r(reg); err != nil {
					return err
				}
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	v := observe.New(iban.New(iban.WithTable(cfg.Table)),
		observe.WithLogger(cfg.Logger),
		observe.WithMetrics(validations),
	)

	mux := http.NewServeMux()
	mux.Handle("/v1/", NewHandler(v, WithLogger(cfg.Logger), WithWorkers(cfg.Workers)))
	mux.Handle("/metrics", ops)
	mux.Handle("/health", ops)

	m := graceful.New(graceful.Config{
		ShutdownTimeout: cfg.ShutdownTimeout,
		Logger:          cfg.Logger,
		Metrics:         shutdown,
	})
	m.Add(&graceful.HTTPServer{
		Srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		Listener: cfg.Listener,
		ID:       "http-api",
	})

	grpcLis := cfg.GRPCListener
	if grpcLis == nil && cfg.GRPCAddr != "" {
		if grpcLis, err = net.Listen("tcp", cfg.GRPCAddr); err != nil {
			return err
		}
	}
	if grpcLis != nil {
		gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
			metricsmw.Unary(rpcs),
			errorsmw.Unary(),
		))
		ibanrpc.Register(gs, ibanrpc.NewService(v))
		m.Add(&graceful.GRPCServer{Srv: gs, Listener: grpcLis, ID: "grpc-api"})
	}

	addr := cfg.Addr
	if cfg.Listener != nil {
		addr = cfg.Listener.Addr().String()
	}
	cfg.Logger.Infow("iban service starting", "addr", addr, "grpc", grpcLis != nil, "countries", v.Table().Len())
	return m.Run(ctx)
}
