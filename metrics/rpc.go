package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc/codes"
)

// RPC records gRPC handling time by service, method and status code.
type RPC struct {
	duration *prometheus.HistogramVec
}

func NewRPC(namespace string) *RPC {
	return &RPC{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "server_handling_seconds",
			Help:      "gRPC server handling time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "code"}),
	}
}

func (m *RPC) Register(reg prometheus.Registerer) error {
	return registerCollector(reg, m.duration)
}

func (m *RPC) ObserveRPC(_ context.Context, fullMethod string, code codes.Code, d time.Duration) {
	svc, mth := SplitMethod(fullMethod)
	m.duration.WithLabelValues(svc, mth, code.String()).Observe(d.Seconds())
}

// SplitMethod splits "/pkg.Service/Method" into service and method.
func SplitMethod(full string) (service, method string) {
	full = strings.TrimPrefix(full, "/")
	if full == "" {
		return "unknown", "unknown"
	}
	if svc, mth, ok := strings.Cut(full, "/"); ok && svc != "" && mth != "" && !strings.Contains(mth, "/") {
		return svc, mth
	}
	if i := strings.LastIndex(full, "."); i > 0 && i+1 < len(full) {
		return full[:i], full[i+1:]
	}
	return "unknown", full
}
