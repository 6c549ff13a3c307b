package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Shutdown tracks graceful stops of the servers a process runs.
type Shutdown struct {
	stopTotal        *prometheus.CounterVec
	serveErrors      *prometheus.CounterVec
	serverStopResult *prometheus.CounterVec
	duration         prometheus.Histogram
}

func NewShutdown(namespace string) *Shutdown {
	return &Shutdown{
		stopTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "graceful", Name: "stop_total",
			Help: "Graceful stops by result (success|force).",
		}, []string{"result"}),
		serveErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "graceful", Name: "serve_errors_total",
			Help: "Unexpected serve errors by server.",
		}, []string{"server"}),
		serverStopResult: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "graceful", Name: "server_stop_total",
			Help: "Per-server stop results.",
		}, []string{"server", "result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "graceful", Name: "duration_seconds",
			Help:    "Time spent stopping all servers.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
	}
}

func (m *Shutdown) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.stopTotal, m.serveErrors, m.serverStopResult, m.duration} {
		if err := registerCollector(reg, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Shutdown) IncStopTotal(result string) { m.stopTotal.WithLabelValues(result).Inc() }
func (m *Shutdown) IncServeError(name string)  { m.serveErrors.WithLabelValues(name).Inc() }

func (m *Shutdown) IncServerStopResult(name, res string) {
	m.serverStopResult.WithLabelValues(name, res).Inc()
}

func (m *Shutdown) ObserveGracefulDuration(d time.Duration) {
	m.duration.Observe(d.Seconds())
}
