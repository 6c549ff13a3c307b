package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-iban/iban"
)

// Validation counts validation outcomes. Country labels are only recorded
// for table codes, so label cardinality stays bounded.
type Validation struct {
	total     *prometheus.CounterVec
	byCountry *prometheus.CounterVec
}

func NewValidation(namespace string) *Validation {
	return &Validation{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iban_validations_total",
			Help:      "IBAN validations by result and reason.",
		}, []string{"result", "reason"}),
		byCountry: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iban_validations_by_country_total",
			Help:      "IBAN validations of supported countries by country code.",
		}, []string{"country"}),
	}
}

// Register fits Options.Register.
func (m *Validation) Register(reg prometheus.Registerer) error {
	if err := registerCollector(reg, m.total); err != nil {
		return err
	}
	return registerCollector(reg, m.byCountry)
}

// Observe records one result. country is empty for unsupported prefixes.
func (m *Validation) Observe(res iban.Result, country string) {
	reason := string(res.Reason)
	if reason == "" {
		reason = "none"
	}
	m.total.WithLabelValues(res.Status.String(), reason).Inc()
	if country != "" {
		m.byCountry.WithLabelValues(country).Inc()
	}
}
