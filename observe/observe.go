// Package observe instruments an IBAN validator with logs and metrics.
package observe

import (
	"context"

	"github.com/vortex-fintech/go-iban/iban"
	"github.com/vortex-fintech/go-iban/logger"
	"github.com/vortex-fintech/go-iban/logutil"
	"github.com/vortex-fintech/go-iban/metrics"
)

// Validator returns exactly what the wrapped *iban.Validator returns.
type Validator struct {
	next    *iban.Validator
	log     logger.LoggerInterface
	metrics *metrics.Validation
}

type Option func(*Validator)

func WithLogger(l logger.LoggerInterface) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

func WithMetrics(m *metrics.Validation) Option {
	return func(v *Validator) { v.metrics = m }
}

// New wraps next; a nil next uses the built-in registry.
func New(next *iban.Validator, opts ...Option) *Validator {
	if next == nil {
		next = iban.New()
	}
	v := &Validator{next: next, log: logger.Nop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Table() *iban.Table { return v.next.Table() }

func (v *Validator) ValidateText(s string) iban.Result {
	return v.ValidateTextContext(context.Background(), s)
}

func (v *Validator) ValidateTextContext(ctx context.Context, s string) iban.Result {
	res := v.next.ValidateText(s)
	v.record(ctx, s, res)
	return res
}

func (v *Validator) ValidateField(ctx context.Context, f *iban.Field) iban.Result {
	res := v.next.ValidateField(f)
	var s string
	if f != nil {
		s = f.Value
	}
	v.record(ctx, s, res)
	return res
}

func (v *Validator) record(ctx context.Context, s string, res iban.Result) {
	country, _ := v.next.Country(s)
	if v.metrics != nil {
		v.metrics.Observe(res, country)
	}

	switch res.Status {
	case iban.StatusInvalid:
		v.log.DebugwCtx(ctx, "iban rejected",
			"iban", logutil.MaskIBAN(s),
			"country", country,
			"reason", string(res.Reason),
		)
	case iban.StatusValid:
		v.log.DebugwCtx(ctx, "iban accepted", "iban", logutil.MaskIBAN(s), "country", country)
	}
}
