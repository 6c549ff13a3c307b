// Package bulk validates many IBANs concurrently.
package bulk

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/go-iban/iban"
)

// Validator is satisfied by *iban.Validator and *observe.Validator.
type Validator interface {
	ValidateText(string) iban.Result
}

// Validate returns one result per value, in input order. limit caps the
// number of concurrent workers; limit <= 0 means GOMAXPROCS. A canceled
// context stops scheduling and returns its error with no results.
func Validate(ctx context.Context, v Validator, values []string, limit int) ([]iban.Result, error) {
	if v == nil {
		v = iban.New()
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	out := make([]iban.Result, len(values))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, s := range values {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = v.ValidateText(s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
