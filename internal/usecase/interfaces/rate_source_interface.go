package interfaces

import "context"

// IRateSource abstracts a live currency exchange-rate lookup.
//
// Rate returns the multiplicative factor converting one unit of `from` into
// `to`. Implementations get a single attempt per request; any failure makes
// the currency normalizer fall back to its static rate table.
type IRateSource interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}
