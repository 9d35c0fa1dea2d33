package interfaces

import (
	"context"

	"flight_price_api/internal/domain/entities"
)

// IFlightSearch abstracts the external flight-search capability (e.g. a
// Google Flights scraping service).
//
// Contract:
//   - A nil error with at least one offer means the search succeeded.
//   - A nil error with zero offers and any non-nil error are equivalent for
//     the pipeline: both route to the estimation fallback.
//   - The call may block for a provider-defined duration; callers must bound
//     it with their own context timeout.
type IFlightSearch interface {
	Search(ctx context.Context, query entities.FlightSearchQuery) ([]entities.FlightOffer, error)
}
