package interfaces

import (
	"context"

	"flight_price_api/internal/domain/entities"
)

// IReferenceDataRepository loads the static lookup tables (airports, route
// prices, fallback FX rates) at process start.
//
// The tables are read once during wiring and are immutable afterwards; there
// is deliberately no mutation API. Deployments without a configured backend
// use the embedded defaults instead of this repository.
type IReferenceDataRepository interface {
	LoadAirports(ctx context.Context) ([]entities.AirportEntry, error)
	LoadRoutes(ctx context.Context) ([]entities.RouteEntry, error)
	LoadFallbackRates(ctx context.Context) (map[string]float64, error)
}
