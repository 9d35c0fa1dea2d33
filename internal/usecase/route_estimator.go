package usecase

import (
	"strings"

	"flight_price_api/internal/domain/entities"
)

// fareClassMultipliers scales the base route price per service tier.
var fareClassMultipliers = map[entities.FareClass]float64{
	entities.FareClassEconomy:        1,
	entities.FareClassPremiumEconomy: 1.5,
	entities.FareClassBusiness:       2.5,
	entities.FareClassFirst:          4,
}

// RouteEstimator is the deterministic price floor of the pipeline: a static
// directed route→price table plus a fare-class multiplier, with a fixed
// default for unknown routes.
//
// Estimation is side-effect-free; the same inputs always yield the same
// price across calls.
type RouteEstimator struct {
	routes       map[string]int
	defaultPrice int
}

func NewRouteEstimator(entries []entities.RouteEntry, defaultPrice int) *RouteEstimator {
	routes := make(map[string]int, len(entries))
	for _, e := range entries {
		routes[routeKey(e.FromCity, e.ToCity)] = e.PriceUSD
	}
	return &RouteEstimator{routes: routes, defaultPrice: defaultPrice}
}

// Estimate returns the estimated price in whole USD for the given city pair
// and fare class. The multiplied price is truncated, not rounded.
func (e *RouteEstimator) Estimate(departureCity, destinationCity string, fareClass entities.FareClass) int {
	price, ok := e.routes[routeKey(departureCity, destinationCity)]
	if !ok {
		price = e.defaultPrice
	}

	multiplier, ok := fareClassMultipliers[fareClass]
	if !ok {
		multiplier = 1
	}
	return int(float64(price) * multiplier)
}

func routeKey(from, to string) string {
	return strings.TrimSpace(from) + "|" + strings.TrimSpace(to)
}
