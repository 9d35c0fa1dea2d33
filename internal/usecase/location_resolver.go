package usecase

import (
	"strings"

	"flight_price_api/internal/domain/entities"
)

// LocationResolver maps (city, country) pairs to IATA-style location codes
// using a static table built once at startup.
//
// Lookup is exact-match, case-insensitive on trimmed inputs. There is no
// fuzzy or partial matching and no network access. A miss is a normal
// outcome, signalled by ok=false, never an error.
type LocationResolver struct {
	codes map[string]entities.LocationCode
}

func NewLocationResolver(entries []entities.AirportEntry) *LocationResolver {
	codes := make(map[string]entities.LocationCode, len(entries))
	for _, e := range entries {
		codes[locationKey(e.City, e.Country)] = e.Code
	}
	return &LocationResolver{codes: codes}
}

func (r *LocationResolver) Resolve(city, country string) (entities.LocationCode, bool) {
	code, ok := r.codes[locationKey(city, country)]
	return code, ok
}

func locationKey(city, country string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "|" + strings.ToLower(strings.TrimSpace(country))
}
