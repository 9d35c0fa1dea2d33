package request

import (
	"errors"
	"strings"
	"time"

	"flight_price_api/internal/domain/entities"
)

var (
	ErrInvalidTargetDate = errors.New("invalid targetDate, expected YYYY-MM-DD")
	ErrInvalidTravelDays = errors.New("invalid travelDays, must be >= 0")
	ErrInvalidPassengers = errors.New("invalid numberOfPeople, must be >= 1")
)

// FlightPriceRequest binds the query parameters of GET /api/getFlightPrice.
//
// Pointer fields distinguish "absent" from "zero" so that defaults apply
// only when the caller omitted the parameter.
type FlightPriceRequest struct {
	DepartureCity      string `form:"departureCity"`
	DepartureCountry   string `form:"departureCountry"`
	DestinationCity    string `form:"destinationCity"`
	DestinationCountry string `form:"destinationCountry"`
	TargetDate         string `form:"targetDate"`
	TravelDays         *int   `form:"travelDays"`
	FareClass          string `form:"fareClass"`
	NumberOfPeople     *int   `form:"numberOfPeople"`
}

// ToRouteQuery validates the syntactic parts of the request (date format,
// numeric ranges) and applies the documented defaults: travelDays 7,
// fareClass economy, numberOfPeople 1. Presence of cities/date is a policy
// decision left to the pipeline's validation mode.
func (r FlightPriceRequest) ToRouteQuery() (entities.RouteQuery, error) {
	query := entities.RouteQuery{
		DepartureCity:      strings.TrimSpace(r.DepartureCity),
		DepartureCountry:   strings.TrimSpace(r.DepartureCountry),
		DestinationCity:    strings.TrimSpace(r.DestinationCity),
		DestinationCountry: strings.TrimSpace(r.DestinationCountry),
		TravelDays:         7,
		FareClassRaw:       "economy",
		Passengers:         1,
	}

	if d := strings.TrimSpace(r.TargetDate); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return entities.RouteQuery{}, ErrInvalidTargetDate
		}
		query.TargetDate = &parsed
	}

	if r.TravelDays != nil {
		if *r.TravelDays < 0 {
			return entities.RouteQuery{}, ErrInvalidTravelDays
		}
		query.TravelDays = *r.TravelDays
	}

	if fc := strings.TrimSpace(r.FareClass); fc != "" {
		query.FareClassRaw = fc
	}

	if r.NumberOfPeople != nil {
		if *r.NumberOfPeople < 1 {
			return entities.RouteQuery{}, ErrInvalidPassengers
		}
		query.Passengers = *r.NumberOfPeople
	}

	return query, nil
}
