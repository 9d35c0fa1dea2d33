package entities

import (
	"strings"
	"time"
)

// LocationCode is an IATA-style identifier for an airport/city.
//
// Domain notes:
//   - Produced only by the location resolver from the static airport table.
//   - Absence of a code is a normal state ("we do not know this city"),
//     not an error; callers branch on the resolver's ok flag.
type LocationCode string

func (c LocationCode) String() string { return string(c) }

// TripType selects between a single outbound leg and an out-and-back pair.
type TripType string

const (
	TripTypeOneWay    TripType = "one-way"
	TripTypeRoundTrip TripType = "round-trip"
)

// FareClass is the normalized service tier requested by the caller.
type FareClass string

const (
	FareClassEconomy        FareClass = "economy"
	FareClassPremiumEconomy FareClass = "premium-economy"
	FareClassBusiness       FareClass = "business"
	FareClassFirst          FareClass = "first"
)

// FlightLeg is one directional segment handed to the search provider.
type FlightLeg struct {
	Date   time.Time
	Origin LocationCode
	Dest   LocationCode
}

// FlightSearchQuery is the full request passed to the external search capability.
type FlightSearchQuery struct {
	Legs       []FlightLeg
	Trip       TripType
	FareClass  FareClass
	Passengers int
}

// RawPrice is a provider price exactly as received: either a bare number
// (assumed to be pre-denominated in USD) or a formatted string such as
// "€850" or "SGD 185". Both fields unset means the offer carried no price.
type RawPrice struct {
	Amount *float64
	Text   string
}

func (p RawPrice) Empty() bool {
	return p.Amount == nil && strings.TrimSpace(p.Text) == ""
}

// FlightOffer is one candidate returned by the external search capability.
//
// Provider payloads are best-effort: any field may be missing. Missing
// fields surface as the "Unknown" sentinel in the response, never as a
// pipeline failure.
type FlightOffer struct {
	Airline   string
	Duration  string
	Stops     *int
	Departure string
	Arrival   string
	Price     RawPrice
}

// Money is a currency-qualified non-negative amount.
type Money struct {
	Currency string
	Amount   float64
}

// RouteQuery is the immutable per-request input to the price resolution
// pipeline. Defaults are applied by the HTTP layer (travel days, fare class,
// passengers) or, in lenient validation mode, by the pipeline itself
// (departure/destination cities).
type RouteQuery struct {
	DepartureCity      string
	DepartureCountry   string
	DestinationCity    string
	DestinationCountry string
	TargetDate         *time.Time
	TravelDays         int
	FareClassRaw       string
	Passengers         int
}
