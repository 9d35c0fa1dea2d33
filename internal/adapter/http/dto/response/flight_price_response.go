package response

import (
	"flight_price_api/internal/domain/entities"
)

type FlightDetailsResponse struct {
	Airline   string `json:"airline"`
	Duration  string `json:"duration"`
	Stops     string `json:"stops"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

// FlightPriceResponse is the wire shape of a resolved quote. The service
// answers HTTP 200 with error=false for every tier of the fallback ladder;
// callers distinguish tiers through the source tag and the debug trace.
type FlightPriceResponse struct {
	Error         bool                   `json:"error"`
	QuoteID       string                 `json:"quote_id"`
	Price         float64                `json:"price"`
	Currency      string                 `json:"currency"`
	Source        string                 `json:"source"`
	Route         string                 `json:"route"`
	FareClass     string                 `json:"fare_class"`
	SearchURL     string                 `json:"search_url"`
	FlightDetails *FlightDetailsResponse `json:"flight_details,omitempty"`
	Debug         []string               `json:"debug,omitempty"`
}

func FromPriceQuote(q entities.PriceQuote) FlightPriceResponse {
	resp := FlightPriceResponse{
		Error:     false,
		QuoteID:   q.ID,
		Price:     q.Price,
		Currency:  q.Currency,
		Source:    string(q.Source),
		Route:     q.Route,
		FareClass: string(q.FareClass),
		SearchURL: q.SearchURL,
		Debug:     q.Trace,
	}
	if q.Details != nil {
		resp.FlightDetails = &FlightDetailsResponse{
			Airline:   q.Details.Airline,
			Duration:  q.Details.Duration,
			Stops:     q.Details.Stops,
			Departure: q.Details.Departure,
			Arrival:   q.Details.Arrival,
		}
	}
	return resp
}
